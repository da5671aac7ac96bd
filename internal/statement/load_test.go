package statement

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleEnvelope = `{
	"data": {
		"financials": [
			{
				"reportingDate": "2021-03-31",
				"pnl": {
					"lineItems": {
						"netRevenue": 60000000,
						"profitBeforeInterestAndTax": 1000000,
						"depreciation": 0,
						"interestExpenses": 0
					}
				},
				"balanceSheet": {
					"totalBorrowing": 0
				}
			}
		]
	}
}`

func TestLoadRecordFromReaderEnvelope(t *testing.T) {
	record, err := LoadRecordFromReader(strings.NewReader(sampleEnvelope))
	if err != nil {
		t.Fatalf("LoadRecordFromReader() error = %v", err)
	}
	if len(record.Financials) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(record.Financials))
	}
	if got := record.TotalRevenue(0); got != 60000000 {
		t.Errorf("TotalRevenue(0) = %v, expected 60000000", got)
	}
}

func TestLoadRecordFromReaderBareRecord(t *testing.T) {
	bare := `{"financials": [{"pnl": {"lineItems": {"netRevenue": 100}}}]}`
	record, err := LoadRecordFromReader(strings.NewReader(bare))
	if err != nil {
		t.Fatalf("LoadRecordFromReader() error = %v", err)
	}
	if got := record.TotalRevenue(0); got != 100 {
		t.Errorf("TotalRevenue(0) = %v, expected 100", got)
	}
}

func TestLoadRecordFromReaderMalformedLineItem(t *testing.T) {
	body := `{"financials": [{"pnl": {"lineItems": {"netRevenue": "not-a-number"}}}]}`
	record, err := LoadRecordFromReader(strings.NewReader(body))
	if err != nil {
		t.Fatalf("LoadRecordFromReader() error = %v, malformed line items must not fail the parse", err)
	}
	if got := record.TotalRevenue(0); got != 0 {
		t.Errorf("TotalRevenue(0) = %v, expected 0 for non-numeric value", got)
	}
}

func TestLoadRecordFromReaderInvalidJSON(t *testing.T) {
	if _, err := LoadRecordFromReader(strings.NewReader("{not json")); err == nil {
		t.Error("LoadRecordFromReader() expected error for invalid JSON, got nil")
	}
}

func TestLoadRecordFromReaderFinancialsNotAList(t *testing.T) {
	if _, err := LoadRecordFromReader(strings.NewReader(`{"financials": "oops"}`)); err == nil {
		t.Error("LoadRecordFromReader() expected error for non-list financials, got nil")
	}
}

func TestLoadRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(sampleEnvelope), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	record, err := LoadRecord(path)
	if err != nil {
		t.Fatalf("LoadRecord() error = %v", err)
	}
	if len(record.Financials) != 1 {
		t.Errorf("expected 1 statement, got %d", len(record.Financials))
	}
}

func TestLoadRecordMissingFile(t *testing.T) {
	if _, err := LoadRecord(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("LoadRecord() expected error for missing file, got nil")
	}
}
