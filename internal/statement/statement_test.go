package statement

import (
	"errors"
	"testing"

	"github.com/finflags/flag-probe/pkg/numeric"
)

func TestTotalRevenue(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		index    int
		expected float64
	}{
		{
			name: "Revenue present",
			record: Record{Financials: []Statement{
				{PnL: ProfitAndLoss{LineItems: LineItems{NetRevenue: numeric.FromFloat(60000000)}}},
			}},
			index:    0,
			expected: 60000000,
		},
		{
			name: "Revenue absent",
			record: Record{Financials: []Statement{
				{},
			}},
			index:    0,
			expected: 0,
		},
		{
			name:     "Index out of range",
			record:   Record{Financials: []Statement{{}}},
			index:    3,
			expected: 0,
		},
		{
			name:     "Negative index",
			record:   Record{Financials: []Statement{{}}},
			index:    -1,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.TotalRevenue(tt.index); got != tt.expected {
				t.Errorf("TotalRevenue(%d) = %v, expected %v", tt.index, got, tt.expected)
			}
		})
	}
}

func TestISCR(t *testing.T) {
	tests := []struct {
		name     string
		items    LineItems
		expected float64
	}{
		{
			name:     "All fields zero gives exactly one",
			items:    LineItems{},
			expected: 1.0, // (0+0+1)/(0+1)
		},
		{
			name: "Profit nine interest nine gives exactly one",
			items: LineItems{
				ProfitBeforeInterestAndTax: numeric.FromFloat(9),
				InterestExpenses:           numeric.FromFloat(9),
			},
			expected: 1.0, // (9+0+1)/(9+1)
		},
		{
			name: "Healthy coverage",
			items: LineItems{
				ProfitBeforeInterestAndTax: numeric.FromFloat(1000000),
			},
			expected: 1000001, // (1000000+0+1)/(0+1)
		},
		{
			name: "Depreciation contributes to the numerator",
			items: LineItems{
				ProfitBeforeInterestAndTax: numeric.FromFloat(10),
				Depreciation:               numeric.FromFloat(9),
				InterestExpenses:           numeric.FromFloat(4),
			},
			expected: 4.0, // (10+9+1)/(4+1)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := Record{Financials: []Statement{{PnL: ProfitAndLoss{LineItems: tt.items}}}}
			if got := record.ISCR(0); got != tt.expected {
				t.Errorf("ISCR(0) = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestISCROutOfRange(t *testing.T) {
	record := Record{Financials: []Statement{{}}}
	if got := record.ISCR(5); got != 0 {
		t.Errorf("ISCR(5) = %v, expected 0 for out-of-range index", got)
	}
}

func TestTotalBorrowing(t *testing.T) {
	record := Record{Financials: []Statement{
		{BalanceSheet: BalanceSheet{TotalBorrowing: numeric.FromFloat(2500000)}},
		{},
	}}

	if got := record.TotalBorrowing(0); got != 2500000 {
		t.Errorf("TotalBorrowing(0) = %v, expected 2500000", got)
	}
	if got := record.TotalBorrowing(1); got != 0 {
		t.Errorf("TotalBorrowing(1) = %v, expected 0 when absent", got)
	}
}

func TestLatestIndex(t *testing.T) {
	tests := []struct {
		name     string
		dates    []string
		expected int
	}{
		{
			name:     "Single statement",
			dates:    []string{"2021-03-31"},
			expected: 0,
		},
		{
			name:     "Most recent date wins regardless of position",
			dates:    []string{"2022-03-31", "2020-03-31", "2021-03-31"},
			expected: 0,
		},
		{
			name:     "Ascending order selects the last",
			dates:    []string{"2019-03-31", "2020-03-31", "2021-03-31"},
			expected: 2,
		},
		{
			name:     "Undated statement never beats a dated one",
			dates:    []string{"2020-03-31", ""},
			expected: 0,
		},
		{
			name:     "All undated resolves to the last position",
			dates:    []string{"", "", ""},
			expected: 2,
		},
		{
			name:     "Equal dates resolve to the later position",
			dates:    []string{"2021-03-31", "2021-03-31"},
			expected: 1,
		},
		{
			name:     "Month-only dates are comparable",
			dates:    []string{"2021-03", "2022-03"},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record Record
			for _, date := range tt.dates {
				record.Financials = append(record.Financials, Statement{ReportingDate: date})
			}

			got, err := record.LatestIndex()
			if err != nil {
				t.Fatalf("LatestIndex() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("LatestIndex() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestLatestIndexEmptyRecord(t *testing.T) {
	var record Record
	_, err := record.LatestIndex()
	if err == nil {
		t.Fatal("LatestIndex() on empty record expected error, got nil")
	}

	var invalid *InvalidRecordError
	if !errors.As(err, &invalid) {
		t.Errorf("LatestIndex() error = %T, expected *InvalidRecordError", err)
	}
}

func TestValidate(t *testing.T) {
	empty := Record{}
	if err := empty.Validate(); err == nil {
		t.Error("Validate() on empty record expected error, got nil")
	}

	populated := Record{Financials: []Statement{{}}}
	if err := populated.Validate(); err != nil {
		t.Errorf("Validate() error = %v, expected nil for populated record", err)
	}
}
