package datetime

import (
	"testing"
	"time"

	"github.com/finflags/flag-probe/pkg/constants"
)

func TestParseReportingDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantOK   bool
		wantTime time.Time
	}{
		{
			name:     "Full layout",
			input:    "2021-03-31",
			wantOK:   true,
			wantTime: MustParseTime(constants.ReportingDateLayout, "2021-03-31"),
		},
		{
			name:     "Month-only fallback",
			input:    "2021-03",
			wantOK:   true,
			wantTime: MustParseTime(constants.ReportingMonthLayout, "2021-03"),
		},
		{
			name:   "Empty string",
			input:  "",
			wantOK: false,
		},
		{
			name:   "Garbage",
			input:  "not-a-date",
			wantOK: false,
		},
		{
			name:   "Unsupported layout",
			input:  "31/03/2021",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseReportingDate(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseReportingDate(%q) ok = %t, expected %t", tt.input, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.wantTime) {
				t.Errorf("ParseReportingDate(%q) = %v, expected %v", tt.input, got, tt.wantTime)
			}
		})
	}
}
