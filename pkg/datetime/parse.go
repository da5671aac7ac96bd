// Package datetime provides reporting-date parsing utility functions.
package datetime

import (
	"time"

	"github.com/finflags/flag-probe/pkg/constants"
)

// reportingLayouts are tried in order when parsing a reporting date.
var reportingLayouts = []string{
	constants.ReportingDateLayout,
	constants.ReportingMonthLayout,
}

// ParseReportingDate parses a statement's reporting date, accepting the full
// layout or the month-only fallback. The second return is false when the
// value is empty or matches neither layout.
func ParseReportingDate(date string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	for _, layout := range reportingLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MustParseTime parses a date string using the given layout and panics on
// error. This is intended for use in tests where the date string is known to
// be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}
