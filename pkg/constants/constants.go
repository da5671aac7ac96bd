// Package constants provides shared constants for the flag-probe application.
package constants

// Flag names recognized in evaluation results.
const (
	// TotalRevenue5CrFlagName marks revenue at or above the 5 crore floor
	TotalRevenue5CrFlagName = "TOTAL_REVENUE_5CR_FLAG"

	// BorrowingToRevenueFlagName marks borrowing out of proportion to revenue
	BorrowingToRevenueFlagName = "BORROWING_TO_REVENUE_FLAG"

	// ISCRFlagName marks interest service coverage below the floor
	ISCRFlagName = "ISCR_FLAG"
)

// Threshold defaults
const (
	// DefaultRevenueFloor is the revenue threshold for the 5 crore flag,
	// in the record's currency unit
	DefaultRevenueFloor = 50000000.0

	// DefaultBorrowingToRevenueMax is the borrowing-to-revenue ratio at or
	// above which the borrowing flag raises
	DefaultBorrowingToRevenueMax = 0.25

	// DefaultISCRFloor is the interest service coverage ratio below which
	// the ISCR flag raises
	DefaultISCRFloor = 2.0
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatJSON is the machine-readable output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultRecordFile is the default input record file name
	DefaultRecordFile = "data.json"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the probe API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size for
	// JSON records (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// Reporting date layouts
const (
	// ReportingDateLayout is the full reporting date format used in records
	ReportingDateLayout = "2006-01-02"

	// ReportingMonthLayout is the month-granularity fallback format
	ReportingMonthLayout = "2006-01"
)
