// Package statement defines the financial record data structures and
// includes default-tolerant accessors over their line items.
package statement

import (
	"time"

	"github.com/finflags/flag-probe/pkg/datetime"
	"github.com/finflags/flag-probe/pkg/numeric"
)

// Record is one company's history of reporting periods.
type Record struct {
	Financials []Statement `json:"financials"`
}

// Statement represents a single reporting period.
type Statement struct {
	ReportingDate string        `json:"reportingDate,omitempty"`
	PnL           ProfitAndLoss `json:"pnl,omitempty"`
	BalanceSheet  BalanceSheet  `json:"balanceSheet,omitempty"`
}

// ProfitAndLoss holds the P&L section of a statement.
type ProfitAndLoss struct {
	LineItems LineItems `json:"lineItems,omitempty"`
}

// LineItems holds the P&L line items consumed by the rule predicates. All
// fields are optional; absent or malformed values read as zero.
type LineItems struct {
	NetRevenue                 numeric.Amount `json:"netRevenue,omitempty"`
	ProfitBeforeInterestAndTax numeric.Amount `json:"profitBeforeInterestAndTax,omitempty"`
	Depreciation               numeric.Amount `json:"depreciation,omitempty"`
	InterestExpenses           numeric.Amount `json:"interestExpenses,omitempty"`
}

// BalanceSheet holds the balance-sheet fields consumed by the rule
// predicates.
type BalanceSheet struct {
	TotalBorrowing numeric.Amount `json:"totalBorrowing,omitempty"`
}

// InvalidRecordError reports a record that violates the structural
// preconditions for evaluation, as opposed to one that is merely missing
// line items.
type InvalidRecordError struct {
	Reason string
}

func (e *InvalidRecordError) Error() string {
	return "invalid financial record: " + e.Reason
}

// Validate checks the structural preconditions for evaluation. Missing line
// items are not a validation failure; a record with no statements is.
func (r *Record) Validate() error {
	if len(r.Financials) == 0 {
		return &InvalidRecordError{Reason: "record has no financial statements"}
	}
	return nil
}

func (r *Record) statement(index int) (Statement, bool) {
	if index < 0 || index >= len(r.Financials) {
		return Statement{}, false
	}
	return r.Financials[index], true
}

// TotalRevenue returns netRevenue of the statement at index, or 0 when the
// statement or the line item is absent.
func (r *Record) TotalRevenue(index int) float64 {
	st, ok := r.statement(index)
	if !ok {
		return 0
	}
	return st.PnL.LineItems.NetRevenue.OrZero()
}

// TotalBorrowing returns the balance-sheet totalBorrowing of the statement
// at index, or 0 when absent.
func (r *Record) TotalBorrowing(index int) float64 {
	st, ok := r.statement(index)
	if !ok {
		return 0
	}
	return st.BalanceSheet.TotalBorrowing.OrZero()
}

// ISCR computes the interest service coverage ratio of the statement at
// index as (profitBeforeInterestAndTax + depreciation + 1) /
// (interestExpenses + 1), with absent fields read as zero. The +1 on both
// sides is the rule set's smoothing policy, not a generic division guard;
// the formula must stay exact. An out-of-range index yields 0.
func (r *Record) ISCR(index int) float64 {
	st, ok := r.statement(index)
	if !ok {
		return 0
	}
	items := st.PnL.LineItems
	numerator := items.ProfitBeforeInterestAndTax.OrZero() + items.Depreciation.OrZero() + 1
	denominator := items.InterestExpenses.OrZero() + 1
	return numerator / denominator
}

// LatestIndex returns the position of the most recent statement. Ordering is
// by parsed reportingDate; a statement without a parseable date never beats
// a dated one, and ties (including the all-undated case) resolve to the
// later array position. Returns an InvalidRecordError when the record holds
// no statements.
func (r *Record) LatestIndex() (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}

	latest := 0
	latestDate, latestDated := datetime.ParseReportingDate(r.Financials[0].ReportingDate)
	for i := 1; i < len(r.Financials); i++ {
		date, dated := datetime.ParseReportingDate(r.Financials[i].ReportingDate)
		if supersedes(date, dated, latestDate, latestDated) {
			latest = i
			latestDate = date
			latestDated = dated
		}
	}
	return latest, nil
}

// supersedes reports whether a candidate statement should replace the
// current latest selection.
func supersedes(date time.Time, dated bool, latestDate time.Time, latestDated bool) bool {
	switch {
	case dated && !latestDated:
		return true
	case !dated && latestDated:
		return false
	case !dated && !latestDated:
		// Neither side has a usable date; array order decides.
		return true
	default:
		return !date.Before(latestDate)
	}
}
