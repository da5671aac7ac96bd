// Package rules implements the flag predicates and the evaluation
// orchestrator over a financial record.
package rules

import (
	"github.com/finflags/flag-probe/internal/config"
	"github.com/finflags/flag-probe/internal/statement"
	"github.com/finflags/flag-probe/pkg/numeric"
)

// RuleSet binds the flag predicates to a set of business thresholds. The
// predicates are pure functions of (record, index); nothing is mutated and
// no state is carried between calls.
type RuleSet struct {
	thresholds config.Thresholds
}

// NewRuleSet returns a RuleSet evaluating against the given thresholds.
// Zero-valued thresholds fall back to the stock defaults.
func NewRuleSet(thresholds config.Thresholds) RuleSet {
	defaults := config.DefaultThresholds()
	if thresholds.RevenueFloor == 0 {
		thresholds.RevenueFloor = defaults.RevenueFloor
	}
	if thresholds.BorrowingToRevenueMax == 0 {
		thresholds.BorrowingToRevenueMax = defaults.BorrowingToRevenueMax
	}
	if thresholds.ISCRFloor == 0 {
		thresholds.ISCRFloor = defaults.ISCRFloor
	}
	return RuleSet{thresholds: thresholds}
}

// Thresholds returns the thresholds the rule set evaluates against.
func (rs RuleSet) Thresholds() config.Thresholds {
	return rs.thresholds
}

// TotalRevenue5CrFlag reports whether revenue at index meets the revenue
// floor.
func (rs RuleSet) TotalRevenue5CrFlag(rec *statement.Record, index int) bool {
	return rec.TotalRevenue(index) >= rs.thresholds.RevenueFloor
}

// BorrowingToRevenueFlag flags borrowing out of proportion to revenue. Zero
// borrowing is never flagged; borrowing against zero revenue always is.
func (rs RuleSet) BorrowingToRevenueFlag(rec *statement.Record, index int) bool {
	borrowing := rec.TotalBorrowing(index)
	if numeric.IsZero(borrowing) {
		return false
	}
	revenue := rec.TotalRevenue(index)
	if numeric.IsZero(revenue) {
		return true
	}
	return borrowing/revenue >= rs.thresholds.BorrowingToRevenueMax
}

// ISCRFlag flags interest service coverage below the floor.
func (rs RuleSet) ISCRFlag(rec *statement.Record, index int) bool {
	return rec.ISCR(index) < rs.thresholds.ISCRFloor
}
