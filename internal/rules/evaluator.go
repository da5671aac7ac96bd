package rules

import (
	"github.com/finflags/flag-probe/internal/config"
	"github.com/finflags/flag-probe/internal/statement"
	"github.com/finflags/flag-probe/pkg/constants"
	"go.uber.org/zap"
)

// Result is the outcome of one evaluation.
type Result struct {
	Flags   map[string]bool `json:"flags"`
	Metrics *Metrics        `json:"metrics,omitempty"`
}

// Metrics carries the intermediate values the flags were derived from.
type Metrics struct {
	LatestIndex    int     `json:"latestIndex"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalBorrowing float64 `json:"totalBorrowing"`
	ISCR           float64 `json:"iscr"`
}

// Evaluator computes the full flag set for a record.
type Evaluator struct {
	rules  RuleSet
	logger *zap.Logger
}

// NewEvaluator returns an Evaluator using the given thresholds.
func NewEvaluator(logger *zap.Logger, thresholds config.Thresholds) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{
		rules:  NewRuleSet(thresholds),
		logger: logger,
	}
}

// Probe selects the latest reporting period exactly once and evaluates
// every flag against it. A structurally broken record surfaces as an
// InvalidRecordError instead of defaulting. The record is never mutated;
// the same record yields the same result on every call.
func (e *Evaluator) Probe(rec *statement.Record) (Result, error) {
	latest, err := rec.LatestIndex()
	if err != nil {
		return Result{}, err
	}

	metrics := Metrics{
		LatestIndex:    latest,
		TotalRevenue:   rec.TotalRevenue(latest),
		TotalBorrowing: rec.TotalBorrowing(latest),
		ISCR:           rec.ISCR(latest),
	}

	e.logger.Debug("selected latest reporting period",
		zap.String("op", "rules.Probe"),
		zap.Int("index", latest),
		zap.Int("statements", len(rec.Financials)),
	)

	return Result{
		Flags: map[string]bool{
			constants.TotalRevenue5CrFlagName:    e.rules.TotalRevenue5CrFlag(rec, latest),
			constants.BorrowingToRevenueFlagName: e.rules.BorrowingToRevenueFlag(rec, latest),
			constants.ISCRFlagName:               e.rules.ISCRFlag(rec, latest),
		},
		Metrics: &metrics,
	}, nil
}
