package valueobject

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MetricProgress is the progress toward one metric target of a goal.
type MetricProgress struct {
	MetricID       uuid.UUID
	Unit           string
	Target         decimal.Decimal
	Actual         decimal.Decimal
	Remaining      decimal.Decimal
	Percentage     float64 // capped at 100
	IsOverachieved bool
	// Target and actual expressed in the metric's canonical unit; equal to
	// Unit, Target and Actual when the metric has no conversion.
	CanonicalUnit   string
	CanonicalTarget decimal.Decimal
	CanonicalActual decimal.Decimal
}

// GoalProgress is the computed progress of a goal.
type GoalProgress struct {
	GoalID              uuid.UUID
	Metrics             []MetricProgress // ordered by metric id
	OverallPercentage   float64
	IsComplete          bool
	MatchingActionCount int
}

// PerMetricPercentage returns the percentage for each target metric.
func (p GoalProgress) PerMetricPercentage() map[uuid.UUID]float64 {
	out := make(map[uuid.UUID]float64, len(p.Metrics))
	for _, m := range p.Metrics {
		out[m.MetricID] = m.Percentage
	}
	return out
}

// ProgressSummary aggregates progress across goals.
type ProgressSummary struct {
	TotalGoals          int
	CompleteGoals       int
	InProgressGoals     int
	AverageCompletion   float64
	TotalActionsMatched int
}
