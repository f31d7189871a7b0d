package valueobject

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Confidence represents the confidence band of an action-goal match.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ConfidenceBand buckets a 0-1 score.
func ConfidenceBand(score float64) Confidence {
	switch {
	case score >= 0.7:
		return ConfidenceHigh
	case score >= 0.4:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// MetricContribution is the share of an action credited to one goal metric.
type MetricContribution struct {
	MetricID uuid.UUID
	Amount   decimal.Decimal
}

// MatchResult is the outcome of matching one action against one goal.
type MatchResult struct {
	ActionID     uuid.UUID
	GoalID       uuid.UUID
	IsMatch      bool
	PeriodMatch  bool
	KeywordMatch bool
	// Per-metric amounts for the overlapping metrics, ordered by metric id
	Metrics      []MetricContribution
	Contribution decimal.Decimal
	Confidence   float64
}

// OverlappingMetricIDs returns the ids of the overlapping metrics.
func (r MatchResult) OverlappingMetricIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(r.Metrics))
	for i, m := range r.Metrics {
		ids[i] = m.MetricID
	}
	return ids
}

// Band returns the confidence band of the match.
func (r MatchResult) Band() Confidence {
	return ConfidenceBand(r.Confidence)
}

// MatchSuggestions splits the matches of one action into confident and ambiguous lists.
type MatchSuggestions struct {
	ActionID  uuid.UUID
	Confident []MatchResult
	Ambiguous []MatchResult
}

// InferenceSession is a batch match run over the actions and goals of a period.
type InferenceSession struct {
	ActionsAnalyzed int
	GoalsAnalyzed   int
	Confident       []MatchResult
	Ambiguous       []MatchResult
	// Actions that matched no goal, ordered by id
	Unmatched []uuid.UUID
}

// MatchCount returns the number of matches found in the run.
func (s InferenceSession) MatchCount() int {
	return len(s.Confident) + len(s.Ambiguous)
}
