package dto

import (
	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// MetricProgressResponse is the progress toward one metric target.
type MetricProgressResponse struct {
	MetricID       string          `json:"metric_id"`
	Unit           string          `json:"unit,omitempty"`
	Target         decimal.Decimal `json:"target"`
	Actual         decimal.Decimal `json:"actual"`
	Remaining      decimal.Decimal `json:"remaining"`
	Percentage     float64         `json:"percentage"`
	IsOverachieved bool            `json:"is_overachieved"`

	CanonicalUnit   string          `json:"canonical_unit,omitempty"`
	CanonicalTarget decimal.Decimal `json:"canonical_target"`
	CanonicalActual decimal.Decimal `json:"canonical_actual"`
}

// GoalProgressResponse represents a goal's progress in API responses.
type GoalProgressResponse struct {
	GoalID              string                   `json:"goal_id"`
	Metrics             []MetricProgressResponse `json:"metrics"`
	OverallPercentage   float64                  `json:"overall_percentage"`
	IsComplete          bool                     `json:"is_complete"`
	MatchingActionCount int                      `json:"matching_action_count"`
	Cached              bool                     `json:"cached"`
}

// ProgressSummaryResponse represents progress across every goal.
type ProgressSummaryResponse struct {
	TotalGoals          int                    `json:"total_goals"`
	CompleteGoals       int                    `json:"complete_goals"`
	InProgressGoals     int                    `json:"in_progress_goals"`
	AverageCompletion   float64                `json:"average_completion"`
	TotalActionsMatched int                    `json:"total_actions_matched"`
	Goals               []GoalProgressResponse `json:"goals"`
}

// ToGoalProgressResponse converts a GoalProgress value to a GoalProgressResponse.
func ToGoalProgressResponse(p valueobject.GoalProgress, cached bool) GoalProgressResponse {
	response := GoalProgressResponse{
		GoalID:              p.GoalID.String(),
		Metrics:             make([]MetricProgressResponse, len(p.Metrics)),
		OverallPercentage:   p.OverallPercentage,
		IsComplete:          p.IsComplete,
		MatchingActionCount: p.MatchingActionCount,
		Cached:              cached,
	}
	for i, m := range p.Metrics {
		response.Metrics[i] = MetricProgressResponse{
			MetricID:       m.MetricID.String(),
			Unit:           m.Unit,
			Target:         m.Target,
			Actual:         m.Actual,
			Remaining:      m.Remaining,
			Percentage:     m.Percentage,
			IsOverachieved: m.IsOverachieved,

			CanonicalUnit:   m.CanonicalUnit,
			CanonicalTarget: m.CanonicalTarget,
			CanonicalActual: m.CanonicalActual,
		}
	}
	return response
}

// ToProgressSummaryResponse converts a summary and its goals to a ProgressSummaryResponse.
func ToProgressSummaryResponse(s valueobject.ProgressSummary, goals []valueobject.GoalProgress) ProgressSummaryResponse {
	response := ProgressSummaryResponse{
		TotalGoals:          s.TotalGoals,
		CompleteGoals:       s.CompleteGoals,
		InProgressGoals:     s.InProgressGoals,
		AverageCompletion:   s.AverageCompletion,
		TotalActionsMatched: s.TotalActionsMatched,
		Goals:               make([]GoalProgressResponse, len(goals)),
	}
	for i, g := range goals {
		response.Goals[i] = ToGoalProgressResponse(g, false)
	}
	return response
}
