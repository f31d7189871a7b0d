package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// MetricContributionResponse is the share of an action credited to one metric.
type MetricContributionResponse struct {
	MetricID string          `json:"metric_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// MatchResponse represents one action-goal match in API responses.
type MatchResponse struct {
	ActionID        string                       `json:"action_id"`
	GoalID          string                       `json:"goal_id"`
	PeriodMatch     bool                         `json:"period_match"`
	KeywordMatch    bool                         `json:"keyword_match"`
	Metrics         []MetricContributionResponse `json:"metrics"`
	Contribution    decimal.Decimal              `json:"contribution"`
	Confidence      float64                      `json:"confidence"`
	ConfidenceLevel string                       `json:"confidence_level"`
}

// SuggestionsResponse represents the match suggestions of an action.
type SuggestionsResponse struct {
	ActionID  string          `json:"action_id"`
	Confident []MatchResponse `json:"confident"`
	Ambiguous []MatchResponse `json:"ambiguous"`
}

// InferenceResponse represents a batch match run over a period.
type InferenceResponse struct {
	TermID             *string         `json:"term_id,omitempty"`
	From               time.Time       `json:"from"`
	To                 time.Time       `json:"to"`
	RunAt              time.Time       `json:"run_at"`
	ActionsAnalyzed    int             `json:"actions_analyzed"`
	GoalsAnalyzed      int             `json:"goals_analyzed"`
	MatchCount         int             `json:"match_count"`
	Confident          []MatchResponse `json:"confident"`
	Ambiguous          []MatchResponse `json:"ambiguous"`
	UnmatchedActionIDs []string        `json:"unmatched_action_ids"`
}

// GoalMatchesResponse represents the actions matching one goal.
type GoalMatchesResponse struct {
	GoalID          string          `json:"goal_id"`
	ActionsAnalyzed int             `json:"actions_analyzed"`
	Matches         []MatchResponse `json:"matches"`
	Total           decimal.Decimal `json:"total"`
}

// ConfirmMatchResponse represents the result of confirming a match.
type ConfirmMatchResponse struct {
	Action ActionResponse `json:"action"`
	Match  MatchResponse  `json:"match"`
}

// ToMatchResponse converts a MatchResult to a MatchResponse DTO.
func ToMatchResponse(r valueobject.MatchResult) MatchResponse {
	response := MatchResponse{
		ActionID:        r.ActionID.String(),
		GoalID:          r.GoalID.String(),
		PeriodMatch:     r.PeriodMatch,
		KeywordMatch:    r.KeywordMatch,
		Metrics:         make([]MetricContributionResponse, len(r.Metrics)),
		Contribution:    r.Contribution,
		Confidence:      r.Confidence,
		ConfidenceLevel: string(r.Band()),
	}
	for i, m := range r.Metrics {
		response.Metrics[i] = MetricContributionResponse{
			MetricID: m.MetricID.String(),
			Amount:   m.Amount,
		}
	}
	return response
}

// ToSuggestionsResponse converts MatchSuggestions to a SuggestionsResponse DTO.
func ToSuggestionsResponse(s valueobject.MatchSuggestions) SuggestionsResponse {
	response := SuggestionsResponse{
		ActionID:  s.ActionID.String(),
		Confident: make([]MatchResponse, len(s.Confident)),
		Ambiguous: make([]MatchResponse, len(s.Ambiguous)),
	}
	for i, r := range s.Confident {
		response.Confident[i] = ToMatchResponse(r)
	}
	for i, r := range s.Ambiguous {
		response.Ambiguous[i] = ToMatchResponse(r)
	}
	return response
}

func toMatchResponses(results []valueobject.MatchResult) []MatchResponse {
	out := make([]MatchResponse, len(results))
	for i, r := range results {
		out[i] = ToMatchResponse(r)
	}
	return out
}

// ToInferenceResponse converts an inference run to an InferenceResponse DTO.
func ToInferenceResponse(termID *uuid.UUID, from, to, runAt time.Time, s valueobject.InferenceSession) InferenceResponse {
	response := InferenceResponse{
		From:               from,
		To:                 to,
		RunAt:              runAt,
		ActionsAnalyzed:    s.ActionsAnalyzed,
		GoalsAnalyzed:      s.GoalsAnalyzed,
		MatchCount:         s.MatchCount(),
		Confident:          toMatchResponses(s.Confident),
		Ambiguous:          toMatchResponses(s.Ambiguous),
		UnmatchedActionIDs: make([]string, len(s.Unmatched)),
	}
	if termID != nil {
		id := termID.String()
		response.TermID = &id
	}
	for i, id := range s.Unmatched {
		response.UnmatchedActionIDs[i] = id.String()
	}
	return response
}

// ToGoalMatchesResponse converts goal matches to a GoalMatchesResponse DTO.
func ToGoalMatchesResponse(goalID uuid.UUID, actionsAnalyzed int, matches []valueobject.MatchResult, total decimal.Decimal) GoalMatchesResponse {
	return GoalMatchesResponse{
		GoalID:          goalID.String(),
		ActionsAnalyzed: actionsAnalyzed,
		Matches:         toMatchResponses(matches),
		Total:           total,
	}
}
