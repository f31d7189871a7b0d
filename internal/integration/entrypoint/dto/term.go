package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/usecase/term"
	"github.com/goal-tracker/backend/internal/domain/entity"
)

// TermRequest represents the request body for term creation and update.
type TermRequest struct {
	TermNumber *int        `json:"term_number,omitempty"`
	Theme      *string     `json:"theme,omitempty"`
	StartDate  *time.Time  `json:"start_date,omitempty"`
	TargetDate *time.Time  `json:"target_date,omitempty"`
	Reflection *string     `json:"reflection,omitempty"`
	GoalIDs    []uuid.UUID `json:"goal_ids,omitempty"`
}

// ToForm converts the request into term form data.
func (r TermRequest) ToForm() entity.TermFormData {
	return entity.TermFormData{
		TermNumber: r.TermNumber,
		Theme:      r.Theme,
		StartDate:  r.StartDate,
		TargetDate: r.TargetDate,
		Reflection: r.Reflection,
		GoalIDs:    r.GoalIDs,
	}
}

// TermLifecycleResponse describes where a term sits relative to now.
type TermLifecycleResponse struct {
	Status          string  `json:"status"`
	DaysElapsed     int     `json:"days_elapsed"`
	DaysRemaining   int     `json:"days_remaining"`
	ElapsedFraction float64 `json:"elapsed_fraction"`
}

// TermResponse represents a single term in API responses.
type TermResponse struct {
	ID         string                 `json:"id"`
	TermNumber int                    `json:"term_number"`
	Theme      *string                `json:"theme,omitempty"`
	StartDate  time.Time              `json:"start_date"`
	TargetDate time.Time              `json:"target_date"`
	Reflection *string                `json:"reflection,omitempty"`
	GoalIDs    []string               `json:"goal_ids"`
	Lifecycle  *TermLifecycleResponse `json:"lifecycle,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// TermListResponse represents the response for listing terms.
type TermListResponse struct {
	Terms          []TermResponse `json:"terms"`
	NextTermNumber int            `json:"next_term_number"`
}

// ToTermResponse converts a term plan to a TermResponse DTO.
func ToTermResponse(plan *entity.TermPlan) TermResponse {
	t := plan.Term
	return TermResponse{
		ID:         t.ID.String(),
		TermNumber: t.TermNumber,
		Theme:      t.Theme,
		StartDate:  t.StartDate.UTC(),
		TargetDate: t.TargetDate.UTC(),
		Reflection: t.Reflection,
		GoalIDs:    idStrings(plan.GoalIDs()),
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

// ToTermOverviewResponse converts a term overview to a TermResponse with its lifecycle.
func ToTermOverviewResponse(o term.Overview) TermResponse {
	response := ToTermResponse(o.Plan)
	response.Lifecycle = &TermLifecycleResponse{
		Status:          string(o.Status),
		DaysElapsed:     o.DaysElapsed,
		DaysRemaining:   o.DaysRemaining,
		ElapsedFraction: o.ElapsedFraction,
	}
	return response
}

// ToTermListResponse converts the term list output to a TermListResponse.
func ToTermListResponse(output *term.ListTermsOutput) TermListResponse {
	terms := make([]TermResponse, len(output.Terms))
	for i, o := range output.Terms {
		terms[i] = ToTermOverviewResponse(o)
	}
	return TermListResponse{Terms: terms, NextTermNumber: output.NextTermNumber}
}
