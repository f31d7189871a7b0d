package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// MeasurementRequest is one measured value of an action.
type MeasurementRequest struct {
	MetricID uuid.UUID       `json:"metric_id"`
	Value    decimal.Decimal `json:"value"`
}

// GoalLinkRequest asks for an action to count toward a goal.
type GoalLinkRequest struct {
	GoalID             uuid.UUID        `json:"goal_id"`
	MetricID           *uuid.UUID       `json:"metric_id,omitempty"`
	ContributionAmount *decimal.Decimal `json:"contribution_amount,omitempty"`
	AssignmentMethod   string           `json:"assignment_method,omitempty" binding:"omitempty,oneof=manual auto_inferred user_confirmed"`
	Confidence         *float64         `json:"confidence,omitempty"`
}

// ActionRequest represents the request body for action creation and update.
type ActionRequest struct {
	Title           *string              `json:"title,omitempty"`
	Description     *string              `json:"description,omitempty"`
	Notes           *string              `json:"notes,omitempty"`
	StartTime       *time.Time           `json:"start_time,omitempty"`
	DurationMinutes *float64             `json:"duration_minutes,omitempty"`
	Measurements    []MeasurementRequest `json:"measurements,omitempty"`
	GoalLinks       []GoalLinkRequest    `json:"goal_links,omitempty" binding:"dive"`
}

// ToForm converts the request into action form data.
func (r ActionRequest) ToForm() entity.ActionFormData {
	form := entity.ActionFormData{
		Title:           r.Title,
		Description:     r.Description,
		Notes:           r.Notes,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
	}
	for _, m := range r.Measurements {
		form.Measurements = append(form.Measurements, entity.MeasurementInput{
			MetricID: m.MetricID,
			Value:    m.Value,
		})
	}
	for _, l := range r.GoalLinks {
		form.GoalLinks = append(form.GoalLinks, entity.GoalLinkInput{
			GoalID:             l.GoalID,
			MetricID:           l.MetricID,
			ContributionAmount: l.ContributionAmount,
			AssignmentMethod:   entity.AssignmentMethod(l.AssignmentMethod),
			Confidence:         l.Confidence,
		})
	}
	return form
}

// ConfirmMatchRequest represents the request body for confirming a match.
type ConfirmMatchRequest struct {
	GoalID uuid.UUID `json:"goal_id" binding:"required"`
}

// MeasurementResponse is one measured value in API responses.
type MeasurementResponse struct {
	ID       string          `json:"id"`
	MetricID string          `json:"metric_id"`
	Value    decimal.Decimal `json:"value"`
}

// ContributionResponse is one goal contribution in API responses.
type ContributionResponse struct {
	ID                 string          `json:"id"`
	GoalID             string          `json:"goal_id"`
	MetricID           *string         `json:"metric_id,omitempty"`
	ContributionAmount decimal.Decimal `json:"contribution_amount"`
	AssignmentMethod   string          `json:"assignment_method"`
	Confidence         float64         `json:"confidence"`
}

// ActionResponse represents a single action in API responses.
type ActionResponse struct {
	ID              string                 `json:"id"`
	Title           *string                `json:"title,omitempty"`
	Description     *string                `json:"description,omitempty"`
	Notes           *string                `json:"notes,omitempty"`
	StartTime       *time.Time             `json:"start_time,omitempty"`
	DurationMinutes *float64               `json:"duration_minutes,omitempty"`
	Measurements    []MeasurementResponse  `json:"measurements"`
	Contributions   []ContributionResponse `json:"contributions"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// ActionListResponse represents the response for listing actions.
type ActionListResponse struct {
	Actions []ActionResponse `json:"actions"`
}

// ToActionResponse converts an action aggregate to an ActionResponse DTO.
func ToActionResponse(r *entity.ActionRecord) ActionResponse {
	a := r.Action
	response := ActionResponse{
		ID:              a.ID.String(),
		Title:           a.Title,
		Description:     a.Description,
		Notes:           a.Notes,
		StartTime:       utc(a.StartTime),
		DurationMinutes: a.DurationMinutes,
		Measurements:    make([]MeasurementResponse, len(r.Measurements)),
		Contributions:   make([]ContributionResponse, len(r.Contributions)),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	for i, m := range r.Measurements {
		response.Measurements[i] = MeasurementResponse{
			ID:       m.ID.String(),
			MetricID: m.MetricID.String(),
			Value:    m.Value,
		}
	}
	for i, c := range r.Contributions {
		response.Contributions[i] = ContributionResponse{
			ID:                 c.ID.String(),
			GoalID:             c.GoalID.String(),
			MetricID:           optionalID(c.MetricID),
			ContributionAmount: c.ContributionAmount,
			AssignmentMethod:   string(c.AssignmentMethod),
			Confidence:         c.Confidence,
		}
	}
	return response
}

// ToActionListResponse converts action aggregates to an ActionListResponse.
func ToActionListResponse(records []*entity.ActionRecord) ActionListResponse {
	out := make([]ActionResponse, len(records))
	for i, r := range records {
		out[i] = ToActionResponse(r)
	}
	return ActionListResponse{Actions: out}
}
