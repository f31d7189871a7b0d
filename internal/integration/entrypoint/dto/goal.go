package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// MetricTargetRequest is one metric target of a goal.
type MetricTargetRequest struct {
	MetricID    uuid.UUID       `json:"metric_id"`
	TargetValue decimal.Decimal `json:"target_value"`
}

// ValueAlignmentRequest links a goal to a personal value.
type ValueAlignmentRequest struct {
	ValueID           uuid.UUID `json:"value_id"`
	AlignmentStrength *int      `json:"alignment_strength,omitempty"`
	Notes             *string   `json:"notes,omitempty"`
}

// GoalRequest represents the request body for goal creation and update.
// Update replaces the whole goal, child sets included.
type GoalRequest struct {
	Title              *string                 `json:"title,omitempty"`
	Description        *string                 `json:"description,omitempty"`
	Importance         *int                    `json:"importance,omitempty"`
	Urgency            *int                    `json:"urgency,omitempty"`
	StartDate          *time.Time              `json:"start_date,omitempty"`
	TargetDate         *time.Time              `json:"target_date,omitempty"`
	ActionPlan         *string                 `json:"action_plan,omitempty"`
	ExpectedTermLength *int                    `json:"expected_term_length,omitempty"`
	MetricTargets      []MetricTargetRequest   `json:"metric_targets,omitempty"`
	ValueAlignments    []ValueAlignmentRequest `json:"value_alignments,omitempty"`
}

// ToForm converts the request into goal form data.
func (r GoalRequest) ToForm() entity.GoalFormData {
	form := entity.GoalFormData{
		Title:              r.Title,
		Description:        r.Description,
		Importance:         r.Importance,
		Urgency:            r.Urgency,
		StartDate:          r.StartDate,
		TargetDate:         r.TargetDate,
		ActionPlan:         r.ActionPlan,
		ExpectedTermLength: r.ExpectedTermLength,
	}
	for _, t := range r.MetricTargets {
		form.MetricTargets = append(form.MetricTargets, entity.MetricTargetInput{
			MetricID:    t.MetricID,
			TargetValue: t.TargetValue,
		})
	}
	for _, a := range r.ValueAlignments {
		form.ValueAlignments = append(form.ValueAlignments, entity.ValueAlignmentInput{
			ValueID:           a.ValueID,
			AlignmentStrength: a.AlignmentStrength,
			Notes:             a.Notes,
		})
	}
	return form
}

// MetricTargetResponse is one metric target in API responses.
type MetricTargetResponse struct {
	ID          string          `json:"id"`
	MetricID    string          `json:"metric_id"`
	TargetValue decimal.Decimal `json:"target_value"`
}

// ValueAlignmentResponse is one value alignment in API responses.
type ValueAlignmentResponse struct {
	ID                string  `json:"id"`
	ValueID           string  `json:"value_id"`
	AlignmentStrength *int    `json:"alignment_strength,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID                 string                   `json:"id"`
	Title              *string                  `json:"title,omitempty"`
	Description        *string                  `json:"description,omitempty"`
	Importance         int                      `json:"importance"`
	Urgency            int                      `json:"urgency"`
	StartDate          *time.Time               `json:"start_date,omitempty"`
	TargetDate         *time.Time               `json:"target_date,omitempty"`
	ActionPlan         *string                  `json:"action_plan,omitempty"`
	ExpectedTermLength *int                     `json:"expected_term_length,omitempty"`
	Classification     string                   `json:"classification"`
	MetricTargets      []MetricTargetResponse   `json:"metric_targets"`
	ValueAlignments    []ValueAlignmentResponse `json:"value_alignments"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a goal aggregate to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	exp := g.Expectation
	details := g.Details()

	response := GoalResponse{
		ID:                 exp.ID.String(),
		Title:              exp.Title,
		Description:        exp.Description,
		Importance:         exp.Importance,
		Urgency:            exp.Urgency,
		StartDate:          utc(details.StartDate),
		TargetDate:         utc(details.TargetDate),
		ActionPlan:         details.ActionPlan,
		ExpectedTermLength: details.ExpectedTermLength,
		Classification:     string(g.Classification()),
		MetricTargets:      make([]MetricTargetResponse, len(g.Measures)),
		ValueAlignments:    make([]ValueAlignmentResponse, len(g.Relevances)),
		CreatedAt:          exp.CreatedAt,
		UpdatedAt:          exp.UpdatedAt,
	}
	for i, m := range g.Measures {
		response.MetricTargets[i] = MetricTargetResponse{
			ID:          m.ID.String(),
			MetricID:    m.MetricID.String(),
			TargetValue: m.TargetValue,
		}
	}
	for i, r := range g.Relevances {
		response.ValueAlignments[i] = ValueAlignmentResponse{
			ID:                r.ID.String(),
			ValueID:           r.ValueID.String(),
			AlignmentStrength: r.AlignmentStrength,
			Notes:             r.Notes,
		}
	}
	return response
}

// ToGoalListResponse converts goal aggregates to a GoalListResponse.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	out := make([]GoalResponse, len(goals))
	for i, g := range goals {
		out[i] = ToGoalResponse(g)
	}
	return GoalListResponse{Goals: out}
}
