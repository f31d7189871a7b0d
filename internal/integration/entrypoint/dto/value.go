package dto

import (
	"time"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// ValueRequest represents the request body for personal value creation and update.
type ValueRequest struct {
	Title             *string `json:"title,omitempty"`
	Description       *string `json:"description,omitempty"`
	Priority          *int    `json:"priority,omitempty"`
	Level             string  `json:"level,omitempty"`
	LifeDomain        *string `json:"life_domain,omitempty"`
	AlignmentGuidance *string `json:"alignment_guidance,omitempty"`
}

// ToForm converts the request into personal value form data.
func (r ValueRequest) ToForm() entity.PersonalValueFormData {
	return entity.PersonalValueFormData{
		Title:             r.Title,
		Description:       r.Description,
		Priority:          r.Priority,
		Level:             entity.ValueLevel(r.Level),
		LifeDomain:        r.LifeDomain,
		AlignmentGuidance: r.AlignmentGuidance,
	}
}

// ValueResponse represents a single personal value in API responses.
type ValueResponse struct {
	ID                string    `json:"id"`
	Title             *string   `json:"title,omitempty"`
	Description       *string   `json:"description,omitempty"`
	Priority          int       `json:"priority"`
	Level             string    `json:"level"`
	LifeDomain        string    `json:"life_domain"`
	AlignmentGuidance *string   `json:"alignment_guidance,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ValueListResponse represents the response for listing personal values.
type ValueListResponse struct {
	Values []ValueResponse `json:"values"`
}

// ToValueResponse converts a PersonalValue entity to a ValueResponse DTO.
func ToValueResponse(v *entity.PersonalValue) ValueResponse {
	return ValueResponse{
		ID:                v.ID.String(),
		Title:             v.Title,
		Description:       v.Description,
		Priority:          v.Priority,
		Level:             string(v.Level),
		LifeDomain:        v.LifeDomain,
		AlignmentGuidance: v.AlignmentGuidance,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

// ToValueListResponse converts personal values to a ValueListResponse.
func ToValueListResponse(values []*entity.PersonalValue) ValueListResponse {
	out := make([]ValueResponse, len(values))
	for i, v := range values {
		out[i] = ToValueResponse(v)
	}
	return ValueListResponse{Values: out}
}
