package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Form data records are the raw, unassembled shapes a client submits. They carry
// no identifiers of their own and are validated before any row is built.

// MetricTargetInput is one (metric, target) pair on a goal form.
type MetricTargetInput struct {
	MetricID    uuid.UUID
	TargetValue decimal.Decimal
}

// ValueAlignmentInput is one (value, strength) pair on a goal form.
type ValueAlignmentInput struct {
	ValueID           uuid.UUID
	AlignmentStrength *int
	Notes             *string
}

// GoalFormData is the submitted shape of a goal.
type GoalFormData struct {
	Title              *string
	Description        *string
	Importance         *int
	Urgency            *int
	StartDate          *time.Time
	TargetDate         *time.Time
	ActionPlan         *string
	ExpectedTermLength *int
	MetricTargets      []MetricTargetInput
	ValueAlignments    []ValueAlignmentInput
}

// MeasurementInput is one (metric, value) pair on an action form.
type MeasurementInput struct {
	MetricID uuid.UUID
	Value    decimal.Decimal
}

// GoalLinkInput asks for an action to be counted toward a goal. MetricID scopes
// the contribution; a nil ContributionAmount is derived from the measurements.
// Confidence defaults to 1.0.
type GoalLinkInput struct {
	GoalID             uuid.UUID
	MetricID           *uuid.UUID
	ContributionAmount *decimal.Decimal
	AssignmentMethod   AssignmentMethod
	Confidence         *float64
}

// ActionFormData is the submitted shape of an action.
type ActionFormData struct {
	Title           *string
	Description     *string
	Notes           *string
	StartTime       *time.Time
	DurationMinutes *float64
	Measurements    []MeasurementInput
	GoalLinks       []GoalLinkInput
}

// PersonalValueFormData is the submitted shape of a personal value.
type PersonalValueFormData struct {
	Title             *string
	Description       *string
	Priority          *int
	Level             ValueLevel
	LifeDomain        *string
	AlignmentGuidance *string
}

// TermFormData is the submitted shape of a term.
type TermFormData struct {
	TermNumber *int
	Theme      *string
	StartDate  *time.Time
	TargetDate *time.Time
	Reflection *string
	GoalIDs    []uuid.UUID
}
