// Package validator holds the two-phase validators for each aggregate root.
//
// ValidateFormData applies business rules to raw form input before any row is
// assembled. ValidateComplete applies referential rules to the assembled graph
// after identifiers exist and before anything is written. Validators accept
// values only and never touch storage.
package validator

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/validation"
)

var (
	importanceRange = validation.Closed(entity.MinImportance, entity.MaxImportance)
	urgencyRange    = validation.Closed(entity.MinUrgency, entity.MaxUrgency)
	strengthRange   = validation.Closed(entity.MinAlignmentStrength, entity.MaxAlignmentStrength)
	targetRange     = validation.DecimalGreaterThan(decimal.Zero)
)

// GoalValidator validates goal aggregates.
type GoalValidator struct{}

// NewGoalValidator creates a new GoalValidator.
func NewGoalValidator() *GoalValidator {
	return &GoalValidator{}
}

// ValidateFormData checks a submitted goal form.
func (v *GoalValidator) ValidateFormData(form entity.GoalFormData) error {
	return validation.First(
		validation.RequireAnyNonEmpty(
			validation.Text(form.Title, "title"),
			validation.Text(form.Description, "description"),
		),
		validation.RequireOptionalInRange(form.Importance, importanceRange, "importance"),
		validation.RequireOptionalInRange(form.Urgency, urgencyRange, "urgency"),
		validation.RequireOrdered(form.StartDate, form.TargetDate, "start date", "target date", true),
		validation.RequireOptionalInRange(form.ExpectedTermLength, validation.GreaterThan(0), "expected term length"),
		validation.RequireEachNonZero(form.MetricTargets, func(m entity.MetricTargetInput) uuid.UUID {
			return m.MetricID
		}, "metric target", "metric"),
		validation.RequireEachInRange(form.MetricTargets, func(m entity.MetricTargetInput) decimal.Decimal {
			return m.TargetValue
		}, targetRange, "metric target", "target value"),
		validation.RequireEachNonZero(form.ValueAlignments, func(a entity.ValueAlignmentInput) uuid.UUID {
			return a.ValueID
		}, "value alignment", "value"),
		validation.RequireEachOptionalInRange(form.ValueAlignments, func(a entity.ValueAlignmentInput) *int {
			return a.AlignmentStrength
		}, strengthRange, "value alignment", "alignment strength"),
	)
}

// ValidateComplete checks an assembled goal graph before it is written.
func (v *GoalValidator) ValidateComplete(goal *entity.Goal) error {
	if err := validation.RequirePresent(goal.Expectation, "goal"); err != nil {
		return err
	}
	id := goal.ID()

	return validation.First(
		validation.RequireNonZero(id, "goal id"),
		validation.RequireEqual(goal.Expectation.Kind, entity.ExpectationKindGoal, "expectation kind", "goal"),
		validation.RequireMatchAll(goal.Measures, id, func(m *entity.ExpectationMeasure) uuid.UUID {
			return m.ExpectationID
		}, "metric target", "goal"),
		validation.RequireUnique(goal.Measures, func(m *entity.ExpectationMeasure) uuid.UUID {
			return m.MetricID
		}, "metric target", "metric"),
		validation.RequireMatchAll(goal.Relevances, id, func(r *entity.GoalRelevance) uuid.UUID {
			return r.GoalID
		}, "value alignment", "goal"),
		validation.RequireUnique(goal.Relevances, func(r *entity.GoalRelevance) uuid.UUID {
			return r.ValueID
		}, "value alignment", "value"),
	)
}
