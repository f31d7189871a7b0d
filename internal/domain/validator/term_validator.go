package validator

import (
	"time"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/validation"
)

// TermValidator validates term plans.
type TermValidator struct{}

// NewTermValidator creates a new TermValidator.
func NewTermValidator() *TermValidator {
	return &TermValidator{}
}

// ValidateFormData checks a submitted term form. A missing target date is
// treated as start + DefaultTermLength.
func (v *TermValidator) ValidateFormData(form entity.TermFormData) error {
	if err := validation.First(
		validation.RequirePresent(form.TermNumber, "term number"),
		validation.RequirePresent(form.StartDate, "start date"),
	); err != nil {
		return err
	}

	target := TermTargetDate(*form.StartDate, form.TargetDate)
	return validation.First(
		validation.RequireInRange(*form.TermNumber, validation.GreaterThan(0), "term number"),
		validation.RequireOrdered(form.StartDate, &target, "start date", "target date", false),
		validation.RequireEachNonZero(form.GoalIDs, func(id uuid.UUID) uuid.UUID { return id }, "goal", "id"),
	)
}

// ValidateComplete checks an assembled term plan before it is written.
func (v *TermValidator) ValidateComplete(plan *entity.TermPlan) error {
	if err := validation.RequirePresent(plan.Term, "term"); err != nil {
		return err
	}
	id := plan.ID()

	return validation.First(
		validation.RequireNonZero(id, "term id"),
		validation.RequireOrdered(&plan.Term.StartDate, &plan.Term.TargetDate, "start date", "target date", false),
		validation.RequireMatchAll(plan.Assignments, id, func(a *entity.TermGoalAssignment) uuid.UUID {
			return a.TermID
		}, "goal assignment", "term"),
		validation.RequireUnique(plan.Assignments, func(a *entity.TermGoalAssignment) uuid.UUID {
			return a.GoalID
		}, "goal assignment", "goal"),
	)
}

// TermTargetDate returns target when given, otherwise start + DefaultTermLength.
func TermTargetDate(start time.Time, target *time.Time) time.Time {
	if target != nil {
		return *target
	}
	return start.Add(entity.DefaultTermLength)
}
