// Package term contains term planning use cases.
package term

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/domain/validator"
)

// Overview is a term plan together with its lifecycle position at a moment.
type Overview struct {
	Plan            *entity.TermPlan
	Status          entity.TermStatus
	DaysElapsed     int
	DaysRemaining   int
	ElapsedFraction float64
}

func overview(plan *entity.TermPlan, at time.Time) Overview {
	t := plan.Term
	return Overview{
		Plan:            plan,
		Status:          t.Status(at),
		DaysElapsed:     t.DaysElapsed(at),
		DaysRemaining:   t.DaysRemaining(at),
		ElapsedFraction: t.ElapsedFraction(at),
	}
}

// assemble builds a term plan from validated form data. Goals are assigned in
// submission order starting at 1.
func assemble(form entity.TermFormData) *entity.TermPlan {
	start := *form.StartDate
	t := entity.NewTerm(*form.TermNumber, form.Theme, start, validator.TermTargetDate(start, form.TargetDate), form.Reflection)

	plan := &entity.TermPlan{Term: t}
	for i, goalID := range form.GoalIDs {
		plan.Assignments = append(plan.Assignments, entity.NewTermGoalAssignment(t.ID, goalID, i+1))
	}
	return plan
}

func assignmentID(a *entity.TermGoalAssignment) uuid.UUID { return a.ID }

func termNotFound() error {
	return domainerror.NewTermError(domainerror.ErrCodeTermNotFound, "term not found", domainerror.ErrTermNotFound)
}

func wrapStoreError(err error, op string) error {
	switch {
	case errors.Is(err, domainerror.ErrTermNotFound):
		return termNotFound()
	case domainerror.IsValidationError(err):
		return err
	}
	return fmt.Errorf("failed to %s term: %w", op, err)
}
