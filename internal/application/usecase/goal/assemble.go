// Package goal contains goal-related use cases.
package goal

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
)

// assemble builds the row graph of a goal from validated form data. Every child
// row takes its parent id from exp.
func assemble(exp *entity.Expectation, form entity.GoalFormData) *entity.Goal {
	goal := &entity.Goal{Expectation: exp}
	for _, t := range form.MetricTargets {
		goal.Measures = append(goal.Measures, entity.NewExpectationMeasure(exp.ID, t.MetricID, t.TargetValue))
	}
	for _, a := range form.ValueAlignments {
		goal.Relevances = append(goal.Relevances, entity.NewGoalRelevance(exp.ID, a.ValueID, a.AlignmentStrength, a.Notes))
	}
	return goal
}

// newExpectation builds the expectation root with importance and urgency defaults applied.
func newExpectation(form entity.GoalFormData) *entity.Expectation {
	importance := entity.DefaultGoalImportance
	if form.Importance != nil {
		importance = *form.Importance
	}
	urgency := entity.DefaultGoalUrgency
	if form.Urgency != nil {
		urgency = *form.Urgency
	}

	return entity.NewGoalExpectation(form.Title, form.Description, importance, urgency, entity.GoalDetails{
		StartDate:          form.StartDate,
		TargetDate:         form.TargetDate,
		ActionPlan:         form.ActionPlan,
		ExpectedTermLength: form.ExpectedTermLength,
	})
}

func goalNotFound() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalNotFound,
		"goal not found",
		domainerror.ErrGoalNotFound,
	)
}

// wrapStoreError keeps not-found and validation errors intact and wraps the rest.
func wrapStoreError(err error, op string) error {
	if errors.Is(err, domainerror.ErrGoalNotFound) {
		return goalNotFound()
	}
	if domainerror.IsValidationError(err) {
		return err
	}
	return fmt.Errorf("failed to %s goal: %w", op, err)
}

func affectedGoalIDs(goal *entity.Goal) []uuid.UUID {
	return []uuid.UUID{goal.ID()}
}
