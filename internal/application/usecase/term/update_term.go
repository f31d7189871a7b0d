package term

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/application/usecase/junction"
	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/validator"
)

// UpdateTermInput represents the input for term update.
type UpdateTermInput struct {
	TermID uuid.UUID
	Form   entity.TermFormData
}

// UpdateTermOutput represents the output of term update.
type UpdateTermOutput struct {
	Plan *entity.TermPlan
}

// UpdateTermUseCase rewrites a term in place and reconciles its goal assignments.
type UpdateTermUseCase struct {
	txManager adapter.TxManager
	validator *validator.TermValidator
}

// NewUpdateTermUseCase creates a new UpdateTermUseCase instance.
func NewUpdateTermUseCase(txManager adapter.TxManager) *UpdateTermUseCase {
	return &UpdateTermUseCase{
		txManager: txManager,
		validator: validator.NewTermValidator(),
	}
}

// Execute performs the term update.
func (uc *UpdateTermUseCase) Execute(ctx context.Context, input UpdateTermInput) (*UpdateTermOutput, error) {
	if err := uc.validator.ValidateFormData(input.Form); err != nil {
		return nil, err
	}

	desired := assemble(input.Form)
	desired.Term.ID = input.TermID
	for _, a := range desired.Assignments {
		a.TermID = input.TermID
	}
	if err := uc.validator.ValidateComplete(desired); err != nil {
		return nil, err
	}

	var diff junction.Diff[*entity.TermGoalAssignment]
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		existing, err := repos.Terms.FindByID(ctx, input.TermID)
		if err != nil {
			return err
		}
		desired.Term.CreatedAt = existing.Term.CreatedAt

		if err := repos.Terms.UpdateRoot(ctx, desired.Term); err != nil {
			return err
		}

		diff = junction.Reconcile(existing.Assignments, desired.Assignments,
			func(a *entity.TermGoalAssignment) uuid.UUID { return a.GoalID },
			func(s, d *entity.TermGoalAssignment) bool { return s.AssignmentOrder == d.AssignmentOrder },
			func(s, d *entity.TermGoalAssignment) { d.ID, d.CreatedAt = s.ID, s.CreatedAt },
		)
		if err := repos.Terms.DeleteAssignments(ctx, junction.IDs(diff.Delete, assignmentID)); err != nil {
			return err
		}
		if err := repos.Terms.UpdateAssignments(ctx, diff.Update); err != nil {
			return err
		}
		return repos.Terms.InsertAssignments(ctx, diff.Insert)
	})
	if err != nil {
		slog.Warn("Term update rolled back", "term_id", input.TermID, "error", err)
		return nil, wrapStoreError(err, "update")
	}

	desired.Assignments = diff.Result
	slog.Info("Term updated",
		"term_id", input.TermID,
		"goals_added", len(diff.Insert),
		"goals_reordered", len(diff.Update),
		"goals_removed", len(diff.Delete),
	)

	return &UpdateTermOutput{Plan: desired}, nil
}
