package action

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/validator"
)

// UpdateActionInput represents the input for action update.
type UpdateActionInput struct {
	ActionID uuid.UUID
	Form     entity.ActionFormData
}

// UpdateActionOutput represents the output of action update.
type UpdateActionOutput struct {
	Action *entity.ActionRecord
}

// UpdateActionUseCase rewrites an action in place and reconciles its
// measurements and contributions against the submitted sets.
type UpdateActionUseCase struct {
	goalRepo  adapter.GoalRepository
	txManager adapter.TxManager
	cache     adapter.ProgressCache
	validator *validator.ActionValidator
}

// NewUpdateActionUseCase creates a new UpdateActionUseCase instance.
func NewUpdateActionUseCase(
	goalRepo adapter.GoalRepository,
	txManager adapter.TxManager,
	cache adapter.ProgressCache,
) *UpdateActionUseCase {
	return &UpdateActionUseCase{
		goalRepo:  goalRepo,
		txManager: txManager,
		cache:     cache,
		validator: validator.NewActionValidator(nil),
	}
}

// Execute performs the action update.
func (uc *UpdateActionUseCase) Execute(ctx context.Context, input UpdateActionInput) (*UpdateActionOutput, error) {
	if err := uc.validator.ValidateFormData(input.Form); err != nil {
		return nil, err
	}

	goals, err := loadLinkedGoals(ctx, uc.goalRepo, input.Form.GoalLinks)
	if err != nil {
		return nil, err
	}

	f := input.Form
	root := entity.NewAction(f.Title, f.Description, f.Notes, f.StartTime, f.DurationMinutes)
	root.ID = input.ActionID
	desired := assemble(root, f, goals)
	if err := uc.validator.ValidateComplete(desired); err != nil {
		return nil, err
	}

	var existing *entity.ActionRecord
	var result reconciliation

	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		var err error
		existing, err = repos.Actions.FindByID(ctx, input.ActionID)
		if err != nil {
			return err
		}
		desired.Action.CreatedAt = existing.Action.CreatedAt

		if err := repos.Actions.UpdateRoot(ctx, desired.Action); err != nil {
			return err
		}
		result, err = reconcile(ctx, repos.Actions, existing, desired)
		return err
	})
	if err != nil {
		slog.Warn("Action update rolled back", "action_id", input.ActionID, "error", err)
		return nil, wrapStoreError(err, "update")
	}

	desired.Measurements = result.measurements.Result
	desired.Contributions = result.contributions.Result

	invalidate(ctx, uc.cache, goalIDs(existing, desired)...)
	slog.Info("Action updated",
		"action_id", input.ActionID,
		"measurements_inserted", len(result.measurements.Insert),
		"measurements_removed", len(result.measurements.Delete),
		"contributions_inserted", len(result.contributions.Insert),
		"contributions_updated", len(result.contributions.Update),
		"contributions_removed", len(result.contributions.Delete),
	)

	return &UpdateActionOutput{Action: desired}, nil
}
