package action

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
)

// DeleteActionInput represents the input for action deletion.
type DeleteActionInput struct {
	ActionID uuid.UUID
}

// DeleteActionUseCase removes an action with its measurements and contributions.
type DeleteActionUseCase struct {
	txManager adapter.TxManager
	cache     adapter.ProgressCache
}

// NewDeleteActionUseCase creates a new DeleteActionUseCase instance.
func NewDeleteActionUseCase(txManager adapter.TxManager, cache adapter.ProgressCache) *DeleteActionUseCase {
	return &DeleteActionUseCase{
		txManager: txManager,
		cache:     cache,
	}
}

// Execute performs the action deletion.
func (uc *DeleteActionUseCase) Execute(ctx context.Context, input DeleteActionInput) error {
	var existing *entity.ActionRecord

	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		var err error
		existing, err = repos.Actions.FindByID(ctx, input.ActionID)
		if err != nil {
			return err
		}
		if err := repos.Actions.DeleteContributionsByAction(ctx, input.ActionID); err != nil {
			return err
		}
		if err := repos.Actions.DeleteMeasurementsByAction(ctx, input.ActionID); err != nil {
			return err
		}
		return repos.Actions.DeleteRoot(ctx, input.ActionID)
	})
	if err != nil {
		slog.Warn("Action deletion rolled back", "action_id", input.ActionID, "error", err)
		return wrapStoreError(err, "delete")
	}

	invalidate(ctx, uc.cache, goalIDs(existing)...)
	slog.Info("Action deleted", "action_id", input.ActionID)
	return nil
}
