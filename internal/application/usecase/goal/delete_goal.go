package goal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID uuid.UUID
}

// DeleteGoalUseCase removes a goal and every junction row that references it.
// Metrics, personal values, actions and terms are left in place.
type DeleteGoalUseCase struct {
	txManager adapter.TxManager
	cache     adapter.ProgressCache
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(txManager adapter.TxManager, cache adapter.ProgressCache) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		txManager: txManager,
		cache:     cache,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		if _, err := repos.Goals.FindByID(ctx, input.GoalID); err != nil {
			return err
		}
		if err := repos.Goals.DeleteMeasuresByGoal(ctx, input.GoalID); err != nil {
			return err
		}
		if err := repos.Goals.DeleteRelevancesByGoal(ctx, input.GoalID); err != nil {
			return err
		}
		if err := repos.Actions.DeleteContributionsByGoal(ctx, input.GoalID); err != nil {
			return err
		}
		if err := repos.Terms.DeleteAssignmentsByGoal(ctx, input.GoalID); err != nil {
			return err
		}
		return repos.Goals.DeleteRoot(ctx, input.GoalID)
	})
	if err != nil {
		slog.Warn("Goal deletion rolled back", "goal_id", input.GoalID, "error", err)
		return wrapStoreError(err, "delete")
	}

	invalidate(ctx, uc.cache, input.GoalID)
	slog.Info("Goal deleted", "goal_id", input.GoalID)
	return nil
}
