package value

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
)

// DeleteValueInput represents the input for personal value deletion.
type DeleteValueInput struct {
	ValueID uuid.UUID
}

// DeleteValueUseCase removes a personal value and the goal alignments that
// point at it. The goals themselves are kept.
type DeleteValueUseCase struct {
	txManager adapter.TxManager
}

// NewDeleteValueUseCase creates a new DeleteValueUseCase instance.
func NewDeleteValueUseCase(txManager adapter.TxManager) *DeleteValueUseCase {
	return &DeleteValueUseCase{
		txManager: txManager,
	}
}

// Execute performs the personal value deletion.
func (uc *DeleteValueUseCase) Execute(ctx context.Context, input DeleteValueInput) error {
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		if err := repos.Goals.DeleteRelevancesByValue(ctx, input.ValueID); err != nil {
			return err
		}
		return repos.Values.Delete(ctx, input.ValueID)
	})
	if err != nil {
		slog.Warn("Personal value deletion rolled back", "value_id", input.ValueID, "error", err)
		return wrapStoreError(err, "delete")
	}

	slog.Info("Personal value deleted", "value_id", input.ValueID)
	return nil
}
