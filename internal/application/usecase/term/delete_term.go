package term

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
)

// DeleteTermInput represents the input for term deletion.
type DeleteTermInput struct {
	TermID uuid.UUID
}

// DeleteTermUseCase removes a term and its goal assignments. The goals are kept.
type DeleteTermUseCase struct {
	txManager adapter.TxManager
}

// NewDeleteTermUseCase creates a new DeleteTermUseCase instance.
func NewDeleteTermUseCase(txManager adapter.TxManager) *DeleteTermUseCase {
	return &DeleteTermUseCase{
		txManager: txManager,
	}
}

// Execute performs the term deletion.
func (uc *DeleteTermUseCase) Execute(ctx context.Context, input DeleteTermInput) error {
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		if err := repos.Terms.DeleteAssignmentsByTerm(ctx, input.TermID); err != nil {
			return err
		}
		return repos.Terms.DeleteRoot(ctx, input.TermID)
	})
	if err != nil {
		slog.Warn("Term deletion rolled back", "term_id", input.TermID, "error", err)
		return wrapStoreError(err, "delete")
	}

	slog.Info("Term deleted", "term_id", input.TermID)
	return nil
}
