package term

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
)

// GetTermInput represents the input for fetching one term.
type GetTermInput struct {
	TermID uuid.UUID
}

// GetTermOutput represents the output of fetching one term.
type GetTermOutput struct {
	Term Overview
}

// GetTermUseCase reads one term plan with its current status.
type GetTermUseCase struct {
	termRepo adapter.TermRepository
	now      func() time.Time
}

// NewGetTermUseCase creates a new GetTermUseCase instance.
func NewGetTermUseCase(termRepo adapter.TermRepository) *GetTermUseCase {
	return &GetTermUseCase{
		termRepo: termRepo,
		now:      time.Now,
	}
}

// Execute fetches the term.
func (uc *GetTermUseCase) Execute(ctx context.Context, input GetTermInput) (*GetTermOutput, error) {
	plan, err := uc.termRepo.FindByID(ctx, input.TermID)
	if err != nil {
		return nil, wrapStoreError(err, "find")
	}
	return &GetTermOutput{Term: overview(plan, uc.now())}, nil
}
