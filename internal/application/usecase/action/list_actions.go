package action

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/domain/validation"
)

// DefaultListLimit caps an action listing when no limit is given.
const DefaultListLimit = 100

// ListActionsInput represents the input for listing actions.
type ListActionsInput struct {
	GoalID *uuid.UUID
	From   *time.Time
	To     *time.Time
	Limit  int
}

// ListActionsOutput represents the output of listing actions.
type ListActionsOutput struct {
	Actions []*entity.ActionRecord
}

// ListActionsUseCase reads actions, newest first.
type ListActionsUseCase struct {
	actionRepo adapter.ActionRepository
}

// NewListActionsUseCase creates a new ListActionsUseCase instance.
func NewListActionsUseCase(actionRepo adapter.ActionRepository) *ListActionsUseCase {
	return &ListActionsUseCase{
		actionRepo: actionRepo,
	}
}

// Execute lists the actions.
func (uc *ListActionsUseCase) Execute(ctx context.Context, input ListActionsInput) (*ListActionsOutput, error) {
	if err := validation.RequireOrdered(input.From, input.To, "from", "to", true); err != nil {
		return nil, err
	}
	if input.Limit < 0 {
		return nil, domainerror.NewValidationError(domainerror.ErrRangeViolation, "limit", "must be at least 0")
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	records, err := uc.actionRepo.FindAll(ctx, adapter.ActionFilter{
		GoalID: input.GoalID,
		From:   input.From,
		To:     input.To,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}
	return &ListActionsOutput{Actions: records}, nil
}
