package action

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
)

// GetActionInput represents the input for fetching one action.
type GetActionInput struct {
	ActionID uuid.UUID
}

// GetActionOutput represents the output of fetching one action.
type GetActionOutput struct {
	Action *entity.ActionRecord
}

// GetActionUseCase reads one action aggregate.
type GetActionUseCase struct {
	actionRepo adapter.ActionRepository
}

// NewGetActionUseCase creates a new GetActionUseCase instance.
func NewGetActionUseCase(actionRepo adapter.ActionRepository) *GetActionUseCase {
	return &GetActionUseCase{
		actionRepo: actionRepo,
	}
}

// Execute fetches the action.
func (uc *GetActionUseCase) Execute(ctx context.Context, input GetActionInput) (*GetActionOutput, error) {
	record, err := uc.actionRepo.FindByID(ctx, input.ActionID)
	if err != nil {
		return nil, wrapStoreError(err, "find")
	}
	return &GetActionOutput{Action: record}, nil
}
