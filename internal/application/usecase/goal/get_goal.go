package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
)

// GetGoalInput represents the input for fetching one goal.
type GetGoalInput struct {
	GoalID uuid.UUID
}

// GetGoalOutput represents the output of fetching one goal.
type GetGoalOutput struct {
	Goal           *entity.Goal
	Classification entity.GoalClassification
}

// GetGoalUseCase reads one goal aggregate.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute fetches the goal.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, wrapStoreError(err, "find")
	}

	return &GetGoalOutput{
		Goal:           goal,
		Classification: goal.Classification(),
	}, nil
}
