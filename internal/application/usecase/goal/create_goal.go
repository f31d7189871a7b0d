package goal

import (
	"context"
	"log/slog"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/validator"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	Form entity.GoalFormData
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase validates a goal form and writes the goal with its metric
// targets and value alignments in one transaction.
type CreateGoalUseCase struct {
	txManager adapter.TxManager
	validator *validator.GoalValidator
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(txManager adapter.TxManager) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		txManager: txManager,
		validator: validator.NewGoalValidator(),
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if err := uc.validator.ValidateFormData(input.Form); err != nil {
		return nil, err
	}

	goal := assemble(newExpectation(input.Form), input.Form)
	if err := uc.validator.ValidateComplete(goal); err != nil {
		return nil, err
	}

	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		if err := repos.Goals.CreateRoot(ctx, goal.Expectation); err != nil {
			return err
		}
		if err := repos.Goals.InsertMeasures(ctx, goal.Measures); err != nil {
			return err
		}
		return repos.Goals.InsertRelevances(ctx, goal.Relevances)
	})
	if err != nil {
		slog.Warn("Goal creation rolled back", "goal_id", goal.ID(), "error", err)
		return nil, wrapStoreError(err, "create")
	}

	slog.Info("Goal created",
		"goal_id", goal.ID(),
		"measures", len(goal.Measures),
		"relevances", len(goal.Relevances),
		"classification", goal.Classification(),
	)

	return &CreateGoalOutput{Goal: goal}, nil
}
