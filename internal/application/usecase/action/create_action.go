package action

import (
	"context"
	"log/slog"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/validator"
)

// CreateActionInput represents the input for action creation.
type CreateActionInput struct {
	Form entity.ActionFormData
}

// CreateActionOutput represents the output of action creation.
type CreateActionOutput struct {
	Action *entity.ActionRecord
}

// CreateActionUseCase logs an action with its measurements and goal
// contributions in one transaction.
type CreateActionUseCase struct {
	goalRepo  adapter.GoalRepository
	txManager adapter.TxManager
	cache     adapter.ProgressCache
	validator *validator.ActionValidator
}

// NewCreateActionUseCase creates a new CreateActionUseCase instance.
func NewCreateActionUseCase(
	goalRepo adapter.GoalRepository,
	txManager adapter.TxManager,
	cache adapter.ProgressCache,
) *CreateActionUseCase {
	return &CreateActionUseCase{
		goalRepo:  goalRepo,
		txManager: txManager,
		cache:     cache,
		validator: validator.NewActionValidator(nil),
	}
}

// Execute performs the action creation.
func (uc *CreateActionUseCase) Execute(ctx context.Context, input CreateActionInput) (*CreateActionOutput, error) {
	if err := uc.validator.ValidateFormData(input.Form); err != nil {
		return nil, err
	}

	goals, err := loadLinkedGoals(ctx, uc.goalRepo, input.Form.GoalLinks)
	if err != nil {
		return nil, err
	}

	f := input.Form
	record := assemble(entity.NewAction(f.Title, f.Description, f.Notes, f.StartTime, f.DurationMinutes), f, goals)
	if err := uc.validator.ValidateComplete(record); err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		if err := repos.Actions.CreateRoot(ctx, record.Action); err != nil {
			return err
		}
		if err := repos.Actions.InsertMeasurements(ctx, record.Measurements); err != nil {
			return err
		}
		return repos.Actions.InsertContributions(ctx, record.Contributions)
	})
	if err != nil {
		slog.Warn("Action creation rolled back", "action_id", record.ID(), "error", err)
		return nil, wrapStoreError(err, "create")
	}

	invalidate(ctx, uc.cache, goalIDs(record)...)
	slog.Info("Action created",
		"action_id", record.ID(),
		"measurements", len(record.Measurements),
		"contributions", len(record.Contributions),
	)

	return &CreateActionOutput{Action: record}, nil
}
