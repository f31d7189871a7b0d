package value

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/validator"
)

// UpdateValueInput represents the input for personal value update.
type UpdateValueInput struct {
	ValueID uuid.UUID
	Form    entity.PersonalValueFormData
}

// UpdateValueOutput represents the output of personal value update.
type UpdateValueOutput struct {
	Value *entity.PersonalValue
}

// UpdateValueUseCase rewrites a personal value in place.
type UpdateValueUseCase struct {
	txManager adapter.TxManager
	validator *validator.ValueValidator
}

// NewUpdateValueUseCase creates a new UpdateValueUseCase instance.
func NewUpdateValueUseCase(txManager adapter.TxManager) *UpdateValueUseCase {
	return &UpdateValueUseCase{
		txManager: txManager,
		validator: validator.NewValueValidator(),
	}
}

// Execute performs the personal value update.
func (uc *UpdateValueUseCase) Execute(ctx context.Context, input UpdateValueInput) (*UpdateValueOutput, error) {
	if err := uc.validator.ValidateFormData(input.Form); err != nil {
		return nil, err
	}

	value := newValue(input.Form)
	value.ID = input.ValueID
	if err := uc.validator.ValidateComplete(value); err != nil {
		return nil, err
	}

	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		existing, err := repos.Values.FindByID(ctx, input.ValueID)
		if err != nil {
			return err
		}
		value.CreatedAt = existing.CreatedAt
		return repos.Values.Update(ctx, value)
	})
	if err != nil {
		return nil, wrapStoreError(err, "update")
	}

	slog.Info("Personal value updated", "value_id", value.ID)
	return &UpdateValueOutput{Value: value}, nil
}
