package value

import (
	"context"
	"log/slog"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/validator"
)

// CreateValueInput represents the input for personal value creation.
type CreateValueInput struct {
	Form entity.PersonalValueFormData
}

// CreateValueOutput represents the output of personal value creation.
type CreateValueOutput struct {
	Value *entity.PersonalValue
}

// CreateValueUseCase handles personal value creation.
type CreateValueUseCase struct {
	valueRepo adapter.ValueRepository
	validator *validator.ValueValidator
}

// NewCreateValueUseCase creates a new CreateValueUseCase instance.
func NewCreateValueUseCase(valueRepo adapter.ValueRepository) *CreateValueUseCase {
	return &CreateValueUseCase{
		valueRepo: valueRepo,
		validator: validator.NewValueValidator(),
	}
}

// Execute performs the personal value creation.
func (uc *CreateValueUseCase) Execute(ctx context.Context, input CreateValueInput) (*CreateValueOutput, error) {
	if err := uc.validator.ValidateFormData(input.Form); err != nil {
		return nil, err
	}

	value := newValue(input.Form)
	if err := uc.validator.ValidateComplete(value); err != nil {
		return nil, err
	}

	if err := uc.valueRepo.Create(ctx, value); err != nil {
		return nil, wrapStoreError(err, "create")
	}

	slog.Info("Personal value created", "value_id", value.ID, "level", value.Level, "priority", value.Priority)
	return &CreateValueOutput{Value: value}, nil
}
