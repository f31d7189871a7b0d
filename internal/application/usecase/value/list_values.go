package value

import (
	"context"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
)

// ListValuesInput represents the input for listing personal values.
type ListValuesInput struct {
	// Level keeps only values of that level when set.
	Level entity.ValueLevel
}

// ListValuesOutput represents the output of listing personal values.
type ListValuesOutput struct {
	Values []*entity.PersonalValue
}

// ListValuesUseCase reads personal values, highest priority first.
type ListValuesUseCase struct {
	valueRepo adapter.ValueRepository
}

// NewListValuesUseCase creates a new ListValuesUseCase instance.
func NewListValuesUseCase(valueRepo adapter.ValueRepository) *ListValuesUseCase {
	return &ListValuesUseCase{
		valueRepo: valueRepo,
	}
}

// Execute lists the personal values.
func (uc *ListValuesUseCase) Execute(ctx context.Context, input ListValuesInput) (*ListValuesOutput, error) {
	var level *entity.ValueLevel
	if input.Level != "" {
		if !entity.IsValidValueLevel(input.Level) {
			return nil, domainerror.NewValueError(
				domainerror.ErrCodeInvalidValueLevel,
				"unknown value level",
				domainerror.ErrInvalidValueLevel,
			)
		}
		level = &input.Level
	}

	values, err := uc.valueRepo.FindAll(ctx, level)
	if err != nil {
		return nil, wrapStoreError(err, "list")
	}
	return &ListValuesOutput{Values: values}, nil
}
