package value

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
)

// GetValueInput represents the input for fetching one personal value.
type GetValueInput struct {
	ValueID uuid.UUID
}

// GetValueOutput represents the output of fetching one personal value.
type GetValueOutput struct {
	Value *entity.PersonalValue
}

// GetValueUseCase reads one personal value.
type GetValueUseCase struct {
	valueRepo adapter.ValueRepository
}

// NewGetValueUseCase creates a new GetValueUseCase instance.
func NewGetValueUseCase(valueRepo adapter.ValueRepository) *GetValueUseCase {
	return &GetValueUseCase{
		valueRepo: valueRepo,
	}
}

// Execute fetches the personal value.
func (uc *GetValueUseCase) Execute(ctx context.Context, input GetValueInput) (*GetValueOutput, error) {
	value, err := uc.valueRepo.FindByID(ctx, input.ValueID)
	if err != nil {
		return nil, wrapStoreError(err, "find")
	}
	return &GetValueOutput{Value: value}, nil
}
