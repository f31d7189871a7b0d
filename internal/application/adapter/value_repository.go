package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// ValueRepository defines the persistence operations for personal values.
type ValueRepository interface {
	// Create inserts a personal value.
	Create(ctx context.Context, value *entity.PersonalValue) error

	// Update updates a personal value in place.
	Update(ctx context.Context, value *entity.PersonalValue) error

	// Delete removes a personal value.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a personal value by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PersonalValue, error)

	// FindAll retrieves personal values ordered by priority, optionally restricted to one level.
	FindAll(ctx context.Context, level *entity.ValueLevel) ([]*entity.PersonalValue, error)
}
