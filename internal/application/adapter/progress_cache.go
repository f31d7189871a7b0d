package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// ProgressCache stores computed goal progress between writes.
type ProgressCache interface {
	// Get returns the cached progress of a goal, or nil on a miss.
	Get(ctx context.Context, goalID uuid.UUID) (*valueobject.GoalProgress, error)

	// Version returns the invalidation counter of a goal. Read it before loading
	// the rows progress is computed from and hand it back to Set.
	Version(ctx context.Context, goalID uuid.UUID) (int64, error)

	// Set stores progress computed while the goal was at version. The write is
	// skipped when the goal was invalidated since.
	Set(ctx context.Context, progress *valueobject.GoalProgress, version int64) error

	// Invalidate drops the cached progress of the given goals and bumps their versions.
	Invalidate(ctx context.Context, goalIDs ...uuid.UUID) error
}
