// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// GoalRepository defines the persistence operations for goal aggregates: the
// expectation root, its goal details, metric targets and value alignments.
type GoalRepository interface {
	// CreateRoot inserts the expectation row and its goal details row.
	CreateRoot(ctx context.Context, exp *entity.Expectation) error

	// UpdateRoot updates the expectation and goal details rows in place.
	UpdateRoot(ctx context.Context, exp *entity.Expectation) error

	// DeleteRoot removes the goal details row, then the expectation row.
	DeleteRoot(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a full goal aggregate by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByIDs retrieves the goal aggregates with the given IDs. Unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Goal, error)

	// FindAll retrieves every goal aggregate, newest first.
	FindAll(ctx context.Context) ([]*entity.Goal, error)

	// ListIDs returns one page of goal IDs in a stable order.
	ListIDs(ctx context.Context, offset, limit int) ([]uuid.UUID, error)

	// InsertMeasures inserts metric target rows.
	InsertMeasures(ctx context.Context, measures []*entity.ExpectationMeasure) error

	// UpdateMeasures updates metric target rows in place.
	UpdateMeasures(ctx context.Context, measures []*entity.ExpectationMeasure) error

	// DeleteMeasures removes metric target rows by ID.
	DeleteMeasures(ctx context.Context, ids []uuid.UUID) error

	// DeleteMeasuresByGoal removes every metric target row of a goal.
	DeleteMeasuresByGoal(ctx context.Context, goalID uuid.UUID) error

	// InsertRelevances inserts value alignment rows.
	InsertRelevances(ctx context.Context, relevances []*entity.GoalRelevance) error

	// UpdateRelevances updates value alignment rows in place.
	UpdateRelevances(ctx context.Context, relevances []*entity.GoalRelevance) error

	// DeleteRelevances removes value alignment rows by ID.
	DeleteRelevances(ctx context.Context, ids []uuid.UUID) error

	// DeleteRelevancesByGoal removes every value alignment row of a goal.
	DeleteRelevancesByGoal(ctx context.Context, goalID uuid.UUID) error

	// DeleteRelevancesByValue removes every value alignment row pointing at a personal value.
	DeleteRelevancesByValue(ctx context.Context, valueID uuid.UUID) error
}
