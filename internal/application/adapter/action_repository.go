package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// ActionFilter narrows an action listing. Zero fields do not filter.
type ActionFilter struct {
	GoalID *uuid.UUID
	From   *time.Time
	To     *time.Time
	Limit  int
}

// ActionRepository defines the persistence operations for action aggregates:
// the action row, its measurements and its goal contributions.
type ActionRepository interface {
	// CreateRoot inserts the action row.
	CreateRoot(ctx context.Context, action *entity.Action) error

	// UpdateRoot updates the action row in place.
	UpdateRoot(ctx context.Context, action *entity.Action) error

	// DeleteRoot removes the action row.
	DeleteRoot(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a full action aggregate by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ActionRecord, error)

	// FindAll retrieves action aggregates matching the filter, newest first.
	FindAll(ctx context.Context, filter ActionFilter) ([]*entity.ActionRecord, error)

	// InsertMeasurements inserts measurement rows.
	InsertMeasurements(ctx context.Context, rows []*entity.MeasuredAction) error

	// UpdateMeasurements updates measurement rows in place.
	UpdateMeasurements(ctx context.Context, rows []*entity.MeasuredAction) error

	// DeleteMeasurements removes measurement rows by ID.
	DeleteMeasurements(ctx context.Context, ids []uuid.UUID) error

	// DeleteMeasurementsByAction removes every measurement row of an action.
	DeleteMeasurementsByAction(ctx context.Context, actionID uuid.UUID) error

	// InsertContributions inserts contribution rows.
	InsertContributions(ctx context.Context, rows []*entity.ActionGoalContribution) error

	// UpdateContributions updates contribution rows in place.
	UpdateContributions(ctx context.Context, rows []*entity.ActionGoalContribution) error

	// DeleteContributions removes contribution rows by ID.
	DeleteContributions(ctx context.Context, ids []uuid.UUID) error

	// DeleteContributionsByAction removes every contribution row of an action.
	DeleteContributionsByAction(ctx context.Context, actionID uuid.UUID) error

	// DeleteContributionsByGoal removes every contribution row pointing at a goal.
	DeleteContributionsByGoal(ctx context.Context, goalID uuid.UUID) error

	// FindContributionsByGoals retrieves the contribution rows of the given goals.
	FindContributionsByGoals(ctx context.Context, goalIDs []uuid.UUID) ([]*entity.ActionGoalContribution, error)
}
