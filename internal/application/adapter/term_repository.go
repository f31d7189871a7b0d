package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// TermRepository defines the persistence operations for term plans.
type TermRepository interface {
	// CreateRoot inserts the term row.
	CreateRoot(ctx context.Context, term *entity.Term) error

	// UpdateRoot updates the term row in place.
	UpdateRoot(ctx context.Context, term *entity.Term) error

	// DeleteRoot removes the term row.
	DeleteRoot(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a full term plan by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TermPlan, error)

	// FindAll retrieves every term plan ordered by term number.
	FindAll(ctx context.Context) ([]*entity.TermPlan, error)

	// InsertAssignments inserts goal assignment rows.
	InsertAssignments(ctx context.Context, rows []*entity.TermGoalAssignment) error

	// UpdateAssignments updates goal assignment rows in place.
	UpdateAssignments(ctx context.Context, rows []*entity.TermGoalAssignment) error

	// DeleteAssignments removes goal assignment rows by ID.
	DeleteAssignments(ctx context.Context, ids []uuid.UUID) error

	// DeleteAssignmentsByTerm removes every goal assignment row of a term.
	DeleteAssignmentsByTerm(ctx context.Context, termID uuid.UUID) error

	// DeleteAssignmentsByGoal removes every assignment of a goal to any term.
	DeleteAssignmentsByGoal(ctx context.Context, goalID uuid.UUID) error
}
