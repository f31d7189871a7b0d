package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// MetricRepository defines the persistence operations for the metric catalog.
type MetricRepository interface {
	// Create inserts a metric. A second metric with the same unit and type fails
	// with a duplicate record error.
	Create(ctx context.Context, metric *entity.Metric) error

	// FindByID retrieves a metric by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Metric, error)

	// FindByIDs retrieves the metrics with the given IDs keyed by ID.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Metric, error)

	// FindByUnitAndType retrieves a metric by its natural key, or nil when absent.
	FindByUnitAndType(ctx context.Context, unit string, metricType entity.MetricType) (*entity.Metric, error)

	// FindAll retrieves the whole catalog ordered by type and unit.
	FindAll(ctx context.Context) ([]*entity.Metric, error)
}
