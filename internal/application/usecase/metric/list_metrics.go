package metric

import (
	"context"
	"fmt"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
)

// ListMetricsOutput represents the output of listing the catalog.
type ListMetricsOutput struct {
	Metrics []*entity.Metric
}

// ListMetricsUseCase reads the whole metric catalog.
type ListMetricsUseCase struct {
	metricRepo adapter.MetricRepository
}

// NewListMetricsUseCase creates a new ListMetricsUseCase instance.
func NewListMetricsUseCase(metricRepo adapter.MetricRepository) *ListMetricsUseCase {
	return &ListMetricsUseCase{
		metricRepo: metricRepo,
	}
}

// Execute lists the catalog.
func (uc *ListMetricsUseCase) Execute(ctx context.Context) (*ListMetricsOutput, error) {
	metrics, err := uc.metricRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list metrics: %w", err)
	}
	return &ListMetricsOutput{Metrics: metrics}, nil
}
