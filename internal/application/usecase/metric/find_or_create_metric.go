// Package metric contains metric catalog use cases.
package metric

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/domain/validation"
)

// FindOrCreateMetricInput represents the input for a catalog lookup.
// CanonicalUnit and ConversionFactor go together and only apply when the
// entry is created; an existing entry keeps its conversion.
type FindOrCreateMetricInput struct {
	Unit             string
	MetricType       entity.MetricType
	CanonicalUnit    *string
	ConversionFactor *decimal.Decimal
}

// FindOrCreateMetricOutput represents the output of a catalog lookup.
type FindOrCreateMetricOutput struct {
	Metric  *entity.Metric
	Created bool
}

// FindOrCreateMetricUseCase returns the catalog entry for a unit and type,
// creating it on first use. Repeated calls return the same entry.
type FindOrCreateMetricUseCase struct {
	metricRepo adapter.MetricRepository
	txManager  adapter.TxManager
}

// NewFindOrCreateMetricUseCase creates a new FindOrCreateMetricUseCase instance.
func NewFindOrCreateMetricUseCase(metricRepo adapter.MetricRepository, txManager adapter.TxManager) *FindOrCreateMetricUseCase {
	return &FindOrCreateMetricUseCase{
		metricRepo: metricRepo,
		txManager:  txManager,
	}
}

// Execute performs the lookup.
func (uc *FindOrCreateMetricUseCase) Execute(ctx context.Context, input FindOrCreateMetricInput) (*FindOrCreateMetricOutput, error) {
	unit := entity.NormalizeUnit(input.Unit)
	if err := validation.RequireNonEmpty(&unit, "unit"); err != nil {
		return nil, err
	}
	metricType := input.MetricType
	if metricType == "" {
		metricType = entity.MetricTypeOther
	}
	if !entity.IsValidMetricType(metricType) {
		return nil, domainerror.NewMetricError(
			domainerror.ErrCodeInvalidMetricType,
			fmt.Sprintf("unknown metric type %q", input.MetricType),
			domainerror.ErrInvalidMetricType,
		)
	}

	if err := validateConversion(input); err != nil {
		return nil, err
	}

	var out FindOrCreateMetricOutput
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		existing, err := repos.Metrics.FindByUnitAndType(ctx, unit, metricType)
		if err != nil {
			return err
		}
		if existing != nil {
			out.Metric = existing
			return nil
		}

		metric := entity.NewMetric(unit, metricType)
		if input.CanonicalUnit != nil {
			metric.WithConversion(*input.CanonicalUnit, *input.ConversionFactor)
		}
		if err := repos.Metrics.Create(ctx, metric); err != nil {
			return err
		}
		out.Metric, out.Created = metric, true
		return nil
	})

	// A concurrent writer created the same entry first.
	if errors.Is(err, domainerror.ErrDuplicateRecord) {
		existing, findErr := uc.metricRepo.FindByUnitAndType(ctx, unit, metricType)
		if findErr != nil {
			return nil, fmt.Errorf("failed to re-read metric: %w", findErr)
		}
		if existing != nil {
			return &FindOrCreateMetricOutput{Metric: existing}, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find or create metric: %w", err)
	}

	if out.Created {
		slog.Info("Metric created", "metric_id", out.Metric.ID, "unit", out.Metric.Unit, "metric_type", out.Metric.MetricType)
	}
	return &out, nil
}

func validateConversion(input FindOrCreateMetricInput) error {
	if input.CanonicalUnit == nil && input.ConversionFactor == nil {
		return nil
	}
	return validation.First(
		validation.RequireNonEmpty(input.CanonicalUnit, "canonical unit"),
		validation.RequirePresent(input.ConversionFactor, "conversion factor"),
		validation.RequireOptionalInRange(input.ConversionFactor, validation.DecimalGreaterThan(decimal.Zero), "conversion factor"),
	)
}
