package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/integration/persistence/model"
)

// metricRepository implements the adapter.MetricRepository interface.
type metricRepository struct {
	db *gorm.DB
}

// NewMetricRepository creates a new metric repository instance.
func NewMetricRepository(db *gorm.DB) adapter.MetricRepository {
	return &metricRepository{
		db: db,
	}
}

// Create inserts a metric.
func (r *metricRepository) Create(ctx context.Context, metric *entity.Metric) error {
	return translateError(r.db.WithContext(ctx).Create(model.MetricFromEntity(metric)).Error)
}

// FindByID retrieves a metric by its ID.
func (r *metricRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Metric, error) {
	var metricModel model.MetricModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&metricModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMetricNotFound
		}
		return nil, result.Error
	}
	return metricModel.ToEntity(), nil
}

// FindByIDs retrieves the metrics with the given IDs keyed by ID.
func (r *metricRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Metric, error) {
	out := make(map[uuid.UUID]*entity.Metric, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var metricModels []model.MetricModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&metricModels).Error; err != nil {
		return nil, err
	}
	for i := range metricModels {
		m := metricModels[i].ToEntity()
		out[m.ID] = m
	}
	return out, nil
}

// FindByUnitAndType retrieves a metric by its natural key, or nil when absent.
func (r *metricRepository) FindByUnitAndType(ctx context.Context, unit string, metricType entity.MetricType) (*entity.Metric, error) {
	var metricModel model.MetricModel
	result := r.db.WithContext(ctx).
		Where("unit = ? AND metric_type = ?", entity.NormalizeUnit(unit), string(metricType)).
		First(&metricModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return metricModel.ToEntity(), nil
}

// FindAll retrieves the whole catalog ordered by type and unit.
func (r *metricRepository) FindAll(ctx context.Context) ([]*entity.Metric, error) {
	var metricModels []model.MetricModel
	if err := r.db.WithContext(ctx).Order("metric_type, unit").Find(&metricModels).Error; err != nil {
		return nil, err
	}

	metrics := make([]*entity.Metric, len(metricModels))
	for i := range metricModels {
		metrics[i] = metricModels[i].ToEntity()
	}
	return metrics, nil
}
