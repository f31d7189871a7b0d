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

// valueRepository implements the adapter.ValueRepository interface.
type valueRepository struct {
	db *gorm.DB
}

// NewValueRepository creates a new personal value repository instance.
func NewValueRepository(db *gorm.DB) adapter.ValueRepository {
	return &valueRepository{
		db: db,
	}
}

// Create inserts a personal value.
func (r *valueRepository) Create(ctx context.Context, value *entity.PersonalValue) error {
	return translateError(r.db.WithContext(ctx).Create(model.PersonalValueFromEntity(value)).Error)
}

// Update updates a personal value in place.
func (r *valueRepository) Update(ctx context.Context, value *entity.PersonalValue) error {
	result := r.db.WithContext(ctx).
		Model(&model.PersonalValueModel{}).
		Where("id = ?", value.ID).
		Updates(map[string]interface{}{
			"title":              value.Title,
			"description":        value.Description,
			"priority":           value.Priority,
			"level":              string(value.Level),
			"life_domain":        value.LifeDomain,
			"alignment_guidance": value.AlignmentGuidance,
			"updated_at":         value.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrValueNotFound
	}
	return nil
}

// Delete removes a personal value.
func (r *valueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PersonalValueModel{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrValueNotFound
	}
	return nil
}

// FindByID retrieves a personal value by its ID.
func (r *valueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PersonalValue, error) {
	var valueModel model.PersonalValueModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&valueModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrValueNotFound
		}
		return nil, result.Error
	}
	return valueModel.ToEntity(), nil
}

// FindAll retrieves personal values ordered by priority, optionally restricted to one level.
func (r *valueRepository) FindAll(ctx context.Context, level *entity.ValueLevel) ([]*entity.PersonalValue, error) {
	query := r.db.WithContext(ctx)
	if level != nil {
		query = query.Where("level = ?", string(*level))
	}

	var valueModels []model.PersonalValueModel
	if err := query.Order("priority ASC, created_at, id").Find(&valueModels).Error; err != nil {
		return nil, err
	}

	values := make([]*entity.PersonalValue, len(valueModels))
	for i := range valueModels {
		values[i] = valueModels[i].ToEntity()
	}
	return values, nil
}
