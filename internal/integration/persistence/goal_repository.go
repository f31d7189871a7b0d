// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// CreateRoot inserts the expectation row, then its goal details row.
func (r *goalRepository) CreateRoot(ctx context.Context, exp *entity.Expectation) error {
	expModel, details := model.ExpectationFromEntity(exp)
	db := r.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(expModel).Error; err != nil {
		return translateError(err)
	}
	if details != nil {
		if err := db.Omit(clause.Associations).Create(details).Error; err != nil {
			return translateError(err)
		}
	}
	return nil
}

// UpdateRoot updates the expectation and goal details rows in place. The
// creation timestamp is never rewritten.
func (r *goalRepository) UpdateRoot(ctx context.Context, exp *entity.Expectation) error {
	expModel, details := model.ExpectationFromEntity(exp)
	db := r.db.WithContext(ctx)

	result := db.Model(&model.ExpectationModel{}).
		Where("id = ?", exp.ID).
		Updates(map[string]interface{}{
			"title":        expModel.Title,
			"description":  expModel.Description,
			"importance":   expModel.Importance,
			"urgency":      expModel.Urgency,
			"due_date":     expModel.DueDate,
			"requested_by": expModel.RequestedBy,
			"updated_at":   expModel.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}

	if details != nil {
		err := db.Model(&model.GoalDetailsModel{}).
			Where("expectation_id = ?", exp.ID).
			Updates(map[string]interface{}{
				"start_date":           details.StartDate,
				"target_date":          details.TargetDate,
				"action_plan":          details.ActionPlan,
				"expected_term_length": details.ExpectedTermLength,
			}).Error
		if err != nil {
			return translateError(err)
		}
	}
	return nil
}

// DeleteRoot removes the goal details row, then the expectation row.
func (r *goalRepository) DeleteRoot(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("expectation_id = ?", id).Delete(&model.GoalDetailsModel{}).Error; err != nil {
		return translateError(err)
	}
	result := db.Where("id = ?", id).Delete(&model.ExpectationModel{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// FindByID retrieves a full goal aggregate by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var expModel model.ExpectationModel
	result := r.db.WithContext(ctx).
		Preload("Goal").
		Where("id = ? AND kind = ?", id, string(entity.ExpectationKindGoal)).
		First(&expModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}

	goals, err := r.assemble(ctx, []model.ExpectationModel{expModel})
	if err != nil {
		return nil, err
	}
	return goals[0], nil
}

// FindByIDs retrieves the goal aggregates with the given IDs.
func (r *goalRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Goal, error) {
	if len(ids) == 0 {
		return []*entity.Goal{}, nil
	}

	var expModels []model.ExpectationModel
	result := r.db.WithContext(ctx).
		Preload("Goal").
		Where("id IN ? AND kind = ?", ids, string(entity.ExpectationKindGoal)).
		Order("created_at DESC, id").
		Find(&expModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.assemble(ctx, expModels)
}

// FindAll retrieves every goal aggregate, newest first.
func (r *goalRepository) FindAll(ctx context.Context) ([]*entity.Goal, error) {
	var expModels []model.ExpectationModel
	result := r.db.WithContext(ctx).
		Preload("Goal").
		Where("kind = ?", string(entity.ExpectationKindGoal)).
		Order("created_at DESC, id").
		Find(&expModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.assemble(ctx, expModels)
}

// ListIDs returns one page of goal IDs ordered by ID.
func (r *goalRepository) ListIDs(ctx context.Context, offset, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	result := r.db.WithContext(ctx).
		Model(&model.GoalDetailsModel{}).
		Order("expectation_id").
		Offset(offset).
		Limit(limit).
		Pluck("expectation_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

// assemble loads the junction rows of the given expectations and builds aggregates.
func (r *goalRepository) assemble(ctx context.Context, expModels []model.ExpectationModel) ([]*entity.Goal, error) {
	goals := make([]*entity.Goal, len(expModels))
	if len(expModels) == 0 {
		return goals, nil
	}

	ids := make([]uuid.UUID, len(expModels))
	byID := make(map[uuid.UUID]*entity.Goal, len(expModels))
	for i := range expModels {
		g := &entity.Goal{
			Expectation: expModels[i].ToEntity(),
			Measures:    []*entity.ExpectationMeasure{},
			Relevances:  []*entity.GoalRelevance{},
		}
		goals[i] = g
		ids[i] = g.ID()
		byID[g.ID()] = g
	}

	var measures []model.ExpectationMeasureModel
	if err := r.db.WithContext(ctx).
		Where("expectation_id IN ?", ids).
		Order("created_at, id").
		Find(&measures).Error; err != nil {
		return nil, err
	}
	for i := range measures {
		g := byID[measures[i].ExpectationID]
		g.Measures = append(g.Measures, measures[i].ToEntity())
	}

	var relevances []model.GoalRelevanceModel
	if err := r.db.WithContext(ctx).
		Where("goal_id IN ?", ids).
		Order("created_at, id").
		Find(&relevances).Error; err != nil {
		return nil, err
	}
	for i := range relevances {
		g := byID[relevances[i].GoalID]
		g.Relevances = append(g.Relevances, relevances[i].ToEntity())
	}

	return goals, nil
}

// InsertMeasures inserts metric target rows.
func (r *goalRepository) InsertMeasures(ctx context.Context, measures []*entity.ExpectationMeasure) error {
	for _, m := range measures {
		if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model.ExpectationMeasureFromEntity(m)).Error; err != nil {
			return translateErrorFor(err, fieldMetricTarget)
		}
	}
	return nil
}

// UpdateMeasures updates the target value of metric target rows in place.
func (r *goalRepository) UpdateMeasures(ctx context.Context, measures []*entity.ExpectationMeasure) error {
	for _, m := range measures {
		err := r.db.WithContext(ctx).
			Model(&model.ExpectationMeasureModel{}).
			Where("id = ?", m.ID).
			Update("target_value", m.TargetValue).Error
		if err != nil {
			return translateError(err)
		}
	}
	return nil
}

// DeleteMeasures removes metric target rows by ID.
func (r *goalRepository) DeleteMeasures(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return translateError(r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.ExpectationMeasureModel{}).Error)
}

// DeleteMeasuresByGoal removes every metric target row of a goal.
func (r *goalRepository) DeleteMeasuresByGoal(ctx context.Context, goalID uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Where("expectation_id = ?", goalID).Delete(&model.ExpectationMeasureModel{}).Error)
}

// InsertRelevances inserts value alignment rows.
func (r *goalRepository) InsertRelevances(ctx context.Context, relevances []*entity.GoalRelevance) error {
	for _, rel := range relevances {
		if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model.GoalRelevanceFromEntity(rel)).Error; err != nil {
			return translateErrorFor(err, fieldValueAlignment)
		}
	}
	return nil
}

// UpdateRelevances updates the strength and notes of value alignment rows in place.
func (r *goalRepository) UpdateRelevances(ctx context.Context, relevances []*entity.GoalRelevance) error {
	for _, rel := range relevances {
		err := r.db.WithContext(ctx).
			Model(&model.GoalRelevanceModel{}).
			Where("id = ?", rel.ID).
			Updates(map[string]interface{}{
				"alignment_strength": rel.AlignmentStrength,
				"notes":              rel.Notes,
			}).Error
		if err != nil {
			return translateError(err)
		}
	}
	return nil
}

// DeleteRelevances removes value alignment rows by ID.
func (r *goalRepository) DeleteRelevances(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return translateError(r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.GoalRelevanceModel{}).Error)
}

// DeleteRelevancesByGoal removes every value alignment row of a goal.
func (r *goalRepository) DeleteRelevancesByGoal(ctx context.Context, goalID uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Where("goal_id = ?", goalID).Delete(&model.GoalRelevanceModel{}).Error)
}

// DeleteRelevancesByValue removes every value alignment row pointing at a personal value.
func (r *goalRepository) DeleteRelevancesByValue(ctx context.Context, valueID uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Where("value_id = ?", valueID).Delete(&model.GoalRelevanceModel{}).Error)
}
