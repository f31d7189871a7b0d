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

// actionRepository implements the adapter.ActionRepository interface.
type actionRepository struct {
	db *gorm.DB
}

// NewActionRepository creates a new action repository instance.
func NewActionRepository(db *gorm.DB) adapter.ActionRepository {
	return &actionRepository{
		db: db,
	}
}

// CreateRoot inserts the action row.
func (r *actionRepository) CreateRoot(ctx context.Context, action *entity.Action) error {
	return translateError(r.db.WithContext(ctx).Create(model.ActionFromEntity(action)).Error)
}

// UpdateRoot updates the action row in place.
func (r *actionRepository) UpdateRoot(ctx context.Context, action *entity.Action) error {
	result := r.db.WithContext(ctx).
		Model(&model.ActionModel{}).
		Where("id = ?", action.ID).
		Updates(map[string]interface{}{
			"title":            action.Title,
			"description":      action.Description,
			"notes":            action.Notes,
			"start_time":       action.StartTime,
			"duration_minutes": action.DurationMinutes,
			"updated_at":       action.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrActionNotFound
	}
	return nil
}

// DeleteRoot removes the action row.
func (r *actionRepository) DeleteRoot(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ActionModel{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrActionNotFound
	}
	return nil
}

// FindByID retrieves a full action aggregate by its ID.
func (r *actionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ActionRecord, error) {
	var actionModel model.ActionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&actionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrActionNotFound
		}
		return nil, result.Error
	}

	records, err := r.assemble(ctx, []model.ActionModel{actionModel})
	if err != nil {
		return nil, err
	}
	return records[0], nil
}

// FindAll retrieves action aggregates matching the filter, newest first.
func (r *actionRepository) FindAll(ctx context.Context, filter adapter.ActionFilter) ([]*entity.ActionRecord, error) {
	query := r.db.WithContext(ctx).Model(&model.ActionModel{})

	if filter.GoalID != nil {
		query = query.Where("id IN (?)", r.db.Model(&model.ActionGoalContributionModel{}).
			Select("action_id").
			Where("goal_id = ?", *filter.GoalID))
	}
	if filter.From != nil {
		query = query.Where("COALESCE(start_time, created_at) >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("COALESCE(start_time, created_at) <= ?", *filter.To)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var actionModels []model.ActionModel
	if err := query.Order("created_at DESC, id").Find(&actionModels).Error; err != nil {
		return nil, err
	}
	return r.assemble(ctx, actionModels)
}

// assemble loads the junction rows of the given actions and builds aggregates.
func (r *actionRepository) assemble(ctx context.Context, actionModels []model.ActionModel) ([]*entity.ActionRecord, error) {
	records := make([]*entity.ActionRecord, len(actionModels))
	if len(actionModels) == 0 {
		return records, nil
	}

	ids := make([]uuid.UUID, len(actionModels))
	byID := make(map[uuid.UUID]*entity.ActionRecord, len(actionModels))
	for i := range actionModels {
		rec := &entity.ActionRecord{
			Action:        actionModels[i].ToEntity(),
			Measurements:  []*entity.MeasuredAction{},
			Contributions: []*entity.ActionGoalContribution{},
		}
		records[i] = rec
		ids[i] = rec.ID()
		byID[rec.ID()] = rec
	}

	var measurements []model.MeasuredActionModel
	if err := r.db.WithContext(ctx).
		Where("action_id IN ?", ids).
		Order("created_at, id").
		Find(&measurements).Error; err != nil {
		return nil, err
	}
	for i := range measurements {
		rec := byID[measurements[i].ActionID]
		rec.Measurements = append(rec.Measurements, measurements[i].ToEntity())
	}

	var contributions []model.ActionGoalContributionModel
	if err := r.db.WithContext(ctx).
		Where("action_id IN ?", ids).
		Order("created_at, id").
		Find(&contributions).Error; err != nil {
		return nil, err
	}
	for i := range contributions {
		rec := byID[contributions[i].ActionID]
		rec.Contributions = append(rec.Contributions, contributions[i].ToEntity())
	}

	return records, nil
}

// InsertMeasurements inserts measurement rows.
func (r *actionRepository) InsertMeasurements(ctx context.Context, rows []*entity.MeasuredAction) error {
	for _, m := range rows {
		if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model.MeasuredActionFromEntity(m)).Error; err != nil {
			return translateErrorFor(err, fieldMeasurement)
		}
	}
	return nil
}

// UpdateMeasurements updates the value of measurement rows in place.
func (r *actionRepository) UpdateMeasurements(ctx context.Context, rows []*entity.MeasuredAction) error {
	for _, m := range rows {
		err := r.db.WithContext(ctx).
			Model(&model.MeasuredActionModel{}).
			Where("id = ?", m.ID).
			Update("value", m.Value).Error
		if err != nil {
			return translateError(err)
		}
	}
	return nil
}

// DeleteMeasurements removes measurement rows by ID.
func (r *actionRepository) DeleteMeasurements(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return translateError(r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.MeasuredActionModel{}).Error)
}

// DeleteMeasurementsByAction removes every measurement row of an action.
func (r *actionRepository) DeleteMeasurementsByAction(ctx context.Context, actionID uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Where("action_id = ?", actionID).Delete(&model.MeasuredActionModel{}).Error)
}

// InsertContributions inserts contribution rows.
func (r *actionRepository) InsertContributions(ctx context.Context, rows []*entity.ActionGoalContribution) error {
	for _, c := range rows {
		if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model.ActionGoalContributionFromEntity(c)).Error; err != nil {
			return translateErrorFor(err, fieldGoalLink)
		}
	}
	return nil
}

// UpdateContributions updates the amount, method and confidence of contribution rows in place.
func (r *actionRepository) UpdateContributions(ctx context.Context, rows []*entity.ActionGoalContribution) error {
	for _, c := range rows {
		err := r.db.WithContext(ctx).
			Model(&model.ActionGoalContributionModel{}).
			Where("id = ?", c.ID).
			Updates(map[string]interface{}{
				"contribution_amount": c.ContributionAmount,
				"assignment_method":   string(c.AssignmentMethod),
				"confidence":          c.Confidence,
			}).Error
		if err != nil {
			return translateError(err)
		}
	}
	return nil
}

// DeleteContributions removes contribution rows by ID.
func (r *actionRepository) DeleteContributions(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return translateError(r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.ActionGoalContributionModel{}).Error)
}

// DeleteContributionsByAction removes every contribution row of an action.
func (r *actionRepository) DeleteContributionsByAction(ctx context.Context, actionID uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Where("action_id = ?", actionID).Delete(&model.ActionGoalContributionModel{}).Error)
}

// DeleteContributionsByGoal removes every contribution row pointing at a goal.
func (r *actionRepository) DeleteContributionsByGoal(ctx context.Context, goalID uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Where("goal_id = ?", goalID).Delete(&model.ActionGoalContributionModel{}).Error)
}

// FindContributionsByGoals retrieves the contribution rows of the given goals.
func (r *actionRepository) FindContributionsByGoals(ctx context.Context, goalIDs []uuid.UUID) ([]*entity.ActionGoalContribution, error) {
	if len(goalIDs) == 0 {
		return []*entity.ActionGoalContribution{}, nil
	}

	var rows []model.ActionGoalContributionModel
	if err := r.db.WithContext(ctx).
		Where("goal_id IN ?", goalIDs).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]*entity.ActionGoalContribution, len(rows))
	for i := range rows {
		out[i] = rows[i].ToEntity()
	}
	return out, nil
}
