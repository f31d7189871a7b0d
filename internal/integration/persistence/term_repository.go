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

// termRepository implements the adapter.TermRepository interface.
type termRepository struct {
	db *gorm.DB
}

// NewTermRepository creates a new term repository instance.
func NewTermRepository(db *gorm.DB) adapter.TermRepository {
	return &termRepository{
		db: db,
	}
}

// CreateRoot inserts the term row.
func (r *termRepository) CreateRoot(ctx context.Context, term *entity.Term) error {
	return translateError(r.db.WithContext(ctx).Create(model.TermFromEntity(term)).Error)
}

// UpdateRoot updates the term row in place.
func (r *termRepository) UpdateRoot(ctx context.Context, term *entity.Term) error {
	result := r.db.WithContext(ctx).
		Model(&model.TermModel{}).
		Where("id = ?", term.ID).
		Updates(map[string]interface{}{
			"term_number": term.TermNumber,
			"theme":       term.Theme,
			"start_date":  term.StartDate,
			"target_date": term.TargetDate,
			"reflection":  term.Reflection,
			"updated_at":  term.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTermNotFound
	}
	return nil
}

// DeleteRoot removes the term row.
func (r *termRepository) DeleteRoot(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TermModel{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTermNotFound
	}
	return nil
}

// FindByID retrieves a full term plan by its ID.
func (r *termRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TermPlan, error) {
	var termModel model.TermModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&termModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTermNotFound
		}
		return nil, result.Error
	}

	plans, err := r.assemble(ctx, []model.TermModel{termModel})
	if err != nil {
		return nil, err
	}
	return plans[0], nil
}

// FindAll retrieves every term plan ordered by term number.
func (r *termRepository) FindAll(ctx context.Context) ([]*entity.TermPlan, error) {
	var termModels []model.TermModel
	if err := r.db.WithContext(ctx).Order("term_number").Find(&termModels).Error; err != nil {
		return nil, err
	}
	return r.assemble(ctx, termModels)
}

// assemble loads the assignments of the given terms and builds plans.
func (r *termRepository) assemble(ctx context.Context, termModels []model.TermModel) ([]*entity.TermPlan, error) {
	plans := make([]*entity.TermPlan, len(termModels))
	if len(termModels) == 0 {
		return plans, nil
	}

	ids := make([]uuid.UUID, len(termModels))
	byID := make(map[uuid.UUID]*entity.TermPlan, len(termModels))
	for i := range termModels {
		plan := &entity.TermPlan{
			Term:        termModels[i].ToEntity(),
			Assignments: []*entity.TermGoalAssignment{},
		}
		plans[i] = plan
		ids[i] = plan.ID()
		byID[plan.ID()] = plan
	}

	var rows []model.TermGoalAssignmentModel
	if err := r.db.WithContext(ctx).
		Where("term_id IN ?", ids).
		Order("assignment_order, id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		plan := byID[rows[i].TermID]
		plan.Assignments = append(plan.Assignments, rows[i].ToEntity())
	}
	return plans, nil
}

// InsertAssignments inserts goal assignment rows.
func (r *termRepository) InsertAssignments(ctx context.Context, rows []*entity.TermGoalAssignment) error {
	for _, a := range rows {
		if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model.TermGoalAssignmentFromEntity(a)).Error; err != nil {
			return translateErrorFor(err, fieldGoalAssignment)
		}
	}
	return nil
}

// UpdateAssignments updates the order of goal assignment rows in place.
func (r *termRepository) UpdateAssignments(ctx context.Context, rows []*entity.TermGoalAssignment) error {
	for _, a := range rows {
		err := r.db.WithContext(ctx).
			Model(&model.TermGoalAssignmentModel{}).
			Where("id = ?", a.ID).
			Update("assignment_order", a.AssignmentOrder).Error
		if err != nil {
			return translateError(err)
		}
	}
	return nil
}

// DeleteAssignments removes goal assignment rows by ID.
func (r *termRepository) DeleteAssignments(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return translateError(r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.TermGoalAssignmentModel{}).Error)
}

// DeleteAssignmentsByTerm removes every goal assignment row of a term.
func (r *termRepository) DeleteAssignmentsByTerm(ctx context.Context, termID uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Where("term_id = ?", termID).Delete(&model.TermGoalAssignmentModel{}).Error)
}

// DeleteAssignmentsByGoal removes every assignment of a goal to any term.
func (r *termRepository) DeleteAssignmentsByGoal(ctx context.Context, goalID uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Where("goal_id = ?", goalID).Delete(&model.TermGoalAssignmentModel{}).Error)
}
