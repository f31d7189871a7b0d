package goal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/application/usecase/junction"
	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/validator"
)

// UpdateGoalInput represents the input for goal update.
type UpdateGoalInput struct {
	GoalID uuid.UUID
	Form   entity.GoalFormData
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase rewrites a goal in place and reconciles its metric targets
// and value alignments against the submitted sets.
type UpdateGoalUseCase struct {
	txManager adapter.TxManager
	cache     adapter.ProgressCache
	validator *validator.GoalValidator
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(txManager adapter.TxManager, cache adapter.ProgressCache) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		txManager: txManager,
		cache:     cache,
		validator: validator.NewGoalValidator(),
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	if err := uc.validator.ValidateFormData(input.Form); err != nil {
		return nil, err
	}

	exp := newExpectation(input.Form)
	exp.ID = input.GoalID
	desired := assemble(exp, input.Form)
	if err := uc.validator.ValidateComplete(desired); err != nil {
		return nil, err
	}

	var measures junction.Diff[*entity.ExpectationMeasure]
	var relevances junction.Diff[*entity.GoalRelevance]

	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		existing, err := repos.Goals.FindByID(ctx, input.GoalID)
		if err != nil {
			return err
		}
		desired.Expectation.CreatedAt = existing.Expectation.CreatedAt

		if err := repos.Goals.UpdateRoot(ctx, desired.Expectation); err != nil {
			return err
		}

		measures = junction.Reconcile(existing.Measures, desired.Measures,
			func(m *entity.ExpectationMeasure) uuid.UUID { return m.MetricID },
			func(s, d *entity.ExpectationMeasure) bool { return s.TargetValue.Equal(d.TargetValue) },
			func(s, d *entity.ExpectationMeasure) { d.ID, d.CreatedAt = s.ID, s.CreatedAt },
		)
		if err := applyMeasures(ctx, repos.Goals, measures); err != nil {
			return err
		}

		relevances = junction.Reconcile(existing.Relevances, desired.Relevances,
			func(r *entity.GoalRelevance) uuid.UUID { return r.ValueID },
			sameRelevance,
			func(s, d *entity.GoalRelevance) { d.ID, d.CreatedAt = s.ID, s.CreatedAt },
		)
		return applyRelevances(ctx, repos.Goals, relevances)
	})
	if err != nil {
		slog.Warn("Goal update rolled back", "goal_id", input.GoalID, "error", err)
		return nil, wrapStoreError(err, "update")
	}

	desired.Measures = measures.Result
	desired.Relevances = relevances.Result

	if measures.Changed() {
		invalidate(ctx, uc.cache, affectedGoalIDs(desired)...)
	}

	slog.Info("Goal updated",
		"goal_id", input.GoalID,
		"measures_inserted", len(measures.Insert),
		"measures_updated", len(measures.Update),
		"measures_removed", len(measures.Delete),
		"relevances_inserted", len(relevances.Insert),
		"relevances_removed", len(relevances.Delete),
	)

	return &UpdateGoalOutput{Goal: desired}, nil
}

func applyMeasures(ctx context.Context, repo adapter.GoalRepository, d junction.Diff[*entity.ExpectationMeasure]) error {
	ids := junction.IDs(d.Delete, func(m *entity.ExpectationMeasure) uuid.UUID { return m.ID })
	if err := repo.DeleteMeasures(ctx, ids); err != nil {
		return err
	}
	if err := repo.UpdateMeasures(ctx, d.Update); err != nil {
		return err
	}
	return repo.InsertMeasures(ctx, d.Insert)
}

func applyRelevances(ctx context.Context, repo adapter.GoalRepository, d junction.Diff[*entity.GoalRelevance]) error {
	ids := junction.IDs(d.Delete, func(r *entity.GoalRelevance) uuid.UUID { return r.ID })
	if err := repo.DeleteRelevances(ctx, ids); err != nil {
		return err
	}
	if err := repo.UpdateRelevances(ctx, d.Update); err != nil {
		return err
	}
	return repo.InsertRelevances(ctx, d.Insert)
}

func sameRelevance(s, d *entity.GoalRelevance) bool {
	return equalPtr(s.AlignmentStrength, d.AlignmentStrength) && equalPtr(s.Notes, d.Notes)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// invalidate drops cached progress. A cache failure never fails the write.
func invalidate(ctx context.Context, cache adapter.ProgressCache, goalIDs ...uuid.UUID) {
	if cache == nil || len(goalIDs) == 0 {
		return
	}
	if err := cache.Invalidate(ctx, goalIDs...); err != nil {
		slog.Warn("Failed to invalidate progress cache", "goal_ids", goalIDs, "error", err)
	}
}
