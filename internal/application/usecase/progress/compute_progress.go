// Package progress contains goal progress queries.
package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/domain/matching"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// ComputeProgressInput represents the input for computing one goal's progress.
type ComputeProgressInput struct {
	GoalID uuid.UUID
	// Refresh skips the cached result and recomputes from storage.
	Refresh bool
}

// ComputeProgressOutput represents the computed progress of a goal.
type ComputeProgressOutput struct {
	Progress valueobject.GoalProgress
	Cached   bool
}

// ComputeProgressUseCase aggregates the committed contributions of a goal.
// Results are cached until a write touching the goal invalidates them.
type ComputeProgressUseCase struct {
	goalRepo   adapter.GoalRepository
	actionRepo adapter.ActionRepository
	metricRepo adapter.MetricRepository
	cache      adapter.ProgressCache
	config     valueobject.MatchingConfig
}

// NewComputeProgressUseCase creates a new ComputeProgressUseCase instance.
func NewComputeProgressUseCase(
	goalRepo adapter.GoalRepository,
	actionRepo adapter.ActionRepository,
	metricRepo adapter.MetricRepository,
	cache adapter.ProgressCache,
	config valueobject.MatchingConfig,
) *ComputeProgressUseCase {
	return &ComputeProgressUseCase{
		goalRepo:   goalRepo,
		actionRepo: actionRepo,
		metricRepo: metricRepo,
		cache:      cache,
		config:     config,
	}
}

// Execute computes the progress.
func (uc *ComputeProgressUseCase) Execute(ctx context.Context, input ComputeProgressInput) (*ComputeProgressOutput, error) {
	if !input.Refresh && uc.cache != nil {
		cached, err := uc.cache.Get(ctx, input.GoalID)
		if err != nil {
			slog.Warn("Failed to read progress cache", "goal_id", input.GoalID, "error", err)
		} else if cached != nil {
			return &ComputeProgressOutput{Progress: *cached, Cached: true}, nil
		}
	}

	// Read before any row so an invalidation during the computation blocks the write.
	version, cacheable := int64(0), uc.cache != nil
	if cacheable {
		var err error
		if version, err = uc.cache.Version(ctx, input.GoalID); err != nil {
			slog.Warn("Failed to read progress version", "goal_id", input.GoalID, "error", err)
			cacheable = false
		}
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(domainerror.ErrCodeGoalNotFound, "goal not found", domainerror.ErrGoalNotFound)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	contributions, err := uc.actionRepo.FindContributionsByGoals(ctx, []uuid.UUID{goal.ID()})
	if err != nil {
		return nil, fmt.Errorf("failed to load contributions: %w", err)
	}
	metrics, err := uc.metricRepo.FindByIDs(ctx, measureMetricIDs(goal))
	if err != nil {
		return nil, fmt.Errorf("failed to load metrics: %w", err)
	}

	progress := matching.ComputeProgress(goal, contributions, metrics, uc.config)

	if cacheable {
		if err := uc.cache.Set(ctx, &progress, version); err != nil {
			slog.Warn("Failed to write progress cache", "goal_id", input.GoalID, "error", err)
		}
	}
	return &ComputeProgressOutput{Progress: progress}, nil
}

func measureMetricIDs(goals ...*entity.Goal) []uuid.UUID {
	var ids []uuid.UUID
	seen := make(map[uuid.UUID]struct{})
	for _, g := range goals {
		for _, m := range g.Measures {
			if _, ok := seen[m.MetricID]; ok {
				continue
			}
			seen[m.MetricID] = struct{}{}
			ids = append(ids, m.MetricID)
		}
	}
	return ids
}
