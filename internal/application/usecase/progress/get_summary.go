package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/matching"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// GetSummaryOutput represents progress across every goal.
type GetSummaryOutput struct {
	Summary valueobject.ProgressSummary
	Goals   []valueobject.GoalProgress
}

// GetSummaryUseCase computes the progress of every goal from one read of each table.
type GetSummaryUseCase struct {
	goalRepo   adapter.GoalRepository
	actionRepo adapter.ActionRepository
	metricRepo adapter.MetricRepository
	config     valueobject.MatchingConfig
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	goalRepo adapter.GoalRepository,
	actionRepo adapter.ActionRepository,
	metricRepo adapter.MetricRepository,
	config valueobject.MatchingConfig,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		goalRepo:   goalRepo,
		actionRepo: actionRepo,
		metricRepo: metricRepo,
		config:     config,
	}
}

// Execute computes the summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	goals, err := uc.goalRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	ids := make([]uuid.UUID, len(goals))
	for i, g := range goals {
		ids[i] = g.ID()
	}
	contributions, err := uc.actionRepo.FindContributionsByGoals(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load contributions: %w", err)
	}
	metrics, err := uc.metricRepo.FindByIDs(ctx, measureMetricIDs(goals...))
	if err != nil {
		return nil, fmt.Errorf("failed to load metrics: %w", err)
	}

	byGoal := make(map[uuid.UUID][]*entity.ActionGoalContribution, len(goals))
	for _, c := range contributions {
		byGoal[c.GoalID] = append(byGoal[c.GoalID], c)
	}

	all := make([]valueobject.GoalProgress, len(goals))
	for i, g := range goals {
		all[i] = matching.ComputeProgress(g, byGoal[g.ID()], metrics, uc.config)
	}

	return &GetSummaryOutput{
		Summary: matching.Summarize(all),
		Goals:   all,
	}, nil
}
