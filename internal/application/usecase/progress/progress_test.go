package progress

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
	"github.com/goal-tracker/backend/internal/integration/persistence"
	"github.com/goal-tracker/backend/internal/integration/persistence/persistencetest"
)

type memoryCache struct {
	entries  map[uuid.UUID]valueobject.GoalProgress
	versions map[uuid.UUID]int64
	sets     int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		entries:  map[uuid.UUID]valueobject.GoalProgress{},
		versions: map[uuid.UUID]int64{},
	}
}

func (c *memoryCache) Get(_ context.Context, id uuid.UUID) (*valueobject.GoalProgress, error) {
	p, ok := c.entries[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (c *memoryCache) Version(_ context.Context, id uuid.UUID) (int64, error) {
	return c.versions[id], nil
}

func (c *memoryCache) Set(_ context.Context, p *valueobject.GoalProgress, version int64) error {
	if c.versions[p.GoalID] != version {
		return nil
	}
	c.entries[p.GoalID] = *p
	c.sets++
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context, ids ...uuid.UUID) error {
	for _, id := range ids {
		delete(c.entries, id)
		c.versions[id]++
	}
	return nil
}

// invalidatingActions invalidates the goal while its contributions are read,
// as a concurrent write would.
type invalidatingActions struct {
	adapter.ActionRepository
	cache *memoryCache
}

func (r invalidatingActions) FindContributionsByGoals(ctx context.Context, goalIDs []uuid.UUID) ([]*entity.ActionGoalContribution, error) {
	rows, err := r.ActionRepository.FindContributionsByGoals(ctx, goalIDs)
	if err != nil {
		return nil, err
	}
	return rows, r.cache.Invalidate(ctx, goalIDs...)
}

// seedGoal stores a goal with targets {km:100, sessions:20} and contributions
// summing to km:40, sessions:20 across three actions.
func seedGoal(t *testing.T, repos adapter.Repositories) (goalID, km, sessions uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	kmMetric := entity.NewMetric("km", entity.MetricTypeDistance)
	sessionMetric := entity.NewMetric("sessions", entity.MetricTypeCount)
	require.NoError(t, repos.Metrics.Create(ctx, kmMetric))
	require.NoError(t, repos.Metrics.Create(ctx, sessionMetric))
	km, sessions = kmMetric.ID, sessionMetric.ID

	title := "Marathon block"
	exp := entity.NewGoalExpectation(&title, nil, 8, 5, entity.GoalDetails{})
	require.NoError(t, repos.Goals.CreateRoot(ctx, exp))
	require.NoError(t, repos.Goals.InsertMeasures(ctx, []*entity.ExpectationMeasure{
		entity.NewExpectationMeasure(exp.ID, km, decimal.NewFromInt(100)),
		entity.NewExpectationMeasure(exp.ID, sessions, decimal.NewFromInt(20)),
	}))

	amounts := []struct {
		km, sessions int64
	}{{15, 10}, {25, 9}, {0, 1}}
	for _, a := range amounts {
		action := entity.NewAction(&title, nil, nil, nil, nil)
		require.NoError(t, repos.Actions.CreateRoot(ctx, action))
		require.NoError(t, repos.Actions.InsertContributions(ctx, []*entity.ActionGoalContribution{
			entity.NewActionGoalContribution(action.ID, exp.ID, &km, decimal.NewFromInt(a.km), entity.AssignmentMethodManual, 1),
			entity.NewActionGoalContribution(action.ID, exp.ID, &sessions, decimal.NewFromInt(a.sessions), entity.AssignmentMethodManual, 1),
		}))
	}
	return exp.ID, km, sessions
}

func TestComputeProgress(t *testing.T) {
	db := persistencetest.NewDB(t)
	ctx := context.Background()
	repos := persistence.NewRepositories(db)
	goalID, km, sessions := seedGoal(t, repos)
	cache := newMemoryCache()

	uc := NewComputeProgressUseCase(repos.Goals, repos.Actions, repos.Metrics, cache, valueobject.DefaultMatchingConfig())

	out, err := uc.Execute(ctx, ComputeProgressInput{GoalID: goalID})
	require.NoError(t, err)
	assert.False(t, out.Cached)

	per := out.Progress.PerMetricPercentage()
	assert.InDelta(t, 40.0, per[km], 1e-9)
	assert.InDelta(t, 100.0, per[sessions], 1e-9)
	assert.InDelta(t, 70.0, out.Progress.OverallPercentage, 1e-9)
	assert.False(t, out.Progress.IsComplete)
	assert.Equal(t, 3, out.Progress.MatchingActionCount)
	for _, m := range out.Progress.Metrics {
		assert.NotEmpty(t, m.Unit)
	}

	again, err := uc.Execute(ctx, ComputeProgressInput{GoalID: goalID})
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Equal(t, out.Progress, again.Progress)

	refreshed, err := uc.Execute(ctx, ComputeProgressInput{GoalID: goalID, Refresh: true})
	require.NoError(t, err)
	assert.False(t, refreshed.Cached)
	assert.Equal(t, out.Progress, refreshed.Progress)
	assert.Equal(t, 2, cache.sets)
}

func TestComputeProgress_InvalidatedDuringComputeIsNotCached(t *testing.T) {
	db := persistencetest.NewDB(t)
	ctx := context.Background()
	repos := persistence.NewRepositories(db)
	goalID, _, _ := seedGoal(t, repos)
	cache := newMemoryCache()

	racing := NewComputeProgressUseCase(repos.Goals, invalidatingActions{ActionRepository: repos.Actions, cache: cache}, repos.Metrics, cache, valueobject.DefaultMatchingConfig())
	out, err := racing.Execute(ctx, ComputeProgressInput{GoalID: goalID})
	require.NoError(t, err)
	assert.InDelta(t, 70.0, out.Progress.OverallPercentage, 1e-9)
	assert.Zero(t, cache.sets)

	cached, err := cache.Get(ctx, goalID)
	require.NoError(t, err)
	assert.Nil(t, cached)

	uc := NewComputeProgressUseCase(repos.Goals, repos.Actions, repos.Metrics, cache, valueobject.DefaultMatchingConfig())
	_, err = uc.Execute(ctx, ComputeProgressInput{GoalID: goalID})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
}

func TestComputeProgress_UnknownGoal(t *testing.T) {
	db := persistencetest.NewDB(t)
	repos := persistence.NewRepositories(db)

	uc := NewComputeProgressUseCase(repos.Goals, repos.Actions, repos.Metrics, nil, valueobject.DefaultMatchingConfig())
	_, err := uc.Execute(context.Background(), ComputeProgressInput{GoalID: uuid.New()})
	assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)
}

func TestGetSummary(t *testing.T) {
	db := persistencetest.NewDB(t)
	ctx := context.Background()
	repos := persistence.NewRepositories(db)
	seedGoal(t, repos)

	title := "No targets"
	require.NoError(t, repos.Goals.CreateRoot(ctx, entity.NewGoalExpectation(&title, nil, 8, 5, entity.GoalDetails{})))

	out, err := NewGetSummaryUseCase(repos.Goals, repos.Actions, repos.Metrics, valueobject.DefaultMatchingConfig()).Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, out.Summary.TotalGoals)
	assert.Equal(t, 0, out.Summary.CompleteGoals)
	assert.Equal(t, 2, out.Summary.InProgressGoals)
	assert.InDelta(t, 35.0, out.Summary.AverageCompletion, 1e-9)
	assert.Equal(t, 3, out.Summary.TotalActionsMatched)
	assert.Len(t, out.Goals, 2)
}
