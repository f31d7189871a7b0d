package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/application/usecase/progress"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
	"github.com/goal-tracker/backend/internal/integration/persistence"
	"github.com/goal-tracker/backend/internal/integration/persistence/persistencetest"
)

type fakeComputer struct {
	mu     sync.Mutex
	seen   []uuid.UUID
	failOn map[uuid.UUID]error
	onCall func()
}

func (f *fakeComputer) Execute(_ context.Context, input progress.ComputeProgressInput) (*progress.ComputeProgressOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, input.GoalID)
	if f.onCall != nil {
		f.onCall()
	}
	if err := f.failOn[input.GoalID]; err != nil {
		return nil, err
	}
	return &progress.ComputeProgressOutput{Progress: valueobject.GoalProgress{GoalID: input.GoalID}}, nil
}

func seedGoals(t *testing.T, repos adapter.Repositories, n int) []uuid.UUID {
	t.Helper()
	ids := make([]uuid.UUID, n)
	for i := range ids {
		title := "goal"
		exp := entity.NewGoalExpectation(&title, nil, 8, 5, entity.GoalDetails{})
		require.NoError(t, repos.Goals.CreateRoot(context.Background(), exp))
		ids[i] = exp.ID
	}
	return ids
}

func TestProgressWorker_RunOnceVisitsEveryGoal(t *testing.T) {
	db := persistencetest.NewDB(t)
	repos := persistence.NewRepositories(db)
	ids := seedGoals(t, repos, 7)

	computer := &fakeComputer{failOn: map[uuid.UUID]error{
		ids[2]: domainerror.ErrGoalNotFound,
		ids[4]: errors.New("boom"),
	}}
	w := NewProgressWorker(repos.Goals, computer, Config{Interval: time.Hour, BatchSize: 3})

	refreshed := w.RunOnce(context.Background())

	assert.Equal(t, 5, refreshed)
	assert.ElementsMatch(t, ids, computer.seen)
}

func TestProgressWorker_StopsWhenCancelled(t *testing.T) {
	db := persistencetest.NewDB(t)
	repos := persistence.NewRepositories(db)
	seedGoals(t, repos, 5)

	ctx, cancel := context.WithCancel(context.Background())
	computer := &fakeComputer{onCall: cancel}
	w := NewProgressWorker(repos.Goals, computer, Config{Interval: time.Hour, BatchSize: 10})

	assert.Equal(t, 1, w.RunOnce(ctx))
	assert.Len(t, computer.seen, 1)
}

func TestProgressWorker_StartReturnsOnCancel(t *testing.T) {
	db := persistencetest.NewDB(t)
	repos := persistence.NewRepositories(db)
	seedGoals(t, repos, 2)

	computer := &fakeComputer{}
	w := NewProgressWorker(repos.Goals, computer, Config{Interval: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		computer.mu.Lock()
		defer computer.mu.Unlock()
		return len(computer.seen) == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestNewProgressWorker_Defaults(t *testing.T) {
	w := NewProgressWorker(nil, &fakeComputer{}, Config{})
	assert.Equal(t, DefaultConfig().BatchSize, w.batchSize)
	assert.Equal(t, DefaultConfig().Interval, w.interval)
}
