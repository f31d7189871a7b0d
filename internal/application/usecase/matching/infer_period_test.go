package matching

import (
	"context"
	"testing"
	"time"

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

type matchingFixture struct {
	repos   adapter.Repositories
	km      *entity.Metric
	minutes *entity.Metric
	start   time.Time
	end     time.Time
}

func newMatchingFixture(t *testing.T) *matchingFixture {
	t.Helper()
	db := persistencetest.NewDB(t)
	f := &matchingFixture{
		repos:   persistence.NewRepositories(db),
		km:      entity.NewMetric("km", entity.MetricTypeDistance),
		minutes: entity.NewMetric("minutes", entity.MetricTypeTime),
		start:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		end:     time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, f.repos.Metrics.Create(context.Background(), f.km))
	require.NoError(t, f.repos.Metrics.Create(context.Background(), f.minutes))
	return f
}

func (f *matchingFixture) goal(t *testing.T, title string, start, target *time.Time, metricIDs ...uuid.UUID) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	exp := entity.NewGoalExpectation(&title, nil, 8, 5, entity.GoalDetails{StartDate: start, TargetDate: target})
	require.NoError(t, f.repos.Goals.CreateRoot(ctx, exp))
	measures := make([]*entity.ExpectationMeasure, 0, len(metricIDs))
	for _, id := range metricIDs {
		measures = append(measures, entity.NewExpectationMeasure(exp.ID, id, decimal.NewFromInt(100)))
	}
	require.NoError(t, f.repos.Goals.InsertMeasures(ctx, measures))
	return exp.ID
}

func (f *matchingFixture) action(t *testing.T, title string, at time.Time, metricID uuid.UUID, value string) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	a := entity.NewAction(&title, nil, nil, &at, nil)
	require.NoError(t, f.repos.Actions.CreateRoot(ctx, a))
	require.NoError(t, f.repos.Actions.InsertMeasurements(ctx, []*entity.MeasuredAction{
		entity.NewMeasuredAction(a.ID, metricID, decimal.RequireFromString(value)),
	}))
	return a.ID
}

func TestInferPeriod(t *testing.T) {
	f := newMatchingFixture(t)
	ctx := context.Background()

	quarterGoal := f.goal(t, "Run 100km this quarter", &f.start, &f.end, f.km.ID)
	openGoal := f.goal(t, "Meditate", nil, nil, f.minutes.ID)
	later := f.end.AddDate(0, 2, 0)
	f.goal(t, "Summer swim", &later, nil, f.km.ID)

	run := f.action(t, "Morning run", f.start.AddDate(0, 0, 5), f.km.ID, "10")
	sit := f.action(t, "Sit", f.start.AddDate(0, 1, 0), f.minutes.ID, "20")
	f.action(t, "Run before the period", f.start.AddDate(0, 0, -3), f.km.ID, "4")

	other := "pages"
	pages := entity.NewMetric(other, entity.MetricTypeCount)
	require.NoError(t, f.repos.Metrics.Create(ctx, pages))
	reading := f.action(t, "Reading", f.start.AddDate(0, 0, 9), pages.ID, "30")

	theme := "Foundations"
	tm := entity.NewTerm(1, &theme, f.start, f.end, nil)
	require.NoError(t, f.repos.Terms.CreateRoot(ctx, tm))

	uc := NewInferPeriodUseCase(f.repos.Actions, f.repos.Goals, f.repos.Terms, valueobject.DefaultMatchingConfig())

	t.Run("by term", func(t *testing.T) {
		out, err := uc.Execute(ctx, InferPeriodInput{TermID: &tm.ID, Keywords: []string{"run"}})
		require.NoError(t, err)

		assert.True(t, f.start.Equal(out.From))
		assert.True(t, f.end.Equal(out.To))
		assert.Equal(t, 3, out.Session.ActionsAnalyzed)
		assert.Equal(t, 2, out.Session.GoalsAnalyzed)

		require.Len(t, out.Session.Confident, 1)
		assert.Equal(t, run, out.Session.Confident[0].ActionID)
		assert.Equal(t, quarterGoal, out.Session.Confident[0].GoalID)

		require.Len(t, out.Session.Ambiguous, 1)
		assert.Equal(t, sit, out.Session.Ambiguous[0].ActionID)
		assert.Equal(t, openGoal, out.Session.Ambiguous[0].GoalID)

		assert.Equal(t, []uuid.UUID{reading}, out.Session.Unmatched)
	})

	t.Run("by date range", func(t *testing.T) {
		from, to := f.start, f.start.AddDate(0, 0, 7)
		out, err := uc.Execute(ctx, InferPeriodInput{From: &from, To: &to})
		require.NoError(t, err)

		assert.Nil(t, out.TermID)
		assert.Equal(t, 1, out.Session.ActionsAnalyzed)
		assert.Empty(t, out.Session.Confident)
		require.Len(t, out.Session.Ambiguous, 1)
		assert.Equal(t, run, out.Session.Ambiguous[0].ActionID)
	})
}

func TestInferPeriod_Rejects(t *testing.T) {
	f := newMatchingFixture(t)
	uc := NewInferPeriodUseCase(f.repos.Actions, f.repos.Goals, f.repos.Terms, valueobject.DefaultMatchingConfig())
	missing := uuid.New()

	tests := []struct {
		name    string
		input   InferPeriodInput
		wantErr error
	}{
		{name: "unknown term", input: InferPeriodInput{TermID: &missing}, wantErr: domainerror.ErrTermNotFound},
		{name: "no period", input: InferPeriodInput{}, wantErr: domainerror.ErrMissingRequiredField},
		{name: "missing end", input: InferPeriodInput{From: &f.start}, wantErr: domainerror.ErrMissingRequiredField},
		{name: "reversed period", input: InferPeriodInput{From: &f.end, To: &f.start}, wantErr: domainerror.ErrDateRangeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMatchGoal(t *testing.T) {
	f := newMatchingFixture(t)
	ctx := context.Background()

	goalID := f.goal(t, "Run 100km this quarter", &f.start, &f.end, f.km.ID)
	long := f.action(t, "Long run", f.start.AddDate(0, 0, 20), f.km.ID, "21")
	short := f.action(t, "Short run", f.start.AddDate(0, 0, 2), f.km.ID, "5")
	f.action(t, "Run after the goal", f.end.AddDate(0, 0, 2), f.km.ID, "12")
	f.action(t, "Sit", f.start.AddDate(0, 0, 4), f.minutes.ID, "15")

	uc := NewMatchGoalUseCase(f.repos.Actions, f.repos.Goals, valueobject.DefaultMatchingConfig())

	all, err := uc.Execute(ctx, MatchGoalInput{GoalID: goalID})
	require.NoError(t, err)
	assert.Equal(t, 4, all.ActionsAnalyzed)
	require.Len(t, all.Matches, 2)
	ids := []uuid.UUID{all.Matches[0].ActionID, all.Matches[1].ActionID}
	assert.ElementsMatch(t, []uuid.UUID{long, short}, ids)
	assert.True(t, decimal.NewFromInt(26).Equal(all.Total), all.Total.String())

	to := f.start.AddDate(0, 0, 10)
	narrowed, err := uc.Execute(ctx, MatchGoalInput{GoalID: goalID, From: &f.start, To: &to})
	require.NoError(t, err)
	require.Len(t, narrowed.Matches, 1)
	assert.Equal(t, short, narrowed.Matches[0].ActionID)
	assert.True(t, decimal.NewFromInt(5).Equal(narrowed.Total))

	_, err = uc.Execute(ctx, MatchGoalInput{GoalID: uuid.New()})
	assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)

	_, err = uc.Execute(ctx, MatchGoalInput{GoalID: goalID, From: &f.end, To: &f.start})
	assert.ErrorIs(t, err, domainerror.ErrDateRangeInvalid)
}
