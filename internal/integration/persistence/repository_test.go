package persistence

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
)

func TestMetricRepository_NaturalKey(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewMetricRepository(db)

	km := entity.NewMetric("KM", entity.MetricTypeDistance)
	require.NoError(t, repo.Create(ctx, km))

	got, err := repo.FindByUnitAndType(ctx, " km ", entity.MetricTypeDistance)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, km.ID, got.ID)

	missing, err := repo.FindByUnitAndType(ctx, "km", entity.MetricTypeTime)
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = repo.Create(ctx, entity.NewMetric("km", entity.MetricTypeDistance))
	assert.ErrorIs(t, err, domainerror.ErrDuplicateRecord)

	byID, err := repo.FindByIDs(ctx, []uuid.UUID{km.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, byID, 1)
}

func TestActionRepository_RoundTripAndFilter(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	actions := NewActionRepository(db)
	goals := NewGoalRepository(db)
	km := seedMetric(t, db, "km")

	goal := entity.NewGoalExpectation(strPtr("run"), nil, 8, 5, entity.GoalDetails{})
	require.NoError(t, goals.CreateRoot(ctx, goal))

	start := time.Date(2025, 2, 1, 7, 0, 0, 0, time.UTC)
	linked := entity.NewAction(strPtr("Morning run"), nil, nil, &start, nil)
	require.NoError(t, actions.CreateRoot(ctx, linked))
	require.NoError(t, actions.InsertMeasurements(ctx, []*entity.MeasuredAction{
		entity.NewMeasuredAction(linked.ID, km.ID, decimal.RequireFromString("5.25")),
	}))
	require.NoError(t, actions.InsertContributions(ctx, []*entity.ActionGoalContribution{
		entity.NewActionGoalContribution(linked.ID, goal.ID, &km.ID, decimal.RequireFromString("5.25"), entity.AssignmentMethodManual, 1),
		entity.NewActionGoalContribution(linked.ID, goal.ID, nil, decimal.Zero, entity.AssignmentMethodManual, 1),
	}))

	other := entity.NewAction(strPtr("Read"), nil, nil, nil, nil)
	require.NoError(t, actions.CreateRoot(ctx, other))

	rec, err := actions.FindByID(ctx, linked.ID)
	require.NoError(t, err)
	require.Len(t, rec.Measurements, 1)
	assert.True(t, decimal.RequireFromString("5.25").Equal(rec.Measurements[0].Value))
	require.Len(t, rec.Contributions, 2)

	all, err := actions.FindAll(ctx, adapter.ActionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := actions.FindAll(ctx, adapter.ActionFilter{GoalID: &goal.ID})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, linked.ID, filtered[0].ID())

	contributions, err := actions.FindContributionsByGoals(ctx, []uuid.UUID{goal.ID})
	require.NoError(t, err)
	assert.Len(t, contributions, 2)
}

func TestActionRepository_ContributionToUnknownGoal(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	actions := NewActionRepository(db)

	a := entity.NewAction(strPtr("x"), nil, nil, nil, nil)
	require.NoError(t, actions.CreateRoot(ctx, a))

	err := actions.InsertContributions(ctx, []*entity.ActionGoalContribution{
		entity.NewActionGoalContribution(a.ID, uuid.New(), nil, decimal.Zero, entity.AssignmentMethodManual, 1),
	})
	assert.ErrorIs(t, err, domainerror.ErrForeignKeyViolation)
}

func TestTermRepository_UniqueTermNumber(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewTermRepository(db)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateRoot(ctx, entity.NewTerm(1, nil, start, start.Add(entity.DefaultTermLength), nil)))

	err := repo.CreateRoot(ctx, entity.NewTerm(1, nil, start, start.Add(entity.DefaultTermLength), nil))
	assert.ErrorIs(t, err, domainerror.ErrDuplicateRecord)
	assert.True(t, domainerror.IsValidationError(err))
}

func TestValueRepository_FindAllOrdersByPriority(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewValueRepository(db)

	low := entity.NewPersonalValue(strPtr("Leisure"), nil, 60, entity.ValueLevelGeneral, entity.DefaultLifeDomain, nil)
	high := entity.NewPersonalValue(strPtr("Integrity"), nil, 1, entity.ValueLevelHighestOrder, entity.DefaultLifeDomain, nil)
	require.NoError(t, repo.Create(ctx, low))
	require.NoError(t, repo.Create(ctx, high))

	all, err := repo.FindAll(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, high.ID, all[0].ID)

	level := entity.ValueLevelGeneral
	general, err := repo.FindAll(ctx, &level)
	require.NoError(t, err)
	require.Len(t, general, 1)
	assert.Equal(t, low.ID, general[0].ID)
}

func TestRepositories_ForeignKeyFieldNamesTheChildRow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repos := NewRepositories(db)

	exp := entity.NewGoalExpectation(strPtr("goal"), nil, 8, 5, entity.GoalDetails{})
	require.NoError(t, repos.Goals.CreateRoot(ctx, exp))
	a := entity.NewAction(strPtr("action"), nil, nil, nil, nil)
	require.NoError(t, repos.Actions.CreateRoot(ctx, a))
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	term := entity.NewTerm(1, nil, start, start.AddDate(0, 0, 70), nil)
	require.NoError(t, repos.Terms.CreateRoot(ctx, term))
	strength := 5

	tests := []struct {
		name  string
		write func() error
		field string
	}{
		{
			name: "metric target with unknown metric",
			write: func() error {
				return repos.Goals.InsertMeasures(ctx, []*entity.ExpectationMeasure{
					entity.NewExpectationMeasure(exp.ID, uuid.New(), decimal.NewFromInt(1)),
				})
			},
			field: "metric target",
		},
		{
			name: "value alignment with unknown value",
			write: func() error {
				return repos.Goals.InsertRelevances(ctx, []*entity.GoalRelevance{
					entity.NewGoalRelevance(exp.ID, uuid.New(), &strength, nil),
				})
			},
			field: "value alignment",
		},
		{
			name: "measurement with unknown metric",
			write: func() error {
				return repos.Actions.InsertMeasurements(ctx, []*entity.MeasuredAction{
					entity.NewMeasuredAction(a.ID, uuid.New(), decimal.NewFromInt(3)),
				})
			},
			field: "measurement",
		},
		{
			name: "goal link with unknown goal",
			write: func() error {
				return repos.Actions.InsertContributions(ctx, []*entity.ActionGoalContribution{
					entity.NewActionGoalContribution(a.ID, uuid.New(), nil, decimal.Zero, entity.AssignmentMethodManual, 1),
				})
			},
			field: "goal link",
		},
		{
			name: "goal assignment with unknown goal",
			write: func() error {
				return repos.Terms.InsertAssignments(ctx, []*entity.TermGoalAssignment{
					entity.NewTermGoalAssignment(term.ID, uuid.New(), 1),
				})
			},
			field: "goal assignment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.write()
			require.ErrorIs(t, err, domainerror.ErrForeignKeyViolation)

			var vErr *domainerror.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, domainerror.ErrCodeForeignKeyViolation, vErr.Code)
		})
	}
}
