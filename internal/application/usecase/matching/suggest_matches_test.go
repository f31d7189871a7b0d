package matching

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
	"github.com/goal-tracker/backend/internal/integration/persistence"
	"github.com/goal-tracker/backend/internal/integration/persistence/persistencetest"
)

func TestSuggestMatches(t *testing.T) {
	db := persistencetest.NewDB(t)
	ctx := context.Background()
	repos := persistence.NewRepositories(db)

	km := entity.NewMetric("km", entity.MetricTypeDistance)
	minutes := entity.NewMetric("minutes", entity.MetricTypeTime)
	require.NoError(t, repos.Metrics.Create(ctx, km))
	require.NoError(t, repos.Metrics.Create(ctx, minutes))

	goalFor := func(title string, metricID uuid.UUID) uuid.UUID {
		exp := entity.NewGoalExpectation(&title, nil, 8, 5, entity.GoalDetails{})
		require.NoError(t, repos.Goals.CreateRoot(ctx, exp))
		require.NoError(t, repos.Goals.InsertMeasures(ctx, []*entity.ExpectationMeasure{
			entity.NewExpectationMeasure(exp.ID, metricID, decimal.NewFromInt(100)),
		}))
		return exp.ID
	}
	kmGoal := goalFor("Run more", km.ID)
	goalFor("Meditate", minutes.ID)

	title := "Evening run"
	action := entity.NewAction(&title, nil, nil, nil, nil)
	require.NoError(t, repos.Actions.CreateRoot(ctx, action))
	require.NoError(t, repos.Actions.InsertMeasurements(ctx, []*entity.MeasuredAction{
		entity.NewMeasuredAction(action.ID, km.ID, decimal.RequireFromString("5.0")),
	}))

	uc := NewSuggestMatchesUseCase(repos.Actions, repos.Goals, valueobject.DefaultMatchingConfig())

	plain, err := uc.Execute(ctx, SuggestMatchesInput{ActionID: action.ID})
	require.NoError(t, err)
	assert.Empty(t, plain.Suggestions.Confident)
	require.Len(t, plain.Suggestions.Ambiguous, 1)
	assert.Equal(t, kmGoal, plain.Suggestions.Ambiguous[0].GoalID)
	assert.InDelta(t, 0.6, plain.Suggestions.Ambiguous[0].Confidence, 1e-9)

	boosted, err := uc.Execute(ctx, SuggestMatchesInput{ActionID: action.ID, Keywords: []string{"RUN"}})
	require.NoError(t, err)
	require.Len(t, boosted.Suggestions.Confident, 1)
	assert.Equal(t, kmGoal, boosted.Suggestions.Confident[0].GoalID)
	assert.InDelta(t, 0.9, boosted.Suggestions.Confident[0].Confidence, 1e-9)
	assert.True(t, decimal.NewFromInt(5).Equal(boosted.Suggestions.Confident[0].Contribution))

	_, err = uc.Execute(ctx, SuggestMatchesInput{ActionID: uuid.New()})
	assert.ErrorIs(t, err, domainerror.ErrActionNotFound)
}
