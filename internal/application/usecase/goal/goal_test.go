package goal

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
	"github.com/goal-tracker/backend/internal/integration/persistence"
	"github.com/goal-tracker/backend/internal/integration/persistence/persistencetest"
)

type recordingCache struct {
	invalidated []uuid.UUID
}

func (c *recordingCache) Get(context.Context, uuid.UUID) (*valueobject.GoalProgress, error) {
	return nil, nil
}

func (c *recordingCache) Version(context.Context, uuid.UUID) (int64, error) { return 0, nil }

func (c *recordingCache) Set(context.Context, *valueobject.GoalProgress, int64) error { return nil }

func (c *recordingCache) Invalidate(_ context.Context, ids ...uuid.UUID) error {
	c.invalidated = append(c.invalidated, ids...)
	return nil
}

type fixture struct {
	db     *gorm.DB
	repos  adapter.Repositories
	tx     adapter.TxManager
	cache  *recordingCache
	create *CreateGoalUseCase
	update *UpdateGoalUseCase
	delete *DeleteGoalUseCase
	get    *GetGoalUseCase
}

func newFixture(t *testing.T) *fixture {
	db := persistencetest.NewDB(t)
	repos := persistence.NewRepositories(db)
	tx := persistence.NewTxManager(db)
	cache := &recordingCache{}

	return &fixture{
		db:     db,
		repos:  repos,
		tx:     tx,
		cache:  cache,
		create: NewCreateGoalUseCase(tx),
		update: NewUpdateGoalUseCase(tx, cache),
		delete: NewDeleteGoalUseCase(tx, cache),
		get:    NewGetGoalUseCase(repos.Goals),
	}
}

func (f *fixture) metric(t *testing.T, unit string) uuid.UUID {
	t.Helper()
	m := entity.NewMetric(unit, entity.MetricTypeOther)
	require.NoError(t, f.repos.Metrics.Create(context.Background(), m))
	return m.ID
}

func (f *fixture) value(t *testing.T, title string) uuid.UUID {
	t.Helper()
	v := entity.NewPersonalValue(&title, nil, 40, entity.ValueLevelGeneral, entity.DefaultLifeDomain, nil)
	require.NoError(t, f.repos.Values.Create(context.Background(), v))
	return v.ID
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func targets(pairs map[uuid.UUID]int64) []entity.MetricTargetInput {
	out := make([]entity.MetricTargetInput, 0, len(pairs))
	for id, v := range pairs {
		out = append(out, entity.MetricTargetInput{MetricID: id, TargetValue: decimal.NewFromInt(v)})
	}
	return out
}

func TestCreateGoal_RoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	km := f.metric(t, "km")
	health := f.value(t, "Health")

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	target := start.AddDate(0, 2, 0)
	form := entity.GoalFormData{
		Title:         strPtr("Run 100km"),
		StartDate:     &start,
		TargetDate:    &target,
		ActionPlan:    strPtr("three runs a week"),
		MetricTargets: []entity.MetricTargetInput{{MetricID: km, TargetValue: decimal.NewFromInt(100)}},
		ValueAlignments: []entity.ValueAlignmentInput{
			{ValueID: health, AlignmentStrength: intPtr(10)},
		},
	}

	out, err := f.create.Execute(ctx, CreateGoalInput{Form: form})
	require.NoError(t, err)

	got, err := f.get.Execute(ctx, GetGoalInput{GoalID: out.Goal.ID()})
	require.NoError(t, err)

	assert.Equal(t, "Run 100km", *got.Goal.Expectation.Title)
	assert.Nil(t, got.Goal.Expectation.Description)
	assert.Equal(t, entity.DefaultGoalImportance, got.Goal.Expectation.Importance)
	assert.Equal(t, entity.DefaultGoalUrgency, got.Goal.Expectation.Urgency)
	assert.True(t, start.Equal(*got.Goal.Details().StartDate))
	assert.True(t, target.Equal(*got.Goal.Details().TargetDate))
	require.Len(t, got.Goal.Measures, 1)
	assert.Equal(t, km, got.Goal.Measures[0].MetricID)
	assert.True(t, decimal.NewFromInt(100).Equal(got.Goal.Measures[0].TargetValue))
	require.Len(t, got.Goal.Relevances, 1)
	assert.Equal(t, 10, *got.Goal.Relevances[0].AlignmentStrength)
	assert.Equal(t, entity.GoalClassificationSMART, got.Classification)
}

func TestCreateGoal_ValidationFailsBeforeWriting(t *testing.T) {
	f := newFixture(t)

	_, err := f.create.Execute(context.Background(), CreateGoalInput{Form: entity.GoalFormData{
		Title:      strPtr("x"),
		Importance: intPtr(11),
	}})
	assert.ErrorIs(t, err, domainerror.ErrRangeViolation)
	assert.Zero(t, persistencetest.Count(t, f.db, "expectations", ""))
}

func TestCreateGoal_UnknownMetricLeavesNoRows(t *testing.T) {
	f := newFixture(t)
	km := f.metric(t, "km")

	_, err := f.create.Execute(context.Background(), CreateGoalInput{Form: entity.GoalFormData{
		Title: strPtr("atomic"),
		MetricTargets: []entity.MetricTargetInput{
			{MetricID: km, TargetValue: decimal.NewFromInt(5)},
			{MetricID: uuid.New(), TargetValue: decimal.NewFromInt(5)},
		},
	}})
	require.ErrorIs(t, err, domainerror.ErrForeignKeyViolation)

	assert.Zero(t, persistencetest.Count(t, f.db, "expectations", ""))
	assert.Zero(t, persistencetest.Count(t, f.db, "goal_details", ""))
	assert.Zero(t, persistencetest.Count(t, f.db, "expectation_measures", ""))
}

func TestUpdateGoal_ReconcilesMetricTargets(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, b, c := f.metric(t, "a"), f.metric(t, "b"), f.metric(t, "c")

	created, err := f.create.Execute(ctx, CreateGoalInput{Form: entity.GoalFormData{
		Title:         strPtr("sets"),
		MetricTargets: targets(map[uuid.UUID]int64{a: 5, b: 10}),
	}})
	require.NoError(t, err)
	goalID := created.Goal.ID()

	before, err := f.repos.Goals.FindByID(ctx, goalID)
	require.NoError(t, err)
	var storedB *entity.ExpectationMeasure
	for _, m := range before.Measures {
		if m.MetricID == b {
			storedB = m
		}
	}
	require.NotNil(t, storedB)

	_, err = f.update.Execute(ctx, UpdateGoalInput{GoalID: goalID, Form: entity.GoalFormData{
		Title:         strPtr("sets"),
		MetricTargets: targets(map[uuid.UUID]int64{b: 10, c: 7}),
	}})
	require.NoError(t, err)

	after, err := f.repos.Goals.FindByID(ctx, goalID)
	require.NoError(t, err)
	require.Len(t, after.Measures, 2)

	byMetric := map[uuid.UUID]*entity.ExpectationMeasure{}
	for _, m := range after.Measures {
		byMetric[m.MetricID] = m
	}
	assert.NotContains(t, byMetric, a)
	require.Contains(t, byMetric, b)
	require.Contains(t, byMetric, c)
	assert.Equal(t, storedB.ID, byMetric[b].ID)
	assert.True(t, storedB.CreatedAt.Equal(byMetric[b].CreatedAt))
	assert.True(t, decimal.NewFromInt(7).Equal(byMetric[c].TargetValue))
	assert.Contains(t, f.cache.invalidated, goalID)
}

func TestUpdateGoal_ChangedTargetKeepsRowIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	km := f.metric(t, "km")

	created, err := f.create.Execute(ctx, CreateGoalInput{Form: entity.GoalFormData{
		Title:         strPtr("grow"),
		MetricTargets: targets(map[uuid.UUID]int64{km: 10}),
	}})
	require.NoError(t, err)
	originalRow := created.Goal.Measures[0].ID

	out, err := f.update.Execute(ctx, UpdateGoalInput{GoalID: created.Goal.ID(), Form: entity.GoalFormData{
		Title:         strPtr("grow more"),
		Importance:    intPtr(3),
		MetricTargets: targets(map[uuid.UUID]int64{km: 12}),
	}})
	require.NoError(t, err)
	assert.True(t, created.Goal.Expectation.CreatedAt.Equal(out.Goal.Expectation.CreatedAt))

	after, err := f.repos.Goals.FindByID(ctx, created.Goal.ID())
	require.NoError(t, err)
	require.Len(t, after.Measures, 1)
	assert.Equal(t, originalRow, after.Measures[0].ID)
	assert.True(t, decimal.NewFromInt(12).Equal(after.Measures[0].TargetValue))
	assert.Equal(t, "grow more", *after.Expectation.Title)
	assert.Equal(t, 3, after.Expectation.Importance)
	assert.True(t, created.Goal.Expectation.CreatedAt.Equal(after.Expectation.CreatedAt))
}

func TestUpdateGoal_UnknownGoal(t *testing.T) {
	f := newFixture(t)

	_, err := f.update.Execute(context.Background(), UpdateGoalInput{
		GoalID: uuid.New(),
		Form:   entity.GoalFormData{Title: strPtr("ghost")},
	})
	assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)
	assert.Zero(t, persistencetest.Count(t, f.db, "expectations", ""))
}

func TestUpdateGoal_FailedReconcileRollsBackRoot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	km := f.metric(t, "km")

	created, err := f.create.Execute(ctx, CreateGoalInput{Form: entity.GoalFormData{
		Title:         strPtr("before"),
		MetricTargets: targets(map[uuid.UUID]int64{km: 10}),
	}})
	require.NoError(t, err)

	_, err = f.update.Execute(ctx, UpdateGoalInput{GoalID: created.Goal.ID(), Form: entity.GoalFormData{
		Title:         strPtr("after"),
		MetricTargets: targets(map[uuid.UUID]int64{uuid.New(): 1}),
	}})
	require.ErrorIs(t, err, domainerror.ErrForeignKeyViolation)

	after, err := f.repos.Goals.FindByID(ctx, created.Goal.ID())
	require.NoError(t, err)
	assert.Equal(t, "before", *after.Expectation.Title)
	require.Len(t, after.Measures, 1)
	assert.Equal(t, km, after.Measures[0].MetricID)
}

func TestDeleteGoal_CascadesJunctionsOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	km, sessions := f.metric(t, "km"), f.metric(t, "sessions")
	health := f.value(t, "Health")

	created, err := f.create.Execute(ctx, CreateGoalInput{Form: entity.GoalFormData{
		Title:           strPtr("doomed"),
		MetricTargets:   targets(map[uuid.UUID]int64{km: 100, sessions: 20}),
		ValueAlignments: []entity.ValueAlignmentInput{{ValueID: health}},
	}})
	require.NoError(t, err)
	goalID := created.Goal.ID()

	action := entity.NewAction(strPtr("run"), nil, nil, nil, nil)
	require.NoError(t, f.repos.Actions.CreateRoot(ctx, action))
	require.NoError(t, f.repos.Actions.InsertContributions(ctx, []*entity.ActionGoalContribution{
		entity.NewActionGoalContribution(action.ID, goalID, &km, decimal.NewFromInt(5), entity.AssignmentMethodManual, 1),
	}))
	term := entity.NewTerm(1, nil, time.Now().UTC(), time.Now().UTC().Add(entity.DefaultTermLength), nil)
	require.NoError(t, f.repos.Terms.CreateRoot(ctx, term))
	require.NoError(t, f.repos.Terms.InsertAssignments(ctx, []*entity.TermGoalAssignment{
		entity.NewTermGoalAssignment(term.ID, goalID, 1),
	}))

	require.NoError(t, f.delete.Execute(ctx, DeleteGoalInput{GoalID: goalID}))

	assert.Zero(t, persistencetest.Count(t, f.db, "expectations", "id = ?", goalID))
	assert.Zero(t, persistencetest.Count(t, f.db, "goal_details", "expectation_id = ?", goalID))
	assert.Zero(t, persistencetest.Count(t, f.db, "expectation_measures", "expectation_id = ?", goalID))
	assert.Zero(t, persistencetest.Count(t, f.db, "goal_relevances", "goal_id = ?", goalID))
	assert.Zero(t, persistencetest.Count(t, f.db, "action_goal_contributions", "goal_id = ?", goalID))
	assert.Zero(t, persistencetest.Count(t, f.db, "term_goal_assignments", "goal_id = ?", goalID))

	assert.EqualValues(t, 2, persistencetest.Count(t, f.db, "metrics", ""))
	assert.EqualValues(t, 1, persistencetest.Count(t, f.db, "personal_values", ""))
	assert.EqualValues(t, 1, persistencetest.Count(t, f.db, "actions", ""))
	assert.EqualValues(t, 1, persistencetest.Count(t, f.db, "terms", ""))
	assert.Contains(t, f.cache.invalidated, goalID)
}

func TestDeleteGoal_UnknownGoal(t *testing.T) {
	f := newFixture(t)
	err := f.delete.Execute(context.Background(), DeleteGoalInput{GoalID: uuid.New()})
	assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)
}

func TestListGoals_FiltersByClassification(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	km := f.metric(t, "km")

	_, err := f.create.Execute(ctx, CreateGoalInput{Form: entity.GoalFormData{Title: strPtr("minimal")}})
	require.NoError(t, err)
	_, err = f.create.Execute(ctx, CreateGoalInput{Form: entity.GoalFormData{
		Title:         strPtr("measured"),
		MetricTargets: targets(map[uuid.UUID]int64{km: 3}),
	}})
	require.NoError(t, err)

	list := NewListGoalsUseCase(f.repos.Goals)
	all, err := list.Execute(ctx, ListGoalsInput{})
	require.NoError(t, err)
	assert.Len(t, all.Goals, 2)

	measured, err := list.Execute(ctx, ListGoalsInput{Classification: entity.GoalClassificationMeasured})
	require.NoError(t, err)
	require.Len(t, measured.Goals, 1)
	assert.Equal(t, "measured", *measured.Goals[0].Expectation.Title)
}
