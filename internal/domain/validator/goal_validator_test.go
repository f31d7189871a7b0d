package validator

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func timePtr(t time.Time) *time.Time {
	return &t
}

func validGoalForm() entity.GoalFormData {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return entity.GoalFormData{
		Title:      strPtr("Run 100km"),
		Importance: intPtr(8),
		Urgency:    intPtr(5),
		StartDate:  timePtr(start),
		TargetDate: timePtr(start.AddDate(0, 2, 0)),
		MetricTargets: []entity.MetricTargetInput{
			{MetricID: uuid.New(), TargetValue: decimal.NewFromInt(100)},
		},
		ValueAlignments: []entity.ValueAlignmentInput{
			{ValueID: uuid.New(), AlignmentStrength: intPtr(7)},
		},
	}
}

func TestGoalValidator_ValidateFormData(t *testing.T) {
	v := NewGoalValidator()

	tests := []struct {
		name   string
		mutate func(f *entity.GoalFormData)
		kind   error
	}{
		{name: "valid", mutate: func(*entity.GoalFormData) {}},
		{name: "description only", mutate: func(f *entity.GoalFormData) {
			f.Title = nil
			f.Description = strPtr("get fitter")
		}},
		{name: "no title or description", mutate: func(f *entity.GoalFormData) {
			f.Title = strPtr("  ")
			f.Description = nil
		}, kind: domainerror.ErrContentEmpty},
		{name: "importance at lower bound", mutate: func(f *entity.GoalFormData) { f.Importance = intPtr(1) }},
		{name: "importance at upper bound", mutate: func(f *entity.GoalFormData) { f.Importance = intPtr(10) }},
		{name: "importance zero", mutate: func(f *entity.GoalFormData) { f.Importance = intPtr(0) }, kind: domainerror.ErrRangeViolation},
		{name: "urgency eleven", mutate: func(f *entity.GoalFormData) { f.Urgency = intPtr(11) }, kind: domainerror.ErrRangeViolation},
		{name: "defaults left unset", mutate: func(f *entity.GoalFormData) {
			f.Importance = nil
			f.Urgency = nil
		}},
		{name: "start after target", mutate: func(f *entity.GoalFormData) {
			f.StartDate, f.TargetDate = f.TargetDate, f.StartDate
		}, kind: domainerror.ErrDateRangeInvalid},
		{name: "start equals target", mutate: func(f *entity.GoalFormData) { f.TargetDate = f.StartDate }},
		{name: "only one date", mutate: func(f *entity.GoalFormData) { f.StartDate = nil }},
		{name: "zero target value", mutate: func(f *entity.GoalFormData) {
			f.MetricTargets[0].TargetValue = decimal.Zero
		}, kind: domainerror.ErrRangeViolation},
		{name: "missing metric id", mutate: func(f *entity.GoalFormData) {
			f.MetricTargets[0].MetricID = uuid.Nil
		}, kind: domainerror.ErrMissingRequiredField},
		{name: "strength out of range", mutate: func(f *entity.GoalFormData) {
			f.ValueAlignments[0].AlignmentStrength = intPtr(11)
		}, kind: domainerror.ErrRangeViolation},
		{name: "strength omitted", mutate: func(f *entity.GoalFormData) {
			f.ValueAlignments[0].AlignmentStrength = nil
		}},
		{name: "non-positive term length", mutate: func(f *entity.GoalFormData) {
			f.ExpectedTermLength = intPtr(0)
		}, kind: domainerror.ErrRangeViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validGoalForm()
			tt.mutate(&form)

			err := v.ValidateFormData(form)
			if tt.kind == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)
		})
	}
}

func assembledGoal() *entity.Goal {
	exp := entity.NewGoalExpectation(strPtr("Run"), nil, 8, 5, entity.GoalDetails{})
	return &entity.Goal{
		Expectation: exp,
		Measures: []*entity.ExpectationMeasure{
			entity.NewExpectationMeasure(exp.ID, uuid.New(), decimal.NewFromInt(5)),
			entity.NewExpectationMeasure(exp.ID, uuid.New(), decimal.NewFromInt(10)),
		},
		Relevances: []*entity.GoalRelevance{
			entity.NewGoalRelevance(exp.ID, uuid.New(), nil, nil),
		},
	}
}

func TestGoalValidator_ValidateComplete(t *testing.T) {
	v := NewGoalValidator()

	t.Run("valid graph", func(t *testing.T) {
		assert.NoError(t, v.ValidateComplete(assembledGoal()))
	})

	t.Run("measure with wrong parent", func(t *testing.T) {
		g := assembledGoal()
		g.Measures[1].ExpectationID = uuid.New()

		err := v.ValidateComplete(g)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrInconsistentReference)
	})

	t.Run("duplicate metric", func(t *testing.T) {
		g := assembledGoal()
		g.Measures[1].MetricID = g.Measures[0].MetricID

		assert.ErrorIs(t, v.ValidateComplete(g), domainerror.ErrDuplicateRecord)
	})

	t.Run("relevance with wrong parent", func(t *testing.T) {
		g := assembledGoal()
		g.Relevances[0].GoalID = uuid.New()

		assert.ErrorIs(t, v.ValidateComplete(g), domainerror.ErrInconsistentReference)
	})

	t.Run("duplicate value", func(t *testing.T) {
		g := assembledGoal()
		g.Relevances = append(g.Relevances, entity.NewGoalRelevance(g.ID(), g.Relevances[0].ValueID, nil, nil))

		assert.ErrorIs(t, v.ValidateComplete(g), domainerror.ErrDuplicateRecord)
	})

	t.Run("missing root", func(t *testing.T) {
		assert.ErrorIs(t, v.ValidateComplete(&entity.Goal{}), domainerror.ErrMissingRequiredField)
	})
}
