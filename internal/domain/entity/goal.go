package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Defaults applied to goal form data.
const (
	DefaultGoalImportance = 8
	DefaultGoalUrgency    = 5
)

// Alignment strength bounds for goal relevance rows.
const (
	MinAlignmentStrength = 1
	MaxAlignmentStrength = 10
)

// GoalClassification is derived from the shape of a goal aggregate; it is never stored.
type GoalClassification string

const (
	GoalClassificationMinimal  GoalClassification = "minimal"
	GoalClassificationMeasured GoalClassification = "measured"
	GoalClassificationSMART    GoalClassification = "smart"
)

// ExpectationMeasure is a target value for one metric on one expectation.
type ExpectationMeasure struct {
	ID            uuid.UUID
	ExpectationID uuid.UUID
	MetricID      uuid.UUID
	TargetValue   decimal.Decimal
	CreatedAt     time.Time
}

// GoalRelevance links a goal to a personal value it serves.
type GoalRelevance struct {
	ID                uuid.UUID
	GoalID            uuid.UUID
	ValueID           uuid.UUID
	AlignmentStrength *int
	Notes             *string
	CreatedAt         time.Time
}

// Goal is the canonical flat representation of a goal aggregate: the expectation
// row plus every junction row owned by it.
type Goal struct {
	Expectation *Expectation
	Measures    []*ExpectationMeasure
	Relevances  []*GoalRelevance
}

// ID returns the aggregate root id.
func (g *Goal) ID() uuid.UUID {
	return g.Expectation.ID
}

// Details returns the goal payload, zero when the root is not a goal.
func (g *Goal) Details() GoalDetails {
	d, _ := g.Expectation.GoalDetails()
	return d
}

// Classification derives the minimal/measured/SMART class of the goal.
func (g *Goal) Classification() GoalClassification {
	if len(g.Measures) == 0 {
		return GoalClassificationMinimal
	}
	d := g.Details()
	if d.StartDate != nil && d.TargetDate != nil && d.ActionPlan != nil && *d.ActionPlan != "" && len(g.Relevances) > 0 {
		return GoalClassificationSMART
	}
	return GoalClassificationMeasured
}

// IsMinimal reports whether the goal has neither metric targets nor dates.
func (g *Goal) IsMinimal() bool {
	return len(g.Measures) == 0 && !g.Details().HasDates()
}

// NewGoalExpectation creates the expectation root for a goal.
func NewGoalExpectation(title, description *string, importance, urgency int, details GoalDetails) *Expectation {
	now := time.Now().UTC()

	return &Expectation{
		ID:          uuid.New(),
		Kind:        ExpectationKindGoal,
		Title:       title,
		Description: description,
		Importance:  importance,
		Urgency:     urgency,
		Details:     details,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewExpectationMeasure creates a metric target row for the given expectation.
func NewExpectationMeasure(expectationID, metricID uuid.UUID, target decimal.Decimal) *ExpectationMeasure {
	return &ExpectationMeasure{
		ID:            uuid.New(),
		ExpectationID: expectationID,
		MetricID:      metricID,
		TargetValue:   target,
		CreatedAt:     time.Now().UTC(),
	}
}

// NewGoalRelevance creates a value alignment row for the given goal.
func NewGoalRelevance(goalID, valueID uuid.UUID, strength *int, notes *string) *GoalRelevance {
	return &GoalRelevance{
		ID:                uuid.New(),
		GoalID:            goalID,
		ValueID:           valueID,
		AlignmentStrength: strength,
		Notes:             notes,
		CreatedAt:         time.Now().UTC(),
	}
}
