package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssignmentMethod records how an action came to contribute to a goal.
type AssignmentMethod string

const (
	AssignmentMethodManual        AssignmentMethod = "manual"
	AssignmentMethodAutoInferred  AssignmentMethod = "auto_inferred"
	AssignmentMethodUserConfirmed AssignmentMethod = "user_confirmed"
)

// Action is a performed-activity record.
type Action struct {
	ID              uuid.UUID
	Title           *string
	Description     *string
	Notes           *string
	StartTime       *time.Time
	DurationMinutes *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Timestamp is the moment used for period matching: the start time when
// recorded, otherwise the logging time.
func (a *Action) Timestamp() time.Time {
	if a.StartTime != nil {
		return *a.StartTime
	}
	return a.CreatedAt
}

// MeasuredAction is a recorded value for one metric on one action.
type MeasuredAction struct {
	ID        uuid.UUID
	ActionID  uuid.UUID
	MetricID  uuid.UUID
	Value     decimal.Decimal
	CreatedAt time.Time
}

// ActionGoalContribution is the amount an action advances a goal, optionally
// scoped to one of the goal's metrics.
type ActionGoalContribution struct {
	ID                 uuid.UUID
	ActionID           uuid.UUID
	GoalID             uuid.UUID
	MetricID           *uuid.UUID
	ContributionAmount decimal.Decimal
	AssignmentMethod   AssignmentMethod
	Confidence         float64
	CreatedAt          time.Time
}

// ContributionKey identifies a contribution by its counterpart: the goal and,
// when scoped, the metric. Unscoped contributions use uuid.Nil as the metric.
type ContributionKey struct {
	GoalID   uuid.UUID
	MetricID uuid.UUID
}

// Key returns the counterpart key of the contribution.
func (c *ActionGoalContribution) Key() ContributionKey {
	key := ContributionKey{GoalID: c.GoalID}
	if c.MetricID != nil {
		key.MetricID = *c.MetricID
	}
	return key
}

// ActionRecord is the canonical flat representation of an action aggregate.
type ActionRecord struct {
	Action        *Action
	Measurements  []*MeasuredAction
	Contributions []*ActionGoalContribution
}

// ID returns the aggregate root id.
func (r *ActionRecord) ID() uuid.UUID {
	return r.Action.ID
}

// NewAction creates a new Action entity.
func NewAction(title, description, notes *string, startTime *time.Time, durationMinutes *float64) *Action {
	now := time.Now().UTC()

	return &Action{
		ID:              uuid.New(),
		Title:           title,
		Description:     description,
		Notes:           notes,
		StartTime:       startTime,
		DurationMinutes: durationMinutes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// NewMeasuredAction creates a measurement row for the given action.
func NewMeasuredAction(actionID, metricID uuid.UUID, value decimal.Decimal) *MeasuredAction {
	return &MeasuredAction{
		ID:        uuid.New(),
		ActionID:  actionID,
		MetricID:  metricID,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}
}

// NewActionGoalContribution creates a contribution row for the given action.
func NewActionGoalContribution(
	actionID, goalID uuid.UUID,
	metricID *uuid.UUID,
	amount decimal.Decimal,
	method AssignmentMethod,
	confidence float64,
) *ActionGoalContribution {
	return &ActionGoalContribution{
		ID:                 uuid.New(),
		ActionID:           actionID,
		GoalID:             goalID,
		MetricID:           metricID,
		ContributionAmount: amount,
		AssignmentMethod:   method,
		Confidence:         confidence,
		CreatedAt:          time.Now().UTC(),
	}
}
