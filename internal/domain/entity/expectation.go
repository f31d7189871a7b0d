// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExpectationKind discriminates the Expectation variants.
type ExpectationKind string

const (
	ExpectationKindGoal       ExpectationKind = "goal"
	ExpectationKindMilestone  ExpectationKind = "milestone"
	ExpectationKindObligation ExpectationKind = "obligation"
	ExpectationKindAspiration ExpectationKind = "aspiration"
)

// Importance and urgency bounds shared by every expectation kind.
const (
	MinImportance = 1
	MaxImportance = 10
	MinUrgency    = 1
	MaxUrgency    = 10
)

// TimeWindow is a period during which an expectation is active.
// A nil bound is open on that side.
type TimeWindow struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether t falls inside the window, bounds inclusive.
func (w TimeWindow) Contains(t time.Time) bool {
	if w.Start != nil && t.Before(*w.Start) {
		return false
	}
	if w.End != nil && t.After(*w.End) {
		return false
	}
	return true
}

// Overlaps reports whether the two windows share at least one instant.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	if w.End != nil && other.Start != nil && w.End.Before(*other.Start) {
		return false
	}
	if w.Start != nil && other.End != nil && w.Start.After(*other.End) {
		return false
	}
	return true
}

// IsUnbounded reports whether the window has no bounds at all.
func (w TimeWindow) IsUnbounded() bool {
	return w.Start == nil && w.End == nil
}

// ExpectationDetails is the variant payload of an Expectation.
type ExpectationDetails interface {
	Kind() ExpectationKind
	Window() TimeWindow
}

// GoalDetails holds the goal-specific fields of an expectation.
type GoalDetails struct {
	StartDate          *time.Time
	TargetDate         *time.Time
	ActionPlan         *string
	ExpectedTermLength *int // in weeks
}

// Kind implements ExpectationDetails.
func (GoalDetails) Kind() ExpectationKind { return ExpectationKindGoal }

// Window implements ExpectationDetails.
func (d GoalDetails) Window() TimeWindow {
	return TimeWindow{Start: d.StartDate, End: d.TargetDate}
}

// HasDates reports whether either date is set.
func (d GoalDetails) HasDates() bool {
	return d.StartDate != nil || d.TargetDate != nil
}

// MilestoneDetails marks a point-in-time checkpoint.
type MilestoneDetails struct {
	TargetDate time.Time
}

// Kind implements ExpectationDetails.
func (MilestoneDetails) Kind() ExpectationKind { return ExpectationKindMilestone }

// Window implements ExpectationDetails.
func (d MilestoneDetails) Window() TimeWindow {
	target := d.TargetDate
	return TimeWindow{End: &target}
}

// ObligationDetails is an externally imposed expectation with a deadline.
type ObligationDetails struct {
	Deadline    time.Time
	RequestedBy *string
}

// Kind implements ExpectationDetails.
func (ObligationDetails) Kind() ExpectationKind { return ExpectationKindObligation }

// Window implements ExpectationDetails.
func (d ObligationDetails) Window() TimeWindow {
	deadline := d.Deadline
	return TimeWindow{End: &deadline}
}

// AspirationDetails is an open-ended expectation with no time bound.
type AspirationDetails struct{}

// Kind implements ExpectationDetails.
func (AspirationDetails) Kind() ExpectationKind { return ExpectationKindAspiration }

// Window implements ExpectationDetails.
func (AspirationDetails) Window() TimeWindow { return TimeWindow{} }

// Expectation is the intent record every goal-like entity specializes.
type Expectation struct {
	ID          uuid.UUID
	Kind        ExpectationKind
	Title       *string
	Description *string
	Importance  int
	Urgency     int
	Details     ExpectationDetails
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Window returns the active period of the expectation.
func (e *Expectation) Window() TimeWindow {
	if e.Details == nil {
		return TimeWindow{}
	}
	return e.Details.Window()
}

// GoalDetails returns the goal payload when the expectation is a goal.
func (e *Expectation) GoalDetails() (GoalDetails, bool) {
	d, ok := e.Details.(GoalDetails)
	return d, ok
}

// DisplayTitle returns the title, falling back to the description.
func (e *Expectation) DisplayTitle() string {
	if e.Title != nil && *e.Title != "" {
		return *e.Title
	}
	if e.Description != nil {
		return *e.Description
	}
	return ""
}
