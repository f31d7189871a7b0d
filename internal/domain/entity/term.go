package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTermLength is the span of a term when no target date is given: ten weeks.
const DefaultTermLength = 70 * 24 * time.Hour

// TermStatus describes where a term sits relative to a given moment.
type TermStatus string

const (
	TermStatusUpcoming TermStatus = "upcoming"
	TermStatusActive   TermStatus = "active"
	TermStatusComplete TermStatus = "complete"
)

// Term is a bounded planning period that goals are committed to.
type Term struct {
	ID         uuid.UUID
	TermNumber int
	Theme      *string
	StartDate  time.Time
	TargetDate time.Time
	Reflection *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive reports whether at falls inside the term, bounds inclusive.
func (t *Term) IsActive(at time.Time) bool {
	return !at.Before(t.StartDate) && !at.After(t.TargetDate)
}

// Status returns the lifecycle status of the term at the given moment.
func (t *Term) Status(at time.Time) TermStatus {
	switch {
	case at.Before(t.StartDate):
		return TermStatusUpcoming
	case t.IsActive(at):
		return TermStatusActive
	default:
		return TermStatusComplete
	}
}

// DaysRemaining returns whole days left until the target date, never negative.
func (t *Term) DaysRemaining(at time.Time) int {
	if at.After(t.TargetDate) {
		return 0
	}
	return int(t.TargetDate.Sub(at).Hours() / 24)
}

// DaysElapsed returns whole days since the start date, never negative.
func (t *Term) DaysElapsed(at time.Time) int {
	if at.Before(t.StartDate) {
		return 0
	}
	return int(at.Sub(t.StartDate).Hours() / 24)
}

// ElapsedFraction returns the share of the term already passed, in [0, 1].
func (t *Term) ElapsedFraction(at time.Time) float64 {
	total := t.TargetDate.Sub(t.StartDate)
	if total <= 0 || at.Before(t.StartDate) {
		return 0
	}
	elapsed := at.Sub(t.StartDate)
	if elapsed >= total {
		return 1
	}
	return float64(elapsed) / float64(total)
}

// TermGoalAssignment commits a goal to a term.
type TermGoalAssignment struct {
	ID              uuid.UUID
	TermID          uuid.UUID
	GoalID          uuid.UUID
	AssignmentOrder int
	CreatedAt       time.Time
}

// TermPlan is the canonical flat representation of a term aggregate.
type TermPlan struct {
	Term        *Term
	Assignments []*TermGoalAssignment
}

// ID returns the aggregate root id.
func (p *TermPlan) ID() uuid.UUID {
	return p.Term.ID
}

// GoalIDs returns the committed goal ids in assignment order.
func (p *TermPlan) GoalIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(p.Assignments))
	for i, a := range p.Assignments {
		ids[i] = a.GoalID
	}
	return ids
}

// NewTerm creates a new Term entity.
func NewTerm(termNumber int, theme *string, startDate, targetDate time.Time, reflection *string) *Term {
	now := time.Now().UTC()

	return &Term{
		ID:         uuid.New(),
		TermNumber: termNumber,
		Theme:      theme,
		StartDate:  startDate,
		TargetDate: targetDate,
		Reflection: reflection,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewTermGoalAssignment creates an assignment row for the given term.
func NewTermGoalAssignment(termID, goalID uuid.UUID, order int) *TermGoalAssignment {
	return &TermGoalAssignment{
		ID:              uuid.New(),
		TermID:          termID,
		GoalID:          goalID,
		AssignmentOrder: order,
		CreatedAt:       time.Now().UTC(),
	}
}
