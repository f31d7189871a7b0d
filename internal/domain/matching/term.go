package matching

import (
	"time"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// ActiveTerm returns the term covering at, preferring the latest start when terms
// overlap. It returns nil when no term is active.
func ActiveTerm(terms []*entity.Term, at time.Time) *entity.Term {
	var active *entity.Term
	for _, t := range terms {
		if !t.IsActive(at) {
			continue
		}
		if active == nil || t.StartDate.After(active.StartDate) ||
			(t.StartDate.Equal(active.StartDate) && t.TermNumber > active.TermNumber) {
			active = t
		}
	}
	return active
}

// NextTermNumber returns one more than the highest term number in use.
func NextTermNumber(terms []*entity.Term) int {
	next := 1
	for _, t := range terms {
		if t.TermNumber >= next {
			next = t.TermNumber + 1
		}
	}
	return next
}
