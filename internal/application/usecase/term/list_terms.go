package term

import (
	"context"
	"time"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/matching"
)

// ListTermsOutput represents the output of listing terms.
type ListTermsOutput struct {
	Terms []Overview
	// NextTermNumber is the number a new term would take.
	NextTermNumber int
}

// ListTermsUseCase reads every term plan ordered by term number.
type ListTermsUseCase struct {
	termRepo adapter.TermRepository
	now      func() time.Time
}

// NewListTermsUseCase creates a new ListTermsUseCase instance.
func NewListTermsUseCase(termRepo adapter.TermRepository) *ListTermsUseCase {
	return &ListTermsUseCase{
		termRepo: termRepo,
		now:      time.Now,
	}
}

// Execute lists the terms.
func (uc *ListTermsUseCase) Execute(ctx context.Context) (*ListTermsOutput, error) {
	plans, err := uc.termRepo.FindAll(ctx)
	if err != nil {
		return nil, wrapStoreError(err, "list")
	}

	at := uc.now()
	out := &ListTermsOutput{Terms: make([]Overview, len(plans))}
	terms := make([]*entity.Term, len(plans))
	for i, p := range plans {
		out.Terms[i] = overview(p, at)
		terms[i] = p.Term
	}
	out.NextTermNumber = matching.NextTermNumber(terms)
	return out, nil
}

// GetActiveTermOutput represents the output of the active term lookup.
type GetActiveTermOutput struct {
	Term Overview
}

// GetActiveTermUseCase finds the term covering the current moment.
type GetActiveTermUseCase struct {
	termRepo adapter.TermRepository
	now      func() time.Time
}

// NewGetActiveTermUseCase creates a new GetActiveTermUseCase instance.
func NewGetActiveTermUseCase(termRepo adapter.TermRepository) *GetActiveTermUseCase {
	return &GetActiveTermUseCase{
		termRepo: termRepo,
		now:      time.Now,
	}
}

// Execute returns the active term, or a not-found error when none covers now.
func (uc *GetActiveTermUseCase) Execute(ctx context.Context) (*GetActiveTermOutput, error) {
	plans, err := uc.termRepo.FindAll(ctx)
	if err != nil {
		return nil, wrapStoreError(err, "list")
	}

	at := uc.now()
	terms := make([]*entity.Term, len(plans))
	for i, p := range plans {
		terms[i] = p.Term
	}
	active := matching.ActiveTerm(terms, at)
	if active == nil {
		return nil, termNotFound()
	}
	for _, p := range plans {
		if p.Term == active {
			return &GetActiveTermOutput{Term: overview(p, at)}, nil
		}
	}
	return nil, termNotFound()
}
