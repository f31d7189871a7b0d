// Package matching contains action-to-goal match suggestion use cases.
package matching

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	engine "github.com/goal-tracker/backend/internal/domain/matching"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// SuggestMatchesInput represents the input for suggesting goals for an action.
type SuggestMatchesInput struct {
	ActionID uuid.UUID
	// Keywords replaces the configured keyword list when not empty.
	Keywords []string
}

// SuggestMatchesOutput represents the suggested matches.
type SuggestMatchesOutput struct {
	Suggestions valueobject.MatchSuggestions
}

// SuggestMatchesUseCase scores an action against every goal and splits the
// matches into confident and ambiguous lists. Nothing is written.
type SuggestMatchesUseCase struct {
	actionRepo adapter.ActionRepository
	goalRepo   adapter.GoalRepository
	config     valueobject.MatchingConfig
}

// NewSuggestMatchesUseCase creates a new SuggestMatchesUseCase instance.
func NewSuggestMatchesUseCase(
	actionRepo adapter.ActionRepository,
	goalRepo adapter.GoalRepository,
	config valueobject.MatchingConfig,
) *SuggestMatchesUseCase {
	return &SuggestMatchesUseCase{
		actionRepo: actionRepo,
		goalRepo:   goalRepo,
		config:     config,
	}
}

// Execute computes the suggestions.
func (uc *SuggestMatchesUseCase) Execute(ctx context.Context, input SuggestMatchesInput) (*SuggestMatchesOutput, error) {
	record, err := uc.actionRepo.FindByID(ctx, input.ActionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrActionNotFound) {
			return nil, domainerror.NewActionError(domainerror.ErrCodeActionNotFound, "action not found", domainerror.ErrActionNotFound)
		}
		return nil, fmt.Errorf("failed to find action: %w", err)
	}

	goals, err := uc.goalRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	matcher := engine.NewMatcher(uc.config.WithKeywords(input.Keywords))
	return &SuggestMatchesOutput{Suggestions: matcher.Suggest(record, goals)}, nil
}
