package matching

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/application/adapter"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	engine "github.com/goal-tracker/backend/internal/domain/matching"
	"github.com/goal-tracker/backend/internal/domain/validation"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// MatchGoalInput represents the input for listing the actions that match a goal.
// From and To narrow the actions considered; the goal's own window always applies.
type MatchGoalInput struct {
	GoalID   uuid.UUID
	From     *time.Time
	To       *time.Time
	Keywords []string
}

// MatchGoalOutput represents the actions matching one goal.
type MatchGoalOutput struct {
	GoalID          uuid.UUID
	ActionsAnalyzed int
	Matches         []valueobject.MatchResult
	// Sum of the contributions of every match
	Total decimal.Decimal
}

// MatchGoalUseCase scores every action against one goal. Nothing is written.
type MatchGoalUseCase struct {
	actionRepo adapter.ActionRepository
	goalRepo   adapter.GoalRepository
	config     valueobject.MatchingConfig
}

// NewMatchGoalUseCase creates a new MatchGoalUseCase instance.
func NewMatchGoalUseCase(
	actionRepo adapter.ActionRepository,
	goalRepo adapter.GoalRepository,
	config valueobject.MatchingConfig,
) *MatchGoalUseCase {
	return &MatchGoalUseCase{
		actionRepo: actionRepo,
		goalRepo:   goalRepo,
		config:     config,
	}
}

// Execute lists the matches.
func (uc *MatchGoalUseCase) Execute(ctx context.Context, input MatchGoalInput) (*MatchGoalOutput, error) {
	if err := validation.RequireOrdered(input.From, input.To, "from", "to", true); err != nil {
		return nil, err
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(domainerror.ErrCodeGoalNotFound, "goal not found", domainerror.ErrGoalNotFound)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	records, err := uc.actionRepo.FindAll(ctx, adapter.ActionFilter{From: input.From, To: input.To})
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}

	matcher := engine.NewMatcher(uc.config.WithKeywords(input.Keywords))
	out := &MatchGoalOutput{
		GoalID:          goal.ID(),
		ActionsAnalyzed: len(records),
		Matches:         matcher.MatchGoal(records, goal),
		Total:           decimal.Zero,
	}
	for _, m := range out.Matches {
		out.Total = out.Total.Add(m.Contribution)
	}
	return out, nil
}
