package matching

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	engine "github.com/goal-tracker/backend/internal/domain/matching"
	"github.com/goal-tracker/backend/internal/domain/validation"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// InferPeriodInput represents the input for a batch match run. The period is
// taken from the term when TermID is set; otherwise From and To are required.
type InferPeriodInput struct {
	TermID   *uuid.UUID
	From     *time.Time
	To       *time.Time
	Keywords []string
}

// InferPeriodOutput represents the result of a batch match run.
type InferPeriodOutput struct {
	TermID  *uuid.UUID
	From    time.Time
	To      time.Time
	Session valueobject.InferenceSession
	RunAt   time.Time
}

// InferPeriodUseCase matches every action logged in a period against every goal
// whose window overlaps it. Nothing is written.
type InferPeriodUseCase struct {
	actionRepo adapter.ActionRepository
	goalRepo   adapter.GoalRepository
	termRepo   adapter.TermRepository
	config     valueobject.MatchingConfig
	now        func() time.Time
}

// NewInferPeriodUseCase creates a new InferPeriodUseCase instance.
func NewInferPeriodUseCase(
	actionRepo adapter.ActionRepository,
	goalRepo adapter.GoalRepository,
	termRepo adapter.TermRepository,
	config valueobject.MatchingConfig,
) *InferPeriodUseCase {
	return &InferPeriodUseCase{
		actionRepo: actionRepo,
		goalRepo:   goalRepo,
		termRepo:   termRepo,
		config:     config,
		now:        time.Now,
	}
}

// Execute runs the batch match.
func (uc *InferPeriodUseCase) Execute(ctx context.Context, input InferPeriodInput) (*InferPeriodOutput, error) {
	from, to, err := uc.period(ctx, input)
	if err != nil {
		return nil, err
	}

	records, err := uc.actionRepo.FindAll(ctx, adapter.ActionFilter{From: &from, To: &to})
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}

	goals, err := uc.goalRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	window := entity.TimeWindow{Start: &from, End: &to}
	active := make([]*entity.Goal, 0, len(goals))
	for _, g := range goals {
		if g.Expectation.Window().Overlaps(window) {
			active = append(active, g)
		}
	}

	matcher := engine.NewMatcher(uc.config.WithKeywords(input.Keywords))
	session := matcher.InferPeriod(records, active)

	slog.Debug("Period inference completed",
		"from", from,
		"to", to,
		"actions", session.ActionsAnalyzed,
		"goals", session.GoalsAnalyzed,
		"confident", len(session.Confident),
		"ambiguous", len(session.Ambiguous),
	)

	return &InferPeriodOutput{
		TermID:  input.TermID,
		From:    from,
		To:      to,
		Session: session,
		RunAt:   uc.now().UTC(),
	}, nil
}

func (uc *InferPeriodUseCase) period(ctx context.Context, input InferPeriodInput) (time.Time, time.Time, error) {
	if input.TermID != nil {
		plan, err := uc.termRepo.FindByID(ctx, *input.TermID)
		if err != nil {
			if errors.Is(err, domainerror.ErrTermNotFound) {
				return time.Time{}, time.Time{}, domainerror.NewTermError(domainerror.ErrCodeTermNotFound, "term not found", domainerror.ErrTermNotFound)
			}
			return time.Time{}, time.Time{}, fmt.Errorf("failed to find term: %w", err)
		}
		return plan.Term.StartDate, plan.Term.TargetDate, nil
	}

	if err := validation.First(
		validation.RequirePresent(input.From, "from"),
		validation.RequirePresent(input.To, "to"),
		validation.RequireOrdered(input.From, input.To, "from", "to", true),
	); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return *input.From, *input.To, nil
}
