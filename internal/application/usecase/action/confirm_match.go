package action

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/domain/matching"
	"github.com/goal-tracker/backend/internal/domain/validator"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// ConfirmMatchInput represents the input for confirming a suggested match.
type ConfirmMatchInput struct {
	ActionID uuid.UUID
	GoalID   uuid.UUID
}

// ConfirmMatchOutput represents the output of confirming a match.
type ConfirmMatchOutput struct {
	Action *entity.ActionRecord
	Match  valueobject.MatchResult
}

// ConfirmMatchUseCase turns a match between an action and a goal into
// user-confirmed contributions, one per overlapping metric. Earlier
// contributions of the action to that goal are replaced.
type ConfirmMatchUseCase struct {
	actionRepo adapter.ActionRepository
	goalRepo   adapter.GoalRepository
	txManager  adapter.TxManager
	cache      adapter.ProgressCache
	matcher    *matching.Matcher
	validator  *validator.ActionValidator
}

// NewConfirmMatchUseCase creates a new ConfirmMatchUseCase instance.
func NewConfirmMatchUseCase(
	actionRepo adapter.ActionRepository,
	goalRepo adapter.GoalRepository,
	txManager adapter.TxManager,
	cache adapter.ProgressCache,
	config valueobject.MatchingConfig,
) *ConfirmMatchUseCase {
	return &ConfirmMatchUseCase{
		actionRepo: actionRepo,
		goalRepo:   goalRepo,
		txManager:  txManager,
		cache:      cache,
		matcher:    matching.NewMatcher(config),
		validator:  validator.NewActionValidator(nil),
	}
}

// Execute confirms the match.
func (uc *ConfirmMatchUseCase) Execute(ctx context.Context, input ConfirmMatchInput) (*ConfirmMatchOutput, error) {
	record, err := uc.actionRepo.FindByID(ctx, input.ActionID)
	if err != nil {
		return nil, wrapStoreError(err, "find")
	}
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, wrapStoreError(err, "find")
	}

	result := uc.matcher.Match(record, goal)
	if !result.IsMatch {
		return nil, domainerror.NewActionError(
			domainerror.ErrCodeNoMatch,
			"action does not match goal in period and metrics",
			domainerror.ErrNoMatch,
		)
	}

	links := matching.LinksFromMatch(result, entity.AssignmentMethodUserConfirmed)
	desired := &entity.ActionRecord{
		Action:       record.Action,
		Measurements: record.Measurements,
	}
	for _, c := range record.Contributions {
		if c.GoalID != input.GoalID {
			desired.Contributions = append(desired.Contributions, c)
		}
	}
	desired.Contributions = append(desired.Contributions,
		matching.DeriveContributions(record.ID(), record.Measurements, links, nil)...)

	if err := uc.validator.ValidateComplete(desired); err != nil {
		return nil, err
	}

	var outcome reconciliation
	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		existing, err := repos.Actions.FindByID(ctx, input.ActionID)
		if err != nil {
			return err
		}
		outcome, err = reconcile(ctx, repos.Actions, existing, desired)
		return err
	})
	if err != nil {
		slog.Warn("Match confirmation rolled back", "action_id", input.ActionID, "goal_id", input.GoalID, "error", err)
		return nil, wrapStoreError(err, "confirm match for")
	}

	desired.Contributions = outcome.contributions.Result
	invalidate(ctx, uc.cache, input.GoalID)

	slog.Info("Match confirmed",
		"action_id", input.ActionID,
		"goal_id", input.GoalID,
		"confidence", result.Confidence,
		"contributions", len(outcome.contributions.Insert)+len(outcome.contributions.Update),
	)

	return &ConfirmMatchOutput{Action: desired, Match: result}, nil
}
