package term

import (
	"context"
	"log/slog"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/validator"
)

// CreateTermInput represents the input for term creation.
type CreateTermInput struct {
	Form entity.TermFormData
}

// CreateTermOutput represents the output of term creation.
type CreateTermOutput struct {
	Plan *entity.TermPlan
}

// CreateTermUseCase writes a term and its goal assignments in one transaction.
type CreateTermUseCase struct {
	txManager adapter.TxManager
	validator *validator.TermValidator
}

// NewCreateTermUseCase creates a new CreateTermUseCase instance.
func NewCreateTermUseCase(txManager adapter.TxManager) *CreateTermUseCase {
	return &CreateTermUseCase{
		txManager: txManager,
		validator: validator.NewTermValidator(),
	}
}

// Execute performs the term creation.
func (uc *CreateTermUseCase) Execute(ctx context.Context, input CreateTermInput) (*CreateTermOutput, error) {
	if err := uc.validator.ValidateFormData(input.Form); err != nil {
		return nil, err
	}

	plan := assemble(input.Form)
	if err := uc.validator.ValidateComplete(plan); err != nil {
		return nil, err
	}

	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		if err := repos.Terms.CreateRoot(ctx, plan.Term); err != nil {
			return err
		}
		return repos.Terms.InsertAssignments(ctx, plan.Assignments)
	})
	if err != nil {
		slog.Warn("Term creation rolled back", "term_id", plan.ID(), "error", err)
		return nil, wrapStoreError(err, "create")
	}

	slog.Info("Term created", "term_id", plan.ID(), "term_number", plan.Term.TermNumber, "goals", len(plan.Assignments))
	return &CreateTermOutput{Plan: plan}, nil
}
