// Package action contains action-related use cases.
package action

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/application/usecase/junction"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/domain/matching"
)

// assemble builds the row graph of an action from validated form data. goals
// supplies the metric targets used to expand unscoped goal links.
func assemble(action *entity.Action, form entity.ActionFormData, goals map[uuid.UUID]*entity.Goal) *entity.ActionRecord {
	record := &entity.ActionRecord{Action: action}
	for _, m := range form.Measurements {
		record.Measurements = append(record.Measurements, entity.NewMeasuredAction(action.ID, m.MetricID, m.Value))
	}
	record.Contributions = matching.DeriveContributions(action.ID, record.Measurements, form.GoalLinks, goals)
	return record
}

// loadLinkedGoals reads the goals whose links need expanding. Unknown goals are
// left out; the write then fails on the missing reference.
func loadLinkedGoals(ctx context.Context, repo adapter.GoalRepository, links []entity.GoalLinkInput) (map[uuid.UUID]*entity.Goal, error) {
	var ids []uuid.UUID
	seen := make(map[uuid.UUID]struct{})
	for _, l := range links {
		if l.MetricID != nil || l.ContributionAmount != nil {
			continue
		}
		if _, ok := seen[l.GoalID]; ok {
			continue
		}
		seen[l.GoalID] = struct{}{}
		ids = append(ids, l.GoalID)
	}

	goals := make(map[uuid.UUID]*entity.Goal, len(ids))
	if len(ids) == 0 {
		return goals, nil
	}
	found, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load linked goals: %w", err)
	}
	for _, g := range found {
		goals[g.ID()] = g
	}
	return goals, nil
}

// reconciliation is the outcome of writing an action's child rows.
type reconciliation struct {
	measurements  junction.Diff[*entity.MeasuredAction]
	contributions junction.Diff[*entity.ActionGoalContribution]
}

// reconcile rewrites the child rows of existing so they match desired. Rows are
// matched by metric for measurements and by goal and metric for contributions.
func reconcile(ctx context.Context, repo adapter.ActionRepository, existing, desired *entity.ActionRecord) (reconciliation, error) {
	var r reconciliation

	r.measurements = junction.Reconcile(existing.Measurements, desired.Measurements,
		func(m *entity.MeasuredAction) uuid.UUID { return m.MetricID },
		func(s, d *entity.MeasuredAction) bool { return s.Value.Equal(d.Value) },
		func(s, d *entity.MeasuredAction) { d.ID, d.CreatedAt = s.ID, s.CreatedAt },
	)
	ids := junction.IDs(r.measurements.Delete, func(m *entity.MeasuredAction) uuid.UUID { return m.ID })
	if err := repo.DeleteMeasurements(ctx, ids); err != nil {
		return r, err
	}
	if err := repo.UpdateMeasurements(ctx, r.measurements.Update); err != nil {
		return r, err
	}
	if err := repo.InsertMeasurements(ctx, r.measurements.Insert); err != nil {
		return r, err
	}

	r.contributions = junction.Reconcile(existing.Contributions, desired.Contributions,
		func(c *entity.ActionGoalContribution) entity.ContributionKey { return c.Key() },
		sameContribution,
		func(s, d *entity.ActionGoalContribution) { d.ID, d.CreatedAt = s.ID, s.CreatedAt },
	)
	ids = junction.IDs(r.contributions.Delete, func(c *entity.ActionGoalContribution) uuid.UUID { return c.ID })
	if err := repo.DeleteContributions(ctx, ids); err != nil {
		return r, err
	}
	if err := repo.UpdateContributions(ctx, r.contributions.Update); err != nil {
		return r, err
	}
	if err := repo.InsertContributions(ctx, r.contributions.Insert); err != nil {
		return r, err
	}
	return r, nil
}

func sameContribution(s, d *entity.ActionGoalContribution) bool {
	return s.ContributionAmount.Equal(d.ContributionAmount) &&
		s.AssignmentMethod == d.AssignmentMethod &&
		s.Confidence == d.Confidence
}

// goalIDs collects the distinct goals the given records contribute to.
func goalIDs(records ...*entity.ActionRecord) []uuid.UUID {
	var ids []uuid.UUID
	seen := make(map[uuid.UUID]struct{})
	for _, r := range records {
		if r == nil {
			continue
		}
		for _, c := range r.Contributions {
			if _, ok := seen[c.GoalID]; ok {
				continue
			}
			seen[c.GoalID] = struct{}{}
			ids = append(ids, c.GoalID)
		}
	}
	return ids
}

// invalidate drops cached progress. A cache failure never fails the write.
func invalidate(ctx context.Context, cache adapter.ProgressCache, ids ...uuid.UUID) {
	if cache == nil || len(ids) == 0 {
		return
	}
	if err := cache.Invalidate(ctx, ids...); err != nil {
		slog.Warn("Failed to invalidate progress cache", "goal_ids", ids, "error", err)
	}
}

func actionNotFound() error {
	return domainerror.NewActionError(
		domainerror.ErrCodeActionNotFound,
		"action not found",
		domainerror.ErrActionNotFound,
	)
}

// wrapStoreError keeps not-found and validation errors intact and wraps the rest.
func wrapStoreError(err error, op string) error {
	switch {
	case errors.Is(err, domainerror.ErrActionNotFound):
		return actionNotFound()
	case errors.Is(err, domainerror.ErrGoalNotFound):
		return domainerror.NewGoalError(domainerror.ErrCodeGoalNotFound, "goal not found", domainerror.ErrGoalNotFound)
	case domainerror.IsValidationError(err):
		return err
	}
	return fmt.Errorf("failed to %s action: %w", op, err)
}
