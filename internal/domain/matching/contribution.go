package matching

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// FullConfidence is recorded for manual and user-confirmed contributions.
const FullConfidence = 1.0

// DeriveContributions assembles the contribution rows of an action from its goal
// links. Links with an amount are stored as given. A scoped link without an amount
// takes the action's measurement for that metric, or 0. An unscoped link without
// an amount expands into one row per metric shared with the goal; with no overlap
// it becomes a single unscoped row of 0. goals may omit unknown goals.
func DeriveContributions(
	actionID uuid.UUID,
	measurements []*entity.MeasuredAction,
	links []entity.GoalLinkInput,
	goals map[uuid.UUID]*entity.Goal,
) []*entity.ActionGoalContribution {
	byMetric := make(map[uuid.UUID]decimal.Decimal, len(measurements))
	for _, m := range measurements {
		byMetric[m.MetricID] = byMetric[m.MetricID].Add(m.Value)
	}

	var rows []*entity.ActionGoalContribution
	for _, link := range links {
		method := link.AssignmentMethod
		if method == "" {
			method = entity.AssignmentMethodManual
		}
		confidence := FullConfidence
		if link.Confidence != nil {
			confidence = *link.Confidence
		}

		switch {
		case link.ContributionAmount != nil:
			rows = append(rows, entity.NewActionGoalContribution(actionID, link.GoalID, copyID(link.MetricID), *link.ContributionAmount, method, confidence))

		case link.MetricID != nil:
			rows = append(rows, entity.NewActionGoalContribution(actionID, link.GoalID, copyID(link.MetricID), byMetric[*link.MetricID], method, confidence))

		default:
			var overlap []entity.GoalLinkInput
			if goal, ok := goals[link.GoalID]; ok {
				metrics, _ := MetricOverlap(measurements, goal.Measures)
				for _, c := range metrics {
					metricID := c.MetricID
					overlap = append(overlap, entity.GoalLinkInput{GoalID: link.GoalID, MetricID: &metricID})
				}
			}
			if len(overlap) == 0 {
				rows = append(rows, entity.NewActionGoalContribution(actionID, link.GoalID, nil, decimal.Zero, method, confidence))
				continue
			}
			for _, o := range overlap {
				rows = append(rows, entity.NewActionGoalContribution(actionID, o.GoalID, o.MetricID, byMetric[*o.MetricID], method, confidence))
			}
		}
	}
	return rows
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
