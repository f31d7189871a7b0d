package matching

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

var hundred = decimal.NewFromInt(100)

// ComputeProgress aggregates the committed contributions of a goal. Each target
// metric's percentage is min(100, 100 * actual / target), or 0 for a zero target;
// the overall percentage is their mean, and the goal is complete at 100.
// Contributions for other goals are ignored; unscoped ones count only toward
// MatchingActionCount. metrics supplies display units and conversions to the
// canonical unit, and may be nil.
func ComputeProgress(
	goal *entity.Goal,
	contributions []*entity.ActionGoalContribution,
	metrics map[uuid.UUID]*entity.Metric,
	config valueobject.MatchingConfig,
) valueobject.GoalProgress {
	goalID := goal.ID()

	actual := make(map[uuid.UUID]decimal.Decimal)
	actions := make(map[uuid.UUID]struct{})
	for _, c := range contributions {
		if c.GoalID != goalID {
			continue
		}
		actions[c.ActionID] = struct{}{}
		if c.MetricID != nil {
			actual[*c.MetricID] = actual[*c.MetricID].Add(c.ContributionAmount)
		}
	}

	measures := make([]*entity.ExpectationMeasure, len(goal.Measures))
	copy(measures, goal.Measures)
	sort.Slice(measures, func(i, j int) bool {
		return lessID(measures[i].MetricID, measures[j].MetricID)
	})

	overachieved := decimal.NewFromFloat(config.OverachievedRatio)
	progress := valueobject.GoalProgress{
		GoalID:              goalID,
		Metrics:             make([]valueobject.MetricProgress, 0, len(measures)),
		MatchingActionCount: len(actions),
	}

	var total float64
	for _, m := range measures {
		sum := actual[m.MetricID]
		mp := valueobject.MetricProgress{
			MetricID:  m.MetricID,
			Target:    m.TargetValue,
			Actual:    sum,
			Remaining: decimal.Max(decimal.Zero, m.TargetValue.Sub(sum)),
		}
		mp.CanonicalTarget, mp.CanonicalActual = mp.Target, mp.Actual
		if metric, ok := metrics[m.MetricID]; ok {
			mp.Unit = metric.Unit
			mp.CanonicalTarget, mp.CanonicalUnit = metric.ToCanonical(mp.Target)
			mp.CanonicalActual, _ = metric.ToCanonical(mp.Actual)
		}
		if m.TargetValue.IsPositive() {
			ratio := sum.Div(m.TargetValue)
			mp.Percentage = decimal.Min(hundred, ratio.Mul(hundred)).InexactFloat64()
			mp.IsOverachieved = ratio.GreaterThan(overachieved)
		}
		total += mp.Percentage
		progress.Metrics = append(progress.Metrics, mp)
	}

	if len(progress.Metrics) > 0 {
		progress.OverallPercentage = total / float64(len(progress.Metrics))
	}
	progress.IsComplete = progress.OverallPercentage >= 100
	return progress
}

// Summarize aggregates progress across goals.
func Summarize(all []valueobject.GoalProgress) valueobject.ProgressSummary {
	summary := valueobject.ProgressSummary{TotalGoals: len(all)}
	if len(all) == 0 {
		return summary
	}

	var total float64
	for _, p := range all {
		if p.IsComplete {
			summary.CompleteGoals++
		}
		total += p.OverallPercentage
		summary.TotalActionsMatched += p.MatchingActionCount
	}
	summary.InProgressGoals = summary.TotalGoals - summary.CompleteGoals
	summary.AverageCompletion = total / float64(len(all))
	return summary
}
