// Package matching implements action-to-goal matching and progress aggregation.
// Every function here is pure and works on already-fetched rows; results never
// depend on the order rows were fetched in.
package matching

import (
	"bytes"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// MatchesPeriod reports whether the action's timestamp falls inside the
// expectation's active window. Goals without dates always match.
func MatchesPeriod(action *entity.Action, exp *entity.Expectation) bool {
	return exp.Window().Contains(action.Timestamp())
}

// MetricOverlap intersects the action's measured metrics with the goal's target
// metrics. It returns the action's summed value per overlapping metric, ordered
// by metric id, and the share of the goal's metrics covered, capped at 1.
func MetricOverlap(measurements []*entity.MeasuredAction, measures []*entity.ExpectationMeasure) ([]valueobject.MetricContribution, float64) {
	targets := make(map[uuid.UUID]struct{}, len(measures))
	for _, m := range measures {
		targets[m.MetricID] = struct{}{}
	}
	if len(targets) == 0 {
		return nil, 0
	}

	sums := make(map[uuid.UUID]decimal.Decimal)
	for _, m := range measurements {
		if _, ok := targets[m.MetricID]; !ok {
			continue
		}
		sums[m.MetricID] = sums[m.MetricID].Add(m.Value)
	}
	if len(sums) == 0 {
		return nil, 0
	}

	out := make([]valueobject.MetricContribution, 0, len(sums))
	for id, amount := range sums {
		out = append(out, valueobject.MetricContribution{MetricID: id, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		return lessID(out[i].MetricID, out[j].MetricID)
	})

	confidence := float64(len(out)) / float64(len(targets))
	if confidence > 1 {
		confidence = 1
	}
	return out, confidence
}

// KeywordMatch reports whether any keyword appears, case-insensitively, in the
// action's title or description.
func KeywordMatch(action *entity.Action, keywords []string) bool {
	var text strings.Builder
	if action.Title != nil {
		text.WriteString(strings.ToLower(*action.Title))
	}
	text.WriteByte('\n')
	if action.Description != nil {
		text.WriteString(strings.ToLower(*action.Description))
	}
	haystack := text.String()

	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" && strings.Contains(haystack, k) {
			return true
		}
	}
	return false
}

// Matcher combines period, metric and keyword matching under a MatchingConfig.
type Matcher struct {
	config valueobject.MatchingConfig
}

// NewMatcher creates a new Matcher.
func NewMatcher(config valueobject.MatchingConfig) *Matcher {
	return &Matcher{config: config}
}

// Config returns the matcher's configuration.
func (m *Matcher) Config() valueobject.MatchingConfig {
	return m.config
}

// Match scores one action against one goal. A match requires both a period
// match and a non-empty metric overlap; otherwise confidence is 0.
func (m *Matcher) Match(record *entity.ActionRecord, goal *entity.Goal) valueobject.MatchResult {
	result := valueobject.MatchResult{
		ActionID:     record.ID(),
		GoalID:       goal.ID(),
		Contribution: decimal.Zero,
		PeriodMatch:  MatchesPeriod(record.Action, goal.Expectation),
	}
	if len(m.config.Keywords) > 0 {
		result.KeywordMatch = KeywordMatch(record.Action, m.config.Keywords)
	}

	metrics, overlap := MetricOverlap(record.Measurements, goal.Measures)
	if !result.PeriodMatch || len(metrics) == 0 {
		return result
	}

	result.Metrics = metrics
	for _, c := range metrics {
		result.Contribution = result.Contribution.Add(c.Amount)
	}

	confidence := m.config.MetricWeight * overlap
	if result.KeywordMatch {
		confidence += m.config.KeywordWeight
	}
	if confidence > 1 {
		confidence = 1
	}
	result.IsMatch = true
	result.Confidence = confidence
	return result
}

// MatchAll scores an action against every goal, keeping only matches, ordered by
// confidence descending then goal id.
func (m *Matcher) MatchAll(record *entity.ActionRecord, goals []*entity.Goal) []valueobject.MatchResult {
	matches := make([]valueobject.MatchResult, 0)
	for _, g := range goals {
		if r := m.Match(record, g); r.IsMatch {
			matches = append(matches, r)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Confidence != matches[j].Confidence {
			return matches[i].Confidence > matches[j].Confidence
		}
		return lessID(matches[i].GoalID, matches[j].GoalID)
	})
	return matches
}

// Suggest splits the matches of an action into confident and ambiguous lists.
func (m *Matcher) Suggest(record *entity.ActionRecord, goals []*entity.Goal) valueobject.MatchSuggestions {
	confident, ambiguous := FilterAmbiguous(m.MatchAll(record, goals), m.config.ConfidenceThreshold)
	return valueobject.MatchSuggestions{
		ActionID:  record.ID(),
		Confident: confident,
		Ambiguous: ambiguous,
	}
}

// InferPeriod matches every action against every goal, splits the matches by
// the confidence threshold and lists the actions that matched nothing. Matches
// are ordered by confidence descending, then action id, then goal id.
func (m *Matcher) InferPeriod(records []*entity.ActionRecord, goals []*entity.Goal) valueobject.InferenceSession {
	session := valueobject.InferenceSession{
		ActionsAnalyzed: len(records),
		GoalsAnalyzed:   len(goals),
		Unmatched:       make([]uuid.UUID, 0),
	}

	all := make([]valueobject.MatchResult, 0)
	for _, r := range records {
		matches := m.MatchAll(r, goals)
		if len(matches) == 0 {
			session.Unmatched = append(session.Unmatched, r.ID())
			continue
		}
		all = append(all, matches...)
	}
	sortMatches(all)
	sort.Slice(session.Unmatched, func(i, j int) bool {
		return lessID(session.Unmatched[i], session.Unmatched[j])
	})

	session.Confident, session.Ambiguous = FilterAmbiguous(all, m.config.ConfidenceThreshold)
	return session
}

// MatchGoal scores every action against one goal, keeping only matches ordered
// by confidence descending then action id.
func (m *Matcher) MatchGoal(records []*entity.ActionRecord, goal *entity.Goal) []valueobject.MatchResult {
	matches := make([]valueobject.MatchResult, 0)
	for _, r := range records {
		if result := m.Match(r, goal); result.IsMatch {
			matches = append(matches, result)
		}
	}
	sortMatches(matches)
	return matches
}

func sortMatches(matches []valueobject.MatchResult) {
	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		if a.ActionID != b.ActionID {
			return lessID(a.ActionID, b.ActionID)
		}
		return lessID(a.GoalID, b.GoalID)
	})
}

// FilterAmbiguous partitions matches by threshold, preserving order.
func FilterAmbiguous(matches []valueobject.MatchResult, threshold float64) (confident, ambiguous []valueobject.MatchResult) {
	confident = make([]valueobject.MatchResult, 0)
	ambiguous = make([]valueobject.MatchResult, 0)
	for _, r := range matches {
		if r.Confidence >= threshold {
			confident = append(confident, r)
		} else {
			ambiguous = append(ambiguous, r)
		}
	}
	return confident, ambiguous
}

// LinksFromMatch turns a match into one scoped goal link per overlapping metric.
func LinksFromMatch(result valueobject.MatchResult, method entity.AssignmentMethod) []entity.GoalLinkInput {
	links := make([]entity.GoalLinkInput, 0, len(result.Metrics))
	for _, c := range result.Metrics {
		metricID := c.MetricID
		amount := c.Amount
		links = append(links, entity.GoalLinkInput{
			GoalID:             result.GoalID,
			MetricID:           &metricID,
			ContributionAmount: &amount,
			AssignmentMethod:   method,
		})
	}
	return links
}

func lessID(a, b uuid.UUID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}
