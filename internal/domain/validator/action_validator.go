package validator

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/validation"
)

var (
	measurementRange = validation.DecimalAtLeast(decimal.Zero)
	confidenceRange  = validation.Closed(0.0, 1.0)
)

// ActionValidator validates action aggregates.
type ActionValidator struct {
	now func() time.Time
}

// NewActionValidator creates a new ActionValidator. A nil clock uses time.Now.
func NewActionValidator(now func() time.Time) *ActionValidator {
	if now == nil {
		now = time.Now
	}
	return &ActionValidator{now: now}
}

// ValidateFormData checks a submitted action form.
func (v *ActionValidator) ValidateFormData(form entity.ActionFormData) error {
	return validation.First(
		validation.RequireAnyNonEmpty(
			validation.Text(form.Title, "title"),
			validation.Text(form.Description, "description"),
			validation.Filled(len(form.Measurements) > 0, "measurements"),
			validation.Filled(len(form.GoalLinks) > 0, "goal links"),
		),
		validation.RequireNotFuture(form.StartTime, v.now(), "start time"),
		validation.RequireOptionalInRange(form.DurationMinutes, validation.AtLeast(0.0), "duration"),
		validation.RequireEachNonZero(form.Measurements, func(m entity.MeasurementInput) uuid.UUID {
			return m.MetricID
		}, "measurement", "metric"),
		validation.RequireEachInRange(form.Measurements, func(m entity.MeasurementInput) decimal.Decimal {
			return m.Value
		}, measurementRange, "measurement", "value"),
		validation.RequireEachNonZero(form.GoalLinks, func(l entity.GoalLinkInput) uuid.UUID {
			return l.GoalID
		}, "goal link", "goal"),
		validation.RequireEachOptionalInRange(form.GoalLinks, func(l entity.GoalLinkInput) *decimal.Decimal {
			return l.ContributionAmount
		}, measurementRange, "goal link", "contribution amount"),
		validation.RequireEachOptionalInRange(form.GoalLinks, func(l entity.GoalLinkInput) *float64 {
			return l.Confidence
		}, confidenceRange, "goal link", "confidence"),
	)
}

// ValidateComplete checks an assembled action graph before it is written.
func (v *ActionValidator) ValidateComplete(record *entity.ActionRecord) error {
	if err := validation.RequirePresent(record.Action, "action"); err != nil {
		return err
	}
	id := record.ID()

	return validation.First(
		validation.RequireNonZero(id, "action id"),
		validation.RequireMatchAll(record.Measurements, id, func(m *entity.MeasuredAction) uuid.UUID {
			return m.ActionID
		}, "measurement", "action"),
		validation.RequireUnique(record.Measurements, func(m *entity.MeasuredAction) uuid.UUID {
			return m.MetricID
		}, "measurement", "metric"),
		validation.RequireMatchAll(record.Contributions, id, func(c *entity.ActionGoalContribution) uuid.UUID {
			return c.ActionID
		}, "goal contribution", "action"),
		validation.RequireUnique(record.Contributions, func(c *entity.ActionGoalContribution) entity.ContributionKey {
			return c.Key()
		}, "goal contribution", "goal and metric"),
		validation.RequireEachInRange(record.Contributions, func(c *entity.ActionGoalContribution) float64 {
			return c.Confidence
		}, confidenceRange, "goal contribution", "confidence"),
	)
}
