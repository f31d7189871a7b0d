// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// ExpectationModel represents the expectations table in the database.
// DueDate holds a milestone target date or an obligation deadline.
type ExpectationModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Kind        string            `gorm:"type:varchar(20);not null;index"`
	Title       *string           `gorm:"type:varchar(255)"`
	Description *string           `gorm:"type:text"`
	Importance  int               `gorm:"not null"`
	Urgency     int               `gorm:"not null"`
	DueDate     *time.Time        `gorm:"type:timestamp"`
	RequestedBy *string           `gorm:"type:varchar(255)"`
	CreatedAt   time.Time         `gorm:"not null"`
	UpdatedAt   time.Time         `gorm:"not null"`
	Goal        *GoalDetailsModel `gorm:"foreignKey:ExpectationID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for the ExpectationModel.
func (ExpectationModel) TableName() string {
	return "expectations"
}

// GoalDetailsModel represents the goal_details table: the goal-specific columns
// of an expectation of kind goal.
type GoalDetailsModel struct {
	ExpectationID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	StartDate          *time.Time `gorm:"type:timestamp"`
	TargetDate         *time.Time `gorm:"type:timestamp"`
	ActionPlan         *string    `gorm:"type:text"`
	ExpectedTermLength *int
}

// TableName returns the table name for the GoalDetailsModel.
func (GoalDetailsModel) TableName() string {
	return "goal_details"
}

// ExpectationMeasureModel represents the expectation_measures table.
type ExpectationMeasureModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey"`
	ExpectationID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_expectation_measures_pair"`
	MetricID      uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_expectation_measures_pair;index"`
	TargetValue   decimal.Decimal   `gorm:"type:decimal(20,6);not null"`
	CreatedAt     time.Time         `gorm:"not null"`
	Expectation   *ExpectationModel `gorm:"foreignKey:ExpectationID;references:ID;constraint:OnDelete:RESTRICT"`
	Metric        *MetricModel      `gorm:"foreignKey:MetricID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for the ExpectationMeasureModel.
func (ExpectationMeasureModel) TableName() string {
	return "expectation_measures"
}

// GoalRelevanceModel represents the goal_relevances table.
type GoalRelevanceModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	GoalID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_goal_relevances_pair"`
	ValueID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_goal_relevances_pair;index"`
	AlignmentStrength *int
	Notes             *string             `gorm:"type:text"`
	CreatedAt         time.Time           `gorm:"not null"`
	Goal              *GoalDetailsModel   `gorm:"foreignKey:GoalID;references:ExpectationID;constraint:OnDelete:RESTRICT"`
	Value             *PersonalValueModel `gorm:"foreignKey:ValueID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for the GoalRelevanceModel.
func (GoalRelevanceModel) TableName() string {
	return "goal_relevances"
}

// ToEntity converts an ExpectationModel to a domain Expectation, dispatching on kind.
func (m *ExpectationModel) ToEntity() *entity.Expectation {
	exp := &entity.Expectation{
		ID:          m.ID,
		Kind:        entity.ExpectationKind(m.Kind),
		Title:       m.Title,
		Description: m.Description,
		Importance:  m.Importance,
		Urgency:     m.Urgency,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	switch exp.Kind {
	case entity.ExpectationKindGoal:
		details := entity.GoalDetails{}
		if m.Goal != nil {
			details = entity.GoalDetails{
				StartDate:          m.Goal.StartDate,
				TargetDate:         m.Goal.TargetDate,
				ActionPlan:         m.Goal.ActionPlan,
				ExpectedTermLength: m.Goal.ExpectedTermLength,
			}
		}
		exp.Details = details
	case entity.ExpectationKindMilestone:
		exp.Details = entity.MilestoneDetails{TargetDate: derefTime(m.DueDate)}
	case entity.ExpectationKindObligation:
		exp.Details = entity.ObligationDetails{Deadline: derefTime(m.DueDate), RequestedBy: m.RequestedBy}
	default:
		exp.Details = entity.AspirationDetails{}
	}
	return exp
}

// ExpectationFromEntity creates an ExpectationModel, plus a GoalDetailsModel when
// the expectation is a goal.
func ExpectationFromEntity(exp *entity.Expectation) (*ExpectationModel, *GoalDetailsModel) {
	m := &ExpectationModel{
		ID:          exp.ID,
		Kind:        string(exp.Kind),
		Title:       exp.Title,
		Description: exp.Description,
		Importance:  exp.Importance,
		Urgency:     exp.Urgency,
		CreatedAt:   exp.CreatedAt,
		UpdatedAt:   exp.UpdatedAt,
	}

	var details *GoalDetailsModel
	switch d := exp.Details.(type) {
	case entity.GoalDetails:
		details = &GoalDetailsModel{
			ExpectationID:      exp.ID,
			StartDate:          d.StartDate,
			TargetDate:         d.TargetDate,
			ActionPlan:         d.ActionPlan,
			ExpectedTermLength: d.ExpectedTermLength,
		}
	case entity.MilestoneDetails:
		due := d.TargetDate
		m.DueDate = &due
	case entity.ObligationDetails:
		due := d.Deadline
		m.DueDate = &due
		m.RequestedBy = d.RequestedBy
	}
	return m, details
}

// ToEntity converts an ExpectationMeasureModel to a domain ExpectationMeasure.
func (m *ExpectationMeasureModel) ToEntity() *entity.ExpectationMeasure {
	return &entity.ExpectationMeasure{
		ID:            m.ID,
		ExpectationID: m.ExpectationID,
		MetricID:      m.MetricID,
		TargetValue:   m.TargetValue,
		CreatedAt:     m.CreatedAt,
	}
}

// ExpectationMeasureFromEntity creates an ExpectationMeasureModel from a domain ExpectationMeasure.
func ExpectationMeasureFromEntity(e *entity.ExpectationMeasure) *ExpectationMeasureModel {
	return &ExpectationMeasureModel{
		ID:            e.ID,
		ExpectationID: e.ExpectationID,
		MetricID:      e.MetricID,
		TargetValue:   e.TargetValue,
		CreatedAt:     e.CreatedAt,
	}
}

// ToEntity converts a GoalRelevanceModel to a domain GoalRelevance.
func (m *GoalRelevanceModel) ToEntity() *entity.GoalRelevance {
	return &entity.GoalRelevance{
		ID:                m.ID,
		GoalID:            m.GoalID,
		ValueID:           m.ValueID,
		AlignmentStrength: m.AlignmentStrength,
		Notes:             m.Notes,
		CreatedAt:         m.CreatedAt,
	}
}

// GoalRelevanceFromEntity creates a GoalRelevanceModel from a domain GoalRelevance.
func GoalRelevanceFromEntity(e *entity.GoalRelevance) *GoalRelevanceModel {
	return &GoalRelevanceModel{
		ID:                e.ID,
		GoalID:            e.GoalID,
		ValueID:           e.ValueID,
		AlignmentStrength: e.AlignmentStrength,
		Notes:             e.Notes,
		CreatedAt:         e.CreatedAt,
	}
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
