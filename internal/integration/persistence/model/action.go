package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// ActionModel represents the actions table in the database.
type ActionModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title           *string    `gorm:"type:varchar(255)"`
	Description     *string    `gorm:"type:text"`
	Notes           *string    `gorm:"type:text"`
	StartTime       *time.Time `gorm:"type:timestamp;index"`
	DurationMinutes *float64
	CreatedAt       time.Time `gorm:"not null;index"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the ActionModel.
func (ActionModel) TableName() string {
	return "actions"
}

// MeasuredActionModel represents the measured_actions table.
type MeasuredActionModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ActionID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_measured_actions_pair"`
	MetricID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_measured_actions_pair;index"`
	Value     decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	Action    *ActionModel    `gorm:"foreignKey:ActionID;references:ID;constraint:OnDelete:RESTRICT"`
	Metric    *MetricModel    `gorm:"foreignKey:MetricID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for the MeasuredActionModel.
func (MeasuredActionModel) TableName() string {
	return "measured_actions"
}

// ActionGoalContributionModel represents the action_goal_contributions table.
// Uniqueness of (action, goal, metric) is enforced before writing, since an
// unscoped row has a NULL metric.
type ActionGoalContributionModel struct {
	ID                 uuid.UUID         `gorm:"type:uuid;primaryKey"`
	ActionID           uuid.UUID         `gorm:"type:uuid;not null;index"`
	GoalID             uuid.UUID         `gorm:"type:uuid;not null;index"`
	MetricID           *uuid.UUID        `gorm:"type:uuid;index"`
	ContributionAmount decimal.Decimal   `gorm:"type:decimal(20,6);not null"`
	AssignmentMethod   string            `gorm:"type:varchar(20);not null;default:'manual'"`
	Confidence         float64           `gorm:"not null;default:1"`
	CreatedAt          time.Time         `gorm:"not null"`
	Action             *ActionModel      `gorm:"foreignKey:ActionID;references:ID;constraint:OnDelete:RESTRICT"`
	Goal               *GoalDetailsModel `gorm:"foreignKey:GoalID;references:ExpectationID;constraint:OnDelete:RESTRICT"`
	Metric             *MetricModel      `gorm:"foreignKey:MetricID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for the ActionGoalContributionModel.
func (ActionGoalContributionModel) TableName() string {
	return "action_goal_contributions"
}

// ToEntity converts an ActionModel to a domain Action entity.
func (m *ActionModel) ToEntity() *entity.Action {
	return &entity.Action{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		Notes:           m.Notes,
		StartTime:       m.StartTime,
		DurationMinutes: m.DurationMinutes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ActionFromEntity creates an ActionModel from a domain Action entity.
func ActionFromEntity(action *entity.Action) *ActionModel {
	return &ActionModel{
		ID:              action.ID,
		Title:           action.Title,
		Description:     action.Description,
		Notes:           action.Notes,
		StartTime:       action.StartTime,
		DurationMinutes: action.DurationMinutes,
		CreatedAt:       action.CreatedAt,
		UpdatedAt:       action.UpdatedAt,
	}
}

// ToEntity converts a MeasuredActionModel to a domain MeasuredAction.
func (m *MeasuredActionModel) ToEntity() *entity.MeasuredAction {
	return &entity.MeasuredAction{
		ID:        m.ID,
		ActionID:  m.ActionID,
		MetricID:  m.MetricID,
		Value:     m.Value,
		CreatedAt: m.CreatedAt,
	}
}

// MeasuredActionFromEntity creates a MeasuredActionModel from a domain MeasuredAction.
func MeasuredActionFromEntity(e *entity.MeasuredAction) *MeasuredActionModel {
	return &MeasuredActionModel{
		ID:        e.ID,
		ActionID:  e.ActionID,
		MetricID:  e.MetricID,
		Value:     e.Value,
		CreatedAt: e.CreatedAt,
	}
}

// ToEntity converts an ActionGoalContributionModel to a domain ActionGoalContribution.
func (m *ActionGoalContributionModel) ToEntity() *entity.ActionGoalContribution {
	return &entity.ActionGoalContribution{
		ID:                 m.ID,
		ActionID:           m.ActionID,
		GoalID:             m.GoalID,
		MetricID:           m.MetricID,
		ContributionAmount: m.ContributionAmount,
		AssignmentMethod:   entity.AssignmentMethod(m.AssignmentMethod),
		Confidence:         m.Confidence,
		CreatedAt:          m.CreatedAt,
	}
}

// ActionGoalContributionFromEntity creates an ActionGoalContributionModel from a domain ActionGoalContribution.
func ActionGoalContributionFromEntity(e *entity.ActionGoalContribution) *ActionGoalContributionModel {
	return &ActionGoalContributionModel{
		ID:                 e.ID,
		ActionID:           e.ActionID,
		GoalID:             e.GoalID,
		MetricID:           e.MetricID,
		ContributionAmount: e.ContributionAmount,
		AssignmentMethod:   string(e.AssignmentMethod),
		Confidence:         e.Confidence,
		CreatedAt:          e.CreatedAt,
	}
}
