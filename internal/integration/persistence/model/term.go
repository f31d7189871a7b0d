package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// TermModel represents the terms table in the database.
type TermModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TermNumber int       `gorm:"not null;uniqueIndex"`
	Theme      *string   `gorm:"type:varchar(255)"`
	StartDate  time.Time `gorm:"type:timestamp;not null"`
	TargetDate time.Time `gorm:"type:timestamp;not null"`
	Reflection *string   `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the TermModel.
func (TermModel) TableName() string {
	return "terms"
}

// TermGoalAssignmentModel represents the term_goal_assignments table.
type TermGoalAssignmentModel struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey"`
	TermID          uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_term_goal_assignments_pair"`
	GoalID          uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_term_goal_assignments_pair;index"`
	AssignmentOrder int               `gorm:"not null;default:0"`
	CreatedAt       time.Time         `gorm:"not null"`
	Term            *TermModel        `gorm:"foreignKey:TermID;references:ID;constraint:OnDelete:RESTRICT"`
	Goal            *GoalDetailsModel `gorm:"foreignKey:GoalID;references:ExpectationID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for the TermGoalAssignmentModel.
func (TermGoalAssignmentModel) TableName() string {
	return "term_goal_assignments"
}

// ToEntity converts a TermModel to a domain Term entity.
func (m *TermModel) ToEntity() *entity.Term {
	return &entity.Term{
		ID:         m.ID,
		TermNumber: m.TermNumber,
		Theme:      m.Theme,
		StartDate:  m.StartDate,
		TargetDate: m.TargetDate,
		Reflection: m.Reflection,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// TermFromEntity creates a TermModel from a domain Term entity.
func TermFromEntity(term *entity.Term) *TermModel {
	return &TermModel{
		ID:         term.ID,
		TermNumber: term.TermNumber,
		Theme:      term.Theme,
		StartDate:  term.StartDate,
		TargetDate: term.TargetDate,
		Reflection: term.Reflection,
		CreatedAt:  term.CreatedAt,
		UpdatedAt:  term.UpdatedAt,
	}
}

// ToEntity converts a TermGoalAssignmentModel to a domain TermGoalAssignment.
func (m *TermGoalAssignmentModel) ToEntity() *entity.TermGoalAssignment {
	return &entity.TermGoalAssignment{
		ID:              m.ID,
		TermID:          m.TermID,
		GoalID:          m.GoalID,
		AssignmentOrder: m.AssignmentOrder,
		CreatedAt:       m.CreatedAt,
	}
}

// TermGoalAssignmentFromEntity creates a TermGoalAssignmentModel from a domain TermGoalAssignment.
func TermGoalAssignmentFromEntity(e *entity.TermGoalAssignment) *TermGoalAssignmentModel {
	return &TermGoalAssignmentModel{
		ID:              e.ID,
		TermID:          e.TermID,
		GoalID:          e.GoalID,
		AssignmentOrder: e.AssignmentOrder,
		CreatedAt:       e.CreatedAt,
	}
}
