package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// PersonalValueModel represents the personal_values table in the database.
type PersonalValueModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title             *string   `gorm:"type:varchar(255)"`
	Description       *string   `gorm:"type:text"`
	Priority          int       `gorm:"not null;index"`
	Level             string    `gorm:"type:varchar(20);not null;default:'general';index"`
	LifeDomain        string    `gorm:"type:varchar(100);not null;default:'General'"`
	AlignmentGuidance *string   `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName returns the table name for the PersonalValueModel.
func (PersonalValueModel) TableName() string {
	return "personal_values"
}

// ToEntity converts a PersonalValueModel to a domain PersonalValue entity.
func (m *PersonalValueModel) ToEntity() *entity.PersonalValue {
	return &entity.PersonalValue{
		ID:                m.ID,
		Title:             m.Title,
		Description:       m.Description,
		Priority:          m.Priority,
		Level:             entity.ValueLevel(m.Level),
		LifeDomain:        m.LifeDomain,
		AlignmentGuidance: m.AlignmentGuidance,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// PersonalValueFromEntity creates a PersonalValueModel from a domain PersonalValue entity.
func PersonalValueFromEntity(value *entity.PersonalValue) *PersonalValueModel {
	return &PersonalValueModel{
		ID:                value.ID,
		Title:             value.Title,
		Description:       value.Description,
		Priority:          value.Priority,
		Level:             string(value.Level),
		LifeDomain:        value.LifeDomain,
		AlignmentGuidance: value.AlignmentGuidance,
		CreatedAt:         value.CreatedAt,
		UpdatedAt:         value.UpdatedAt,
	}
}
