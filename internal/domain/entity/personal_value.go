package entity

import (
	"time"

	"github.com/google/uuid"
)

// ValueLevel is the tier a personal value sits at.
type ValueLevel string

const (
	ValueLevelGeneral      ValueLevel = "general"
	ValueLevelMajor        ValueLevel = "major"
	ValueLevelHighestOrder ValueLevel = "highest_order"
	ValueLevelLifeArea     ValueLevel = "life_area"
)

// Priority bounds; 1 is the highest priority.
const (
	MinValuePriority = 1
	MaxValuePriority = 100
)

// DefaultLifeDomain is used when a value is not tied to a particular domain.
const DefaultLifeDomain = "General"

// IsValidValueLevel reports whether level is a known value level.
func IsValidValueLevel(level ValueLevel) bool {
	switch level {
	case ValueLevelGeneral, ValueLevelMajor, ValueLevelHighestOrder, ValueLevelLifeArea:
		return true
	}
	return false
}

// DefaultPriority returns the priority assigned to a value of the given level
// when none is supplied.
func DefaultPriority(level ValueLevel) int {
	switch level {
	case ValueLevelHighestOrder:
		return 1
	case ValueLevelMajor:
		return 10
	default:
		return 40
	}
}

// PersonalValue is something the user cares about and wants goals to serve.
type PersonalValue struct {
	ID                uuid.UUID
	Title             *string
	Description       *string
	Priority          int
	Level             ValueLevel
	LifeDomain        string
	AlignmentGuidance *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewPersonalValue creates a new PersonalValue entity.
func NewPersonalValue(title, description *string, priority int, level ValueLevel, lifeDomain string, guidance *string) *PersonalValue {
	now := time.Now().UTC()

	return &PersonalValue{
		ID:                uuid.New(),
		Title:             title,
		Description:       description,
		Priority:          priority,
		Level:             level,
		LifeDomain:        lifeDomain,
		AlignmentGuidance: guidance,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
