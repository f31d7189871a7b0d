// Package value contains personal value use cases.
package value

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
)

// newValue builds a personal value from validated form data, filling the level,
// priority and life domain defaults.
func newValue(form entity.PersonalValueFormData) *entity.PersonalValue {
	level := form.Level
	if level == "" {
		level = entity.ValueLevelGeneral
	}
	priority := entity.DefaultPriority(level)
	if form.Priority != nil {
		priority = *form.Priority
	}
	lifeDomain := entity.DefaultLifeDomain
	if form.LifeDomain != nil && strings.TrimSpace(*form.LifeDomain) != "" {
		lifeDomain = strings.TrimSpace(*form.LifeDomain)
	}

	return entity.NewPersonalValue(form.Title, form.Description, priority, level, lifeDomain, form.AlignmentGuidance)
}

func wrapStoreError(err error, op string) error {
	switch {
	case errors.Is(err, domainerror.ErrValueNotFound):
		return domainerror.NewValueError(domainerror.ErrCodeValueNotFound, "personal value not found", domainerror.ErrValueNotFound)
	case domainerror.IsValidationError(err):
		return err
	}
	return fmt.Errorf("failed to %s personal value: %w", op, err)
}
