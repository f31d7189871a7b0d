package validator

import (
	"strings"

	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/domain/validation"
)

var priorityRange = validation.Closed(entity.MinValuePriority, entity.MaxValuePriority)

// ValueValidator validates personal values.
type ValueValidator struct{}

// NewValueValidator creates a new ValueValidator.
func NewValueValidator() *ValueValidator {
	return &ValueValidator{}
}

// ValidateFormData checks a submitted personal value form. An empty level is
// accepted and later defaulted to general.
func (v *ValueValidator) ValidateFormData(form entity.PersonalValueFormData) error {
	return validation.First(
		validation.RequireAnyNonEmpty(
			validation.Text(form.Title, "title"),
			validation.Text(form.Description, "description"),
		),
		validation.RequireOptionalInRange(form.Priority, priorityRange, "priority"),
		validateLevel(form.Level, true),
	)
}

// ValidateComplete checks an assembled personal value before it is written.
func (v *ValueValidator) ValidateComplete(value *entity.PersonalValue) error {
	if err := validation.RequirePresent(value, "value"); err != nil {
		return err
	}
	return validation.First(
		validation.RequireNonZero(value.ID, "value id"),
		validation.RequireInRange(value.Priority, priorityRange, "priority"),
		validateLevel(value.Level, false),
	)
}

func validateLevel(level entity.ValueLevel, allowEmpty bool) error {
	if allowEmpty && level == "" {
		return nil
	}
	if entity.IsValidValueLevel(level) {
		return nil
	}
	return domainerror.NewValueError(
		domainerror.ErrCodeInvalidValueLevel,
		"level must be one of "+strings.Join([]string{
			string(entity.ValueLevelGeneral),
			string(entity.ValueLevelMajor),
			string(entity.ValueLevelHighestOrder),
			string(entity.ValueLevelLifeArea),
		}, ", "),
		domainerror.ErrInvalidValueLevel,
	)
}
