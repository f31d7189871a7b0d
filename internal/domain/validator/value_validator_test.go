package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
)

func TestValueValidator_ValidateFormData(t *testing.T) {
	v := NewValueValidator()

	tests := []struct {
		name string
		form entity.PersonalValueFormData
		kind error
	}{
		{name: "title only", form: entity.PersonalValueFormData{Title: strPtr("Health")}},
		{name: "blank", form: entity.PersonalValueFormData{Title: strPtr(""), Description: strPtr(" ")}, kind: domainerror.ErrContentEmpty},
		{name: "priority lower bound", form: entity.PersonalValueFormData{Title: strPtr("x"), Priority: intPtr(1)}},
		{name: "priority upper bound", form: entity.PersonalValueFormData{Title: strPtr("x"), Priority: intPtr(100)}},
		{name: "priority zero", form: entity.PersonalValueFormData{Title: strPtr("x"), Priority: intPtr(0)}, kind: domainerror.ErrRangeViolation},
		{name: "priority above", form: entity.PersonalValueFormData{Title: strPtr("x"), Priority: intPtr(101)}, kind: domainerror.ErrRangeViolation},
		{name: "known level", form: entity.PersonalValueFormData{Title: strPtr("x"), Level: entity.ValueLevelMajor}},
		{name: "unknown level", form: entity.PersonalValueFormData{Title: strPtr("x"), Level: "cosmic"}, kind: domainerror.ErrInvalidValueLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateFormData(tt.form)
			if tt.kind == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestValueValidator_ValidateComplete(t *testing.T) {
	v := NewValueValidator()

	value := entity.NewPersonalValue(strPtr("Health"), nil, 40, entity.ValueLevelGeneral, entity.DefaultLifeDomain, nil)
	assert.NoError(t, v.ValidateComplete(value))

	value.Level = ""
	assert.ErrorIs(t, v.ValidateComplete(value), domainerror.ErrInvalidValueLevel)

	value.Level = entity.ValueLevelGeneral
	value.Priority = 0
	assert.ErrorIs(t, v.ValidateComplete(value), domainerror.ErrRangeViolation)
}
