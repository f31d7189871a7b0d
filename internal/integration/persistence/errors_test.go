package persistence

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domainerror "github.com/goal-tracker/backend/internal/domain/error"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		kind      error
		field     string
		unchanged bool
	}{
		{name: "nil", err: nil, unchanged: true},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, kind: domainerror.ErrForeignKeyViolation, field: "reference"},
		{name: "gorm duplicate", err: gorm.ErrDuplicatedKey, kind: domainerror.ErrDuplicateRecord, field: "record"},
		{name: "sqlite foreign key text", err: errors.New("constraint failed: FOREIGN KEY constraint failed (787)"), kind: domainerror.ErrForeignKeyViolation, field: "reference"},
		{name: "sqlite unique text", err: errors.New("UNIQUE constraint failed: terms.term_number"), kind: domainerror.ErrDuplicateRecord, field: "term number"},
		{name: "postgres unique text", err: fmt.Errorf("ERROR: duplicate key value violates unique constraint \"idx_metrics_unit_type\" (unit)"), kind: domainerror.ErrDuplicateRecord, field: "unit"},
		{name: "other", err: errors.New("disk I/O error"), unchanged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err)
			if tt.unchanged {
				assert.Equal(t, tt.err, got)
				return
			}
			assert.ErrorIs(t, got, tt.kind)

			var vErr *domainerror.ValidationError
			if assert.ErrorAs(t, got, &vErr) {
				assert.Equal(t, tt.field, vErr.Field)
			}
		})
	}
}

func TestTranslateErrorFor(t *testing.T) {
	sqliteFK := errors.New("constraint failed: FOREIGN KEY constraint failed (787)")
	postgresFK := errors.New(`ERROR: insert or update on table "expectation_measures" violates foreign key constraint "fk_metric" (metric_id)`)

	tests := []struct {
		name  string
		err   error
		field string
	}{
		{name: "message without column", err: sqliteFK, field: "metric target"},
		{name: "gorm sentinel", err: gorm.ErrForeignKeyViolated, field: "metric target"},
		{name: "column in message wins", err: postgresFK, field: "metric"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var vErr *domainerror.ValidationError
			if assert.ErrorAs(t, translateErrorFor(tt.err, fieldMetricTarget), &vErr) {
				assert.Equal(t, tt.field, vErr.Field)
			}
		})
	}

	dup := translateErrorFor(errors.New("UNIQUE constraint failed: metrics.id"), fieldMetricTarget)
	var vErr *domainerror.ValidationError
	if assert.ErrorAs(t, dup, &vErr) {
		assert.Equal(t, "record", vErr.Field)
	}
}

func TestTranslateError_PassesValidationErrorsThrough(t *testing.T) {
	original := domainerror.NewValidationError(domainerror.ErrRangeViolation, "importance", "must be between 1 and 10")
	assert.Same(t, original, translateError(original))
}
