package persistence

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	domainerror "github.com/goal-tracker/backend/internal/domain/error"
)

// constraintFields maps storage column names found in constraint messages to
// the field names shown to users.
var constraintFields = []struct {
	column string
	field  string
}{
	{column: "term_number", field: "term number"},
	{column: "metric_id", field: "metric"},
	{column: "value_id", field: "value"},
	{column: "goal_id", field: "goal"},
	{column: "action_id", field: "action"},
	{column: "term_id", field: "term"},
	{column: "expectation_id", field: "goal"},
	{column: "unit", field: "unit"},
}

// Fields reported for foreign key failures on child rows. SQLite names no
// column in the message, so the row being written identifies the reference.
const (
	fieldMetricTarget   = "metric target"
	fieldValueAlignment = "value alignment"
	fieldMeasurement    = "measurement"
	fieldGoalLink       = "goal link"
	fieldGoalAssignment = "goal assignment"
)

// translateError converts storage constraint failures into the domain error
// taxonomy. Other errors are returned unchanged.
func translateError(err error) error {
	return translateErrorFor(err, "reference")
}

// translateErrorFor is translateError reporting reference as the field of a
// foreign key failure whose message names no known column.
func translateErrorFor(err error, reference string) error {
	if err == nil || domainerror.IsValidationError(err) {
		return err
	}

	msg := err.Error()
	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated) || isForeignKeyMessage(msg):
		return &domainerror.ValidationError{
			Code:    domainerror.ErrCodeForeignKeyViolation,
			Field:   fieldFromMessage(msg, reference),
			Message: "refers to a record that does not exist",
			Err:     domainerror.ErrForeignKeyViolation,
		}
	case errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateMessage(msg):
		return &domainerror.ValidationError{
			Code:    domainerror.ErrCodeDuplicateRecord,
			Field:   fieldFromMessage(msg, "record"),
			Message: "is already in use",
			Err:     domainerror.ErrDuplicateRecord,
		}
	}
	return err
}

func isForeignKeyMessage(msg string) bool {
	return strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		strings.Contains(msg, "violates foreign key constraint")
}

func isDuplicateMessage(msg string) bool {
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

func fieldFromMessage(msg, fallback string) string {
	for _, c := range constraintFields {
		if strings.Contains(msg, c.column) {
			return c.field
		}
	}
	return fallback
}
