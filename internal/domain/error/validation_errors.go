// Package error defines domain-specific errors for the Goal Tracker application.
package error

import "errors"

// Validation error kinds. Every error raised by validators, coordinators and the
// storage translation layer wraps exactly one of these, so callers can branch with errors.Is.
var (
	// ErrContentEmpty is returned when a required text field (or every field of an "any of" group) is blank.
	ErrContentEmpty = errors.New("content empty")

	// ErrRangeViolation is returned when a numeric field falls outside its declared range.
	ErrRangeViolation = errors.New("value out of range")

	// ErrDateRangeInvalid is returned when a start/end pair violates the required ordering.
	ErrDateRangeInvalid = errors.New("invalid date range")

	// ErrInconsistentReference is returned when an assembled child row points at the wrong parent.
	ErrInconsistentReference = errors.New("inconsistent reference")

	// ErrDuplicateRecord is returned when two child rows share the same counterpart.
	ErrDuplicateRecord = errors.New("duplicate record")

	// ErrForeignKeyViolation is returned when a referenced row does not exist in the store.
	ErrForeignKeyViolation = errors.New("referenced record does not exist")

	// ErrMissingRequiredField is returned when a structurally required, non-text field is absent.
	ErrMissingRequiredField = errors.New("missing required field")
)

// ValidationErrorCode defines error codes for validation errors.
// Format: VAL-XXYYYY where XX is category and YYYY is specific error.
type ValidationErrorCode string

const (
	// Phase 1 (form data) errors (01XXXX)
	ErrCodeContentEmpty         ValidationErrorCode = "VAL-010001"
	ErrCodeRangeViolation       ValidationErrorCode = "VAL-010002"
	ErrCodeDateRangeInvalid     ValidationErrorCode = "VAL-010003"
	ErrCodeMissingRequiredField ValidationErrorCode = "VAL-010004"

	// Phase 2 (assembled graph) errors (02XXXX)
	ErrCodeInconsistentReference ValidationErrorCode = "VAL-020001"
	ErrCodeDuplicateRecord       ValidationErrorCode = "VAL-020002"

	// Storage errors (03XXXX)
	ErrCodeForeignKeyViolation ValidationErrorCode = "VAL-030001"
)

var codesByKind = map[error]ValidationErrorCode{
	ErrContentEmpty:          ErrCodeContentEmpty,
	ErrRangeViolation:        ErrCodeRangeViolation,
	ErrDateRangeInvalid:      ErrCodeDateRangeInvalid,
	ErrMissingRequiredField:  ErrCodeMissingRequiredField,
	ErrInconsistentReference: ErrCodeInconsistentReference,
	ErrDuplicateRecord:       ErrCodeDuplicateRecord,
	ErrForeignKeyViolation:   ErrCodeForeignKeyViolation,
}

// ValidationError carries the offending field and a plain-language reason
// suitable for direct display.
type ValidationError struct {
	Code    ValidationErrorCode
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Unwrap returns the error kind.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError of the given kind.
func NewValidationError(kind error, field, message string) *ValidationError {
	return &ValidationError{
		Code:    codesByKind[kind],
		Field:   field,
		Message: message,
		Err:     kind,
	}
}

// IsValidationError reports whether err belongs to the validation taxonomy.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
