package error

import "errors"

// Action domain errors.
var (
	// ErrActionNotFound is returned when an action is not found in the system.
	ErrActionNotFound = errors.New("action not found")

	// ErrNoMatch is returned when a match is confirmed for a goal the action does not match.
	ErrNoMatch = errors.New("action does not match goal")
)

// ActionErrorCode defines error codes for action errors.
// Format: ACT-XXYYYY where XX is category and YYYY is specific error.
type ActionErrorCode string

const (
	ErrCodeActionNotFound      ActionErrorCode = "ACT-010001"
	ErrCodeMissingActionFields ActionErrorCode = "ACT-010002"
	ErrCodeNoMatch             ActionErrorCode = "ACT-020001"
)

// ActionError represents an action error with code and message.
type ActionError struct {
	Code    ActionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ActionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ActionError) Unwrap() error {
	return e.Err
}

// NewActionError creates a new ActionError with the given code and message.
func NewActionError(code ActionErrorCode, message string, err error) *ActionError {
	return &ActionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
