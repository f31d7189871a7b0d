package error

import "errors"

// Term domain errors.
var (
	// ErrTermNotFound is returned when a term is not found in the system.
	ErrTermNotFound = errors.New("term not found")
)

// TermErrorCode defines error codes for term errors.
// Format: TRM-XXYYYY where XX is category and YYYY is specific error.
type TermErrorCode string

const (
	ErrCodeTermNotFound      TermErrorCode = "TRM-010001"
	ErrCodeMissingTermFields TermErrorCode = "TRM-010002"
)

// TermError represents a term error with code and message.
type TermError struct {
	Code    TermErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TermError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TermError) Unwrap() error {
	return e.Err
}

// NewTermError creates a new TermError with the given code and message.
func NewTermError(code TermErrorCode, message string, err error) *TermError {
	return &TermError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
