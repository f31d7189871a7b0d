package error

import "errors"

// Personal value domain errors.
var (
	// ErrValueNotFound is returned when a personal value is not found in the system.
	ErrValueNotFound = errors.New("personal value not found")

	// ErrInvalidValueLevel is returned when the value level is not one of the known levels.
	ErrInvalidValueLevel = errors.New("invalid value level")
)

// ValueErrorCode defines error codes for personal value errors.
// Format: PVL-XXYYYY where XX is category and YYYY is specific error.
type ValueErrorCode string

const (
	ErrCodeValueNotFound      ValueErrorCode = "PVL-010001"
	ErrCodeInvalidValueLevel  ValueErrorCode = "PVL-010002"
	ErrCodeMissingValueFields ValueErrorCode = "PVL-010003"
)

// ValueError represents a personal value error with code and message.
type ValueError struct {
	Code    ValueErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ValueError) Unwrap() error {
	return e.Err
}

// NewValueError creates a new ValueError with the given code and message.
func NewValueError(code ValueErrorCode, message string, err error) *ValueError {
	return &ValueError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
