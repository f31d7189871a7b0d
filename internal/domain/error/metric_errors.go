package error

import "errors"

// Metric catalog errors.
var (
	// ErrMetricNotFound is returned when a metric is not found in the catalog.
	ErrMetricNotFound = errors.New("metric not found")

	// ErrInvalidMetricType is returned when the metric type is not a known category.
	ErrInvalidMetricType = errors.New("invalid metric type")
)

// MetricErrorCode defines error codes for metric errors.
// Format: MET-XXYYYY where XX is category and YYYY is specific error.
type MetricErrorCode string

const (
	ErrCodeMetricNotFound    MetricErrorCode = "MET-010001"
	ErrCodeInvalidMetricType MetricErrorCode = "MET-010002"
)

// MetricError represents a metric error with code and message.
type MetricError struct {
	Code    MetricErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MetricError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MetricError) Unwrap() error {
	return e.Err
}

// NewMetricError creates a new MetricError with the given code and message.
func NewMetricError(code MetricErrorCode, message string, err error) *MetricError {
	return &MetricError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
