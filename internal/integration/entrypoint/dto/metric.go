package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// MetricRequest represents the request body for a metric catalog lookup.
// The conversion is only stored when the entry is created.
type MetricRequest struct {
	Unit             string           `json:"unit" binding:"required"`
	MetricType       string           `json:"metric_type,omitempty"`
	CanonicalUnit    *string          `json:"canonical_unit,omitempty"`
	ConversionFactor *decimal.Decimal `json:"conversion_factor,omitempty"`
}

// MetricResponse represents a metric catalog entry in API responses.
type MetricResponse struct {
	ID               string           `json:"id"`
	Unit             string           `json:"unit"`
	MetricType       string           `json:"metric_type"`
	CanonicalUnit    *string          `json:"canonical_unit,omitempty"`
	ConversionFactor *decimal.Decimal `json:"conversion_factor,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

// MetricListResponse represents the response for listing metrics.
type MetricListResponse struct {
	Metrics []MetricResponse `json:"metrics"`
}

// ToMetricResponse converts a Metric entity to a MetricResponse DTO.
func ToMetricResponse(m *entity.Metric) MetricResponse {
	return MetricResponse{
		ID:               m.ID.String(),
		Unit:             m.Unit,
		MetricType:       string(m.MetricType),
		CanonicalUnit:    m.CanonicalUnit,
		ConversionFactor: m.ConversionFactor,
		CreatedAt:        m.CreatedAt,
	}
}

// ToMetricListResponse converts metrics to a MetricListResponse.
func ToMetricListResponse(metrics []*entity.Metric) MetricListResponse {
	out := make([]MetricResponse, len(metrics))
	for i, m := range metrics {
		out[i] = ToMetricResponse(m)
	}
	return MetricListResponse{Metrics: out}
}
