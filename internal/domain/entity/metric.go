package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MetricType is the category a unit of measure belongs to.
type MetricType string

const (
	MetricTypeDistance MetricType = "distance"
	MetricTypeTime     MetricType = "time"
	MetricTypeCount    MetricType = "count"
	MetricTypeMass     MetricType = "mass"
	MetricTypeEnergy   MetricType = "energy"
	MetricTypeVolume   MetricType = "volume"
	MetricTypeOther    MetricType = "other"
)

// MetricTypes lists every known metric category.
var MetricTypes = []MetricType{
	MetricTypeDistance,
	MetricTypeTime,
	MetricTypeCount,
	MetricTypeMass,
	MetricTypeEnergy,
	MetricTypeVolume,
	MetricTypeOther,
}

// IsValidMetricType reports whether t is a known metric category.
func IsValidMetricType(t MetricType) bool {
	for _, known := range MetricTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Metric is a catalog entry describing a unit of measure. Unit + type is the natural key.
type Metric struct {
	ID               uuid.UUID
	Unit             string
	MetricType       MetricType
	CanonicalUnit    *string
	ConversionFactor *decimal.Decimal
	CreatedAt        time.Time
}

// NewMetric creates a new Metric catalog entry with a normalized unit.
func NewMetric(unit string, metricType MetricType) *Metric {
	return &Metric{
		ID:         uuid.New(),
		Unit:       NormalizeUnit(unit),
		MetricType: metricType,
		CreatedAt:  time.Now().UTC(),
	}
}

// NormalizeUnit lowercases and trims a unit so "KM " and "km" share one catalog row.
func NormalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

// WithConversion sets the canonical unit a value of this metric converts to and
// the factor it is multiplied by.
func (m *Metric) WithConversion(canonicalUnit string, factor decimal.Decimal) *Metric {
	unit := NormalizeUnit(canonicalUnit)
	m.CanonicalUnit = &unit
	m.ConversionFactor = &factor
	return m
}

// ToCanonical converts value into the metric's canonical unit. Metrics without a
// conversion return the value unchanged in their own unit.
func (m *Metric) ToCanonical(value decimal.Decimal) (decimal.Decimal, string) {
	if m.CanonicalUnit == nil || m.ConversionFactor == nil {
		return value, m.Unit
	}
	return value.Mul(*m.ConversionFactor), *m.CanonicalUnit
}
