package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// MetricModel represents the metrics catalog table in the database.
type MetricModel struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Unit             string           `gorm:"type:varchar(50);not null;uniqueIndex:idx_metrics_unit_type"`
	MetricType       string           `gorm:"type:varchar(20);not null;uniqueIndex:idx_metrics_unit_type"`
	CanonicalUnit    *string          `gorm:"type:varchar(50)"`
	ConversionFactor *decimal.Decimal `gorm:"type:decimal(20,10)"`
	CreatedAt        time.Time        `gorm:"not null"`
}

// TableName returns the table name for the MetricModel.
func (MetricModel) TableName() string {
	return "metrics"
}

// ToEntity converts a MetricModel to a domain Metric entity.
func (m *MetricModel) ToEntity() *entity.Metric {
	return &entity.Metric{
		ID:               m.ID,
		Unit:             m.Unit,
		MetricType:       entity.MetricType(m.MetricType),
		CanonicalUnit:    m.CanonicalUnit,
		ConversionFactor: m.ConversionFactor,
		CreatedAt:        m.CreatedAt,
	}
}

// MetricFromEntity creates a MetricModel from a domain Metric entity.
func MetricFromEntity(metric *entity.Metric) *MetricModel {
	return &MetricModel{
		ID:               metric.ID,
		Unit:             metric.Unit,
		MetricType:       string(metric.MetricType),
		CanonicalUnit:    metric.CanonicalUnit,
		ConversionFactor: metric.ConversionFactor,
		CreatedAt:        metric.CreatedAt,
	}
}
