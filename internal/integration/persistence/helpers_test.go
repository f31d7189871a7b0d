package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/integration/persistence/persistencetest"
)

func newTestDB(t *testing.T) *gorm.DB {
	return persistencetest.NewDB(t)
}

func strPtr(s string) *string { return &s }

func seedMetric(t *testing.T, db *gorm.DB, unit string) *entity.Metric {
	t.Helper()
	m := entity.NewMetric(unit, entity.MetricTypeOther)
	require.NoError(t, NewMetricRepository(db).Create(context.Background(), m))
	return m
}

func seedValue(t *testing.T, db *gorm.DB, title string) *entity.PersonalValue {
	t.Helper()
	v := entity.NewPersonalValue(strPtr(title), nil, 40, entity.ValueLevelGeneral, entity.DefaultLifeDomain, nil)
	require.NoError(t, NewValueRepository(db).Create(context.Background(), v))
	return v
}
