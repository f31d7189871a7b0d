package db

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goal-tracker/backend/config"
)

func memoryConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Driver:       DriverSQLite,
		URL:          fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString()),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}
}

func TestNewConnection_SQLite(t *testing.T) {
	database, err := NewConnection(memoryConfig(), "test")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, database.Migrate())
	assert.True(t, database.HealthCheck())

	for _, table := range []string{"expectations", "goal_details", "metrics", "expectation_measures", "goal_relevances",
		"actions", "measured_actions", "action_goal_contributions", "personal_values", "terms", "term_goal_assignments"} {
		assert.True(t, database.DB().Migrator().HasTable(table), table)
	}

	var fk int
	require.NoError(t, database.DB().Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestNewConnection_UnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.Driver = "oracle"

	_, err := NewConnection(cfg, "test")
	assert.Error(t, err)
}
