package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/goal-tracker/backend/internal/application/adapter"
)

// NewRepositories builds every repository on the given handle.
func NewRepositories(db *gorm.DB) adapter.Repositories {
	return adapter.Repositories{
		Goals:   NewGoalRepository(db),
		Actions: NewActionRepository(db),
		Values:  NewValueRepository(db),
		Terms:   NewTermRepository(db),
		Metrics: NewMetricRepository(db),
	}
}

// txManager implements the adapter.TxManager interface.
type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a new transaction manager instance.
func NewTxManager(db *gorm.DB) adapter.TxManager {
	return &txManager{
		db: db,
	}
}

// RunInTransaction runs fn with repositories bound to a single transaction.
func (m *txManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context, repos adapter.Repositories) error) error {
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewRepositories(tx))
	})
	return translateError(err)
}
