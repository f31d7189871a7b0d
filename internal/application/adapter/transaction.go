package adapter

import "context"

// Repositories groups the repositories that share one storage handle. Inside
// RunInTransaction every member is bound to the open transaction.
type Repositories struct {
	Goals   GoalRepository
	Actions ActionRepository
	Values  ValueRepository
	Terms   TermRepository
	Metrics MetricRepository
}

// TxManager runs a unit of work in a single storage transaction.
type TxManager interface {
	// RunInTransaction commits when fn returns nil and rolls back otherwise.
	// Storage constraint failures are returned as domain validation errors.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
