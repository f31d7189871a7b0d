// Package worker provides background jobs.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/application/usecase/progress"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
)

// ProgressComputer recomputes the progress of one goal.
type ProgressComputer interface {
	Execute(ctx context.Context, input progress.ComputeProgressInput) (*progress.ComputeProgressOutput, error)
}

// ProgressWorker periodically recomputes every goal's progress and refreshes
// the cache. Each goal is computed by its own read calls, so a long pass never
// holds a transaction.
type ProgressWorker struct {
	goals     adapter.GoalRepository
	computer  ProgressComputer
	interval  time.Duration
	batchSize int
}

// Config holds configuration for the progress worker.
type Config struct {
	Interval  time.Duration
	BatchSize int
}

// DefaultConfig returns the default worker configuration.
func DefaultConfig() Config {
	return Config{
		Interval:  5 * time.Minute,
		BatchSize: 50,
	}
}

// NewProgressWorker creates a new progress worker.
func NewProgressWorker(goals adapter.GoalRepository, computer ProgressComputer, config Config) *ProgressWorker {
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultConfig().BatchSize
	}
	if config.Interval <= 0 {
		config.Interval = DefaultConfig().Interval
	}
	return &ProgressWorker{
		goals:     goals,
		computer:  computer,
		interval:  config.Interval,
		batchSize: config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *ProgressWorker) Start(ctx context.Context) {
	slog.Info("Progress worker started",
		"interval", w.interval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Progress worker shutting down")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce walks every goal in batches and returns how many were refreshed.
// Cancellation is checked between goals.
func (w *ProgressWorker) RunOnce(ctx context.Context) int {
	refreshed := 0
	for offset := 0; ; offset += w.batchSize {
		ids, err := w.goals.ListIDs(ctx, offset, w.batchSize)
		if err != nil {
			slog.Error("Failed to list goals for progress refresh", "offset", offset, "error", err)
			return refreshed
		}

		for _, id := range ids {
			if ctx.Err() != nil {
				return refreshed
			}
			if w.refresh(ctx, id) {
				refreshed++
			}
		}

		if len(ids) < w.batchSize {
			break
		}
	}

	slog.Debug("Progress refresh finished", "goals", refreshed)
	return refreshed
}

func (w *ProgressWorker) refresh(ctx context.Context, goalID uuid.UUID) bool {
	_, err := w.computer.Execute(ctx, progress.ComputeProgressInput{GoalID: goalID, Refresh: true})
	if err == nil {
		return true
	}
	// Deleted between listing and computing.
	if errors.Is(err, domainerror.ErrGoalNotFound) {
		return false
	}
	slog.Error("Failed to refresh goal progress", "goal_id", goalID, "error", err)
	return false
}
