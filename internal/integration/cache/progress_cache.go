// Package cache provides the redis-backed goal progress cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

const (
	keyPrefix     = "progress:goal:"
	versionSuffix = ":version"
)

var errStaleProgress = errors.New("progress computed from a superseded version")

// ProgressCache implements adapter.ProgressCache on redis. Entries are JSON
// encoded and expire after the configured TTL.
type ProgressCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProgressCache creates a new ProgressCache over an existing client.
func NewProgressCache(client *redis.Client, ttl time.Duration) *ProgressCache {
	return &ProgressCache{client: client, ttl: ttl}
}

// Connect parses a redis URL, applies the password and database overrides and
// checks the server is reachable.
func Connect(ctx context.Context, url, password string, db int) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	if db != 0 {
		opts.DB = db
	}
	opts.DialTimeout = 5 * time.Second

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// Get returns the cached progress of a goal, or nil on a miss.
func (c *ProgressCache) Get(ctx context.Context, goalID uuid.UUID) (*valueobject.GoalProgress, error) {
	raw, err := c.client.Get(ctx, key(goalID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached progress: %w", err)
	}

	var progress valueobject.GoalProgress
	if err := json.Unmarshal(raw, &progress); err != nil {
		// A stale or foreign payload is treated as a miss and overwritten on the next Set.
		return nil, nil
	}
	return &progress, nil
}

// Version returns the invalidation counter of a goal, 0 before the first invalidation.
func (c *ProgressCache) Version(ctx context.Context, goalID uuid.UUID) (int64, error) {
	version, err := c.client.Get(ctx, versionKey(goalID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read progress version: %w", err)
	}
	return version, nil
}

// Set stores the progress of a goal unless its version moved past version. The
// version key is watched so an invalidation racing the write aborts it.
func (c *ProgressCache) Set(ctx context.Context, progress *valueobject.GoalProgress, version int64) error {
	raw, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}

	vKey := versionKey(progress.GoalID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, vKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleProgress
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key(progress.GoalID), raw, c.ttl)
			return nil
		})
		return err
	}, vKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, errStaleProgress), errors.Is(err, redis.TxFailedErr):
		slog.Debug("Skipped stale progress write", "goal_id", progress.GoalID, "version", version)
		return nil
	}
	return fmt.Errorf("failed to write cached progress: %w", err)
}

// Invalidate drops the cached progress of the given goals and bumps their versions.
func (c *ProgressCache) Invalidate(ctx context.Context, goalIDs ...uuid.UUID) error {
	if len(goalIDs) == 0 {
		return nil
	}
	keys := make([]string, len(goalIDs))
	for i, id := range goalIDs {
		keys[i] = key(id)
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		for _, id := range goalIDs {
			pipe.Incr(ctx, versionKey(id))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate cached progress: %w", err)
	}
	return nil
}

func key(goalID uuid.UUID) string {
	return keyPrefix + goalID.String()
}

func versionKey(goalID uuid.UUID) string {
	return key(goalID) + versionSuffix
}

// NoopCache is used when no redis URL is configured. Every read misses.
type NoopCache struct{}

// Get always misses.
func (NoopCache) Get(context.Context, uuid.UUID) (*valueobject.GoalProgress, error) {
	return nil, nil
}

// Version is always 0.
func (NoopCache) Version(context.Context, uuid.UUID) (int64, error) { return 0, nil }

// Set discards the progress.
func (NoopCache) Set(context.Context, *valueobject.GoalProgress, int64) error { return nil }

// Invalidate does nothing.
func (NoopCache) Invalidate(context.Context, ...uuid.UUID) error { return nil }

var (
	_ adapter.ProgressCache = (*ProgressCache)(nil)
	_ adapter.ProgressCache = NoopCache{}
)
