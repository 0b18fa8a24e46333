// Package testutil provides helpers for integration tests that need a
// real Postgres or Redis instance.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"

	"github.com/astrodaily/astrodaily/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

const advisoryLockID int64 = 420421

// AcquireDBLock grabs a global advisory lock to serialize DB tests.
func AcquireDBLock(ctx context.Context, pool *pgxpool.Pool) (func() error, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire advisory lock: %w", err)
	}

	unlock := func() error {
		defer conn.Release()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
			return fmt.Errorf("release advisory lock: %w", err)
		}
		return nil
	}

	return unlock, nil
}

// ResetHoroscopesSchema drops and recreates the stored_horoscopes schema.
func ResetHoroscopesSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return resetSchema(ctx, pool, "000001_stored_horoscopes")
}

// ResetAnalyticsSchema drops and recreates the analytics_events schema.
func ResetAnalyticsSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return resetSchema(ctx, pool, "000002_analytics_events")
}

func resetSchema(ctx context.Context, pool *pgxpool.Pool, name string) error {
	root, err := ProjectRoot()
	if err != nil {
		return err
	}

	downPath := filepath.Join(root, "migrations", name+".down.sql")
	upPath := filepath.Join(root, "migrations", name+".up.sql")

	downSQL, err := os.ReadFile(downPath)
	if err != nil {
		return fmt.Errorf("read down migration: %w", err)
	}
	if _, err := pool.Exec(ctx, string(downSQL)); err != nil {
		return fmt.Errorf("apply down migration: %w", err)
	}

	upSQL, err := os.ReadFile(upPath)
	if err != nil {
		return fmt.Errorf("read up migration: %w", err)
	}
	if _, err := pool.Exec(ctx, string(upSQL)); err != nil {
		return fmt.Errorf("apply up migration: %w", err)
	}

	return nil
}

// FlushRedis clears the current Redis database.
func FlushRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushDB(ctx).Err()
}

// ProjectRoot returns the project root directory.
func ProjectRoot() (string, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("failed to resolve testutil path")
	}
	root := filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
	return root, nil
}

// ============================================================================
// Test Data Factories
// ============================================================================

// NewTestStoredHoroscope creates a stored overlay with sensible defaults.
func NewTestStoredHoroscope(t testing.TB, signID, date string) *model.StoredHoroscope {
	t.Helper()
	now := time.Now().UTC()
	return &model.StoredHoroscope{
		SignID: signID,
		Date:   date,
		Partial: model.PartialHoroscope{
			GeneralReading: "Curated reading for " + signID,
			LoveText:       "Curated love text",
			Dos:            []string{"meditate"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

var eventSeq atomic.Int64

// NewTestEvent creates an analytics event with sensible defaults.
// EventID mimics a Redis stream message ID and is unique per call.
func NewTestEvent(t testing.TB, eventName, sessionID string, at time.Time) *model.AnalyticsEvent {
	t.Helper()
	return &model.AnalyticsEvent{
		ID:        ulid.MustNew(ulid.Timestamp(at), ulid.DefaultEntropy()).String(),
		EventID:   fmt.Sprintf("%d-%d", at.UnixMilli(), eventSeq.Add(1)),
		EventName: eventName,
		EventData: map[string]any{},
		SessionID: sessionID,
		UserAgent: "testutil/1.0",
		CreatedAt: at.UTC(),
	}
}

// UniqueSessionID generates a unique session ID for tests.
func UniqueSessionID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
