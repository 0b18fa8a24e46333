package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/astrodaily/astrodaily/internal/model"
)

// EventRepository provides database access for analytics events.
// Events are append-only: inserted by the ingestion worker, read only
// by the aggregator.
type EventRepository struct {
	repo *Repository
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(repo *Repository) *EventRepository {
	return &EventRepository{repo: repo}
}

// BulkInsert inserts multiple analytics events. The unique event_id
// column carries the Redis stream message ID, so a redelivered message
// hits ON CONFLICT and inserts nothing.
func (r *EventRepository) BulkInsert(ctx context.Context, events []*model.AnalyticsEvent) error {
	if len(events) == 0 {
		return nil
	}

	batch := &pgx.Batch{}

	query := `
		INSERT INTO analytics_events (
			id, event_id, event_name, event_data, session_id, user_agent, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (event_id) DO NOTHING
	`

	for _, event := range events {
		data, err := json.Marshal(event.EventData)
		if err != nil {
			return fmt.Errorf("marshal event data: %w", err)
		}
		batch.Queue(query,
			event.ID,
			event.EventID,
			event.EventName,
			data,
			event.SessionID,
			nullableString(event.UserAgent),
			event.CreatedAt,
		)
	}

	results := r.repo.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(events); i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("batch insert event %d: %w", i, err)
		}
	}

	return nil
}

// ListPage fetches one page of events ordered newest-first.
// A nil since means no lower time bound (lifetime queries).
// The aggregator drives this page by page; the store-side LIMIT is the
// reason pagination exists at all.
func (r *EventRepository) ListPage(ctx context.Context, since *time.Time, limit, offset int) ([]*model.AnalyticsEvent, error) {
	query := `
		SELECT id, event_name, COALESCE(event_data, '{}'::jsonb),
		       COALESCE(session_id, ''), COALESCE(user_agent, ''), created_at
		FROM analytics_events
	`
	args := []any{}
	if since != nil {
		query += ` WHERE created_at >= $1`
		args = append(args, since.UTC())
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.repo.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query analytics events: %w", err)
	}
	defer rows.Close()

	events := make([]*model.AnalyticsEvent, 0, limit)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan analytics event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analytics events: %w", err)
	}

	return events, nil
}

// scanEvent scans a row into an AnalyticsEvent.
func scanEvent(rows pgx.Rows) (*model.AnalyticsEvent, error) {
	var event model.AnalyticsEvent
	var dataJSON []byte

	err := rows.Scan(
		&event.ID,
		&event.EventName,
		&dataJSON,
		&event.SessionID,
		&event.UserAgent,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(dataJSON) > 0 {
		if err := json.Unmarshal(dataJSON, &event.EventData); err != nil {
			// Malformed payloads don't sink the whole page; the event
			// still counts toward totals.
			event.EventData = map[string]any{}
		}
	}

	return &event, nil
}
