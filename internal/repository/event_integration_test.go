//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/astrodaily/astrodaily/internal/model"
	"github.com/astrodaily/astrodaily/internal/testutil"
)

// ============================================================================
// Event Repository Integration Tests
// ============================================================================

func newEventTestEnv(t *testing.T) (context.Context, *EventRepository) {
	t.Helper()

	databaseURL := testutil.RequireEnv(t, "DATABASE_URL")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	repo, err := New(ctx, databaseURL)
	if err != nil {
		t.Fatalf("connect database: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() { _ = unlock() })

	if err := testutil.ResetAnalyticsSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset schema: %v", err)
	}

	return ctx, NewEventRepository(repo)
}

func TestIntegrationEventRepository_BulkInsertAndList(t *testing.T) {
	ctx, repo := newEventTestEnv(t)

	base := time.Now().UTC().Truncate(time.Second)
	events := []*model.AnalyticsEvent{
		testutil.NewTestEvent(t, model.EventPageView, "s1", base.Add(-2*time.Minute)),
		testutil.NewTestEvent(t, model.EventSignSelected, "s1", base.Add(-time.Minute)),
		testutil.NewTestEvent(t, model.EventCTAClicked, "s2", base),
	}
	events[2].EventData = map[string]any{"cta": model.CTATalkToAstrologer}

	if err := repo.BulkInsert(ctx, events); err != nil {
		t.Fatalf("BulkInsert failed: %v", err)
	}

	page, err := repo.ListPage(ctx, nil, 10, 0)
	if err != nil {
		t.Fatalf("ListPage failed: %v", err)
	}
	if len(page) != 3 {
		t.Fatalf("page size = %d, want 3", len(page))
	}

	// Newest first
	if page[0].EventName != model.EventCTAClicked {
		t.Errorf("first event = %q, want newest", page[0].EventName)
	}
	if cta, _ := page[0].EventData["cta"].(string); cta != model.CTATalkToAstrologer {
		t.Errorf("event_data cta = %q", cta)
	}
}

func TestIntegrationEventRepository_BulkInsertIdempotent(t *testing.T) {
	ctx, repo := newEventTestEnv(t)

	event := testutil.NewTestEvent(t, model.EventPageView, "s1", time.Now().UTC())

	if err := repo.BulkInsert(ctx, []*model.AnalyticsEvent{event}); err != nil {
		t.Fatalf("BulkInsert (first) failed: %v", err)
	}

	// A reclaimed stream message is parsed again with a fresh ULID but
	// keeps its stream message ID, so only event_id can dedupe it.
	redelivered := testutil.NewTestEvent(t, model.EventPageView, "s1", event.CreatedAt)
	redelivered.EventID = event.EventID
	if err := repo.BulkInsert(ctx, []*model.AnalyticsEvent{redelivered}); err != nil {
		t.Fatalf("BulkInsert (redelivery) failed: %v", err)
	}

	page, err := repo.ListPage(ctx, nil, 10, 0)
	if err != nil {
		t.Fatalf("ListPage failed: %v", err)
	}
	if len(page) != 1 {
		t.Errorf("rows = %d, want 1 after duplicate insert", len(page))
	}
}

func TestIntegrationEventRepository_ListPageWindowAndPaging(t *testing.T) {
	ctx, repo := newEventTestEnv(t)

	base := time.Now().UTC().Truncate(time.Second)
	var events []*model.AnalyticsEvent
	for i := 0; i < 5; i++ {
		events = append(events, testutil.NewTestEvent(t, model.EventPageView, "s1", base.Add(time.Duration(-i)*time.Hour)))
	}
	if err := repo.BulkInsert(ctx, events); err != nil {
		t.Fatalf("BulkInsert failed: %v", err)
	}

	// Window: only events within the last 2.5 hours (3 rows).
	since := base.Add(-150 * time.Minute)
	windowed, err := repo.ListPage(ctx, &since, 10, 0)
	if err != nil {
		t.Fatalf("ListPage (windowed) failed: %v", err)
	}
	if len(windowed) != 3 {
		t.Errorf("windowed rows = %d, want 3", len(windowed))
	}

	// Paging: limit 2 offset 2 over the full set.
	page, err := repo.ListPage(ctx, nil, 2, 2)
	if err != nil {
		t.Fatalf("ListPage (paged) failed: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("paged rows = %d, want 2", len(page))
	}
	if !page[0].CreatedAt.Equal(base.Add(-2 * time.Hour)) {
		t.Errorf("page offset wrong: first row at %v", page[0].CreatedAt)
	}
}
