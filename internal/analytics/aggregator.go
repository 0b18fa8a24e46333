package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/astrodaily/astrodaily/internal/model"
)

const (
	// DefaultPageSize is how many events one storage page holds.
	DefaultPageSize = 1000

	// DefaultMaxPages bounds the total events scanned per summary.
	// Lifetime queries stop here rather than walking the whole table.
	DefaultMaxPages = 100

	// TopSignsLimit caps the ranked popular-sign list.
	TopSignsLimit = 12

	// RecentEventsLimit caps the live-feed slice.
	RecentEventsLimit = 20

	// minSessionDuration excludes bounce sessions from the average.
	minSessionDuration = time.Second
)

// EventStore is the read side of the event table the aggregator needs.
type EventStore interface {
	ListPage(ctx context.Context, since *time.Time, limit, offset int) ([]*model.AnalyticsEvent, error)
}

// Aggregator computes on-demand summaries over the event store.
// Each Summarize call is read-only and independent; concurrent calls
// need no coordination.
type Aggregator struct {
	store    EventStore
	logger   *slog.Logger
	pageSize int
	maxPages int
	now      func() time.Time
}

// NewAggregator creates an aggregator. A nil clock defaults to time.Now.
func NewAggregator(store EventStore, logger *slog.Logger, now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		store:    store,
		logger:   logger.With("component", "analytics.aggregator"),
		pageSize: DefaultPageSize,
		maxPages: DefaultMaxPages,
		now:      now,
	}
}

// SetPageSize overrides the default storage page size.
func (a *Aggregator) SetPageSize(size int) {
	if size > 0 {
		a.pageSize = size
	}
}

// SetMaxPages overrides the default page cap.
func (a *Aggregator) SetMaxPages(pages int) {
	if pages > 0 {
		a.maxPages = pages
	}
}

// Summarize rolls the selected window up into a summary.
// days == 0 covers start of today (UTC) through now; days < 0 covers
// the entire history; days > 0 covers N days before start of today
// through now. Any storage error aborts the whole aggregation.
func (a *Aggregator) Summarize(ctx context.Context, days int) (*model.AnalyticsSummary, error) {
	now := a.now().UTC()
	since, label := window(now, days)

	events, err := a.fetchPages(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}

	summary := rollup(events)
	summary.Period = model.AnalyticsPeriod{
		End:   now.Format(time.RFC3339),
		Days:  days,
		Label: label,
	}
	if since != nil {
		start := since.Format(time.RFC3339)
		summary.Period.Start = &start
	}

	a.logger.Debug("summary computed",
		"days", days,
		"events", summary.Totals.Events,
		"sessions", summary.Totals.UniqueSessions,
	)

	return summary, nil
}

// window derives the lower time bound and display label for a days
// selector. A nil bound means lifetime.
func window(now time.Time, days int) (*time.Time, string) {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case days < 0:
		return nil, "Lifetime"
	case days == 0:
		return &startOfToday, "Today"
	default:
		since := startOfToday.AddDate(0, 0, -days)
		return &since, fmt.Sprintf("Last %d Days", days)
	}
}

// fetchPages concatenates newest-first pages until a partial page or
// the page cap. The cap bounds worst-case cost for lifetime queries.
func (a *Aggregator) fetchPages(ctx context.Context, since *time.Time) ([]*model.AnalyticsEvent, error) {
	var events []*model.AnalyticsEvent
	for page := 0; page < a.maxPages; page++ {
		batch, err := a.store.ListPage(ctx, since, a.pageSize, page*a.pageSize)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		events = append(events, batch...)
		if len(batch) < a.pageSize {
			return events, nil
		}
	}
	a.logger.Warn("page cap hit, summary truncated", "pages", a.maxPages)
	return events, nil
}

// sessionSpan tracks the first and last event time seen for a session.
type sessionSpan struct {
	first time.Time
	last  time.Time
}

// rollup computes the full summary body in a single pass over a
// newest-first event list.
func rollup(events []*model.AnalyticsEvent) *model.AnalyticsSummary {
	breakdown := make(map[string]int)
	signCounts := make(map[string]int)
	sessions := make(map[string]*sessionSpan)

	var pageViews, ctaClicks, talkClicks int

	for _, event := range events {
		breakdown[event.EventName]++

		switch event.EventName {
		case model.EventPageView:
			pageViews++
		case model.EventCTAClicked:
			ctaClicks++
			if ctaName(event.EventData) == model.CTATalkToAstrologer {
				talkClicks++
			}
		case model.EventHoroscopeLoaded:
			if sign := signName(event.EventData); sign != "" {
				signCounts[sign]++
			}
		}

		if event.SessionID != "" {
			span, ok := sessions[event.SessionID]
			if !ok {
				sessions[event.SessionID] = &sessionSpan{first: event.CreatedAt, last: event.CreatedAt}
				continue
			}
			if event.CreatedAt.Before(span.first) {
				span.first = event.CreatedAt
			}
			if event.CreatedAt.After(span.last) {
				span.last = event.CreatedAt
			}
		}
	}

	avgSeconds := averageSessionSeconds(sessions)

	recent := make([]model.RecentEvent, 0, RecentEventsLimit)
	for _, event := range events {
		if len(recent) == RecentEventsLimit {
			break
		}
		recent = append(recent, model.RecentEvent{
			Event: event.EventName,
			Data:  event.EventData,
			Time:  event.CreatedAt,
		})
	}

	return &model.AnalyticsSummary{
		Totals: model.AnalyticsTotals{
			Events:                 len(events),
			UniqueSessions:         len(sessions),
			PageViews:              pageViews,
			CTAClicks:              ctaClicks,
			TalkToAstrologerClicks: talkClicks,
			AvgSessionTime:         formatSeconds(avgSeconds),
			AvgSessionTimeSeconds:  avgSeconds,
			ConversionRate:         conversionRate(talkClicks, pageViews),
		},
		EventBreakdown: breakdown,
		PopularSigns:   rankSigns(signCounts),
		RecentEvents:   recent,
	}
}

// averageSessionSeconds averages first-to-last spans, excluding
// sessions shorter than one second as bounce noise.
func averageSessionSeconds(sessions map[string]*sessionSpan) int {
	var total float64
	var counted int
	for _, span := range sessions {
		duration := span.last.Sub(span.first)
		if duration < minSessionDuration {
			continue
		}
		total += duration.Seconds()
		counted++
	}
	if counted == 0 {
		return 0
	}
	return int(math.Round(total / float64(counted)))
}

// conversionRate formats talk_to_astrologer clicks per page view.
func conversionRate(talkClicks, pageViews int) string {
	if pageViews == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(talkClicks)/float64(pageViews)*100)
}

// rankSigns orders sign counts descending, ties broken by name so the
// ranking is stable across runs.
func rankSigns(counts map[string]int) []model.SignPopularity {
	ranked := make([]model.SignPopularity, 0, len(counts))
	for sign, count := range counts {
		ranked = append(ranked, model.SignPopularity{Sign: sign, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Sign < ranked[j].Sign
	})
	if len(ranked) > TopSignsLimit {
		ranked = ranked[:TopSignsLimit]
	}
	return ranked
}

// formatSeconds renders a duration like "1m 30s", "2m", "45s" or "0s".
func formatSeconds(seconds int) string {
	if seconds <= 0 {
		return "0s"
	}
	minutes := seconds / 60
	rest := seconds % 60
	switch {
	case minutes == 0:
		return fmt.Sprintf("%ds", rest)
	case rest == 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%dm %ds", minutes, rest)
	}
}

// ctaName extracts the CTA tag from an event payload.
func ctaName(data map[string]any) string {
	for _, key := range []string{"cta", "action"} {
		if v, ok := data[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// signName extracts the sign identifier from an event payload.
func signName(data map[string]any) string {
	for _, key := range []string{"sign_id", "sign"} {
		if v, ok := data[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
