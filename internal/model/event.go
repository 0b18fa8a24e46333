package model

import "time"

// Well-known analytics event names emitted by the web client.
const (
	EventPageView        = "page_view"
	EventSignSelected    = "sign_selected"
	EventDayChanged      = "day_changed"
	EventCTAClicked      = "cta_clicked"
	EventHoroscopeLoaded = "horoscope_loaded"
)

// CTATalkToAstrologer is the primary conversion action.
const CTATalkToAstrologer = "talk_to_astrologer"

// AnalyticsEvent is a single append-only tracking record.
type AnalyticsEvent struct {
	ID        string         `json:"id"`       // ULID (time-sortable)
	EventID   string         `json:"event_id"` // Idempotency key (Redis stream ID)
	EventName string         `json:"event_name"`
	EventData map[string]any `json:"event_data"`
	SessionID string         `json:"session_id"`
	UserAgent string         `json:"user_agent,omitempty"` // truncated 500 chars
	CreatedAt time.Time      `json:"created_at"`
}

// AnalyticsPeriod describes the aggregation window.
type AnalyticsPeriod struct {
	Start *string `json:"start"` // RFC3339, nil for lifetime
	End   string  `json:"end"`
	Days  int     `json:"days"`
	Label string  `json:"label"` // "Today", "Lifetime", "Last N Days"
}

// AnalyticsTotals is the rollup counters block.
type AnalyticsTotals struct {
	Events                 int    `json:"events"`
	UniqueSessions         int    `json:"unique_sessions"`
	PageViews              int    `json:"page_views"`
	CTAClicks              int    `json:"cta_clicks"`
	TalkToAstrologerClicks int    `json:"talk_to_astrologer_clicks"`
	AvgSessionTime         string `json:"avg_session_time"` // "Xm Ys", "Xm", "Xs" or "0s"
	AvgSessionTimeSeconds  int    `json:"avg_session_time_seconds"`
	ConversionRate         string `json:"conversion_rate"` // "NN.NN%"
}

// SignPopularity is one entry of the ranked popular-sign list.
type SignPopularity struct {
	Sign  string `json:"sign"`
	Count int    `json:"count"`
}

// RecentEvent is one entry of the bounded live-feed slice.
type RecentEvent struct {
	Event string         `json:"event"`
	Data  map[string]any `json:"data"`
	Time  time.Time      `json:"time"`
}

// AnalyticsSummary is the derived, non-persisted aggregation view.
// It is recomputed on every request and never cached.
type AnalyticsSummary struct {
	Period         AnalyticsPeriod  `json:"period"`
	Totals         AnalyticsTotals  `json:"totals"`
	EventBreakdown map[string]int   `json:"event_breakdown"`
	PopularSigns   []SignPopularity `json:"popular_signs"`
	RecentEvents   []RecentEvent    `json:"recent_events"`
}
