// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Resolution source labels passed to IncHoroscopeServed.
const (
	SourceFallback  = "fallback"
	SourceCache     = "cache"
	SourceStored    = "stored"
	SourceGenerated = "generated"
)

// Generation failure labels passed to IncGenerationFailure.
const (
	FailureRateLimited = "rate_limited"
	FailureCredits     = "credits_exhausted"
	FailureMalformed   = "malformed"
	FailureOther       = "error"
)

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Horoscope resolution metrics
	IncHoroscopeServed(source string)
	IncGenerationFailure(reason string)
	ObserveResolveDuration(duration time.Duration)

	// Stored reading management metrics
	IncStoredUpserted()

	// Analytics pipeline metrics
	IncAnalyticsEventPublished(status string) // status: "success" or "dropped"
	IncAnalyticsEventProcessed(status string) // status: "success", "failed", "skipped"
	ObserveAnalyticsBatchSize(size int)
	ObserveAnalyticsBatchDuration(duration time.Duration)
	SetAnalyticsQueueDepth(depth int64)
	ObserveAnalyticsIngestLag(lag time.Duration)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
