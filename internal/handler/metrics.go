package handler

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/astrodaily/astrodaily/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeLabeledCounts(w, "astrodaily_horoscopes_served_total", "source", snap.HoroscopesServed)
	writeLabeledCounts(w, "astrodaily_generation_failures_total", "reason", snap.GenerationFailures)

	writeMetric(w, "astrodaily_resolve_duration_seconds_count %d\n", snap.ResolveDurationCount)
	writeMetric(w, "astrodaily_resolve_duration_seconds_sum %.6f\n", float64(snap.ResolveDurationTotalNs)/1e9)

	writeMetric(w, "astrodaily_stored_horoscopes_upserted_total %d\n", snap.StoredUpserted)

	writeLabeledCounts(w, "astrodaily_analytics_events_published_total", "status", snap.EventsPublished)
	writeLabeledCounts(w, "astrodaily_analytics_events_processed_total", "status", snap.EventsProcessed)
}

// writeLabeledCounts emits one line per label value, sorted for stable
// scrape output.
func writeLabeledCounts(w http.ResponseWriter, name, label string, counts map[string]uint64) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		writeMetric(w, "%s{%s=%q} %d\n", name, label, k, counts[k])
	}
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
