package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	HoroscopesServed       map[string]uint64
	GenerationFailures     map[string]uint64
	ResolveDurationCount   uint64
	ResolveDurationTotalNs int64
	StoredUpserted         uint64
	EventsPublished        map[string]uint64
	EventsProcessed        map[string]uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	mu                     sync.Mutex
	horoscopesServed       map[string]uint64
	generationFailures     map[string]uint64
	eventsPublished        map[string]uint64
	eventsProcessed        map[string]uint64
	resolveDurationCount   uint64
	resolveDurationTotalNs int64
	storedUpserted         uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{
		horoscopesServed:   make(map[string]uint64),
		generationFailures: make(map[string]uint64),
		eventsPublished:    make(map[string]uint64),
		eventsProcessed:    make(map[string]uint64),
	}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		HoroscopesServed:       copyCounts(m.horoscopesServed),
		GenerationFailures:     copyCounts(m.generationFailures),
		ResolveDurationCount:   atomic.LoadUint64(&m.resolveDurationCount),
		ResolveDurationTotalNs: atomic.LoadInt64(&m.resolveDurationTotalNs),
		StoredUpserted:         atomic.LoadUint64(&m.storedUpserted),
		EventsPublished:        copyCounts(m.eventsPublished),
		EventsProcessed:        copyCounts(m.eventsProcessed),
	}
}

func copyCounts(src map[string]uint64) map[string]uint64 {
	dst := make(map[string]uint64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// IncHoroscopeServed increments the per-source resolution counter.
func (m *InMemoryRecorder) IncHoroscopeServed(source string) {
	m.mu.Lock()
	m.horoscopesServed[source]++
	m.mu.Unlock()
}

// IncGenerationFailure increments the per-reason failure counter.
func (m *InMemoryRecorder) IncGenerationFailure(reason string) {
	m.mu.Lock()
	m.generationFailures[reason]++
	m.mu.Unlock()
}

// ObserveResolveDuration records resolution duration.
func (m *InMemoryRecorder) ObserveResolveDuration(duration time.Duration) {
	atomic.AddUint64(&m.resolveDurationCount, 1)
	atomic.AddInt64(&m.resolveDurationTotalNs, duration.Nanoseconds())
}

// IncStoredUpserted increments the stored reading upsert counter.
func (m *InMemoryRecorder) IncStoredUpserted() {
	atomic.AddUint64(&m.storedUpserted, 1)
}

// IncAnalyticsEventPublished increments the per-status publish counter.
func (m *InMemoryRecorder) IncAnalyticsEventPublished(status string) {
	m.mu.Lock()
	m.eventsPublished[status]++
	m.mu.Unlock()
}

// IncAnalyticsEventProcessed increments the per-status process counter.
func (m *InMemoryRecorder) IncAnalyticsEventProcessed(status string) {
	m.mu.Lock()
	m.eventsProcessed[status]++
	m.mu.Unlock()
}

// ObserveAnalyticsBatchSize is not aggregated in memory.
func (m *InMemoryRecorder) ObserveAnalyticsBatchSize(size int) {}

// ObserveAnalyticsBatchDuration is not aggregated in memory.
func (m *InMemoryRecorder) ObserveAnalyticsBatchDuration(duration time.Duration) {}

// SetAnalyticsQueueDepth is not aggregated in memory.
func (m *InMemoryRecorder) SetAnalyticsQueueDepth(depth int64) {}

// ObserveAnalyticsIngestLag is not aggregated in memory.
func (m *InMemoryRecorder) ObserveAnalyticsIngestLag(lag time.Duration) {}
