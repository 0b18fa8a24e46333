package horoscope

import (
	"context"
	"sync"
)

// resolver is the slice of Service the selector needs.
type resolver interface {
	Fallback(signID string, dayOffset int) *Resolution
	Resolve(ctx context.Context, signID string, dayOffset int) *Resolution
}

// Selector tracks the most recent (sign, dayOffset) selection and
// guarantees that only the newest selection's result is ever applied.
// Each Select immediately publishes the fallback reading, then runs the
// full pipeline; a result arriving after a newer Select is discarded.
// The HTTP handlers resolve per request and hold no selection state;
// Selector exists for embedding clients that keep one current reading
// while the user flips between signs and days.
type Selector struct {
	svc resolver

	mu      sync.Mutex
	gen     uint64
	current *Resolution
	loading bool
}

// NewSelector creates a selector over the given service.
func NewSelector(svc resolver) *Selector {
	return &Selector{svc: svc}
}

// Select resolves a new selection. The fallback becomes visible via
// Current before the pipeline runs, so callers always have content.
// Returns the applied resolution, or nil when a newer Select
// superseded this one while its pipeline was in flight.
func (s *Selector) Select(ctx context.Context, signID string, dayOffset int) *Resolution {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.current = s.svc.Fallback(signID, dayOffset)
	s.loading = true
	s.mu.Unlock()

	res := s.svc.Resolve(ctx, signID, dayOffset)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// Superseded: the result belongs to an earlier selection.
		return nil
	}
	s.current = res
	s.loading = false
	return res
}

// Current returns the resolution for the newest selection and whether
// its pipeline is still in flight. The resolution is at least the
// fallback from the moment Select was called.
func (s *Selector) Current() (*Resolution, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.loading
}
