// Package horoscope resolves the daily reading for a sign through the
// layered pipeline: deterministic fallback, day cache, stored readings,
// on-demand AI generation.
package horoscope

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/astrodaily/astrodaily/internal/cache"
	"github.com/astrodaily/astrodaily/internal/genai"
	"github.com/astrodaily/astrodaily/internal/generator"
	"github.com/astrodaily/astrodaily/internal/metrics"
	"github.com/astrodaily/astrodaily/internal/model"
	"github.com/astrodaily/astrodaily/internal/repository"
)

// User-facing notices for degraded generation. Both are non-blocking:
// the reading shown alongside them is the full deterministic fallback.
const (
	NoticeRateLimited      = "AI rate limit reached. Showing your classic daily predictions."
	NoticeCreditsExhausted = "AI credits exhausted. Showing your classic daily predictions."
)

// dayCache is the slice of the Redis cache the pipeline needs.
type dayCache interface {
	GetHoroscope(ctx context.Context, signID string, now time.Time) (*model.CachedHoroscope, error)
	SetHoroscope(ctx context.Context, signID string, partial model.PartialHoroscope, now time.Time) error
}

// storedReadings is the slice of the Postgres repository the pipeline needs.
type storedReadings interface {
	Get(ctx context.Context, signID, date string) (*model.StoredHoroscope, error)
}

// overlayGenerator is the on-demand generation client.
type overlayGenerator interface {
	Generate(ctx context.Context, sign *model.ZodiacSign, date time.Time) (*model.PartialHoroscope, error)
}

// Resolution is the outcome of one pipeline run. Data is always a
// complete reading; Source records which layer last contributed.
type Resolution struct {
	SignID    string              `json:"sign_id"`
	Date      string              `json:"date"` // YYYY-MM-DD (UTC)
	DayOffset int                 `json:"day_offset"`
	Data      model.HoroscopeData `json:"data"`
	AIPowered bool                `json:"ai_powered"`
	Source    string              `json:"source"`
	Notice    string              `json:"notice,omitempty"`
}

// Service runs the resolution pipeline. The cache, stored and ai layers
// are each optional; a nil layer is skipped, degrading toward the
// always-available fallback.
type Service struct {
	gen     *generator.Generator
	cache   dayCache
	stored  storedReadings
	ai      overlayGenerator
	logger  *slog.Logger
	metrics metrics.Recorder
	now     generator.Clock
}

// NewService creates a resolution service. A nil recorder defaults to
// the no-op recorder, a nil clock to time.Now.
func NewService(gen *generator.Generator, dc dayCache, stored storedReadings, ai overlayGenerator, logger *slog.Logger, recorder metrics.Recorder, now generator.Clock) *Service {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		gen:     gen,
		cache:   dc,
		stored:  stored,
		ai:      ai,
		logger:  logger.With("component", "horoscope.service"),
		metrics: recorder,
		now:     now,
	}
}

// Fallback returns the deterministic reading alone, without consulting
// any remote layer. It cannot fail and never blocks.
func (s *Service) Fallback(signID string, dayOffset int) *Resolution {
	date := s.now().UTC().AddDate(0, 0, dayOffset)
	return &Resolution{
		SignID:    signID,
		Date:      date.Format("2006-01-02"),
		DayOffset: dayOffset,
		Data:      s.gen.ForDate(signID, date),
		Source:    metrics.SourceFallback,
	}
}

// Resolve runs the full pipeline for a sign at today+dayOffset.
// It always returns a usable resolution; remote failures degrade to
// the fallback, with a notice only for the 429/402 cases.
func (s *Service) Resolve(ctx context.Context, signID string, dayOffset int) *Resolution {
	start := s.now()
	defer func() {
		s.metrics.ObserveResolveDuration(time.Since(start))
	}()

	res := s.Fallback(signID, dayOffset)
	now := start.UTC()

	// Day cache holds overlays for the current date only.
	if dayOffset == 0 && s.cache != nil {
		entry, err := s.cache.GetHoroscope(ctx, signID, now)
		switch {
		case err == nil && !entry.Data.IsEmpty():
			res.Data = entry.Data.Coalesce(res.Data)
			res.AIPowered = true
			res.Source = metrics.SourceCache
			s.metrics.IncHoroscopeServed(res.Source)
			return res
		case err != nil && !errors.Is(err, cache.ErrCacheMiss):
			s.logger.Warn("day cache lookup failed", "sign", signID, "error", err)
		}
	}

	// Stored readings apply to any date, past or future.
	if s.stored != nil {
		row, err := s.stored.Get(ctx, signID, res.Date)
		switch {
		case err == nil && !row.Partial.IsEmpty():
			res.Data = row.Partial.Coalesce(res.Data)
			res.AIPowered = true
			res.Source = metrics.SourceStored
			s.metrics.IncHoroscopeServed(res.Source)
			s.cacheOverlay(ctx, signID, dayOffset, row.Partial, now)
			return res
		case err != nil && !errors.Is(err, repository.ErrHoroscopeNotFound):
			s.logger.Warn("stored reading lookup failed", "sign", signID, "date", res.Date, "error", err)
		}
	}

	// Generation only runs for the present day and known signs.
	sign := model.SignByID(signID)
	if dayOffset == 0 && s.ai != nil && sign != nil {
		overlay, err := s.ai.Generate(ctx, sign, now)
		if err != nil {
			res.Notice = s.classifyGenerationError(signID, err)
			s.metrics.IncHoroscopeServed(res.Source)
			return res
		}
		if !overlay.IsEmpty() {
			res.Data = overlay.Coalesce(res.Data)
			res.AIPowered = true
			res.Source = metrics.SourceGenerated
			s.metrics.IncHoroscopeServed(res.Source)
			s.cacheOverlay(ctx, signID, dayOffset, *overlay, now)
			return res
		}
	}

	s.metrics.IncHoroscopeServed(res.Source)
	return res
}

// cacheOverlay writes an overlay to the day cache, best effort, only
// for the current date.
func (s *Service) cacheOverlay(ctx context.Context, signID string, dayOffset int, partial model.PartialHoroscope, now time.Time) {
	if dayOffset != 0 || s.cache == nil {
		return
	}
	if err := s.cache.SetHoroscope(ctx, signID, partial, now); err != nil {
		s.logger.Warn("day cache write failed", "sign", signID, "error", err)
	}
}

// classifyGenerationError maps a generation failure to a user notice.
// Only rate limiting and credit exhaustion are surfaced; everything
// else degrades silently.
func (s *Service) classifyGenerationError(signID string, err error) string {
	switch {
	case errors.Is(err, genai.ErrRateLimited):
		s.metrics.IncGenerationFailure(metrics.FailureRateLimited)
		s.logger.Info("generation rate limited", "sign", signID)
		return NoticeRateLimited
	case errors.Is(err, genai.ErrCreditsExhausted):
		s.metrics.IncGenerationFailure(metrics.FailureCredits)
		s.logger.Warn("generation credits exhausted", "sign", signID)
		return NoticeCreditsExhausted
	case errors.Is(err, genai.ErrMalformedResponse):
		s.metrics.IncGenerationFailure(metrics.FailureMalformed)
		s.logger.Warn("generation returned malformed content", "sign", signID, "error", err)
		return ""
	default:
		s.metrics.IncGenerationFailure(metrics.FailureOther)
		s.logger.Warn("generation failed", "sign", signID, "error", err)
		return ""
	}
}
