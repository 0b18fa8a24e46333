package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/astrodaily/astrodaily/internal/handler/dto"
	"github.com/astrodaily/astrodaily/internal/metrics"
	"github.com/astrodaily/astrodaily/internal/model"
)

// horoscopeStore is the write side of the stored-readings repository.
type horoscopeStore interface {
	Upsert(ctx context.Context, s *model.StoredHoroscope) error
}

// cacheInvalidator drops a sign's day-cache entry after an edit.
type cacheInvalidator interface {
	DeleteHoroscope(ctx context.Context, signID string) error
}

// AdminHandler serves the editorial upsert endpoint.
type AdminHandler struct {
	store   horoscopeStore
	cache   cacheInvalidator
	logger  *slog.Logger
	metrics metrics.Recorder
	now     func() time.Time
}

// NewAdminHandler creates a new AdminHandler. The cache may be nil.
func NewAdminHandler(store horoscopeStore, cache cacheInvalidator, logger *slog.Logger, recorder metrics.Recorder, now func() time.Time) *AdminHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if now == nil {
		now = time.Now
	}
	return &AdminHandler{
		store:   store,
		cache:   cache,
		logger:  logger,
		metrics: recorder,
		now:     now,
	}
}

// UpsertHoroscope handles PUT /api/v1/admin/horoscopes/{signID}/{date}.
// The body is an overlay; readers coalesce it over the deterministic
// fallback, so partial bodies are fine.
func (h *AdminHandler) UpsertHoroscope(w http.ResponseWriter, r *http.Request) {
	signID := chi.URLParam(r, "signID")
	if !model.IsValidSignID(signID) {
		h.writeError(w, http.StatusBadRequest, "INVALID_SIGN", "Unknown zodiac sign")
		return
	}

	date := chi.URLParam(r, "date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_DATE", "Date must be YYYY-MM-DD")
		return
	}

	var req dto.UpsertHoroscopeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	partial := req.ToPartial()
	if partial.IsEmpty() {
		h.writeError(w, http.StatusBadRequest, "EMPTY_OVERLAY", "At least one field is required")
		return
	}

	stored := &model.StoredHoroscope{
		SignID:  signID,
		Date:    date,
		Partial: partial,
	}
	if err := h.store.Upsert(r.Context(), stored); err != nil {
		h.logger.Error("stored horoscope upsert failed", "sign", signID, "date", date, "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	// An edit for today must evict the day cache, or readers keep the
	// previous overlay until midnight.
	if h.cache != nil && date == h.now().UTC().Format("2006-01-02") {
		if err := h.cache.DeleteHoroscope(r.Context(), signID); err != nil {
			h.logger.Warn("day cache invalidation failed", "sign", signID, "error", err)
		}
	}

	h.metrics.IncStoredUpserted()
	h.logger.Info("stored horoscope upserted", "sign", signID, "date", date)

	writeJSON(w, http.StatusOK, stored)
}

// writeError writes an error response.
func (h *AdminHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
