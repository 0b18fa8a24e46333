package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/astrodaily/astrodaily/internal/analytics"
	"github.com/astrodaily/astrodaily/internal/handler/dto"
)

// publisher is the slice of the analytics publisher the handler needs.
type publisher interface {
	PublishAsync(event analytics.EventPayload)
}

// TrackHandler ingests tracking events.
// Ingestion is fire-and-forget: the endpoint answers 202 even when the
// payload is unusable, because tracking must never surface errors to
// the action it annotates.
type TrackHandler struct {
	pub    publisher
	logger *slog.Logger
	now    func() time.Time
}

// NewTrackHandler creates a new TrackHandler. A nil clock defaults to
// time.Now.
func NewTrackHandler(pub publisher, logger *slog.Logger, now func() time.Time) *TrackHandler {
	if now == nil {
		now = time.Now
	}
	return &TrackHandler{
		pub:    pub,
		logger: logger,
		now:    now,
	}
}

// Track handles POST /api/v1/analytics/events.
func (h *TrackHandler) Track(w http.ResponseWriter, r *http.Request) {
	var req dto.TrackEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("unreadable tracking payload", "error", err)
		writeJSON(w, http.StatusAccepted, dto.TrackEventResponse{Status: "accepted"})
		return
	}

	now := h.now()
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = analytics.MintSessionID(now)
	}

	event := analytics.EventPayload{
		EventName: req.EventName,
		EventData: req.EventData,
		SessionID: sessionID,
		UserAgent: analytics.TruncateUserAgent(r.UserAgent()),
		CreatedAt: now.UnixMilli(),
	}

	if err := analytics.ValidateEventPayload(event); err != nil {
		// Dropped, not rejected: the caller still gets its 202.
		h.logger.Warn("tracking event dropped", "error", err, "event_name", req.EventName)
		writeJSON(w, http.StatusAccepted, dto.TrackEventResponse{Status: "accepted", SessionID: sessionID})
		return
	}

	h.pub.PublishAsync(event)

	writeJSON(w, http.StatusAccepted, dto.TrackEventResponse{Status: "accepted", SessionID: sessionID})
}
