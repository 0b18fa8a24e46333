package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/astrodaily/astrodaily/internal/handler/dto"
	"github.com/astrodaily/astrodaily/internal/model"
)

// DefaultSummaryDays is the window used when the caller picks none.
const DefaultSummaryDays = 7

// summarizer is the slice of the aggregator the handler needs.
type summarizer interface {
	Summarize(ctx context.Context, days int) (*model.AnalyticsSummary, error)
}

// AnalyticsHandler serves the admin summary endpoint.
type AnalyticsHandler struct {
	agg    summarizer
	logger *slog.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(agg summarizer, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		agg:    agg,
		logger: logger,
	}
}

// Summary handles GET and POST /api/v1/analytics/summary.
// The window comes from the days query parameter or the JSON body;
// the query string wins when both are present.
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	days, ok := h.parseDays(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error: "days must be an integer",
			Code:  "INVALID_DAYS",
		})
		return
	}

	summary, err := h.agg.Summarize(r.Context(), days)
	if err != nil {
		h.logger.Error("aggregation failed", "days", days, "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute analytics summary",
			Code:  "AGGREGATION_FAILED",
		})
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// parseDays resolves the window selector. Returns false only for a
// present but unparseable value.
func (h *AnalyticsHandler) parseDays(r *http.Request) (int, bool) {
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return 0, false
		}
		return days, true
	}

	if r.Body != nil && r.Method == http.MethodPost {
		var req dto.SummaryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.Days != nil {
			return *req.Days, true
		}
	}

	return DefaultSummaryDays, true
}
