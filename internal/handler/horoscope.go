package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/astrodaily/astrodaily/internal/handler/dto"
	"github.com/astrodaily/astrodaily/internal/horoscope"
	"github.com/astrodaily/astrodaily/internal/model"
)

// maxDayOffset bounds the day query parameter. A year in either
// direction covers every reading the web client can ask for.
const maxDayOffset = 366

// HoroscopeHandler handles HTTP requests for readings.
type HoroscopeHandler struct {
	svc    *horoscope.Service
	logger *slog.Logger
}

// NewHoroscopeHandler creates a new HoroscopeHandler.
func NewHoroscopeHandler(svc *horoscope.Service, logger *slog.Logger) *HoroscopeHandler {
	return &HoroscopeHandler{
		svc:    svc,
		logger: logger,
	}
}

// Signs handles GET /api/v1/signs.
func (h *HoroscopeHandler) Signs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.SignListResponse{Data: model.Signs})
}

// Get handles GET /api/v1/horoscope/{signID}.
// The optional day query parameter offsets the target date; 0 (today)
// is the default, negative values look back.
func (h *HoroscopeHandler) Get(w http.ResponseWriter, r *http.Request) {
	signID := chi.URLParam(r, "signID")
	if !model.IsValidSignID(signID) {
		h.writeError(w, http.StatusBadRequest, "INVALID_SIGN", "Unknown zodiac sign")
		return
	}

	dayOffset := 0
	if day := r.URL.Query().Get("day"); day != "" {
		parsed, err := strconv.Atoi(day)
		if err != nil || parsed < -maxDayOffset || parsed > maxDayOffset {
			h.writeError(w, http.StatusBadRequest, "INVALID_DAY", "day must be an integer within one year")
			return
		}
		dayOffset = parsed
	}

	res := h.svc.Resolve(r.Context(), signID, dayOffset)

	h.logger.Debug("horoscope served",
		"sign", signID,
		"day_offset", dayOffset,
		"source", res.Source,
		"ai_powered", res.AIPowered,
	)

	writeJSON(w, http.StatusOK, dto.ToHoroscopeResponse(res))
}

// writeError writes an error response.
func (h *HoroscopeHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
