package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/astrodaily/astrodaily/internal/handler/dto"
	"github.com/astrodaily/astrodaily/internal/model"
)

type fakeSummarizer struct {
	lastDays int
	summary  *model.AnalyticsSummary
	err      error
}

func (f *fakeSummarizer) Summarize(_ context.Context, days int) (*model.AnalyticsSummary, error) {
	f.lastDays = days
	if f.err != nil {
		return nil, f.err
	}
	return f.summary, nil
}

func TestSummary_QueryParam(t *testing.T) {
	t.Parallel()

	fake := &fakeSummarizer{summary: &model.AnalyticsSummary{
		Period: model.AnalyticsPeriod{Label: "Last 30 Days", Days: 30},
	}}
	h := NewAnalyticsHandler(fake, quietLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/summary?days=30", nil)
	rec := httptest.NewRecorder()
	h.Summary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if fake.lastDays != 30 {
		t.Errorf("days = %d, want 30", fake.lastDays)
	}

	var resp model.AnalyticsSummary
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Period.Label != "Last 30 Days" {
		t.Errorf("period label = %q", resp.Period.Label)
	}
}

func TestSummary_BodyDays(t *testing.T) {
	t.Parallel()

	fake := &fakeSummarizer{summary: &model.AnalyticsSummary{}}
	h := NewAnalyticsHandler(fake, quietLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analytics/summary", strings.NewReader(`{"days":-1}`))
	rec := httptest.NewRecorder()
	h.Summary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if fake.lastDays != -1 {
		t.Errorf("days = %d, want -1 (lifetime)", fake.lastDays)
	}
}

func TestSummary_QueryWinsOverBody(t *testing.T) {
	t.Parallel()

	fake := &fakeSummarizer{summary: &model.AnalyticsSummary{}}
	h := NewAnalyticsHandler(fake, quietLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analytics/summary?days=7", strings.NewReader(`{"days":90}`))
	rec := httptest.NewRecorder()
	h.Summary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if fake.lastDays != 7 {
		t.Errorf("days = %d, want query value 7", fake.lastDays)
	}
}

func TestSummary_DefaultDays(t *testing.T) {
	t.Parallel()

	fake := &fakeSummarizer{summary: &model.AnalyticsSummary{}}
	h := NewAnalyticsHandler(fake, quietLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/summary", nil)
	rec := httptest.NewRecorder()
	h.Summary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if fake.lastDays != DefaultSummaryDays {
		t.Errorf("days = %d, want default %d", fake.lastDays, DefaultSummaryDays)
	}
}

func TestSummary_InvalidDays(t *testing.T) {
	t.Parallel()

	fake := &fakeSummarizer{summary: &model.AnalyticsSummary{}}
	h := NewAnalyticsHandler(fake, quietLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/summary?days=week", nil)
	rec := httptest.NewRecorder()
	h.Summary(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp.Code != "INVALID_DAYS" {
		t.Errorf("code = %q", resp.Code)
	}
}

func TestSummary_AggregatorFailure(t *testing.T) {
	t.Parallel()

	fake := &fakeSummarizer{err: errors.New("pg down")}
	h := NewAnalyticsHandler(fake, quietLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/summary", nil)
	rec := httptest.NewRecorder()
	h.Summary(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var resp dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp.Code != "AGGREGATION_FAILED" {
		t.Errorf("code = %q", resp.Code)
	}
}
