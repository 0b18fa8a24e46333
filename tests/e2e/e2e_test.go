//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

type horoscopeResponse struct {
	Sign struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"sign"`
	Date      string `json:"date"`
	DayOffset int    `json:"day_offset"`
	Data      struct {
		Mood           string   `json:"mood"`
		LuckyNumber    int      `json:"lucky_number"`
		GeneralReading string   `json:"general_reading"`
		Dos            []string `json:"dos"`
	} `json:"data"`
	AIPowered bool   `json:"ai_powered"`
	Source    string `json:"source"`
	Notice    string `json:"notice"`
}

type trackResponse struct {
	Status    string `json:"status"`
	SessionID string `json:"session_id"`
}

type summaryResponse struct {
	Period struct {
		Label string `json:"label"`
		Days  int    `json:"days"`
	} `json:"period"`
	Totals struct {
		Events         int    `json:"events"`
		UniqueSessions int    `json:"unique_sessions"`
		PageViews      int    `json:"page_views"`
		ConversionRate string `json:"conversion_rate"`
	} `json:"totals"`
	EventBreakdown map[string]int `json:"event_breakdown"`
}

func TestE2ESmoke(t *testing.T) {
	baseURL := envOrDefault("ASTRODAILY_BASE_URL", "http://localhost:8080")
	adminKey := os.Getenv("TEST_ADMIN_KEY")
	if adminKey == "" {
		t.Fatalf("TEST_ADMIN_KEY is required for e2e tests (the server must run with its hash)")
	}

	// Public surface: every sign resolves to a complete reading.
	var reading horoscopeResponse
	status := doJSON(t, http.MethodGet, baseURL+"/api/v1/horoscope/leo", "", nil, &reading)
	if status != http.StatusOK {
		t.Fatalf("expected 200 from horoscope, got %d", status)
	}
	if reading.Sign.ID != "leo" || reading.Data.GeneralReading == "" {
		t.Fatalf("incomplete reading: %+v", reading)
	}
	if reading.Data.LuckyNumber < 1 || reading.Data.LuckyNumber > 99 {
		t.Fatalf("lucky number %d out of range", reading.Data.LuckyNumber)
	}

	// Same day, same reading.
	var again horoscopeResponse
	doJSON(t, http.MethodGet, baseURL+"/api/v1/horoscope/leo", "", nil, &again)
	if again.Data.LuckyNumber != reading.Data.LuckyNumber {
		t.Fatalf("same-day readings differ: %d vs %d", again.Data.LuckyNumber, reading.Data.LuckyNumber)
	}

	// Track a couple of events and wait for the worker to drain them
	// into the summary.
	sessionID := trackEvent(t, baseURL, "", "page_view", map[string]any{"sign": "leo"})
	trackEvent(t, baseURL, sessionID, "cta_clicked", map[string]any{"cta": "talk_to_astrologer"})

	waitForSummary(t, baseURL, adminKey, sessionID)
}

func TestE2EAdminOverlay(t *testing.T) {
	baseURL := envOrDefault("ASTRODAILY_BASE_URL", "http://localhost:8080")
	adminKey := os.Getenv("TEST_ADMIN_KEY")
	if adminKey == "" {
		t.Fatalf("TEST_ADMIN_KEY is required for e2e tests")
	}

	today := time.Now().UTC().Format("2006-01-02")
	marker := fmt.Sprintf("Editorial reading %d", time.Now().UnixNano())

	payload := map[string]any{
		"general_reading": marker,
		"dos":             []string{"check the stars"},
	}
	status := doJSON(t, http.MethodPut,
		fmt.Sprintf("%s/api/v1/admin/horoscopes/virgo/%s", baseURL, today),
		adminKey, payload, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 from upsert, got %d", status)
	}

	// The overlay must be visible on the next read: the upsert evicts
	// today's cache entry.
	var reading horoscopeResponse
	status = doJSON(t, http.MethodGet, baseURL+"/api/v1/horoscope/virgo", "", nil, &reading)
	if status != http.StatusOK {
		t.Fatalf("expected 200 from horoscope, got %d", status)
	}
	if reading.Data.GeneralReading != marker {
		t.Fatalf("overlay not visible: got %q", reading.Data.GeneralReading)
	}
	// Fields the overlay omits stay deterministic.
	if reading.Data.Mood == "" || reading.Data.LuckyNumber == 0 {
		t.Fatalf("overlay wiped deterministic fields: %+v", reading.Data)
	}
}

func TestE2EAdminAuthRequired(t *testing.T) {
	baseURL := envOrDefault("ASTRODAILY_BASE_URL", "http://localhost:8080")

	client := &http.Client{Timeout: 10 * time.Second}

	// No key
	resp, err := client.Get(baseURL + "/api/v1/analytics/summary")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized && resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 401 (or 503 when admin disabled), got %d", resp.StatusCode)
	}

	// Wrong key: same uniform rejection, and the key must not be echoed.
	fakeKey := "adm_" + strings.Repeat("a", 40)
	req, _ := http.NewRequest(http.MethodGet, baseURL+"/api/v1/analytics/summary", nil)
	req.Header.Set("Authorization", "Bearer "+fakeKey)

	resp2, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp2.Body)
	resp2.Body.Close()

	if resp2.StatusCode == http.StatusOK {
		t.Fatalf("summary served with an invalid admin key")
	}
	if strings.Contains(string(body), fakeKey) {
		t.Error("SECURITY: error response leaked the presented key")
	}
}

func TestE2ETrackingRateLimit(t *testing.T) {
	baseURL := envOrDefault("ASTRODAILY_BASE_URL", "http://localhost:8080")
	if os.Getenv("E2E_RATELIMIT") == "" {
		t.Skip("E2E_RATELIMIT not set; requires RATE_LIMIT_TRACK_RPS/BURST tuned low on the server")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	payload := []byte(`{"event_name":"page_view","session_id":"e2e-ratelimit"}`)

	var rateLimited bool
	for i := 0; i < 100; i++ {
		resp, err := client.Post(baseURL+"/api/v1/analytics/events", "application/json", bytes.NewReader(payload))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		code := resp.StatusCode
		retryAfter := resp.Header.Get("Retry-After")
		resp.Body.Close()

		if code == http.StatusTooManyRequests {
			rateLimited = true
			if retryAfter == "" {
				t.Error("missing Retry-After header on 429 response")
			}
			break
		}
	}

	if !rateLimited {
		t.Fatalf("expected 429 after burst, but never hit the rate limit")
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func trackEvent(t *testing.T, baseURL, sessionID, eventName string, data map[string]any) string {
	t.Helper()

	payload := map[string]any{
		"event_name": eventName,
		"event_data": data,
	}
	if sessionID != "" {
		payload["session_id"] = sessionID
	}

	var resp trackResponse
	status := doJSON(t, http.MethodPost, baseURL+"/api/v1/analytics/events", "", payload, &resp)
	if status != http.StatusAccepted {
		t.Fatalf("expected 202 from track, got %d", status)
	}
	if resp.SessionID == "" {
		t.Fatalf("track response missing session_id")
	}
	return resp.SessionID
}

func waitForSummary(t *testing.T, baseURL, adminKey, sessionID string) {
	t.Helper()

	endpoint := baseURL + "/api/v1/analytics/summary?days=0"

	deadline := time.Now().Add(15 * time.Second)
	for time.Now().Before(deadline) {
		var resp summaryResponse
		status := doJSON(t, http.MethodGet, endpoint, adminKey, nil, &resp)
		if status == http.StatusOK && resp.Totals.PageViews >= 1 && resp.EventBreakdown["cta_clicked"] >= 1 {
			if resp.Period.Label != "Today" {
				t.Fatalf("expected Today window, got %q", resp.Period.Label)
			}
			return
		}
		time.Sleep(250 * time.Millisecond)
	}

	t.Fatalf("summary did not reflect tracked events in time (session %s)", sessionID)
}

func doJSON(t *testing.T, method, url, adminKey string, body any, out any) int {
	t.Helper()

	var buf io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		buf = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, buf)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if strings.TrimSpace(adminKey) != "" {
		req.Header.Set("Authorization", "Bearer "+adminKey)
	}

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		decoder := json.NewDecoder(resp.Body)
		if err := decoder.Decode(out); err != nil && resp.ContentLength != 0 {
			t.Fatalf("decode response: %v", err)
		}
	}

	return resp.StatusCode
}
