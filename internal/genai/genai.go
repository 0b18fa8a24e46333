package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/astrodaily/astrodaily/internal/model"
)

// Generation errors. 429 and 402 carry distinct product meaning and are
// classified so the resolution pipeline can surface the right notice.
var (
	ErrRateLimited       = errors.New("ai gateway rate limited")
	ErrCreditsExhausted  = errors.New("ai credits exhausted")
	ErrMalformedResponse = errors.New("malformed ai response")
)

// Client calls an OpenAI-compatible chat completions endpoint to
// generate a horoscope overlay for one sign and date.
type Client struct {
	http   *http.Client
	url    string
	key    string
	model  string
	logger *slog.Logger
}

// NewClient creates a generation client.
func NewClient(url, key, aiModel string, logger *slog.Logger) *Client {
	return &Client{
		http:   NewHTTPClient(),
		url:    url,
		key:    key,
		model:  aiModel,
		logger: logger.With("component", "genai.client"),
	}
}

// chat completion wire types (request and the slice of the response we read).
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// overlayPayload is the JSON object the model is asked to return.
// luckyTip is a legacy alias for dailyAffirmation kept for older prompt
// revisions still in circulation.
type overlayPayload struct {
	GeneralReading   string   `json:"generalReading"`
	LoveText         string   `json:"loveText"`
	CareerText       string   `json:"careerText"`
	MoneyText        string   `json:"moneyText"`
	HealthText       string   `json:"healthText"`
	TravelText       string   `json:"travelText"`
	DailyAffirmation string   `json:"dailyAffirmation"`
	LuckyTip         string   `json:"luckyTip"`
	Dos              []string `json:"dos"`
	Donts            []string `json:"donts"`
	Remedy           string   `json:"remedy"`
	Mantra           string   `json:"mantra"`
}

const systemPrompt = `You are an expert Vedic astrologer creating personalized daily horoscope readings.
Generate authentic, insightful horoscope content that feels personal and meaningful.
Always respond with valid JSON only, no markdown or extra text.`

// Generate requests a fresh overlay for the sign on the given date.
// Unparseable content is a hard failure of this attempt (the caller
// keeps its deterministic fallback); 429/402 map to sentinel errors.
func (c *Client) Generate(ctx context.Context, sign *model.ZodiacSign, date time.Time) (*model.PartialHoroscope, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(sign, date)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return nil, ErrCreditsExhausted
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("gateway error",
			"status", resp.StatusCode,
			"body", string(snippet),
		)
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, fmt.Errorf("decode gateway response: %w", err)
	}
	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("%w: no content in response", ErrMalformedResponse)
	}

	overlay, err := parseOverlay(chat.Choices[0].Message.Content)
	if err != nil {
		c.logger.Warn("unparseable generation content", "sign", sign.ID, "error", err)
		return nil, err
	}

	return overlay, nil
}

// userPrompt builds the per-sign generation prompt.
func userPrompt(sign *model.ZodiacSign, date time.Time) string {
	day := date.UTC().Format("Monday, January 2, 2006")
	return fmt.Sprintf(`Generate a complete daily horoscope for %s (%s sign, ruled by %s) for %s.

Return a JSON object with these exact fields:
{
  "generalReading": "A 2-3 sentence personalized reading about the day ahead (50-80 words)",
  "loveText": "A specific love/relationship insight (30-50 words)",
  "careerText": "A specific career/work insight (30-50 words)",
  "moneyText": "A specific financial/money insight (30-50 words)",
  "healthText": "A specific health/wellness insight (30-50 words)",
  "travelText": "A specific travel/movement insight (30-50 words)",
  "dailyAffirmation": "A powerful affirmation for the day (15-25 words)",
  "dos": ["3 things to do today"],
  "donts": ["3 things to avoid today"],
  "remedy": "A simple Vedic remedy for the day",
  "mantra": "A relevant Sanskrit mantra with translation"
}

Make the content unique, spiritually meaningful, and specific to %s's characteristics.`,
		sign.Name, sign.Element, sign.RulingPlanet, day, sign.Name)
}

// parseOverlay extracts the overlay JSON from model output, tolerating
// markdown code fences the model sometimes wraps around it.
func parseOverlay(content string) (*model.PartialHoroscope, error) {
	clean := strings.TrimSpace(stripFences(content))

	var payload overlayPayload
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	affirmation := payload.DailyAffirmation
	if affirmation == "" {
		affirmation = payload.LuckyTip
	}

	return &model.PartialHoroscope{
		GeneralReading:   payload.GeneralReading,
		LoveText:         payload.LoveText,
		CareerText:       payload.CareerText,
		MoneyText:        payload.MoneyText,
		HealthText:       payload.HealthText,
		TravelText:       payload.TravelText,
		DailyAffirmation: affirmation,
		Dos:              payload.Dos,
		Donts:            payload.Donts,
		Remedy:           payload.Remedy,
		Mantra:           payload.Mantra,
	}, nil
}

// stripFences removes ```json ... ``` style fences.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return s
}
