// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"github.com/astrodaily/astrodaily/internal/horoscope"
	"github.com/astrodaily/astrodaily/internal/model"
)

// HoroscopeResponse is the reading for one sign on one day.
type HoroscopeResponse struct {
	Sign      *model.ZodiacSign   `json:"sign"`
	Date      string              `json:"date"`
	DayOffset int                 `json:"day_offset"`
	Data      model.HoroscopeData `json:"data"`
	AIPowered bool                `json:"ai_powered"`
	Source    string              `json:"source"`
	Notice    string              `json:"notice,omitempty"`
}

// SignListResponse wraps the static sign table.
type SignListResponse struct {
	Data []model.ZodiacSign `json:"data"`
}

// UpsertHoroscopeRequest is the editorial overlay body. All fields are
// optional; absent fields keep the deterministic value at read time.
type UpsertHoroscopeRequest struct {
	GeneralReading   string   `json:"general_reading,omitempty"`
	LoveText         string   `json:"love_text,omitempty"`
	CareerText       string   `json:"career_text,omitempty"`
	MoneyText        string   `json:"money_text,omitempty"`
	HealthText       string   `json:"health_text,omitempty"`
	TravelText       string   `json:"travel_text,omitempty"`
	DailyAffirmation string   `json:"daily_affirmation,omitempty"`
	Dos              []string `json:"dos,omitempty"`
	Donts            []string `json:"donts,omitempty"`
	Remedy           string   `json:"remedy,omitempty"`
	Mantra           string   `json:"mantra,omitempty"`
}

// ToPartial converts the request body to the overlay model.
func (r *UpsertHoroscopeRequest) ToPartial() model.PartialHoroscope {
	return model.PartialHoroscope{
		GeneralReading:   r.GeneralReading,
		LoveText:         r.LoveText,
		CareerText:       r.CareerText,
		MoneyText:        r.MoneyText,
		HealthText:       r.HealthText,
		TravelText:       r.TravelText,
		DailyAffirmation: r.DailyAffirmation,
		Dos:              r.Dos,
		Donts:            r.Donts,
		Remedy:           r.Remedy,
		Mantra:           r.Mantra,
	}
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToHoroscopeResponse converts a pipeline resolution to the API shape.
func ToHoroscopeResponse(res *horoscope.Resolution) *HoroscopeResponse {
	return &HoroscopeResponse{
		Sign:      model.SignByID(res.SignID),
		Date:      res.Date,
		DayOffset: res.DayOffset,
		Data:      res.Data,
		AIPowered: res.AIPowered,
		Source:    res.Source,
		Notice:    res.Notice,
	}
}
