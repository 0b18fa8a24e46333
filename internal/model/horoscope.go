package model

import "time"

// HoroscopeData is the complete daily reading for one sign on one date.
// The generator produces it as a pure function of (sign, date); the
// resolution pipeline may overlay remote fields on top of it.
type HoroscopeData struct {
	Mood      string `json:"mood"`
	MoodEmoji string `json:"mood_emoji"`

	LuckyNumber int      `json:"lucky_number"` // 1..99
	LuckyTime   string   `json:"lucky_time"`
	LuckyColors []string `json:"lucky_colors"` // always 3 entries

	LovePercentage   int    `json:"love_percentage"` // 60..100
	LoveText         string `json:"love_text"`
	CareerPercentage int    `json:"career_percentage"`
	CareerText       string `json:"career_text"`
	HealthPercentage int    `json:"health_percentage"`
	HealthText       string `json:"health_text"`
	MoneyPercentage  int    `json:"money_percentage"`
	MoneyText        string `json:"money_text"`
	TravelPercentage int    `json:"travel_percentage"`
	TravelText       string `json:"travel_text"`

	GeneralReading   string `json:"general_reading"`
	DailyAffirmation string `json:"daily_affirmation"`

	CompatibleSign string `json:"compatible_sign"` // display name
	AvoidSign      string `json:"avoid_sign"`      // display name

	FocusArea  string `json:"focus_area"`
	FocusEmoji string `json:"focus_emoji"`

	// Panchang context
	Nakshatra      string   `json:"nakshatra"`
	Tithi          string   `json:"tithi"`
	Dos            []string `json:"dos"`
	Donts          []string `json:"donts"`
	AuspiciousTime string   `json:"auspicious_time"`
	Remedy         string   `json:"remedy"`
	Mantra         string   `json:"mantra"`
}

// PartialHoroscope holds the overlay fields a remote source (stored row or
// AI generation) may provide. Empty fields keep the fallback value.
type PartialHoroscope struct {
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

// IsEmpty reports whether the overlay carries no fields at all.
func (p *PartialHoroscope) IsEmpty() bool {
	return p.GeneralReading == "" && p.LoveText == "" && p.CareerText == "" &&
		p.MoneyText == "" && p.HealthText == "" && p.TravelText == "" &&
		p.DailyAffirmation == "" && len(p.Dos) == 0 && len(p.Donts) == 0 &&
		p.Remedy == "" && p.Mantra == ""
}

// Coalesce applies the overlay to a copy of base, field by field.
// Each field independently defaults to the base value when absent.
func (p *PartialHoroscope) Coalesce(base HoroscopeData) HoroscopeData {
	out := base
	if p.GeneralReading != "" {
		out.GeneralReading = p.GeneralReading
	}
	if p.LoveText != "" {
		out.LoveText = p.LoveText
	}
	if p.CareerText != "" {
		out.CareerText = p.CareerText
	}
	if p.MoneyText != "" {
		out.MoneyText = p.MoneyText
	}
	if p.HealthText != "" {
		out.HealthText = p.HealthText
	}
	if p.TravelText != "" {
		out.TravelText = p.TravelText
	}
	if p.DailyAffirmation != "" {
		out.DailyAffirmation = p.DailyAffirmation
	}
	if len(p.Dos) > 0 {
		out.Dos = p.Dos
	}
	if len(p.Donts) > 0 {
		out.Donts = p.Donts
	}
	if p.Remedy != "" {
		out.Remedy = p.Remedy
	}
	if p.Mantra != "" {
		out.Mantra = p.Mantra
	}
	return out
}

// CacheValidity is how long a same-day cache entry stays fresh.
const CacheValidity = 24 * time.Hour

// CachedHoroscope wraps an overlay stored in the day cache.
type CachedHoroscope struct {
	Data      PartialHoroscope `json:"data"`
	Timestamp int64            `json:"timestamp"` // Unix milliseconds at capture
	Date      string           `json:"date"`      // YYYY-MM-DD (UTC)
}

// IsValid reports whether the entry is usable at the given time.
// An entry is valid only when its date matches today's UTC date and it
// was captured less than 24 hours ago. A yesterday entry is invalid no
// matter how recent its timestamp.
func (c *CachedHoroscope) IsValid(now time.Time) bool {
	if c.Date != now.UTC().Format("2006-01-02") {
		return false
	}
	age := now.UnixMilli() - c.Timestamp
	return age >= 0 && age < CacheValidity.Milliseconds()
}

// StoredHoroscope is an editorially curated or previously generated
// reading persisted per (sign, date).
type StoredHoroscope struct {
	SignID    string           `json:"sign_id"`
	Date      string           `json:"horoscope_date"` // YYYY-MM-DD
	Partial   PartialHoroscope `json:"data"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
