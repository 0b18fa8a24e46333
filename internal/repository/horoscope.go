package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"

	"github.com/astrodaily/astrodaily/internal/model"
)

// Repository errors.
var (
	ErrHoroscopeNotFound = errors.New("stored horoscope not found")
)

// HoroscopeRepository provides database access for stored horoscopes.
// A row exists when a reading for (sign, date) was curated editorially
// or persisted after a successful AI generation.
type HoroscopeRepository struct {
	repo *Repository
}

// NewHoroscopeRepository creates a new HoroscopeRepository.
func NewHoroscopeRepository(repo *Repository) *HoroscopeRepository {
	return &HoroscopeRepository{repo: repo}
}

// Get fetches the stored reading for a sign on an exact calendar date
// (YYYY-MM-DD). Returns ErrHoroscopeNotFound when no row exists.
func (r *HoroscopeRepository) Get(ctx context.Context, signID, date string) (*model.StoredHoroscope, error) {
	query := `
		SELECT sign_id, horoscope_date,
		       COALESCE(general_reading, ''), COALESCE(love_text, ''),
		       COALESCE(career_text, ''), COALESCE(money_text, ''),
		       COALESCE(health_text, ''), COALESCE(travel_text, ''),
		       COALESCE(daily_affirmation, ''),
		       COALESCE(dos, '{}'), COALESCE(donts, '{}'),
		       COALESCE(remedy, ''), COALESCE(mantra, ''),
		       created_at, updated_at
		FROM stored_horoscopes
		WHERE sign_id = $1 AND horoscope_date = $2
	`

	var s model.StoredHoroscope
	err := r.repo.pool.QueryRow(ctx, query, signID, date).Scan(
		&s.SignID,
		&s.Date,
		&s.Partial.GeneralReading,
		&s.Partial.LoveText,
		&s.Partial.CareerText,
		&s.Partial.MoneyText,
		&s.Partial.HealthText,
		&s.Partial.TravelText,
		&s.Partial.DailyAffirmation,
		pq.Array(&s.Partial.Dos),
		pq.Array(&s.Partial.Donts),
		&s.Partial.Remedy,
		&s.Partial.Mantra,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHoroscopeNotFound
		}
		return nil, fmt.Errorf("query stored horoscope: %w", err)
	}

	return &s, nil
}

// Upsert inserts or replaces the stored reading for (sign, date).
func (r *HoroscopeRepository) Upsert(ctx context.Context, s *model.StoredHoroscope) error {
	query := `
		INSERT INTO stored_horoscopes (
			sign_id, horoscope_date, general_reading, love_text, career_text,
			money_text, health_text, travel_text, daily_affirmation,
			dos, donts, remedy, mantra, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		ON CONFLICT (sign_id, horoscope_date) DO UPDATE SET
			general_reading = EXCLUDED.general_reading,
			love_text = EXCLUDED.love_text,
			career_text = EXCLUDED.career_text,
			money_text = EXCLUDED.money_text,
			health_text = EXCLUDED.health_text,
			travel_text = EXCLUDED.travel_text,
			daily_affirmation = EXCLUDED.daily_affirmation,
			dos = EXCLUDED.dos,
			donts = EXCLUDED.donts,
			remedy = EXCLUDED.remedy,
			mantra = EXCLUDED.mantra,
			updated_at = NOW()
	`

	_, err := r.repo.pool.Exec(ctx, query,
		s.SignID,
		s.Date,
		nullableString(s.Partial.GeneralReading),
		nullableString(s.Partial.LoveText),
		nullableString(s.Partial.CareerText),
		nullableString(s.Partial.MoneyText),
		nullableString(s.Partial.HealthText),
		nullableString(s.Partial.TravelText),
		nullableString(s.Partial.DailyAffirmation),
		pq.Array(s.Partial.Dos),
		pq.Array(s.Partial.Donts),
		nullableString(s.Partial.Remedy),
		nullableString(s.Partial.Mantra),
	)
	if err != nil {
		return fmt.Errorf("upsert stored horoscope: %w", err)
	}

	return nil
}

// nullableString returns nil for empty strings.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
