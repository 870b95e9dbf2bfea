package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bethanyfinesse/bridgemindapp/internal/catalog"
	"github.com/bethanyfinesse/bridgemindapp/internal/database"
	"github.com/bethanyfinesse/bridgemindapp/internal/models"
	"github.com/lib/pq"
)

const preferenceCacheTTL = 1 * time.Hour

// ErrInvalidPreference is returned when a save is refused. Every validation
// error wraps it so callers can tell a client mistake from a storage failure
// with errors.Is. No storage mutation happens on a validation error.
var ErrInvalidPreference = errors.New("preference record is incomplete")

// ValidatePreference enforces the save rule: language, country and at least
// one struggle are required, and every field must come from the option lists.
func ValidatePreference(p *models.Preference) error {
	if !p.IsComplete() {
		return ErrInvalidPreference
	}
	if !catalog.Includes(catalog.Languages, p.Language) {
		return fmt.Errorf("unknown language %q: %w", p.Language, ErrInvalidPreference)
	}
	if !catalog.Includes(catalog.Countries, p.Country) {
		return fmt.Errorf("unknown country %q: %w", p.Country, ErrInvalidPreference)
	}
	for _, s := range p.Struggles {
		if !catalog.Includes(catalog.Struggles, s) {
			return fmt.Errorf("unknown struggle %q: %w", s, ErrInvalidPreference)
		}
	}
	if p.Gender != "" && !catalog.Includes(catalog.Genders, p.Gender) {
		return fmt.Errorf("unknown gender preference %q: %w", p.Gender, ErrInvalidPreference)
	}
	if p.SessionType != "" && !catalog.Includes(catalog.SessionTypes, p.SessionType) {
		return fmt.Errorf("unknown session type %q: %w", p.SessionType, ErrInvalidPreference)
	}
	if p.Approach != "" && !catalog.Includes(catalog.Approaches, p.Approach) {
		return fmt.Errorf("unknown approach %q: %w", p.Approach, ErrInvalidPreference)
	}
	return nil
}

func preferenceCacheKey(deviceID string) string {
	return CacheKey("prefs", deviceID)
}

// SavePreferences validates and persists a preference record as a whole-row
// upsert keyed by device. Invalid records are refused before any storage
// mutation.
func SavePreferences(ctx context.Context, p *models.Preference) error {
	if p.DeviceID == "" {
		return errors.New("device_id is required")
	}
	if err := ValidatePreference(p); err != nil {
		return err
	}

	now := time.Now()
	p.UpdatedAt = now

	_, err := database.PostgresDB.ExecContext(ctx, `
		INSERT INTO preferences (device_id, created_at, updated_at, language, country, struggles, gender, session_type, approach)
		VALUES ($1, $2, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (device_id) DO UPDATE SET
			updated_at = EXCLUDED.updated_at,
			language = EXCLUDED.language,
			country = EXCLUDED.country,
			struggles = EXCLUDED.struggles,
			gender = EXCLUDED.gender,
			session_type = EXCLUDED.session_type,
			approach = EXCLUDED.approach
	`, p.DeviceID, now, p.Language, p.Country, pq.Array(p.Struggles), p.Gender, p.SessionType, p.Approach)
	if err != nil {
		return err
	}

	// Refresh the cache; a failed cache write never fails the save
	if err := Cache.SetWithTTL(preferenceCacheKey(p.DeviceID), p, preferenceCacheTTL); err != nil {
		log.Printf("preferences: cache refresh failed for %s: %v", p.DeviceID, err)
	}
	return nil
}

// LoadPreferences returns the last-saved record for a device, or nil when
// none exists. Storage failures are treated as "no prior data".
func LoadPreferences(ctx context.Context, deviceID string) (*models.Preference, error) {
	if deviceID == "" {
		return nil, nil
	}

	var cached models.Preference
	if ok, err := Cache.Get(preferenceCacheKey(deviceID), &cached); ok && err == nil {
		return &cached, nil
	}

	var p models.Preference
	row := database.PostgresDB.QueryRowContext(ctx, `
		SELECT device_id, created_at, updated_at, language, country, struggles,
		       COALESCE(gender, ''), COALESCE(session_type, ''), COALESCE(approach, '')
		FROM preferences WHERE device_id = $1
	`, deviceID)
	err := row.Scan(&p.DeviceID, &p.CreatedAt, &p.UpdatedAt, &p.Language, &p.Country,
		pq.Array(&p.Struggles), &p.Gender, &p.SessionType, &p.Approach)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		// Malformed or unavailable storage degrades to "no saved preferences"
		log.Printf("preferences: load failed for %s: %v", deviceID, err)
		return nil, nil
	}

	if err := Cache.SetWithTTL(preferenceCacheKey(deviceID), &p, preferenceCacheTTL); err != nil {
		log.Printf("preferences: cache warm failed for %s: %v", deviceID, err)
	}
	return &p, nil
}
