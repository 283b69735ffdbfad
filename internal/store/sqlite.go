package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lox/pogoda/internal/models"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// RecordUnknownCode notes that code was missing from the kind table.
func (s *Store) RecordUnknownCode(kind, code string, seenAt time.Time) error {
	seenAt = seenAt.UTC()
	_, err := s.db.Exec(`
		INSERT INTO unknown_codes (kind, code, seen_count, first_seen, last_seen)
		VALUES (?, ?, 1, ?, ?)
		ON CONFLICT(kind, code) DO UPDATE SET
			seen_count = seen_count + 1,
			first_seen = MIN(first_seen, excluded.first_seen),
			last_seen = MAX(last_seen, excluded.last_seen)
	`, kind, code, seenAt, seenAt)
	return err
}

func (s *Store) UnknownCodes() ([]models.UnknownCode, error) {
	rows, err := s.db.Query(`
		SELECT kind, code, seen_count, first_seen, last_seen
		FROM unknown_codes
		ORDER BY seen_count DESC, kind ASC, code ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []models.UnknownCode
	for rows.Next() {
		var c models.UnknownCode
		if err := rows.Scan(&c.Kind, &c.Code, &c.Count, &c.FirstSeen, &c.LastSeen); err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	return codes, rows.Err()
}

func (s *Store) InsertWeatherState(st models.WeatherState) error {
	b, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO weather_states (observed_at, condition, yandex_condition, day_part, state_json)
		VALUES (?, ?, ?, ?, ?)
	`, st.ObservedAt.UTC(), st.Condition, st.YandexCondition, st.DayPart, string(b))
	return err
}

// GetLatestWeatherState returns nil when no state has been stored.
func (s *Store) GetLatestWeatherState() (*models.WeatherState, error) {
	var raw string
	err := s.db.QueryRow(`
		SELECT state_json
		FROM weather_states
		ORDER BY observed_at DESC, id DESC
		LIMIT 1
	`).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var st models.WeatherState
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	return &st, nil
}

func (s *Store) CountWeatherStates() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM weather_states`).Scan(&n)
	return n, err
}
