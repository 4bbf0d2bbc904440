package models

import "time"

// DifficultyRecord is the exponentially-weighted difficulty score for
// one grammatical combination, aggregated across every lemma that
// shares the combo. Score 0.0 is effortless, 1.0 is maximally hard.
type DifficultyRecord struct {
	ComboKey      string    `json:"combo_key" db:"combo_key"`
	Score         float64   `json:"score" db:"score"`
	TotalAttempts int       `json:"total_attempts" db:"total_attempts"`
	LastUpdated   time.Time `json:"last_updated_utc" db:"last_updated_utc"`
}
