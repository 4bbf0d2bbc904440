package database

import (
	"database/sql"
	"fmt"

	"github.com/example/palipractice/pkg/models"
)

// DifficultyRepository handles database operations for per-combo
// difficulty records. It satisfies the difficulty tracker's Store.
type DifficultyRepository struct{}

// NewDifficultyRepository creates a new repository instance
func NewDifficultyRepository() *DifficultyRepository {
	return &DifficultyRepository{}
}

// Get returns the record for one combo, or nil if untracked
func (r *DifficultyRepository) Get(comboKey string) (*models.DifficultyRecord, error) {
	var rec models.DifficultyRecord
	err := DB.Get(&rec, "SELECT * FROM combo_difficulty WHERE combo_key = $1", comboKey)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get difficulty record %s: %v", comboKey, err)
	}
	return &rec, nil
}

// Upsert inserts or updates one difficulty record
func (r *DifficultyRepository) Upsert(rec *models.DifficultyRecord) error {
	query := `
		INSERT INTO combo_difficulty (combo_key, score, total_attempts, last_updated_utc)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (combo_key) DO UPDATE SET
			score = EXCLUDED.score,
			total_attempts = EXCLUDED.total_attempts,
			last_updated_utc = EXCLUDED.last_updated_utc
	`
	_, err := DB.Exec(query, rec.ComboKey, rec.Score, rec.TotalAttempts, rec.LastUpdated)
	if err != nil {
		return fmt.Errorf("failed to save difficulty record %s: %v", rec.ComboKey, err)
	}
	return nil
}

// All returns every difficulty record
func (r *DifficultyRepository) All() ([]models.DifficultyRecord, error) {
	var recs []models.DifficultyRecord
	err := DB.Select(&recs, "SELECT * FROM combo_difficulty ORDER BY combo_key ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list difficulty records: %v", err)
	}
	return recs, nil
}
