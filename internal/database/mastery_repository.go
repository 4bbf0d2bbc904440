package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/example/palipractice/internal/forms"
	"github.com/example/palipractice/internal/spaced_repetition"
	"github.com/example/palipractice/pkg/models"
)

// MasteryRepository handles database operations for mastery records.
// Records are keyed by the slot-reference form ID and are created on
// first practice, never deleted.
type MasteryRepository struct {
	scheduler *spaced_repetition.Scheduler
	now       func() time.Time
}

// NewMasteryRepository creates a new repository instance
func NewMasteryRepository(scheduler *spaced_repetition.Scheduler) *MasteryRepository {
	return &MasteryRepository{
		scheduler: scheduler,
		now:       time.Now,
	}
}

// GetByFormID returns the mastery record for one slot reference, or
// nil if the slot was never practiced.
func (r *MasteryRepository) GetByFormID(formID int64) (*models.MasteryRecord, error) {
	var rec models.MasteryRecord
	err := DB.Get(&rec, "SELECT * FROM mastery WHERE form_id = $1", formID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mastery record %d: %v", formID, err)
	}
	return &rec, nil
}

// GetAll returns every mastery record of one word family
func (r *MasteryRepository) GetAll(pos models.PartOfSpeech) ([]models.MasteryRecord, error) {
	var recs []models.MasteryRecord
	err := DB.Select(&recs, "SELECT * FROM mastery WHERE pos = $1 ORDER BY form_id ASC", pos)
	if err != nil {
		return nil, fmt.Errorf("failed to get mastery records: %v", err)
	}
	return recs, nil
}

// GetDue returns up to limit records whose cooldown has elapsed,
// oldest-practiced first. Retired records never appear.
func (r *MasteryRepository) GetDue(pos models.PartOfSpeech, limit int) ([]models.MasteryRecord, error) {
	query := `
		SELECT * FROM mastery
		WHERE pos = $1 AND level BETWEEN $2 AND $3
		ORDER BY last_practiced_utc ASC, form_id ASC
	`
	var recs []models.MasteryRecord
	err := DB.Select(&recs, query, pos, spaced_repetition.LevelMin, spaced_repetition.LevelMax)
	if err != nil {
		return nil, fmt.Errorf("failed to get due mastery records: %v", err)
	}

	// Due-ness depends on the exponential cooldown curve, so it is
	// decided here rather than in SQL.
	now := r.now()
	due := make([]models.MasteryRecord, 0, len(recs))
	for _, rec := range recs {
		if r.scheduler.IsDue(rec.LastPracticed, rec.Level, now) {
			due = append(due, rec)
			if limit > 0 && len(due) >= limit {
				break
			}
		}
	}
	return due, nil
}

// RecordResult applies one practice answer: the level transition and
// the history append happen in a single transaction. The form ID may
// be any variant of the slot; mastery is tracked on the slot reference.
func (r *MasteryRepository) RecordResult(formID int64, wasEasy bool) (*models.MasteryRecord, error) {
	slotRef, err := forms.SlotReference(formID)
	if err != nil {
		return nil, err
	}
	pos, err := forms.FamilyOf(slotRef)
	if err != nil {
		return nil, err
	}

	tx, err := DB.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	level := spaced_repetition.LevelUnseen
	var existing models.MasteryRecord
	err = tx.Get(&existing, "SELECT * FROM mastery WHERE form_id = $1", slotRef)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get mastery record %d: %v", slotRef, err)
	}
	if err == nil {
		level = existing.Level
	}

	newLevel := r.scheduler.AdjustLevel(level, wasEasy)
	now := r.now().UTC()

	upsert := `
		INSERT INTO mastery (form_id, pos, level, previous_level, last_practiced_utc)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (form_id) DO UPDATE SET
			level = EXCLUDED.level,
			previous_level = EXCLUDED.previous_level,
			last_practiced_utc = EXCLUDED.last_practiced_utc,
			updated_at = CURRENT_TIMESTAMP
	`
	if _, err := tx.Exec(upsert, slotRef, pos, newLevel, level, now); err != nil {
		return nil, fmt.Errorf("failed to save mastery record %d: %v", slotRef, err)
	}

	history := `
		INSERT INTO practice_history (form_id, was_easy, level_before, level_after, practiced_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.Exec(history, slotRef, wasEasy, level, newLevel, now); err != nil {
		return nil, fmt.Errorf("failed to append practice history for %d: %v", slotRef, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit practice result: %v", err)
	}

	return &models.MasteryRecord{
		FormID:        slotRef,
		PartOfSpeech:  pos,
		Level:         newLevel,
		PreviousLevel: level,
		LastPracticed: now,
	}, nil
}

// RecentHistory returns the latest practice answers, newest first
func (r *MasteryRepository) RecentHistory(limit int) ([]models.PracticeResult, error) {
	query := `
		SELECT * FROM practice_history
		ORDER BY practiced_at DESC, id DESC
		LIMIT $1
	`
	var results []models.PracticeResult
	err := DB.Select(&results, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get practice history: %v", err)
	}
	return results, nil
}
