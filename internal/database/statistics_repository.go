package database

import (
	"database/sql"
	"fmt"

	"github.com/example/palipractice/internal/forms"
	"github.com/example/palipractice/internal/spaced_repetition"
	"github.com/example/palipractice/pkg/models"
)

// StatisticsRepository aggregates progress counts per word family
type StatisticsRepository struct{}

// NewStatisticsRepository creates a new repository instance
func NewStatisticsRepository() *StatisticsRepository {
	return &StatisticsRepository{}
}

// Overview returns an aggregate progress snapshot for one word family
func (r *StatisticsRepository) Overview(pos models.PartOfSpeech) (*models.PracticeStats, error) {
	stats := &models.PracticeStats{PartOfSpeech: pos}

	err := DB.Get(&stats.TrackedForms,
		"SELECT COUNT(*) FROM mastery WHERE pos = $1", pos)
	if err != nil {
		return nil, fmt.Errorf("failed to count tracked forms: %v", err)
	}

	err = DB.Get(&stats.RetiredForms,
		"SELECT COUNT(*) FROM mastery WHERE pos = $1 AND level >= $2", pos, spaced_repetition.LevelRetired)
	if err != nil {
		return nil, fmt.Errorf("failed to count retired forms: %v", err)
	}

	// History rows carry no pos column; the disjoint lemma-id ranges
	// make the encoded form ID itself the family tag.
	lo, hi := formIDRange(pos)
	err = DB.Get(&stats.TotalPractices,
		"SELECT COUNT(*) FROM practice_history WHERE form_id BETWEEN $1 AND $2", lo, hi)
	if err != nil {
		return nil, fmt.Errorf("failed to count practices: %v", err)
	}

	var last sql.NullTime
	err = DB.Get(&last,
		"SELECT MAX(last_practiced_utc) FROM mastery WHERE pos = $1", pos)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get last practice time: %v", err)
	}
	if last.Valid {
		stats.LastPracticed = last.Time
	}

	return stats, nil
}

// formIDRange returns the inclusive form-ID bounds of one word family
func formIDRange(pos models.PartOfSpeech) (int64, int64) {
	if pos == models.Noun {
		return forms.NounIDStart * 10_000, forms.NounIDMax*10_000 + 9_999
	}
	return forms.VerbIDStart * 100_000, forms.VerbIDMax*100_000 + 99_999
}
