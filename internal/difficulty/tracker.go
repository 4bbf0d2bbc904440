// Package difficulty maintains an exponentially-weighted difficulty
// score per grammatical combination, independent of lemma. The queue
// builder uses it to over-schedule historically hard combos.
package difficulty

import (
	"fmt"
	"sort"
	"time"

	"github.com/example/palipractice/pkg/models"
)

// DefaultScore is assumed for a combo that was never practiced
const DefaultScore = 0.5

// Store persists difficulty records. Get returns (nil, nil) for an
// untracked combo.
type Store interface {
	Get(comboKey string) (*models.DifficultyRecord, error)
	Upsert(rec *models.DifficultyRecord) error
	All() ([]models.DifficultyRecord, error)
}

// RankOrder selects which end of the difficulty scale Rank returns
type RankOrder string

const (
	Hardest RankOrder = "hardest"
	Easiest RankOrder = "easiest"
)

// Tracker updates and queries combo difficulty scores
type Tracker struct {
	store Store
	// Alpha is the EMA smoothing factor
	Alpha float64
	// MinAttempts is the sample-size floor below which a combo is
	// excluded from rankings
	MinAttempts int

	now func() time.Time
}

// NewTracker creates a tracker with the default tuning
func NewTracker(store Store) *Tracker {
	return &Tracker{
		store:       store,
		Alpha:       0.2,
		MinAttempts: 3,
		now:         time.Now,
	}
}

// Update folds one practice result into the combo's score:
// score' = score + alpha*(target - score), target 1.0 for a hard
// answer and 0.0 for an easy one.
func (t *Tracker) Update(comboKey string, wasHard bool) error {
	rec, err := t.store.Get(comboKey)
	if err != nil {
		return fmt.Errorf("failed to get difficulty for %s: %w", comboKey, err)
	}
	if rec == nil {
		rec = &models.DifficultyRecord{
			ComboKey: comboKey,
			Score:    DefaultScore,
		}
	}

	target := 0.0
	if wasHard {
		target = 1.0
	}
	rec.Score += t.Alpha * (target - rec.Score)
	rec.TotalAttempts++
	rec.LastUpdated = t.now().UTC()

	if err := t.store.Upsert(rec); err != nil {
		return fmt.Errorf("failed to save difficulty for %s: %w", comboKey, err)
	}
	return nil
}

// Score returns the combo's current difficulty, or DefaultScore if the
// combo was never practiced.
func (t *Tracker) Score(comboKey string) (float64, error) {
	rec, err := t.store.Get(comboKey)
	if err != nil {
		return 0, fmt.Errorf("failed to get difficulty for %s: %w", comboKey, err)
	}
	if rec == nil {
		return DefaultScore, nil
	}
	return rec.Score, nil
}

// Rank returns up to n combos from the requested end of the scale.
// Combos with fewer than MinAttempts samples are excluded entirely, so
// the result may be shorter than n.
func (t *Tracker) Rank(order RankOrder, n int) ([]models.DifficultyRecord, error) {
	all, err := t.store.All()
	if err != nil {
		return nil, fmt.Errorf("failed to list difficulty records: %w", err)
	}

	ranked := make([]models.DifficultyRecord, 0, len(all))
	for _, rec := range all {
		if rec.TotalAttempts >= t.MinAttempts {
			ranked = append(ranked, rec)
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			if order == Easiest {
				return ranked[i].Score < ranked[j].Score
			}
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ComboKey < ranked[j].ComboKey
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}
