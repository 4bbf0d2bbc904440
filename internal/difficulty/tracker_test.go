package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/palipractice/pkg/models"
)

type memStore struct {
	recs map[string]*models.DifficultyRecord
}

func newMemStore() *memStore {
	return &memStore{recs: make(map[string]*models.DifficultyRecord)}
}

func (m *memStore) Get(comboKey string) (*models.DifficultyRecord, error) {
	if rec, ok := m.recs[comboKey]; ok {
		cp := *rec
		return &cp, nil
	}
	return nil, nil
}

func (m *memStore) Upsert(rec *models.DifficultyRecord) error {
	cp := *rec
	m.recs[rec.ComboKey] = &cp
	return nil
}

func (m *memStore) All() ([]models.DifficultyRecord, error) {
	var all []models.DifficultyRecord
	for _, rec := range m.recs {
		all = append(all, *rec)
	}
	return all, nil
}

func TestScore_DefaultForUntracked(t *testing.T) {
	tr := NewTracker(newMemStore())
	score, err := tr.Score("noun|acc|masc|sg")
	require.NoError(t, err)
	assert.Equal(t, DefaultScore, score)
}

func TestUpdate_ExponentialMovingAverage(t *testing.T) {
	store := newMemStore()
	tr := NewTracker(store)
	key := "verb|opt|2nd|pl|refl"

	require.NoError(t, tr.Update(key, true))
	score, err := tr.Score(key)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, score, 1e-9) // 0.5 + 0.2*(1-0.5)

	require.NoError(t, tr.Update(key, true))
	score, err = tr.Score(key)
	require.NoError(t, err)
	assert.InDelta(t, 0.68, score, 1e-9)

	require.NoError(t, tr.Update(key, false))
	score, err = tr.Score(key)
	require.NoError(t, err)
	assert.InDelta(t, 0.544, score, 1e-9)

	rec, err := store.Get(key)
	require.NoError(t, err)
	assert.Equal(t, 3, rec.TotalAttempts)
	assert.False(t, rec.LastUpdated.IsZero())
}

func TestRank_ExcludesSmallSamples(t *testing.T) {
	store := newMemStore()
	tr := NewTracker(store)

	// an extreme score with only two attempts must not be ranked
	require.NoError(t, store.Upsert(&models.DifficultyRecord{
		ComboKey: "noun|voc|nt|pl", Score: 0.99, TotalAttempts: 2,
	}))
	require.NoError(t, store.Upsert(&models.DifficultyRecord{
		ComboKey: "noun|gen|fem|sg", Score: 0.7, TotalAttempts: 5,
	}))
	require.NoError(t, store.Upsert(&models.DifficultyRecord{
		ComboKey: "noun|nom|masc|sg", Score: 0.2, TotalAttempts: 8,
	}))

	ranked, err := tr.Rank(Hardest, 10)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "noun|gen|fem|sg", ranked[0].ComboKey)
	assert.Equal(t, "noun|nom|masc|sg", ranked[1].ComboKey)
}

func TestRank_OrderAndTruncation(t *testing.T) {
	store := newMemStore()
	tr := NewTracker(store)

	for key, score := range map[string]float64{
		"noun|acc|masc|sg": 0.9,
		"noun|dat|masc|sg": 0.5,
		"noun|loc|masc|sg": 0.1,
	} {
		require.NoError(t, store.Upsert(&models.DifficultyRecord{
			ComboKey: key, Score: score, TotalAttempts: 4,
		}))
	}

	hardest, err := tr.Rank(Hardest, 2)
	require.NoError(t, err)
	require.Len(t, hardest, 2)
	assert.Equal(t, "noun|acc|masc|sg", hardest[0].ComboKey)
	assert.Equal(t, "noun|dat|masc|sg", hardest[1].ComboKey)

	easiest, err := tr.Rank(Easiest, 2)
	require.NoError(t, err)
	require.Len(t, easiest, 2)
	assert.Equal(t, "noun|loc|masc|sg", easiest[0].ComboKey)
	assert.Equal(t, "noun|dat|masc|sg", easiest[1].ComboKey)
}

func TestRank_TieBreaksByComboKey(t *testing.T) {
	store := newMemStore()
	tr := NewTracker(store)

	require.NoError(t, store.Upsert(&models.DifficultyRecord{
		ComboKey: "noun|nom|masc|pl", Score: 0.6, TotalAttempts: 3,
	}))
	require.NoError(t, store.Upsert(&models.DifficultyRecord{
		ComboKey: "noun|abl|masc|pl", Score: 0.6, TotalAttempts: 3,
	}))

	ranked, err := tr.Rank(Hardest, 2)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "noun|abl|masc|pl", ranked[0].ComboKey)
	assert.Equal(t, "noun|nom|masc|pl", ranked[1].ComboKey)
}
