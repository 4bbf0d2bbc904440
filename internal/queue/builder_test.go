package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/palipractice/internal/forms"
	"github.com/example/palipractice/internal/spaced_repetition"
	"github.com/example/palipractice/pkg/models"
)

type fakeLexicon struct {
	entries []models.LexicalEntry
}

func (f fakeLexicon) Entries(pos models.PartOfSpeech, minRank, maxRank int) ([]models.LexicalEntry, error) {
	var out []models.LexicalEntry
	for _, e := range f.entries {
		if e.PartOfSpeech == pos {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeMastery struct {
	recs []models.MasteryRecord
}

func (f fakeMastery) GetAll(pos models.PartOfSpeech) ([]models.MasteryRecord, error) {
	var out []models.MasteryRecord
	for _, r := range f.recs {
		if r.PartOfSpeech == pos {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeConfig struct {
	cfg *models.LearnerConfig
}

func (f fakeConfig) Get(pos models.PartOfSpeech) (*models.LearnerConfig, error) {
	if f.cfg != nil {
		return f.cfg, nil
	}
	return models.DefaultLearnerConfig(pos), nil
}

// fakeGenerator yields one form per slot; attestation is per lemma
type fakeGenerator struct {
	unattested map[int64]bool
	barren     map[int64]bool // lemmas generating nothing at all
}

func (f fakeGenerator) Generate(entry models.LexicalEntry, slot models.Slot) ([]models.GeneratedForm, error) {
	if f.barren[entry.LemmaID] {
		return nil, nil
	}
	id, err := forms.Encode(entry.LemmaID, slot, 1)
	if err != nil {
		return nil, err
	}
	return []models.GeneratedForm{{
		FormID:       id,
		Text:         entry.Stem + "x",
		VariantIndex: 1,
		InCorpus:     !f.unattested[entry.LemmaID],
	}}, nil
}

type fakeScores struct {
	scores map[string]float64
}

func (f fakeScores) Score(comboKey string) (float64, error) {
	if s, ok := f.scores[comboKey]; ok {
		return s, nil
	}
	return 0.5, nil
}

func nounEntry(lemmaID int64, freq int) models.LexicalEntry {
	return models.LexicalEntry{
		LemmaID:        lemmaID,
		Lemma:          "lemma",
		PartOfSpeech:   models.Noun,
		Gender:         models.GenderMasculine,
		FrequencyCount: freq,
		Stem:           "stem",
		Pattern:        "a masc",
	}
}

// narrowConfig enables a single noun slot (nom masc sg) so each lemma
// contributes exactly one candidate
func narrowConfig() *models.LearnerConfig {
	return &models.LearnerConfig{
		PartOfSpeech: models.Noun,
		MinRank:      1,
		MaxRank:      100,
		Cases:        []models.NounCase{models.CaseNominative},
		Genders:      []models.Gender{models.GenderMasculine},
		Numbers:      []models.GrammNumber{models.NumberSingular},
	}
}

func newTestBuilder(lex fakeLexicon, mast fakeMastery, cfg *models.LearnerConfig,
	gen fakeGenerator, scores fakeScores, now time.Time) *Builder {
	b := NewBuilder(lex, mast, fakeConfig{cfg: cfg}, gen, spaced_repetition.NewScheduler(), scores)
	b.now = func() time.Time { return now }
	return b
}

func slotRef(t *testing.T, lemmaID int64) int64 {
	t.Helper()
	id, err := forms.Encode(lemmaID, models.NounSlot{
		Case:   models.CaseNominative,
		Gender: models.GenderMasculine,
		Number: models.NumberSingular,
	}, 0)
	require.NoError(t, err)
	return id
}

func TestBuildQueue_MixesDueAndNew(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	lex := fakeLexicon{entries: []models.LexicalEntry{
		nounEntry(10001, 100), // due
		nounEntry(10002, 90),  // new
		nounEntry(10003, 80),  // retired
		nounEntry(10004, 70),  // practiced recently, not yet due
	}}
	mast := fakeMastery{recs: []models.MasteryRecord{
		{FormID: slotRef(t, 10001), PartOfSpeech: models.Noun, Level: 4, LastPracticed: now.AddDate(0, 0, -30)},
		{FormID: slotRef(t, 10003), PartOfSpeech: models.Noun, Level: 11, LastPracticed: now.AddDate(0, 0, -300)},
		{FormID: slotRef(t, 10004), PartOfSpeech: models.Noun, Level: 4, LastPracticed: now.Add(-time.Hour)},
	}}

	b := newTestBuilder(lex, mast, narrowConfig(), fakeGenerator{}, fakeScores{}, now)
	items, err := b.BuildQueue(models.Noun, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, slotRef(t, 10001), items[0].FormID)
	assert.Equal(t, models.DueForReview, items[0].Source)
	// a month past a ~6-day cooldown saturates the overdue score
	assert.InDelta(t, 1.0, items[0].Priority, 1e-9)

	assert.Equal(t, slotRef(t, 10002), items[1].FormID)
	assert.Equal(t, models.NewForm, items[1].Source)
	assert.InDelta(t, 0.4, items[1].Priority, 1e-9)
}

func TestBuildQueue_DuePoolOldestFirst(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	lex := fakeLexicon{entries: []models.LexicalEntry{
		nounEntry(10001, 100),
		nounEntry(10002, 90),
	}}
	mast := fakeMastery{recs: []models.MasteryRecord{
		{FormID: slotRef(t, 10001), PartOfSpeech: models.Noun, Level: 4, LastPracticed: now.AddDate(0, 0, -10)},
		{FormID: slotRef(t, 10002), PartOfSpeech: models.Noun, Level: 4, LastPracticed: now.AddDate(0, 0, -20)},
	}}

	b := newTestBuilder(lex, mast, narrowConfig(), fakeGenerator{}, fakeScores{}, now)
	items, err := b.BuildQueue(models.Noun, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, slotRef(t, 10002), items[0].FormID)
	assert.Equal(t, slotRef(t, 10001), items[1].FormID)
}

func TestBuildQueue_NeverSchedulesUnattested(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	lex := fakeLexicon{entries: []models.LexicalEntry{
		nounEntry(10001, 100),
		nounEntry(10002, 90),
		nounEntry(10003, 80),
	}}
	gen := fakeGenerator{
		unattested: map[int64]bool{10002: true},
		barren:     map[int64]bool{10003: true},
	}

	b := newTestBuilder(lex, fakeMastery{}, narrowConfig(), gen, fakeScores{}, now)
	items, err := b.BuildQueue(models.Noun, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(10001), items[0].LemmaID)
}

func TestBuildQueue_ExhaustionReturnsEmpty(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	b := newTestBuilder(fakeLexicon{}, fakeMastery{}, narrowConfig(), fakeGenerator{}, fakeScores{}, now)
	items, err := b.BuildQueue(models.Noun, 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestBuildQueue_TruncatesToTargetSize(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	var entries []models.LexicalEntry
	for i := 0; i < 10; i++ {
		entries = append(entries, nounEntry(int64(10001+i), 100-i))
	}

	b := newTestBuilder(fakeLexicon{entries: entries}, fakeMastery{}, narrowConfig(), fakeGenerator{}, fakeScores{}, now)
	items, err := b.BuildQueue(models.Noun, 4)
	require.NoError(t, err)
	require.Len(t, items, 4)

	// no duplicates and highest-frequency lemmas first
	seen := make(map[int64]bool)
	for _, item := range items {
		assert.False(t, seen[item.FormID])
		seen[item.FormID] = true
	}
	assert.Equal(t, int64(10001), items[0].LemmaID)
	assert.Equal(t, int64(10002), items[1].LemmaID)
}

func TestBuildQueue_DifficultyBoost(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	var entries []models.LexicalEntry
	for i := 0; i < 10; i++ {
		entries = append(entries, nounEntry(int64(10001+i), 100-i))
	}
	scores := fakeScores{scores: map[string]float64{
		"noun|nom|masc|sg": 0.9,
	}}

	b := newTestBuilder(fakeLexicon{entries: entries}, fakeMastery{}, narrowConfig(), fakeGenerator{}, scores, now)
	items, err := b.BuildQueue(models.Noun, 4)
	require.NoError(t, err)
	require.Len(t, items, 4)

	var boosted []models.PracticeItem
	seen := make(map[int64]bool)
	for _, item := range items {
		assert.False(t, seen[item.FormID], "boost must not duplicate a selected item")
		seen[item.FormID] = true
		if item.Source == models.DifficultCombo {
			boosted = append(boosted, item)
		}
	}
	require.Len(t, boosted, 1)
	assert.InDelta(t, 0.9, boosted[0].Priority, 1e-9)
}

func TestBuildQueue_RespectsFeatureToggles(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	cfg := narrowConfig()
	cfg.Cases = []models.NounCase{models.CaseNominative, models.CaseAccusative}
	cfg.Numbers = []models.GrammNumber{models.NumberSingular, models.NumberPlural}

	pluralOnly := nounEntry(10001, 100)
	pluralOnly.PluralOnly = true

	b := newTestBuilder(fakeLexicon{entries: []models.LexicalEntry{pluralOnly}}, fakeMastery{},
		cfg, fakeGenerator{}, fakeScores{}, now)
	items, err := b.BuildQueue(models.Noun, 10)
	require.NoError(t, err)
	require.Len(t, items, 2) // nom.pl and acc.pl only

	for _, item := range items {
		_, slot, _, err := forms.Decode(item.FormID)
		require.NoError(t, err)
		assert.Equal(t, models.NumberPlural, slot.(models.NounSlot).Number,
			"plural-only lemma must never get a singular slot")
	}
}

func TestBuildQueue_SkipsExcludedVariantsAndDisabledPatterns(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	excluded := nounEntry(10001, 100)
	excluded.Excluded = true
	minority := nounEntry(10002, 90)
	minority.Pattern = "ar2 masc"

	cfg := narrowConfig()
	cfg.Patterns = []string{"a masc"}

	b := newTestBuilder(fakeLexicon{entries: []models.LexicalEntry{excluded, minority, nounEntry(10003, 80)}},
		fakeMastery{}, cfg, fakeGenerator{}, fakeScores{}, now)
	items, err := b.BuildQueue(models.Noun, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(10003), items[0].LemmaID)
}

func TestBuildQueue_ZeroTarget(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	b := newTestBuilder(fakeLexicon{entries: []models.LexicalEntry{nounEntry(10001, 100)}},
		fakeMastery{}, narrowConfig(), fakeGenerator{}, fakeScores{}, now)
	items, err := b.BuildQueue(models.Noun, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}
