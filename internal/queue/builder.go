// Package queue assembles bounded, prioritized practice queues. A
// queue mixes due reviews, never-practiced slots and extra instances
// of grammatical combinations the learner historically finds hard.
package queue

import (
	"fmt"
	"sort"
	"time"

	"github.com/example/palipractice/internal/forms"
	"github.com/example/palipractice/internal/spaced_repetition"
	"github.com/example/palipractice/pkg/models"
)

// Lexicon lists the lexical entries inside a frequency-rank window,
// most frequent first.
type Lexicon interface {
	Entries(pos models.PartOfSpeech, minRank, maxRank int) ([]models.LexicalEntry, error)
}

// MasteryStore reads the mastery table for one word family
type MasteryStore interface {
	GetAll(pos models.PartOfSpeech) ([]models.MasteryRecord, error)
}

// ConfigStore reads the learner's practice configuration
type ConfigStore interface {
	Get(pos models.PartOfSpeech) (*models.LearnerConfig, error)
}

// Generator produces the candidate surface forms for a slot
type Generator interface {
	Generate(entry models.LexicalEntry, slot models.Slot) ([]models.GeneratedForm, error)
}

// DifficultyScores reads per-combo difficulty (0..1)
type DifficultyScores interface {
	Score(comboKey string) (float64, error)
}

// Builder builds practice queues. A build is deterministic given the
// stores' contents at call time, but due-ness moves with the clock, so
// two builds at different moments legitimately differ. The result is a
// snapshot: recording a practice result does not update an
// already-built queue.
type Builder struct {
	lexicon    Lexicon
	mastery    MasteryStore
	config     ConfigStore
	generator  Generator
	scheduler  *spaced_repetition.Scheduler
	difficulty DifficultyScores

	// NewShare caps the fraction of the queue reserved for
	// never-practiced slots when due reviews could fill it
	NewShare float64
	// NewPriority is the fixed baseline priority of new slots
	NewPriority float64
	// BoostThreshold is the combo score above which leftovers are
	// injected as DifficultCombo items
	BoostThreshold float64
	// BoostDivisor sets the boost quota: targetSize / BoostDivisor
	BoostDivisor int

	now func() time.Time
}

// NewBuilder wires a builder with the default policy tuning
func NewBuilder(lexicon Lexicon, mastery MasteryStore, config ConfigStore,
	generator Generator, scheduler *spaced_repetition.Scheduler, difficulty DifficultyScores) *Builder {
	return &Builder{
		lexicon:        lexicon,
		mastery:        mastery,
		config:         config,
		generator:      generator,
		scheduler:      scheduler,
		difficulty:     difficulty,
		NewShare:       0.3,
		NewPriority:    0.4,
		BoostThreshold: 0.7,
		BoostDivisor:   5,
		now:            time.Now,
	}
}

// candidate is one eligible (lemma, slot) pair
type candidate struct {
	entry    models.LexicalEntry
	slot     models.Slot
	slotRef  int64 // variant-0 form ID, the mastery key
	comboKey string
	record   *models.MasteryRecord // nil when never practiced
}

// BuildQueue assembles up to targetSize practice items for one word
// family. Fewer items than requested means the pools are exhausted; an
// empty result means there is nothing left to practice. Neither is an
// error. Callers should request a little more than one session needs
// and rebuild when the queue runs dry.
func (b *Builder) BuildQueue(pos models.PartOfSpeech, targetSize int) ([]models.PracticeItem, error) {
	if targetSize <= 0 {
		return nil, nil
	}

	cfg, err := b.config.Get(pos)
	if err != nil {
		return nil, fmt.Errorf("failed to load learner config: %w", err)
	}

	candidates, err := b.collectCandidates(pos, cfg)
	if err != nil {
		return nil, err
	}

	now := b.now()
	var due, fresh []candidate
	for _, c := range candidates {
		switch {
		case c.record == nil:
			fresh = append(fresh, c)
		case c.record.Level >= spaced_repetition.LevelRetired:
			// retired: out of the game
		case b.scheduler.IsDue(c.record.LastPracticed, c.record.Level, now):
			due = append(due, c)
		}
	}

	// Oldest-overdue reviews first; new slots by descending corpus
	// frequency. Form ID breaks every tie so a build is reproducible.
	sort.Slice(due, func(i, j int) bool {
		if !due[i].record.LastPracticed.Equal(due[j].record.LastPracticed) {
			return due[i].record.LastPracticed.Before(due[j].record.LastPracticed)
		}
		return due[i].slotRef < due[j].slotRef
	})
	sort.Slice(fresh, func(i, j int) bool {
		if fresh[i].entry.FrequencyCount != fresh[j].entry.FrequencyCount {
			return fresh[i].entry.FrequencyCount > fresh[j].entry.FrequencyCount
		}
		return fresh[i].slotRef < fresh[j].slotRef
	})

	boostQuota := targetSize / b.BoostDivisor
	primaryTarget := targetSize - boostQuota

	newQuota := int(b.NewShare * float64(primaryTarget))
	if newQuota > len(fresh) {
		newQuota = len(fresh)
	}
	dueTake := primaryTarget - newQuota
	if dueTake > len(due) {
		dueTake = len(due)
	}
	newTake := primaryTarget - dueTake
	if newTake > len(fresh) {
		newTake = len(fresh)
	}

	queue := make([]models.PracticeItem, 0, targetSize)
	selected := make(map[int64]bool)

	for _, c := range due[:dueTake] {
		queue = append(queue, b.dueItem(c, now))
		selected[c.slotRef] = true
	}
	for _, c := range fresh[:newTake] {
		queue = append(queue, models.PracticeItem{
			FormID:   c.slotRef,
			LemmaID:  c.entry.LemmaID,
			Source:   models.NewForm,
			Priority: b.NewPriority,
		})
		selected[c.slotRef] = true
	}

	// Difficulty boost: leftovers whose combo scores as hard get
	// injected beyond what pure due-ness would schedule.
	leftovers := append(append([]candidate{}, due[dueTake:]...), fresh[newTake:]...)
	boosted, err := b.boostPool(leftovers, selected)
	if err != nil {
		return nil, err
	}
	for _, item := range boosted {
		if len(queue) >= targetSize || boostQuota == 0 {
			break
		}
		queue = append(queue, item)
		selected[item.FormID] = true
		boostQuota--
	}

	// Backfill with remaining leftovers in their natural order
	for _, c := range leftovers {
		if len(queue) >= targetSize {
			break
		}
		if selected[c.slotRef] {
			continue
		}
		if c.record != nil {
			queue = append(queue, b.dueItem(c, now))
		} else {
			queue = append(queue, models.PracticeItem{
				FormID:   c.slotRef,
				LemmaID:  c.entry.LemmaID,
				Source:   models.NewForm,
				Priority: b.NewPriority,
			})
		}
		selected[c.slotRef] = true
	}

	return queue, nil
}

// collectCandidates applies the eligibility filter: rank window,
// enabled features and patterns, lemma/slot compatibility, and at
// least one corpus-attested surface form.
func (b *Builder) collectCandidates(pos models.PartOfSpeech, cfg *models.LearnerConfig) ([]candidate, error) {
	entries, err := b.lexicon.Entries(pos, cfg.MinRank, cfg.MaxRank)
	if err != nil {
		return nil, fmt.Errorf("failed to list lexicon entries: %w", err)
	}

	records, err := b.mastery.GetAll(pos)
	if err != nil {
		return nil, fmt.Errorf("failed to load mastery records: %w", err)
	}
	byForm := make(map[int64]*models.MasteryRecord, len(records))
	for i := range records {
		byForm[records[i].FormID] = &records[i]
	}

	var result []candidate
	for _, entry := range entries {
		if entry.Excluded || entry.Stem == "" || entry.Pattern == "" {
			continue
		}
		if !cfg.PatternEnabled(entry.Pattern) {
			continue
		}
		for _, slot := range b.enumerateSlots(entry, cfg) {
			generated, err := b.generator.Generate(entry, slot)
			if err != nil {
				return nil, fmt.Errorf("failed to generate forms for lemma %d: %w", entry.LemmaID, err)
			}
			attested := false
			for _, f := range generated {
				if f.InCorpus {
					attested = true
					break
				}
			}
			if !attested {
				continue
			}
			slotRef, err := forms.Encode(entry.LemmaID, slot, 0)
			if err != nil {
				return nil, fmt.Errorf("failed to encode slot reference for lemma %d: %w", entry.LemmaID, err)
			}
			result = append(result, candidate{
				entry:    entry,
				slot:     slot,
				slotRef:  slotRef,
				comboKey: slot.ComboKey(),
				record:   byForm[slotRef],
			})
		}
	}
	return result, nil
}

// enumerateSlots expands an entry into every configured feature tuple.
// A noun's gender is fixed by the lemma, so only case and number vary;
// verbs vary over tense, person, number and voice.
func (b *Builder) enumerateSlots(entry models.LexicalEntry, cfg *models.LearnerConfig) []models.Slot {
	var slots []models.Slot
	if entry.PartOfSpeech == models.Noun {
		if !cfg.GenderEnabled(entry.Gender) {
			return nil
		}
		for _, c := range models.AllCases {
			if !cfg.CaseEnabled(c) {
				continue
			}
			for _, n := range models.AllNumbers {
				if !cfg.NumberEnabled(n) {
					continue
				}
				if entry.PluralOnly && n == models.NumberSingular {
					continue
				}
				slots = append(slots, models.NounSlot{Case: c, Gender: entry.Gender, Number: n})
			}
		}
		return slots
	}
	for _, t := range models.AllTenses {
		if !cfg.TenseEnabled(t) {
			continue
		}
		for _, p := range models.AllPersons {
			if !cfg.PersonEnabled(p) {
				continue
			}
			for _, n := range models.AllNumbers {
				if !cfg.NumberEnabled(n) {
					continue
				}
				for _, refl := range []bool{false, true} {
					if !cfg.VoiceEnabled(refl) {
						continue
					}
					slots = append(slots, models.VerbSlot{Tense: t, Person: p, Number: n, Reflexive: refl})
				}
			}
		}
	}
	return slots
}

// dueItem scores an overdue review: priority grows with how far past
// its cooldown the slot is, saturating at one full extra cooldown.
func (b *Builder) dueItem(c candidate, now time.Time) models.PracticeItem {
	cooldown := b.scheduler.CooldownHours(c.record.Level)
	overdue := now.Sub(b.scheduler.NextDue(c.record.LastPracticed, c.record.Level)).Hours()
	ratio := overdue / cooldown
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return models.PracticeItem{
		FormID:   c.slotRef,
		LemmaID:  c.entry.LemmaID,
		Source:   models.DueForReview,
		Priority: 0.5 + 0.5*ratio,
	}
}

// boostPool filters leftovers down to hard combos, hardest first
func (b *Builder) boostPool(leftovers []candidate, selected map[int64]bool) ([]models.PracticeItem, error) {
	type scored struct {
		c     candidate
		score float64
	}
	var hard []scored
	for _, c := range leftovers {
		if selected[c.slotRef] {
			continue
		}
		score, err := b.difficulty.Score(c.comboKey)
		if err != nil {
			return nil, fmt.Errorf("failed to score combo %s: %w", c.comboKey, err)
		}
		if score >= b.BoostThreshold {
			hard = append(hard, scored{c: c, score: score})
		}
	}
	sort.Slice(hard, func(i, j int) bool {
		if hard[i].score != hard[j].score {
			return hard[i].score > hard[j].score
		}
		return hard[i].c.slotRef < hard[j].c.slotRef
	})

	items := make([]models.PracticeItem, 0, len(hard))
	for _, s := range hard {
		items = append(items, models.PracticeItem{
			FormID:   s.c.slotRef,
			LemmaID:  s.c.entry.LemmaID,
			Source:   models.DifficultCombo,
			Priority: s.score,
		})
	}
	return items, nil
}
