package spaced_repetition

import (
	"math"
	"time"
)

// Mastery level bands. Level 0 means no record exists yet; 1-10 is the
// active practice band; 11 is retired and permanently excluded from
// scheduling.
const (
	LevelUnseen  = 0
	LevelMin     = 1
	LevelMax     = 10
	LevelRetired = 11
)

// Scheduler maps mastery levels onto review cooldowns and computes
// level transitions. All methods are pure; the constants are fields so
// they can be tuned without touching call sites.
type Scheduler struct {
	// BaseHours is the level-1 cooldown
	BaseHours float64
	// Multiplier is the per-level exponential growth factor
	Multiplier float64
	// StartLevel is assigned on the first recorded practice
	StartLevel int
	// HardStep is how many levels a Hard answer drops
	HardStep int
}

// NewScheduler returns the default tuning: 24h base doubling-ish per
// level (1.85x), reaching roughly 254 days at level 10. The curve is
// deliberately shallow-decay — the corpus language is not spoken, so
// interference is low and long intervals hold.
func NewScheduler() *Scheduler {
	return &Scheduler{
		BaseHours:  24,
		Multiplier: 1.85,
		StartLevel: 4,
		HardStep:   1,
	}
}

// CooldownHours returns the review interval for a level. Levels are
// clamped into the active band, so callers holding a retired or unseen
// record still get a finite answer.
func (s *Scheduler) CooldownHours(level int) float64 {
	if level < LevelMin {
		level = LevelMin
	}
	if level > LevelMax {
		level = LevelMax
	}
	return s.BaseHours * math.Pow(s.Multiplier, float64(level-1))
}

// NextDue returns the moment the slot becomes reviewable again
func (s *Scheduler) NextDue(lastPracticed time.Time, level int) time.Time {
	hours := s.CooldownHours(level)
	return lastPracticed.Add(time.Duration(hours * float64(time.Hour)))
}

// IsDue reports whether the slot's cooldown has elapsed. Unseen slots
// are new candidates, not reviews, and retired slots are out of the
// game entirely; neither is ever due.
func (s *Scheduler) IsDue(lastPracticed time.Time, level int, now time.Time) bool {
	if level < LevelMin || level > LevelMax {
		return false
	}
	return !now.Before(s.NextDue(lastPracticed, level))
}

// AdjustLevel computes the level transition for one recorded answer.
// The first practice of a slot (level 0) lands on StartLevel
// regardless of the answer; after that Easy climbs one level and Hard
// drops HardStep, floored at 1. Reaching 11 retires the slot, and
// retirement is terminal: a retired slot is never scheduled again, so
// its level never changes.
func (s *Scheduler) AdjustLevel(level int, wasEasy bool) int {
	if level <= LevelUnseen {
		return s.StartLevel
	}
	if level >= LevelRetired {
		return LevelRetired
	}
	if wasEasy {
		if level+1 > LevelRetired {
			return LevelRetired
		}
		return level + 1
	}
	if level-s.HardStep < LevelMin {
		return LevelMin
	}
	return level - s.HardStep
}
