package models

// LearnerConfig holds the per-family practice configuration: which
// slice of the frequency-ranked lexicon to drill and which grammatical
// features and patterns are switched on.
type LearnerConfig struct {
	PartOfSpeech PartOfSpeech `json:"pos"`
	// MinRank/MaxRank bound the 1-based frequency rank window
	// (1 = most frequent lemma of the family)
	MinRank int `json:"min_rank"`
	MaxRank int `json:"max_rank"`

	// Noun features
	Cases   []NounCase `json:"cases,omitempty"`
	Genders []Gender   `json:"genders,omitempty"`

	// Verb features
	Tenses           []Tense  `json:"tenses,omitempty"`
	Persons          []Person `json:"persons,omitempty"`
	IncludeActive    bool     `json:"include_active"`
	IncludeReflexive bool     `json:"include_reflexive"`

	// Shared
	Numbers  []GrammNumber `json:"numbers"`
	Patterns []string      `json:"patterns"` // empty = all patterns enabled
}

// DefaultLearnerConfig returns the configuration used before the
// learner has saved anything: top 100 lemmas, all features on.
func DefaultLearnerConfig(pos PartOfSpeech) *LearnerConfig {
	cfg := &LearnerConfig{
		PartOfSpeech:  pos,
		MinRank:       1,
		MaxRank:       100,
		Numbers:       append([]GrammNumber(nil), AllNumbers...),
		IncludeActive: true,
	}
	if pos == Noun {
		cfg.Cases = append([]NounCase(nil), AllCases...)
		cfg.Genders = append([]Gender(nil), AllGenders...)
	} else {
		cfg.Tenses = append([]Tense(nil), AllTenses...)
		cfg.Persons = append([]Person(nil), AllPersons...)
		cfg.IncludeReflexive = true
	}
	return cfg
}

// CaseEnabled reports whether the case is switched on
func (c *LearnerConfig) CaseEnabled(v NounCase) bool {
	for _, e := range c.Cases {
		if e == v {
			return true
		}
	}
	return false
}

// GenderEnabled reports whether the gender is switched on
func (c *LearnerConfig) GenderEnabled(v Gender) bool {
	for _, e := range c.Genders {
		if e == v {
			return true
		}
	}
	return false
}

// NumberEnabled reports whether the grammatical number is switched on
func (c *LearnerConfig) NumberEnabled(v GrammNumber) bool {
	for _, e := range c.Numbers {
		if e == v {
			return true
		}
	}
	return false
}

// TenseEnabled reports whether the tense is switched on
func (c *LearnerConfig) TenseEnabled(v Tense) bool {
	for _, e := range c.Tenses {
		if e == v {
			return true
		}
	}
	return false
}

// PersonEnabled reports whether the person is switched on
func (c *LearnerConfig) PersonEnabled(v Person) bool {
	for _, e := range c.Persons {
		if e == v {
			return true
		}
	}
	return false
}

// VoiceEnabled reports whether the reflexive (or active) voice is switched on
func (c *LearnerConfig) VoiceEnabled(reflexive bool) bool {
	if reflexive {
		return c.IncludeReflexive
	}
	return c.IncludeActive
}

// PatternEnabled reports whether the pattern is switched on.
// An empty pattern list means every pattern is enabled.
func (c *LearnerConfig) PatternEnabled(pattern string) bool {
	if len(c.Patterns) == 0 {
		return true
	}
	for _, p := range c.Patterns {
		if p == pattern {
			return true
		}
	}
	return false
}
