package models

import "fmt"

// Slot is one grammatical feature tuple, independent of any lemma.
// Two slots are equal iff all features match, so the concrete types
// are plain comparable structs.
type Slot interface {
	// PartOfSpeech tells which word family the slot belongs to
	PartOfSpeech() PartOfSpeech
	// ComboKey is the canonical lemma-independent serialization of the
	// slot, used for difficulty tracking and aggregate statistics
	ComboKey() string
	// Specified reports whether every feature carries a real value
	// (no unspecified sentinels)
	Specified() bool
}

// NounSlot is a declension feature tuple: case + gender + number
type NounSlot struct {
	Case   NounCase
	Gender Gender
	Number GrammNumber
}

// PartOfSpeech returns Noun
func (s NounSlot) PartOfSpeech() PartOfSpeech { return Noun }

// ComboKey returns e.g. "noun|acc|masc|sg"
func (s NounSlot) ComboKey() string {
	return fmt.Sprintf("noun|%s|%s|%s", s.Case, s.Gender, s.Number)
}

// Specified reports whether case, gender and number are all set
func (s NounSlot) Specified() bool {
	return s.Case != CaseNone && s.Gender != GenderNone && s.Number != NumberNone
}

// VerbSlot is a conjugation feature tuple: tense + person + number + voice
type VerbSlot struct {
	Tense     Tense
	Person    Person
	Number    GrammNumber
	Reflexive bool
}

// PartOfSpeech returns Verb
func (s VerbSlot) PartOfSpeech() PartOfSpeech { return Verb }

// ComboKey returns e.g. "verb|opt|2nd|pl|refl"
func (s VerbSlot) ComboKey() string {
	voice := "act"
	if s.Reflexive {
		voice = "refl"
	}
	return fmt.Sprintf("verb|%s|%s|%s|%s", s.Tense, s.Person, s.Number, voice)
}

// Specified reports whether tense, person and number are all set.
// Reflexive is a two-valued voice flag, so both values are legal.
func (s VerbSlot) Specified() bool {
	return s.Tense != TenseNone && s.Person != PersonNone && s.Number != NumberNone
}
