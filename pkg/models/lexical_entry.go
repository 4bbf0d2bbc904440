package models

import "time"

// LexicalEntry is one headword from the training lexicon. Entries are
// immutable at practice time; the importer is the only writer.
type LexicalEntry struct {
	// LemmaID is the stable registry ID. Nouns and verbs occupy
	// disjoint ranges (10001-69999 and 70001-99999) so a bare ID is
	// unambiguous without a type tag.
	LemmaID        int64        `json:"lemma_id" db:"id"`
	Lemma          string       `json:"lemma" db:"lemma"`
	PartOfSpeech   PartOfSpeech `json:"pos" db:"pos"`
	Gender         Gender       `json:"gender" db:"gender"` // nouns only, GenderNone for verbs
	FrequencyCount int          `json:"frequency_count" db:"frequency_count"`
	Stem           string       `json:"stem" db:"stem"`
	Pattern        string       `json:"pattern" db:"pattern"`
	Irregular      bool         `json:"irregular" db:"irregular"`
	// PluralOnly marks pluralia tantum: never eligible for singular slots
	PluralOnly bool `json:"plural_only" db:"plural_only"`
	// Excluded marks minority-pattern variants of another lemma; they
	// are kept for display lookups but never scheduled
	Excluded  bool      `json:"excluded" db:"excluded"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// GeneratedForm is one candidate surface realization of a slot
type GeneratedForm struct {
	FormID       int64  `json:"form_id"`
	Text         string `json:"text"`
	VariantIndex int    `json:"variant_index"`
	// InCorpus reports whether this exact surface form occurs in the
	// reference corpus, as opposed to being merely well-formed
	InCorpus bool `json:"in_corpus"`
}
