package database

import (
	"database/sql"
	"fmt"

	"github.com/example/palipractice/internal/forms"
	"github.com/example/palipractice/pkg/models"
)

// LexiconRepository handles the read-only linguistic tables: headwords,
// pattern endings, irregular literals and corpus attestation. The
// importer is the only writer.
type LexiconRepository struct{}

// NewLexiconRepository creates a new repository instance
func NewLexiconRepository() *LexiconRepository {
	return &LexiconRepository{}
}

// Entries returns the lexical entries of one word family whose 1-based
// frequency rank falls inside [minRank, maxRank], most frequent first.
func (r *LexiconRepository) Entries(pos models.PartOfSpeech, minRank, maxRank int) ([]models.LexicalEntry, error) {
	if minRank < 1 {
		minRank = 1
	}
	if maxRank < minRank {
		return nil, nil
	}
	query := `
		SELECT * FROM lemmas
		WHERE pos = $1
		ORDER BY frequency_count DESC, id ASC
		LIMIT $2 OFFSET $3
	`
	var entries []models.LexicalEntry
	err := DB.Select(&entries, query, pos, maxRank-minRank+1, minRank-1)
	if err != nil {
		return nil, fmt.Errorf("failed to get lexicon entries: %v", err)
	}
	return entries, nil
}

// GetByID returns one lexical entry
func (r *LexiconRepository) GetByID(lemmaID int64) (*models.LexicalEntry, error) {
	var entry models.LexicalEntry
	err := DB.Get(&entry, "SELECT * FROM lemmas WHERE id = $1", lemmaID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lemma %d: %v", lemmaID, err)
	}
	return &entry, nil
}

// Endings returns the ordered suffixes a pattern prescribes for one
// slot. An empty result means the pattern has no forms for the slot.
func (r *LexiconRepository) Endings(pattern string, slot models.Slot) ([]string, error) {
	query := `
		SELECT ending FROM endings
		WHERE pattern = $1 AND combo_key = $2
		ORDER BY position ASC
	`
	var endings []string
	err := DB.Select(&endings, query, pattern, slot.ComboKey())
	if err != nil {
		return nil, fmt.Errorf("failed to get endings for pattern %q: %v", pattern, err)
	}
	return endings, nil
}

// IrregularForms returns the literal inflected forms stored for an
// irregular lemma's slot, in variant order.
func (r *LexiconRepository) IrregularForms(lemmaID int64, slot models.Slot) ([]string, error) {
	slotRef, err := forms.Encode(lemmaID, slot, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to encode slot for lemma %d: %w", lemmaID, err)
	}
	query := `
		SELECT inflected_form FROM inflections
		WHERE form_id > $1 AND form_id <= $2
		ORDER BY form_id ASC
	`
	var literals []string
	err = DB.Select(&literals, query, slotRef, slotRef+forms.MaxVariantIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to get irregular forms for lemma %d: %v", lemmaID, err)
	}
	return literals, nil
}

// IsAttested reports whether the exact surface form occurs in the
// reference corpus. Unknown forms are simply unattested.
func (r *LexiconRepository) IsAttested(lemmaID int64, slot models.Slot, variantIndex int) (bool, error) {
	formID, err := forms.Encode(lemmaID, slot, variantIndex)
	if err != nil {
		return false, fmt.Errorf("failed to encode form for lemma %d: %w", lemmaID, err)
	}
	var inCorpus bool
	err = DB.Get(&inCorpus, "SELECT in_corpus FROM inflections WHERE form_id = $1", formID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed corpus lookup for form %d: %v", formID, err)
	}
	return inCorpus, nil
}

// UpsertEntry inserts or updates one headword (importer use)
func (r *LexiconRepository) UpsertEntry(entry *models.LexicalEntry) error {
	query := `
		INSERT INTO lemmas (id, lemma, pos, gender, frequency_count, stem, pattern, irregular, plural_only, excluded)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			lemma = EXCLUDED.lemma,
			pos = EXCLUDED.pos,
			gender = EXCLUDED.gender,
			frequency_count = EXCLUDED.frequency_count,
			stem = EXCLUDED.stem,
			pattern = EXCLUDED.pattern,
			irregular = EXCLUDED.irregular,
			plural_only = EXCLUDED.plural_only,
			excluded = EXCLUDED.excluded,
			updated_at = CURRENT_TIMESTAMP
	`
	_, err := DB.Exec(query,
		entry.LemmaID,
		entry.Lemma,
		entry.PartOfSpeech,
		entry.Gender,
		entry.FrequencyCount,
		entry.Stem,
		entry.Pattern,
		entry.Irregular,
		entry.PluralOnly,
		entry.Excluded,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert lemma %d: %v", entry.LemmaID, err)
	}
	return nil
}

// UpsertInflection inserts or updates one surface form (importer use)
func (r *LexiconRepository) UpsertInflection(formID, lemmaID int64, text string, variantIndex int, inCorpus bool) error {
	query := `
		INSERT INTO inflections (form_id, lemma_id, inflected_form, variant_index, in_corpus)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (form_id) DO UPDATE SET
			inflected_form = EXCLUDED.inflected_form,
			in_corpus = EXCLUDED.in_corpus
	`
	_, err := DB.Exec(query, formID, lemmaID, text, variantIndex, inCorpus)
	if err != nil {
		return fmt.Errorf("failed to upsert inflection %d: %v", formID, err)
	}
	return nil
}

// UpsertEnding inserts or updates one pattern-table cell (importer use)
func (r *LexiconRepository) UpsertEnding(pattern, comboKey string, position int, ending string) error {
	query := `
		INSERT INTO endings (pattern, combo_key, position, ending)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (pattern, combo_key, position) DO UPDATE SET
			ending = EXCLUDED.ending
	`
	_, err := DB.Exec(query, pattern, comboKey, position, ending)
	if err != nil {
		return fmt.Errorf("failed to upsert ending for pattern %q: %v", pattern, err)
	}
	return nil
}
