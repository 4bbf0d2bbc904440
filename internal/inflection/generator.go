// Package inflection turns a lexical entry plus a grammatical slot
// into concrete surface forms. Regular entries compose stem + ending
// from the pattern tables; irregular entries read literal forms
// straight from the corpus data.
package inflection

import (
	"fmt"

	"github.com/example/palipractice/internal/forms"
	"github.com/example/palipractice/pkg/models"
)

// EndingsSource supplies the pattern tables: the ordered suffixes a
// pattern prescribes for one slot. An empty result is a legitimate
// answer (e.g. a plural-only pattern asked for a singular slot).
type EndingsSource interface {
	Endings(pattern string, slot models.Slot) ([]string, error)
}

// IrregularSource supplies literal inflected forms for irregular
// lemmas, in the corpus table's intrinsic order.
type IrregularSource interface {
	IrregularForms(lemmaID int64, slot models.Slot) ([]string, error)
}

// CorpusChecker answers whether one exact surface form occurs in the
// reference corpus.
type CorpusChecker interface {
	IsAttested(lemmaID int64, slot models.Slot, variantIndex int) (bool, error)
}

// Generator produces candidate surface forms. The three data sources
// are injected so the generation logic tests without a database.
type Generator struct {
	endings   EndingsSource
	irregular IrregularSource
	corpus    CorpusChecker
}

// NewGenerator creates a generator over the given data sources
func NewGenerator(endings EndingsSource, irregular IrregularSource, corpus CorpusChecker) *Generator {
	return &Generator{
		endings:   endings,
		irregular: irregular,
		corpus:    corpus,
	}
}

// Generate returns every candidate surface form for the (entry, slot)
// pair, in the pattern table's order. Variant indices are the 1-based
// position in that order. An empty result is not an error: it means
// the slot is ineligible for this lemma and should be filtered by the
// scheduler, not surfaced as a failure.
func (g *Generator) Generate(entry models.LexicalEntry, slot models.Slot) ([]models.GeneratedForm, error) {
	if entry.Stem == "" || entry.Pattern == "" {
		return nil, nil
	}

	if entry.Irregular {
		return g.generateIrregular(entry, slot)
	}

	suffixes, err := g.endings.Endings(entry.Pattern, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to look up endings for pattern %q: %w", entry.Pattern, err)
	}
	if len(suffixes) == 0 {
		return nil, nil
	}

	result := make([]models.GeneratedForm, 0, len(suffixes))
	for i, suffix := range suffixes {
		variant := i + 1
		text := entry.Stem
		// "-" in the pattern tables marks a bare-stem form
		if suffix != "-" {
			text += suffix
		}
		id, err := forms.Encode(entry.LemmaID, slot, variant)
		if err != nil {
			return nil, fmt.Errorf("failed to encode form for lemma %d: %w", entry.LemmaID, err)
		}
		attested, err := g.corpus.IsAttested(entry.LemmaID, slot, variant)
		if err != nil {
			return nil, fmt.Errorf("failed corpus lookup for lemma %d: %w", entry.LemmaID, err)
		}
		result = append(result, models.GeneratedForm{
			FormID:       id,
			Text:         text,
			VariantIndex: variant,
			InCorpus:     attested,
		})
	}
	return result, nil
}

// generateIrregular reads the literal forms. They were extracted from
// the corpus tables directly, so they are attested by construction.
func (g *Generator) generateIrregular(entry models.LexicalEntry, slot models.Slot) ([]models.GeneratedForm, error) {
	literals, err := g.irregular.IrregularForms(entry.LemmaID, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to look up irregular forms for lemma %d: %w", entry.LemmaID, err)
	}
	if len(literals) == 0 {
		return nil, nil
	}

	result := make([]models.GeneratedForm, 0, len(literals))
	for i, text := range literals {
		variant := i + 1
		id, err := forms.Encode(entry.LemmaID, slot, variant)
		if err != nil {
			return nil, fmt.Errorf("failed to encode form for lemma %d: %w", entry.LemmaID, err)
		}
		result = append(result, models.GeneratedForm{
			FormID:       id,
			Text:         text,
			VariantIndex: variant,
			InCorpus:     true,
		})
	}
	return result, nil
}
