// Package forms encodes and decodes form identities: the single
// integer key that names one (lemma, grammatical slot, variant) triple
// across the mastery store, the corpus tables and the practice queue.
//
// The encoding packs decimal digits, matching the training database:
//
//	noun: lemmaID(5) case(1) gender(1) number(1) variant(1)  -> 9 digits
//	verb: lemmaID(5) tense(1) person(1) number(1) reflexive(1) variant(1) -> 10 digits
//
// Noun lemma IDs live in 10001-69999 and verb lemma IDs in
// 70001-99999, so the bare integer is unambiguous: any valid noun ID
// is below the smallest valid verb ID.
package forms

import (
	"errors"
	"fmt"

	"github.com/example/palipractice/pkg/models"
)

// Lemma ID ranges, fixed by the lemma registry
const (
	NounIDStart int64 = 10001
	NounIDMax   int64 = 69999
	VerbIDStart int64 = 70001
	VerbIDMax   int64 = 99999
)

// MaxVariantIndex is the largest encodable variant. Variant 0 is the
// slot reference; 1-9 name concrete endings (the richest patterns have
// about seven acceptable endings for a single slot).
const MaxVariantIndex = 9

var (
	// ErrInvalidSlot means Encode was called with an unspecified
	// feature or an out-of-range lemma/variant. Programmer error.
	ErrInvalidSlot = errors.New("invalid slot")
	// ErrMalformedFormID means Decode was given an integer no valid
	// Encode call could have produced.
	ErrMalformedFormID = errors.New("malformed form identity")
)

// Encode packs a (lemmaID, slot, variantIndex) triple into a form ID.
// Variant 0 denotes the slot reference used as the mastery key.
func Encode(lemmaID int64, slot models.Slot, variantIndex int) (int64, error) {
	if variantIndex < 0 || variantIndex > MaxVariantIndex {
		return 0, fmt.Errorf("%w: variant index %d out of range", ErrInvalidSlot, variantIndex)
	}
	if !slot.Specified() {
		return 0, fmt.Errorf("%w: unspecified feature in %s", ErrInvalidSlot, slot.ComboKey())
	}
	switch s := slot.(type) {
	case models.NounSlot:
		if lemmaID < NounIDStart || lemmaID > NounIDMax {
			return 0, fmt.Errorf("%w: noun lemma ID %d out of range", ErrInvalidSlot, lemmaID)
		}
		return lemmaID*10_000 + int64(s.Case)*1_000 + int64(s.Gender)*100 + int64(s.Number)*10 + int64(variantIndex), nil
	case models.VerbSlot:
		if lemmaID < VerbIDStart || lemmaID > VerbIDMax {
			return 0, fmt.Errorf("%w: verb lemma ID %d out of range", ErrInvalidSlot, lemmaID)
		}
		refl := int64(0)
		if s.Reflexive {
			refl = 1
		}
		return lemmaID*100_000 + int64(s.Tense)*10_000 + int64(s.Person)*1_000 + int64(s.Number)*100 + refl*10 + int64(variantIndex), nil
	default:
		return 0, fmt.Errorf("%w: unknown slot type %T", ErrInvalidSlot, slot)
	}
}

// Decode unpacks a form ID back into its (lemmaID, slot, variantIndex)
// triple. It is the exact inverse of Encode; anything Encode could not
// have produced yields ErrMalformedFormID.
func Decode(id int64) (int64, models.Slot, int, error) {
	switch {
	case id >= NounIDStart*10_000 && id <= NounIDMax*10_000+9_999:
		lemmaID := id / 10_000
		rest := id % 10_000
		slot := models.NounSlot{
			Case:   models.NounCase(rest / 1_000),
			Gender: models.Gender(rest / 100 % 10),
			Number: models.GrammNumber(rest / 10 % 10),
		}
		variant := int(rest % 10)
		if slot.Case > models.CaseVocative || slot.Gender > models.GenderNeuter ||
			slot.Number > models.NumberPlural || !slot.Specified() {
			return 0, nil, 0, fmt.Errorf("%w: %d", ErrMalformedFormID, id)
		}
		return lemmaID, slot, variant, nil

	case id >= VerbIDStart*100_000 && id <= VerbIDMax*100_000+99_999:
		lemmaID := id / 100_000
		rest := id % 100_000
		slot := models.VerbSlot{
			Tense:     models.Tense(rest / 10_000),
			Person:    models.Person(rest / 1_000 % 10),
			Number:    models.GrammNumber(rest / 100 % 10),
			Reflexive: rest/10%10 == 1,
		}
		variant := int(rest % 10)
		if slot.Tense > models.TenseAorist || slot.Person > models.PersonThird ||
			slot.Number > models.NumberPlural || rest/10%10 > 1 || !slot.Specified() {
			return 0, nil, 0, fmt.Errorf("%w: %d", ErrMalformedFormID, id)
		}
		return lemmaID, slot, variant, nil

	default:
		return 0, nil, 0, fmt.Errorf("%w: %d", ErrMalformedFormID, id)
	}
}

// SlotReference maps any form ID onto the variant-0 ID of the same
// slot, the key under which mastery is tracked.
func SlotReference(id int64) (int64, error) {
	if _, _, _, err := Decode(id); err != nil {
		return 0, err
	}
	return id - id%10, nil
}

// FamilyOf reports which word family a form ID belongs to
func FamilyOf(id int64) (models.PartOfSpeech, error) {
	_, slot, _, err := Decode(id)
	if err != nil {
		return "", err
	}
	return slot.PartOfSpeech(), nil
}
