package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNounSlotComboKey(t *testing.T) {
	slot := NounSlot{Case: CaseAccusative, Gender: GenderFeminine, Number: NumberPlural}
	assert.Equal(t, "noun|acc|fem|pl", slot.ComboKey())
}

func TestVerbSlotComboKey(t *testing.T) {
	active := VerbSlot{Tense: TenseOptative, Person: PersonSecond, Number: NumberSingular}
	assert.Equal(t, "verb|opt|2nd|sg|act", active.ComboKey())

	reflexive := active
	reflexive.Reflexive = true
	assert.Equal(t, "verb|opt|2nd|sg|refl", reflexive.ComboKey())
}

func TestSlotSpecified(t *testing.T) {
	assert.True(t, NounSlot{Case: CaseNominative, Gender: GenderMasculine, Number: NumberSingular}.Specified())
	assert.False(t, NounSlot{Case: CaseNominative, Number: NumberSingular}.Specified())
	assert.True(t, VerbSlot{Tense: TensePresent, Person: PersonThird, Number: NumberPlural}.Specified())
	assert.False(t, VerbSlot{Person: PersonThird, Number: NumberPlural}.Specified())
}

func TestSlotEquality(t *testing.T) {
	a := NounSlot{Case: CaseDative, Gender: GenderNeuter, Number: NumberSingular}
	b := NounSlot{Case: CaseDative, Gender: GenderNeuter, Number: NumberSingular}
	assert.Equal(t, a, b)
	b.Number = NumberPlural
	assert.NotEqual(t, a, b)
}
