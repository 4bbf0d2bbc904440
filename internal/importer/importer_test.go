package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/palipractice/pkg/models"
)

func TestColumnToIndex(t *testing.T) {
	assert.Equal(t, 0, columnToIndex("A"))
	assert.Equal(t, 7, columnToIndex("H"))
	assert.Equal(t, 25, columnToIndex("Z"))
	assert.Equal(t, 26, columnToIndex("AA"))
	assert.Equal(t, -1, columnToIndex(""))
	assert.Equal(t, -1, columnToIndex("1"))
}

func TestParseGender(t *testing.T) {
	assert.Equal(t, models.GenderMasculine, parseGender("masc"))
	assert.Equal(t, models.GenderFeminine, parseGender("Fem"))
	assert.Equal(t, models.GenderNeuter, parseGender("nt"))
	assert.Equal(t, models.GenderNone, parseGender("abstr"))
	assert.Equal(t, models.GenderNone, parseGender(""))
}

func TestCleanStem(t *testing.T) {
	// dictionary marker characters never appear in surface forms
	assert.Equal(t, "kamm", cleanStem("kamm!"))
	assert.Equal(t, "bhavant", cleanStem("*bhavant"))
	assert.Equal(t, "dhamm", cleanStem("dhamm"))
}

func TestIsIrregularPattern(t *testing.T) {
	assert.True(t, IsIrregularPattern("rāja masc"))
	assert.True(t, IsIrregularPattern("hoti pr"))
	assert.False(t, IsIrregularPattern("a masc"))
	assert.False(t, IsIrregularPattern(""))
}
