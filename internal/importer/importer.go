// Package importer loads lexicon sheets into the training store. A
// sheet carries one headword per row: registry ID, lemma, part of
// speech, gender, corpus frequency, stem, pattern and flags.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/palipractice/internal/database"
	"github.com/example/palipractice/pkg/models"
	"github.com/xuri/excelize/v2"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath         string // Path to the Excel or CSV file
	LemmaIDColumn    string // Column with the registry lemma ID
	LemmaColumn      string // Column with the headword
	PosColumn        string // Column with the part of speech (noun/verb)
	GenderColumn     string // Column with the gender abbreviation (nouns)
	FrequencyColumn  string // Column with the corpus frequency count
	StemColumn       string // Column with the stem
	PatternColumn    string // Column with the pattern tag
	PluralOnlyColumn string // Column with the plural-only flag
	ExcludedColumn   string // Column with the excluded-variant flag
	SheetName        string // Name of the sheet to import
	StartRow         int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		LemmaIDColumn:    "A",
		LemmaColumn:      "B",
		PosColumn:        "C",
		GenderColumn:     "D",
		FrequencyColumn:  "E",
		StemColumn:       "F",
		PatternColumn:    "G",
		PluralOnlyColumn: "H",
		ExcludedColumn:   "I",
		SheetName:        "Sheet1",
		StartRow:         2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
}

// Patterns whose forms cannot be composed as stem+ending and are
// stored as literal inflections instead. Matches the extraction
// pipeline's irregular sets.
var irregularPatterns = map[string]bool{
	"rāja masc": true, "brahma masc": true, "kamma nt": true, "addha masc": true,
	"a masc east": true, "a masc pl": true, "a2 masc": true, "go masc": true,
	"yuva masc": true, "ī masc pl": true, "jantu masc": true, "u masc pl": true,
	"ar2 masc": true, "anta masc": true, "arahant masc": true, "bhavant masc": true,
	"santa masc": true, "parisā fem": true, "jāti fem": true, "ratti fem": true,
	"nadī fem": true, "pokkharaṇī fem": true, "mātar fem": true, "a nt east": true,
	"a nt irreg": true, "a nt pl": true,
	"hoti pr": true, "atthi pr": true, "karoti pr": true, "brūti pr": true,
	"dakkhati pr": true, "dammi pr": true, "hanati pr": true, "kubbati pr": true,
	"natthi pr": true, "eti pr 2": true,
}

// IsIrregularPattern reports whether a pattern needs literal forms
func IsIrregularPattern(pattern string) bool {
	return irregularPatterns[pattern]
}

// ImportLexicon imports headwords from an Excel or CSV file
func ImportLexicon(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(config)
	}
	return importFromExcel(config)
}

// importFromExcel imports headwords from an Excel file
func importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	repo := database.NewLexiconRepository()
	result := &ImportResult{Errors: make([]string, 0)}

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++
		if err := processRow(row, config, repo, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}

	return result, nil
}

// importFromCSV imports headwords from a CSV file
func importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	repo := database.NewLexiconRepository()
	result := &ImportResult{Errors: make([]string, 0)}

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}

		rowNum++
		if rowNum < config.StartRow {
			continue
		}

		result.TotalProcessed++
		if err := processRow(row, config, repo, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}

	return result, nil
}

// processRow parses and stores a single sheet row
func processRow(row []string, config ImportConfig, repo *database.LexiconRepository, result *ImportResult) error {
	cell := func(column string) string {
		if idx := columnToIndex(column); idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	idText := cell(config.LemmaIDColumn)
	lemma := cell(config.LemmaColumn)
	if idText == "" || lemma == "" {
		result.Skipped++
		return nil
	}

	lemmaID, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid lemma ID %q", idText)
	}

	pos := models.PartOfSpeech(strings.ToLower(cell(config.PosColumn)))
	if pos != models.Noun && pos != models.Verb {
		return fmt.Errorf("unknown part of speech %q", cell(config.PosColumn))
	}

	frequency := 0
	if text := cell(config.FrequencyColumn); text != "" {
		frequency, err = strconv.Atoi(text)
		if err != nil {
			return fmt.Errorf("invalid frequency count %q", text)
		}
	}

	pattern := cell(config.PatternColumn)
	entry := &models.LexicalEntry{
		LemmaID:        lemmaID,
		Lemma:          lemma,
		PartOfSpeech:   pos,
		Gender:         parseGender(cell(config.GenderColumn)),
		FrequencyCount: frequency,
		Stem:           cleanStem(cell(config.StemColumn)),
		Pattern:        pattern,
		Irregular:      IsIrregularPattern(pattern),
		PluralOnly:     parseBool(cell(config.PluralOnlyColumn)) || strings.HasSuffix(pattern, " pl"),
		Excluded:       parseBool(cell(config.ExcludedColumn)),
	}

	if err := repo.UpsertEntry(entry); err != nil {
		return err
	}
	result.Imported++
	return nil
}

// parseGender maps the sheet's gender abbreviation to the enum
func parseGender(text string) models.Gender {
	switch strings.ToLower(text) {
	case "masc", "masculine":
		return models.GenderMasculine
	case "fem", "feminine":
		return models.GenderFeminine
	case "nt", "neut", "neuter":
		return models.GenderNeuter
	}
	return models.GenderNone
}

// cleanStem strips the dictionary's marker characters (! and *) which
// never appear in actual inflected forms
func cleanStem(stem string) string {
	return strings.NewReplacer("!", "", "*", "").Replace(stem)
}

func parseBool(text string) bool {
	switch strings.ToLower(text) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

// columnToIndex converts an Excel column letter to a 0-based index
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return -1
	}
	idx := 0
	for _, c := range column {
		if c < 'A' || c > 'Z' {
			return -1
		}
		idx = idx*26 + int(c-'A') + 1
	}
	return idx - 1
}
