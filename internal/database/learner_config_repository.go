package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/example/palipractice/pkg/models"
)

// learnerConfigRow is the flat table shape; feature lists are stored
// as comma-joined enum codes.
type learnerConfigRow struct {
	Pos              models.PartOfSpeech `db:"pos"`
	MinRank          int                 `db:"min_rank"`
	MaxRank          int                 `db:"max_rank"`
	EnabledCases     string              `db:"enabled_cases"`
	EnabledGenders   string              `db:"enabled_genders"`
	EnabledNumbers   string              `db:"enabled_numbers"`
	EnabledTenses    string              `db:"enabled_tenses"`
	EnabledPersons   string              `db:"enabled_persons"`
	IncludeActive    bool                `db:"include_active"`
	IncludeReflexive bool                `db:"include_reflexive"`
	EnabledPatterns  string              `db:"enabled_patterns"`
	UpdatedAt        time.Time           `db:"updated_at"`
}

// LearnerConfigRepository handles database operations for the per-family
// practice configuration
type LearnerConfigRepository struct{}

// NewLearnerConfigRepository creates a new repository instance
func NewLearnerConfigRepository() *LearnerConfigRepository {
	return &LearnerConfigRepository{}
}

// Get returns the stored configuration for one word family, or the
// defaults if the learner never saved one.
func (r *LearnerConfigRepository) Get(pos models.PartOfSpeech) (*models.LearnerConfig, error) {
	var row learnerConfigRow
	err := DB.Get(&row, "SELECT * FROM learner_config WHERE pos = $1", pos)
	if err == sql.ErrNoRows {
		return models.DefaultLearnerConfig(pos), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get learner config: %v", err)
	}

	cfg := &models.LearnerConfig{
		PartOfSpeech:     row.Pos,
		MinRank:          row.MinRank,
		MaxRank:          row.MaxRank,
		IncludeActive:    row.IncludeActive,
		IncludeReflexive: row.IncludeReflexive,
	}
	for _, v := range splitCodes(row.EnabledCases) {
		cfg.Cases = append(cfg.Cases, models.NounCase(v))
	}
	for _, v := range splitCodes(row.EnabledGenders) {
		cfg.Genders = append(cfg.Genders, models.Gender(v))
	}
	for _, v := range splitCodes(row.EnabledNumbers) {
		cfg.Numbers = append(cfg.Numbers, models.GrammNumber(v))
	}
	for _, v := range splitCodes(row.EnabledTenses) {
		cfg.Tenses = append(cfg.Tenses, models.Tense(v))
	}
	for _, v := range splitCodes(row.EnabledPersons) {
		cfg.Persons = append(cfg.Persons, models.Person(v))
	}
	if row.EnabledPatterns != "" {
		cfg.Patterns = strings.Split(row.EnabledPatterns, ",")
	}
	return cfg, nil
}

// Save stores the configuration for one word family
func (r *LearnerConfigRepository) Save(cfg *models.LearnerConfig) error {
	var cases, genders, numbers, tenses, persons []int
	for _, v := range cfg.Cases {
		cases = append(cases, int(v))
	}
	for _, v := range cfg.Genders {
		genders = append(genders, int(v))
	}
	for _, v := range cfg.Numbers {
		numbers = append(numbers, int(v))
	}
	for _, v := range cfg.Tenses {
		tenses = append(tenses, int(v))
	}
	for _, v := range cfg.Persons {
		persons = append(persons, int(v))
	}

	query := `
		INSERT INTO learner_config (pos, min_rank, max_rank, enabled_cases, enabled_genders,
			enabled_numbers, enabled_tenses, enabled_persons, include_active, include_reflexive, enabled_patterns)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (pos) DO UPDATE SET
			min_rank = EXCLUDED.min_rank,
			max_rank = EXCLUDED.max_rank,
			enabled_cases = EXCLUDED.enabled_cases,
			enabled_genders = EXCLUDED.enabled_genders,
			enabled_numbers = EXCLUDED.enabled_numbers,
			enabled_tenses = EXCLUDED.enabled_tenses,
			enabled_persons = EXCLUDED.enabled_persons,
			include_active = EXCLUDED.include_active,
			include_reflexive = EXCLUDED.include_reflexive,
			enabled_patterns = EXCLUDED.enabled_patterns,
			updated_at = CURRENT_TIMESTAMP
	`
	_, err := DB.Exec(query,
		cfg.PartOfSpeech,
		cfg.MinRank,
		cfg.MaxRank,
		joinCodes(cases),
		joinCodes(genders),
		joinCodes(numbers),
		joinCodes(tenses),
		joinCodes(persons),
		cfg.IncludeActive,
		cfg.IncludeReflexive,
		strings.Join(cfg.Patterns, ","),
	)
	if err != nil {
		return fmt.Errorf("failed to save learner config: %v", err)
	}
	return nil
}

func splitCodes(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	codes := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			continue
		}
		codes = append(codes, v)
	}
	return codes
}

func joinCodes(codes []int) string {
	parts := make([]string, len(codes))
	for i, v := range codes {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
