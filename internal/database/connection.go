package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. DB_TYPE selects
// sqlite (default) or postgres; postgres reads DATABASE_URL.
func Connect() error {
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "sqlite"
	}

	var db *sqlx.DB
	var err error
	if dbType == "postgres" {
		db, err = sqlx.Connect("postgres", os.Getenv("DATABASE_URL"))
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %v", err)
		}
	} else {
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "data"
		}
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %v", err)
		}

		dbPath := filepath.Join(dataDir, "palipractice.db")
		db, err = sqlx.Connect("sqlite3", dbPath)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}

		// Enable foreign keys
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return fmt.Errorf("failed to enable foreign keys: %v", err)
		}

		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	DB = db

	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	// Lexicon: one row per headword. IDs come from the lemma registry
	// (nouns 10001-69999, verbs 70001-99999) and are stable across
	// re-imports.
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS lemmas (
			id INTEGER PRIMARY KEY,
			lemma TEXT NOT NULL,
			pos TEXT NOT NULL,
			gender INTEGER DEFAULT 0,
			frequency_count INTEGER DEFAULT 0,
			stem TEXT DEFAULT '',
			pattern TEXT DEFAULT '',
			irregular BOOLEAN DEFAULT FALSE,
			plural_only BOOLEAN DEFAULT FALSE,
			excluded BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create lemmas table: %v", err)
	}

	_, err = DB.Exec(`CREATE INDEX IF NOT EXISTS idx_lemmas_pos_frequency ON lemmas(pos, frequency_count DESC)`)
	if err != nil {
		return fmt.Errorf("failed to create lemmas index: %v", err)
	}

	// Inflections: concrete surface forms keyed by encoded form ID.
	// Carries irregular literals and the corpus-attestation flag.
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS inflections (
			form_id BIGINT PRIMARY KEY,
			lemma_id INTEGER NOT NULL,
			inflected_form TEXT NOT NULL,
			variant_index INTEGER NOT NULL,
			in_corpus BOOLEAN DEFAULT FALSE,
			FOREIGN KEY (lemma_id) REFERENCES lemmas(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create inflections table: %v", err)
	}

	_, err = DB.Exec(`CREATE INDEX IF NOT EXISTS idx_inflections_lemma ON inflections(lemma_id)`)
	if err != nil {
		return fmt.Errorf("failed to create inflections index: %v", err)
	}

	// Pattern tables: ordered endings per (pattern, slot combo)
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS endings (
			pattern TEXT NOT NULL,
			combo_key TEXT NOT NULL,
			position INTEGER NOT NULL,
			ending TEXT NOT NULL,
			PRIMARY KEY (pattern, combo_key, position)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create endings table: %v", err)
	}

	// Mastery: one row per practiced slot reference (variant-0 form ID)
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS mastery (
			form_id BIGINT PRIMARY KEY,
			pos TEXT NOT NULL,
			level INTEGER NOT NULL,
			previous_level INTEGER NOT NULL DEFAULT 0,
			last_practiced_utc TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create mastery table: %v", err)
	}

	_, err = DB.Exec(`CREATE INDEX IF NOT EXISTS idx_mastery_pos_level ON mastery(pos, level)`)
	if err != nil {
		return fmt.Errorf("failed to create mastery index: %v", err)
	}

	// Practice history: append-only answer log
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS practice_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			form_id BIGINT NOT NULL,
			was_easy BOOLEAN NOT NULL,
			level_before INTEGER NOT NULL,
			level_after INTEGER NOT NULL,
			practiced_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create practice_history table: %v", err)
	}

	// Combo difficulty: EMA score per grammatical combination
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS combo_difficulty (
			combo_key TEXT PRIMARY KEY,
			score REAL NOT NULL DEFAULT 0.5,
			total_attempts INTEGER NOT NULL DEFAULT 0,
			last_updated_utc TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create combo_difficulty table: %v", err)
	}

	// Learner configuration: one row per word family
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS learner_config (
			pos TEXT PRIMARY KEY,
			min_rank INTEGER NOT NULL DEFAULT 1,
			max_rank INTEGER NOT NULL DEFAULT 100,
			enabled_cases TEXT DEFAULT '',
			enabled_genders TEXT DEFAULT '',
			enabled_numbers TEXT DEFAULT '',
			enabled_tenses TEXT DEFAULT '',
			enabled_persons TEXT DEFAULT '',
			include_active BOOLEAN DEFAULT TRUE,
			include_reflexive BOOLEAN DEFAULT TRUE,
			enabled_patterns TEXT DEFAULT '',
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create learner_config table: %v", err)
	}

	return nil
}
