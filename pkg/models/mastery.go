package models

import "time"

// MasteryRecord tracks practice state for one slot. It is keyed by the
// slot-reference form ID (variant index 0), so mastery is independent
// of which literal ending was shown. Records are created on first
// practice and never deleted.
type MasteryRecord struct {
	FormID        int64        `json:"form_id" db:"form_id"`
	PartOfSpeech  PartOfSpeech `json:"pos" db:"pos"`
	Level         int          `json:"level" db:"level"` // 1-10 active, 11 retired
	PreviousLevel int          `json:"previous_level" db:"previous_level"`
	LastPracticed time.Time    `json:"last_practiced_utc" db:"last_practiced_utc"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`
}

// PracticeResult is one appended history row for a recorded answer
type PracticeResult struct {
	ID          int64     `json:"id" db:"id"`
	FormID      int64     `json:"form_id" db:"form_id"`
	WasEasy     bool      `json:"was_easy" db:"was_easy"`
	LevelBefore int       `json:"level_before" db:"level_before"`
	LevelAfter  int       `json:"level_after" db:"level_after"`
	PracticedAt time.Time `json:"practiced_at" db:"practiced_at"`
}
