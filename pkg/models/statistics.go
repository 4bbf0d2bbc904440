package models

import "time"

// PracticeStats is an aggregate snapshot of one word family's progress
type PracticeStats struct {
	PartOfSpeech   PartOfSpeech `json:"pos"`
	TrackedForms   int          `json:"tracked_forms"`
	RetiredForms   int          `json:"retired_forms"`
	TotalPractices int          `json:"total_practices"`
	LastPracticed  time.Time    `json:"last_practiced_utc"`
}
