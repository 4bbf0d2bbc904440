package models

// ItemSource says which scheduling pool a practice item came from
type ItemSource string

const (
	// DueForReview items have an active mastery record whose cooldown elapsed
	DueForReview ItemSource = "due"
	// NewForm items have never been practiced
	NewForm ItemSource = "new"
	// DifficultCombo items were injected because their grammatical
	// combination scores as historically hard
	DifficultCombo ItemSource = "difficult"
)

// PracticeItem is one scheduled unit in a practice queue. Items are
// built fresh on every queue build and never persisted.
type PracticeItem struct {
	FormID   int64      `json:"form_id"`
	LemmaID  int64      `json:"lemma_id"`
	Source   ItemSource `json:"source"`
	Priority float64    `json:"priority"` // 0.0-1.0
}
