package feedback

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles AI feedback database operations
type Repository struct {
	db *pgxpool.Pool
}

// which kind of suggestion the feedback targets
const (
	AdviceTypeDaily       = "daily"
	AdviceTypeWeekly      = "weekly"
	AdviceTypeAlternative = "alternative"
)

func IsValidAdviceType(adviceType string) bool {
	switch adviceType {
	case AdviceTypeDaily, AdviceTypeWeekly, AdviceTypeAlternative:
		return true
	}

	return false
}

// Feedback is one thumbs-up/down on a suggested technique. Rejected
// techniques feed the exclusion list in later prompts.
type Feedback struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Technique       string    `json:"technique"`
	Liked           bool      `json:"liked"`
	RejectionReason string    `json:"rejection_reason"`
	AdviceType      string    `json:"advice_type"`
	CreatedAt       time.Time `json:"created_at"`
}
