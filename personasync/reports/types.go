package reports

import (
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles weekly report database operations
type Repository struct {
	db *pgxpool.Pool
}

// Report is one persisted weekly report. Stats is the aggregate block
// stored as JSONB and passed through to clients untouched.
type Report struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	WeekStart time.Time       `json:"week_start"`
	WeekEnd   time.Time       `json:"week_end"`
	CreatedAt time.Time       `json:"created_at"`
	Stats     json.RawMessage `json:"stats"`
	AIMessage string          `json:"ai_message"`
	IsViewed  bool            `json:"is_viewed"`
}
