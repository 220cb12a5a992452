package pomodoro

import "codeberg.org/personasync/server/personasync/sessions"

const (
	defaultDurationMinutes = 25
	defaultHistoryDays     = 7
	maxHistoryDays         = 90
)

// contains data for starting a new session
type StartRequest struct {
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,gte=1,lte=240"`
	Category        string `json:"category" binding:"omitempty"`
	Note            string `json:"note" binding:"omitempty,max=500"`
}

// contains optional data when finishing a session
type CompleteRequest struct {
	Note string `json:"note" binding:"omitempty,max=500"`
}

// aggregated numbers over a set of sessions
type StatsResponse struct {
	TotalSessions     int            `json:"total_sessions"`
	CompletedSessions int            `json:"completed_sessions"`
	CancelledSessions int            `json:"cancelled_sessions"`
	TotalMinutes      int            `json:"total_minutes"`
	CategoryBreakdown map[string]int `json:"category_breakdown"` // completed session counts
}

// session list plus its aggregate stats
type HistoryResponse struct {
	Sessions []sessions.Session `json:"sessions"`
	Stats    StatsResponse      `json:"stats"`
}
