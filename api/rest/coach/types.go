package coach

import (
	"time"

	"codeberg.org/personasync/server/internal/coach"
)

const feedbackHistoryLimit = 20

// contains optional context for a daily advice request
type DailyAdviceRequest struct {
	ExtraContext string `json:"extra_context" binding:"omitempty,max=300"`
}

// selects the analysis window for an on-demand weekly report
type WeeklyReportRequest struct {
	Days int `json:"days" binding:"omitempty,gte=3,lte=30"`
}

// contains the trigger and optional note for a motivation request
type MotivationRequest struct {
	Trigger  string `json:"trigger" binding:"required"`
	UserNote string `json:"user_note" binding:"omitempty,max=200"`
}

// contains one thumbs-up/down on a suggested technique
type FeedbackRequest struct {
	Technique       string `json:"technique" binding:"required,max=100"`
	Liked           *bool  `json:"liked" binding:"required"`
	RejectionReason string `json:"rejection_reason" binding:"omitempty,max=500"`
	AdviceType      string `json:"advice_type" binding:"omitempty"`
}

// names the completed session to summarize
type SessionSummaryRequest struct {
	SessionID string `json:"session_id" binding:"required,uuid"`
}

// daily advice plus generation metadata
type DailyAdviceResponse struct {
	coach.DailyAdvice
	GeneratedAt time.Time `json:"generated_at"`
	Model       string    `json:"model"`
}

// weekly report plus the raw numbers behind it
type WeeklyReportResponse struct {
	coach.WeeklyReport
	StatsSnapshot StatsSnapshot `json:"stats_snapshot"`
	PeriodDays    int           `json:"period_days"`
	GeneratedAt   time.Time     `json:"generated_at"`
	Model         string        `json:"model"`
}

// raw weekly numbers returned alongside the narrative for charts
type StatsSnapshot struct {
	TotalSessions     int            `json:"total_sessions"`
	CompletedSessions int            `json:"completed_sessions"`
	CancelledSessions int            `json:"cancelled_sessions"`
	TotalMinutes      int            `json:"total_minutes"`
	CompletionRate    float64        `json:"completion_rate"`
	DailyBreakdown    map[string]int `json:"daily_breakdown"`
	CategoryBreakdown map[string]int `json:"category_breakdown"`
	StreakDays        int            `json:"streak_days"`
	BestDayMinutes    int            `json:"best_day_minutes"`
}

// motivation message plus the trigger it was generated for
type MotivationResponse struct {
	coach.Motivation
	Trigger     string    `json:"trigger"`
	GeneratedAt time.Time `json:"generated_at"`
}

// session summary plus generation metadata
type SessionSummaryResponse struct {
	coach.SessionFeedback
	GeneratedAt time.Time `json:"generated_at"`
}

// feedback acknowledgement, with an alternative suggestion on rejection
type FeedbackResponse struct {
	Success     bool                        `json:"success"`
	Message     string                      `json:"message"`
	FeedbackID  string                      `json:"feedback_id"`
	Alternative *coach.AlternativeTechnique `json:"alternative"`
}

// coach service health status
type HealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model,omitempty"`
	Error  string `json:"error,omitempty"`
}
