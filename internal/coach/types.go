package coach

import "time"

// session status values mirrored from the pomodoro store
const (
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// represents a motivation message trigger
type MotivationTrigger string

const (
	TriggerLowPerformance MotivationTrigger = "low_performance"
	TriggerHighCancelRate MotivationTrigger = "high_cancel_rate"
	TriggerUserRequest    MotivationTrigger = "user_request"
	TriggerStreakBroken   MotivationTrigger = "streak_broken"
	TriggerGoalAchieved   MotivationTrigger = "goal_achieved"
)

func (t MotivationTrigger) IsValid() bool {
	switch t {
	case TriggerLowPerformance, TriggerHighCancelRate, TriggerUserRequest,
		TriggerStreakBroken, TriggerGoalAchieved:
		return true
	}

	return false
}

// UserProfile carries the profile fields sent to the model.
// Sensitive fields (email, password hash) never go in here.
type UserProfile struct {
	FirstName          string
	Goal               string // exam prep, career growth, etc.
	Occupation         string
	DailyTargetMinutes int
	Age                int // 0 = not provided
}

// minimal view of a pomodoro session used for stat aggregation
type SessionRecord struct {
	Status          string
	Category        string
	DurationMinutes int
	StartedAt       time.Time
}

// aggregated pomodoro numbers for the current day
type DailyStats struct {
	CompletedSessions int
	CancelledSessions int
	TotalMinutes      int
	CategoryBreakdown map[string]int
	TargetMinutes     int
}

// aggregated pomodoro numbers for a trailing window (default 7 days)
type WeeklyStats struct {
	TotalSessions     int
	CompletedSessions int
	CancelledSessions int
	TotalMinutes      int
	DailyBreakdown    map[string]int // "2025-01-20" -> minutes
	CategoryBreakdown map[string]int
	BestDayMinutes    int
	WorstDayMinutes   int
	StreakDays        int
}

// FeedbackHistory carries past thumbs-up/down signals as model context.
// Rejected techniques must never be suggested again.
type FeedbackHistory struct {
	LikedTechniques    []string
	DislikedTechniques []string
	LastSuggested      string
}

// minimal view of a stored feedback row used to build FeedbackHistory
type FeedbackRecord struct {
	Technique string
	Liked     bool
}

// structured model outputs, one per coach operation

type DailyAdvice struct {
	Technique          string   `json:"technique"`
	WhyThisWorks       string   `json:"why_this_works"`
	Steps              []string `json:"steps"`
	DurationSuggestion string   `json:"duration_suggestion"`
	MotivationalNote   string   `json:"motivational_note"`
	CategoryFocus      string   `json:"category_focus"`
}

type WeeklyReport struct {
	WeekSummary             string   `json:"week_summary"`
	Strengths               []string `json:"strengths"`
	Improvements            []string `json:"improvements"`
	Highlight               string   `json:"highlight"`
	NextWeekFocus           string   `json:"next_week_focus"`
	TechniqueRecommendation string   `json:"technique_recommendation"`
	TechniqueReason         string   `json:"technique_reason"`
	MotivationalClosing     string   `json:"motivational_closing"`
}

type Motivation struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Action   string `json:"action"`
	Reminder string `json:"reminder"`
}

type AlternativeTechnique struct {
	Technique     string   `json:"technique"`
	WhyDifferent  string   `json:"why_different"`
	WhySuitsYou   string   `json:"why_suits_you"`
	Steps         []string `json:"steps"`
	TrySuggestion string   `json:"try_suggestion"`
}

type SessionFeedback struct {
	Reaction     string `json:"reaction"`
	ProgressNote string `json:"progress_note"`
	NextStep     string `json:"next_step"`
}
