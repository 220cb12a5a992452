package coach

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testProfile = UserProfile{
	FirstName:          "Ada",
	Goal:               "University entrance exam",
	Occupation:         "Student",
	DailyTargetMinutes: 120,
	Age:                19,
}

func TestBuildDailyAdvicePrompt(t *testing.T) {
	today := DailyStats{
		CompletedSessions: 3,
		CancelledSessions: 1,
		TotalMinutes:      75,
		CategoryBreakdown: map[string]int{"lesson": 2, "reading": 1},
		TargetMinutes:     120,
	}

	feedback := FeedbackHistory{
		LikedTechniques:    []string{"Active Recall"},
		DislikedTechniques: []string{"Mind Mapping"},
		LastSuggested:      "Active Recall",
	}

	prompt, keys := BuildDailyAdvicePrompt(testProfile, today, feedback)

	assert.Equal(t, []string{
		"technique", "why_this_works", "steps",
		"duration_suggestion", "motivational_note", "category_focus",
	}, keys)

	assert.Contains(t, prompt, "Ada")
	assert.Contains(t, prompt, "University entrance exam")
	assert.Contains(t, prompt, "Age: 19")
	assert.Contains(t, prompt, "Completion Rate: 75%")
	assert.Contains(t, prompt, "Minutes Remaining to Target: 45 minutes")
	assert.Contains(t, prompt, "Lessons: 2 sessions, Reading: 1 session")
	assert.Contains(t, prompt, "Mind Mapping", "rejected techniques must appear in the exclusion list")
}

func TestBuildDailyAdvicePrompt_NoHistory(t *testing.T) {
	prompt, _ := BuildDailyAdvicePrompt(UserProfile{FirstName: "Ada", DailyTargetMinutes: 60}, DailyStats{}, FeedbackHistory{})

	assert.Contains(t, prompt, "No liked techniques yet.")
	assert.Contains(t, prompt, "No rejected techniques yet.")
	assert.Contains(t, prompt, "First suggestion")
	assert.NotContains(t, prompt, "Age:", "zero age should be omitted")
	assert.Contains(t, prompt, "No work recorded yet today")
}

func TestBuildWeeklyReportPrompt(t *testing.T) {
	weekly := WeeklyStats{
		TotalSessions:     10,
		CompletedSessions: 8,
		CancelledSessions: 2,
		TotalMinutes:      400,
		DailyBreakdown:    map[string]int{"2025-01-20": 90, "2025-01-21": 60},
		CategoryBreakdown: map[string]int{"lesson": 6, "project": 2},
		BestDayMinutes:    90,
		WorstDayMinutes:   60,
		StreakDays:        4,
	}

	prompt, keys := BuildWeeklyReportPrompt(testProfile, weekly, FeedbackHistory{})

	assert.Len(t, keys, 8)
	assert.Contains(t, keys, "week_summary")
	assert.Contains(t, keys, "motivational_closing")

	assert.Contains(t, prompt, "Weekly Target: 840 minutes")
	assert.Contains(t, prompt, "Weekly Completion Rate: 80%")
	// 400 / 840
	assert.Contains(t, prompt, "Weekly Target Achievement: 48%")
	assert.Contains(t, prompt, "Active Streak: 4 consecutive days")
	assert.Contains(t, prompt, "2025-01-20: 90 minutes")
}

func TestBuildMotivationPrompt_TriggerContexts(t *testing.T) {
	today := DailyStats{CompletedSessions: 1, CancelledSessions: 3, TotalMinutes: 25}

	tests := []struct {
		trigger  MotivationTrigger
		fragment string
	}{
		{TriggerLowPerformance, "have not reached the target"},
		{TriggerHighCancelRate, "cancelled 3 sessions"},
		{TriggerUserRequest, "asked for motivational support"},
		{TriggerStreakBroken, "streak was broken"},
		{TriggerGoalAchieved, "passed their daily target"},
	}

	for _, tt := range tests {
		t.Run(string(tt.trigger), func(t *testing.T) {
			prompt, keys := BuildMotivationPrompt(testProfile, today, tt.trigger)

			assert.Equal(t, []string{"title", "message", "action", "reminder"}, keys)
			assert.Contains(t, prompt, tt.fragment)
			assert.Contains(t, prompt, "Ada")
		})
	}
}

func TestBuildAlternativeTechniquePrompt(t *testing.T) {
	feedback := FeedbackHistory{
		LikedTechniques:    []string{"Active Recall"},
		DislikedTechniques: []string{"Mind Mapping"},
	}

	prompt, keys := BuildAlternativeTechniquePrompt(testProfile, "Pomodoro 25/5", "breaks are too frequent", feedback)

	assert.Equal(t, []string{"technique", "why_different", "why_suits_you", "steps", "try_suggestion"}, keys)
	assert.Contains(t, prompt, `Technique Just Rejected: "Pomodoro 25/5"`)
	assert.Contains(t, prompt, "Rejection reason: breaks are too frequent")
	assert.Contains(t, prompt, "Mind Mapping, Pomodoro 25/5", "exclusion list should include the fresh rejection")
}

func TestBuildAlternativeTechniquePrompt_AlreadyRejected(t *testing.T) {
	feedback := FeedbackHistory{DislikedTechniques: []string{"Pomodoro 25/5"}}

	prompt, _ := BuildAlternativeTechniquePrompt(testProfile, "Pomodoro 25/5", "", feedback)

	assert.Contains(t, prompt, "No rejection reason given.")
	assert.Contains(t, prompt, "All Previously Rejected Techniques: Pomodoro 25/5\n",
		"already-listed technique should not be duplicated")
}

func TestBuildSessionSummaryPrompt(t *testing.T) {
	today := DailyStats{CompletedSessions: 2, TotalMinutes: 50, TargetMinutes: 120}

	prompt, keys := BuildSessionSummaryPrompt(testProfile, 25, "lesson", "finished calculus chapter", today)

	assert.Equal(t, []string{"reaction", "progress_note", "next_step"}, keys)
	assert.Contains(t, prompt, "25-minute Lessons session")
	assert.Contains(t, prompt, `Session note: "finished calculus chapter"`)
	// 50 / 120
	assert.Contains(t, prompt, "Progress: 41%")
	assert.Contains(t, prompt, "Remaining to target: 70 minutes")
}

func TestBuildSessionSummaryPrompt_ProgressCapped(t *testing.T) {
	today := DailyStats{CompletedSessions: 6, TotalMinutes: 200}

	prompt, _ := BuildSessionSummaryPrompt(testProfile, 25, "other", "", today)

	assert.Contains(t, prompt, "Progress: 100%")
	assert.Contains(t, prompt, "Remaining to target: 0 minutes")
	assert.Contains(t, prompt, "No session note.")
}

func TestAssessPerformance(t *testing.T) {
	tests := []struct {
		name                                           string
		completed, cancelled, totalMinutes, targetMins int
		expected                                       string
	}{
		{"nothing yet", 0, 0, 0, 120, "No work recorded yet today"},
		{"above target", 5, 0, 130, 120, "Above target, an excellent day"},
		{"close to target", 4, 1, 90, 120, "Close to target, a good day"},
		{"moderate", 2, 1, 50, 120, "Below target, moderate output"},
		{"high cancel rate", 1, 3, 25, 120, "High cancel rate, struggling to stay focused"},
		{"low output", 1, 0, 10, 120, "Low output, could use a motivational push"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected,
				assessPerformance(tt.completed, tt.cancelled, tt.totalMinutes, tt.targetMins))
		})
	}
}

func TestFormatCompletionRate(t *testing.T) {
	assert.Equal(t, "no data", formatCompletionRate(0, 0))
	assert.Equal(t, "100%", formatCompletionRate(4, 4))
	assert.Equal(t, "67%", formatCompletionRate(2, 3))
}

func TestMotivationTrigger_IsValid(t *testing.T) {
	assert.True(t, TriggerLowPerformance.IsValid())
	assert.True(t, TriggerGoalAchieved.IsValid())
	assert.False(t, MotivationTrigger("panic").IsValid())
}
