package coach

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}

	return parsed
}

func TestBuildDailyStats(t *testing.T) {
	sessions := []SessionRecord{
		{Status: StatusCompleted, Category: "lesson", DurationMinutes: 25},
		{Status: StatusCompleted, Category: "lesson", DurationMinutes: 25},
		{Status: StatusCompleted, Category: "reading", DurationMinutes: 30},
		{Status: StatusCancelled, Category: "lesson", DurationMinutes: 25},
		{Status: "active", Category: "project", DurationMinutes: 25},
	}

	stats := BuildDailyStats(sessions, 120)

	assert.Equal(t, 3, stats.CompletedSessions)
	assert.Equal(t, 1, stats.CancelledSessions)
	assert.Equal(t, 80, stats.TotalMinutes, "only completed sessions count toward minutes")
	assert.Equal(t, 120, stats.TargetMinutes)
	assert.Equal(t, map[string]int{"lesson": 2, "reading": 1}, stats.CategoryBreakdown)
}

func TestBuildDailyStats_Empty(t *testing.T) {
	stats := BuildDailyStats(nil, 60)

	assert.Zero(t, stats.CompletedSessions)
	assert.Zero(t, stats.TotalMinutes)
	assert.Empty(t, stats.CategoryBreakdown)
}

func TestBuildWeeklyStats(t *testing.T) {
	now := day(t, "2025-01-22")

	sessions := []SessionRecord{
		{Status: StatusCompleted, Category: "lesson", DurationMinutes: 50, StartedAt: day(t, "2025-01-20")},
		{Status: StatusCompleted, Category: "lesson", DurationMinutes: 40, StartedAt: day(t, "2025-01-20")},
		{Status: StatusCompleted, Category: "project", DurationMinutes: 25, StartedAt: day(t, "2025-01-21")},
		{Status: StatusCompleted, Category: "reading", DurationMinutes: 30, StartedAt: day(t, "2025-01-22")},
		{Status: StatusCancelled, Category: "lesson", DurationMinutes: 25, StartedAt: day(t, "2025-01-21")},
	}

	stats := BuildWeeklyStats(sessions, now)

	assert.Equal(t, 5, stats.TotalSessions)
	assert.Equal(t, 4, stats.CompletedSessions)
	assert.Equal(t, 1, stats.CancelledSessions)
	assert.Equal(t, 145, stats.TotalMinutes)
	assert.Equal(t, 90, stats.BestDayMinutes)
	assert.Equal(t, 25, stats.WorstDayMinutes)
	assert.Equal(t, 90, stats.DailyBreakdown["2025-01-20"])
	assert.Equal(t, 3, stats.StreakDays, "three consecutive active days ending today")
}

func TestBuildWeeklyStats_StreakBrokenByGap(t *testing.T) {
	now := day(t, "2025-01-22")

	sessions := []SessionRecord{
		{Status: StatusCompleted, Category: "lesson", DurationMinutes: 25, StartedAt: day(t, "2025-01-22")},
		// gap on the 21st
		{Status: StatusCompleted, Category: "lesson", DurationMinutes: 25, StartedAt: day(t, "2025-01-20")},
	}

	stats := BuildWeeklyStats(sessions, now)

	assert.Equal(t, 1, stats.StreakDays)
}

func TestBuildWeeklyStats_NoSessionToday(t *testing.T) {
	now := day(t, "2025-01-22")

	sessions := []SessionRecord{
		{Status: StatusCompleted, Category: "lesson", DurationMinutes: 25, StartedAt: day(t, "2025-01-21")},
	}

	stats := BuildWeeklyStats(sessions, now)

	assert.Zero(t, stats.StreakDays, "streak counts backwards from today")
}

func TestBuildFeedbackHistory_DedupesAndLimits(t *testing.T) {
	// newest first, as the store returns them
	rows := []FeedbackRecord{
		{Technique: "Pomodoro", Liked: false},
		{Technique: "Active Recall", Liked: true},
		{Technique: "Pomodoro", Liked: false}, // duplicate
		{Technique: "Feynman", Liked: true},
		{Technique: "Active Recall", Liked: true}, // duplicate
		{Technique: "Mind Mapping", Liked: false},
		{Technique: "Cornell Notes", Liked: false},
		{Technique: "Interleaving", Liked: false},
		{Technique: "Time Blocking", Liked: false},
		{Technique: "Deep Work", Liked: false}, // sixth unique dislike, dropped
	}

	history := BuildFeedbackHistory(rows)

	assert.Equal(t, []string{"Active Recall", "Feynman"}, history.LikedTechniques)
	assert.Equal(t,
		[]string{"Pomodoro", "Mind Mapping", "Cornell Notes", "Interleaving", "Time Blocking"},
		history.DislikedTechniques)
	assert.Equal(t, "Pomodoro", history.LastSuggested)
}

func TestBuildFeedbackHistory_Empty(t *testing.T) {
	history := BuildFeedbackHistory(nil)

	assert.Empty(t, history.LikedTechniques)
	assert.Empty(t, history.DislikedTechniques)
	assert.Empty(t, history.LastSuggested)
}
