// Package reporting computes persisted weekly report payloads and
// generates their narrative message. Unlike the interactive coach,
// report generation never fails on model errors: a deterministic
// fallback message is used instead.
package reporting

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"codeberg.org/personasync/server/internal/llm"
	"codeberg.org/personasync/server/internal/logger"
)

const (
	statusCompleted = "completed"
	statusCancelled = "cancelled"
)

// minimal view of a pomodoro session used for report aggregation
type SessionRecord struct {
	Status          string
	Category        string
	DurationMinutes int
	StartedAt       time.Time
}

// Stats is the aggregate block stored with each weekly report.
// Breakdown values are minutes, not session counts.
type Stats struct {
	TotalSessions     int            `json:"total_sessions"`
	CompletedSessions int            `json:"completed_sessions"`
	CancelledSessions int            `json:"cancelled_sessions"`
	TotalMinutes      int            `json:"total_minutes"`
	CategoryBreakdown map[string]int `json:"category_breakdown"`
	DailyBreakdown    map[string]int `json:"daily_breakdown"`
	GoalAchievement   float64        `json:"goal_achievement"` // percent, capped at 100
}

// profile fields the report narrative is allowed to see
type UserInfo struct {
	FullName           string
	Goal               string
	Occupation         string
	DailyTargetMinutes int
}

// WeekBoundaries returns the Monday 00:00:00 and Sunday 23:59:59 (UTC)
// surrounding the reference time.
func WeekBoundaries(reference time.Time) (time.Time, time.Time) {
	reference = reference.UTC()

	// time.Weekday has Sunday=0; shift so Monday=0
	daysSinceMonday := (int(reference.Weekday()) + 6) % 7

	monday := reference.AddDate(0, 0, -daysSinceMonday)
	weekStart := time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
	weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Second)

	return weekStart, weekEnd
}

// BuildStats aggregates one week of sessions. Only completed sessions
// contribute minutes. Goal achievement compares total minutes against
// seven times the daily target and is capped at 100%.
func BuildStats(sessions []SessionRecord, dailyTargetMinutes int) Stats {
	stats := Stats{
		CategoryBreakdown: make(map[string]int),
		DailyBreakdown:    make(map[string]int),
	}

	for _, s := range sessions {
		stats.TotalSessions++

		switch s.Status {
		case statusCompleted:
			stats.CompletedSessions++
			stats.TotalMinutes += s.DurationMinutes
			stats.CategoryBreakdown[s.Category] += s.DurationMinutes
			stats.DailyBreakdown[s.StartedAt.UTC().Format("2006-01-02")] += s.DurationMinutes
		case statusCancelled:
			stats.CancelledSessions++
		}
	}

	weeklyGoalMinutes := dailyTargetMinutes * 7

	if weeklyGoalMinutes > 0 {
		achievement := float64(stats.TotalMinutes) / float64(weeklyGoalMinutes) * 100
		if achievement > 100 {
			achievement = 100
		}

		stats.GoalAchievement = math.Round(achievement*10) / 10
	}

	return stats
}

// Generator produces the report narrative via the reporter model.
type Generator struct {
	reporter llm.TextGenerator
	log      *slog.Logger
}

func NewGenerator(reporter llm.TextGenerator) *Generator {
	return &Generator{
		reporter: reporter,
		log:      logger.Default().With("component", "reporting"),
	}
}

// MotivationMessage asks the reporter model for a personalized weekly
// message. Any failure falls back to a canned message so report
// generation itself never fails.
func (g *Generator) MotivationMessage(ctx context.Context, user UserInfo, stats Stats) string {
	if g.reporter == nil {
		return "What a great week! Keep up the good work! 🚀"
	}

	prompt := buildMotivationPrompt(user, stats)

	resp, err := g.reporter.GenerateText(ctx, llm.TextGenerationRequest{
		Messages: []llm.Message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		g.log.Warn("report narrative generation failed, using fallback", "error", err.Error())

		return FallbackMessage(stats)
	}

	return resp.Text
}

// FallbackMessage is the deterministic narrative used when the model
// is unavailable.
func FallbackMessage(stats Stats) string {
	return fmt.Sprintf("You put in %d minutes of work this week! You're doing great! 🚀", stats.TotalMinutes)
}

func buildMotivationPrompt(user UserInfo, stats Stats) string {
	goal := user.Goal
	if goal == "" {
		goal = "Not specified"
	}

	occupation := user.Occupation
	if occupation == "" {
		occupation = "Not specified"
	}

	return fmt.Sprintf(`User Profile:
- Name: %s
- Goal: %s
- Occupation: %s
- Daily Target: %d minutes

Weekly Performance:
- Total Sessions: %d
- Completed: %d
- Cancelled: %d
- Total Study Time: %d minutes (%d hours %d minutes)
- Goal Achievement: %.1f%%
- Category Breakdown: %s

You are a student coach. Looking at the user's weekly performance above:

1. Celebrate their wins (highlight the category they worked on most)
2. Assess how close they are to their goal
3. Give motivating, constructive suggestions for next week
4. Use a warm, personal, encouraging tone
5. Stay under 150 words

Address the user directly (you/your). You may use emoji, but sparingly (2-3 at most).`,
		user.FullName, goal, occupation, user.DailyTargetMinutes,
		stats.TotalSessions, stats.CompletedSessions, stats.CancelledSessions,
		stats.TotalMinutes, stats.TotalMinutes/60, stats.TotalMinutes%60,
		stats.GoalAchievement, formatMinuteBreakdown(stats.CategoryBreakdown),
	)
}

func formatMinuteBreakdown(breakdown map[string]int) string {
	if len(breakdown) == 0 {
		return "No completed sessions."
	}

	keys := make([]string, 0, len(breakdown))
	for key := range breakdown {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %d min", key, breakdown[key]))
	}

	return strings.Join(parts, ", ")
}
