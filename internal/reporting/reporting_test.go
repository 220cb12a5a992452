package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/personasync/server/internal/llm"
)

func TestWeekBoundaries(t *testing.T) {
	tests := []struct {
		name          string
		reference     string
		expectedStart string
	}{
		{"wednesday", "2025-01-22T15:30:00Z", "2025-01-20T00:00:00Z"},
		{"monday itself", "2025-01-20T00:00:01Z", "2025-01-20T00:00:00Z"},
		{"sunday", "2025-01-26T23:00:00Z", "2025-01-20T00:00:00Z"},
		{"month boundary", "2025-02-01T10:00:00Z", "2025-01-27T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reference, err := time.Parse(time.RFC3339, tt.reference)
			require.NoError(t, err)

			expectedStart, err := time.Parse(time.RFC3339, tt.expectedStart)
			require.NoError(t, err)

			start, end := WeekBoundaries(reference)

			assert.Equal(t, expectedStart, start)
			assert.Equal(t, expectedStart.AddDate(0, 0, 7).Add(-time.Second), end)
			assert.Equal(t, time.Monday, start.Weekday())
			assert.Equal(t, time.Sunday, end.Weekday())
		})
	}
}

func TestBuildStats(t *testing.T) {
	monday := time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC)

	sessions := []SessionRecord{
		{Status: statusCompleted, Category: "lesson", DurationMinutes: 50, StartedAt: monday},
		{Status: statusCompleted, Category: "lesson", DurationMinutes: 25, StartedAt: monday.AddDate(0, 0, 1)},
		{Status: statusCompleted, Category: "project", DurationMinutes: 30, StartedAt: monday.AddDate(0, 0, 1)},
		{Status: statusCancelled, Category: "reading", DurationMinutes: 25, StartedAt: monday},
	}

	stats := BuildStats(sessions, 60)

	assert.Equal(t, 4, stats.TotalSessions)
	assert.Equal(t, 3, stats.CompletedSessions)
	assert.Equal(t, 1, stats.CancelledSessions)
	assert.Equal(t, 105, stats.TotalMinutes)
	// breakdowns are minutes, not counts
	assert.Equal(t, map[string]int{"lesson": 75, "project": 30}, stats.CategoryBreakdown)
	assert.Equal(t, map[string]int{"2025-01-20": 50, "2025-01-21": 55}, stats.DailyBreakdown)
	// 105 / 420
	assert.Equal(t, 25.0, stats.GoalAchievement)
}

func TestBuildStats_GoalAchievementCapped(t *testing.T) {
	sessions := []SessionRecord{
		{Status: statusCompleted, Category: "lesson", DurationMinutes: 1000, StartedAt: time.Now()},
	}

	stats := BuildStats(sessions, 60)

	assert.Equal(t, 100.0, stats.GoalAchievement)
}

func TestBuildStats_NoTarget(t *testing.T) {
	stats := BuildStats(nil, 0)

	assert.Zero(t, stats.GoalAchievement)
	assert.Empty(t, stats.CategoryBreakdown)
}

type stubGenerator struct {
	text string
	err  error
	last llm.TextGenerationRequest
}

func (s *stubGenerator) GenerateText(_ context.Context, req llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
	s.last = req

	if s.err != nil {
		return nil, s.err
	}

	return &llm.TextGenerationResponse{Text: s.text}, nil
}

func (s *stubGenerator) Model() string { return "stub" }

func TestMotivationMessage_Success(t *testing.T) {
	stub := &stubGenerator{text: "You crushed it this week, Ada!"}
	g := NewGenerator(stub)

	user := UserInfo{FullName: "Ada Lovelace", Goal: "Graduate early", DailyTargetMinutes: 90}
	stats := Stats{TotalMinutes: 300, CompletedSessions: 10, GoalAchievement: 47.6,
		CategoryBreakdown: map[string]int{"lesson": 300}}

	message := g.MotivationMessage(context.Background(), user, stats)

	assert.Equal(t, "You crushed it this week, Ada!", message)
	assert.Contains(t, stub.last.Messages[0].Content, "Ada Lovelace")
	assert.Contains(t, stub.last.Messages[0].Content, "300 minutes (5 hours 0 minutes)")
	assert.Contains(t, stub.last.Messages[0].Content, "47.6%")
	assert.Contains(t, stub.last.Messages[0].Content, "lesson: 300 min")
}

func TestMotivationMessage_FallbackOnError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("api down")}
	g := NewGenerator(stub)

	message := g.MotivationMessage(context.Background(), UserInfo{}, Stats{TotalMinutes: 180})

	assert.Contains(t, message, "180 minutes")
}

func TestMotivationMessage_NilReporter(t *testing.T) {
	g := NewGenerator(nil)

	message := g.MotivationMessage(context.Background(), UserInfo{}, Stats{})

	assert.NotEmpty(t, message)
}
