package coach

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/personasync/server/internal/llm"
)

type mockResult struct {
	text string
	err  error
}

// scripted TextGenerator; returns results in order and records requests
type mockGenerator struct {
	model    string
	results  []mockResult
	requests []llm.TextGenerationRequest
}

func (m *mockGenerator) GenerateText(_ context.Context, req llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
	m.requests = append(m.requests, req)

	idx := len(m.requests) - 1
	if idx >= len(m.results) {
		idx = len(m.results) - 1
	}

	result := m.results[idx]
	if result.err != nil {
		return nil, result.err
	}

	return &llm.TextGenerationResponse{Text: result.text}, nil
}

func (m *mockGenerator) Model() string {
	return m.model
}

// builds a coach with instant sleeps, recording waits into the returned slice
func newTestCoach(flash, pro *mockGenerator) (*Coach, *[]time.Duration) {
	c := NewCoach(flash, pro)
	sleeps := &[]time.Duration{}

	c.sleep = func(d time.Duration) {
		*sleeps = append(*sleeps, d)
	}

	return c, sleeps
}

func TestGenerateJSON_Success(t *testing.T) {
	flash := &mockGenerator{
		model:   "flash-test",
		results: []mockResult{{text: `{"technique": "Pomodoro 25/5", "steps": ["a", "b"]}`}},
	}

	c, _ := newTestCoach(flash, &mockGenerator{model: "pro-test"})

	data, _, err := c.GenerateJSON(context.Background(), "prompt", []string{"technique", "steps"}, false)

	require.NoError(t, err)
	assert.Equal(t, "Pomodoro 25/5", data["technique"])
}

func TestGenerateJSON_AppendsFormatInstruction(t *testing.T) {
	flash := &mockGenerator{
		model:   "flash-test",
		results: []mockResult{{text: `{"key": "value"}`}},
	}

	c, _ := newTestCoach(flash, &mockGenerator{model: "pro-test"})

	_, _, err := c.GenerateJSON(context.Background(), "base prompt", []string{"key"}, false)

	require.NoError(t, err)
	require.Len(t, flash.requests, 1)
	assert.Contains(t, flash.requests[0].Messages[0].Content, "base prompt")
	assert.Contains(t, flash.requests[0].Messages[0].Content, "FORMAT INSTRUCTION")
	assert.NotEmpty(t, flash.requests[0].SystemPrompt, "system instruction should be attached")
}

func TestGenerateJSON_StripsMarkdownFences(t *testing.T) {
	flash := &mockGenerator{
		model:   "flash-test",
		results: []mockResult{{text: "```json\n{\"technique\": \"Active Recall\"}\n```"}},
	}

	c, _ := newTestCoach(flash, &mockGenerator{model: "pro-test"})

	data, _, err := c.GenerateJSON(context.Background(), "prompt", []string{"technique"}, false)

	require.NoError(t, err)
	assert.Equal(t, "Active Recall", data["technique"])
}

func TestGenerateJSON_MissingKeys(t *testing.T) {
	flash := &mockGenerator{
		model:   "flash-test",
		results: []mockResult{{text: `{"technique": "Pomodoro"}`}},
	}

	c, _ := newTestCoach(flash, &mockGenerator{model: "pro-test"})

	_, _, err := c.GenerateJSON(context.Background(), "prompt", []string{"technique", "steps"}, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "steps")
}

func TestGenerateJSON_InvalidJSON(t *testing.T) {
	flash := &mockGenerator{
		model:   "flash-test",
		results: []mockResult{{text: "Sure! Here is my advice: work harder."}},
	}

	c, _ := newTestCoach(flash, &mockGenerator{model: "pro-test"})

	_, _, err := c.GenerateJSON(context.Background(), "prompt", []string{"technique"}, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestGenerate_RetriesOnRateLimit(t *testing.T) {
	flash := &mockGenerator{
		model: "flash-test",
		results: []mockResult{
			{err: llm.ErrRateLimited},
			{err: llm.ErrRateLimited},
			{text: "finally"},
		},
	}

	c, sleeps := newTestCoach(flash, &mockGenerator{model: "pro-test"})

	text, err := c.Generate(context.Background(), "prompt", false)

	require.NoError(t, err)
	assert.Equal(t, "finally", text)
	assert.Len(t, flash.requests, 3)
	// exponential backoff: 1s, then 2s
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *sleeps)
}

func TestGenerate_ExhaustsRetries(t *testing.T) {
	flash := &mockGenerator{
		model: "flash-test",
		results: []mockResult{
			{err: llm.ErrUnavailable},
			{err: llm.ErrUnavailable},
			{err: llm.ErrUnavailable},
		},
	}

	c, _ := newTestCoach(flash, &mockGenerator{model: "pro-test"})

	_, err := c.Generate(context.Background(), "prompt", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrUnavailable)
	assert.Len(t, flash.requests, 3)
}

func TestGenerate_NoRetryOnBlocked(t *testing.T) {
	flash := &mockGenerator{
		model:   "flash-test",
		results: []mockResult{{err: llm.ErrBlocked}},
	}

	c, sleeps := newTestCoach(flash, &mockGenerator{model: "pro-test"})

	_, err := c.Generate(context.Background(), "prompt", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrBlocked)
	assert.Len(t, flash.requests, 1, "safety blocks should not be retried")
	assert.Empty(t, *sleeps)
}

func TestGenerate_UsesProModel(t *testing.T) {
	flash := &mockGenerator{model: "flash-test", results: []mockResult{{text: "flash"}}}
	pro := &mockGenerator{model: "pro-test", results: []mockResult{{text: "pro"}}}

	c, _ := newTestCoach(flash, pro)

	text, err := c.Generate(context.Background(), "prompt", true)

	require.NoError(t, err)
	assert.Equal(t, "pro", text)
	assert.Empty(t, flash.requests)
	assert.Len(t, pro.requests, 1)
}

func TestDailyAdvice_DecodesTypedResult(t *testing.T) {
	flash := &mockGenerator{
		model: "flash-test",
		results: []mockResult{{text: `{
			"technique": "Feynman Technique",
			"why_this_works": "It forces active understanding.",
			"steps": ["Pick a topic", "Explain it simply", "Find the gaps"],
			"duration_suggestion": "25 minutes on, 5 off",
			"motivational_note": "Strong start today.",
			"category_focus": "Lessons, since the exam is close."
		}`}},
	}

	c, _ := newTestCoach(flash, &mockGenerator{model: "pro-test"})

	profile := UserProfile{FirstName: "Ada", Goal: "University entrance exam", DailyTargetMinutes: 120}
	advice, err := c.DailyAdvice(context.Background(), profile, DailyStats{}, FeedbackHistory{})

	require.NoError(t, err)
	assert.Equal(t, "Feynman Technique", advice.Technique)
	assert.Len(t, advice.Steps, 3)
}

func TestWeeklyReport_UsesProModel(t *testing.T) {
	flash := &mockGenerator{model: "flash-test", results: []mockResult{{text: "{}"}}}
	pro := &mockGenerator{
		model: "pro-test",
		results: []mockResult{{text: `{
			"week_summary": "Solid week overall.",
			"strengths": ["Consistency"],
			"improvements": ["Fewer cancels"],
			"highlight": "Five-day streak",
			"next_week_focus": "Protect the morning block",
			"technique_recommendation": "Time blocking",
			"technique_reason": "Your best days had long uninterrupted blocks.",
			"motivational_closing": "Keep the streak alive."
		}`}},
	}

	c, _ := newTestCoach(flash, pro)

	report, err := c.WeeklyReport(context.Background(), UserProfile{FirstName: "Ada"}, WeeklyStats{}, FeedbackHistory{})

	require.NoError(t, err)
	assert.Equal(t, "Solid week overall.", report.WeekSummary)
	assert.Empty(t, flash.requests)
	assert.Len(t, pro.requests, 1)
}

func TestHealthCheck_TruncatesSample(t *testing.T) {
	long := make([]byte, 120)
	for i := range long {
		long[i] = 'a'
	}

	flash := &mockGenerator{model: "flash-test", results: []mockResult{{text: string(long)}}}

	c, _ := newTestCoach(flash, &mockGenerator{model: "pro-test"})

	sample, err := c.HealthCheck(context.Background())

	require.NoError(t, err)
	assert.Len(t, sample, 50)
}

func TestStripMarkdownFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain json", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  \n{\"a\": 1}\n ", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripMarkdownFences(tt.input))
		})
	}
}
