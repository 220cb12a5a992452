package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"codeberg.org/personasync/server/internal/llm"
	"codeberg.org/personasync/server/internal/logger"
)

const (
	maxAttempts    = 3
	retryBaseDelay = time.Second
)

// ErrParse is returned when the model response is not valid JSON or
// is missing required keys. Not retried; callers map it to 502.
var ErrParse = errors.New("coach: model response failed validation")

// instruction appended to every JSON prompt; the parser still strips
// markdown fences because models occasionally ignore it
const jsonFormatSuffix = "\n\n[FORMAT INSTRUCTION] Respond ONLY with valid JSON. " +
	"Do NOT add markdown (```json), explanations, or any other text. " +
	"The response must start with the { character and end with }."

// Coach runs the prompt construction and response validation pipeline
// on top of a flash/pro generator pair.
type Coach struct {
	flash llm.TextGenerator
	pro   llm.TextGenerator
	log   *slog.Logger

	// injectable for tests
	sleep func(time.Duration)
}

func NewCoach(flash, pro llm.TextGenerator) *Coach {
	return &Coach{
		flash: flash,
		pro:   pro,
		log:   logger.Default().With("component", "coach"),
		sleep: time.Sleep,
	}
}

func (c *Coach) FlashModel() string {
	return c.flash.Model()
}

func (c *Coach) ProModel() string {
	return c.pro.Model()
}

// Generate sends a prompt and returns the raw text response.
// Transient failures (rate limit, unavailable) are retried with
// exponential backoff; safety blocks are returned immediately.
func (c *Coach) Generate(ctx context.Context, prompt string, usePro bool) (string, error) {
	generator := c.flash
	if usePro {
		generator = c.pro
	}

	c.log.Info("model request", "model", generator.Model(), "prompt_chars", len(prompt))

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := generator.GenerateText(ctx, llm.TextGenerationRequest{
			SystemPrompt: SystemInstruction(),
			Messages: []llm.Message{
				{Role: "user", Content: prompt},
			},
		})
		if err == nil {
			c.log.Info("model response", "model", generator.Model(),
				"response_chars", len(resp.Text),
				"input_tokens", resp.Usage.InputTokens,
				"output_tokens", resp.Usage.OutputTokens)

			return resp.Text, nil
		}

		if errors.Is(err, llm.ErrBlocked) {
			return "", err
		}

		if !errors.Is(err, llm.ErrRateLimited) && !errors.Is(err, llm.ErrUnavailable) {
			return "", err
		}

		lastErr = err

		if attempt < maxAttempts {
			wait := retryBaseDelay * (1 << (attempt - 1))
			c.log.Warn("transient model failure, retrying",
				"attempt", attempt, "wait", wait.String(), "error", err.Error())

			select {
			case <-ctx.Done():
				return "", ctx.Err()
			default:
			}

			c.sleep(wait)
		}
	}

	return "", fmt.Errorf("all %d attempts failed: %w", maxAttempts, lastErr)
}

// GenerateJSON sends a prompt with the JSON format instruction
// appended, then parses and validates the response. Every key in
// expectedKeys must be present or ErrParse is returned.
func (c *Coach) GenerateJSON(ctx context.Context, prompt string, expectedKeys []string, usePro bool) (map[string]any, []byte, error) {
	raw, err := c.Generate(ctx, prompt+jsonFormatSuffix, usePro)
	if err != nil {
		return nil, nil, err
	}

	return parseAndValidate(raw, expectedKeys)
}

// generateInto runs GenerateJSON and decodes the validated payload
// into a typed result
func (c *Coach) generateInto(ctx context.Context, prompt string, expectedKeys []string, usePro bool, out any) error {
	_, cleaned, err := c.GenerateJSON(ctx, prompt, expectedKeys, usePro)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(cleaned, out); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}

	return nil
}

func parseAndValidate(raw string, expectedKeys []string) (map[string]any, []byte, error) {
	cleaned := stripMarkdownFences(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, nil, fmt.Errorf("%w: invalid JSON: %v", ErrParse, err)
	}

	var missing []string

	for _, key := range expectedKeys {
		if _, ok := data[key]; !ok {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("%w: missing keys %v", ErrParse, missing)
	}

	return data, []byte(cleaned), nil
}

// models sometimes wrap JSON in ```json ... ``` despite instructions
func stripMarkdownFences(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}

	var inner []string

	for _, line := range strings.Split(cleaned, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}

		inner = append(inner, line)
	}

	return strings.TrimSpace(strings.Join(inner, "\n"))
}

// typed operations, one per coach endpoint

func (c *Coach) DailyAdvice(ctx context.Context, profile UserProfile, today DailyStats, feedback FeedbackHistory) (*DailyAdvice, error) {
	prompt, expectedKeys := BuildDailyAdvicePrompt(profile, today, feedback)

	var advice DailyAdvice
	if err := c.generateInto(ctx, prompt, expectedKeys, false, &advice); err != nil {
		return nil, err
	}

	return &advice, nil
}

func (c *Coach) WeeklyReport(ctx context.Context, profile UserProfile, weekly WeeklyStats, feedback FeedbackHistory) (*WeeklyReport, error) {
	prompt, expectedKeys := BuildWeeklyReportPrompt(profile, weekly, feedback)

	var report WeeklyReport
	if err := c.generateInto(ctx, prompt, expectedKeys, true, &report); err != nil {
		return nil, err
	}

	return &report, nil
}

func (c *Coach) Motivation(ctx context.Context, profile UserProfile, today DailyStats, trigger MotivationTrigger) (*Motivation, error) {
	prompt, expectedKeys := BuildMotivationPrompt(profile, today, trigger)

	var motivation Motivation
	if err := c.generateInto(ctx, prompt, expectedKeys, false, &motivation); err != nil {
		return nil, err
	}

	return &motivation, nil
}

func (c *Coach) AlternativeTechnique(ctx context.Context, profile UserProfile, rejected, reason string, feedback FeedbackHistory) (*AlternativeTechnique, error) {
	prompt, expectedKeys := BuildAlternativeTechniquePrompt(profile, rejected, reason, feedback)

	var alternative AlternativeTechnique
	if err := c.generateInto(ctx, prompt, expectedKeys, false, &alternative); err != nil {
		return nil, err
	}

	return &alternative, nil
}

func (c *Coach) SessionFeedback(ctx context.Context, profile UserProfile, durationMinutes int, category, note string, today DailyStats) (*SessionFeedback, error) {
	prompt, expectedKeys := BuildSessionSummaryPrompt(profile, durationMinutes, category, note, today)

	var feedback SessionFeedback
	if err := c.generateInto(ctx, prompt, expectedKeys, false, &feedback); err != nil {
		return nil, err
	}

	return &feedback, nil
}

// HealthCheck verifies the flash model answers at all. Used by the
// unauthenticated coach health endpoint.
func (c *Coach) HealthCheck(ctx context.Context) (string, error) {
	resp, err := c.Generate(ctx, "Return only the word 'active'.", false)
	if err != nil {
		return "", err
	}

	if len(resp) > 50 {
		resp = resp[:50]
	}

	return resp, nil
}
