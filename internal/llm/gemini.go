package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	geminiDefaultMaxTokens   = 2048
	geminiDefaultTemperature = 0.75
)

// safety thresholds applied to every coach request
var geminiSafetySettings = []*genai.SafetySetting{
	{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
	{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
	{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
	{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
}

type GeminiConfig struct {
	Model       string  // e.g., "gemini-2.5-flash-lite"
	MaxTokens   int     // max output tokens
	Temperature float32 // 0.0 to 1.0
	TopP        float32
	TopK        float32
}

// generates text through the Gemini API
type GeminiGenerator struct {
	client *genai.Client
	config GeminiConfig
}

func NewGeminiGenerator(client *genai.Client, config GeminiConfig) *GeminiGenerator {
	if config.MaxTokens == 0 {
		config.MaxTokens = geminiDefaultMaxTokens
	}

	if config.Temperature == 0 {
		config.Temperature = geminiDefaultTemperature
	}

	return &GeminiGenerator{
		client: client,
		config: config,
	}
}

func (g *GeminiGenerator) Model() string {
	return g.config.Model
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error) {
	// determine max tokens (use request value or fall back to config)
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = g.config.MaxTokens
	}

	temperature := g.config.Temperature
	if req.Temperature > 0 {
		temperature = req.Temperature
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		MaxOutputTokens: int32(maxTokens),
		SafetySettings:  geminiSafetySettings,
	}

	if g.config.TopP > 0 {
		genConfig.TopP = genai.Ptr(g.config.TopP)
	}

	if g.config.TopK > 0 {
		genConfig.TopK = genai.Ptr(g.config.TopK)
	}

	if req.SystemPrompt != "" {
		genConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		}
	}

	contents := make([]*genai.Content, 0, len(req.Messages))

	for _, msg := range req.Messages {
		role := genai.RoleUser
		if msg.Role == "assistant" {
			role = genai.RoleModel
		}

		contents = append(contents, genai.NewContentFromText(msg.Content, genai.Role(role)))
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.config.Model, contents, genConfig)
	if err != nil {
		return nil, classifyGeminiError(err)
	}

	// safety filter and empty response checks
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: model returned no candidates", ErrBlocked)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, fmt.Errorf("%w: finish reason safety", ErrBlocked)
	}

	var builder strings.Builder

	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			builder.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(builder.String())
	if text == "" {
		return nil, fmt.Errorf("%w: model returned empty response", ErrBlocked)
	}

	usage := Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}

	return &TextGenerationResponse{
		Text:  text,
		Usage: usage,
	}, nil
}

// maps Gemini API failures onto the package sentinel errors so the
// coach retry loop can distinguish transient from permanent failures
func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429:
			return fmt.Errorf("%w: %s", ErrRateLimited, apiErr.Message)
		case 500, 502, 503, 504:
			return fmt.Errorf("%w: %s", ErrUnavailable, apiErr.Message)
		}
	}

	return fmt.Errorf("gemini request failed: %w", err)
}
