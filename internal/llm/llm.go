package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// creates the generator set with auto-configuration from environment variables
func NewClients(ctx context.Context) (*Clients, error) {
	config, err := loadConfig()

	if err != nil {
		return nil, fmt.Errorf("failed to load LLM config: %w", err)
	}

	return NewClientsWithConfig(ctx, config)
}

// creates the generator set with explicit configuration
func NewClientsWithConfig(ctx context.Context, config *Config) (*Clients, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	geminiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: config.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	// flash: creative but consistent, pro: analytical with less randomness
	flash := NewGeminiGenerator(geminiClient, GeminiConfig{
		Model:       config.FlashModel,
		MaxTokens:   config.FlashMaxTokens,
		Temperature: config.FlashTemperature,
		TopP:        0.9,
		TopK:        40,
	})

	pro := NewGeminiGenerator(geminiClient, GeminiConfig{
		Model:       config.ProModel,
		MaxTokens:   config.ProMaxTokens,
		Temperature: config.ProTemperature,
		TopP:        0.85,
		TopK:        30,
	})

	reporter := NewAnthropicGenerator(AnthropicConfig{
		APIKey:      config.AnthropicAPIKey,
		Model:       config.ReporterModel,
		MaxTokens:   config.ReporterMaxTokens,
		Temperature: config.ReporterTemperature,
	})

	return &Clients{
		Flash:    flash,
		Pro:      pro,
		Reporter: reporter,
	}, nil
}
