package llm

import (
	"fmt"
	"os"
	"strconv"
)

// holds configuration for LLM initialization
type Config struct {
	// gemini configuration (coach pipeline)
	GeminiAPIKey string
	FlashModel   string // e.g., "gemini-2.5-flash-lite"
	ProModel     string // e.g., "gemini-2.5-pro"

	FlashMaxTokens   int
	FlashTemperature float32
	ProMaxTokens     int
	ProTemperature   float32

	// anthropic configuration (weekly reporting)
	AnthropicAPIKey     string
	ReporterModel       string // e.g., "claude-sonnet-4-20250514"
	ReporterMaxTokens   int
	ReporterTemperature float32
}

// loadConfig loads LLM configuration from environment variables
func loadConfig() (*Config, error) {
	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	if anthropicKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
	}

	flashModel := os.Getenv("GEMINI_FLASH_MODEL")
	if flashModel == "" {
		flashModel = "gemini-2.5-flash-lite" // default
	}

	proModel := os.Getenv("GEMINI_PRO_MODEL")
	if proModel == "" {
		proModel = "gemini-2.5-pro" // default
	}

	reporterModel := os.Getenv("ANTHROPIC_MODEL")
	if reporterModel == "" {
		reporterModel = "claude-sonnet-4-20250514" // default
	}

	// advice and motivation: creative but consistent
	flashMaxTokens := 2048
	if maxTokensStr := os.Getenv("GEMINI_FLASH_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			flashMaxTokens = val
		}
	}

	flashTemperature := float32(0.75)
	if tempStr := os.Getenv("GEMINI_FLASH_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			flashTemperature = float32(val)
		}
	}

	// weekly reports: less randomness, analytical content
	proMaxTokens := 3072
	if maxTokensStr := os.Getenv("GEMINI_PRO_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			proMaxTokens = val
		}
	}

	proTemperature := float32(0.40)
	if tempStr := os.Getenv("GEMINI_PRO_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			proTemperature = float32(val)
		}
	}

	reporterMaxTokens := 500
	if maxTokensStr := os.Getenv("ANTHROPIC_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			reporterMaxTokens = val
		}
	}

	reporterTemperature := float32(0.7)
	if tempStr := os.Getenv("ANTHROPIC_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			reporterTemperature = float32(val)
		}
	}

	return &Config{
		GeminiAPIKey:        geminiKey,
		FlashModel:          flashModel,
		ProModel:            proModel,
		FlashMaxTokens:      flashMaxTokens,
		FlashTemperature:    flashTemperature,
		ProMaxTokens:        proMaxTokens,
		ProTemperature:      proTemperature,
		AnthropicAPIKey:     anthropicKey,
		ReporterModel:       reporterModel,
		ReporterMaxTokens:   reporterMaxTokens,
		ReporterTemperature: reporterTemperature,
	}, nil
}
