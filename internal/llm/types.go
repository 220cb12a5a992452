package llm

import (
	"context"
	"errors"
)

// represents different LLM providers
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderAnthropic Provider = "anthropic"
)

// sentinel errors for upstream failure classification; callers decide
// whether to retry (rate limit, unavailable) or give up (blocked)
var (
	ErrRateLimited = errors.New("llm: rate limited")
	ErrBlocked     = errors.New("llm: content blocked by safety filter")
	ErrUnavailable = errors.New("llm: service unavailable")
)

// generates free-form text from a prompt
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error)
	Model() string
}

// represents a single conversation turn
type Message struct {
	Role    string `json:"role"`    // "user" or "assistant"
	Content string `json:"content"` // message content
}

// contains the inputs for a text generation call
type TextGenerationRequest struct {
	SystemPrompt string
	Messages     []Message
	MaxTokens    int     // 0 = provider default
	Temperature  float32 // <0 = provider default
}

// contains generated text and token accounting
type TextGenerationResponse struct {
	Text  string
	Usage Usage
}

// token usage reported by the provider
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// holds the generator pair used by the coach plus the reporter generator
type Clients struct {
	Flash    TextGenerator // fast model for advice, motivation, summaries
	Pro      TextGenerator // stronger model for weekly coaching reports
	Reporter TextGenerator // anthropic generator for persisted weekly reports
}
