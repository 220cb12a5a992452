package config

type Config struct {
	DatabaseURL  string
	JWTSecret    string
	GeminiKey    string
	AnthropicKey string
	Environment  string
}
