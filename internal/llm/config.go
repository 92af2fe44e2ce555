// Package llm provides the completion client abstraction used for text enrichment.
// Providers are selected by configuration so callers only see the Client interface.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGroq is Groq's OpenAI-compatible chat completion API
	ProviderGroq Provider = "groq"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// GroqBaseURL is the OpenAI-compatible endpoint exposed by Groq
const GroqBaseURL = "https://api.groq.com/openai/v1"

// DefaultTemperature keeps replies close to deterministic
const DefaultTemperature float32 = 0.01

// Config holds the model configuration for the application
type Config struct {
	Provider    Provider
	Model       string
	Temperature float32
	// BaseURL overrides the provider endpoint (OpenAI-compatible providers only)
	BaseURL string
}

// DefaultConfig returns the default configuration (Groq)
func DefaultConfig() *Config {
	return DefaultGroqConfig()
}

// DefaultGroqConfig returns the default Groq configuration
func DefaultGroqConfig() *Config {
	return &Config{
		Provider:    ProviderGroq,
		Model:       "llama3-70b-8192",
		Temperature: DefaultTemperature,
		BaseURL:     GroqBaseURL,
	}
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       "gemini-2.5-flash",
		Temperature: DefaultTemperature,
	}
}

// ConfigFor returns the default configuration for provider, with model
// replacing the default model when non-empty
func ConfigFor(provider Provider, model string) *Config {
	var cfg *Config
	switch provider {
	case ProviderGemini:
		cfg = DefaultGeminiConfig()
	default:
		cfg = DefaultGroqConfig()
	}
	if model != "" {
		cfg = cfg.WithModel(model)
	}
	return cfg
}

// WithModel returns a copy of the Config using model
func (c *Config) WithModel(model string) *Config {
	newConfig := *c
	newConfig.Model = model
	return &newConfig
}
