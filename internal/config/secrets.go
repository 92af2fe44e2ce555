package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/llm"
)

// Environment variables holding credentials. These are never defaulted.
const (
	EnvLinkedInEmail    = "RESUME_LINKEDIN_EMAIL"
	EnvLinkedInPassword = "RESUME_LINKEDIN_PASSWORD"
	EnvGitHubToken      = "RESUME_GITHUB_API_KEY"
	EnvGroqAPIKey       = "RESUME_GROQ_API_KEY"
	EnvGeminiAPIKey     = "RESUME_GEMINI_API_KEY"
)

// Secrets holds the credentials for the three external services
type Secrets struct {
	LinkedInEmail    string `validate:"required"`
	LinkedInPassword string `validate:"required"`
	GitHubToken      string `validate:"required"`
	LLMAPIKey        string `validate:"required"`

	llmKeyEnv string
}

// LLMKeyEnv returns the environment variable carrying the API key for provider
func LLMKeyEnv(provider llm.Provider) string {
	if provider == llm.ProviderGemini {
		return EnvGeminiAPIKey
	}
	return EnvGroqAPIKey
}

// ResolveSecrets reads credentials from env without validating them.
func ResolveSecrets(env Env, provider llm.Provider) *Secrets {
	if env == nil {
		env = OSEnv
	}
	get := func(key string) string {
		v, _ := env(key)
		return v
	}

	keyEnv := LLMKeyEnv(provider)
	return &Secrets{
		LinkedInEmail:    get(EnvLinkedInEmail),
		LinkedInPassword: get(EnvLinkedInPassword),
		GitHubToken:      get(EnvGitHubToken),
		LLMAPIKey:        get(keyEnv),
		llmKeyEnv:        keyEnv,
	}
}

// Validate requires every credential to be present.
func (s *Secrets) Validate() error {
	return s.missing(validate.Struct(s))
}

// ValidateFor requires only the named fields (e.g. "GitHubToken").
func (s *Secrets) ValidateFor(fields ...string) error {
	return s.missing(validate.StructPartial(s, fields...))
}

func (s *Secrets) missing(err error) error {
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ConfigError{Message: "invalid credentials", Cause: err}
	}

	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, s.envName(fe.StructField()))
	}
	return &ConfigError{Message: "missing required environment variables", Missing: names}
}

func (s *Secrets) envName(field string) string {
	switch field {
	case "LinkedInEmail":
		return EnvLinkedInEmail
	case "LinkedInPassword":
		return EnvLinkedInPassword
	case "GitHubToken":
		return EnvGitHubToken
	case "LLMAPIKey":
		if s.llmKeyEnv != "" {
			return s.llmKeyEnv
		}
		return EnvGroqAPIKey
	default:
		return field
	}
}
