package config

import (
	"errors"
	"testing"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullEnv() map[string]string {
	return map[string]string{
		EnvLinkedInEmail:    "ada@example.com",
		EnvLinkedInPassword: "hunter2",
		EnvGitHubToken:      "ghp_token",
		EnvGroqAPIKey:       "gsk_key",
	}
}

func TestResolveSecrets_AllPresent(t *testing.T) {
	s := ResolveSecrets(MapEnv(fullEnv()), llm.ProviderGroq)

	require.NoError(t, s.Validate())
	assert.Equal(t, "ada@example.com", s.LinkedInEmail)
	assert.Equal(t, "hunter2", s.LinkedInPassword)
	assert.Equal(t, "ghp_token", s.GitHubToken)
	assert.Equal(t, "gsk_key", s.LLMAPIKey)
}

func TestResolveSecrets_EachMissingSecretFails(t *testing.T) {
	for _, key := range []string{EnvLinkedInEmail, EnvLinkedInPassword, EnvGitHubToken, EnvGroqAPIKey} {
		t.Run(key, func(t *testing.T) {
			env := fullEnv()
			delete(env, key)

			err := ResolveSecrets(MapEnv(env), llm.ProviderGroq).Validate()
			require.Error(t, err)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, []string{key}, cfgErr.Missing)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestResolveSecrets_ReportsAllMissing(t *testing.T) {
	err := ResolveSecrets(MapEnv(nil), llm.ProviderGroq).Validate()
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.ElementsMatch(t, []string{EnvLinkedInEmail, EnvLinkedInPassword, EnvGitHubToken, EnvGroqAPIKey}, cfgErr.Missing)
}

func TestResolveSecrets_GeminiUsesGeminiKey(t *testing.T) {
	env := fullEnv()
	delete(env, EnvGroqAPIKey)

	err := ResolveSecrets(MapEnv(env), llm.ProviderGemini).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvGeminiAPIKey)

	env[EnvGeminiAPIKey] = "gemini-key"
	s := ResolveSecrets(MapEnv(env), llm.ProviderGemini)
	require.NoError(t, s.Validate())
	assert.Equal(t, "gemini-key", s.LLMAPIKey)
}

func TestSecrets_ValidateFor(t *testing.T) {
	s := ResolveSecrets(MapEnv(map[string]string{EnvGitHubToken: "ghp_token"}), llm.ProviderGroq)

	assert.NoError(t, s.ValidateFor("GitHubToken"))
	assert.Error(t, s.Validate())

	s = ResolveSecrets(MapEnv(nil), llm.ProviderGroq)
	err := s.ValidateFor("GitHubToken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvGitHubToken)
	assert.NotContains(t, err.Error(), EnvLinkedInEmail)
}
