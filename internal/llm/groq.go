package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// GroqClient implements Client for any OpenAI-compatible chat completion API (Groq by default)
type GroqClient struct {
	client *openai.Client
	config *Config
}

// NewGroqClient creates a new Groq client
func NewGroqClient(config *Config, apiKey string) (*GroqClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &GroqClient{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// GenerateJSON sends prompt as a single user message with a JSON-object response constraint
func (c *GroqClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	if c.config.Model == "" {
		return "", fmt.Errorf("no model configured")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: c.config.Temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return CleanJSONBlock(resp.Choices[0].Message.Content), nil
}

// Model returns the configured model name
func (c *GroqClient) Model() string {
	return c.config.Model
}

// Close is a no-op; the HTTP client holds no resources that need releasing
func (c *GroqClient) Close() error {
	return nil
}
