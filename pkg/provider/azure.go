package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/NeoVand/WhyBecause/pkg/domain"
	openai "github.com/sashabaranov/go-openai"
)

// AzureOpenAI is a client for Azure-hosted OpenAI chat completion
// deployments. It requires both an API key and an endpoint; without them it
// fails fast before making any network call.
type AzureOpenAI struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// Name implements ports.TextProvider.
func (a *AzureOpenAI) Name() string { return "azureOpenAI" }

// Invoke sends the prompt as a single user message. All failures, including
// missing configuration, are returned as descriptive strings.
func (a *AzureOpenAI) Invoke(ctx context.Context, prompt string, cfg domain.ProviderConfig) string {
	if cfg.APIKey == "" || cfg.Endpoint == "" {
		return "Error calling Azure OpenAI: configuration incomplete: both apiKey and endpoint are required"
	}

	clientCfg := openai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
	clientCfg.HTTPClient = a.httpClient
	client := openai.NewClientWithConfig(clientCfg)

	a.logger.Debug("azure openai request", "endpoint", cfg.Endpoint, "model", cfg.Model)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: float32(cfg.Temperature),
		MaxTokens:   cfg.MaxTokens,
	})
	if err != nil {
		return fmt.Sprintf("Error calling Azure OpenAI: %v", err)
	}

	if len(resp.Choices) == 0 {
		return "Error calling Azure OpenAI: empty choice list in response"
	}
	return resp.Choices[0].Message.Content
}
