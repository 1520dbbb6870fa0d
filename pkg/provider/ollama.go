package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/NeoVand/WhyBecause/pkg/domain"
)

// DefaultOllamaEndpoint is used when the provider configuration carries no
// custom endpoint.
const DefaultOllamaEndpoint = "http://localhost:11434"

// Ollama is a client for a local Ollama server's generate API.
type Ollama struct {
	httpClient *http.Client
	logger     *slog.Logger
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

// Name implements ports.TextProvider.
func (o *Ollama) Name() string { return "ollama" }

// Invoke sends the prompt to the Ollama generate endpoint. Streaming is
// disabled; the whole completion comes back in one response. All failures are
// returned as descriptive strings.
func (o *Ollama) Invoke(ctx context.Context, prompt string, cfg domain.ProviderConfig) string {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultOllamaEndpoint
	}
	endpoint = strings.TrimRight(endpoint, "/")

	body, err := json.Marshal(ollamaRequest{
		Model:   cfg.Model,
		Prompt:  prompt,
		Stream:  false,
		Options: ollamaOptions{Temperature: cfg.Temperature},
	})
	if err != nil {
		return fmt.Sprintf("Error calling Ollama: failed to encode request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return fmt.Sprintf("Error calling Ollama: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	o.logger.Debug("ollama request", "endpoint", endpoint, "model", cfg.Model)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return fmt.Sprintf("Error calling Ollama: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Sprintf("Error calling Ollama: status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var parsed ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Sprintf("Error calling Ollama: failed to decode response: %v", err)
	}

	return parsed.Response
}
