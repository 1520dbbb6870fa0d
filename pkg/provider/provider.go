package provider

import (
	"log/slog"
	"net/http"

	"github.com/NeoVand/WhyBecause/internal/logging"
	"github.com/NeoVand/WhyBecause/pkg/ports"
)

// options shared by the provider constructors.
type options struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures provider construction.
type Option func(*options)

// WithHTTPClient injects a custom HTTP client (e.g. for tests).
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithLogger sets the logger used for selection warnings and request logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts ...Option) options {
	o := options{
		httpClient: &http.Client{}, // No timeout at this layer; cancellation comes from the caller's context.
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Select maps a provider identifier to a client implementation. Unknown
// identifiers (anything besides "ollama" and "azureOpenAI") fall back to the
// simulated client; identifiers other than "dummy" and "" additionally log a
// warning. Select never fails.
func Select(name string, opts ...Option) ports.TextProvider {
	o := newOptions(opts...)

	switch name {
	case "ollama":
		return &Ollama{httpClient: o.httpClient, logger: o.logger}
	case "azureOpenAI":
		return &AzureOpenAI{httpClient: o.httpClient, logger: o.logger}
	case "dummy", "":
		return &Simulated{}
	default:
		o.logger.Warn("unknown provider, falling back to simulated client", "provider", name)
		return &Simulated{}
	}
}
