package provider

import (
	"context"
	"fmt"

	"github.com/NeoVand/WhyBecause/pkg/domain"
)

// Simulated is a no-op client that synthesizes a canned response embedding
// the prompt. It backs the default "dummy" provider and serves as the
// fallback for unknown identifiers, so a workspace with no backend configured
// still produces visible output.
type Simulated struct{}

// Name implements ports.TextProvider.
func (s *Simulated) Name() string { return "dummy" }

// Invoke never fails and performs no I/O.
func (s *Simulated) Invoke(ctx context.Context, prompt string, cfg domain.ProviderConfig) string {
	return fmt.Sprintf("[simulated response from model %q]\n\nThis is a placeholder completion for the prompt:\n\n%s", cfg.Model, prompt)
}
