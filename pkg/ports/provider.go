package ports

import (
	"context"

	"github.com/NeoVand/WhyBecause/pkg/domain"
)

// TextProvider is a generative-text backend. Invoke never fails at the type
// level: transport errors, bad status codes and missing configuration are all
// encoded in the returned string, so callers can display the outcome inline
// without exception handling.
type TextProvider interface {
	// Invoke sends the rendered prompt to the backend and returns the
	// generated text, or a human-readable error description.
	Invoke(ctx context.Context, prompt string, cfg domain.ProviderConfig) string

	// Name identifies the provider implementation (e.g. "ollama").
	Name() string
}

// TraceSink receives human-readable execution progress lines. The engine
// pushes to it but never depends on its implementation.
type TraceSink interface {
	Push(line string)
}

// TraceFunc adapts a function to the TraceSink interface.
type TraceFunc func(line string)

func (f TraceFunc) Push(line string) { f(line) }

// NopTrace discards all trace lines.
func NopTrace() TraceSink { return TraceFunc(func(string) {}) }
