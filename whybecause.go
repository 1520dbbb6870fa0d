package whybecause

import (
	"log/slog"

	"github.com/NeoVand/WhyBecause/internal/logging"
	"github.com/NeoVand/WhyBecause/pkg/ports"
	"github.com/NeoVand/WhyBecause/pkg/session"
)

// Version of the module.
const Version = "0.1.0"

// Workspace bundles a document store with a session manager. It is the
// simplest way to embed the engine in a host application.
type Workspace struct {
	Store    ports.DocumentStore
	Sessions *session.Manager

	logger *slog.Logger
}

// Option defines a functional option for configuring the Workspace.
type Option func(*Workspace)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Workspace) {
		w.logger = logger
	}
}

// New creates a Workspace over the given document store.
func New(store ports.DocumentStore, opts ...Option) *Workspace {
	w := &Workspace{
		Store:  store,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.Sessions = session.NewManager(store, session.WithLogger(w.logger))
	return w
}
