/*
Package session manages live Flow Runner instances.

One runner serves one logical session: the manager constructs runners from
stored Flow and Project documents, hands out handles by session ID and
destroys them on close. Nothing about a session is persisted; closing the
manager's process discards all positions, matching the transient runner
lifecycle.
*/
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/NeoVand/WhyBecause/internal/logging"
	"github.com/NeoVand/WhyBecause/pkg/domain"
	"github.com/NeoVand/WhyBecause/pkg/ports"
	"github.com/NeoVand/WhyBecause/pkg/runner"
	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session ID is unknown.
var ErrSessionNotFound = fmt.Errorf("session not found")

// Session pairs a live runner with its identifiers.
type Session struct {
	ID        string
	FlowID    string
	ProjectID string
	Runner    *runner.Runner
}

// Manager holds live runners keyed by session ID. Safe for concurrent use;
// each runner additionally serializes its own operations.
type Manager struct {
	store ports.DocumentStore

	mu       sync.RWMutex
	sessions map[string]*Session

	logger     *slog.Logger
	runnerOpts []runner.Option
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager and its runners.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithRunnerOptions forwards options to every runner the manager builds.
func WithRunnerOptions(opts ...runner.Option) Option {
	return func(m *Manager) {
		m.runnerOpts = opts
	}
}

// NewManager creates a session manager over the given document store.
func NewManager(store ports.DocumentStore, opts ...Option) *Manager {
	m := &Manager{
		store:    store,
		sessions: make(map[string]*Session),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open fetches the flow (and optionally the project) from the store and
// builds a runner bound to their snapshots. Returns the new session.
func (m *Manager) Open(ctx context.Context, flowID, projectID string) (*Session, error) {
	flowDoc, err := m.store.Get(ctx, flowID)
	if err != nil {
		return nil, fmt.Errorf("failed to load flow %s: %w", flowID, err)
	}
	flow, ok := flowDoc.AsFlow()
	if !ok {
		return nil, fmt.Errorf("document %s is not a flow (type %q)", flowID, flowDoc.Type)
	}

	var project *domain.Project
	if projectID != "" {
		projectDoc, err := m.store.Get(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("failed to load project %s: %w", projectID, err)
		}
		project, ok = projectDoc.AsProject()
		if !ok {
			return nil, fmt.Errorf("document %s is not a project (type %q)", projectID, projectDoc.Type)
		}
	}

	opts := append([]runner.Option{runner.WithLogger(m.logger)}, m.runnerOpts...)
	sess := &Session{
		ID:        uuid.NewString(),
		FlowID:    flowID,
		ProjectID: projectID,
		Runner:    runner.New(flow, project, m.store, opts...),
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	m.logger.Info("session opened", "session", sess.ID, "flow", flowID, "project", projectID)
	return sess, nil
}

// Get returns the session for the given ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Close destroys the session. Closing an unknown ID is an error so shells can
// report stale handles.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	m.logger.Info("session closed", "session", id)
	return nil
}

// List returns all live sessions.
func (m *Manager) List() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Session, 0, len(m.sessions))
	for _, sess := range m.sessions {
		out = append(out, sess)
	}
	return out
}
