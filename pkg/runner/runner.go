package runner

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/NeoVand/WhyBecause/internal/logging"
	"github.com/NeoVand/WhyBecause/pkg/domain"
	"github.com/NeoVand/WhyBecause/pkg/ports"
	"github.com/NeoVand/WhyBecause/pkg/provider"
	"github.com/NeoVand/WhyBecause/pkg/template"
)

// UnknownStateLabel is returned by TransitionTo when the target state does
// not exist in the flow. The position still moves to the dangling ID.
const UnknownStateLabel = "Unknown State"

// ProviderSelector maps a provider identifier to a client. Injectable for
// test doubles; defaults to provider.Select.
type ProviderSelector func(name string) ports.TextProvider

// Runner walks a Flow: it holds the current position, computes legal
// transitions and executes per-state agent actions. A mutex serializes all
// operations so one runner can be shared by a concurrent host, matching the
// one-runner-per-session model.
type Runner struct {
	mu      sync.Mutex
	flow    *domain.Flow
	project *domain.Project
	store   ports.DocumentStore
	current string // empty = no position set

	selector ProviderSelector
	logger   *slog.Logger
	trace    ports.TraceSink
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets a structured logger for the runner.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithTrace sets the execution trace sink.
func WithTrace(sink ports.TraceSink) Option {
	return func(r *Runner) {
		r.trace = sink
	}
}

// WithProviderSelector overrides how provider identifiers resolve to clients.
func WithProviderSelector(sel ProviderSelector) Option {
	return func(r *Runner) {
		r.selector = sel
	}
}

// New creates a Runner bound to immutable snapshots of a flow and a project.
// The project may be nil; the default provider configuration then applies.
// The store is used only to resolve agent documents at run time.
func New(flow *domain.Flow, project *domain.Project, store ports.DocumentStore, opts ...Option) *Runner {
	r := &Runner{
		flow:    flow,
		project: project,
		store:   store,
		logger:  logging.NewNop(),
		trace:   ports.NopTrace(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.selector == nil {
		logger := r.logger
		r.selector = func(name string) ports.TextProvider {
			return provider.Select(name, provider.WithLogger(logger))
		}
	}
	return r
}

// Flow returns the bound flow snapshot.
func (r *Runner) Flow() *domain.Flow { return r.flow }

// SetStartState seeds the current position. It may be called at any time to
// re-seed, not only from the initial unstarted state.
func (r *Runner) SetStartState(stateID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.flow.State(stateID)
	if state == nil {
		return &domain.StateNotFoundError{FlowID: r.flow.ID, StateID: stateID}
	}

	r.current = stateID
	r.logger.Debug("start state set", "flow", r.flow.ID, "state", stateID)
	r.trace.Push(fmt.Sprintf("Start state set to %q", state.Label))
	return nil
}

// CurrentState returns the full state record at the current position, or nil
// if no position is set.
func (r *Runner) CurrentState() *domain.State {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == "" {
		return nil
	}
	return r.flow.State(r.current)
}

// CurrentStateID returns the raw position identifier, or "" if unset.
func (r *Runner) CurrentStateID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// AvailableTransitions returns the transitions leaving the current position,
// in the flow's stored order. Empty when no position is set; an empty result
// at a position marks a terminal state for practical purposes.
func (r *Runner) AvailableTransitions() []domain.Transition {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == "" {
		return nil
	}
	return r.flow.TransitionsFrom(r.current)
}

// TransitionTo applies the identified transition and returns the new state's
// label. The transition must exist and must leave the current position;
// otherwise the position is unchanged and a typed error is returned.
//
// A transition whose target does not exist as a state still moves the
// position to the dangling ID and returns UnknownStateLabel. Callers relying
// on this quirk: AvailableTransitions at a dangling position returns empty.
func (r *Runner) TransitionTo(transitionID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == "" {
		return "", &domain.TransitionNotFoundError{FlowID: r.flow.ID, TransitionID: transitionID}
	}

	t := r.flow.Transition(transitionID)
	if t == nil {
		return "", &domain.TransitionNotFoundError{FlowID: r.flow.ID, TransitionID: transitionID}
	}

	if t.Source != r.current {
		return "", &domain.IllegalTransitionError{
			TransitionID: transitionID,
			Source:       t.Source,
			Current:      r.current,
		}
	}

	r.current = t.Target
	transitions.WithLabelValues(r.flow.ID).Inc()

	label := UnknownStateLabel
	if target := r.flow.State(t.Target); target != nil {
		label = target.Label
	}
	r.logger.Debug("transition applied", "flow", r.flow.ID, "transition", transitionID, "target", t.Target)
	r.trace.Push(fmt.Sprintf("Transitioned to %q", label))
	return label, nil
}

// Reset clears the current position. No other state is affected.
func (r *Runner) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = ""
	r.trace.Push("Runner reset")
}

// Run executes the action of the current state. A state without an agent is
// a legal no-op; agent resolution and provider failures come back as
// descriptive strings, not errors (see package doc). The returned error is
// reserved for structural failures: no position set, or the current state
// missing from the flow.
func (r *Runner) Run(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == "" {
		return "", &domain.NoCurrentStateError{}
	}

	state := r.flow.State(r.current)
	if state == nil {
		return "", &domain.StateNotFoundError{FlowID: r.flow.ID, StateID: r.current}
	}

	stateRuns.WithLabelValues(r.flow.ID).Inc()
	r.trace.Push(fmt.Sprintf("Running state %q", state.Label))

	if state.AgentID == "" {
		msg := fmt.Sprintf("State %q has no agent assigned; nothing to run.", state.Label)
		r.trace.Push(msg)
		return msg, nil
	}

	agent, errMsg := r.resolveAgent(ctx, state.AgentID)
	if errMsg != "" {
		r.trace.Push(errMsg)
		return errMsg, nil
	}

	prompt := template.Render(agent.Prompt, map[string]string{
		"stateName": state.Label,
		"stateType": state.Type,
		"flowName":  r.flow.Title,
	})

	cfg := r.project.ProviderOrDefault()
	client := r.selector(cfg.Provider)

	r.logger.Info("invoking agent", "agent", agent.Title, "provider", client.Name(), "model", cfg.Model)
	response := client.Invoke(ctx, prompt, cfg)

	r.trace.Push(fmt.Sprintf("Agent %q responded", agent.Title))
	return fmt.Sprintf("Agent: %s\n\nPrompt:\n%s\n\nResponse:\n%s", agent.Title, prompt, response), nil
}

// resolveAgent fetches and decodes the agent document. Failures are reported
// as channel-two narrative strings, never as errors.
func (r *Runner) resolveAgent(ctx context.Context, agentID string) (*domain.Agent, string) {
	doc, err := r.store.Get(ctx, agentID)
	if err != nil {
		if err == domain.ErrDocumentNotFound {
			return nil, fmt.Sprintf("Error: agent %q not found.", agentID)
		}
		return nil, fmt.Sprintf("Error: failed to load agent %q: %v", agentID, err)
	}

	agent, ok := doc.AsAgent()
	if !ok {
		return nil, fmt.Sprintf("Error: document %q is not an agent (type %q).", agentID, doc.Type)
	}
	return agent, ""
}
