package domain

import (
	"errors"
	"fmt"
)

// ErrDocumentNotFound is returned by DocumentStore implementations when the
// requested ID does not exist.
var ErrDocumentNotFound = errors.New("document not found")

// StateNotFoundError indicates a state ID that does not exist in the flow.
type StateNotFoundError struct {
	FlowID  string
	StateID string
}

func (e *StateNotFoundError) Error() string {
	return fmt.Sprintf("state %q not found in flow %q", e.StateID, e.FlowID)
}

// TransitionNotFoundError indicates a transition ID that does not exist in
// the flow, or a transition lookup attempted with no current position.
type TransitionNotFoundError struct {
	FlowID       string
	TransitionID string
}

func (e *TransitionNotFoundError) Error() string {
	return fmt.Sprintf("transition %q not found in flow %q", e.TransitionID, e.FlowID)
}

// IllegalTransitionError indicates a transition whose source does not match
// the runner's current position.
type IllegalTransitionError struct {
	TransitionID string
	Source       string
	Current      string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("transition %q starts at %q, not at current state %q", e.TransitionID, e.Source, e.Current)
}

// NoCurrentStateError indicates an operation that requires a position was
// called before SetStartState.
type NoCurrentStateError struct{}

func (e *NoCurrentStateError) Error() string {
	return "no current state: call SetStartState first"
}
