package domain

// StateType constants are UI conventions. The runner treats State.Type as a
// free-form string and never enforces membership in this set.
const (
	StateTypeStart    = "Start"
	StateTypeNormal   = "Normal"
	StateTypeDecision = "Decision"
	StateTypeFinal    = "Final"
)

// State represents a named node in a Flow.
type State struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"` // e.g. "Start", "Normal", "Decision", "Final"

	// AgentID optionally references an Agent document executed when this
	// state runs. Empty means the state has no action.
	AgentID string `json:"agentId,omitempty" yaml:"agentId,omitempty"`

	// Properties allows for extensible key-value pairs.
	Properties map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Transition defines a directed edge between two states.
type Transition struct {
	ID     string `json:"id" yaml:"id"`
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`

	// Properties allows for extensible key-value pairs. The display label
	// lives under "label" by convention.
	Properties map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Label returns the conventional display label from Properties, falling back
// to the transition ID.
func (t Transition) Label() string {
	if t.Properties != nil {
		if label, ok := t.Properties["label"].(string); ok && label != "" {
			return label
		}
	}
	return t.ID
}

// Flow represents a directed graph of States and Transitions. The graph is
// not necessarily acyclic; self-loops and unreachable states are permitted.
type Flow struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	States      []State      `json:"states" yaml:"states"`
	Transitions []Transition `json:"transitions" yaml:"transitions"`
}

// State returns the state with the given ID, or nil if absent.
func (f *Flow) State(id string) *State {
	for i := range f.States {
		if f.States[i].ID == id {
			return &f.States[i]
		}
	}
	return nil
}

// Transition returns the transition with the given ID, or nil if absent.
func (f *Flow) Transition(id string) *Transition {
	for i := range f.Transitions {
		if f.Transitions[i].ID == id {
			return &f.Transitions[i]
		}
	}
	return nil
}

// TransitionsFrom returns all transitions whose source is stateID, in the
// flow's stored order.
func (f *Flow) TransitionsFrom(stateID string) []Transition {
	var out []Transition
	for _, t := range f.Transitions {
		if t.Source == stateID {
			out = append(out, t)
		}
	}
	return out
}
