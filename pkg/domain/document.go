package domain

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Document type tags. The store is generic; these discriminate the Content
// payload.
const (
	DocTypeFlow    = "Flow"
	DocTypeAgent   = "Agent"
	DocTypeProject = "Project"
)

// Document is the envelope persisted by a DocumentStore. Content holds the
// concrete payload discriminated by Type: a *Flow, *Agent or *Project when
// constructed in-process, or a map[string]any after a JSON/YAML round-trip.
type Document struct {
	ID      string `json:"id" yaml:"id"`
	Type    string `json:"type" yaml:"type"`
	Content any    `json:"content" yaml:"content"`
}

// NewFlowDocument wraps a flow in its envelope.
func NewFlowDocument(f *Flow) Document {
	return Document{ID: f.ID, Type: DocTypeFlow, Content: f}
}

// NewAgentDocument wraps an agent in its envelope.
func NewAgentDocument(a *Agent) Document {
	return Document{ID: a.ID, Type: DocTypeAgent, Content: a}
}

// NewProjectDocument wraps a project in its envelope.
func NewProjectDocument(p *Project) Document {
	return Document{ID: p.ID, Type: DocTypeProject, Content: p}
}

// AsFlow decodes the content as a Flow. Returns false if the type tag does
// not match or the payload cannot be decoded.
func (d Document) AsFlow() (*Flow, bool) {
	if d.Type != DocTypeFlow {
		return nil, false
	}
	var f Flow
	if !decodeContent(d.Content, &f) {
		return nil, false
	}
	return &f, true
}

// AsAgent decodes the content as an Agent.
func (d Document) AsAgent() (*Agent, bool) {
	if d.Type != DocTypeAgent {
		return nil, false
	}
	var a Agent
	if !decodeContent(d.Content, &a) {
		return nil, false
	}
	return &a, true
}

// AsProject decodes the content as a Project.
func (d Document) AsProject() (*Project, bool) {
	if d.Type != DocTypeProject {
		return nil, false
	}
	var p Project
	if !decodeContent(d.Content, &p) {
		return nil, false
	}
	return &p, true
}

// decodeContent copies the payload into out. Typed payloads are copied
// directly; map-shaped payloads (the result of generic unmarshalling) go
// through mapstructure honoring the json field tags.
func decodeContent(content, out any) bool {
	if content == nil {
		return false
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return false
	}
	return dec.Decode(content) == nil
}

// Validate checks the envelope's structural invariants: a non-empty ID and a
// known type tag.
func (d Document) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("document missing id")
	}
	switch d.Type {
	case DocTypeFlow, DocTypeAgent, DocTypeProject:
		return nil
	default:
		return fmt.Errorf("unknown document type %q", d.Type)
	}
}
