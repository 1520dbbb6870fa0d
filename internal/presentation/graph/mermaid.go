// Package graph renders flows as Mermaid flowchart text for the CLI and the
// HTTP surface.
package graph

import (
	"fmt"
	"strings"

	"github.com/NeoVand/WhyBecause/pkg/domain"
)

// Overlay contains dynamic state data to visualize on the graph.
type Overlay struct {
	CurrentState string
}

// Mermaid produces Mermaid flowchart syntax from a flow.
// It applies semantic styling by state type:
//   - Start: ((Circle))
//   - Decision: {Rhombus}
//   - Final: (((Double circle)))
//   - Default: [Rectangle]
//
// Transition labels appear on arrows; the overlay's current state, if any,
// gets a highlight class.
func Mermaid(flow *domain.Flow, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, state := range flow.States {
		safeID := sanitizeID(state.ID)

		opener, closer := "[", "]"
		switch state.Type {
		case domain.StateTypeStart:
			opener, closer = "((", "))"
		case domain.StateTypeDecision:
			opener, closer = "{", "}"
		case domain.StateTypeFinal:
			opener, closer = "(((", ")))"
		}

		label := state.Label
		if label == "" {
			label = state.ID
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(label), closer))
	}

	for _, t := range flow.Transitions {
		from := sanitizeID(t.Source)
		to := sanitizeID(t.Target)

		arrow := "-->"
		if label := t.Label(); label != t.ID {
			arrow = fmt.Sprintf("-- \"%s\" -->", escapeLabel(label))
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", from, arrow, to))
	}

	if overlay != nil && overlay.CurrentState != "" {
		sb.WriteString("    classDef current fill:#f96,stroke:#333,stroke-width:2px\n")
		sb.WriteString(fmt.Sprintf("    class %s current\n", sanitizeID(overlay.CurrentState)))
	}

	return sb.String()
}

// sanitizeID maps a state ID to a Mermaid-safe identifier.
func sanitizeID(id string) string {
	r := strings.NewReplacer(" ", "_", "-", "_", "/", "_", ".", "_", ":", "_")
	return r.Replace(id)
}

// escapeLabel keeps double quotes out of Mermaid labels.
func escapeLabel(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}
