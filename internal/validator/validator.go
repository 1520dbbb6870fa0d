// Package validator checks flow graphs for structural problems. Validation
// is advisory: the runner deliberately tolerates dangling transitions and
// unreachable states, so nothing here runs implicitly.
package validator

import (
	"fmt"

	"github.com/NeoVand/WhyBecause/pkg/domain"
	"github.com/NeoVand/WhyBecause/pkg/schema"
)

// ValidateFlow reports duplicate IDs, transitions referencing missing states,
// and states unreachable from the flow's entry points. Returns nil when the
// graph is clean, otherwise a *schema.AggregateError.
func ValidateFlow(flow *domain.Flow) error {
	var errs []error

	states := make(map[string]bool, len(flow.States))
	for _, s := range flow.States {
		if s.ID == "" {
			errs = append(errs, &schema.ValidationError{Key: "state", Reason: "missing id"})
			continue
		}
		if states[s.ID] {
			errs = append(errs, &schema.ValidationError{Key: s.ID, Reason: "duplicate state id"})
		}
		states[s.ID] = true
	}

	transitionIDs := make(map[string]bool, len(flow.Transitions))
	for _, t := range flow.Transitions {
		if t.ID == "" {
			errs = append(errs, &schema.ValidationError{Key: "transition", Reason: "missing id"})
			continue
		}
		if transitionIDs[t.ID] {
			errs = append(errs, &schema.ValidationError{Key: t.ID, Reason: "duplicate transition id"})
		}
		transitionIDs[t.ID] = true

		if !states[t.Source] {
			errs = append(errs, &schema.ValidationError{Key: t.ID, Reason: "source references missing state", Value: t.Source})
		}
		if !states[t.Target] {
			errs = append(errs, &schema.ValidationError{Key: t.ID, Reason: "target references missing state", Value: t.Target})
		}
	}

	for _, id := range unreachableStates(flow) {
		errs = append(errs, &schema.ValidationError{Key: id, Reason: "state unreachable from any entry point"})
	}

	if len(errs) > 0 {
		return &schema.AggregateError{Errors: errs}
	}
	return nil
}

// unreachableStates crawls the graph from its entry points: states typed
// "Start", or, when none exist, states with no inbound transitions.
func unreachableStates(flow *domain.Flow) []string {
	if len(flow.States) == 0 {
		return nil
	}

	var roots []string
	for _, s := range flow.States {
		if s.Type == domain.StateTypeStart {
			roots = append(roots, s.ID)
		}
	}
	if len(roots) == 0 {
		inbound := make(map[string]int)
		for _, t := range flow.Transitions {
			inbound[t.Target]++
		}
		for _, s := range flow.States {
			if inbound[s.ID] == 0 {
				roots = append(roots, s.ID)
			}
		}
	}

	visited := make(map[string]bool)
	queue := append([]string{}, roots...)
	for len(queue) > 0 {
		currentID := queue[0]
		queue = queue[1:]

		if visited[currentID] {
			continue
		}
		visited[currentID] = true

		for _, t := range flow.TransitionsFrom(currentID) {
			if !visited[t.Target] {
				queue = append(queue, t.Target)
			}
		}
	}

	var unreachable []string
	for _, s := range flow.States {
		if !visited[s.ID] {
			unreachable = append(unreachable, s.ID)
		}
	}
	return unreachable
}

// Summarize renders a validation result as a short human-readable report.
func Summarize(err error) string {
	if err == nil {
		return "flow is valid"
	}
	if errs := schema.ValidationErrors(err); errs != nil {
		return fmt.Sprintf("found %d problems:\n%s", len(errs), err.Error())
	}
	return err.Error()
}
