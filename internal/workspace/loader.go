// Package workspace loads document workspaces from YAML files on disk into a
// DocumentStore, and seeds a demo workspace when none is given.
package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/NeoVand/WhyBecause/pkg/domain"
	"github.com/NeoVand/WhyBecause/pkg/ports"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Load reads every *.yaml / *.yml file under dir (one document envelope per
// file), validates the type tags and puts the documents into the store.
// Files are processed in name order so reloads are deterministic. Returns the
// number of documents loaded.
func Load(ctx context.Context, dir string, store ports.DocumentStore) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read workspace directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	count := 0
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return count, fmt.Errorf("failed to read %s: %w", name, err)
		}

		var doc domain.Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return count, fmt.Errorf("failed to parse %s: %w", name, err)
		}

		if doc.ID == "" {
			doc.ID = uuid.NewString()
		}
		if err := doc.Validate(); err != nil {
			return count, fmt.Errorf("invalid document in %s: %w", name, err)
		}

		if err := store.Put(ctx, doc); err != nil {
			return count, fmt.Errorf("failed to store document from %s: %w", name, err)
		}
		count++
	}

	return count, nil
}

// Seed installs a small demo workspace: a three-state analysis flow, an
// agent, and a project configured for the simulated provider. Used by the
// CLI when no workspace directory is given.
func Seed(ctx context.Context, store ports.DocumentStore) error {
	agent := &domain.Agent{
		ID:     "demo-agent",
		Title:  "Incident Analyst",
		Prompt: "You are analyzing the state {stateName} of the process {flowName}.\n\n{input}",
	}

	flow := &domain.Flow{
		ID:    "demo-flow",
		Title: "Pump Failure Analysis",
		States: []domain.State{
			{ID: "start", Label: "Incident Reported", Type: domain.StateTypeStart},
			{ID: "analyze", Label: "Root Cause Analysis", Type: domain.StateTypeNormal, AgentID: agent.ID},
			{ID: "done", Label: "Report Complete", Type: domain.StateTypeFinal},
		},
		Transitions: []domain.Transition{
			{ID: "t-analyze", Source: "start", Target: "analyze", Properties: map[string]any{"label": "begin analysis"}},
			{ID: "t-done", Source: "analyze", Target: "done", Properties: map[string]any{"label": "finish"}},
		},
	}

	project := &domain.Project{
		ID:    "demo-project",
		Title: "Demo Workspace",
		Documents: []domain.DocumentRef{
			{ID: flow.ID, Type: domain.DocTypeFlow, Title: flow.Title},
			{ID: agent.ID, Type: domain.DocTypeAgent, Title: agent.Title},
		},
		Provider: &domain.ProviderConfig{Provider: "dummy", Model: "default", Temperature: 0.7, MaxTokens: 1000},
	}

	for _, doc := range []domain.Document{
		domain.NewAgentDocument(agent),
		domain.NewFlowDocument(flow),
		domain.NewProjectDocument(project),
	} {
		if err := store.Put(ctx, doc); err != nil {
			return fmt.Errorf("failed to seed %s: %w", doc.ID, err)
		}
	}
	return nil
}
