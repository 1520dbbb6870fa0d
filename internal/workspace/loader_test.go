package workspace_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/NeoVand/WhyBecause/internal/workspace"
	"github.com/NeoVand/WhyBecause/pkg/adapters/memory"
	"github.com/NeoVand/WhyBecause/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "agent.yaml", `
id: ag-1
type: Agent
content:
  id: ag-1
  title: Analyst
  prompt: "Analyze {stateName}"
`)
	writeFile(t, dir, "flow.yml", `
id: flow-1
type: Flow
content:
  id: flow-1
  title: Demo
  states:
    - id: a
      label: A
      type: Start
  transitions: []
`)
	writeFile(t, dir, "notes.txt", "ignored")

	store := memory.NewStore()
	n, err := workspace.Load(context.Background(), dir, store)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	doc, err := store.Get(context.Background(), "flow-1")
	require.NoError(t, err)
	flow, ok := doc.AsFlow()
	require.True(t, ok)
	assert.Equal(t, "Demo", flow.Title)
	require.Len(t, flow.States, 1)
	assert.Equal(t, domain.StateTypeStart, flow.States[0].Type)
}

func TestLoad_AssignsIDWhenMissing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "anon.yaml", `
type: Agent
content:
  title: Anonymous
  prompt: p
`)

	store := memory.NewStore()
	n, err := workspace.Load(context.Background(), dir, store)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	docs, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.NotEmpty(t, docs[0].ID)
}

func TestLoad_RejectsUnknownType(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.yaml", `
id: x
type: Widget
content: {}
`)

	_, err := workspace.Load(context.Background(), dir, memory.NewStore())
	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, workspace.Seed(context.Background(), store))

	doc, err := store.Get(context.Background(), "demo-flow")
	require.NoError(t, err)
	flow, ok := doc.AsFlow()
	require.True(t, ok)
	assert.Len(t, flow.States, 3)

	doc, err = store.Get(context.Background(), "demo-project")
	require.NoError(t, err)
	project, ok := doc.AsProject()
	require.True(t, ok)
	require.NotNil(t, project.Provider)
	assert.Equal(t, "dummy", project.Provider.Provider)
}
