// Package storetest provides a reusable contract suite for
// ports.DocumentStore implementations.
package storetest

import (
	"context"
	"testing"

	"github.com/NeoVand/WhyBecause/pkg/domain"
	"github.com/NeoVand/WhyBecause/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run verifies that a store complies with the ports.DocumentStore contract.
// The store must be empty when passed in.
func Run(t *testing.T, store ports.DocumentStore) {
	t.Helper()
	ctx := context.Background()

	agent := domain.NewAgentDocument(&domain.Agent{
		ID:     "ag-1",
		Title:  "Analyst",
		Prompt: "Analyze {stateName}",
	})
	flow := domain.NewFlowDocument(&domain.Flow{
		ID:    "flow-1",
		Title: "Demo",
		States: []domain.State{
			{ID: "A", Label: "Start", Type: domain.StateTypeStart},
		},
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})

	t.Run("Put_Get", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, agent))

		got, err := store.Get(ctx, "ag-1")
		require.NoError(t, err)
		assert.Equal(t, domain.DocTypeAgent, got.Type)

		decoded, ok := got.AsAgent()
		require.True(t, ok, "content should decode as Agent")
		assert.Equal(t, "Analyst", decoded.Title)
		assert.Equal(t, "Analyze {stateName}", decoded.Prompt)
	})

	t.Run("Put_Replace", func(t *testing.T) {
		updated := agent
		updated.Content = &domain.Agent{ID: "ag-1", Title: "Renamed", Prompt: "x"}
		require.NoError(t, store.Put(ctx, updated))

		got, err := store.Get(ctx, "ag-1")
		require.NoError(t, err)
		decoded, ok := got.AsAgent()
		require.True(t, ok)
		assert.Equal(t, "Renamed", decoded.Title)
	})

	t.Run("List_SortedByID", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, flow))

		docs, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "ag-1", docs[0].ID)
		assert.Equal(t, "flow-1", docs[1].ID)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "ag-1"))

		_, err := store.Get(ctx, "ag-1")
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)

		// Deleting a missing ID is a no-op.
		assert.NoError(t, store.Delete(ctx, "ag-1"))
	})
}
