package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	httpAdapter "github.com/NeoVand/WhyBecause/internal/adapters/http"
	"github.com/NeoVand/WhyBecause/internal/workspace"
	"github.com/NeoVand/WhyBecause/pkg/adapters/memory"
	"github.com/NeoVand/WhyBecause/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, workspace.Seed(context.Background(), store))

	handler := httpAdapter.NewHandler(store, session.NewManager(store), nil)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	if resp.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(resp.Body).Decode(&decoded)
	}
	return resp, decoded
}

func TestHealthz(t *testing.T) {
	srv := newServer(t)
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestDocumentCRUD(t *testing.T) {
	srv := newServer(t)

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/documents/demo-flow", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/documents/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/documents", map[string]any{
		"id":   "ag-new",
		"type": "Agent",
		"content": map[string]any{
			"id": "ag-new", "title": "New", "prompt": "p",
		},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/documents/ag-new", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/documents", map[string]any{
		"id": "bad", "type": "Widget",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	srv := newServer(t)

	// Open
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/sessions", map[string]string{
		"flowId": "demo-flow", "projectId": "demo-project",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	base := fmt.Sprintf("%s/sessions/%s", srv.URL, id)

	// Start
	resp, body = doJSON(t, http.MethodPost, base+"/start", map[string]string{"stateId": "start"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "start", body["currentStateId"])

	// Unknown start state
	resp, _ = doJSON(t, http.MethodPost, base+"/start", map[string]string{"stateId": "ghost"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Run the agentless start state
	resp, body = doJSON(t, http.MethodPost, base+"/run", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body["output"], "no agent assigned")

	// Transitions
	resp, _ = doJSON(t, http.MethodGet, base+"/transitions", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Illegal transition: t-done leaves "analyze", not "start"
	resp, _ = doJSON(t, http.MethodPost, base+"/transition", map[string]string{"transitionId": "t-done"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Legal transition
	resp, body = doJSON(t, http.MethodPost, base+"/transition", map[string]string{"transitionId": "t-analyze"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Root Cause Analysis", body["label"])

	// Run the agent-backed state; demo project uses the simulated provider
	resp, body = doJSON(t, http.MethodPost, base+"/run", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body["output"], "Incident Analyst")

	// Reset, then run fails structurally
	resp, _ = doJSON(t, http.MethodPost, base+"/reset", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodPost, base+"/run", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Close
	resp, _ = doJSON(t, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodGet, base+"/state", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFlowGraphAndValidate(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/flows/demo-flow/graph")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	r2, body := doJSON(t, http.MethodGet, srv.URL+"/flows/demo-flow/validate", nil)
	assert.Equal(t, http.StatusOK, r2.StatusCode)
	assert.Equal(t, true, body["valid"])
}
