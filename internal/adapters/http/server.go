// Package http exposes the engine to a UI shell over a JSON REST API.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/NeoVand/WhyBecause/internal/logging"
	"github.com/NeoVand/WhyBecause/internal/presentation/graph"
	"github.com/NeoVand/WhyBecause/internal/validator"
	"github.com/NeoVand/WhyBecause/pkg/domain"
	"github.com/NeoVand/WhyBecause/pkg/ports"
	"github.com/NeoVand/WhyBecause/pkg/schema"
	"github.com/NeoVand/WhyBecause/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wires the document store and the session manager into HTTP handlers.
type Server struct {
	store    ports.DocumentStore
	sessions *session.Manager
	logger   *slog.Logger
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(store ports.DocumentStore, sessions *session.Manager, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{store: store, sessions: sessions, logger: logger}

	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/documents", func(r chi.Router) {
		r.Get("/", s.listDocuments)
		r.Post("/", s.putDocument)
		r.Get("/{id}", s.getDocument)
		r.Put("/{id}", s.putDocument)
		r.Delete("/{id}", s.deleteDocument)
	})

	r.Route("/flows/{id}", func(r chi.Router) {
		r.Get("/graph", s.flowGraph)
		r.Get("/validate", s.validateFlow)
	})

	r.Route("/sessions", func(r chi.Router) {
		r.Get("/", s.listSessions)
		r.Post("/", s.openSession)
		r.Delete("/{id}", s.closeSession)
		r.Post("/{id}/start", s.startSession)
		r.Get("/{id}/state", s.sessionState)
		r.Get("/{id}/transitions", s.sessionTransitions)
		r.Post("/{id}/transition", s.sessionTransition)
		r.Post("/{id}/run", s.sessionRun)
		r.Post("/{id}/reset", s.sessionReset)
	})

	return r
}

// requestLogger logs the method, path, and duration of every request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			s.logger.Error("response encode failed", "error", err)
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	s.respond(w, status, map[string]string{"error": err.Error()})
}

// runnerStatus maps structural runner errors onto HTTP statuses. An illegal
// transition is a conflict with the current position; unknown IDs are 404s;
// a missing position is a bad request.
func runnerStatus(err error) int {
	var (
		stateNotFound      *domain.StateNotFoundError
		transitionNotFound *domain.TransitionNotFoundError
		illegal            *domain.IllegalTransitionError
		noCurrent          *domain.NoCurrentStateError
	)
	switch {
	case errors.As(err, &stateNotFound), errors.As(err, &transitionNotFound):
		return http.StatusNotFound
	case errors.As(err, &illegal):
		return http.StatusConflict
	case errors.As(err, &noCurrent):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// --- documents ---

func (s *Server) listDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.List(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}
	s.respond(w, http.StatusOK, docs)
}

func (s *Server) getDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			s.respondError(w, http.StatusNotFound, err)
			return
		}
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}
	s.respond(w, http.StatusOK, doc)
}

func (s *Server) putDocument(w http.ResponseWriter, r *http.Request) {
	var doc domain.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		doc.ID = id
	}
	if err := s.store.Put(r.Context(), doc); err != nil {
		s.respondError(w, http.StatusBadRequest, err)
		return
	}
	s.respond(w, http.StatusOK, doc)
}

func (s *Server) deleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}
	s.respond(w, http.StatusNoContent, nil)
}

// --- flows ---

func (s *Server) loadFlow(w http.ResponseWriter, r *http.Request) *domain.Flow {
	id := chi.URLParam(r, "id")
	doc, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			s.respondError(w, http.StatusNotFound, err)
		} else {
			s.respondError(w, http.StatusInternalServerError, err)
		}
		return nil
	}
	flow, ok := doc.AsFlow()
	if !ok {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("document %s is not a flow (type %q)", id, doc.Type))
		return nil
	}
	return flow
}

func (s *Server) flowGraph(w http.ResponseWriter, r *http.Request) {
	flow := s.loadFlow(w, r)
	if flow == nil {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(graph.Mermaid(flow, nil)))
}

func (s *Server) validateFlow(w http.ResponseWriter, r *http.Request) {
	flow := s.loadFlow(w, r)
	if flow == nil {
		return
	}

	err := validator.ValidateFlow(flow)
	if err == nil {
		s.respond(w, http.StatusOK, map[string]any{"valid": true})
		return
	}

	var problems []string
	for _, e := range schema.ValidationErrors(err) {
		problems = append(problems, e.Error())
	}
	s.respond(w, http.StatusOK, map[string]any{"valid": false, "problems": problems})
}

// --- sessions ---

type openSessionRequest struct {
	FlowID    string `json:"flowId"`
	ProjectID string `json:"projectId,omitempty"`
}

type sessionInfo struct {
	ID             string `json:"id"`
	FlowID         string `json:"flowId"`
	ProjectID      string `json:"projectId,omitempty"`
	CurrentStateID string `json:"currentStateId,omitempty"`
}

func info(sess *session.Session) sessionInfo {
	return sessionInfo{
		ID:             sess.ID,
		FlowID:         sess.FlowID,
		ProjectID:      sess.ProjectID,
		CurrentStateID: sess.Runner.CurrentStateID(),
	}
}

func (s *Server) openSession(w http.ResponseWriter, r *http.Request) {
	var req openSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if req.FlowID == "" {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("flowId is required"))
		return
	}

	sess, err := s.sessions.Open(r.Context(), req.FlowID, req.ProjectID)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			s.respondError(w, http.StatusNotFound, err)
			return
		}
		s.respondError(w, http.StatusBadRequest, err)
		return
	}
	s.respond(w, http.StatusCreated, info(sess))
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions := s.sessions.List()
	out := make([]sessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, info(sess))
	}
	s.respond(w, http.StatusOK, out)
}

func (s *Server) closeSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Close(chi.URLParam(r, "id")); err != nil {
		s.respondError(w, http.StatusNotFound, err)
		return
	}
	s.respond(w, http.StatusNoContent, nil)
}

// withSession resolves the session from the URL or writes a 404.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request) *session.Session {
	sess, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, http.StatusNotFound, err)
		return nil
	}
	return sess
}

type startRequest struct {
	StateID string `json:"stateId"`
}

func (s *Server) startSession(w http.ResponseWriter, r *http.Request) {
	sess := s.withSession(w, r)
	if sess == nil {
		return
	}

	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := sess.Runner.SetStartState(req.StateID); err != nil {
		s.respondError(w, runnerStatus(err), err)
		return
	}
	s.respond(w, http.StatusOK, info(sess))
}

func (s *Server) sessionState(w http.ResponseWriter, r *http.Request) {
	sess := s.withSession(w, r)
	if sess == nil {
		return
	}
	s.respond(w, http.StatusOK, map[string]any{
		"currentStateId": sess.Runner.CurrentStateID(),
		"currentState":   sess.Runner.CurrentState(),
	})
}

func (s *Server) sessionTransitions(w http.ResponseWriter, r *http.Request) {
	sess := s.withSession(w, r)
	if sess == nil {
		return
	}
	ts := sess.Runner.AvailableTransitions()
	if ts == nil {
		ts = []domain.Transition{}
	}
	s.respond(w, http.StatusOK, ts)
}

type transitionRequest struct {
	TransitionID string `json:"transitionId"`
}

func (s *Server) sessionTransition(w http.ResponseWriter, r *http.Request) {
	sess := s.withSession(w, r)
	if sess == nil {
		return
	}

	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	label, err := sess.Runner.TransitionTo(req.TransitionID)
	if err != nil {
		s.respondError(w, runnerStatus(err), err)
		return
	}
	s.respond(w, http.StatusOK, map[string]string{
		"label":          label,
		"currentStateId": sess.Runner.CurrentStateID(),
	})
}

// sessionRun executes the current state's action. Execution-time failures
// (missing agent, provider errors) come back as a 200 whose output field
// carries the narrative; only structural errors produce error statuses.
func (s *Server) sessionRun(w http.ResponseWriter, r *http.Request) {
	sess := s.withSession(w, r)
	if sess == nil {
		return
	}

	out, err := sess.Runner.Run(r.Context())
	if err != nil {
		s.respondError(w, runnerStatus(err), err)
		return
	}
	s.respond(w, http.StatusOK, map[string]string{"output": out})
}

func (s *Server) sessionReset(w http.ResponseWriter, r *http.Request) {
	sess := s.withSession(w, r)
	if sess == nil {
		return
	}
	sess.Runner.Reset()
	s.respond(w, http.StatusOK, info(sess))
}
