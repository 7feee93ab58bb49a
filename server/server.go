// Package server exposes the pipeline over HTTP: submit a product object,
// fetch the resulting run state, and view the HTML preview.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"product_content_pipeline/pipeline"
	"product_content_pipeline/preview"
)

type Server struct {
	driver *pipeline.Driver
	store  *runStore
	log    *zap.Logger
}

type runStore struct {
	mu   sync.Mutex
	runs map[string]*pipeline.WorkflowState
}

func newStore() *runStore {
	return &runStore{runs: make(map[string]*pipeline.WorkflowState)}
}

func (s *runStore) set(state *pipeline.WorkflowState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[state.RunID] = state
}

func (s *runStore) get(id string) (*pipeline.WorkflowState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.runs[id]
	return state, ok
}

func New(driver *pipeline.Driver, log *zap.Logger) (*Server, error) {
	if driver == nil {
		return nil, errors.New("pipeline driver required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{driver: driver, store: newStore(), log: log}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/runs", s.handleRunCreate)
	mux.HandleFunc("/api/runs/", s.handleRunByID)
	return s.logMiddleware(mux)
}

func (s *Server) handleRunCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var input map[string]any
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(input) == 0 {
		http.Error(w, "product data is empty", http.StatusBadRequest)
		return
	}

	state := s.driver.Run(r.Context(), input)
	s.store.set(state)

	status := http.StatusCreated
	if state.Failed() {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, state)
}

// handleRunByID serves /api/runs/{id} and /api/runs/{id}/preview.
func (s *Server) handleRunByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/api/runs/")
	id, sub, _ := strings.Cut(rest, "/")
	state, ok := s.store.get(id)
	if !ok {
		http.Error(w, "run not found", http.StatusNotFound)
		return
	}

	switch sub {
	case "":
		writeJSON(w, http.StatusOK, state)
	case "preview":
		if state.Failed() {
			http.Error(w, "run failed; no preview available", http.StatusConflict)
			return
		}
		html, err := preview.Render(state.FAQ, state.Product, state.Comparison)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)))
	})
}
