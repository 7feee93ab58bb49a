package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product_content_pipeline/generator"
	"product_content_pipeline/pipeline"
)

// stubLLM answers each pipeline prompt with a canned response, or fails
// everything when err is set.
type stubLLM struct {
	err error
}

func (s *stubLLM) Complete(_ context.Context, _ string, p generator.Prompt) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	switch {
	case strings.HasPrefix(p.User, "Generate"):
		items := make([]map[string]string, 0, 18)
		categories := []string{"Informational", "Safety", "Usage", "Purchase", "Comparison"}
		for i := 0; i < 18; i++ {
			items = append(items, map[string]string{
				"category": categories[i%len(categories)],
				"question": fmt.Sprintf("Question number %d?", i+1),
			})
		}
		data, _ := json.Marshal(items)
		return string(data), nil
	case strings.HasPrefix(p.User, "Answer"):
		items := make([]map[string]string, 0, 18)
		for i := 0; i < 18; i++ {
			items = append(items, map[string]string{"id": fmt.Sprintf("q%d", i+1), "answer": "An answer."})
		}
		data, _ := json.Marshal(items)
		return string(data), nil
	case strings.HasPrefix(p.User, "Write marketing copy"):
		return `{"tagline": "Shine on", "headline": "Your best skin", "description": "A daily serum."}`, nil
	case strings.HasPrefix(p.User, "Invent a FICTIONAL"):
		return `{"name": "Rival Serum", "product_type": "Serum", "target_users": ["All"], "key_features": ["Niacinamide"], "benefits": ["Oil control"], "how_to_use": "Nightly", "considerations": "None known", "price": "₹899"}`, nil
	}
	return "", fmt.Errorf("unexpected prompt")
}

func newTestServer(t *testing.T, llm generator.LLMClient) *Server {
	t.Helper()
	gw, err := generator.NewGateway(llm, []string{"k1"}, nil)
	require.NoError(t, err)
	driver := pipeline.NewDriver(gw, pipeline.NewWriter(t.TempDir()), nil)
	srv, err := New(driver, nil)
	require.NoError(t, err)
	return srv
}

func postRun(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/runs", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

const productBody = `{"product_name": "GlowBoost Serum", "benefits": ["Brightening"], "price": "₹699"}`

func TestCreateRun(t *testing.T) {
	handler := newTestServer(t, &stubLLM{}).Routes()
	rec := postRun(t, handler, productBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var state pipeline.WorkflowState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.NotEmpty(t, state.RunID)
	assert.Equal(t, pipeline.StepCompleted, state.Step)
	assert.Len(t, state.OutputFiles, 4)
}

func TestGetRunAndPreview(t *testing.T) {
	handler := newTestServer(t, &stubLLM{}).Routes()
	rec := postRun(t, handler, productBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var state pipeline.WorkflowState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))

	get := httptest.NewRecorder()
	handler.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/api/runs/"+state.RunID, nil))
	assert.Equal(t, http.StatusOK, get.Code)
	assert.Contains(t, get.Header().Get("Content-Type"), "application/json")

	pv := httptest.NewRecorder()
	handler.ServeHTTP(pv, httptest.NewRequest(http.MethodGet, "/api/runs/"+state.RunID+"/preview", nil))
	assert.Equal(t, http.StatusOK, pv.Code)
	assert.Contains(t, pv.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, pv.Body.String(), "GlowBoost Serum")
}

func TestCreateRunFailure(t *testing.T) {
	llm := &stubLLM{err: generator.StatusError{StatusCode: 429, Message: "quota exceeded"}}
	handler := newTestServer(t, llm).Routes()

	rec := postRun(t, handler, productBody)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var state pipeline.WorkflowState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, pipeline.StepFailed, state.Step)
	assert.NotEmpty(t, state.Errors)

	// A failed run has no preview.
	pv := httptest.NewRecorder()
	handler.ServeHTTP(pv, httptest.NewRequest(http.MethodGet, "/api/runs/"+state.RunID+"/preview", nil))
	assert.Equal(t, http.StatusConflict, pv.Code)
}

func TestCreateRunBadRequests(t *testing.T) {
	handler := newTestServer(t, &stubLLM{}).Routes()

	assert.Equal(t, http.StatusBadRequest, postRun(t, handler, "not json").Code)
	assert.Equal(t, http.StatusBadRequest, postRun(t, handler, "{}").Code)

	get := httptest.NewRecorder()
	handler.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/api/runs", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, get.Code)
}

func TestGetRunNotFound(t *testing.T) {
	handler := newTestServer(t, &stubLLM{}).Routes()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/runs/does-not-exist", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
