package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/edvin/pginfra/internal/catalog"
	"github.com/edvin/pginfra/internal/core"
	"github.com/edvin/pginfra/internal/render"
	"github.com/edvin/pginfra/internal/store"
)

// newRequest creates a new HTTP request with an optional JSON body.
func newRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	r := httptest.NewRequest(method, target, &buf)
	r.Header.Set("Content-Type", "application/json")
	return r
}

// newRequestRaw creates a new HTTP request with a raw string body.
func newRequestRaw(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// decodeJSON parses the JSON response body into v.
func decodeJSON(rec *httptest.ResponseRecorder, v any) error {
	return json.Unmarshal(rec.Body.Bytes(), v)
}

// decodeErrorResponse parses the JSON error response body into a map.
func decodeErrorResponse(rec *httptest.ResponseRecorder) map[string]string {
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	return body
}

// newTestService builds a GenerateService writing into a per-test directory,
// with the clock pinned so artifact names are predictable.
func newTestService(t *testing.T, at time.Time) (*core.GenerateService, string) {
	t.Helper()
	dir := t.TempDir()
	svc := core.NewGenerateService(
		catalog.Default(),
		render.New(render.Options{}),
		dir,
		store.NewHistory(filepath.Join(dir, "history.jsonl")),
		nil,
	).WithClock(func() time.Time { return at })
	return svc, dir
}

func validBody() map[string]any {
	return map[string]any{
		"postgres_version": "14.10",
		"instance_type":    "t3.medium",
		"num_replicas":     2,
		"max_connections":  100,
		"shared_buffers":   "256MB",
	}
}
