package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/phonebook-api/internal/api/middleware"
	"github.com/phrazzld/phonebook-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestRouterEndToEnd(t *testing.T) {
	app := newTestApp(t, testConfig())
	app.now = func() time.Time { return time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC) }
	srv := httptest.NewServer(app.setupRouter())
	defer srv.Close()

	get := func(path string) (*http.Response, string) {
		t.Helper()
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp, string(b)
	}

	resp, body := get("/api/persons")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, resp.Header.Get(middleware.TraceIDHeader), 32)
	assert.Equal(t, int64(4), gjson.Get(body, "#").Int())
	assert.Equal(t, "Arto Hellas", gjson.Get(body, "0.name").String())

	resp, body = get("/info")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Phonebook has info for 4 people.")
	assert.Contains(t, body, "Sat Oct 17 2026 09:00:00 GMT+0000 (UTC)")

	resp, body = get("/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body)

	post, err := http.Post(srv.URL+"/api/persons", "application/json",
		strings.NewReader(`{"name":"Mary Poppendieck","number":"39-23-6423122"}`))
	require.NoError(t, err)
	post.Body.Close()
	assert.Equal(t, http.StatusOK, post.StatusCode)

	_, body = get("/api/persons")
	assert.Equal(t, int64(5), gjson.Get(body, "#").Int())

	resp, body = get("/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `route="/api/persons"`)
}

func TestRouterUniqueNames(t *testing.T) {
	cfg := testConfig()
	cfg.Phonebook.UniqueNames = true
	app := newTestApp(t, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/persons",
		strings.NewReader(`{"name":"Mary Poppendieck","number":"39-23-6423122"}`))
	app.setupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "The name already exists in the phonebook", gjson.Get(w.Body.String(), "error").String())
}

func TestRouterLogsEachRequest(t *testing.T) {
	logBuf, log := logger.SetupTestLogger(t)
	cfg := testConfig()
	app := newTestApp(t, cfg)
	app.logger = log

	w := httptest.NewRecorder()
	app.setupRouter().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/persons",
		strings.NewReader(`{"name":"Grace Hopper","number":"040-987654"}`)))
	require.Equal(t, http.StatusOK, w.Code)

	entries, err := logBuf.GetLogEntries()
	require.NoError(t, err)

	var found map[string]any
	for _, e := range entries {
		if e["msg"] == "request completed" {
			found = e
		}
	}
	require.NotNil(t, found, "expected a request log line")
	assert.Equal(t, "POST", found["method"])
	assert.Equal(t, "/api/persons", found["path"])
	assert.Equal(t, float64(http.StatusOK), found["status"])
	assert.Equal(t, `{"name":"Grace Hopper","number":"040-987654"}`, found["body"])
	assert.NotEmpty(t, found["trace_id"])
}

func TestRouterUnknownRoute(t *testing.T) {
	app := newTestApp(t, testConfig())

	w := httptest.NewRecorder()
	app.setupRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/people", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
