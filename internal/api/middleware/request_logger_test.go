package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/phonebook-api/internal/platform/logger"
	"github.com/phrazzld/phonebook-api/internal/redact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveLogged(t *testing.T, method, body string, handler http.HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	logBuf, log := logger.SetupTestLogger(t)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	w := httptest.NewRecorder()
	NewRequestLogger(log)(handler).ServeHTTP(w, httptest.NewRequest(method, "/api/persons", reader))

	entries, err := logBuf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	return w, entries[0]
}

func TestRequestLoggerFields(t *testing.T) {
	w, entry := serveLogged(t, http.MethodGet, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "short and stout", w.Body.String())
	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/persons", entry["path"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, float64(len("short and stout")), entry["bytes"])
	assert.Contains(t, entry, "duration")
	assert.NotContains(t, entry, "body", "only POST requests log a body")
}

func TestRequestLoggerImplicitStatus(t *testing.T) {
	_, entry := serveLogged(t, http.MethodGet, "", func(w http.ResponseWriter, r *http.Request) {})
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, float64(0), entry["bytes"])
}

func TestRequestLoggerPostBody(t *testing.T) {
	const payload = `{"name":"Arto Hellas","number":"040-123456"}`

	var handlerSaw string
	_, entry := serveLogged(t, http.MethodPost, payload, func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		handlerSaw = string(b)
	})

	assert.Equal(t, payload, handlerSaw, "handler must still see the full body")
	assert.Equal(t, payload, entry["body"])
}

func TestRequestLoggerRedactsNonJSONBody(t *testing.T) {
	_, entry := serveLogged(t, http.MethodPost, "name=Arto&password=hunter2", func(w http.ResponseWriter, r *http.Request) {})
	assert.Equal(t, redact.RedactionPlaceholder, entry["body"])
}

func TestRequestLoggerLargeBodyPassesThrough(t *testing.T) {
	payload := `{"name":"` + strings.Repeat("a", 2*maxLoggedBody) + `"}`

	var n int
	_, entry := serveLogged(t, http.MethodPost, payload, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		n = len(b)
	})

	assert.Equal(t, len(payload), n)
	assert.Equal(t, redact.RedactionPlaceholder, entry["body"])
}

func TestLoggableBody(t *testing.T) {
	assert.Equal(t, "", loggableBody(nil))
	assert.Equal(t, "", loggableBody([]byte("  \n")))
	assert.Equal(t, `{"a":1}`, loggableBody([]byte(" {\"a\":1}\n")))
	assert.Equal(t, redact.RedactionPlaceholder, loggableBody([]byte(`{"a":`)))
}
