package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/phonebook-api/internal/platform/logger"
	"github.com/phrazzld/phonebook-api/internal/redact"
	"github.com/tidwall/gjson"
)

// maxLoggedBody caps how much of a POST body is copied into the log.
const maxLoggedBody = 4 << 10

// NewRequestLogger returns middleware that writes one log line per request
// with method, path, status, response size and elapsed time. POST bodies
// are included when they are valid JSON; anything else is replaced with a
// placeholder. The response is never altered.
func NewRequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			var body []byte
			if r.Method == http.MethodPost && r.Body != nil {
				body = peekBody(r)
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			}
			if r.Method == http.MethodPost {
				attrs = append(attrs, slog.String("body", loggableBody(body)))
			}

			logger.FromContextOrDefault(r.Context(), base).
				LogAttrs(r.Context(), slog.LevelInfo, "request completed", attrs...)
		})
	}
}

// peekBody reads up to maxLoggedBody bytes and puts them back in front of
// whatever remains, so handlers still see the full body.
func peekBody(r *http.Request) []byte {
	buf, err := io.ReadAll(io.LimitReader(r.Body, maxLoggedBody))
	r.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(buf), r.Body), r.Body}
	if err != nil {
		return nil
	}
	return buf
}

func loggableBody(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	switch {
	case len(trimmed) == 0:
		return ""
	case len(body) >= maxLoggedBody:
		return redact.RedactionPlaceholder
	case gjson.ValidBytes(trimmed):
		return string(trimmed)
	default:
		return redact.RedactionPlaceholder
	}
}
