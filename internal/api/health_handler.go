package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/phonebook-api/internal/platform/logger"
	"github.com/phrazzld/phonebook-api/internal/redact"
	"github.com/phrazzld/phonebook-api/internal/service"
)

// HealthHandler serves GET /health.
type HealthHandler struct {
	contactService service.ContactService
	logger         *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(contactService service.ContactService, logger *slog.Logger) *HealthHandler {
	if contactService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("contactService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{
		contactService: contactService,
		logger:         logger.With(slog.String("component", "health_handler")),
	}
}

// Health answers 200 "OK" when the contact store is reachable and 503 otherwise.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	status, body := http.StatusOK, "OK"
	if err := h.contactService.Ping(r.Context()); err != nil {
		log.Warn("health check failed", slog.String("error", redact.Error(err)))
		status, body = http.StatusServiceUnavailable, "Service Unavailable"
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		log.Error("Failed to write health check response", "error", err)
	}
}
