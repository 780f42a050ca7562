package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/phonebook-api/internal/api/shared"
	"github.com/phrazzld/phonebook-api/internal/platform/logger"
	"github.com/phrazzld/phonebook-api/internal/service"
)

// ContactHandler handles the /api/persons endpoints.
type ContactHandler struct {
	contactService service.ContactService
	logger         *slog.Logger
}

// NewContactHandler creates a new ContactHandler.
// If logger is nil, slog.Default() is used.
func NewContactHandler(contactService service.ContactService, logger *slog.Logger) *ContactHandler {
	if contactService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("contactService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ContactHandler{
		contactService: contactService,
		logger:         logger.With(slog.String("component", "contact_handler")),
	}
}

// ListContacts handles GET /api/persons.
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactService.ListContacts(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contactsToResponse(contacts))
}

// GetContact handles GET /api/persons/{id}.
// An absent contact yields 404 with an empty body.
func (h *ContactHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathContactID(w, r, log)
	if !ok {
		return
	}

	contact, err := h.contactService.GetContact(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contactToResponse(contact))
}

// CreateContact handles POST /api/persons.
// A created contact is answered with 200 and the stored record.
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ContactRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("failed to decode create contact request", slog.String("error", err.Error()))
		handleDecodeError(w, r, err)
		return
	}

	contact, err := h.contactService.CreateContact(r.Context(), string(req.Name), string(req.Number))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contactToResponse(contact))
}

// UpdateContact handles PUT /api/persons/{id}.
func (h *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathContactID(w, r, log)
	if !ok {
		return
	}

	var req ContactRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("failed to decode update contact request", slog.String("error", err.Error()))
		handleDecodeError(w, r, err)
		return
	}

	contact, err := h.contactService.UpdateContact(r.Context(), id, string(req.Name), string(req.Number))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contactToResponse(contact))
}

// DeleteContact handles DELETE /api/persons/{id}.
// Deleting an absent contact also answers 204.
func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathContactID(w, r, log)
	if !ok {
		return
	}

	if err := h.contactService.DeleteContact(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithStatus(w, http.StatusNoContent)
}
