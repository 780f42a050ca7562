package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/phonebook-api/internal/domain"
)

// contactIDParam is the chi URL parameter holding a contact ID.
const contactIDParam = "id"

// getPathContactID extracts and parses the contact ID from the URL path.
// Any value that is not a UUID yields a KindInvalidID error.
func getPathContactID(r *http.Request) (uuid.UUID, error) {
	return domain.ParseContactID(chi.URLParam(r, contactIDParam))
}

// handlePathContactID is a composite helper that parses the contact ID and
// writes the error response when parsing fails.
//
// Returns:
//   - (id, true): the parsed contact ID
//   - (uuid.Nil, false): parsing failed and a response was already written
func handlePathContactID(w http.ResponseWriter, r *http.Request, log *slog.Logger) (uuid.UUID, bool) {
	id, err := getPathContactID(r)
	if err != nil {
		log.Debug("invalid contact id", slog.String("value", chi.URLParam(r, contactIDParam)))
		HandleAPIError(w, r, err)
		return uuid.Nil, false
	}
	return id, true
}
