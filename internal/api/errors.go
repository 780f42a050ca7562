package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/phonebook-api/internal/api/shared"
	"github.com/phrazzld/phonebook-api/internal/domain"
)

// Client-facing messages for errors that carry no message of their own.
const (
	msgUnexpected    = "An unexpected error occurred"
	msgInvalidEntity = "Invalid entity data"
	msgMalformedBody = "malformatted request body"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes by their
// domain kind. This prevents leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInvalidID, domain.KindValidation, domain.KindDuplicate:
		return http.StatusBadRequest
	case domain.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message shown to clients for err.
// Only validation messages written for users are passed through; every
// other error gets a fixed message.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpected
	}

	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return ""
	case domain.KindInvalidID:
		return domain.MsgMalformedID
	case domain.KindDuplicate:
		return domain.MsgNameExists
	case domain.KindValidation:
		var ve *domain.ValidationError
		if errors.As(err, &ve) && ve.Message != "" {
			return ve.Message
		}
		return msgInvalidEntity
	case domain.KindInternal:
		return msgUnexpected
	default:
		return msgUnexpected
	}
}

// HandleAPIError logs err and writes the matching response. Not-found
// errors get an empty body; every other kind gets an ErrorResponse.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)

	if status == http.StatusNotFound {
		shared.LogError(r, status, "", err)
		shared.RespondWithStatus(w, status)
		return
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// handleDecodeError answers a request whose JSON body could not be decoded.
func handleDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgMalformedBody, err)
}
