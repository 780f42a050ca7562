package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/phonebook-api/internal/api/shared"
	"github.com/phrazzld/phonebook-api/internal/domain"
	"github.com/phrazzld/phonebook-api/internal/platform/logger"
	"github.com/phrazzld/phonebook-api/internal/service"
	"github.com/phrazzld/phonebook-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "not found",
			err:        service.ErrContactNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "",
		},
		{
			name:       "invalid id",
			err:        domain.NewValidationError("id", domain.MsgMalformedID, domain.ErrInvalidID),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"malformatted id"}`,
		},
		{
			name:       "validation error message passes through",
			err:        domain.NewValidationError("name", domain.MsgNameMissing, nil),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"The name is missing"}`,
		},
		{
			name:       "backend constraint",
			err:        fmt.Errorf("%w: check constraint", store.ErrInvalidEntity),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid entity data"}`,
		},
		{
			name:       "duplicate name",
			err:        service.ErrNameExists,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"The name already exists in the phonebook"}`,
		},
		{
			name:       "internal",
			err:        errors.New("pq: password authentication failed for user admin"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"An unexpected error occurred"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/persons/x", nil)
			w := httptest.NewRecorder()

			HandleAPIError(w, req, tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantBody == "" {
				assert.Zero(t, w.Body.Len())
				return
			}
			assert.JSONEq(t, tc.wantBody, w.Body.String())
		})
	}
}

func TestHandleAPIErrorIncludesTraceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/persons", nil)
	req = req.WithContext(shared.WithTraceID(req.Context(), "0123abcd"))
	w := httptest.NewRecorder()

	HandleAPIError(w, req, service.ErrNameExists)

	assert.JSONEq(t,
		`{"error":"The name already exists in the phonebook","trace_id":"0123abcd"}`,
		w.Body.String())
}

func TestHandleAPIErrorLogsRedactedDetails(t *testing.T) {
	logBuf, _ := logger.SetupTestLogger(t)
	req := httptest.NewRequest(http.MethodGet, "/api/persons", nil)
	w := httptest.NewRecorder()

	HandleAPIError(w, req, errors.New("connect postgres://app:s3cret@db/phonebook failed"))

	entries, err := logBuf.GetLogEntries()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "ERROR", entries[0]["level"])
	assert.NotContains(t, logBuf.String(), "s3cret")
}

func TestMapErrorToStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, MapErrorToStatusCode(store.ErrNotFound))
	assert.Equal(t, http.StatusBadRequest, MapErrorToStatusCode(store.ErrDuplicate))
	assert.Equal(t, http.StatusBadRequest, MapErrorToStatusCode(domain.ErrInvalidID))
	assert.Equal(t, http.StatusInternalServerError, MapErrorToStatusCode(errors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, MapErrorToStatusCode(nil))
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, msgUnexpected, GetSafeErrorMessage(nil))
	assert.Equal(t, domain.MsgMalformedID, GetSafeErrorMessage(domain.ErrInvalidID))
	assert.Equal(t, msgInvalidEntity, GetSafeErrorMessage(domain.ErrValidation))
	assert.Equal(t, msgUnexpected, GetSafeErrorMessage(errors.New("SELECT * FROM contacts")))
}
