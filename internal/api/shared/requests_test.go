package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		want      payload
		malformed bool
	}{
		{name: "valid", body: `{"name":"Arto Hellas","number":"040-123456"}`, want: payload{"Arto Hellas", "040-123456"}},
		{name: "extra fields ignored", body: `{"name":"Arto Hellas","important":true}`, want: payload{Name: "Arto Hellas"}},
		{name: "empty body", body: ``},
		{name: "empty object", body: `{}`},
		{name: "truncated", body: `{"name":`, malformed: true},
		{name: "wrong type", body: `{"name":42}`, malformed: true},
		{name: "not json", body: `name=Arto`, malformed: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/persons", strings.NewReader(tc.body))

			var got payload
			err := DecodeJSON(req, &got)
			if tc.malformed {
				assert.ErrorIs(t, err, ErrMalformedBody)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeJSONTooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/persons", strings.NewReader(body))

	var got payload
	assert.ErrorIs(t, DecodeJSON(req, &got), ErrMalformedBody)
}
