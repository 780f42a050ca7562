package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/phonebook-api/internal/domain"
)

// ContactRequest defines the payload for creating or replacing a contact.
// Both fields are validated by the domain package, so a missing field is
// reported with its own message rather than a generic decode error.
type ContactRequest struct {
	Name   TextField `json:"name"`
	Number TextField `json:"number"`
}

// TextField is a string that also accepts JSON numbers and booleans, keeping
// their literal text. A value such as {"name": 5} is then judged by field
// validation instead of failing to decode. Null decodes as empty; objects and
// arrays are rejected.
type TextField string

// UnmarshalJSON implements json.Unmarshaler.
func (f *TextField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty JSON value")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = TextField(s)
	case '{', '[':
		return fmt.Errorf("expected a string, got %s", jsonKind(data[0]))
	default:
		if bytes.Equal(data, []byte("null")) {
			*f = ""
			return nil
		}
		*f = TextField(data)
	}
	return nil
}

func jsonKind(first byte) string {
	if first == '{' {
		return "object"
	}
	return "array"
}

// ContactResponse is the JSON representation of a contact.
type ContactResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Number string    `json:"number"`
}

func contactToResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:     c.ID,
		Name:   c.Name,
		Number: c.Number,
	}
}

func contactsToResponse(contacts []*domain.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, contactToResponse(c))
	}
	return out
}
