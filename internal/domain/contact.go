package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validation limits for contact fields.
const (
	MinNameLength   = 3
	MinNumberLength = 8
)

// Client-facing validation messages.
const (
	MsgNameMissing   = "The name is missing"
	MsgNumberMissing = "The number is missing"
	MsgNameExists    = "The name already exists in the phonebook"
	MsgMalformedID   = "malformatted id"
)

// numberPattern accepts two or three digits followed by one or more
// hyphen-separated digit groups, e.g. 09-1234556 or 39-23-6423122.
var numberPattern = regexp.MustCompile(`^\d{2,3}(-\d+)+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// ALLOW-PANIC: tag registration only fails on programmer error
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return numberPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Contact is a single phonebook entry.
type Contact struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"   validate:"required,min=3"`
	Number string    `json:"number" validate:"required,min=8,phone"`
}

// NewContact creates a Contact with a fresh random ID.
// Returns a ValidationError if name or number is rejected.
func NewContact(name, number string) (*Contact, error) {
	c := &Contact{
		ID:     uuid.New(),
		Name:   strings.TrimSpace(name),
		Number: strings.TrimSpace(number),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks name first, then number, and reports the first failure.
func (c *Contact) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// validator reports fields in declaration order, so name comes first
	fe := fieldErrs[0]
	return NewValidationError(strings.ToLower(fe.Field()), fieldMessage(fe), nil)
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		if field == "name" {
			return MsgNameMissing
		}
		return MsgNumberMissing
	case "min":
		return fmt.Sprintf("%s: must be at least %s characters long", field, fe.Param())
	case "phone":
		return fmt.Sprintf("%s: must be two or three digits followed by hyphen-separated digits (e.g. 09-1234556)", field)
	default:
		return fmt.Sprintf("%s: failed on the '%s' rule", field, fe.Tag())
	}
}

// ParseContactID parses a textual contact ID. Any malformed input yields an
// error wrapping ErrInvalidID.
func ParseContactID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, NewValidationError("id", MsgMalformedID, ErrInvalidID)
	}
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, NewValidationError("id", MsgMalformedID, ErrInvalidID)
	}
	return id, nil
}
