package domain

import "github.com/google/uuid"

// SeedContacts returns the sample phonebook a fresh deployment starts with.
// Each call assigns new IDs.
func SeedContacts() []Contact {
	return []Contact{
		{ID: uuid.New(), Name: "Arto Hellas", Number: "040-123456"},
		{ID: uuid.New(), Name: "Ada Lovelace", Number: "39-44-5323523"},
		{ID: uuid.New(), Name: "Dan Abramov", Number: "12-43-234345"},
		{ID: uuid.New(), Name: "Mary Poppendieck", Number: "39-23-6423122"},
	}
}
