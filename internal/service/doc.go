// Package service contains the phonebook use cases. It sits between the HTTP
// handlers in internal/api and the store.ContactStore implementations, and
// owns the policies that are not a property of any single backend:
//
//   - input validation through the domain package before anything is stored
//   - the optional unique-name rule, checked on create only
//   - idempotent deletes: removing an absent contact is not an error
//
// The service depends on the store interfaces only, never on a concrete
// backend.
package service
