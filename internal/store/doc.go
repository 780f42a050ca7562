// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, so the same handlers work against the
// in-memory phonebook and the PostgreSQL one.
package store
