// Package postgres provides the PostgreSQL implementation of
// store.ContactStore together with its schema migrations. It handles query
// execution, mapping of driver errors to store errors, and mapping between
// domain contacts and table rows.
package postgres
