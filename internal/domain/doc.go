// Package domain contains the phonebook's core entity, its validation rules
// and the error kinds shared by every layer. It does not depend on any
// storage or transport package.
package domain
