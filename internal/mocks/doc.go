// Package mocks provides centralized mock implementations for testing.
//
// Each mock has a function field per interface method. A test sets only the
// fields it cares about; unset fields fall back to a simple default
// behavior (for MockContactStore, an in-memory ordered list).
//
// Usage:
//
//	import "github.com/phrazzld/phonebook-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    contacts := mocks.NewMockContactStore()
//	    contacts.CreateUniqueFn = func(ctx context.Context, c *domain.Contact) error {
//	        return store.ErrNameExists
//	    }
//
//	    // Use the mock in your test...
//	}
package mocks
