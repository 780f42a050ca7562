package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/phonebook-api/internal/domain"
	"github.com/phrazzld/phonebook-api/internal/store"
)

// MockContactStore implements store.ContactStore for testing.
type MockContactStore struct {
	// Function fields for customizable behavior
	ListFn         func(ctx context.Context) ([]*domain.Contact, error)
	CountFn        func(ctx context.Context) (int, error)
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	CreateFn       func(ctx context.Context, contact *domain.Contact) error
	CreateUniqueFn func(ctx context.Context, contact *domain.Contact) error
	UpdateFn       func(ctx context.Context, contact *domain.Contact) error
	DeleteFn       func(ctx context.Context, id uuid.UUID) error
	PingFn         func(ctx context.Context) error

	// Data for default implementation
	mu                sync.Mutex
	Contacts          []*domain.Contact
	CreateCalls       int
	CreateUniqueCalls int
	DeleteCalls       int
}

// NewMockContactStore creates a mock store holding copies of the given contacts.
func NewMockContactStore(contacts ...domain.Contact) *MockContactStore {
	m := &MockContactStore{}
	for i := range contacts {
		c := contacts[i]
		m.Contacts = append(m.Contacts, &c)
	}
	return m
}

var _ store.ContactStore = (*MockContactStore)(nil)

// List implements the ContactStore interface
func (m *MockContactStore) List(ctx context.Context) ([]*domain.Contact, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Contact, 0, len(m.Contacts))
	for _, c := range m.Contacts {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

// Count implements the ContactStore interface
func (m *MockContactStore) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Contacts), nil
}

// GetByID implements the ContactStore interface
func (m *MockContactStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.indexOf(id); i >= 0 {
		cp := *m.Contacts[i]
		return &cp, nil
	}
	return nil, store.ErrContactNotFound
}

// Create implements the ContactStore interface
func (m *MockContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, contact)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.indexOf(contact.ID) >= 0 {
		return store.ErrDuplicate
	}
	cp := *contact
	m.Contacts = append(m.Contacts, &cp)
	return nil
}

// CreateUnique implements the ContactStore interface
func (m *MockContactStore) CreateUnique(ctx context.Context, contact *domain.Contact) error {
	m.mu.Lock()
	m.CreateUniqueCalls++
	m.mu.Unlock()

	if m.CreateUniqueFn != nil {
		return m.CreateUniqueFn(ctx, contact)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.Contacts {
		if c.Name == contact.Name {
			return store.ErrNameExists
		}
	}
	if m.indexOf(contact.ID) >= 0 {
		return store.ErrDuplicate
	}
	cp := *contact
	m.Contacts = append(m.Contacts, &cp)
	return nil
}

// Update implements the ContactStore interface
func (m *MockContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, contact)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(contact.ID)
	if i < 0 {
		return store.ErrContactNotFound
	}
	cp := *contact
	m.Contacts[i] = &cp
	return nil
}

// Delete implements the ContactStore interface
func (m *MockContactStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.DeleteCalls++
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(id)
	if i < 0 {
		return store.ErrContactNotFound
	}
	m.Contacts = append(m.Contacts[:i], m.Contacts[i+1:]...)
	return nil
}

// Ping implements the ContactStore interface
func (m *MockContactStore) Ping(ctx context.Context) error {
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return nil
}

func (m *MockContactStore) indexOf(id uuid.UUID) int {
	for i, c := range m.Contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}
