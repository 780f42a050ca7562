package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/phonebook-api/internal/domain"
)

// MockContactService implements service.ContactService for handler tests.
// Unset function fields return zero values.
type MockContactService struct {
	ListContactsFn  func(ctx context.Context) ([]*domain.Contact, error)
	CountContactsFn func(ctx context.Context) (int, error)
	GetContactFn    func(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	CreateContactFn func(ctx context.Context, name, number string) (*domain.Contact, error)
	UpdateContactFn func(ctx context.Context, id uuid.UUID, name, number string) (*domain.Contact, error)
	DeleteContactFn func(ctx context.Context, id uuid.UUID) error
	PingFn          func(ctx context.Context) error
}

// ListContacts implements the ContactService interface
func (m *MockContactService) ListContacts(ctx context.Context) ([]*domain.Contact, error) {
	if m.ListContactsFn != nil {
		return m.ListContactsFn(ctx)
	}
	return []*domain.Contact{}, nil
}

// CountContacts implements the ContactService interface
func (m *MockContactService) CountContacts(ctx context.Context) (int, error) {
	if m.CountContactsFn != nil {
		return m.CountContactsFn(ctx)
	}
	return 0, nil
}

// GetContact implements the ContactService interface
func (m *MockContactService) GetContact(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	if m.GetContactFn != nil {
		return m.GetContactFn(ctx, id)
	}
	return nil, nil
}

// CreateContact implements the ContactService interface
func (m *MockContactService) CreateContact(ctx context.Context, name, number string) (*domain.Contact, error) {
	if m.CreateContactFn != nil {
		return m.CreateContactFn(ctx, name, number)
	}
	return nil, nil
}

// UpdateContact implements the ContactService interface
func (m *MockContactService) UpdateContact(
	ctx context.Context,
	id uuid.UUID,
	name, number string,
) (*domain.Contact, error) {
	if m.UpdateContactFn != nil {
		return m.UpdateContactFn(ctx, id, name, number)
	}
	return nil, nil
}

// DeleteContact implements the ContactService interface
func (m *MockContactService) DeleteContact(ctx context.Context, id uuid.UUID) error {
	if m.DeleteContactFn != nil {
		return m.DeleteContactFn(ctx, id)
	}
	return nil
}

// Ping implements the ContactService interface
func (m *MockContactService) Ping(ctx context.Context) error {
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return nil
}
