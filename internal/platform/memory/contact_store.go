// Package memory provides an in-process implementation of store.ContactStore.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/phonebook-api/internal/domain"
	"github.com/phrazzld/phonebook-api/internal/platform/logger"
	"github.com/phrazzld/phonebook-api/internal/store"
)

// ContactStore keeps contacts in insertion order. Reads and writes are
// guarded by a single RWMutex; returned contacts are copies.
type ContactStore struct {
	mu       sync.RWMutex
	index    map[uuid.UUID]int
	contacts []domain.Contact
	logger   *slog.Logger
}

var _ store.ContactStore = (*ContactStore)(nil)

// NewContactStore creates a store holding the given contacts in order.
// Contacts without an ID get a random one.
func NewContactStore(logger *slog.Logger, seed ...domain.Contact) *ContactStore {
	if logger == nil {
		logger = slog.Default()
	}
	s := &ContactStore{
		index:    make(map[uuid.UUID]int, len(seed)),
		contacts: make([]domain.Contact, 0, len(seed)),
		logger:   logger.With(slog.String("component", "memory_contact_store")),
	}
	for _, c := range seed {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		if _, dup := s.index[c.ID]; dup {
			continue
		}
		s.index[c.ID] = len(s.contacts)
		s.contacts = append(s.contacts, c)
	}
	return s
}

// List implements store.ContactStore.
func (s *ContactStore) List(_ context.Context) ([]*domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Contact, 0, len(s.contacts))
	for i := range s.contacts {
		c := s.contacts[i]
		out = append(out, &c)
	}
	return out, nil
}

// Count implements store.ContactStore.
func (s *ContactStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contacts), nil
}

// GetByID implements store.ContactStore.
func (s *ContactStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, store.ErrContactNotFound
	}
	c := s.contacts[i]
	return &c, nil
}

// Create implements store.ContactStore.
func (s *ContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	if contact.ID == uuid.Nil {
		return fmt.Errorf("%w: contact ID must be set", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertLocked(ctx, contact)
}

// CreateUnique implements store.ContactStore. The name lookup and the insert
// happen under the same write lock.
func (s *ContactStore) CreateUnique(ctx context.Context, contact *domain.Contact) error {
	if contact.ID == uuid.Nil {
		return fmt.Errorf("%w: contact ID must be set", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	taken := slices.ContainsFunc(s.contacts, func(c domain.Contact) bool {
		return c.Name == contact.Name
	})
	if taken {
		return store.NewStoreError("contact", "create", "name already taken", store.ErrNameExists)
	}
	return s.insertLocked(ctx, contact)
}

// insertLocked appends contact. s.mu must be held for writing.
func (s *ContactStore) insertLocked(ctx context.Context, contact *domain.Contact) error {
	if _, exists := s.index[contact.ID]; exists {
		return fmt.Errorf("%w: contact %s", store.ErrDuplicate, contact.ID)
	}
	s.index[contact.ID] = len(s.contacts)
	s.contacts = append(s.contacts, *contact)

	logger.FromContextOrDefault(ctx, s.logger).Debug("contact created",
		slog.String("contact_id", contact.ID.String()))
	return nil
}

// Update implements store.ContactStore.
func (s *ContactStore) Update(_ context.Context, contact *domain.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[contact.ID]
	if !ok {
		return store.ErrContactNotFound
	}
	s.contacts[i].Name = contact.Name
	s.contacts[i].Number = contact.Number
	return nil
}

// Delete implements store.ContactStore.
func (s *ContactStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return store.ErrContactNotFound
	}
	s.contacts = slices.Delete(s.contacts, i, i+1)
	delete(s.index, id)
	for j := i; j < len(s.contacts); j++ {
		s.index[s.contacts[j].ID] = j
	}
	return nil
}

// Ping implements store.ContactStore. The in-memory store is always available.
func (s *ContactStore) Ping(_ context.Context) error {
	return nil
}
