package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/phonebook-api/internal/domain"
	"github.com/phrazzld/phonebook-api/internal/platform/logger"
	"github.com/phrazzld/phonebook-api/internal/store"
)

// ContactService provides the phonebook operations exposed over HTTP.
type ContactService interface {
	// ListContacts returns every contact in store order.
	ListContacts(ctx context.Context) ([]*domain.Contact, error)

	// CountContacts returns the number of stored contacts.
	CountContacts(ctx context.Context) (int, error)

	// GetContact retrieves a single contact.
	// Returns ErrContactNotFound if it does not exist.
	GetContact(ctx context.Context, id uuid.UUID) (*domain.Contact, error)

	// CreateContact validates and stores a new contact with a fresh ID.
	// Returns ErrNameExists when the unique-name policy is on and the name is taken.
	CreateContact(ctx context.Context, name, number string) (*domain.Contact, error)

	// UpdateContact replaces the name and number of an existing contact.
	// Returns ErrContactNotFound if it does not exist.
	UpdateContact(ctx context.Context, id uuid.UUID, name, number string) (*domain.Contact, error)

	// DeleteContact removes a contact. Deleting an absent contact succeeds.
	DeleteContact(ctx context.Context, id uuid.UUID) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

// Options configures policies of the contact service.
type Options struct {
	// UniqueNames rejects creation of a contact whose name is already present.
	UniqueNames bool
}

type contactServiceImpl struct {
	contacts store.ContactStore
	opts     Options
	logger   *slog.Logger
}

// NewContactService creates a new ContactService.
// It returns an error if contacts is nil.
func NewContactService(
	contacts store.ContactStore,
	opts Options,
	logger *slog.Logger,
) (ContactService, error) {
	if contacts == nil {
		return nil, &ContactServiceError{
			Operation: "create_service",
			Message:   "contact store cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &contactServiceImpl{
		contacts: contacts,
		opts:     opts,
		logger:   logger.With(slog.String("component", "contact_service")),
	}, nil
}

// ListContacts implements ContactService.
func (s *contactServiceImpl) ListContacts(ctx context.Context) ([]*domain.Contact, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, NewContactServiceError("list_contacts", "failed to list contacts", err)
	}
	return contacts, nil
}

// CountContacts implements ContactService.
func (s *contactServiceImpl) CountContacts(ctx context.Context) (int, error) {
	n, err := s.contacts.Count(ctx)
	if err != nil {
		return 0, NewContactServiceError("count_contacts", "failed to count contacts", err)
	}
	return n, nil
}

// GetContact implements ContactService.
func (s *contactServiceImpl) GetContact(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, NewContactServiceError("get_contact", "failed to retrieve contact", err)
	}
	return contact, nil
}

// CreateContact implements ContactService.
func (s *contactServiceImpl) CreateContact(
	ctx context.Context,
	name, number string,
) (*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	contact, err := domain.NewContact(name, number)
	if err != nil {
		log.Debug("rejected contact", slog.String("reason", err.Error()))
		return nil, err
	}

	create := s.contacts.Create
	if s.opts.UniqueNames {
		create = s.contacts.CreateUnique
	}
	if err := create(ctx, contact); err != nil {
		if store.IsDuplicateError(err) {
			log.Debug("duplicate contact rejected", slog.String("reason", err.Error()))
		}
		return nil, NewContactServiceError("create_contact", "failed to save contact", err)
	}

	log.Info("contact created", slog.String("contact_id", contact.ID.String()))
	return contact, nil
}

// UpdateContact implements ContactService.
// The name-uniqueness policy is not applied to updates.
func (s *contactServiceImpl) UpdateContact(
	ctx context.Context,
	id uuid.UUID,
	name, number string,
) (*domain.Contact, error) {
	contact := &domain.Contact{
		ID:     id,
		Name:   strings.TrimSpace(name),
		Number: strings.TrimSpace(number),
	}
	if err := contact.Validate(); err != nil {
		return nil, err
	}

	if err := s.contacts.Update(ctx, contact); err != nil {
		return nil, NewContactServiceError("update_contact", "failed to update contact", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).
		Info("contact updated", slog.String("contact_id", id.String()))
	return contact, nil
}

// DeleteContact implements ContactService.
func (s *contactServiceImpl) DeleteContact(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.contacts.Delete(ctx, id)
	if store.IsNotFoundError(err) {
		log.Debug("delete of absent contact ignored", slog.String("contact_id", id.String()))
		return nil
	}
	if err != nil {
		return NewContactServiceError("delete_contact", "failed to delete contact", err)
	}

	log.Info("contact deleted", slog.String("contact_id", id.String()))
	return nil
}

// Ping implements ContactService.
func (s *contactServiceImpl) Ping(ctx context.Context) error {
	if err := s.contacts.Ping(ctx); err != nil {
		return fmt.Errorf("contact store unreachable: %w", err)
	}
	return nil
}
