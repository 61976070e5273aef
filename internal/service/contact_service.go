package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"contacts-be/internal/cache"
	"contacts-be/internal/entities"
	"contacts-be/internal/models"
	"contacts-be/internal/repository"
)

const (
	contactListKey = "contacts:all"
	contactListTTL = 30 * time.Second
)

// ContactService defines the interface for contact business logic
type ContactService interface {
	ListContacts(ctx context.Context) ([]*entities.Contact, error)
	CreateContact(ctx context.Context, req *models.CreateContactRequest) (*entities.Contact, error)
	UpdateContact(ctx context.Context, id string, req *models.UpdateContactRequest) (*entities.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

type contactService struct {
	repo  repository.ContactRepository
	cache cache.Cache
}

// NewContactService creates a new contact service. cacheClient may be nil.
func NewContactService(repo repository.ContactRepository, cacheClient cache.Cache) ContactService {
	svc := &contactService{repo: repo}
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

// ListContacts returns all contacts, from cache when a fresh copy exists
func (s *contactService) ListContacts(ctx context.Context) ([]*entities.Contact, error) {
	logger := zerolog.Ctx(ctx)

	if s.cache != nil {
		var cached []*entities.Contact
		err := s.cache.GetJSON(ctx, contactListKey, &cached)
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
			logger.Warn().Err(err).Msg("contact list cache read failed")
		}
	}

	contacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, contactListKey, contacts, contactListTTL); err != nil {
			logger.Warn().Err(err).Msg("contact list cache write failed")
		}
	}

	return contacts, nil
}

// CreateContact stores a new contact. Phone number uniqueness is enforced by
// the unique index, not by a prior lookup.
func (s *contactService) CreateContact(ctx context.Context, req *models.CreateContactRequest) (*entities.Contact, error) {
	contact, err := s.repo.Create(ctx, &entities.Contact{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Company:     req.Company,
		JobTitle:    req.JobTitle,
	})
	if repository.IsDuplicate(err, "phoneNumber") {
		return nil, ErrPhoneTaken
	}
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return contact, nil
}

// UpdateContact replaces the fields present in req and returns the stored record
func (s *contactService) UpdateContact(ctx context.Context, id string, req *models.UpdateContactRequest) (*entities.Contact, error) {
	contactID, err := parseContactID(id)
	if err != nil {
		return nil, err
	}

	contact, err := s.repo.Update(ctx, contactID, entities.ContactChanges{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Company:     req.Company,
		JobTitle:    req.JobTitle,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrContactNotFound
	}
	if repository.IsDuplicate(err, "phoneNumber") {
		return nil, ErrPhoneTaken
	}
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return contact, nil
}

// DeleteContact removes a contact. Malformed ids are rejected before any
// storage access.
func (s *contactService) DeleteContact(ctx context.Context, id string) error {
	contactID, err := parseContactID(id)
	if err != nil {
		return err
	}

	err = s.repo.Delete(ctx, contactID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrContactNotFound
	}
	if err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *contactService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, contactListKey); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("contact list cache invalidation failed")
	}
}

// parseContactID validates id as a UUID and returns its canonical form.
func parseContactID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", ErrInvalidContactID
	}
	return parsed.String(), nil
}
