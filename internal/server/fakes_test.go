package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"contacts-be/internal/entities"
	"contacts-be/internal/repository"
)

type memoryUsers struct {
	mu    sync.Mutex
	users []*entities.User
}

func (m *memoryUsers) Create(_ context.Context, name, email, passwordHash string) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return nil, &repository.DuplicateError{Field: "email"}
		}
	}
	user := &entities.User{ID: uuid.NewString(), Name: name, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	m.users = append(m.users, user)
	return user, nil
}

func (m *memoryUsers) find(match func(*entities.User) bool) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if match(u) {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	return m.find(func(u *entities.User) bool { return u.Email == email })
}

func (m *memoryUsers) FindByID(_ context.Context, id string) (*entities.User, error) {
	return m.find(func(u *entities.User) bool { return u.ID == id })
}

type memoryContacts struct {
	mu       sync.Mutex
	contacts []entities.Contact
}

func (m *memoryContacts) phoneTaken(phone, exceptID string) bool {
	for _, c := range m.contacts {
		if c.PhoneNumber == phone && c.ID != exceptID {
			return true
		}
	}
	return false
}

func (m *memoryContacts) Create(_ context.Context, contact *entities.Contact) (*entities.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.phoneTaken(contact.PhoneNumber, "") {
		return nil, &repository.DuplicateError{Field: "phoneNumber"}
	}
	stored := *contact
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now().UTC()
	stored.UpdatedAt = stored.CreatedAt
	m.contacts = append(m.contacts, stored)
	return &stored, nil
}

func (m *memoryContacts) List(context.Context) ([]*entities.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entities.Contact, 0, len(m.contacts))
	for i := range m.contacts {
		c := m.contacts[i]
		out = append(out, &c)
	}
	return out, nil
}

func (m *memoryContacts) Update(_ context.Context, id string, changes entities.ContactChanges) (*entities.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.contacts {
		c := &m.contacts[i]
		if c.ID != id {
			continue
		}
		if changes.PhoneNumber != nil && m.phoneTaken(*changes.PhoneNumber, id) {
			return nil, &repository.DuplicateError{Field: "phoneNumber"}
		}
		for dst, src := range map[*string]*string{
			&c.FirstName:   changes.FirstName,
			&c.LastName:    changes.LastName,
			&c.Email:       changes.Email,
			&c.PhoneNumber: changes.PhoneNumber,
			&c.Company:     changes.Company,
			&c.JobTitle:    changes.JobTitle,
		} {
			if src != nil {
				*dst = *src
			}
		}
		c.UpdatedAt = time.Now().UTC()
		updated := *c
		return &updated, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memoryContacts) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.contacts {
		if c.ID == id {
			m.contacts = append(m.contacts[:i], m.contacts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(context.Context) error {
	return p.err
}

var errPingFailed = errors.New("connection refused")
