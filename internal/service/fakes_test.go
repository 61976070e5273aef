package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"contacts-be/internal/cache"
	"contacts-be/internal/entities"
	"contacts-be/internal/repository"
)

// memoryUserRepo mimics the users table, including its unique email index.
type memoryUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*entities.User
	err     error
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byEmail: make(map[string]*entities.User)}
}

func (m *memoryUserRepo) Create(ctx context.Context, name, email, passwordHash string) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if _, exists := m.byEmail[email]; exists {
		return nil, &repository.DuplicateError{Field: "email"}
	}
	now := time.Now()
	user := &entities.User{ID: uuid.NewString(), Name: name, Email: email, PasswordHash: passwordHash, CreatedAt: now, UpdatedAt: now}
	m.byEmail[email] = user
	return user, nil
}

func (m *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (m *memoryUserRepo) FindByID(ctx context.Context, id string) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, user := range m.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memoryUserRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byEmail)
}

// memoryContactRepo mimics the contacts table, including its unique phone index.
type memoryContactRepo struct {
	mu       sync.Mutex
	contacts []*entities.Contact
	calls    int
	err      error
}

func (m *memoryContactRepo) phoneTaken(phone, exceptID string) bool {
	for _, c := range m.contacts {
		if c.PhoneNumber == phone && c.ID != exceptID {
			return true
		}
	}
	return false
}

func (m *memoryContactRepo) Create(ctx context.Context, contact *entities.Contact) (*entities.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if m.phoneTaken(contact.PhoneNumber, "") {
		return nil, &repository.DuplicateError{Field: "phoneNumber"}
	}
	stored := *contact
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	m.contacts = append(m.contacts, &stored)
	copied := stored
	return &copied, nil
}

func (m *memoryContactRepo) List(ctx context.Context) ([]*entities.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*entities.Contact, 0, len(m.contacts))
	for _, c := range m.contacts {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (m *memoryContactRepo) Update(ctx context.Context, id string, changes entities.ContactChanges) (*entities.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	for _, c := range m.contacts {
		if c.ID != id {
			continue
		}
		if changes.PhoneNumber != nil && m.phoneTaken(*changes.PhoneNumber, id) {
			return nil, &repository.DuplicateError{Field: "phoneNumber"}
		}
		apply(&c.FirstName, changes.FirstName)
		apply(&c.LastName, changes.LastName)
		apply(&c.Email, changes.Email)
		apply(&c.PhoneNumber, changes.PhoneNumber)
		apply(&c.Company, changes.Company)
		apply(&c.JobTitle, changes.JobTitle)
		c.UpdatedAt = time.Now()
		copied := *c
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memoryContactRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return m.err
	}
	for i, c := range m.contacts {
		if c.ID == id {
			m.contacts = append(m.contacts[:i], m.contacts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func apply(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// memoryCache is a Cache backed by a map of JSON blobs.
type memoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	getErr  error
	deletes int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (m *memoryCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return m.getErr
	}
	data, ok := m.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (m *memoryCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = data
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memoryCache) Close() error { return nil }

var errDBDown = errors.New("db down")
