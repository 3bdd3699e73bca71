package admins

import (
	"context"
	"fmt"
	"sync"
	"time"

	"Backend-Scholarship-Finder/src/apperrors"
	"Backend-Scholarship-Finder/src/models"
)

// Store persists admin accounts. Lookups return apperrors.ErrNotFound
// when nothing matches.
type Store interface {
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	FindByID(ctx context.Context, id string) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
	UpdatePassword(ctx context.Context, id, hash string) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

// MemoryStore keeps admins in process, for the memory driver and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]models.Admin
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: map[string]models.Admin{}}
}

func (m *MemoryStore) FindByUsername(_ context.Context, username string) (*models.Admin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.items {
		if a.Username == username {
			a := a
			return &a, nil
		}
	}
	return nil, fmt.Errorf("admin %q: %w", username, apperrors.ErrNotFound)
}

func (m *MemoryStore) FindByID(_ context.Context, id string) (*models.Admin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("admin %s: %w", id, apperrors.ErrNotFound)
	}
	return &a, nil
}

func (m *MemoryStore) Create(_ context.Context, admin *models.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.items {
		if a.Username == admin.Username {
			return fmt.Errorf("admin %q already exists", admin.Username)
		}
	}
	m.items[admin.ID] = *admin
	return nil
}

func (m *MemoryStore) UpdatePassword(_ context.Context, id, hash string) error {
	return m.update(id, func(a *models.Admin) { a.Password = hash })
}

func (m *MemoryStore) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	return m.update(id, func(a *models.Admin) { a.LastLogin = &at })
}

func (m *MemoryStore) update(id string, fn func(*models.Admin)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.items[id]
	if !ok {
		return fmt.Errorf("admin %s: %w", id, apperrors.ErrNotFound)
	}
	fn(&a)
	m.items[id] = a
	return nil
}
