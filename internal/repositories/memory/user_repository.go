package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/fin-api/fin_api_app/internal/apperrors"
	"github.com/fin-api/fin_api_app/internal/core/domain"
	portsrepo "github.com/fin-api/fin_api_app/internal/core/ports/repositories"
)

// MemoryUserRepository keeps users in a mutex-guarded map. Intended for tests
// and for running the server without a database.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func newMemoryUserRepository() portsrepo.UserRepositoryFacade {
	return &MemoryUserRepository{
		users: make(map[string]domain.User),
	}
}

var _ portsrepo.UserRepositoryFacade = (*MemoryUserRepository)(nil)

func (r *MemoryUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username && existing.DeletedAt == nil {
			return fmt.Errorf("username %s already taken: %w", user.Username, apperrors.ErrDuplicate)
		}
	}
	r.users[user.UserID] = user
	return nil
}

func (r *MemoryUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok || user.DeletedAt != nil {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (r *MemoryUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username && user.DeletedAt == nil {
			u := user
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *MemoryUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	active := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		if user.DeletedAt == nil {
			active = append(active, user)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})

	if offset >= len(active) {
		return []domain.User{}, nil
	}
	end := offset + limit
	if end > len(active) {
		end = len(active)
	}
	return active[offset:end], nil
}

func (r *MemoryUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[user.UserID]
	if !ok || existing.DeletedAt != nil {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	r.users[user.UserID] = user
	return nil
}

func (r *MemoryUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok || user.DeletedAt != nil {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	user.DeletedAt = &deletedAt
	user.LastUpdatedAt = deletedAt
	user.LastUpdatedBy = deletedBy
	r.users[userID] = user
	return nil
}
