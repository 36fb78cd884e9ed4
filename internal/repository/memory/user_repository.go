package memory

import (
	"context"
	"sync"
	"time"

	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/domain/repository"

	"github.com/google/uuid"
)

// Ensure UserRepository implements the interface.
var _ repository.UserRepository = (*UserRepository)(nil)

type UserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byEmail: make(map[string]*entity.User),
	}
}

func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	if user.Phone != nil {
		phone := *user.Phone
		stored.Phone = &phone
	}
	r.byEmail[user.Email] = &stored
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	out := *user
	return &out, nil
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.byEmail {
		if user.ID == id {
			out := *user
			return &out, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) UpdateProfile(_ context.Context, email string, update entity.ProfileUpdate) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Phone != nil {
		if *update.Phone == "" {
			user.Phone = nil
		} else {
			phone := *update.Phone
			user.Phone = &phone
		}
	}
	if update.Name != nil || update.Phone != nil {
		user.UpdatedAt = time.Now()
	}

	out := *user
	return &out, nil
}

// Count returns the number of stored users.
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byEmail)
}
