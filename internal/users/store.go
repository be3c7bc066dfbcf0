package users

import (
	"context"
	"sync"
)

// Store is the storage seam for the directory. Implementations must make Add
// atomic with respect to the email uniqueness check.
type Store interface {
	Add(ctx context.Context, user User) error
	FindByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, user User) error
	List(ctx context.Context) ([]User, error)
}

// MemoryStore keeps users for the lifetime of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	users   []User
	byEmail map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byEmail: make(map[string]int)}
}

func (s *MemoryStore) Add(_ context.Context, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[user.Email]; ok {
		return ErrAlreadyExists
	}
	s.byEmail[user.Email] = len(s.users)
	s.users = append(s.users, user)
	return nil
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return s.users[idx], nil
}

func (s *MemoryStore) Update(_ context.Context, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.byEmail[user.Email]
	if !ok {
		return ErrNotFound
	}
	s.users[idx] = user
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]User, len(s.users))
	copy(out, s.users)
	return out, nil
}
