// Package memory holds the volatile storage backends. All state lives in
// process memory and is lost on restart; each store guards its own map with
// an RWMutex so unrelated operations never serialize on a shared lock.
package memory

import (
	"net/http"
	"sync"

	"github.com/itchan-dev/authd/internal/domain"
	internal_errors "github.com/itchan-dev/authd/internal/errors"
)

// UserStore is the account directory keyed by email.
type UserStore struct {
	mu    sync.RWMutex
	users map[domain.Email]domain.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[domain.Email]domain.User)}
}

// AddUser inserts a new account. The existence check and the insert happen
// under one write lock, so concurrent signups with the same email cannot
// both succeed.
func (s *UserStore) AddUser(user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return internal_errors.New("User already exists", http.StatusConflict)
	}
	s.users[user.Email] = user
	return nil
}

func (s *UserStore) GetUser(email domain.Email) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return domain.User{}, internal_errors.New("User not found", http.StatusNotFound)
	}
	return user, nil
}

// ValidateUser checks the credential pair. Lookup failure takes precedence
// over a password mismatch.
func (s *UserStore) ValidateUser(email domain.Email, password domain.Password) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return internal_errors.New("User not found", http.StatusNotFound)
	}
	if user.Password != password {
		return internal_errors.New("Invalid credentials", http.StatusUnauthorized)
	}
	return nil
}
