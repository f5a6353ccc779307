package memory

import (
	"net/http"
	"sync"

	"github.com/itchan-dev/authd/internal/domain"
	internal_errors "github.com/itchan-dev/authd/internal/errors"
)

type challenge struct {
	loginAttemptID domain.LoginAttemptID
	code           domain.TwoFACode
}

// TwoFACodeStore keeps at most one pending challenge per email.
type TwoFACodeStore struct {
	mu    sync.RWMutex
	codes map[domain.Email]challenge
}

func NewTwoFACodeStore() *TwoFACodeStore {
	return &TwoFACodeStore{codes: make(map[domain.Email]challenge)}
}

// AddCode stores the challenge, unconditionally replacing any previous one
// for that email. A stale challenge from an earlier login attempt becomes
// unverifiable.
func (s *TwoFACodeStore) AddCode(email domain.Email, id domain.LoginAttemptID, code domain.TwoFACode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.codes[email] = challenge{loginAttemptID: id, code: code}
	return nil
}

func (s *TwoFACodeStore) GetCode(email domain.Email) (domain.LoginAttemptID, domain.TwoFACode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.codes[email]
	if !ok {
		return "", "", internal_errors.New("Challenge not found", http.StatusNotFound)
	}
	return c.loginAttemptID, c.code, nil
}

func (s *TwoFACodeStore) RemoveCode(email domain.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.codes[email]; !ok {
		return internal_errors.New("Challenge not found", http.StatusNotFound)
	}
	delete(s.codes, email)
	return nil
}
