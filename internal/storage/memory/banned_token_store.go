package memory

import "sync"

// BannedTokenStore records revoked session tokens. Membership is permanent
// for the lifetime of the process; there is no expiry here, the redis
// backend handles that.
type BannedTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewBannedTokenStore() *BannedTokenStore {
	return &BannedTokenStore{tokens: make(map[string]struct{})}
}

// Add is idempotent: banning an already-banned token succeeds silently.
func (s *BannedTokenStore) Add(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token] = struct{}{}
	return nil
}

func (s *BannedTokenStore) Contains(token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.tokens[token]
	return ok, nil
}
