package store

import (
	"context"
	"sync"

	"github.com/volunteerbridge/matching-client/internal/core/domain"
)

// MemoryTokenStore keeps the session in process memory only. Used by tests
// and by callers that do not want sessions surviving a restart.
type MemoryTokenStore struct {
	mu   sync.Mutex
	sess domain.Session
	set  bool
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Save(_ context.Context, sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = sess
	s.set = true
	return nil
}

func (s *MemoryTokenStore) Load(_ context.Context) (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return domain.Session{}, false
	}
	return s.sess, true
}

func (s *MemoryTokenStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = domain.Session{}
	s.set = false
	return nil
}
