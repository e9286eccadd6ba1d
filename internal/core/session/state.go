// Package session holds the process-wide session state: the current bearer
// token and user identity. One writer (the session manager), any number of
// concurrent readers (transport, role router, screens). Readers always see a
// committed value, never a session torn mid-update.
package session

import (
	"sync"

	"github.com/volunteerbridge/matching-client/internal/core/domain"
)

// Event describes a session state change delivered to subscribers.
type Event int

const (
	// EventAuthenticated fires when a session is installed or refreshed.
	EventAuthenticated Event = iota
	// EventCleared fires when the session is torn down (logout, 401, failed
	// bootstrap).
	EventCleared
)

// State is the single owned session object.
type State struct {
	mu      sync.RWMutex
	current domain.Session
	active  bool
	subs    []func(Event)
}

func NewState() *State {
	return &State{}
}

// Current returns a copy of the session and whether one is installed.
func (s *State) Current() (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.active
}

// Token returns the current bearer token, or "" when anonymous.
func (s *State) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.active {
		return ""
	}
	return s.current.Token
}

// Authenticated is derived from the state itself, never cached separately.
func (s *State) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Subscribe registers fn for session events. Subscribers are invoked outside
// the state lock and must tolerate events arriving after their originating
// context is gone.
func (s *State) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Set installs sess as the committed session. Only the session manager calls
// this.
func (s *State) Set(sess domain.Session) {
	s.mu.Lock()
	s.current = sess
	s.active = true
	subs := append(([]func(Event))(nil), s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(EventAuthenticated)
	}
}

// Clear drops the session. Idempotent: clearing an anonymous state emits no
// event, which keeps repeated 401 teardowns quiet.
func (s *State) Clear() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.current = domain.Session{}
	s.active = false
	subs := append(([]func(Event))(nil), s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(EventCleared)
	}
}
