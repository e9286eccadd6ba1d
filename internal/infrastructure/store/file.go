// Package store provides TokenStore backends: a file store for interactive
// use, an in-memory store for tests and ephemeral processes, and a Redis
// store for headless deployments that share a session cache.
package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/volunteerbridge/matching-client/internal/core/domain"
)

// FileTokenStore persists the session as a single JSON file. Writes go to a
// temp file in the same directory followed by a rename, so a concurrent Load
// sees either the previous record or the new one, never a partial write.
type FileTokenStore struct {
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

func NewFileTokenStore(path string, log zerolog.Logger) *FileTokenStore {
	return &FileTokenStore{path: path, log: log}
}

func (s *FileTokenStore) Save(_ context.Context, sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Load reports absent for anything it cannot read or parse: a broken session
// cache means logged out, never a crash.
func (s *FileTokenStore) Load(_ context.Context) (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("session file unreadable, treating as logged out")
		}
		return domain.Session{}, false
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("session file corrupt, treating as logged out")
		return domain.Session{}, false
	}
	if sess.Token == "" || sess.User.ID == 0 {
		return domain.Session{}, false
	}
	return sess, true
}

func (s *FileTokenStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
