package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Session is the persisted signed-in flag. Its presence is all that matters;
// the fields are informational.
type Session struct {
	Account    string    `toml:"account"`
	SignedInAt time.Time `toml:"signed_in_at"`
}

// SessionStore keeps the session flag in a TOML file.
type SessionStore struct {
	path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

func (s *SessionStore) Path() string {
	return s.path
}

// Load returns the stored session, or nil when none exists.
func (s *SessionStore) Load() (*Session, error) {
	var session Session
	if _, err := toml.DecodeFile(s.path, &session); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session %s: %w", s.path, err)
	}
	return &session, nil
}

// SignedIn reports whether a readable session exists. Unreadable files
// count as signed out.
func (s *SessionStore) SignedIn() bool {
	session, err := s.Load()
	if err != nil {
		GetInternalLogger().Warn("Ignoring unreadable session", "path", s.path, "error", err)
		return false
	}
	return session != nil
}

// Save writes the session atomically.
func (s *SessionStore) Save(session Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*")
	if err != nil {
		return fmt.Errorf("create session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(session); err != nil {
		tmp.Close()
		return fmt.Errorf("encode session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Clear removes the session. Clearing a missing session is not an error.
func (s *SessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
