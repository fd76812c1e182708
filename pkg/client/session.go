package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

const (
	tokenFile = "token"
	adminFile = "admin.json"
)

// SessionStore persists the session across invocations as two files in
// a state directory: the bearer token as a raw string and the admin
// identity as JSON.
type SessionStore struct {
	dir string
}

// NewSessionStore uses dir as the state directory. An empty dir falls
// back to a per-user default under the OS config directory.
func NewSessionStore(dir string) *SessionStore {
	if strings.TrimSpace(dir) == "" {
		if base, err := os.UserConfigDir(); err == nil {
			dir = filepath.Join(base, "findelmundo")
		} else {
			dir = ".findelmundo"
		}
	}
	return &SessionStore{dir: dir}
}

// Save writes both session files.
func (s *SessionStore) Save(token string, admin Admin) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(admin)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, adminFile), data, 0o600)
}

// Restore reads both files back. It returns (nil, nil) when no full
// session exists: a missing or unparseable half never yields a
// partially populated session.
func (s *SessionStore) Restore() (*Session, error) {
	rawToken, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	token := strings.TrimSpace(string(rawToken))
	if token == "" {
		return nil, nil
	}

	rawAdmin, err := os.ReadFile(filepath.Join(s.dir, adminFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var admin Admin
	if err := json.Unmarshal(rawAdmin, &admin); err != nil {
		return nil, nil
	}

	return &Session{Token: token, Admin: admin}, nil
}

// Token reads the current bearer token, or "" when signed out.
func (s *SessionStore) Token() string {
	sess, err := s.Restore()
	if err != nil || sess == nil {
		return ""
	}
	return sess.Token
}

// Clear removes both session files.
func (s *SessionStore) Clear() error {
	var firstErr error
	for _, name := range []string{tokenFile, adminFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
