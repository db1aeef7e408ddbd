package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNoSession is returned when nobody is logged in.
var ErrNoSession = errors.New("not logged in")

// Session is the persisted CLI login state.
type Session struct {
	Email      string    `yaml:"email"`
	LoggedInAt time.Time `yaml:"loggedInAt"`
}

// SessionPath returns the session file location.
func SessionPath() string {
	return filepath.Join(GetConfigDir(), SessionFile)
}

// SaveSession writes the session file, replacing any previous login.
func SaveSession(s Session) error {
	path := SessionPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// LoadSession returns the current session or ErrNoSession.
func LoadSession() (Session, error) {
	data, err := os.ReadFile(SessionPath())
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, ErrNoSession
		}
		return Session{}, fmt.Errorf("read session: %w", err)
	}

	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}
	if strings.TrimSpace(s.Email) == "" {
		return Session{}, ErrNoSession
	}
	return s, nil
}

// ClearSession removes the session file. Clearing without a session is not an error.
func ClearSession() error {
	if err := os.Remove(SessionPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
