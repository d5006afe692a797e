// Package account keeps the user store: a single users.json document mapping
// username to password. Passwords are stored and compared as plain text.
package account

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"

	"github.com/td0m/todo/pkg/persist"
)

const FileName = "users.json"

var (
	ErrPasswordMismatch   = errors.New("passwords don't match")
	ErrInvalidUsername    = errors.New("username must not contain a path separator")
	ErrUserExists         = errors.New("user exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Store struct {
	mu    sync.Mutex
	users map[string]string
	doc   *persist.JSON
}

// Open loads users.json from dir. A missing file is an empty store.
func Open(dir string) (*Store, error) {
	s := &Store{
		users: map[string]string{},
		doc:   persist.InJSON(filepath.Join(dir, FileName), persist.Users),
	}
	if err := s.doc.Load(&s.users); err != nil {
		return nil, err
	}
	return s, nil
}

// Register adds a new account and rewrites the whole document.
func (s *Store) Register(username, password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}
	if strings.ContainsAny(username, `/\`) {
		return ErrInvalidUsername
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.users[username]; found {
		return ErrUserExists
	}
	s.users[username] = password
	if err := s.doc.Save(s.users); err != nil {
		delete(s.users, username)
		return err
	}
	return nil
}

// Authenticate checks the password against the stored one, case-sensitively.
func (s *Store) Authenticate(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, found := s.users[username]
	if !found || stored != password {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *Store) Exists(username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, found := s.users[username]
	return found
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}
