package task

import (
	"path/filepath"
	"sync"

	"github.com/td0m/todo/pkg/persist"
)

// Store keeps one JSON array per user. Every mutation reloads the whole
// array, changes it and writes it back.
type Store struct {
	dir string
	mu  sync.Mutex
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// File returns the path of a user's task file
func (s *Store) File(user string) string {
	return filepath.Join(s.dir, user+"_tasks.json")
}

func (s *Store) doc(user string) *persist.JSON {
	return persist.InJSON(s.File(user), persist.Tasks)
}

// List returns the user's tasks in stored order. A user without a file has
// no tasks.
func (s *Store) List(user string) (Tasks, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(user)
}

func (s *Store) Create(user, title, desc, due string) error {
	return s.modify(user, func(ts Tasks) (Tasks, error) {
		return ts.Append(title, desc, due), nil
	})
}

func (s *Store) Update(user string, i int, title, desc, due string) error {
	return s.modify(user, func(ts Tasks) (Tasks, error) {
		return ts, ts.Replace(i, title, desc, due)
	})
}

func (s *Store) Delete(user string, i int) error {
	return s.modify(user, func(ts Tasks) (Tasks, error) {
		return ts.Remove(i)
	})
}

func (s *Store) modify(user string, fn func(Tasks) (Tasks, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts, err := s.load(user)
	if err != nil {
		return err
	}
	ts, err = fn(ts)
	if err != nil {
		return err
	}
	return s.doc(user).Save(ts)
}

func (s *Store) load(user string) (Tasks, error) {
	ts := Tasks{}
	if err := s.doc(user).Load(&ts); err != nil {
		return nil, err
	}
	return ts, nil
}
