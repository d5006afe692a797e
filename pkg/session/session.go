// Package session holds the currently authenticated user.
package session

import "github.com/google/uuid"

// Session is either active for exactly one user or empty. The zero value is
// the empty session.
type Session struct {
	user string
	id   uuid.UUID
}

// Start replaces any previous session. Each session gets a new id so log
// lines of one login can be told apart from the next.
func (s *Session) Start(user string) {
	s.user = user
	s.id = uuid.New()
}

func (s *Session) End() {
	*s = Session{}
}

func (s Session) Active() bool {
	return s.id != uuid.Nil
}

func (s Session) User() (string, bool) {
	return s.user, s.Active()
}

func (s Session) ID() uuid.UUID {
	return s.id
}
