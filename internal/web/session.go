package web

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// session is the server-side record behind one cookie. Expiry is a
// pure function of (now - lastActive) against the configured timeout.
type session struct {
	authenticated bool
	lastActive    time.Time
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	timeout  time.Duration
	now      func() time.Time
}

func newSessionStore(timeout time.Duration) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*session),
		timeout:  timeout,
		now:      time.Now,
	}
}

// create starts an authenticated session and returns its opaque token.
func (s *sessionStore) create() string {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = &session{
		authenticated: true,
		lastActive:    s.now(),
	}
	return token
}

// valid reports whether the token belongs to a live authenticated
// session. Activity slides the inactivity window; expired sessions
// are dropped on sight.
func (s *sessionStore) valid(token string) bool {
	if token == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok || !sess.authenticated {
		return false
	}
	now := s.now()
	if s.timeout > 0 && now.Sub(sess.lastActive) > s.timeout {
		delete(s.sessions, token)
		return false
	}
	sess.lastActive = now
	return true
}

func (s *sessionStore) destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
