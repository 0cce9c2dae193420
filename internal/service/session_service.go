package service

import (
	"errors"
	"sync"

	"github.com/gofrs/uuid/v5"
)

// ErrInvalidPasscode is returned when a login attempt fails.
var ErrInvalidPasscode = errors.New("invalid passcode")

// SessionService is the placeholder access gate: one shared passcode,
// opaque tokens held in memory. It is deliberately not a security
// mechanism; losing the process loses the sessions and that is fine.
type SessionService struct {
	passcode string
	mutex    sync.Mutex
	tokens   map[string]struct{}
}

// NewSessionService creates a new SessionService.
func NewSessionService(passcode string) *SessionService {
	return &SessionService{
		passcode: passcode,
		tokens:   make(map[string]struct{}),
	}
}

// Login exchanges the shared passcode for a session token.
func (s *SessionService) Login(passcode string) (string, error) {
	if passcode != s.passcode {
		return "", ErrInvalidPasscode
	}

	token := uuid.Must(uuid.NewV4()).String()
	s.mutex.Lock()
	s.tokens[token] = struct{}{}
	s.mutex.Unlock()
	return token, nil
}

// Validate reports whether the token belongs to a live session.
func (s *SessionService) Validate(token string) bool {
	if token == "" {
		return false
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	_, ok := s.tokens[token]
	return ok
}

// Logout tears the session down. Unknown tokens are a no-op.
func (s *SessionService) Logout(token string) {
	s.mutex.Lock()
	delete(s.tokens, token)
	s.mutex.Unlock()
}
