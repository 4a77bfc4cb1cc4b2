// Package admin gates write access to the portfolio behind a fixed
// credential pair. This is a deterrent against casual visitors, not a
// security boundary: the pair is shared, there is no lockout or backoff,
// and tokens live in process memory only.
package admin

import (
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned for any credential mismatch. The message
// is shown inline on the login form.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Manager tracks authenticated sessions. A session goes one way: once a
// token is issued it stays valid until it expires; there is no logout.
type Manager struct {
	username string
	password string
	ttl      time.Duration

	mu     sync.Mutex
	tokens map[string]time.Time // token -> expiry

	timeNow func() time.Time
}

// NewManager creates a session manager for the expected credential pair.
func NewManager(username, password string, ttl time.Duration) *Manager {
	return &Manager{
		username: username,
		password: password,
		ttl:      ttl,
		tokens:   make(map[string]time.Time),
		timeNow:  time.Now,
	}
}

// Login checks the pair and issues a session token on match. A mismatch
// returns ErrInvalidCredentials and leaves no trace.
func (m *Manager) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(m.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(m.password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked()
	m.tokens[token] = m.timeNow().Add(m.ttl)
	return token, nil
}

// Valid reports whether token belongs to a live session.
func (m *Manager) Valid(token string) bool {
	if token == "" {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	expiry, ok := m.tokens[token]
	if !ok {
		return false
	}
	if m.timeNow().After(expiry) {
		delete(m.tokens, token)
		return false
	}
	return true
}

// sweepLocked drops expired tokens. Callers must hold the lock.
func (m *Manager) sweepLocked() {
	now := m.timeNow()
	for token, expiry := range m.tokens {
		if now.After(expiry) {
			delete(m.tokens, token)
		}
	}
}
