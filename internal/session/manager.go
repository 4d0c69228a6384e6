package session

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
	"wadboard/internal/providers"
	"wadboard/internal/structures"
)

const tokenBytes = 32

type Session struct {
	CreatedAt time.Time
}

type ManagerInterface interface {
	Create() (string, error)
	Validate(token string) (*Session, bool)
	Invalidate(token string)
	Cleanup() int
	Count() int
	CheckPassword(password string) bool
}

// Manager keeps admin sessions in memory. A restart logs everybody out.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]Session
	ttl      time.Duration
	password []byte
	metrics  providers.MetricsProviderInterface
	now      func() time.Time
}

func NewManager(conf *structures.Config, metrics providers.MetricsProviderInterface) *Manager {
	return &Manager{
		sessions: make(map[string]Session),
		ttl:      conf.Auth.SessionTTL,
		password: []byte(conf.Auth.Password),
		metrics:  metrics,
		now:      time.Now,
	}
}

func (m *Manager) Create() (string, error) {
	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := hex.EncodeToString(raw)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = Session{CreatedAt: m.now()}
	m.metrics.SetActiveSessions(len(m.sessions))

	return token, nil
}

// Validate accepts a token strictly before createdAt+TTL. The lifetime is
// absolute: validation never extends it. Expired entries are dropped on lookup.
func (m *Manager) Validate(token string) (*Session, bool) {
	if token == "" {
		return nil, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[token]
	if !ok {
		return nil, false
	}
	if !m.alive(sess) {
		delete(m.sessions, token)
		m.metrics.SetActiveSessions(len(m.sessions))
		return nil, false
	}
	return &sess, true
}

func (m *Manager) Invalidate(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	m.metrics.SetActiveSessions(len(m.sessions))
}

func (m *Manager) Cleanup() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for token, sess := range m.sessions {
		if !m.alive(sess) {
			delete(m.sessions, token)
			removed++
		}
	}
	m.metrics.SetActiveSessions(len(m.sessions))
	return removed
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) CheckPassword(password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), m.password) == 1
}

func (m *Manager) alive(sess Session) bool {
	return m.now().Sub(sess.CreatedAt) < m.ttl
}
