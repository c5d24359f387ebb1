package db

import (
	"context"
	"sync"
	"time"
)

// SessionStore maps opaque session tokens to the signed-in user.
// Get reports ok=false for unknown or expired tokens.
type SessionStore interface {
	Put(ctx context.Context, token string, u User, ttl time.Duration) error
	Get(ctx context.Context, token string) (User, bool, error)
	Delete(ctx context.Context, token string) error
}

type memorySession struct {
	user    User
	expires time.Time
}

// MemorySessions is an in-process SessionStore. Expired entries are dropped on read.
type MemorySessions struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	now      func() time.Time
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{
		sessions: make(map[string]memorySession),
		now:      time.Now,
	}
}

// Put stores u under token. A ttl <= 0 never expires.
func (m *MemorySessions) Put(ctx context.Context, token string, u User, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := memorySession{user: u}
	if ttl > 0 {
		s.expires = m.now().Add(ttl)
	}
	m.sessions[token] = s
	return nil
}

func (m *MemorySessions) Get(ctx context.Context, token string) (User, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok {
		return User{}, false, nil
	}
	if !s.expires.IsZero() && !m.now().Before(s.expires) {
		delete(m.sessions, token)
		return User{}, false, nil
	}
	return s.user, true, nil
}

func (m *MemorySessions) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}
