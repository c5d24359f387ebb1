// Package auth signs users in against the demo user list and keeps their sessions.
// Passwords are compared in plain text; there is no real account store.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/connecthub/connecthub-backend/common"
	"github.com/connecthub/connecthub-backend/db"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("passwords don't match")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrMissingField       = errors.New("name and email are required")
)

const (
	minPasswordLength = 6
	tokenLength       = 32
)

// DemoUsers can sign in with password "demo123".
var DemoUsers = []db.User{
	{Email: "sarah@demo.com", Password: "demo123", Name: "Sarah Johnson"},
	{Email: "mike@demo.com", Password: "demo123", Name: "Mike Chen"},
	{Email: "emma@demo.com", Password: "demo123", Name: "Emma Davis"},
}

// Authenticate looks up a demo user by exact email and password.
func Authenticate(email, password string) (db.User, bool) {
	for _, u := range DemoUsers {
		if u.Email == email && u.Password == password {
			return u, true
		}
	}
	return db.User{}, false
}

func demoUser(email string) (db.User, bool) {
	for _, u := range DemoUsers {
		if u.Email == email {
			return u, true
		}
	}
	return db.User{}, false
}

type SignupRequest struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// ValidateSignup checks a signup form the way the signup page does.
func ValidateSignup(r SignupRequest) error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Email) == "" {
		return ErrMissingField
	}
	if r.Password != r.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(r.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// Manager issues session tokens and resolves them back to users.
type Manager struct {
	sessions db.SessionStore
	ttl      time.Duration
	newToken func() string
}

func NewManager(sessions db.SessionStore, ttl time.Duration) *Manager {
	return &Manager{
		sessions: sessions,
		ttl:      ttl,
		newToken: func() string { return common.RandomString(tokenLength) },
	}
}

// Login checks the credentials against the demo users and opens a session.
func (m *Manager) Login(ctx context.Context, email, password string) (string, db.User, error) {
	u, ok := Authenticate(email, password)
	if !ok {
		return "", db.User{}, ErrInvalidCredentials
	}
	return m.open(ctx, u)
}

// DemoLogin opens a session for a demo user without a password.
func (m *Manager) DemoLogin(ctx context.Context, email string) (string, db.User, error) {
	u, ok := demoUser(email)
	if !ok {
		return "", db.User{}, ErrInvalidCredentials
	}
	return m.open(ctx, u)
}

// Signup validates r and signs the new user in. The user is not remembered past the session.
func (m *Manager) Signup(ctx context.Context, r SignupRequest) (string, db.User, error) {
	if err := ValidateSignup(r); err != nil {
		return "", db.User{}, err
	}
	return m.open(ctx, db.User{
		Email: strings.TrimSpace(r.Email),
		Name:  strings.TrimSpace(r.Name),
	})
}

func (m *Manager) open(ctx context.Context, u db.User) (string, db.User, error) {
	u.Password = ""
	token := m.newToken()
	if err := m.sessions.Put(ctx, token, u, m.ttl); err != nil {
		return "", db.User{}, err
	}
	return token, u, nil
}

// CurrentUser resolves a session token. ok is false for unknown or expired tokens.
func (m *Manager) CurrentUser(ctx context.Context, token string) (db.User, bool, error) {
	if token == "" {
		return db.User{}, false, nil
	}
	return m.sessions.Get(ctx, token)
}

func (m *Manager) Logout(ctx context.Context, token string) error {
	return m.sessions.Delete(ctx, token)
}
