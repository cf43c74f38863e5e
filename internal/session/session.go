package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"socialite/internal/config"
	"socialite/internal/core"
)

// PasswordVerifiedTTL bounds how long a sensitive-action re-auth stays
// valid.
const PasswordVerifiedTTL = 10 * time.Minute

// Session holds the bearer token and the claims derived from it. Claims
// are decoded without signature verification: they only gate the client
// UI, the backend stays authoritative.
type Session struct {
	Logger *slog.Logger
	Config *config.Config

	mu                 sync.RWMutex
	token              string
	userID             string
	role               core.Role
	expiresAt          time.Time
	authenticated      bool
	passwordVerifiedAt time.Time

	now func() time.Time
}

func (s *Session) Init(_ context.Context) error {
	s.Logger = s.Logger.With("component", "session.Session")

	if s.Config != nil && s.Config.Token != "" {
		s.SetToken(s.Config.Token)
	}
	return nil
}

// SetToken installs a bearer token and derives user id, role and expiry
// from its claims. A malformed token leaves the session signed out, it is
// never an error surfaced to callers.
func (s *Session) SetToken(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = raw
	s.userID = ""
	s.role = ""
	s.expiresAt = time.Time{}
	s.authenticated = false

	if raw == "" {
		return
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		if s.Logger != nil {
			s.Logger.Warn("discarding malformed token", "error", err)
		}
		s.token = ""
		return
	}

	if sub, err := claims.GetSubject(); err == nil {
		s.userID = sub
	}
	if role, ok := claims["role"].(string); ok {
		s.role = core.Role(role)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.expiresAt = exp.Time
	}

	s.authenticated = s.expiresAt.After(s.clock()())
}

// Clear signs the session out.
func (s *Session) Clear() {
	s.SetToken("")
}

// CheckAuth re-evaluates the expiry claim against wall clock and returns
// whether the session is still authenticated. An expired token flips the
// session to signed out; the derived role survives only while valid.
func (s *Session) CheckAuth() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authenticated = s.token != "" && s.expiresAt.After(s.clock()())
	return s.authenticated
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *Session) Role() core.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// MarkPasswordVerified records a successful re-authentication.
func (s *Session) MarkPasswordVerified() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passwordVerifiedAt = s.clock()()
}

// PasswordVerified reports whether a re-authentication is still fresh.
func (s *Session) PasswordVerified() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.passwordVerifiedAt.IsZero() {
		return false
	}
	return s.clock()().Sub(s.passwordVerifiedAt) < PasswordVerifiedTTL
}

func (s *Session) clock() func() time.Time {
	if s.now != nil {
		return s.now
	}
	return time.Now
}

var _ core.TokenSource = (*Session)(nil)
