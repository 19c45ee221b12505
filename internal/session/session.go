// Package session holds the bearer-token session: who the user is, parsed
// from the token's claims, and what happens when the backend declares the
// session dead.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/pal-lokesh/storefront/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// Claims are the token claims the client cares about. The token is parsed,
// not verified: issuance and signing live on the backend, and every request
// is re-authorised server-side anyway.
type Claims struct {
	Phone    string         `json:"phoneNumber"`
	UserType model.UserType `json:"userType"`
	jwt.RegisteredClaims
}

// Session is the mutable authenticated state of the program. Safe for
// concurrent use; the 401 hook can fire from any in-flight request.
type Session struct {
	mu        sync.RWMutex
	token     string
	claims    *Claims
	listeners []func()
	logger    zerolog.Logger
}

// New creates a session from a raw bearer token. An empty token yields a
// logged-out session.
func New(token string, logger zerolog.Logger) (*Session, error) {
	s := &Session{logger: logger.With().Str("component", "session").Logger()}

	if token == "" {
		return s, nil
	}

	claims, err := parseClaims(token)
	if err != nil {
		return nil, fmt.Errorf("invalid bearer token: %w", err)
	}

	s.token = token
	s.claims = claims
	return s, nil
}

func parseClaims(token string) (*Claims, error) {
	claims := &Claims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}

	if claims.Phone == "" {
		return nil, fmt.Errorf("token carries no phone number claim")
	}

	switch claims.UserType {
	case model.UserTypeClient, model.UserTypeVendor, model.UserTypeAdmin:
	default:
		return nil, fmt.Errorf("token carries unknown user type %q", claims.UserType)
	}

	return claims, nil
}

// Token returns the current bearer token, empty when logged out.
// Implements api.TokenSource.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// LoggedIn reports whether an unexpired session exists.
func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.claims != nil && !s.expiredLocked()
}

// Expired reports whether the token carries an exp claim in the past.
func (s *Session) Expired() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiredLocked()
}

func (s *Session) expiredLocked() bool {
	if s.claims == nil || s.claims.ExpiresAt == nil {
		return false
	}
	return s.claims.ExpiresAt.Before(time.Now())
}

// User returns the session's account identity, or nil when logged out.
func (s *Session) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.claims == nil {
		return nil
	}
	return &model.User{
		Phone: s.claims.Phone,
		Type:  s.claims.UserType,
	}
}

// OnLogout registers a listener fired when the session is discarded.
func (s *Session) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Logout discards the token and claims and fires the listeners. Called on
// explicit logout and by the API layer on a 401 response. Idempotent.
func (s *Session) Logout() {
	s.mu.Lock()
	if s.token == "" && s.claims == nil {
		s.mu.Unlock()
		return
	}
	s.token = ""
	s.claims = nil
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	s.logger.Info().Msg("session discarded")
	for _, fn := range listeners {
		fn()
	}
}
