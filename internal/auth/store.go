// Package auth holds the console-side session state: a bearer token
// persisted between invocations plus the claims decoded from it. The
// token is decoded without signature verification — trust is delegated
// to transport and backend, and nothing here is an authorization
// decision. The backend re-derives permissions from /users/me.
package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/open-pam/console/internal/api"
)

// ErrNotLoggedIn is returned by operations that require a session.
var ErrNotLoggedIn = errors.New("not logged in")

// Claims are the token claims the console reads for display and flow
// control. pwd_reset_required gates the profile fetch: the backend
// refuses /users/me while a password reset is pending.
type Claims struct {
	Email                 string   `json:"email,omitempty"`
	PasswordResetRequired bool     `json:"pwd_reset_required,omitempty"`
	Permissions           []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// Store is the client session store: the raw token on disk, everything
// else derived from it on load.
type Store struct {
	path string

	Token              string
	Claims             *Claims
	User               *api.User
	MustChangePassword bool
	Initialized        bool
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Source exposes the persisted token as an api.TokenSource. The file
// is read on every request rather than served from memory, so a logout
// or re-login from a concurrent invocation takes effect immediately.
func (s *Store) Source() api.TokenSource {
	return api.TokenFunc(s.readToken)
}

// readToken loads the raw token from disk. A missing file yields an
// empty token, not an error.
func (s *Store) readToken() (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

// Login decodes and persists a fresh backend token, then fetches the
// full profile unless a password reset is pending.
func (s *Store) Login(ctx context.Context, client *api.Client, rawToken string) error {
	claims, err := decodeToken(rawToken)
	if err != nil {
		return err
	}
	if expired(claims) {
		return errors.New("token is already expired")
	}

	if err := s.persist(rawToken); err != nil {
		return err
	}

	s.Token = rawToken
	s.Claims = claims
	s.MustChangePassword = claims.PasswordResetRequired
	s.User = nil
	s.Initialized = true

	if claims.PasswordResetRequired || client == nil {
		return nil
	}

	user, err := client.Me(ctx)
	if err != nil {
		return fmt.Errorf("fetch profile: %w", err)
	}
	s.User = &user
	return nil
}

// LoadFromStorage rehydrates the session from disk. An expired token
// is discarded with full local cleanup; the store still ends up
// initialized so that callers can distinguish "checked, logged out"
// from "not checked yet".
func (s *Store) LoadFromStorage() error {
	defer func() { s.Initialized = true }()

	token, err := s.readToken()
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	claims, err := decodeToken(token)
	if err != nil || expired(claims) {
		// Malformed or stale token: clear it rather than carry
		// it into every request as a guaranteed 401.
		return s.clear()
	}

	s.Token = token
	s.Claims = claims
	s.MustChangePassword = claims.PasswordResetRequired
	return nil
}

// Logout clears the persisted token and all in-memory state.
func (s *Store) Logout() error {
	return s.clear()
}

// Subject returns the user id claim of the current session.
func (s *Store) Subject() (string, error) {
	if s.Claims == nil {
		return "", ErrNotLoggedIn
	}
	return s.Claims.Subject, nil
}

func (s *Store) clear() error {
	s.Token = ""
	s.Claims = nil
	s.User = nil
	s.MustChangePassword = false
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) persist(rawToken string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(rawToken), 0o600)
}

// decodeToken parses claims without verifying the signature.
func decodeToken(rawToken string) (*Claims, error) {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return nil, errors.New("token is empty")
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(rawToken, claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return claims, nil
}

func expired(claims *Claims) bool {
	if claims.ExpiresAt == nil {
		return false
	}
	return time.Now().After(claims.ExpiresAt.Time)
}
