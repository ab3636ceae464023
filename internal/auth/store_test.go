package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/open-pam/console/internal/api"
)

func signTestToken(t *testing.T, claims Claims) string {
	t.Helper()
	// The store never verifies signatures, so any key works here.
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}
	return signed
}

func tokenPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "access_token")
}

func TestLoadFromStorage_NoToken(t *testing.T) {
	s := NewStore(tokenPath(t))

	if err := s.LoadFromStorage(); err != nil {
		t.Fatalf("LoadFromStorage() error = %v", err)
	}
	if !s.Initialized {
		t.Fatal("Initialized = false, want true")
	}
	if s.Token != "" || s.Claims != nil {
		t.Fatalf("expected empty session, got token=%q claims=%v", s.Token, s.Claims)
	}
}

func TestLoadFromStorage_ExpiredTokenClearsStorage(t *testing.T) {
	path := tokenPath(t)
	token := signTestToken(t, Claims{
		Email: "admin@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	if err := os.WriteFile(path, []byte(token), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	s := NewStore(path)
	if err := s.LoadFromStorage(); err != nil {
		t.Fatalf("LoadFromStorage() error = %v", err)
	}

	if !s.Initialized {
		t.Fatal("Initialized = false, want true")
	}
	if s.Token != "" || s.Claims != nil || s.User != nil {
		t.Fatalf("expired session not cleared: token=%q claims=%v user=%v", s.Token, s.Claims, s.User)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("token file still present after cleanup: %v", err)
	}
}

func TestLoadFromStorage_ValidToken(t *testing.T) {
	path := tokenPath(t)
	token := signTestToken(t, Claims{
		Email:       "admin@example.com",
		Permissions: []string{"view_audit"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	if err := os.WriteFile(path, []byte(token), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	s := NewStore(path)
	if err := s.LoadFromStorage(); err != nil {
		t.Fatalf("LoadFromStorage() error = %v", err)
	}

	if s.Token != token {
		t.Fatalf("Token = %q, want persisted token", s.Token)
	}
	if s.Claims == nil || s.Claims.Email != "admin@example.com" {
		t.Fatalf("Claims = %+v", s.Claims)
	}
	if got, err := s.Subject(); err != nil || got != "7" {
		t.Fatalf("Subject() = %q, %v", got, err)
	}
}

func TestLoadFromStorage_MalformedTokenClearsStorage(t *testing.T) {
	path := tokenPath(t)
	if err := os.WriteFile(path, []byte("not-a-jwt"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	s := NewStore(path)
	if err := s.LoadFromStorage(); err != nil {
		t.Fatalf("LoadFromStorage() error = %v", err)
	}
	if s.Token != "" {
		t.Fatalf("Token = %q, want empty", s.Token)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("malformed token file not removed")
	}
}

func TestLogin_FetchesProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/me" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"email":"admin@example.com","is_active":true}`))
	}))
	defer srv.Close()

	path := tokenPath(t)
	s := NewStore(path)
	client := api.NewClient(srv.URL, s.Source(), time.Second)

	token := signTestToken(t, Claims{
		Email: "admin@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	if err := s.Login(context.Background(), client, token); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if s.User == nil || s.User.ID != 7 {
		t.Fatalf("User = %+v, want profile with id 7", s.User)
	}
	if s.MustChangePassword {
		t.Fatal("MustChangePassword = true, want false")
	}
	persisted, err := os.ReadFile(path)
	if err != nil || string(persisted) != token {
		t.Fatalf("persisted token = %q, %v", persisted, err)
	}
}

func TestLogin_SkipsProfileDuringPasswordReset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The backend refuses /users/me mid reset; the store must
		// not even try.
		t.Errorf("unexpected request to %q", r.URL.Path)
	}))
	defer srv.Close()

	s := NewStore(tokenPath(t))
	client := api.NewClient(srv.URL, s.Source(), time.Second)

	token := signTestToken(t, Claims{
		PasswordResetRequired: true,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	if err := s.Login(context.Background(), client, token); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if !s.MustChangePassword {
		t.Fatal("MustChangePassword = false, want true")
	}
	if s.User != nil {
		t.Fatalf("User = %+v, want nil", s.User)
	}
}

func TestLogin_RejectsExpiredToken(t *testing.T) {
	s := NewStore(tokenPath(t))
	token := signTestToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	if err := s.Login(context.Background(), nil, token); err == nil {
		t.Fatal("expected expired token error")
	}
}

func TestLogout_ClearsEverything(t *testing.T) {
	path := tokenPath(t)
	s := NewStore(path)
	token := signTestToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	if err := s.Login(context.Background(), nil, token); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if err := s.Logout(); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if s.Token != "" || s.Claims != nil || s.User != nil {
		t.Fatalf("session not cleared: %+v", s)
	}
	if tok, err := s.Source().Token(); err != nil || tok != "" {
		t.Fatalf("Token() after logout = %q, %v", tok, err)
	}
}
