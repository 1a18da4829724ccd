// Package session owns the login session lifecycle: created by Login, held as
// an explicit object (no global token storage), persisted to a JSON file, and
// cleared by Logout. The api.Client reads the bearer token through the
// TokenSource interface.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shashiranjanraj/shopctl/pkg/api"
	"github.com/shashiranjanraj/shopctl/pkg/auth"
	"github.com/shashiranjanraj/shopctl/pkg/validate"
)

// ErrNotLoggedIn is returned when no persisted session exists.
var ErrNotLoggedIn = errors.New("session: not logged in")

// Demo credentials accepted entirely client-side, no server round-trip.
// Kept for parity with the upstream admin front end.
const (
	bypassUsername = "tungnt@aptech"
	bypassPassword = "123456789"
)

// Session is the authenticated state of the client.
type Session struct {
	AccessToken string    `json:"access_token,omitempty"`
	Username    string    `json:"username"`
	Bypass      bool      `json:"bypass,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Token implements api.TokenSource.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	return s.AccessToken
}

// Claims decodes the held access token. Returns nil for bypass sessions.
func (s *Session) Claims() *auth.Claims {
	if s.AccessToken == "" {
		return nil
	}
	claims, err := auth.Inspect(s.AccessToken)
	if err != nil {
		return nil
	}
	return claims
}

// Expired reports whether the held token has passed its expiry claim.
// Bypass sessions and tokens without an expiry never expire.
func (s *Session) Expired() bool {
	claims := s.Claims()
	return claims != nil && claims.Expired()
}

// ValidationError carries the per-field messages of a rejected login form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("session: invalid login input: %v", e.Fields)
}

type loginInput struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required,min=3,max=20"`
}

type loginResponse struct {
	AccessToken  string          `json:"access_token"`
	LoggedInUser json.RawMessage `json:"loggedInUser"`
}

// Login authenticates against POST /auth/login and returns a new Session.
// The bypass pair short-circuits before validation and never touches the
// network. A failed validation returns *ValidationError and no request is
// made.
func Login(ctx context.Context, baseURL, username, password string) (*Session, error) {
	if username == bypassUsername && password == bypassPassword {
		return &Session{Username: username, Bypass: true, CreatedAt: time.Now()}, nil
	}

	input := loginInput{Username: username, Password: password}
	if errs := validate.Struct(input); validate.HasErrors(errs) {
		return nil, &ValidationError{Fields: errs}
	}

	resp, err := api.Post(baseURL + "/auth/login").
		WithContext(ctx).
		Body(input).
		Send()
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == 401 {
		return nil, errors.New("session: login failed: invalid credentials")
	}
	if !resp.OK() {
		return nil, fmt.Errorf("session: login failed: %s", resp.FirstMessage())
	}

	var body loginResponse
	if err := resp.JSON(&body); err != nil {
		return nil, err
	}
	if len(body.LoggedInUser) == 0 || body.AccessToken == "" {
		return nil, errors.New("session: login failed: no user in response")
	}

	return &Session{
		AccessToken: body.AccessToken,
		Username:    username,
		CreatedAt:   time.Now(),
	}, nil
}

// Load reads the persisted session from path.
func Load(path string) (*Session, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("session: read %s: %w", path, err)
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("session: parse %s: %w", path, err)
	}
	return &s, nil
}

// Save persists the session to path, creating the directory as needed.
// The file is user-readable only; it holds the bearer token.
func (s *Session) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("session: create dir: %w", err)
	}

	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", path, err)
	}
	return nil
}

// Clear removes the persisted session (logout). Clearing an absent session is
// not an error.
func Clear(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: clear %s: %w", path, err)
	}
	return nil
}
