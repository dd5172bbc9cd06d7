// Package session turns session cookies into authenticated users and mints
// new sessions on register and login.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Wozus/Fc-tournament/internal/apperr"
	"github.com/Wozus/Fc-tournament/internal/auth"
	"github.com/Wozus/Fc-tournament/internal/config"
	"github.com/Wozus/Fc-tournament/internal/models"
	"github.com/Wozus/Fc-tournament/internal/store"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// Store is the persistence the manager needs. *store.Store satisfies it.
type Store interface {
	CreateUser(ctx context.Context, username, salt, hash string) (models.User, error)
	UserByUsername(ctx context.Context, username string) (models.Credentials, error)
	UserByID(ctx context.Context, id string) (models.User, error)
	CreateSession(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error
	SessionUserID(ctx context.Context, tokenHash string, now time.Time) (string, error)
	DeleteSession(ctx context.Context, tokenHash string) error
}

// Manager resolves, creates and ends sessions.
type Manager struct {
	store  Store
	secure bool
	logger *slog.Logger
	now    func() time.Time
}

// NewManager returns a Manager. secure sets the Secure flag on issued cookies.
func NewManager(s Store, secure bool, logger *slog.Logger) *Manager {
	return &Manager{store: s, secure: secure, logger: logger, now: time.Now}
}

// RegisterInput is the registration payload.
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

// LoginInput is the login payload.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Resolve maps a raw cookie token to its user. A nil user with a nil error
// means there is no usable session; expired and unknown tokens look the
// same. Any other store failure is a Configuration error.
func (m *Manager) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	userID, err := m.store.SessionUserID(ctx, auth.HashToken(token), m.now())
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Misconfigured("session store unavailable", err)
	}

	user, err := m.store.UserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Misconfigured("session store unavailable", err)
	}
	return &user, nil
}

// Register creates an account and opens a session for it. It returns the
// new user and the raw session token.
func (m *Manager) Register(ctx context.Context, in RegisterInput) (models.User, string, error) {
	username := auth.NormalizeUsername(in.Username)
	switch {
	case len([]rune(username)) < minUsernameLen:
		return models.User{}, "", apperr.Validationf("username must be at least %d characters", minUsernameLen)
	case len([]rune(in.Password)) < minPasswordLen:
		return models.User{}, "", apperr.Validationf("password must be at least %d characters", minPasswordLen)
	case in.Password != in.Confirm:
		return models.User{}, "", apperr.Validationf("passwords do not match")
	}

	salt, err := auth.GenerateSalt()
	if err != nil {
		return models.User{}, "", err
	}
	hash, err := auth.HashPassword(in.Password, salt)
	if err != nil {
		return models.User{}, "", err
	}

	user, err := m.store.CreateUser(ctx, username, salt, hash)
	if errors.Is(err, store.ErrDuplicate) {
		return models.User{}, "", apperr.Conflictf("username %q is already taken", username)
	}
	if err != nil {
		return models.User{}, "", err
	}

	token, err := m.open(ctx, user.ID)
	if err != nil {
		return models.User{}, "", err
	}
	m.logger.Info("User registered", "user_id", user.ID, "username", user.Username)
	return user, token, nil
}

// Login checks credentials and opens a session. Unknown users and wrong
// passwords produce the same error.
func (m *Manager) Login(ctx context.Context, in LoginInput) (models.User, string, error) {
	username := auth.NormalizeUsername(in.Username)
	if username == "" || in.Password == "" {
		return models.User{}, "", apperr.Validationf("username and password are required")
	}

	creds, err := m.store.UserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, "", errBadCredentials
	}
	if err != nil {
		return models.User{}, "", err
	}
	if !auth.VerifyPassword(in.Password, creds.PasswordSalt, creds.PasswordHash) {
		return models.User{}, "", errBadCredentials
	}

	token, err := m.open(ctx, creds.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return creds.User, token, nil
}

var errBadCredentials = apperr.Unauthenticated("invalid username or password")

// Logout deletes the session behind token. An empty or unknown token is a
// no-op.
func (m *Manager) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.DeleteSession(ctx, auth.HashToken(token))
}

func (m *Manager) open(ctx context.Context, userID string) (string, error) {
	token, err := auth.NewSessionToken()
	if err != nil {
		return "", err
	}
	expiresAt := m.now().Add(config.SessionTTL)
	if err := m.store.CreateSession(ctx, userID, auth.HashToken(token), expiresAt); err != nil {
		return "", fmt.Errorf("open session: %w", err)
	}
	return token, nil
}

// TokenFromRequest returns the raw session token, or "" without a cookie.
func TokenFromRequest(r *http.Request) string {
	c, err := r.Cookie(config.SessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// SetCookie hands token to the client.
func (m *Manager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, m.cookie(token, int(config.SessionTTL.Seconds())))
}

// ClearCookie tells the client to drop the session cookie.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, m.cookie("", -1))
}

func (m *Manager) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     config.SessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
