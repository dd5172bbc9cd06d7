package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Wozus/Fc-tournament/internal/apperr"
	"github.com/Wozus/Fc-tournament/internal/config"
	"github.com/Wozus/Fc-tournament/internal/models"
	"github.com/Wozus/Fc-tournament/internal/store"
)

type fakeSession struct {
	userID    string
	expiresAt time.Time
}

type fakeStore struct {
	users    map[string]models.Credentials // by username
	sessions map[string]fakeSession        // by token hash
	nextID   int
	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[string]models.Credentials{},
		sessions: map[string]fakeSession{},
	}
}

func (f *fakeStore) CreateUser(_ context.Context, username, salt, hash string) (models.User, error) {
	if _, ok := f.users[username]; ok {
		return models.User{}, fmt.Errorf("insert user: %w", store.ErrDuplicate)
	}
	f.nextID++
	u := models.User{ID: fmt.Sprintf("user-%d", f.nextID), Username: username}
	f.users[username] = models.Credentials{User: u, PasswordSalt: salt, PasswordHash: hash}
	return u, nil
}

func (f *fakeStore) UserByUsername(_ context.Context, username string) (models.Credentials, error) {
	c, ok := f.users[username]
	if !ok {
		return models.Credentials{}, store.ErrNotFound
	}
	return c, nil
}

func (f *fakeStore) UserByID(_ context.Context, id string) (models.User, error) {
	for _, c := range f.users {
		if c.ID == id {
			return c.User, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (f *fakeStore) CreateSession(_ context.Context, userID, tokenHash string, expiresAt time.Time) error {
	f.sessions[tokenHash] = fakeSession{userID: userID, expiresAt: expiresAt}
	return nil
}

func (f *fakeStore) SessionUserID(_ context.Context, tokenHash string, now time.Time) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	s, ok := f.sessions[tokenHash]
	if !ok || !s.expiresAt.After(now) {
		return "", store.ErrNotFound
	}
	return s.userID, nil
}

func (f *fakeStore) DeleteSession(_ context.Context, tokenHash string) error {
	delete(f.sessions, tokenHash)
	return nil
}

func newTestManager(fs *fakeStore) *Manager {
	return NewManager(fs, false, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRegisterAndResolve(t *testing.T) {
	fs := newFakeStore()
	m := newTestManager(fs)
	ctx := context.Background()

	user, token, err := m.Register(ctx, RegisterInput{Username: "  Ala ", Password: "secret1", Confirm: "secret1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Username != "ala" {
		t.Errorf("username = %q, want normalized %q", user.Username, "ala")
	}
	if token == "" {
		t.Fatal("expected a session token")
	}
	for hash := range fs.sessions {
		if hash == token {
			t.Error("raw token must not be stored")
		}
	}

	got, err := m.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got == nil || got.ID != user.ID {
		t.Errorf("Resolve = %+v, want %+v", got, user)
	}
}

func TestRegisterUsernameCollision(t *testing.T) {
	m := newTestManager(newFakeStore())
	ctx := context.Background()

	if _, _, err := m.Register(ctx, RegisterInput{Username: "Bob", Password: "secret1", Confirm: "secret1"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, _, err := m.Register(ctx, RegisterInput{Username: " bOB  ", Password: "other12", Confirm: "other12"})
	if !apperr.Is(err, apperr.Conflict) {
		t.Fatalf("second Register err = %v, want Conflict", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"short username", RegisterInput{Username: " ab ", Password: "secret1", Confirm: "secret1"}},
		{"empty username", RegisterInput{Username: "", Password: "secret1", Confirm: "secret1"}},
		{"short password", RegisterInput{Username: "ala", Password: "12345", Confirm: "12345"}},
		{"mismatch", RegisterInput{Username: "ala", Password: "secret1", Confirm: "secret2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newFakeStore()
			_, _, err := newTestManager(fs).Register(context.Background(), tt.in)
			if !apperr.Is(err, apperr.Validation) {
				t.Fatalf("err = %v, want Validation", err)
			}
			if len(fs.users) != 0 {
				t.Error("no user should be created")
			}
		})
	}
}

func TestLogin(t *testing.T) {
	fs := newFakeStore()
	m := newTestManager(fs)
	ctx := context.Background()
	if _, _, err := m.Register(ctx, RegisterInput{Username: "ala", Password: "secret1", Confirm: "secret1"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, token, err := m.Login(ctx, LoginInput{Username: "ALA", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Username != "ala" || token == "" {
		t.Errorf("Login = %+v, %q", user, token)
	}
	if len(fs.sessions) != 2 {
		t.Errorf("sessions = %d, want 2", len(fs.sessions))
	}

	_, _, wrongPass := m.Login(ctx, LoginInput{Username: "ala", Password: "secret2"})
	_, _, unknown := m.Login(ctx, LoginInput{Username: "nobody", Password: "secret1"})
	if !apperr.Is(wrongPass, apperr.Authentication) || !apperr.Is(unknown, apperr.Authentication) {
		t.Fatalf("errs = %v, %v, want Authentication", wrongPass, unknown)
	}
	if apperr.Message(wrongPass) != apperr.Message(unknown) {
		t.Errorf("messages differ: %q vs %q", apperr.Message(wrongPass), apperr.Message(unknown))
	}

	_, _, err = m.Login(ctx, LoginInput{Username: "ala"})
	if !apperr.Is(err, apperr.Validation) {
		t.Errorf("missing password err = %v, want Validation", err)
	}
}

func TestResolveNoSession(t *testing.T) {
	fs := newFakeStore()
	m := newTestManager(fs)
	ctx := context.Background()

	for _, token := range []string{"", "deadbeef"} {
		user, err := m.Resolve(ctx, token)
		if user != nil || err != nil {
			t.Errorf("Resolve(%q) = %v, %v, want nil, nil", token, user, err)
		}
	}
}

func TestResolveExpired(t *testing.T) {
	fs := newFakeStore()
	m := newTestManager(fs)
	ctx := context.Background()
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return start }

	_, token, err := m.Register(ctx, RegisterInput{Username: "ala", Password: "secret1", Confirm: "secret1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	m.now = func() time.Time { return start.Add(config.SessionTTL - time.Second) }
	if user, _ := m.Resolve(ctx, token); user == nil {
		t.Fatal("session should still be valid")
	}

	m.now = func() time.Time { return start.Add(config.SessionTTL) }
	user, err := m.Resolve(ctx, token)
	if user != nil || err != nil {
		t.Errorf("expired Resolve = %v, %v, want nil, nil", user, err)
	}
	if len(fs.sessions) != 1 {
		t.Error("lookup must not remove the session row")
	}
}

func TestResolveStoreFailure(t *testing.T) {
	fs := newFakeStore()
	fs.failWith = errors.New("connection refused")
	_, err := newTestManager(fs).Resolve(context.Background(), "abc")
	if !apperr.Is(err, apperr.Configuration) {
		t.Fatalf("err = %v, want Configuration", err)
	}
}

func TestLogout(t *testing.T) {
	fs := newFakeStore()
	m := newTestManager(fs)
	ctx := context.Background()
	_, token, err := m.Register(ctx, RegisterInput{Username: "ala", Password: "secret1", Confirm: "secret1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := m.Logout(ctx, token); err != nil {
			t.Fatalf("Logout #%d: %v", i+1, err)
		}
	}
	if err := m.Logout(ctx, ""); err != nil {
		t.Fatalf("Logout without token: %v", err)
	}
	if user, _ := m.Resolve(ctx, token); user != nil {
		t.Error("session should be gone after logout")
	}
}

func TestCookies(t *testing.T) {
	m := NewManager(newFakeStore(), true, slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := httptest.NewRecorder()
	m.SetCookie(rec, "tok")
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Name != config.SessionCookie || c.Value != "tok" {
		t.Errorf("cookie = %s=%s", c.Name, c.Value)
	}
	if !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteLaxMode || c.Path != "/" {
		t.Errorf("cookie attributes = %+v", c)
	}
	if c.MaxAge != 30*24*60*60 {
		t.Errorf("MaxAge = %d", c.MaxAge)
	}

	rec = httptest.NewRecorder()
	m.ClearCookie(rec)
	c = rec.Result().Cookies()[0]
	if c.Value != "" || c.MaxAge >= 0 {
		t.Errorf("cleared cookie = %+v", c)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if TokenFromRequest(req) != "" {
		t.Error("no cookie should give empty token")
	}
	req.AddCookie(&http.Cookie{Name: config.SessionCookie, Value: "abc"})
	if got := TokenFromRequest(req); got != "abc" {
		t.Errorf("TokenFromRequest = %q", got)
	}
}

func TestStateRequire(t *testing.T) {
	if _, err := (State{}).Require(); !apperr.Is(err, apperr.Authentication) {
		t.Errorf("empty state err = %v, want Authentication", err)
	}
	cfgErr := apperr.Misconfigured("down", errors.New("x"))
	if _, err := (State{Err: cfgErr}).Require(); !apperr.Is(err, apperr.Configuration) {
		t.Errorf("error state err = %v, want Configuration", err)
	}
	u := &models.User{ID: "1", Username: "ala"}
	got, err := (State{User: u}).Require()
	if err != nil || got != *u {
		t.Errorf("Require = %+v, %v", got, err)
	}

	ctx := WithState(context.Background(), State{User: u})
	if FromContext(ctx).User != u {
		t.Error("state lost in context")
	}
	if FromContext(context.Background()).User != nil {
		t.Error("bare context should carry no user")
	}
}
