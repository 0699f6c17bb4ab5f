package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lostpaws/petfinder-system/internal/api/middleware"
	"github.com/lostpaws/petfinder-system/internal/core/domain"
	"github.com/lostpaws/petfinder-system/internal/core/ports"
	"github.com/lostpaws/petfinder-system/internal/core/service"
)

// stubAuthService returns canned results and records inputs.
type stubAuthService struct {
	registered []ports.RegisterInput
	verified   []string
	pair       *ports.TokenPair
	loginErr   error
	access     string
	refreshErr error
	profile    *ports.UserProfile
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) error {
	s.registered = append(s.registered, input)
	return nil
}

func (s *stubAuthService) Verify(_ context.Context, token string) error {
	s.verified = append(s.verified, token)
	return nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*ports.TokenPair, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.pair, nil
}

func (s *stubAuthService) Refresh(_ context.Context, refreshToken string) (string, error) {
	if s.refreshErr != nil {
		return "", s.refreshErr
	}
	return s.access, nil
}

func (s *stubAuthService) GetUser(_ context.Context, userID string) (*ports.UserProfile, error) {
	if s.profile == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.profile, nil
}

func (s *stubAuthService) UpdateName(_ context.Context, userID, name string) error   { return nil }
func (s *stubAuthService) UpdateEmail(_ context.Context, userID, email string) error { return nil }
func (s *stubAuthService) UpdatePhone(_ context.Context, userID, phone string) error { return nil }
func (s *stubAuthService) UpdatePassword(_ context.Context, userID, current, updated string) error {
	return nil
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, service.NewTokenService("secret"), 5*time.Minute, time.Hour)

	c, rec := newTestContext(http.MethodPost, "/register",
		`{"email":"alice@example.com","password":"s3cretpass","phone":"+15551234567","name":"Alice"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if len(svc.registered) != 1 || svc.registered[0].Email != "alice@example.com" {
		t.Fatalf("register input not forwarded: %+v", svc.registered)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, service.NewTokenService("secret"), 5*time.Minute, time.Hour)

	cases := []struct {
		name string
		body string
	}{
		{"bad email", `{"email":"not-an-email","password":"s3cretpass"}`},
		{"short password", `{"email":"alice@example.com","password":"short"}`},
		{"bad phone", `{"email":"alice@example.com","password":"s3cretpass","phone":"12345"}`},
	}
	for _, tc := range cases {
		c, _ := newTestContext(http.MethodPost, "/register", tc.body)
		err := h.Register(c)

		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: expected 422, got %v", tc.name, err)
		}
	}
}

func TestAuthHandler_Verify(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, service.NewTokenService("secret"), 5*time.Minute, time.Hour)

	c, rec := newTestContext(http.MethodGet, "/verify?token=tok123", "")
	if err := h.Verify(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if len(svc.verified) != 1 || svc.verified[0] != "tok123" {
		t.Fatalf("token not forwarded: %+v", svc.verified)
	}
}

func TestAuthHandler_Verify_MissingToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, service.NewTokenService("secret"), 5*time.Minute, time.Hour)

	c, _ := newTestContext(http.MethodGet, "/verify", "")
	if err := h.Verify(c); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
}

func TestAuthHandler_Login_SetsSessionCookies(t *testing.T) {
	svc := &stubAuthService{pair: &ports.TokenPair{AccessToken: "acc", RefreshToken: "ref"}}
	h := NewAuthHandler(svc, service.NewTokenService("secret"), 5*time.Minute, time.Hour)

	c, rec := newTestContext(http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"s3cretpass"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	access := findCookie(rec, middleware.AccessCookie)
	refresh := findCookie(rec, middleware.RefreshCookie)
	if access == nil || refresh == nil {
		t.Fatal("session cookies not set")
	}
	if access.Value != "acc" || refresh.Value != "ref" {
		t.Fatalf("cookie values: access %q, refresh %q", access.Value, refresh.Value)
	}
	for _, cookie := range []*http.Cookie{access, refresh} {
		if !cookie.HttpOnly {
			t.Fatalf("cookie %s must be http-only", cookie.Name)
		}
		if cookie.Path != "/" {
			t.Fatalf("cookie %s path %q, want /", cookie.Name, cookie.Path)
		}
	}
}

func TestAuthHandler_Login_ErrorPassesThrough(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrNotVerified}
	h := NewAuthHandler(svc, service.NewTokenService("secret"), 5*time.Minute, time.Hour)

	c, rec := newTestContext(http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"s3cretpass"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrNotVerified) {
		t.Fatalf("expected ErrNotVerified, got %v", err)
	}
	if findCookie(rec, middleware.AccessCookie) != nil {
		t.Fatal("no cookie may be set on a failed login")
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	svc := &stubAuthService{access: "new-access"}
	h := NewAuthHandler(svc, service.NewTokenService("secret"), 5*time.Minute, time.Hour)

	c, rec := newTestContext(http.MethodGet, "/refresh", "")
	c.Request().AddCookie(&http.Cookie{Name: middleware.RefreshCookie, Value: "ref"})

	if err := h.Refresh(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	access := findCookie(rec, middleware.AccessCookie)
	if access == nil || access.Value != "new-access" {
		t.Fatalf("access cookie not replaced: %+v", access)
	}
	// The refresh cookie is not rotated.
	if findCookie(rec, middleware.RefreshCookie) != nil {
		t.Fatal("refresh cookie must not be reissued")
	}
}

func TestAuthHandler_Refresh_MissingCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, service.NewTokenService("secret"), 5*time.Minute, time.Hour)

	c, _ := newTestContext(http.MethodGet, "/refresh", "")
	if err := h.Refresh(c); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
}

func TestAuthHandler_Logout_ClearsCookies(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, service.NewTokenService("secret"), 5*time.Minute, time.Hour)

	c, rec := newTestContext(http.MethodGet, "/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	for _, name := range []string{middleware.AccessCookie, middleware.RefreshCookie} {
		cookie := findCookie(rec, name)
		if cookie == nil {
			t.Fatalf("cookie %s not cleared", name)
		}
		if cookie.Value != "" || cookie.MaxAge != -1 {
			t.Fatalf("cookie %s not expired: value %q, max-age %d", name, cookie.Value, cookie.MaxAge)
		}
	}
}

func TestAuthHandler_Me(t *testing.T) {
	tokens := service.NewTokenService("secret")
	h := NewAuthHandler(&stubAuthService{}, tokens, 5*time.Minute, time.Hour)

	token, err := tokens.IssueSession("user_1", time.Hour)
	if err != nil {
		t.Fatalf("IssueSession returned error: %v", err)
	}

	c, rec := newTestContext(http.MethodGet, "/me", "")
	c.Request().AddCookie(&http.Cookie{Name: middleware.AccessCookie, Value: token})

	if err := h.Me(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
}

func TestAuthHandler_Me_ExpiredToken(t *testing.T) {
	tokens := service.NewTokenService("secret")
	h := NewAuthHandler(&stubAuthService{}, tokens, 5*time.Minute, time.Hour)

	token, err := tokens.IssueSession("user_1", -time.Minute)
	if err != nil {
		t.Fatalf("IssueSession returned error: %v", err)
	}

	c, _ := newTestContext(http.MethodGet, "/me", "")
	c.Request().AddCookie(&http.Cookie{Name: middleware.AccessCookie, Value: token})

	if err := h.Me(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthHandler_Me_NoCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, service.NewTokenService("secret"), 5*time.Minute, time.Hour)

	c, _ := newTestContext(http.MethodGet, "/me", "")
	if err := h.Me(c); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
}
