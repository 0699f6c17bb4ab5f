package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lostpaws/petfinder-system/internal/core/domain"
	"github.com/lostpaws/petfinder-system/internal/core/service"
)

func sessionContext(cookie *http.Cookie) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestSession_ValidCookie(t *testing.T) {
	tokens := service.NewTokenService("secret")
	token, err := tokens.IssueSession("user_1", time.Hour)
	if err != nil {
		t.Fatalf("IssueSession returned error: %v", err)
	}

	c := sessionContext(&http.Cookie{Name: AccessCookie, Value: token})

	called := false
	next := func(c echo.Context) error {
		called = true
		return nil
	}
	if err := Session(tokens)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !called {
		t.Fatal("next handler not invoked")
	}

	userID, err := UserID(c)
	if err != nil {
		t.Fatalf("UserID returned error: %v", err)
	}
	if userID != "user_1" {
		t.Fatalf("user id %q, want user_1", userID)
	}
}

func TestSession_MissingCookie(t *testing.T) {
	tokens := service.NewTokenService("secret")
	c := sessionContext(nil)

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	}
	if err := Session(tokens)(next)(c); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
}

func TestSession_InvalidToken(t *testing.T) {
	tokens := service.NewTokenService("secret")
	c := sessionContext(&http.Cookie{Name: AccessCookie, Value: "garbage"})

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	}
	if err := Session(tokens)(next)(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestUserID_MissingClaims(t *testing.T) {
	c := sessionContext(nil)

	_, err := UserID(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
