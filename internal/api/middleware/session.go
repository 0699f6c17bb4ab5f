package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lostpaws/petfinder-system/internal/core/domain"
	"github.com/lostpaws/petfinder-system/internal/core/ports"
)

// AccessCookie and RefreshCookie are the http-only cookies carrying the
// session tokens.
const (
	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"
)

// Session validates the access-token cookie and injects the subject user id
// into the request context under "user_id".
func Session(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(AccessCookie)
			if err != nil || cookie.Value == "" {
				return domain.ErrNoToken
			}

			userID, err := tokens.VerifySession(cookie.Value)
			if err != nil {
				return domain.ErrInvalidToken
			}

			c.Set("user_id", userID)
			return next(c)
		}
	}
}

// UserID extracts the authenticated user id injected by Session. Presence
// proves the middleware ran; an empty id means a route was wired without it.
func UserID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
