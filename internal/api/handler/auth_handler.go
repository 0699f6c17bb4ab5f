package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lostpaws/petfinder-system/internal/api/middleware"
	"github.com/lostpaws/petfinder-system/internal/core/domain"
	"github.com/lostpaws/petfinder-system/internal/core/ports"
)

// AuthHandler handles registration, verification, and the session lifecycle.
type AuthHandler struct {
	authService ports.AuthService
	tokens      ports.TokenService
	accessTTL   time.Duration
	refreshTTL  time.Duration
}

func NewAuthHandler(authService ports.AuthService, tokens ports.TokenService, accessTTL, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
		accessTTL:   accessTTL,
		refreshTTL:  refreshTTL,
	}
}

// Register starts a registration: no account is created until the emailed
// verification link is followed.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  successResponse
// @Failure      422   {object}  successResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Name:     req.Name,
	}); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "verification mail sent"})
}

// Verify completes a registration from the emailed token. Replaying an
// already-used link returns success without creating a duplicate.
//
// @Summary      Verify a registration token
// @Tags         auth
// @Produce      json
// @Param        token  query     string  true  "Verification token"
// @Success      200    {object}  successResponse
// @Failure      401    {object}  successResponse
// @Router       /verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return domain.ErrNoToken
	}

	if err := h.authService.Verify(c.Request().Context(), token); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "email verified"})
}

// Login authenticates and sets the http-only session cookies.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  successResponse
// @Failure      403   {object}  successResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	pair, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	setSessionCookie(c, middleware.AccessCookie, pair.AccessToken, h.accessTTL)
	setSessionCookie(c, middleware.RefreshCookie, pair.RefreshToken, h.refreshTTL)

	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "logged in"})
}

// Refresh mints a new access cookie from the refresh cookie. The refresh
// cookie itself is left as is.
//
// @Summary      Refresh the access token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  successResponse
// @Failure      401  {object}  successResponse
// @Router       /refresh [get]
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(middleware.RefreshCookie)
	if err != nil || cookie.Value == "" {
		return domain.ErrNoToken
	}

	access, err := h.authService.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		return err
	}

	setSessionCookie(c, middleware.AccessCookie, access, h.accessTTL)
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "access token refreshed"})
}

// Logout clears both session cookies. Succeeds even when no session existed.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	clearSessionCookie(c, middleware.AccessCookie)
	clearSessionCookie(c, middleware.RefreshCookie)
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "logged out"})
}

// Me reports whether the caller holds a valid access token.
//
// @Summary      Check the current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  successResponse
// @Failure      401  {object}  successResponse
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	cookie, err := c.Cookie(middleware.AccessCookie)
	if err != nil || cookie.Value == "" {
		return domain.ErrNoToken
	}
	if _, err := h.tokens.VerifySession(cookie.Value); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

func setSessionCookie(c echo.Context, name, value string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
