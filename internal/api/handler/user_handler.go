package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lostpaws/petfinder-system/internal/api/middleware"
	"github.com/lostpaws/petfinder-system/internal/core/ports"
)

// UserHandler handles the profile endpoints. All routes sit behind the
// session middleware.
type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// Get returns the public projection of the authenticated user.
//
// @Summary      Get the current user's profile
// @Tags         user
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  successResponse
// @Failure      404  {object}  successResponse
// @Router       /user [get]
func (h *UserHandler) Get(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	profile, err := h.authService.GetUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		User: userProfile{
			Name:  profile.Name,
			Date:  profile.Date,
			Email: profile.Email,
			Phone: profile.Phone,
		},
	})
}

// UpdateName handles PUT /user/name.
//
// @Summary      Update display name
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      updateNameRequest  true  "New name"
// @Success      200   {object}  successResponse
// @Router       /user/name [put]
func (h *UserHandler) UpdateName(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req updateNameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.authService.UpdateName(c.Request().Context(), userID, req.Name); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// UpdateEmail handles PUT /user/email. Fails with a conflict when the address
// belongs to another account.
//
// @Summary      Update email
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      updateEmailRequest  true  "New email"
// @Success      200   {object}  successResponse
// @Failure      409   {object}  successResponse
// @Router       /user/email [put]
func (h *UserHandler) UpdateEmail(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req updateEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.authService.UpdateEmail(c.Request().Context(), userID, req.Email); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// UpdatePhone handles PUT /user/phone.
//
// @Summary      Update phone number
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      updatePhoneRequest  true  "New phone"
// @Success      200   {object}  successResponse
// @Router       /user/phone [put]
func (h *UserHandler) UpdatePhone(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req updatePhoneRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.authService.UpdatePhone(c.Request().Context(), userID, req.Phone); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// UpdatePassword handles PUT /user/password. The current password is checked
// before the new one is stored.
//
// @Summary      Update password
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      updatePasswordRequest  true  "Current and new password"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  successResponse
// @Router       /user/password [put]
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.authService.UpdatePassword(c.Request().Context(), userID, req.CurPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
