package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lostpaws/petfinder-system/internal/api/middleware"
	"github.com/lostpaws/petfinder-system/internal/core/ports"
)

// AdHandler handles the ad catalog endpoints.
type AdHandler struct {
	service ports.AdService
}

func NewAdHandler(service ports.AdService) *AdHandler {
	return &AdHandler{service: service}
}

// Create handles POST /ads/create. The listing is attributed to the
// authenticated user.
//
// @Summary      Create a lost/found listing
// @Tags         ads
// @Accept       json
// @Produce      json
// @Param        body  body      createAdRequest  true  "Listing details"
// @Success      200   {object}  createAdResponse
// @Failure      400   {object}  successResponse
// @Failure      401   {object}  successResponse
// @Router       /ads/create [post]
func (h *AdHandler) Create(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req createAdRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	adID, err := h.service.Create(c.Request().Context(), ports.CreateAdInput{
		UserID:       userID,
		Status:       req.Status,
		Type:         req.Type,
		Breed:        req.Breed,
		Color:        req.Color,
		Size:         req.Size,
		Distincts:    req.Distincts,
		Nickname:     req.Nickname,
		Danger:       req.Danger,
		Location:     req.Location,
		GeoLocation:  req.GeoLocation,
		Time:         req.Time,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Extras:       req.Extras,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, createAdResponse{Success: true, AdID: adID})
}

// List handles POST /ads/get: equality filters, newest first, capped at 50.
//
// @Summary      List ads
// @Tags         ads
// @Accept       json
// @Produce      json
// @Param        body  body      listAdsRequest  true  "Optional filters"
// @Success      200   {object}  listAdsResponse
// @Failure      500   {object}  successResponse
// @Router       /ads/get [post]
func (h *AdHandler) List(c echo.Context) error {
	var req listAdsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ads, err := h.service.List(c.Request().Context(), ports.ListAdsInput{
		Status: req.Status,
		Type:   req.Type,
		Breed:  req.Breed,
		Size:   req.Size,
		Danger: req.Danger,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listAdsResponse{Success: true, Ads: ads})
}
