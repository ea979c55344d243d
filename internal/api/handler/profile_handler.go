package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitpro/fitpro-api/internal/api/metrics"
	"github.com/fitpro/fitpro-api/internal/core/domain"
	"github.com/fitpro/fitpro-api/internal/core/ports"
)

// ProfileHandler handles HTTP requests for profile records and their
// derived health metrics.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /v1/profiles/:id.
//
// @Summary      Get a profile by account id
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account identifier"
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/profiles/{id} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	profile, err := h.service.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Save handles PUT /v1/profiles/:id. The body is a partial update; the
// response carries the full merged record with freshly derived metrics.
//
// @Summary      Save a profile (partial update, metrics recomputed)
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Account identifier"
// @Param        body  body      saveProfileRequest  true  "Fields to update"
// @Success      200   {object}  profileResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/profiles/{id} [put]
func (h *ProfileHandler) Save(c echo.Context) error {
	var req saveProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	profile, err := h.service.SaveProfile(c.Request().Context(), c.Param("id"), domain.ProfileUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Bio:      req.Bio,
		Phone:    req.Phone,
		Location: req.Location,
		Age:      req.Age,
		Weight:   req.Weight,
		Height:   req.Height,
	})
	if err != nil {
		return err
	}

	if profile.Weight > 0 && profile.Height > 0 {
		metrics.ProfileSavesTotal.WithLabelValues("computed").Inc()
		metrics.BMIClassificationsTotal.WithLabelValues(profile.BMIStatus).Inc()
	} else {
		metrics.ProfileSavesTotal.WithLabelValues("skipped").Inc()
	}

	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		ID:            p.ID,
		Name:          p.Name,
		Email:         p.Email,
		Bio:           p.Bio,
		Phone:         p.Phone,
		Location:      p.Location,
		Age:           p.Age,
		Weight:        p.Weight,
		Height:        p.Height,
		BMI:           p.BMI,
		BMIStatus:     p.BMIStatus,
		DailyCalories: p.DailyCalories,
		UpdatedAt:     p.UpdatedAt,
	}
}
