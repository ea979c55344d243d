package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitpro/fitpro-api/internal/api/metrics"
	"github.com/fitpro/fitpro-api/internal/core/domain"
	"github.com/fitpro/fitpro-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account and establishes its session.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, session, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, authResponse{Token: token, Session: toSessionResponse(session)})
}

// Login authenticates an account and establishes its session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, Session: toSessionResponse(session)})
}

// Logout clears the active session. Idempotent.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Session returns the active session, or 204 when logged out.
//
// @Summary      Get the active session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Success      204
// @Router       /v1/auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	session := h.authService.ActiveSession()
	if session == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, toSessionResponse(session))
}

// ForgotPassword acknowledges a password-reset request. No email is sent;
// only the flow is implemented.
//
// @Summary      Request a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Account email"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	// Always accepted: whether the email exists is deliberately not revealed.
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "password reset link sent"})
}

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		AccountID: s.AccountID,
		Email:     s.Email,
		Name:      s.Name,
		Avatar:    s.Avatar,
	}
}
