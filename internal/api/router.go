package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/fitpro/fitpro-api/internal/api/handler"
	"github.com/fitpro/fitpro-api/internal/api/middleware"
	"github.com/fitpro/fitpro-api/internal/core/ports"
	"github.com/fitpro/fitpro-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The readiness checks vary with the configured storage backend, so the
// caller supplies them.
func NewRouter(
	authService ports.AuthService,
	profileService ports.ProfileService,
	jwtSecret string,
	checks map[string]handlers.DependencyCheck,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fitpro"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	sessionRequired := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)
	e.GET("/v1/auth/session", authHandler.Session)
	e.POST("/v1/auth/forgot-password", authHandler.ForgotPassword)
	e.POST("/v1/auth/logout", authHandler.Logout, sessionRequired)

	// --- Profile routes (session required; accounts only see themselves) ---
	profiles := e.Group("/v1/profiles", sessionRequired, middleware.Ownership("id"))
	profiles.GET("/:id", profileHandler.Get)
	profiles.PUT("/:id", profileHandler.Save)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
