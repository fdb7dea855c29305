package sessions

import (
	"github.com/labstack/echo/v4"

	"github.com/openshelf/openshelf/pkg/config"
)

// RegisterRoutes registers all auth and session routes and returns the
// session service so the rest of the server can build middleware on it.
func RegisterRoutes(e *echo.Echo, cfg *config.Config) *Service {
	sessionService := NewService(cfg)

	h := &handler{
		sessionService: sessionService,
		tokenExpiry:    cfg.TokenExpiry,
	}

	authMiddleware := NewMiddleware(sessionService)

	auth := e.Group("/auth")
	auth.POST("/login", h.login)
	auth.POST("/logout", h.logout)

	sessionsGroup := e.Group("/sessions")
	sessionsGroup.Use(authMiddleware.Authenticate)
	sessionsGroup.GET("", h.listSessions)
	sessionsGroup.GET("/:id", h.retrieveSession)

	principals := e.Group("/principals")
	principals.Use(authMiddleware.Authenticate)
	principals.GET("/:name", h.retrievePrincipal)

	return sessionService
}
