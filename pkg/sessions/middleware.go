package sessions

import (
	"github.com/labstack/echo/v4"

	"github.com/openshelf/openshelf/pkg/errcodes"
)

// Context keys for storing principal data.
const (
	ContextKeyPrincipalID = "principal_id"
	ContextKeyName        = "principal_name"
	ContextKeySession     = "session"
)

// Middleware provides authentication middleware.
type Middleware struct {
	sessionService *Service
}

// NewMiddleware creates a new sessions middleware.
func NewMiddleware(sessionService *Service) *Middleware {
	return &Middleware{
		sessionService: sessionService,
	}
}

// Authenticate extracts the session token from the cookie, verifies its
// signature, and checks that a live session exists for it. It stores the
// principal info and session in the echo context. Unauthenticated requests
// get a 401.
func (m *Middleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(CookieName)
		if err != nil || cookie.Value == "" {
			return errcodes.Unauthorized("Authentication required")
		}

		claims, err := m.sessionService.ValidateToken(cookie.Value)
		if err != nil {
			return errcodes.Unauthorized("Invalid or expired token")
		}

		session, err := m.sessionService.FindSession(cookie.Value)
		if err != nil || !session.Active() {
			return errcodes.Unauthorized("Session not found or ended")
		}

		c.Set(ContextKeyPrincipalID, claims.PrincipalID)
		c.Set(ContextKeyName, claims.Name)
		c.Set(ContextKeySession, session)

		return next(c)
	}
}
