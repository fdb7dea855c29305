package sessions

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/openshelf/openshelf/pkg/errcodes"
	"github.com/openshelf/openshelf/pkg/models"
)

// CookieName is the name of the session cookie.
const CookieName = "openshelf_session"

type handler struct {
	sessionService *Service
	tokenExpiry    time.Duration
}

// login verifies the named principal's password, signs a session token,
// registers the session under that token, and sets the cookie.
func (h *handler) login(c echo.Context) error {
	ctx := c.Request().Context()

	params := LoginPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	principal, err := h.sessionService.FindPrincipalByName(params.Name)
	if err != nil {
		return errcodes.Unauthorized("Invalid name or password")
	}

	ok, err := h.sessionService.Login(ctx, principal.ID, params.Password)
	if err != nil {
		return errors.WithStack(err)
	}
	if !ok {
		return errcodes.Unauthorized("Invalid name or password")
	}

	token, err := h.sessionService.GenerateToken(principal)
	if err != nil {
		return errors.WithStack(err)
	}

	h.sessionService.CreateSession(token)

	c.SetCookie(h.sessionCookie(c, token, int(h.tokenExpiry.Seconds())))

	return c.JSON(http.StatusOK, LoginResponse{
		PrincipalID: principal.ID,
		Name:        principal.Name,
	})
}

// logout ends the cookie's session and clears the cookie.
func (h *handler) logout(c echo.Context) error {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return errcodes.Unauthorized("Authentication required")
	}

	if err := h.sessionService.EndSession(cookie.Value); err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie(c, "", -1))

	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (h *handler) listSessions(c echo.Context) error {
	params := ListSessionsQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	var sessions []*models.Session
	if params.Active {
		sessions = h.sessionService.ListActiveSessions()
	} else {
		sessions = h.sessionService.ListSessions()
	}

	resp := struct {
		Sessions []*models.Session `json:"sessions"`
		Total    int               `json:"total"`
	}{sessions, len(sessions)}

	return c.JSON(http.StatusOK, resp)
}

func (h *handler) retrieveSession(c echo.Context) error {
	session, err := h.sessionService.FindSession(c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, session)
}

func (h *handler) retrievePrincipal(c echo.Context) error {
	principal, err := h.sessionService.FindPrincipalByName(c.Param("name"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, principal)
}

func (h *handler) sessionCookie(c echo.Context, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.Request().TLS != nil || c.Request().Header.Get("X-Forwarded-Proto") == "https",
		SameSite: http.SameSiteLaxMode,
	}
}
