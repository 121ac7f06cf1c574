package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NehaP156/linkedln-clone-gemini/internal/application/interfaces"
	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/entities"
	"github.com/NehaP156/linkedln-clone-gemini/internal/infrastructure"
)

// SessionCookieName matches the express-session default the frontend already
// expects.
const SessionCookieName = "connect.sid"

const (
	ctxUserIDKey   = "userID"
	ctxUsernameKey = "username"
	ctxSIDKey      = "sid"
)

// AuthGate admits requests whose session is authenticated and stashes the
// identity in the echo context; everything else is redirected to the login
// page with a reason flag. It is a pure guard, it mutates nothing.
type AuthGate struct {
	sessions interfaces.SessionManager
	cookies  *infrastructure.CookieService
}

func NewAuthGate(sessions interfaces.SessionManager, cookies *infrastructure.CookieService) *AuthGate {
	return &AuthGate{sessions: sessions, cookies: cookies}
}

// Middleware returns the echo middleware wrapping protected handlers.
func (g *AuthGate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, sid, ok := g.identify(c)
			if !ok {
				return c.Redirect(http.StatusFound, "/login?reason=auth_required")
			}

			c.Set(ctxUserIDKey, identity.UserID)
			c.Set(ctxUsernameKey, identity.Username)
			c.Set(ctxSIDKey, sid)
			return next(c)
		}
	}
}

// identify resolves the request's authenticated identity, if any. Expired and
// unknown sessions read as absent.
func (g *AuthGate) identify(c echo.Context) (entities.SessionPayload, string, bool) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return entities.SessionPayload{}, "", false
	}

	sid, err := g.cookies.Parse(cookie.Value)
	if err != nil {
		return entities.SessionPayload{}, "", false
	}

	session, err := g.sessions.Get(c.Request().Context(), sid)
	if err != nil {
		return entities.SessionPayload{}, "", false
	}

	identity, authenticated := session.Identity()
	if !authenticated {
		return entities.SessionPayload{}, "", false
	}

	return identity, sid, true
}
