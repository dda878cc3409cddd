package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// RequireAuth guards the cart routes. An anonymous request is sent to the login
// page instead of getting an error response.
func (m *Manager) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := m.FromRequest(c)
		if err != nil {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		c.Set(identityKey, id)
		return next(c)
	}
}

// WithIdentity resolves the session when present but lets anonymous requests
// through, so public pages can still greet a logged-in user.
func (m *Manager) WithIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if id, err := m.FromRequest(c); err == nil {
			c.Set(identityKey, id)
		}
		return next(c)
	}
}

// CurrentIdentity returns the identity set by RequireAuth or WithIdentity.
func CurrentIdentity(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}
