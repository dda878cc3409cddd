package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mdanilova/boutique/internal/events"
	"github.com/mdanilova/boutique/internal/logging"
	"github.com/mdanilova/boutique/internal/service/identity"
	"github.com/mdanilova/boutique/internal/session"
)

type AuthHandler struct {
	Identity *identity.Service
	Sessions *session.Manager
	Producer *events.Producer
}

func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", viewData(c, nil))
}

// Register creates the account and sends the user to the login form. Failures
// re-render the form with a message instead of erroring out.
func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	username := c.FormValue("user")
	password := c.FormValue("password")

	if err := h.Identity.Register(ctx, username, password); err != nil {
		switch {
		case errors.Is(err, identity.ErrValidation):
			return c.Render(http.StatusOK, "register.html", viewData(c, map[string]interface{}{
				"Error": "enter your name and password",
			}))
		case errors.Is(err, identity.ErrConflict):
			return c.Render(http.StatusOK, "register.html", viewData(c, map[string]interface{}{
				"Error": "this user already exists",
			}))
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	publish(c, h.Producer, events.TopicUserEvents, username, map[string]interface{}{
		"type":     "user_registered",
		"username": username,
	})

	return c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", viewData(c, nil))
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	username := c.FormValue("user")
	password := c.FormValue("password")

	id, err := h.Identity.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, identity.ErrAuthentication) {
			return c.Render(http.StatusOK, "login.html", viewData(c, map[string]interface{}{
				"Error": "incorrect data",
			}))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	if err := h.Sessions.Establish(c, id); err != nil {
		logging.FromContext(ctx).Error("session sign error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	publish(c, h.Producer, events.TopicUserEvents, fmt.Sprint(id.UserID), map[string]interface{}{
		"type":     "user_logged_in",
		"user_id":  id.UserID,
		"username": id.Username,
	})

	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout drops the session cookie. It never fails, logged in or not.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.Sessions.Clear(c)
	return c.Redirect(http.StatusSeeOther, "/")
}
