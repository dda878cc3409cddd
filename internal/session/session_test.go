package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSignParseRoundTrip(t *testing.T) {
	m := &Manager{Secret: []byte("test-secret")}

	signed, exp, err := m.Sign(Identity{UserID: 7, Username: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	require.False(t, exp.IsZero())

	id, err := m.Parse(signed)
	require.NoError(t, err)
	require.Equal(t, uint(7), id.UserID)
	require.Equal(t, "alice", id.Username)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	m := &Manager{Secret: []byte("test-secret")}
	other := &Manager{Secret: []byte("other-secret")}

	signed, _, err := m.Sign(Identity{UserID: 7, Username: "alice"})
	require.NoError(t, err)

	_, err = other.Parse(signed)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestFromRequestWithoutCookie(t *testing.T) {
	m := &Manager{Secret: []byte("test-secret")}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, err := m.FromRequest(c)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	m := &Manager{Secret: []byte("test-secret")}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := m.RequireAuth(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	require.NoError(t, h(c))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestRequireAuthPassesIdentity(t *testing.T) {
	m := &Manager{Secret: []byte("test-secret")}

	signed, exp, err := m.Sign(Identity{UserID: 3, Username: "bob"})
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(CreateCookie(CookieName, signed, "/", exp))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := m.RequireAuth(func(c echo.Context) error {
		id, ok := CurrentIdentity(c)
		require.True(t, ok)
		require.Equal(t, uint(3), id.UserID)
		require.Equal(t, "bob", id.Username)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	require.Equal(t, http.StatusOK, rec.Code)
}
