package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const CookieName = "session"

const TTL = 7 * 24 * time.Hour

var ErrNoSession = errors.New("no session")

// Identity is what a successful login puts into the session cookie and what
// authenticated handlers read back out of it.
type Identity struct {
	UserID   uint
	Username string
}

type Claims struct {
	Username string `json:"name"`
	jwt.RegisteredClaims
}

type Manager struct {
	Secret []byte
}

func CreateCookie(name, value, path string, expTime time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  expTime,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (m *Manager) Sign(id Identity) (string, time.Time, error) {
	exp := time.Now().Add(TTL)
	claims := Claims{
		Username: id.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(id.UserID),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func (m *Manager) Parse(raw string) (Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signature method: %v", t.Header["alg"])
		}
		return m.Secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrNoSession
	}

	var userID uint
	if _, err := fmt.Sscanf(claims.Subject, "%d", &userID); err != nil || userID == 0 {
		return Identity{}, ErrNoSession
	}

	return Identity{UserID: userID, Username: claims.Username}, nil
}

// Establish sets the session cookie after a successful login.
func (m *Manager) Establish(c echo.Context, id Identity) error {
	signed, exp, err := m.Sign(id)
	if err != nil {
		return err
	}
	c.SetCookie(CreateCookie(CookieName, signed, "/", exp))
	return nil
}

// Clear expires the session cookie unconditionally.
func (m *Manager) Clear(c echo.Context) {
	c.SetCookie(CreateCookie(CookieName, "", "/", time.Now().Add(-1*time.Hour)))
}

// FromRequest reads the identity out of the request cookie. ErrNoSession covers
// a missing cookie, a bad signature and an expired token alike.
func (m *Manager) FromRequest(c echo.Context) (Identity, error) {
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return Identity{}, ErrNoSession
	}
	return m.Parse(cookie.Value)
}
