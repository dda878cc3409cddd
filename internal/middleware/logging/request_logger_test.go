package loggingmw

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"

	"github.com/mdanilova/boutique/internal/logging"
)

func newTestApp(buf *bytes.Buffer) *echo.Echo {
	base := slog.New(slog.NewJSONHandler(buf, nil))

	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(base))
	return e
}

func TestRequestLoggerPlumbsContextLogger(t *testing.T) {
	var buf bytes.Buffer
	e := newTestApp(&buf)

	e.GET("/ping", func(c echo.Context) error {
		logging.FromContext(c.Request().Context()).Info("inside handler")
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	out := buf.String()

	// the handler's log line carries the request-scoped attributes
	require.Contains(t, out, "inside handler")
	require.Contains(t, out, `"method":"GET"`)
	require.Contains(t, out, `"path":"/ping"`)
	require.Contains(t, out, `"request_id"`)

	rid := rec.Header().Get(echo.HeaderXRequestID)
	require.NotEmpty(t, rid)
	require.Contains(t, out, rid)

	require.Contains(t, out, "request completed")
	require.Contains(t, out, `"status":200`)
}

func TestRequestLoggerWarnsOnClientError(t *testing.T) {
	var buf bytes.Buffer
	e := newTestApp(&buf)

	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	out := buf.String()
	require.Contains(t, out, "request completed")
	require.Contains(t, out, `"status":404`)
	require.Contains(t, out, `"level":"WARN"`)
}
