package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mdanilova/boutique/internal/handlers"
	"github.com/mdanilova/boutique/internal/session"
)

type Deps struct {
	Sessions       *session.Manager
	AuthHandler    *handlers.AuthHandler
	CatalogHandler *handlers.CatalogHandler
	CartHandler    *handlers.CartHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	public := e.Group("", d.Sessions.WithIdentity)

	public.GET("/", d.CatalogHandler.Landing)
	public.GET("/catalog", d.CatalogHandler.Catalogue)
	public.GET("/search", d.CatalogHandler.Search)
	public.GET("/about", d.CatalogHandler.About)
	public.GET("/contacts", d.CatalogHandler.Contacts)

	public.GET("/register", d.AuthHandler.RegisterPage)
	public.POST("/register", d.AuthHandler.Register)
	public.GET("/login", d.AuthHandler.LoginPage)
	public.POST("/login", d.AuthHandler.Login)
	public.GET("/logout", d.AuthHandler.Logout)

	private := e.Group("", d.Sessions.RequireAuth)

	private.GET("/cart", d.CartHandler.GetCart)
	private.POST("/add_to_cart", d.CartHandler.AddToCart)
	private.POST("/remove_from_cart", d.CartHandler.RemoveFromCart)
}
