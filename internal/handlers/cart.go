package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mdanilova/boutique/internal/events"
	"github.com/mdanilova/boutique/internal/logging"
	"github.com/mdanilova/boutique/internal/service/cart"
	"github.com/mdanilova/boutique/internal/session"
)

// CartHandler serves the authenticated cart routes. The session middleware has
// already redirected anonymous requests to /login before these run.
type CartHandler struct {
	Cart     *cart.Service
	Producer *events.Producer
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()

	id, ok := session.CurrentIdentity(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	items, err := h.Cart.List(ctx, id.UserID)
	if err != nil {
		logging.FromContext(ctx).Error("get cart error", "user_id", id.UserID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.Render(http.StatusOK, "cart.html", viewData(c, map[string]interface{}{
		"Cart": items,
	}))
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()

	id, ok := session.CurrentIdentity(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	productID, err := strconv.ParseUint(c.FormValue("product_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	if err := h.Cart.Add(ctx, id.UserID, uint(productID)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	publish(c, h.Producer, events.TopicCartEvents, fmt.Sprint(id.UserID), map[string]interface{}{
		"type":       "cart_item_added",
		"user_id":    id.UserID,
		"product_id": productID,
	})

	return c.Redirect(http.StatusSeeOther, "/catalog")
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()

	id, ok := session.CurrentIdentity(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	itemID, err := strconv.ParseUint(c.FormValue("cid"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cid")
	}

	if err := h.Cart.Remove(ctx, id.UserID, uint(itemID)); err != nil {
		logging.FromContext(ctx).Error("remove from cart error", "user_id", id.UserID, "cid", itemID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	publish(c, h.Producer, events.TopicCartEvents, fmt.Sprint(id.UserID), map[string]interface{}{
		"type":    "cart_item_removed",
		"user_id": id.UserID,
		"cid":     itemID,
	})

	return c.Redirect(http.StatusSeeOther, "/cart")
}
