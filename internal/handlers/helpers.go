package handlers

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mdanilova/boutique/internal/events"
	"github.com/mdanilova/boutique/internal/logging"
	"github.com/mdanilova/boutique/internal/session"
)

// viewData builds the common template payload. Username is present on every
// page so the nav can reflect the session.
func viewData(c echo.Context, extra map[string]interface{}) map[string]interface{} {
	data := map[string]interface{}{
		"Username": "",
		"Query":    "",
	}
	if id, ok := session.CurrentIdentity(c); ok {
		data["Username"] = id.Username
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// publish sends an event when a producer is configured. Delivery problems are
// logged and swallowed: the store already committed, the page must still load.
func publish(c echo.Context, producer *events.Producer, topic, key string, event map[string]interface{}) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := producer.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "topic", topic, "error", err)
	}
}
