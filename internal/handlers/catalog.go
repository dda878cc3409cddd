package handlers

import (
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/mdanilova/boutique/internal/logging"
	"github.com/mdanilova/boutique/internal/models"
	"github.com/mdanilova/boutique/internal/service/catalog"
	"github.com/mdanilova/boutique/internal/service/search"
)

type CatalogHandler struct {
	Catalog *catalog.Service

	// ES and Index switch /search over to Elasticsearch when a cluster is
	// configured; otherwise the store's LIKE query serves the same contract.
	ES    *elasticsearch.Client
	Index string
}

func (h *CatalogHandler) Landing(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.Catalog.ListAll(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("list products error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.Render(http.StatusOK, "index.html", viewData(c, map[string]interface{}{
		"Products": products,
	}))
}

func (h *CatalogHandler) Catalogue(c echo.Context) error {
	ctx := c.Request().Context()

	grouped, err := h.Catalog.GroupByCategory(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("group products error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.Render(http.StatusOK, "catalog.html", viewData(c, map[string]interface{}{
		"Grouped": grouped,
	}))
}

func (h *CatalogHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()
	query := strings.TrimSpace(c.QueryParam("q"))

	products, err := h.searchProducts(c, query)
	if err != nil {
		logging.FromContext(ctx).Error("search error", "query", query, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.Render(http.StatusOK, "search.html", viewData(c, map[string]interface{}{
		"Query":    query,
		"Products": products,
	}))
}

func (h *CatalogHandler) searchProducts(c echo.Context, query string) ([]models.Product, error) {
	ctx := c.Request().Context()

	if h.ES != nil && query != "" {
		return search.Search(ctx, h.ES, h.Index, query)
	}
	return h.Catalog.Search(ctx, query)
}

func (h *CatalogHandler) About(c echo.Context) error {
	return c.Render(http.StatusOK, "about.html", viewData(c, nil))
}

func (h *CatalogHandler) Contacts(c echo.Context) error {
	return c.Render(http.StatusOK, "contacts.html", viewData(c, nil))
}
