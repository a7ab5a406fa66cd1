package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/agrigo/storefront/internal/api/render"
	"github.com/agrigo/storefront/internal/core/ports"
)

// CatalogHandler serves the landing page and the consumer product views.
type CatalogHandler struct {
	catalog ports.CatalogService
	logger  zerolog.Logger
}

func NewCatalogHandler(catalog ports.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

// Home renders the landing page. Featured products are decoration: a failed
// fetch logs and renders an empty section rather than breaking the page.
func (h *CatalogHandler) Home(c echo.Context) error {
	featured, err := h.catalog.Featured(c.Request().Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("featured products unavailable")
		featured = nil
	}
	content := render.HomeContent(render.ProductCards(featured, ""))
	return page(c, render.Page{Title: "Farm Fresh Marketplace", Content: content})
}

// Products renders the authenticated catalog as cards. Add-to-cart appears
// only for consumers.
func (h *CatalogHandler) Products(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	products, err := h.catalog.List(c.Request().Context(), session)
	if err != nil {
		return err
	}

	content := render.CatalogContent(render.ProductCards(products, session.User.Role))
	return page(c, render.Page{Title: "Products", Content: content})
}

// AddToCart sends the cart mutation and returns to the catalog.
func (h *CatalogHandler) AddToCart(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var form cartForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.catalog.AddToCart(c.Request().Context(), session, form.ProductID, form.Quantity); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/products")
}
