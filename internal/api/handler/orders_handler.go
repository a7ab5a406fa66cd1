package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrigo/storefront/internal/api/render"
	"github.com/agrigo/storefront/internal/core/domain"
	"github.com/agrigo/storefront/internal/core/ports"
)

// OrdersHandler serves the orders view for both roles.
type OrdersHandler struct {
	orders ports.OrderService
}

func NewOrdersHandler(orders ports.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// Orders renders the viewer's role-scoped order list as cards.
func (h *OrdersHandler) Orders(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	orders, err := h.orders.ListForViewer(c.Request().Context(), session)
	if err != nil {
		return err
	}

	content := render.OrdersContent(render.OrderCards(orders, session.User.Role))
	return page(c, render.Page{Title: "My Orders", Content: content})
}

// Order renders a single order's detail.
func (h *OrdersHandler) Order(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	order, err := h.orders.Detail(c.Request().Context(), session, c.Param("id"))
	if err != nil {
		return err
	}

	content := render.OrdersContent(render.OrderCards([]domain.Order{*order}, session.User.Role))
	return page(c, render.Page{Title: "Order Detail", Content: content})
}

// UpdateStatus applies a status transition, then redirects back to the list
// so the next render reflects the fresh backend state.
func (h *OrdersHandler) UpdateStatus(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var form statusForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.orders.UpdateStatus(c.Request().Context(), session, c.Param("id"), domain.OrderStatus(form.Status)); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/orders")
}
