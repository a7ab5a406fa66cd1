package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrigo/storefront/internal/api/render"
	"github.com/agrigo/storefront/internal/core/domain"
	"github.com/agrigo/storefront/internal/core/ports"
)

// DashboardHandler is the farmer dashboard view controller: entry probe,
// tri-pane navigation, product CRUD, and order status transitions.
type DashboardHandler struct {
	dashboard  ports.DashboardService
	backendURL string
}

func NewDashboardHandler(dashboard ports.DashboardService, backendURL string) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, backendURL: backendURL}
}

// Dashboard renders the active pane. On entry the backend is probed first; a
// connectivity fault replaces every pane with the same diagnostic instead of
// three separately broken views.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	sid, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.dashboard.Probe(c.Request().Context(), session); err != nil {
		return h.connectivityPage(c, session)
	}

	data, err := h.dashboard.Overview(c.Request().Context(), sid, session)
	if err != nil {
		if errors.Is(err, domain.ErrBackendUnreachable) {
			return h.connectivityPage(c, session)
		}
		return err
	}

	return h.renderDashboard(c, session, data, activePane(c), render.ProductFormValues{}, "")
}

// EditProduct loads the product into the form and records it as the edit
// target, so the next save updates instead of creating.
func (h *DashboardHandler) EditProduct(c echo.Context) error {
	sid, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	product, err := h.dashboard.BeginEdit(c.Request().Context(), sid, session, c.Param("id"))
	if err != nil {
		return err
	}
	data, err := h.dashboard.Overview(c.Request().Context(), sid, session)
	if err != nil {
		return err
	}

	form := render.ProductFormValues{
		EditingID:   product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Unit:        product.Unit,
		Description: product.Description,
		IsAvailable: product.IsAvailable,
	}
	return h.renderDashboard(c, session, data, "products", form, "")
}

// CancelEdit clears the edit target and returns to a blank form.
func (h *DashboardHandler) CancelEdit(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	h.dashboard.CancelEdit(sid)
	return c.Redirect(http.StatusSeeOther, "/dashboard?pane=products")
}

// SaveProduct handles the single create/edit form. Validation failures are
// reported inline and never reach the backend; success resets the form,
// clears the edit target, and reloads the product list.
func (h *DashboardHandler) SaveProduct(c echo.Context) error {
	sid, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var form productForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		data, loadErr := h.dashboard.Overview(c.Request().Context(), sid, session)
		if loadErr != nil {
			return loadErr
		}
		values := render.ProductFormValues{
			Name: form.Name, Category: form.Category, Price: form.Price,
			Quantity: form.Quantity, Unit: form.Unit, Description: form.Description,
			IsAvailable: form.IsAvailable,
		}
		return h.renderDashboard(c, session, data, "products", values, err.Error())
	}

	err = h.dashboard.SaveProduct(c.Request().Context(), sid, session, ports.ProductInput{
		Name:        form.Name,
		Category:    form.Category,
		Price:       form.Price,
		Quantity:    form.Quantity,
		Unit:        form.Unit,
		Description: form.Description,
		IsAvailable: form.IsAvailable,
	})
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/dashboard?pane=products")
}

func (h *DashboardHandler) DeleteProduct(c echo.Context) error {
	sid, session, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.dashboard.DeleteProduct(c.Request().Context(), sid, session, c.Param("id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard?pane=products")
}

// UpdateOrderStatus applies the transition and renders the orders pane from
// the freshly reloaded overview the service hands back, so the order table
// and the metrics panel move together.
func (h *DashboardHandler) UpdateOrderStatus(c echo.Context) error {
	sid, session, err := ctxSession(c)
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

	data, err := h.dashboard.UpdateOrderStatus(c.Request().Context(), sid, session, c.Param("id"), domain.OrderStatus(form.Status))
	if err != nil {
		return err
	}

	return h.renderDashboard(c, session, data, "orders", render.ProductFormValues{}, "")
}

func (h *DashboardHandler) renderDashboard(c echo.Context, session *domain.Session, data *ports.DashboardData, pane string, form render.ProductFormValues, formError string) error {
	view := render.DashboardView{
		FarmerName:   session.User.Name,
		ActivePane:   pane,
		Metrics:      render.MetricsPanel(data.Metrics),
		RecentOrders: render.RecentOrderRows(data.Metrics.RecentOrders),
		ProductRows:  render.ProductRows(data.Products),
		OrderRows:    render.FarmerOrderRows(data.Orders),
		ProductForm:  form,
		FormError:    formError,
	}
	return page(c, render.Page{Title: "Farmer Dashboard", Content: render.DashboardContent(view)})
}

func (h *DashboardHandler) connectivityPage(c echo.Context, session *domain.Session) error {
	notice := render.ConnectivityNotice(h.backendURL)
	content := render.ConnectivityContent(session.User.Name, notice)
	return pageWithError(c, http.StatusBadGateway, render.Page{Title: "Farmer Dashboard", Content: content})
}

func activePane(c echo.Context) string {
	switch c.QueryParam("pane") {
	case "products":
		return "products"
	case "orders":
		return "orders"
	default:
		return "dashboard"
	}
}
