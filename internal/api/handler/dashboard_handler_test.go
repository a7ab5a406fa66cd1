package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/agrigo/storefront/internal/core/domain"
	"github.com/agrigo/storefront/internal/core/ports"
)

type stubDashboardService struct {
	probeErr  error
	data      *ports.DashboardData
	updated   *ports.DashboardData
	saveErr   error
	saves     int
	cancelled string
}

func (s *stubDashboardService) Probe(_ context.Context, _ *domain.Session) error {
	return s.probeErr
}

func (s *stubDashboardService) Overview(_ context.Context, _ string, _ *domain.Session) (*ports.DashboardData, error) {
	return s.data, nil
}

func (s *stubDashboardService) BeginEdit(_ context.Context, _ string, _ *domain.Session, productID string) (*domain.Product, error) {
	for _, p := range s.data.Products {
		if p.ID == productID {
			return &p, nil
		}
	}
	return nil, domain.NewRemoteError(http.StatusNotFound, "product not found")
}

func (s *stubDashboardService) CancelEdit(sid string) {
	s.cancelled = sid
}

func (s *stubDashboardService) SaveProduct(_ context.Context, _ string, _ *domain.Session, _ ports.ProductInput) error {
	s.saves++
	return s.saveErr
}

func (s *stubDashboardService) DeleteProduct(_ context.Context, _ string, _ *domain.Session, _ string) error {
	return nil
}

func (s *stubDashboardService) UpdateOrderStatus(_ context.Context, _ string, _ *domain.Session, _ string, _ domain.OrderStatus) (*ports.DashboardData, error) {
	return s.updated, nil
}

func dashboardData() *ports.DashboardData {
	orders := []domain.Order{{ID: "o1", Status: domain.OrderPending, TotalAmount: 120}}
	return &ports.DashboardData{
		Metrics: ports.Metrics{
			TotalProducts: 1,
			PendingOrders: 1,
			RecentOrders:  orders,
		},
		Products: []domain.Product{{ID: "p1", Name: "Tomatoes", Category: "vegetables", Price: 40, Quantity: 10, Unit: "kg", Description: "ripe", IsAvailable: true}},
		Orders:   orders,
	}
}

func dashboardContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("sid", "sid-1")
	c.Set("session", &domain.Session{Token: "tok", User: domain.User{ID: "u1", Name: "Asha", Role: domain.RoleFarmer}})
	return c, rec
}

func TestDashboardRendersMetricsAndRecentOrders(t *testing.T) {
	svc := &stubDashboardService{data: dashboardData()}
	h := NewDashboardHandler(svc, "http://backend.test")

	c, rec := dashboardContext(t, "/dashboard")
	if err := h.Dashboard(c); err != nil {
		t.Fatalf("Dashboard returned %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Welcome, Asha", "Total Products", "Recent Orders", "o1"} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
	// Inactive panes do not render.
	if strings.Contains(body, "Add New Product") {
		t.Error("products pane rendered on the dashboard pane")
	}
}

func TestDashboardPaneSelection(t *testing.T) {
	svc := &stubDashboardService{data: dashboardData()}
	h := NewDashboardHandler(svc, "http://backend.test")

	c, rec := dashboardContext(t, "/dashboard?pane=products")
	if err := h.Dashboard(c); err != nil {
		t.Fatalf("Dashboard returned %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Add New Product") {
		t.Error("products pane not rendered")
	}
	if strings.Contains(body, "Recent Orders") {
		t.Error("dashboard pane rendered alongside the products pane")
	}
}

func TestDashboardProbeFailureShowsConnectivityNotice(t *testing.T) {
	svc := &stubDashboardService{probeErr: domain.ErrBackendUnreachable, data: dashboardData()}
	h := NewDashboardHandler(svc, "http://backend.test")

	c, rec := dashboardContext(t, "/dashboard")
	if err := h.Dashboard(c); err != nil {
		t.Fatalf("Dashboard returned %v", err)
	}

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Cannot connect to the backend server") {
		t.Error("connectivity diagnostic missing")
	}
	if !strings.Contains(body, "http://backend.test") {
		t.Error("backend address missing from the diagnostic")
	}
	// All three panes carry the same notice.
	if got := strings.Count(body, "Connection Error"); got != 3 {
		t.Errorf("notice rendered %d times, want 3", got)
	}
}

func TestEditProductPrefillsForm(t *testing.T) {
	svc := &stubDashboardService{data: dashboardData()}
	h := NewDashboardHandler(svc, "http://backend.test")

	c, rec := dashboardContext(t, "/dashboard/products/p1/edit")
	c.SetParamNames("id")
	c.SetParamValues("p1")
	if err := h.EditProduct(c); err != nil {
		t.Fatalf("EditProduct returned %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Edit Product") {
		t.Error("form not in edit mode")
	}
	if !strings.Contains(body, `value="Tomatoes"`) {
		t.Error("form not pre-filled with the product name")
	}
	if !strings.Contains(body, "/dashboard/products/cancel-edit") {
		t.Error("cancel action missing in edit mode")
	}
}

func TestSaveProductValidationFailureStaysLocal(t *testing.T) {
	svc := &stubDashboardService{data: dashboardData()}
	h := NewDashboardHandler(svc, "http://backend.test")

	e := echo.New()
	e.Validator = NewValidator()
	form := url.Values{
		"name":     {"Tomatoes"},
		"category": {"vegetables"},
		"price":    {"0"}, // must be greater than zero
		"quantity": {"10"},
		"unit":     {"kg"},
	}
	req := httptest.NewRequest(http.MethodPost, "/dashboard/products", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("sid", "sid-1")
	c.Set("session", &domain.Session{Token: "tok", User: domain.User{ID: "u1", Name: "Asha", Role: domain.RoleFarmer}})

	if err := h.SaveProduct(c); err != nil {
		t.Fatalf("SaveProduct returned %v", err)
	}
	if svc.saves != 0 {
		t.Error("service called despite a local validation failure")
	}
	body := rec.Body.String()
	// Form re-renders in the products pane with the message and typed values.
	if !strings.Contains(body, `value="Tomatoes"`) {
		t.Error("typed values not preserved")
	}
	if !strings.Contains(body, "alert-danger") {
		t.Error("validation message not shown")
	}
}

func TestSaveProductRedirectsToProductsPane(t *testing.T) {
	svc := &stubDashboardService{data: dashboardData()}
	h := NewDashboardHandler(svc, "http://backend.test")

	e := echo.New()
	e.Validator = NewValidator()
	form := url.Values{
		"name":        {"Tomatoes"},
		"category":    {"vegetables"},
		"price":       {"40"},
		"quantity":    {"10"},
		"unit":        {"kg"},
		"description": {"ripe"},
	}
	req := httptest.NewRequest(http.MethodPost, "/dashboard/products", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("sid", "sid-1")
	c.Set("session", &domain.Session{Token: "tok", User: domain.User{ID: "u1", Name: "Asha", Role: domain.RoleFarmer}})

	if err := h.SaveProduct(c); err != nil {
		t.Fatalf("SaveProduct returned %v", err)
	}
	if svc.saves != 1 {
		t.Errorf("SaveProduct called %d times, want 1", svc.saves)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/dashboard?pane=products" {
		t.Errorf("redirect to %q, want /dashboard?pane=products", loc)
	}
}

func TestUpdateOrderStatusRendersFreshOrdersPane(t *testing.T) {
	fresh := dashboardData()
	fresh.Orders[0].Status = domain.OrderCompleted
	fresh.Metrics.PendingOrders = 0
	svc := &stubDashboardService{data: dashboardData(), updated: fresh}
	h := NewDashboardHandler(svc, "http://backend.test")

	e := echo.New()
	e.Validator = NewValidator()
	form := url.Values{"status": {"completed"}}
	req := httptest.NewRequest(http.MethodPost, "/dashboard/orders/o1/status", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("o1")
	c.Set("sid", "sid-1")
	c.Set("session", &domain.Session{Token: "tok", User: domain.User{ID: "u1", Name: "Asha", Role: domain.RoleFarmer}})

	if err := h.UpdateOrderStatus(c); err != nil {
		t.Fatalf("UpdateOrderStatus returned %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "completed") {
		t.Error("orders pane does not show the new status")
	}
	if strings.Contains(body, ">Complete<") {
		t.Error("completed order still offers the complete action")
	}
}

func TestCancelEditDropsTarget(t *testing.T) {
	svc := &stubDashboardService{data: dashboardData()}
	h := NewDashboardHandler(svc, "http://backend.test")

	c, rec := dashboardContext(t, "/dashboard/products/cancel-edit")
	if err := h.CancelEdit(c); err != nil {
		t.Fatalf("CancelEdit returned %v", err)
	}
	if svc.cancelled != "sid-1" {
		t.Errorf("CancelEdit dropped state for %q, want sid-1", svc.cancelled)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/dashboard?pane=products" {
		t.Errorf("redirect to %q, want /dashboard?pane=products", loc)
	}
}
