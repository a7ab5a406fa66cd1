package render

import (
	"strings"
	"testing"
	"time"

	"github.com/agrigo/storefront/internal/core/domain"
	"github.com/agrigo/storefront/internal/core/ports"
)

func TestCurrency(t *testing.T) {
	if got := Currency(1234.5); got != "₹1234.50" {
		t.Errorf("Currency(1234.5) = %q", got)
	}
	if got := Currency(0); got != "₹0.00" {
		t.Errorf("Currency(0) = %q", got)
	}
}

func TestDateZeroIsNA(t *testing.T) {
	if got := Date(time.Time{}); got != "N/A" {
		t.Errorf("Date(zero) = %q, want N/A", got)
	}
	if got := Date(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)); got != "Mar 1, 2026" {
		t.Errorf("Date = %q, want Mar 1, 2026", got)
	}
}

func TestStatusBadgeClass(t *testing.T) {
	tests := []struct {
		status domain.OrderStatus
		want   string
	}{
		{domain.OrderPending, "warning"},
		{domain.OrderCompleted, "success"},
		{domain.OrderCancelled, "danger"},
		{domain.OrderStatus("unknown"), "secondary"},
	}
	for _, tt := range tests {
		if got := StatusBadgeClass(tt.status); got != tt.want {
			t.Errorf("StatusBadgeClass(%s) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestProductRowsEmpty(t *testing.T) {
	html := string(ProductRows(nil))
	if !strings.Contains(html, "No products found") {
		t.Errorf("empty table body missing placeholder: %s", html)
	}
	if !strings.Contains(html, `colspan="6"`) {
		t.Errorf("placeholder does not span the table: %s", html)
	}
}

func TestProductRowsRendersNA(t *testing.T) {
	html := string(ProductRows([]domain.Product{{ID: "p1", Price: 40, Quantity: 10, Unit: "kg"}}))
	if !strings.Contains(html, "N/A") {
		t.Errorf("missing name not rendered as N/A: %s", html)
	}
	if !strings.Contains(html, "/dashboard/products/p1/edit") {
		t.Errorf("edit link missing: %s", html)
	}
}

func TestProductRowsEscapesMarkup(t *testing.T) {
	html := string(ProductRows([]domain.Product{{ID: "p1", Name: "<script>alert(1)</script>"}}))
	if strings.Contains(html, "<script>") {
		t.Errorf("product name not escaped: %s", html)
	}
}

func TestProductCardsCartButtonByRole(t *testing.T) {
	products := []domain.Product{{ID: "p1", Name: "Tomatoes", Price: 40, Quantity: 10, Unit: "kg"}}

	asConsumer := string(ProductCards(products, domain.RoleConsumer))
	if !strings.Contains(asConsumer, "Add to Cart") {
		t.Error("consumer view missing the cart action")
	}

	asFarmer := string(ProductCards(products, domain.RoleFarmer))
	if strings.Contains(asFarmer, "Add to Cart") {
		t.Error("farmer view shows the cart action")
	}

	anonymous := string(ProductCards(products, ""))
	if strings.Contains(anonymous, "Add to Cart") {
		t.Error("anonymous view shows the cart action")
	}
}

func TestProductCardsEmpty(t *testing.T) {
	html := string(ProductCards(nil, domain.RoleConsumer))
	if !strings.Contains(html, "No products found") {
		t.Errorf("empty catalog missing placeholder: %s", html)
	}
	if strings.Contains(html, "card-title") {
		t.Errorf("empty catalog rendered a product card: %s", html)
	}
}

func TestOrderCardsEmpty(t *testing.T) {
	html := string(OrderCards(nil, domain.RoleConsumer))
	if got := strings.Count(html, "No orders found"); got != 1 {
		t.Errorf("placeholder rendered %d times, want exactly 1: %s", got, html)
	}
}

func testOrder(status domain.OrderStatus) domain.Order {
	return domain.Order{
		ID:     "o1",
		Status: status,
		Consumer: domain.User{
			Name: "Ravi", Phone: "111", Role: domain.RoleConsumer,
		},
		Farmer: domain.User{
			Name: "Asha", Phone: "222", Role: domain.RoleFarmer,
		},
		Items: []domain.OrderItem{
			{Product: domain.Product{Name: "Tomatoes", Price: 40, Unit: "kg"}, Quantity: 3},
		},
		TotalAmount: 120,
		CreatedAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestOrderCardsCounterpartByRole(t *testing.T) {
	orders := []domain.Order{testOrder(domain.OrderPending)}

	asFarmer := string(OrderCards(orders, domain.RoleFarmer))
	if !strings.Contains(asFarmer, "Consumer Details") || !strings.Contains(asFarmer, "Ravi") {
		t.Errorf("farmer view missing consumer contact: %s", asFarmer)
	}
	if strings.Contains(asFarmer, "Asha") {
		t.Errorf("farmer view shows the farmer's own contact: %s", asFarmer)
	}

	asConsumer := string(OrderCards(orders, domain.RoleConsumer))
	if !strings.Contains(asConsumer, "Farmer Details") || !strings.Contains(asConsumer, "Asha") {
		t.Errorf("consumer view missing farmer contact: %s", asConsumer)
	}
}

func TestOrderCardsTransitionActions(t *testing.T) {
	pending := []domain.Order{testOrder(domain.OrderPending)}
	completed := []domain.Order{testOrder(domain.OrderCompleted)}

	if html := string(OrderCards(pending, domain.RoleFarmer)); !strings.Contains(html, "Mark as Completed") {
		t.Error("farmer view of a pending order missing the transition actions")
	}
	if html := string(OrderCards(pending, domain.RoleConsumer)); strings.Contains(html, "Mark as Completed") {
		t.Error("consumer view shows transition actions")
	}
	if html := string(OrderCards(completed, domain.RoleFarmer)); strings.Contains(html, "Mark as Completed") {
		t.Error("terminal order still shows transition actions")
	}
}

func TestOrderCardsLineTotal(t *testing.T) {
	html := string(OrderCards([]domain.Order{testOrder(domain.OrderPending)}, domain.RoleConsumer))
	// 3 kg at ₹40.
	if !strings.Contains(html, "₹120.00") {
		t.Errorf("line total missing: %s", html)
	}
}

func TestFarmerOrderRowsCompleteOnlyWhilePending(t *testing.T) {
	pending := string(FarmerOrderRows([]domain.Order{testOrder(domain.OrderPending)}))
	if !strings.Contains(pending, ">Complete<") {
		t.Errorf("pending row missing the complete action: %s", pending)
	}

	done := string(FarmerOrderRows([]domain.Order{testOrder(domain.OrderCompleted)}))
	if strings.Contains(done, ">Complete<") {
		t.Errorf("completed row still offers the complete action: %s", done)
	}
}

func TestRecentOrderRowsEmpty(t *testing.T) {
	html := string(RecentOrderRows(nil))
	if !strings.Contains(html, "No orders found") || !strings.Contains(html, `colspan="5"`) {
		t.Errorf("empty recent-orders body wrong: %s", html)
	}
}

func TestMetricsPanel(t *testing.T) {
	html := string(MetricsPanel(ports.Metrics{TotalProducts: 3, PendingOrders: 2, TotalRevenue: 450}))
	for _, want := range []string{"Total Products", ">3<", "Pending Orders", ">2<", "₹450.00"} {
		if !strings.Contains(html, want) {
			t.Errorf("metrics panel missing %q: %s", want, html)
		}
	}
}

func TestConnectivityNotice(t *testing.T) {
	html := string(ConnectivityNotice("https://agrigo-backend.onrender.com"))
	if !strings.Contains(html, "Cannot connect to the backend server") {
		t.Errorf("notice missing diagnostic text: %s", html)
	}
	if !strings.Contains(html, "https://agrigo-backend.onrender.com") {
		t.Errorf("notice missing the backend address: %s", html)
	}
}
