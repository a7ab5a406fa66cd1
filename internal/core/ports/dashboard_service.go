package ports

import (
	"context"

	"github.com/agrigo/storefront/internal/core/domain"
)

// Metrics is the dashboard's aggregate panel. It is derived from the same
// product and order lists the detail tables render, so the two can never
// disagree.
type Metrics struct {
	TotalProducts int
	PendingOrders int
	TotalRevenue  float64
	RecentOrders  []domain.Order
}

// DashboardData is everything the farmer dashboard renders in one pass.
type DashboardData struct {
	Metrics  Metrics
	Products []domain.Product
	Orders   []domain.Order
}

// DashboardService defines the farmer dashboard use cases. All mutating and
// loading operations for one session are mutually exclusive: a second call
// while one is in flight fails fast with domain.ErrBusy.
type DashboardService interface {
	// Probe reports whether the backend is reachable. A 401/403 from the
	// probe endpoint counts as reachable.
	Probe(ctx context.Context, session *domain.Session) error
	Overview(ctx context.Context, sid string, session *domain.Session) (*DashboardData, error)

	// BeginEdit loads the product and records it as the session's edit
	// target; SaveProduct then updates instead of creating.
	BeginEdit(ctx context.Context, sid string, session *domain.Session, productID string) (*domain.Product, error)
	CancelEdit(sid string)
	SaveProduct(ctx context.Context, sid string, session *domain.Session, input ProductInput) error
	DeleteProduct(ctx context.Context, sid string, session *domain.Session, productID string) error

	// UpdateOrderStatus applies the transition and returns a freshly loaded
	// overview so row-level state and aggregate counts move together.
	UpdateOrderStatus(ctx context.Context, sid string, session *domain.Session, orderID string, status domain.OrderStatus) (*DashboardData, error)
}
