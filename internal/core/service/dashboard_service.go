package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/agrigo/storefront/internal/core/domain"
	"github.com/agrigo/storefront/internal/core/ports"
)

const recentOrdersLimit = 5

// DashboardService orchestrates the farmer dashboard: connectivity probe,
// single-pass overview load, product CRUD, and order status transitions.
// Per-session operations are serialized through a viewState machine.
type DashboardService struct {
	client ports.MarketplaceClient
	states *viewStates
	logger zerolog.Logger
}

func NewDashboardService(client ports.MarketplaceClient, logger zerolog.Logger) *DashboardService {
	return &DashboardService{client: client, states: newViewStates(), logger: logger}
}

func (s *DashboardService) Probe(ctx context.Context, session *domain.Session) error {
	return s.client.Probe(ctx, session.Token)
}

// Overview loads the farmer's products and orders and derives the metrics
// panel from them. Because the aggregates are projections of the same fetch
// the tables render from, a reload can never leave them out of step.
func (s *DashboardService) Overview(ctx context.Context, sid string, session *domain.Session) (*ports.DashboardData, error) {
	st := s.states.get(sid)
	if err := st.begin(phaseLoading); err != nil {
		return nil, err
	}
	defer st.end()

	return s.load(ctx, session)
}

func (s *DashboardService) load(ctx context.Context, session *domain.Session) (*ports.DashboardData, error) {
	products, err := s.client.FarmerProducts(ctx, session.Token)
	if err != nil {
		return nil, err
	}
	orders, err := s.client.FarmerOrders(ctx, session.Token)
	if err != nil {
		return nil, err
	}
	return &ports.DashboardData{
		Metrics:  computeMetrics(products, orders),
		Products: products,
		Orders:   orders,
	}, nil
}

// BeginEdit fetches the product and records it as the edit target, so the
// next SaveProduct updates instead of creating.
func (s *DashboardService) BeginEdit(ctx context.Context, sid string, session *domain.Session, productID string) (*domain.Product, error) {
	st := s.states.get(sid)
	if err := st.begin(phaseLoading); err != nil {
		return nil, err
	}
	defer st.end()

	product, err := s.client.GetProduct(ctx, session.Token, productID)
	if err != nil {
		return nil, err
	}
	st.setEditing(product.ID)
	return product, nil
}

func (s *DashboardService) CancelEdit(sid string) {
	s.states.get(sid).clearEditing()
}

// SaveProduct creates or updates depending on whether an edit target is
// recorded. The target is cleared only on success, matching the form reset.
func (s *DashboardService) SaveProduct(ctx context.Context, sid string, session *domain.Session, input ports.ProductInput) error {
	st := s.states.get(sid)
	if err := st.begin(phaseSubmitting); err != nil {
		return err
	}
	defer st.end()

	editID := st.editing()
	var err error
	if editID != "" {
		err = s.client.UpdateProduct(ctx, session.Token, editID, input)
	} else {
		err = s.client.CreateProduct(ctx, session.Token, input)
	}
	if err != nil {
		return err
	}

	st.clearEditing()
	s.logger.Info().Str("user_id", session.User.ID).Str("product_id", editID).Str("name", input.Name).Msg("product saved")
	return nil
}

func (s *DashboardService) DeleteProduct(ctx context.Context, sid string, session *domain.Session, productID string) error {
	st := s.states.get(sid)
	if err := st.begin(phaseSubmitting); err != nil {
		return err
	}
	defer st.end()

	if err := s.client.DeleteProduct(ctx, session.Token, productID); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", session.User.ID).Str("product_id", productID).Msg("product deleted")
	return nil
}

// UpdateOrderStatus applies the transition, then reloads products and orders
// in the same guarded operation and returns the fresh overview. Handing back
// re-derived data is what keeps the metrics panel and the order table in
// agreement after a mutation.
func (s *DashboardService) UpdateOrderStatus(ctx context.Context, sid string, session *domain.Session, orderID string, status domain.OrderStatus) (*ports.DashboardData, error) {
	st := s.states.get(sid)
	if err := st.begin(phaseSubmitting); err != nil {
		return nil, err
	}
	defer st.end()

	order, err := s.client.GetOrder(ctx, session.Token, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, domain.ErrInvalidTransition
	}
	if err := s.client.UpdateOrderStatus(ctx, session.Token, orderID, status); err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", session.User.ID).Str("order_id", orderID).Str("status", string(status)).Msg("order status updated")

	return s.load(ctx, session)
}

// Forget drops the per-session controller state, e.g. on logout.
func (s *DashboardService) Forget(sid string) {
	s.states.drop(sid)
}

// computeMetrics derives the aggregate panel from the lists the tables render.
func computeMetrics(products []domain.Product, orders []domain.Order) ports.Metrics {
	m := ports.Metrics{TotalProducts: len(products)}
	for _, o := range orders {
		switch o.Status {
		case domain.OrderPending:
			m.PendingOrders++
		case domain.OrderCompleted:
			m.TotalRevenue += o.TotalAmount
		}
	}

	recent := make([]domain.Order, len(orders))
	copy(recent, orders)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentOrdersLimit {
		recent = recent[:recentOrdersLimit]
	}
	m.RecentOrders = recent
	return m
}
