package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agrigo/storefront/internal/core/domain"
	"github.com/agrigo/storefront/internal/core/ports"
)

// OrderService serves the orders view for both roles.
type OrderService struct {
	client ports.MarketplaceClient
	logger zerolog.Logger
}

func NewOrderService(client ports.MarketplaceClient, logger zerolog.Logger) *OrderService {
	return &OrderService{client: client, logger: logger}
}

// ListForViewer fetches the role-scoped order list.
func (s *OrderService) ListForViewer(ctx context.Context, session *domain.Session) ([]domain.Order, error) {
	if session.User.IsFarmer() {
		return s.client.FarmerOrders(ctx, session.Token)
	}
	return s.client.ConsumerOrders(ctx, session.Token)
}

func (s *OrderService) Detail(ctx context.Context, session *domain.Session, orderID string) (*domain.Order, error) {
	return s.client.GetOrder(ctx, session.Token, orderID)
}

// UpdateStatus applies a status transition. Only farmers may transition an
// order; the backend re-checks ownership on its side.
func (s *OrderService) UpdateStatus(ctx context.Context, session *domain.Session, orderID string, status domain.OrderStatus) error {
	if !session.User.IsFarmer() {
		return domain.ErrForbidden
	}
	order, err := s.client.GetOrder(ctx, session.Token, orderID)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(status) {
		return domain.ErrInvalidTransition
	}
	if err := s.client.UpdateOrderStatus(ctx, session.Token, orderID, status); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", session.User.ID).Str("order_id", orderID).Str("status", string(status)).Msg("order status updated")
	return nil
}
