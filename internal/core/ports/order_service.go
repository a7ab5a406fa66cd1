package ports

import (
	"context"

	"github.com/agrigo/storefront/internal/core/domain"
)

// OrderService defines the orders view use cases. The list is role-scoped:
// farmers see orders placed with them, consumers see orders they placed.
type OrderService interface {
	ListForViewer(ctx context.Context, session *domain.Session) ([]domain.Order, error)
	Detail(ctx context.Context, session *domain.Session, orderID string) (*domain.Order, error)
	// UpdateStatus is restricted to the farmer role.
	UpdateStatus(ctx context.Context, session *domain.Session, orderID string, status domain.OrderStatus) error
}
