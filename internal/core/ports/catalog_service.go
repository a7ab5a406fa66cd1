package ports

import (
	"context"

	"github.com/agrigo/storefront/internal/core/domain"
)

// CatalogService defines the consumer-facing product use cases.
type CatalogService interface {
	// Featured returns the homepage highlights. No authentication required.
	Featured(ctx context.Context) ([]domain.Product, error)
	List(ctx context.Context, session *domain.Session) ([]domain.Product, error)
	// AddToCart is a consumer-only action; other roles get domain.ErrForbidden.
	AddToCart(ctx context.Context, session *domain.Session, productID string, quantity int) error
}
