package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agrigo/storefront/internal/core/domain"
	"github.com/agrigo/storefront/internal/core/ports"
)

// CatalogService serves the consumer-facing product views.
type CatalogService struct {
	client ports.MarketplaceClient
	logger zerolog.Logger
}

func NewCatalogService(client ports.MarketplaceClient, logger zerolog.Logger) *CatalogService {
	return &CatalogService{client: client, logger: logger}
}

func (s *CatalogService) Featured(ctx context.Context) ([]domain.Product, error) {
	return s.client.FeaturedProducts(ctx)
}

func (s *CatalogService) List(ctx context.Context, session *domain.Session) ([]domain.Product, error) {
	return s.client.ListProducts(ctx, session.Token)
}

// AddToCart sends the cart mutation for consumer accounts only.
func (s *CatalogService) AddToCart(ctx context.Context, session *domain.Session, productID string, quantity int) error {
	if session.User.Role != domain.RoleConsumer {
		return domain.ErrForbidden
	}
	if quantity <= 0 {
		quantity = 1
	}
	if err := s.client.AddToCart(ctx, session.Token, productID, quantity); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", session.User.ID).Str("product_id", productID).Int("quantity", quantity).Msg("product added to cart")
	return nil
}
