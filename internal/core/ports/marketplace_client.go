package ports

import (
	"context"

	"github.com/agrigo/storefront/internal/core/domain"
)

// RegisterInput carries all data needed to create an account. FarmName and
// FarmLocation are only sent when Role is farmer.
type RegisterInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	Role            string
	FarmName        string
	FarmLocation    string
}

// ProductInput carries the fields of a product create or update.
type ProductInput struct {
	Name        string
	Category    string
	Price       float64
	Quantity    int
	Unit        string
	Description string
	IsAvailable bool
}

// MarketplaceClient is the typed client of the remote marketplace backend.
// Every call is a direct REST request; the bearer token is attached when
// non-empty. Implementations must map transport failures to
// domain.ErrBackendUnreachable and non-2xx responses to domain.RemoteError.
type MarketplaceClient interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Register(ctx context.Context, input RegisterInput) error

	FeaturedProducts(ctx context.Context) ([]domain.Product, error)
	ListProducts(ctx context.Context, token string) ([]domain.Product, error)
	FarmerProducts(ctx context.Context, token string) ([]domain.Product, error)
	GetProduct(ctx context.Context, token, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, token string, input ProductInput) error
	UpdateProduct(ctx context.Context, token, id string, input ProductInput) error
	DeleteProduct(ctx context.Context, token, id string) error

	FarmerOrders(ctx context.Context, token string) ([]domain.Order, error)
	ConsumerOrders(ctx context.Context, token string) ([]domain.Order, error)
	GetOrder(ctx context.Context, token, id string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, token, id string, status domain.OrderStatus) error
	AddToCart(ctx context.Context, token, productID string, quantity int) error

	// Probe checks backend reachability against a protected endpoint.
	// A 401/403 answer proves the server is up and returns nil; any other
	// failure is reported as domain.ErrBackendUnreachable.
	Probe(ctx context.Context, token string) error
}
