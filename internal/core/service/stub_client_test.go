package service

import (
	"context"
	"errors"

	"github.com/agrigo/storefront/internal/core/domain"
	"github.com/agrigo/storefront/internal/core/ports"
)

// stubClient implements ports.MarketplaceClient with overridable functions.
// Calls without an override fail loudly so a test cannot silently hit an
// endpoint it did not expect.
type stubClient struct {
	loginFn           func(ctx context.Context, email, password string) (*domain.Session, error)
	registerFn        func(ctx context.Context, input ports.RegisterInput) error
	featuredFn        func(ctx context.Context) ([]domain.Product, error)
	listProductsFn    func(ctx context.Context, token string) ([]domain.Product, error)
	farmerProductsFn  func(ctx context.Context, token string) ([]domain.Product, error)
	getProductFn      func(ctx context.Context, token, id string) (*domain.Product, error)
	createProductFn   func(ctx context.Context, token string, input ports.ProductInput) error
	updateProductFn   func(ctx context.Context, token, id string, input ports.ProductInput) error
	deleteProductFn   func(ctx context.Context, token, id string) error
	farmerOrdersFn    func(ctx context.Context, token string) ([]domain.Order, error)
	consumerOrdersFn  func(ctx context.Context, token string) ([]domain.Order, error)
	getOrderFn        func(ctx context.Context, token, id string) (*domain.Order, error)
	updateStatusFn    func(ctx context.Context, token, id string, status domain.OrderStatus) error
	addToCartFn       func(ctx context.Context, token, productID string, quantity int) error
	probeFn           func(ctx context.Context, token string) error
	calls             []string
}

var errUnexpectedCall = errors.New("unexpected backend call")

func (s *stubClient) record(name string) {
	s.calls = append(s.calls, name)
}

func (s *stubClient) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	s.record("login")
	if s.loginFn == nil {
		return nil, errUnexpectedCall
	}
	return s.loginFn(ctx, email, password)
}

func (s *stubClient) Register(ctx context.Context, input ports.RegisterInput) error {
	s.record("register")
	if s.registerFn == nil {
		return errUnexpectedCall
	}
	return s.registerFn(ctx, input)
}

func (s *stubClient) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	s.record("featured")
	if s.featuredFn == nil {
		return nil, errUnexpectedCall
	}
	return s.featuredFn(ctx)
}

func (s *stubClient) ListProducts(ctx context.Context, token string) ([]domain.Product, error) {
	s.record("list_products")
	if s.listProductsFn == nil {
		return nil, errUnexpectedCall
	}
	return s.listProductsFn(ctx, token)
}

func (s *stubClient) FarmerProducts(ctx context.Context, token string) ([]domain.Product, error) {
	s.record("farmer_products")
	if s.farmerProductsFn == nil {
		return nil, errUnexpectedCall
	}
	return s.farmerProductsFn(ctx, token)
}

func (s *stubClient) GetProduct(ctx context.Context, token, id string) (*domain.Product, error) {
	s.record("get_product")
	if s.getProductFn == nil {
		return nil, errUnexpectedCall
	}
	return s.getProductFn(ctx, token, id)
}

func (s *stubClient) CreateProduct(ctx context.Context, token string, input ports.ProductInput) error {
	s.record("create_product")
	if s.createProductFn == nil {
		return errUnexpectedCall
	}
	return s.createProductFn(ctx, token, input)
}

func (s *stubClient) UpdateProduct(ctx context.Context, token, id string, input ports.ProductInput) error {
	s.record("update_product")
	if s.updateProductFn == nil {
		return errUnexpectedCall
	}
	return s.updateProductFn(ctx, token, id, input)
}

func (s *stubClient) DeleteProduct(ctx context.Context, token, id string) error {
	s.record("delete_product")
	if s.deleteProductFn == nil {
		return errUnexpectedCall
	}
	return s.deleteProductFn(ctx, token, id)
}

func (s *stubClient) FarmerOrders(ctx context.Context, token string) ([]domain.Order, error) {
	s.record("farmer_orders")
	if s.farmerOrdersFn == nil {
		return nil, errUnexpectedCall
	}
	return s.farmerOrdersFn(ctx, token)
}

func (s *stubClient) ConsumerOrders(ctx context.Context, token string) ([]domain.Order, error) {
	s.record("consumer_orders")
	if s.consumerOrdersFn == nil {
		return nil, errUnexpectedCall
	}
	return s.consumerOrdersFn(ctx, token)
}

func (s *stubClient) GetOrder(ctx context.Context, token, id string) (*domain.Order, error) {
	s.record("get_order")
	if s.getOrderFn == nil {
		return nil, errUnexpectedCall
	}
	return s.getOrderFn(ctx, token, id)
}

func (s *stubClient) UpdateOrderStatus(ctx context.Context, token, id string, status domain.OrderStatus) error {
	s.record("update_order_status")
	if s.updateStatusFn == nil {
		return errUnexpectedCall
	}
	return s.updateStatusFn(ctx, token, id, status)
}

func (s *stubClient) AddToCart(ctx context.Context, token, productID string, quantity int) error {
	s.record("add_to_cart")
	if s.addToCartFn == nil {
		return errUnexpectedCall
	}
	return s.addToCartFn(ctx, token, productID, quantity)
}

func (s *stubClient) Probe(ctx context.Context, token string) error {
	s.record("probe")
	if s.probeFn == nil {
		return errUnexpectedCall
	}
	return s.probeFn(ctx, token)
}

// stubSessionStore is an in-memory ports.SessionStore.
type stubSessionStore struct {
	sessions map[string]*domain.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Get(_ context.Context, sid string) (*domain.Session, error) {
	session, ok := s.sessions[sid]
	if !ok || !session.Valid() {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *stubSessionStore) Set(_ context.Context, sid string, session *domain.Session) error {
	s.sessions[sid] = session
	return nil
}

func (s *stubSessionStore) Clear(_ context.Context, sid string) error {
	if _, ok := s.sessions[sid]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, sid)
	return nil
}
