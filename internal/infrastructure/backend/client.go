// Package backend implements the typed HTTP client of the remote AgriGo
// marketplace API. Every operation is a direct REST call; this tier adds
// bearer auth, JSON codecs, per-request timeouts, and a uniform error
// taxonomy (domain.RemoteError vs domain.ErrBackendUnreachable).
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrigo/storefront/internal/api/metrics"
	"github.com/agrigo/storefront/internal/core/domain"
	"github.com/agrigo/storefront/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient builds a marketplace client for the given base URL. A timeout of
// zero falls back to the 10s default; every request carries it so a hung
// backend can never wedge a view controller.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Phone    string           `json:"phone"`
	Password string           `json:"password"`
	Role     string           `json:"role"`
	FarmInfo *domain.FarmInfo `json:"farmInfo,omitempty"`
}

type productRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
	IsAvailable bool    `json:"isAvailable"`
}

type statusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

type cartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	var session domain.Session
	err := c.do(ctx, "login", http.MethodPost, "/auth/user/login", "", loginRequest{Email: email, Password: password}, &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) Register(ctx context.Context, input ports.RegisterInput) error {
	req := registerRequest{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: input.Password,
		Role:     input.Role,
	}
	if input.Role == domain.RoleFarmer {
		req.FarmInfo = &domain.FarmInfo{FarmName: input.FarmName, FarmLocation: input.FarmLocation}
	}
	return c.do(ctx, "register", http.MethodPost, "/auth/user/register", "", req, nil)
}

func (c *Client) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, "featured_products", http.MethodGet, "/products/featured", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) ListProducts(ctx context.Context, token string) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, "list_products", http.MethodGet, "/products", token, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) FarmerProducts(ctx context.Context, token string) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, "farmer_products", http.MethodGet, "/products/farmer/products", token, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, token, id string) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, "get_product", http.MethodGet, "/products/"+id, token, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, input ports.ProductInput) error {
	return c.do(ctx, "create_product", http.MethodPost, "/products", token, toProductRequest(input), nil)
}

func (c *Client) UpdateProduct(ctx context.Context, token, id string, input ports.ProductInput) error {
	return c.do(ctx, "update_product", http.MethodPut, "/products/"+id, token, toProductRequest(input), nil)
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, "delete_product", http.MethodDelete, "/products/"+id, token, nil, nil)
}

func (c *Client) FarmerOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, "farmer_orders", http.MethodGet, "/orders/farmer", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) ConsumerOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, "consumer_orders", http.MethodGet, "/orders/consumer", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, token, id string) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, "get_order", http.MethodGet, "/orders/"+id, token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus uses PUT /orders/:id/status. One verb, one base URL,
// for every caller.
func (c *Client) UpdateOrderStatus(ctx context.Context, token, id string, status domain.OrderStatus) error {
	return c.do(ctx, "update_order_status", http.MethodPut, "/orders/"+id+"/status", token, statusRequest{Status: status}, nil)
}

func (c *Client) AddToCart(ctx context.Context, token, productID string, quantity int) error {
	return c.do(ctx, "add_to_cart", http.MethodPost, "/orders/cart", token, cartRequest{ProductID: productID, Quantity: quantity}, nil)
}

// Probe checks reachability against a protected endpoint. A 401/403 answer
// proves the server is up, so it is not a fault; anything else that fails
// collapses into ErrBackendUnreachable.
func (c *Client) Probe(ctx context.Context, token string) error {
	err := c.do(ctx, "probe", http.MethodGet, "/products/farmer/products", token, nil, nil)
	switch {
	case err == nil:
		return nil
	case domain.IsUnauthorized(err):
		return nil
	default:
		return fmt.Errorf("reachability probe: %w", domain.ErrBackendUnreachable)
	}
}

// errorBody is the backend's error envelope; message is optional.
type errorBody struct {
	Message string `json:"message"`
}

// do issues one backend request: JSON-encodes body when present, attaches the
// bearer token when non-empty, and decodes the 2xx response into out.
func (c *Client) do(ctx context.Context, endpoint, method, path, token string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "unreachable").Inc()
		c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("backend unreachable")
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrBackendUnreachable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "remote_error").Inc()
		return domain.NewRemoteError(resp.StatusCode, eb.Message)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "ok").Inc()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func toProductRequest(input ports.ProductInput) productRequest {
	return productRequest{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		Description: input.Description,
		IsAvailable: input.IsAvailable,
	}
}
