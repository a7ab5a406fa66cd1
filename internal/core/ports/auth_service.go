package ports

import (
	"context"

	"github.com/agrigo/storefront/internal/core/domain"
)

// LoginResult is returned after a successful login: the stored session and
// the role-dependent route the browser should land on.
type LoginResult struct {
	SessionID string
	Session   *domain.Session
	Redirect  string
}

// AuthService defines the auth view-controller use cases.
type AuthService interface {
	// Login exchanges credentials for a session, persists it, and picks the
	// landing route: farmers go to the dashboard, everyone else to the catalog.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Register creates an account. It does not authenticate; the caller
	// redirects to the login page on success.
	Register(ctx context.Context, input RegisterInput) error
	Logout(ctx context.Context, sid string) error
}
