package ports

import (
	"context"

	"github.com/agrigo/storefront/internal/core/domain"
)

// SessionStore persists the authenticated identity between requests, keyed by
// the browser's session ID. The store holds exactly the two durable fields the
// system defines: the bearer token and the serialized user profile.
type SessionStore interface {
	// Get returns the session for sid, or domain.ErrSessionNotFound when it
	// is absent or fails the token-and-user-both-present invariant.
	Get(ctx context.Context, sid string) (*domain.Session, error)
	Set(ctx context.Context, sid string, session *domain.Session) error
	Clear(ctx context.Context, sid string) error
}
