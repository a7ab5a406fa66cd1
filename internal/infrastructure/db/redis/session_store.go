package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/agrigo/storefront/internal/api/metrics"
	"github.com/agrigo/storefront/internal/core/domain"
)

const defaultSessionTTL = 30 * 24 * time.Hour

// SessionStore persists sessions in Redis, one JSON record per session ID.
// Key format: session:<sid>
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
// A TTL of zero falls back to 30 days. The TTL is storage hygiene, not token
// expiry; token expiry is discovered reactively via backend 401s.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Get loads the session for sid. A record missing either the token or the
// user violates the both-or-absent invariant and is dropped and reported as
// not found.
func (s *SessionStore) Get(ctx context.Context, sid string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, s.key(sid)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.SessionOpsTotal.WithLabelValues("get", "miss").Inc()
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		metrics.SessionOpsTotal.WithLabelValues("get", "error").Inc()
		return nil, fmt.Errorf("session get: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil || !session.Valid() {
		// Corrupt or half-written record: absent, not an error state.
		_ = s.client.Del(ctx, s.key(sid)).Err()
		metrics.SessionOpsTotal.WithLabelValues("get", "miss").Inc()
		return nil, domain.ErrSessionNotFound
	}

	metrics.SessionOpsTotal.WithLabelValues("get", "ok").Inc()
	return &session, nil
}

func (s *SessionStore) Set(ctx context.Context, sid string, session *domain.Session) error {
	if !session.Valid() {
		return fmt.Errorf("session set: refusing to store session without token and user")
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sid), raw, s.ttl).Err(); err != nil {
		metrics.SessionOpsTotal.WithLabelValues("set", "error").Inc()
		return fmt.Errorf("session set: %w", err)
	}
	metrics.SessionOpsTotal.WithLabelValues("set", "ok").Inc()
	return nil
}

func (s *SessionStore) Clear(ctx context.Context, sid string) error {
	n, err := s.client.Del(ctx, s.key(sid)).Result()
	if err != nil {
		metrics.SessionOpsTotal.WithLabelValues("clear", "error").Inc()
		return fmt.Errorf("session clear: %w", err)
	}
	if n == 0 {
		metrics.SessionOpsTotal.WithLabelValues("clear", "miss").Inc()
		return domain.ErrSessionNotFound
	}
	metrics.SessionOpsTotal.WithLabelValues("clear", "ok").Inc()
	return nil
}

func (s *SessionStore) key(sid string) string {
	return "session:" + sid
}
