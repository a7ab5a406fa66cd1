package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/rs/zerolog"

	"github.com/agrigo/storefront/internal/core/domain"
	"github.com/agrigo/storefront/internal/core/ports"
)

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
)

const minPasswordLen = 6

type AuthService struct {
	client   ports.MarketplaceClient
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewAuthService(client ports.MarketplaceClient, sessions ports.SessionStore, logger zerolog.Logger) *AuthService {
	return &AuthService{client: client, sessions: sessions, logger: logger}
}

// Login exchanges credentials for a token and profile, persists them under a
// fresh session ID, and picks the landing route by role.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	session, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if !session.Valid() {
		// Backend answered 2xx but the payload is missing the token or the
		// user; treat it like any other rejected login.
		return nil, domain.NewRemoteError(0, "login failed")
	}

	sid := newSessionID()
	if err := s.sessions.Set(ctx, sid, session); err != nil {
		return nil, err
	}

	redirect := "/products"
	if session.User.IsFarmer() {
		redirect = "/dashboard"
	}

	s.logger.Info().Str("user_id", session.User.ID).Str("role", session.User.Role).Msg("user logged in")

	return &ports.LoginResult{SessionID: sid, Session: session, Redirect: redirect}, nil
}

// Register validates the confirmation fields locally and creates the account.
// Signup never authenticates; the browser is sent back to the login page.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) error {
	if input.Password != input.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(input.Password) < minPasswordLen {
		return ErrPasswordTooShort
	}
	if input.Role != domain.RoleFarmer {
		// Farm profile fields only travel for farmer accounts.
		input.FarmName = ""
		input.FarmLocation = ""
	}
	if err := s.client.Register(ctx, input); err != nil {
		return err
	}
	s.logger.Info().Str("email", input.Email).Str("role", input.Role).Msg("account registered")
	return nil
}

// Logout destroys the stored session. Missing sessions are not an error: the
// outcome the user asked for already holds.
func (s *AuthService) Logout(ctx context.Context, sid string) error {
	if err := s.sessions.Clear(ctx, sid); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return err
	}
	return nil
}

// newSessionID returns a 128-bit random hex session ID.
func newSessionID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
