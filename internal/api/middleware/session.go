package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/agrigo/storefront/internal/core/domain"
	"github.com/agrigo/storefront/internal/core/ports"
)

// CookieName is the browser session cookie. Its value is a signed JWT whose
// only claim of interest is the session ID; the upstream bearer token never
// leaves the server-side store.
const CookieName = "agrigo_session"

// SignSessionID wraps a session ID in an HS256-signed cookie value.
func SignSessionID(secret, sid string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sid,
		"iat": time.Now().Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ParseSessionID verifies the cookie value and extracts the session ID.
func ParseSessionID(secret, value string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrSessionNotFound
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", domain.ErrSessionNotFound
	}
	return sid, nil
}

// SetCookie attaches a signed session cookie to the response.
func SetCookie(c echo.Context, secret, sid string) error {
	value, err := SignSessionID(secret, sid)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ClearCookie expires the session cookie.
func ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// Session resolves the session cookie against the store and injects the
// session into the request context. Anonymous or stale visitors are sent to
// the login page; there is no error state for "not logged in".
func Session(secret string, store ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			sid, err := ParseSessionID(secret, cookie.Value)
			if err != nil {
				ClearCookie(c)
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			session, err := store.Get(c.Request().Context(), sid)
			if errors.Is(err, domain.ErrSessionNotFound) {
				ClearCookie(c)
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			if err != nil {
				return err
			}

			c.Set("sid", sid)
			c.Set("session", session)
			return next(c)
		}
	}
}
