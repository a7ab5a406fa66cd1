package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrigo/storefront/internal/core/domain"
)

// ctxSession extracts the session injected by the Session middleware and
// fast-fails before any service call when it is missing: presence proves the
// middleware ran on this route.
func ctxSession(c echo.Context) (sid string, session *domain.Session, err error) {
	session, _ = c.Get("session").(*domain.Session)
	sid, _ = c.Get("sid").(string)
	if session == nil || sid == "" {
		return "", nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sid, session, nil
}
