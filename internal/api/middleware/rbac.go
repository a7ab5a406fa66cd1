package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrigo/storefront/internal/core/domain"
)

// RequireRole guards a route group by viewer role. Like the page guards in
// the original views, a wrong-role visitor is redirected rather than shown an
// error: the dashboard is simply not their page.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, _ := c.Get("session").(*domain.Session)
			if session == nil {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			if _, ok := allowed[session.User.Role]; !ok {
				return c.Redirect(http.StatusSeeOther, "/products")
			}
			return next(c)
		}
	}
}
