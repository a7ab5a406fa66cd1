package api

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/agrigo/storefront/internal/api/metrics"
	"github.com/agrigo/storefront/internal/api/render"
	"github.com/agrigo/storefront/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders connectivity faults as the full-page diagnostic with
//     remediation guidance rather than a transient notice.
//   - Surfaces backend-reported messages verbatim with their status.
//   - Logs unexpected errors internally without leaking details to the user.
func NewHTTPErrorHandler(log zerolog.Logger, backendURL string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if errors.Is(err, domain.ErrSessionNotFound) {
			_ = c.Redirect(http.StatusSeeOther, "/login")
			return
		}

		code, content := resolveError(err, log, c, backendURL)
		page := render.Page{Title: "Error", Content: content}
		if session, ok := c.Get("session").(*domain.Session); ok && session != nil {
			page.User = &session.User
		}
		_ = c.HTML(code, string(render.Document(page)))
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, backendURL string) (int, template.HTML) {
	switch {
	case errors.Is(err, domain.ErrBackendUnreachable):
		return http.StatusBadGateway, render.ConnectivityNotice(backendURL)

	case errors.Is(err, domain.ErrBusy):
		metrics.BusyRejectionsTotal.Inc()
		return http.StatusConflict, render.ErrorContent(http.StatusConflict, "Another operation is already in progress. Please try again.")

	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, render.ErrorContent(http.StatusForbidden, "You do not have access to this action.")

	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, render.ErrorContent(http.StatusUnprocessableEntity, err.Error())
	}

	// Backend-reported failure: show the backend's message verbatim.
	var re *domain.RemoteError
	if errors.As(err, &re) {
		code := re.StatusCode
		if code < http.StatusBadRequest {
			code = http.StatusBadGateway
		}
		return code, render.ErrorContent(code, re.Message)
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, render.ErrorContent(he.Code, fmt.Sprintf("%v", he.Message))
	}

	// Unexpected error: log the real cause, render a generic page.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, render.ErrorContent(http.StatusInternalServerError, "Something went wrong. Please try again.")
}
