package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrigo/storefront/internal/api/middleware"
	"github.com/agrigo/storefront/internal/api/render"
	"github.com/agrigo/storefront/internal/core/domain"
	"github.com/agrigo/storefront/internal/core/ports"
	"github.com/agrigo/storefront/internal/core/service"
)

type AuthHandler struct {
	authService   ports.AuthService
	cookieSecret  string
	forgetSession func(sid string)
}

// NewAuthHandler builds the auth view controller. forgetSession releases any
// per-session controller state on logout and may be nil.
func NewAuthHandler(authService ports.AuthService, cookieSecret string, forgetSession func(string)) *AuthHandler {
	return &AuthHandler{authService: authService, cookieSecret: cookieSecret, forgetSession: forgetSession}
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return page(c, render.Page{Title: "Login", Content: render.LoginContent("")})
}

// Login submits credentials and redirects by role: farmers land on the
// dashboard, everyone else on the catalog. A rejected login re-renders the
// form with the backend's message verbatim.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return pageWithError(c, http.StatusBadRequest, render.Page{Title: "Login", Error: "invalid form submission", Content: render.LoginContent("")})
	}
	if err := c.Validate(&form); err != nil {
		return pageWithError(c, http.StatusUnprocessableEntity, render.Page{Title: "Login", Error: err.Error(), Content: render.LoginContent(form.Email)})
	}

	result, err := h.authService.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		var re *domain.RemoteError
		switch {
		case errors.As(err, &re):
			return pageWithError(c, http.StatusUnauthorized, render.Page{Title: "Login", Error: re.Message, Content: render.LoginContent(form.Email)})
		case errors.Is(err, domain.ErrBackendUnreachable):
			return err
		default:
			return pageWithError(c, http.StatusInternalServerError, render.Page{Title: "Login", Error: "an error occurred during login", Content: render.LoginContent(form.Email)})
		}
	}

	if err := middleware.SetCookie(c, h.cookieSecret, result.SessionID); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, result.Redirect)
}

// SignupPage renders the registration form.
func (h *AuthHandler) SignupPage(c echo.Context) error {
	return page(c, render.Page{Title: "Sign Up", Content: render.SignupContent(render.SignupForm{Role: domain.RoleConsumer})})
}

// Signup validates the form locally (password confirmation, length, role
// fields) and creates the account. On success the browser is sent to the
// login page; registering never authenticates.
func (h *AuthHandler) Signup(c echo.Context) error {
	var form signupForm
	if err := c.Bind(&form); err != nil {
		return pageWithError(c, http.StatusBadRequest, render.Page{Title: "Sign Up", Error: "invalid form submission", Content: render.SignupContent(render.SignupForm{})})
	}

	view := render.SignupForm{
		Name: form.Name, Email: form.Email, Phone: form.Phone,
		Role: form.Role, FarmName: form.FarmName, FarmLocation: form.FarmLocation,
	}

	if err := c.Validate(&form); err != nil {
		return pageWithError(c, http.StatusUnprocessableEntity, render.Page{Title: "Sign Up", Error: err.Error(), Content: render.SignupContent(view)})
	}

	err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:            form.Name,
		Email:           form.Email,
		Phone:           form.Phone,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
		Role:            form.Role,
		FarmName:        form.FarmName,
		FarmLocation:    form.FarmLocation,
	})
	if err != nil {
		var re *domain.RemoteError
		switch {
		case errors.Is(err, service.ErrPasswordMismatch), errors.Is(err, service.ErrPasswordTooShort):
			return pageWithError(c, http.StatusUnprocessableEntity, render.Page{Title: "Sign Up", Error: err.Error(), Content: render.SignupContent(view)})
		case errors.As(err, &re):
			return pageWithError(c, http.StatusBadRequest, render.Page{Title: "Sign Up", Error: re.Message, Content: render.SignupContent(view)})
		case errors.Is(err, domain.ErrBackendUnreachable):
			return err
		default:
			return pageWithError(c, http.StatusInternalServerError, render.Page{Title: "Sign Up", Error: "an error occurred during registration, please try again", Content: render.SignupContent(view)})
		}
	}

	return c.Redirect(http.StatusSeeOther, "/login")
}

// Logout destroys the stored session, drops any controller state, clears the
// cookie, and returns to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.authService.Logout(c.Request().Context(), sid); err != nil {
		return err
	}
	if h.forgetSession != nil {
		h.forgetSession(sid)
	}
	middleware.ClearCookie(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}

// page writes a composed HTML document.
func page(c echo.Context, p render.Page) error {
	if session, ok := c.Get("session").(*domain.Session); ok && session != nil {
		p.User = &session.User
	}
	return c.HTML(http.StatusOK, string(render.Document(p)))
}

// pageWithError is page with a non-2xx status, used when re-rendering a form
// after a local validation failure or a backend rejection.
func pageWithError(c echo.Context, status int, p render.Page) error {
	if session, ok := c.Get("session").(*domain.Session); ok && session != nil {
		p.User = &session.User
	}
	return c.HTML(status, string(render.Document(p)))
}
