package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-desk/desk/internal/errs"
	"github.com/Astemirdum/library-desk/desk/internal/session"
	"github.com/Astemirdum/library-desk/pkg/auth"
)

// Authenticate resolves the bearer token and puts the session into the request context.
func (h *Handler) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := auth.TokenFromHeader(c.Request().Header.Get(auth.AuthorizationHeader))
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, errs.ErrorResponse{
				Message: "no token in Authorization header",
				Kind:    errs.KindAuth,
			})
		}
		ctx := c.Request().Context()
		sess, err := h.authSvc.Authorize(ctx, token)
		if err != nil {
			return h.httpError(err)
		}
		c.SetRequest(c.Request().WithContext(session.WithSession(ctx, sess)))
		return next(c)
	}
}

// requireRole admits admins to admin routes and members to member routes.
// Sessions only ever carry one of the two roles.
func requireRole(role session.Role) echo.MiddlewareFunc {
	wantAdmin := role == session.RoleAdmin
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := session.FromContext(c.Request().Context())
			if !ok || sess.IsAdmin() != wantAdmin {
				return echo.NewHTTPError(http.StatusForbidden, errs.ErrorResponse{
					Message: "this action requires the " + string(role) + " role",
					Kind:    errs.KindForbidden,
				})
			}
			return next(c)
		}
	}
}

func currentSession(c echo.Context) (session.Session, error) {
	sess, ok := session.FromContext(c.Request().Context())
	if !ok {
		return session.Session{}, errs.ErrUnauthorized
	}
	return sess, nil
}
