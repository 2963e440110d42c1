package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-desk/desk/internal/model"
	"github.com/Astemirdum/library-desk/desk/internal/session"
)

// LoginAdmin godoc
// @Summary  Admin login
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    credentials body     model.AdminLoginRequest true "admin credentials"
// @Success  200         {object} model.TokenResponse
// @Failure  401         {object} errs.ErrorResponse
// @Router   /auth/admin [post]
func (h *Handler) LoginAdmin(c echo.Context) error {
	var req model.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err)
	}
	resp, err := h.authSvc.LoginAdmin(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// LoginMember godoc
// @Summary  Member login by id
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    member body     model.MemberLoginRequest true "member id"
// @Success  200    {object} model.TokenResponse
// @Failure  401    {object} errs.ErrorResponse
// @Router   /auth/member [post]
func (h *Handler) LoginMember(c echo.Context) error {
	var req model.MemberLoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err)
	}
	resp, err := h.authSvc.LoginMember(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary  Close the current session
// @Tags     auth
// @Security BearerAuth
// @Success  204
// @Router   /auth/logout [post]
func (h *Handler) Logout(c echo.Context) error {
	h.authSvc.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// SaveAdminConfig godoc
// @Summary  Change admin credentials
// @Tags     settings
// @Security BearerAuth
// @Accept   json
// @Param    settings body model.AdminConfigRequest true "new credentials"
// @Success  204
// @Failure  400 {object} errs.ErrorResponse
// @Router   /settings/admin [put]
func (h *Handler) SaveAdminConfig(c echo.Context) error {
	var req model.AdminConfigRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}
	if err := h.authSvc.SaveAdminConfig(c.Request().Context(), req); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Dashboard godoc
// @Summary     Dashboard of the signed in user
// @Description Admins get library totals, members get their loans and history.
// @Tags        dashboard
// @Security    BearerAuth
// @Produce     json
// @Success     200 {object} model.AdminDashboard
// @Success     200 {object} model.MemberDashboard
// @Router      /dashboard [get]
func (h *Handler) Dashboard(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return h.httpError(err)
	}
	ctx := c.Request().Context()
	if sess.Role == session.RoleAdmin {
		return c.JSON(http.StatusOK, h.circulationSvc.AdminDashboard(ctx))
	}
	dash, err := h.circulationSvc.MemberDashboard(ctx, sess.MemberID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, dash)
}
