package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-desk/desk/internal/model"
)

// IssueBook godoc
// @Summary     Issue a book
// @Description Omitted dates default to today and today plus the loan period.
// @Tags        circulation
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       issue body     model.IssueRequest true "issue"
// @Success     201   {object} model.CirculationRecord
// @Failure     404   {object} errs.ErrorResponse
// @Failure     409   {object} errs.ErrorResponse
// @Router      /circulation/issue [post]
func (h *Handler) IssueBook(c echo.Context) error {
	var req model.IssueRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err)
	}
	rec, err := h.circulationSvc.IssueBook(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, rec)
}

// ReturnBook godoc
// @Summary  Return a loan
// @Tags     circulation
// @Security BearerAuth
// @Produce  json
// @Param    id  path     string true "circulation id"
// @Success  200 {object} model.ReturnResult
// @Failure  404 {object} errs.ErrorResponse
// @Failure  409 {object} errs.ErrorResponse
// @Router   /circulation/{id}/return [post]
func (h *Handler) ReturnBook(c echo.Context) error {
	res, err := h.circulationSvc.ReturnBook(c.Request().Context(), model.ParseID(c.Param("id")))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// ScanReturn godoc
// @Summary     Return by scanned book id
// @Description A single active loan is returned at once, several come back as candidates.
// @Tags        circulation
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       scan body     model.ScanRequest true "scanned id"
// @Success     200  {object} model.ScanResult
// @Failure     404  {object} errs.ErrorResponse
// @Router      /circulation/scan-return [post]
func (h *Handler) ScanReturn(c echo.Context) error {
	var req model.ScanRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err)
	}
	res, err := h.circulationSvc.ScanReturn(c.Request().Context(), req.BookID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// CheckStatus godoc
// @Summary  Book status
// @Tags     books
// @Security BearerAuth
// @Produce  json
// @Param    id  path     string true "book id"
// @Success  200 {object} model.BookStatus
// @Failure  404 {object} errs.ErrorResponse
// @Router   /books/{id}/status [get]
func (h *Handler) CheckStatus(c echo.Context) error {
	status, err := h.circulationSvc.CheckStatus(c.Request().Context(), model.ParseID(c.Param("id")))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, status)
}

// ListCirculation godoc
// @Summary  Circulation log, newest first
// @Tags     circulation
// @Security BearerAuth
// @Produce  json
// @Param    filter query   string false "book id substring"
// @Success  200    {array} model.CirculationView
// @Router   /circulation [get]
func (h *Handler) ListCirculation(c echo.Context) error {
	return c.JSON(http.StatusOK, h.circulationSvc.ListCirculation(c.Request().Context(), c.QueryParam("filter")))
}

// ListReviews godoc
// @Summary  List reviews
// @Tags     reviews
// @Security BearerAuth
// @Produce  json
// @Success  200 {array} model.ReviewView
// @Router   /reviews [get]
func (h *Handler) ListReviews(c echo.Context) error {
	return c.JSON(http.StatusOK, h.circulationSvc.ListReviews(c.Request().Context()))
}

// SubmitReview godoc
// @Summary  Review a book
// @Tags     reviews
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    review body     model.ReviewCreate true "review"
// @Success  201    {object} model.Review
// @Failure  400    {object} errs.ErrorResponse
// @Router   /reviews [post]
func (h *Handler) SubmitReview(c echo.Context) error {
	var req model.ReviewCreate
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err)
	}
	review, err := h.circulationSvc.SubmitReview(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, review)
}
