package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-desk/desk/internal/model"
)

// ListBooks godoc
// @Summary  List books
// @Tags     books
// @Security BearerAuth
// @Produce  json
// @Param    search query    string false "title, author or category substring"
// @Success  200    {array}  model.Book
// @Router   /books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	books := h.catalogSvc.ListBooks(c.Request().Context(), c.QueryParam("search"))
	return c.JSON(http.StatusOK, books)
}

// GetBook godoc
// @Summary  Get book
// @Tags     books
// @Security BearerAuth
// @Produce  json
// @Param    id  path     string true "book id"
// @Success  200 {object} model.Book
// @Failure  404 {object} errs.ErrorResponse
// @Router   /books/{id} [get]
func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.catalogSvc.GetBook(c.Request().Context(), model.ParseID(c.Param("id")))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// AddBook godoc
// @Summary  Add book
// @Tags     books
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    book body     model.BookCreate true "book"
// @Success  201  {object} model.Book
// @Failure  400  {object} errs.ErrorResponse
// @Router   /books [post]
func (h *Handler) AddBook(c echo.Context) error {
	var req model.BookCreate
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err)
	}
	book, err := h.catalogSvc.AddBook(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

// EditBook godoc
// @Summary  Edit book
// @Tags     books
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    id   path     string           true "book id"
// @Param    book body     model.BookUpdate true "book"
// @Success  200  {object} model.EditBookResult
// @Failure  404  {object} errs.ErrorResponse
// @Router   /books/{id} [put]
func (h *Handler) EditBook(c echo.Context) error {
	var req model.BookUpdate
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err)
	}
	res, err := h.catalogSvc.EditBook(c.Request().Context(), model.ParseID(c.Param("id")), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// DeleteBook godoc
// @Summary  Delete book
// @Tags     books
// @Security BearerAuth
// @Param    id path string true "book id"
// @Success  204
// @Failure  404 {object} errs.ErrorResponse
// @Router   /books/{id} [delete]
func (h *Handler) DeleteBook(c echo.Context) error {
	if err := h.catalogSvc.DeleteBook(c.Request().Context(), model.ParseID(c.Param("id"))); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ImportBooks godoc
// @Summary  Import parsed book rows
// @Tags     books
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    rows body     model.BooksImportRequest true "rows"
// @Success  200  {object} model.ImportResult
// @Router   /books/import [post]
func (h *Handler) ImportBooks(c echo.Context) error {
	var req model.BooksImportRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}
	return c.JSON(http.StatusOK, h.catalogSvc.ImportBooks(c.Request().Context(), req.Rows))
}

// ListMembers godoc
// @Summary  List members
// @Tags     members
// @Security BearerAuth
// @Produce  json
// @Param    search query   string false "name, email or id substring"
// @Success  200    {array} model.Member
// @Router   /members [get]
func (h *Handler) ListMembers(c echo.Context) error {
	members := h.catalogSvc.ListMembers(c.Request().Context(), c.QueryParam("search"))
	return c.JSON(http.StatusOK, members)
}

func (h *Handler) GetMember(c echo.Context) error {
	member, err := h.catalogSvc.GetMember(c.Request().Context(), model.ParseID(c.Param("id")))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, member)
}

// AddMember godoc
// @Summary  Add member
// @Tags     members
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    member body     model.MemberCreate true "member"
// @Success  201    {object} model.Member
// @Failure  400    {object} errs.ErrorResponse
// @Router   /members [post]
func (h *Handler) AddMember(c echo.Context) error {
	var req model.MemberCreate
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err)
	}
	member, err := h.catalogSvc.AddMember(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, member)
}

func (h *Handler) EditMember(c echo.Context) error {
	var req model.MemberUpdate
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err)
	}
	member, err := h.catalogSvc.EditMember(c.Request().Context(), model.ParseID(c.Param("id")), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, member)
}

func (h *Handler) DeleteMember(c echo.Context) error {
	if err := h.catalogSvc.DeleteMember(c.Request().Context(), model.ParseID(c.Param("id"))); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ImportMembers(c echo.Context) error {
	var req model.MembersImportRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}
	return c.JSON(http.StatusOK, h.catalogSvc.ImportMembers(c.Request().Context(), req.Rows))
}
