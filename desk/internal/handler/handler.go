package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/Astemirdum/library-desk/desk/swagger"

	"github.com/Astemirdum/library-desk/desk/internal/errs"
	"github.com/Astemirdum/library-desk/desk/internal/session"
	md "github.com/Astemirdum/library-desk/pkg/middleware"
	"github.com/Astemirdum/library-desk/pkg/validate"
)

type Handler struct {
	authSvc        AuthService
	catalogSvc     CatalogService
	circulationSvc CirculationService
	log            *zap.Logger
}

func New(authSvc AuthService, catalogSvc CatalogService, circulationSvc CirculationService, log *zap.Logger) *Handler {
	return &Handler{
		authSvc:        authSvc,
		catalogSvc:     catalogSvc,
		circulationSvc: circulationSvc,
		log:            log.Named("handler"),
	}
}

// @title       Library desk API
// @version     1.0
// @description Circulation desk of a small library: catalog, members, loans and reviews.
// @BasePath    /api/v1
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(middleware.BodyLimit(md.BodyLimit))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.POST("/auth/admin", h.LoginAdmin)
	api.POST("/auth/member", h.LoginMember)

	api = api.Group("", h.Authenticate)
	adminOnly := requireRole(session.RoleAdmin)
	memberOnly := requireRole(session.RoleMember)

	api.POST("/auth/logout", h.Logout)
	api.GET("/dashboard", h.Dashboard)

	api.GET("/books", h.ListBooks)
	api.GET("/books/:id", h.GetBook)
	api.GET("/books/:id/status", h.CheckStatus)
	api.POST("/books", h.AddBook, adminOnly)
	api.PUT("/books/:id", h.EditBook, adminOnly)
	api.DELETE("/books/:id", h.DeleteBook, adminOnly)
	api.POST("/books/import", h.ImportBooks, adminOnly)

	api.GET("/members", h.ListMembers, adminOnly)
	api.GET("/members/:id", h.GetMember, adminOnly)
	api.POST("/members", h.AddMember, adminOnly)
	api.PUT("/members/:id", h.EditMember, adminOnly)
	api.DELETE("/members/:id", h.DeleteMember, adminOnly)
	api.POST("/members/import", h.ImportMembers, adminOnly)

	api.GET("/circulation", h.ListCirculation, adminOnly)
	api.POST("/circulation/issue", h.IssueBook, adminOnly)
	api.POST("/circulation/scan-return", h.ScanReturn, adminOnly)
	api.POST("/circulation/:id/return", h.ReturnBook, adminOnly)

	api.GET("/reviews", h.ListReviews)
	api.POST("/reviews", h.SubmitReview, memberOnly)

	api.PUT("/settings/admin", h.SaveAdminConfig, adminOnly)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps a service error to its HTTP status. The body carries the error kind.
func (h *Handler) httpError(err error) error {
	kind := errs.Kind(err)
	code := http.StatusInternalServerError
	switch kind {
	case errs.KindNotFound:
		code = http.StatusNotFound
	case errs.KindOutOfStock, errs.KindDuplicate, errs.KindInvalidState:
		code = http.StatusConflict
	case errs.KindValidation:
		code = http.StatusBadRequest
	case errs.KindAuth:
		code = http.StatusUnauthorized
	case errs.KindForbidden:
		code = http.StatusForbidden
	case errs.KindPersistence:
		code = http.StatusServiceUnavailable
	default:
		h.log.Error("internal error", zap.Error(err))
	}
	return echo.NewHTTPError(code, errs.ErrorResponse{Message: err.Error(), Kind: kind})
}

func badRequest(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, errs.ErrorResponse{Message: err.Error(), Kind: errs.KindValidation})
}
