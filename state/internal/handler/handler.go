package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	md "github.com/Astemirdum/library-desk/pkg/middleware"
	"github.com/Astemirdum/library-desk/state/internal/errs"
	"github.com/Astemirdum/library-desk/state/internal/model"
)

type Handler struct {
	stateSvc StateService
	log      *zap.Logger
}

func New(stateSvc StateService, log *zap.Logger) *Handler {
	return &Handler{
		stateSvc: stateSvc,
		log:      log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{StackSize: 4 << 10}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
	}))
	e.Use(middleware.BodyLimit(md.BodyLimit))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.GET("/state", h.GetState)
	api.POST("/state", h.SaveState)
	api.Match([]string{http.MethodPut, http.MethodPatch, http.MethodDelete}, "/state", h.MethodNotAllowed)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) GetState(c echo.Context) error {
	data, err := h.stateSvc.GetState(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
	}
	return c.JSONBlob(http.StatusOK, data)
}

func (h *Handler) SaveState(c echo.Context) error {
	var version int64
	if v := c.Request().Header.Get(model.VersionHeader); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: errs.ErrInvalidVersion.Error()})
		}
		version = n
	}
	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
	}
	if err := h.stateSvc.SaveState(c.Request().Context(), data, version); err != nil {
		switch {
		case errors.Is(err, errs.ErrStaleState):
			return c.JSON(http.StatusConflict, model.ErrorResponse{Error: err.Error()})
		case !errors.Is(err, errs.ErrInvalidJSON):
			h.log.Error("SaveState", zap.Error(err))
		}
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, model.SuccessResponse{Success: true})
}

func (h *Handler) MethodNotAllowed(c echo.Context) error {
	return c.JSON(http.StatusMethodNotAllowed, model.ErrorResponse{Error: errs.ErrMethodNotAllowed.Error()})
}
