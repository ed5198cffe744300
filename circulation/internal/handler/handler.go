package handler

import (
	"io"
	"net/http"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/auth"
	md "github.com/Astemirdum/library-circulation/pkg/middleware"
	"github.com/Astemirdum/library-circulation/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	svc    CirculationService
	sweeps SweepService
	log    *zap.Logger
}

func New(svc CirculationService, sweeps SweepService, log *zap.Logger) *Handler {
	return &Handler{
		svc:    svc,
		sweeps: sweeps,
		log:    log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPost},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.AuthContext,
	)
	staff := md.RequireRole(auth.RoleLibrarian, auth.RoleAdmin)
	admin := md.RequireRole(auth.RoleAdmin)

	api.POST("/issues", h.IssueBook, staff)
	api.GET("/issues/overdue", h.GetOverdueBooks, staff)
	api.GET("/issues/:issueId", h.GetIssue)
	api.POST("/issues/:issueId/return", h.ReturnBook, staff)
	api.POST("/issues/:issueId/fine/recalculate", h.RecalculateFine, staff)
	api.POST("/issues/:issueId/fine/payments", h.RecordPayment, staff)
	api.GET("/issues/:issueId/fine/payments", h.ListPayments)
	api.POST("/issues/:issueId/fine/waive", h.WaiveFine, staff)

	api.GET("/users/:userId/issues", h.ListUserIssues)
	api.GET("/users/:userId/fines", h.GetUserOutstandingFines)

	api.GET("/fines/configuration", h.GetFineConfiguration)
	api.PUT("/fines/configuration", h.UpdateFineConfiguration, admin)
	api.GET("/fines/configuration/history", h.FineConfigurationHistory, admin)

	api.POST("/admin/sweeps/fines", h.SweepFines, admin)
	api.POST("/admin/sweeps/overdue", h.SweepOverdue, admin)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps service error kinds onto status codes.
func (h *Handler) httpError(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrBadRequest):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrInternalConsistency):
		h.log.Error("internal consistency violation", zap.Error(err))
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func actor(c echo.Context) (string, error) {
	userID, err := auth.GetUserID(c.Request().Context())
	if err != nil {
		return "", echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return userID, nil
}

// selfOrStaff lets members read only their own records.
func selfOrStaff(c echo.Context, userID string) error {
	ctx := c.Request().Context()
	role, err := auth.GetUserRole(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if role == auth.RoleAdmin || role == auth.RoleLibrarian {
		return nil
	}
	if self, _ := auth.GetUserID(ctx); self != userID {
		return echo.NewHTTPError(http.StatusForbidden, "members may only read their own records")
	}
	return nil
}

func (h *Handler) IssueBook(c echo.Context) error {
	processedBy, err := actor(c)
	if err != nil {
		return err
	}
	var req model.IssueBookRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err = c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	issue, err := h.svc.IssueBook(c.Request().Context(), req.BookID, req.IssuedToID, processedBy)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, issue)
}

func (h *Handler) GetIssue(c echo.Context) error {
	issue, err := h.svc.GetIssue(c.Request().Context(), c.Param("issueId"))
	if err != nil {
		return h.httpError(err)
	}
	if err = selfOrStaff(c, issue.IssuedToID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, issue)
}

func (h *Handler) ReturnBook(c echo.Context) error {
	processedBy, err := actor(c)
	if err != nil {
		return err
	}
	var req model.ReturnBookRequest
	// the body is optional
	if err = c.Bind(&req); err != nil && !errors.Is(err, io.EOF) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	issue, err := h.svc.ReturnBook(c.Request().Context(), c.Param("issueId"), processedBy, req.AdditionalFine)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, issue)
}

func (h *Handler) RecalculateFine(c echo.Context) error {
	issue, err := h.svc.RecalculateFine(c.Request().Context(), c.Param("issueId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, issue)
}

func (h *Handler) RecordPayment(c echo.Context) error {
	receivedBy, err := actor(c)
	if err != nil {
		return err
	}
	var req model.PaymentRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err = c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.svc.RecordPayment(c.Request().Context(), c.Param("issueId"), req.Amount, req.Method, receivedBy)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) ListPayments(c echo.Context) error {
	payments, err := h.svc.ListPayments(c.Request().Context(), c.Param("issueId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, payments)
}

func (h *Handler) WaiveFine(c echo.Context) error {
	actorID, err := actor(c)
	if err != nil {
		return err
	}
	var req model.WaiveRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	issue, err := h.svc.WaiveFine(c.Request().Context(), c.Param("issueId"), req.Reason, actorID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, issue)
}

func (h *Handler) GetOverdueBooks(c echo.Context) error {
	items, err := h.svc.GetOverdueBooks(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListUserIssues(c echo.Context) error {
	userID := c.Param("userId")
	if err := selfOrStaff(c, userID); err != nil {
		return err
	}
	items, err := h.svc.ListUserIssues(c.Request().Context(), userID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetUserOutstandingFines(c echo.Context) error {
	userID := c.Param("userId")
	if err := selfOrStaff(c, userID); err != nil {
		return err
	}
	fines, err := h.svc.GetUserOutstandingFines(c.Request().Context(), userID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, fines)
}

func (h *Handler) GetFineConfiguration(c echo.Context) error {
	cfg, err := h.svc.GetFineConfiguration(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, cfg)
}

func (h *Handler) UpdateFineConfiguration(c echo.Context) error {
	actorID, err := actor(c)
	if err != nil {
		return err
	}
	var req model.FineConfigurationRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cfg, err := h.svc.UpdateFineConfiguration(c.Request().Context(), req, actorID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, cfg)
}

func (h *Handler) FineConfigurationHistory(c echo.Context) error {
	items, err := h.svc.FineConfigurationHistory(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) SweepFines(c echo.Context) error {
	res, err := h.sweeps.SweepFines(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) SweepOverdue(c echo.Context) error {
	res, err := h.sweeps.SweepOverdue(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}
