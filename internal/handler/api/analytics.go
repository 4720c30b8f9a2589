package api

import (
	models "github.com/Vivesh2911/NeoWallet/internal/domain/models"
	"github.com/Vivesh2911/NeoWallet/internal/usecase"
	xhttp "github.com/Vivesh2911/NeoWallet/pkg/http"
	xlogger "github.com/Vivesh2911/NeoWallet/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves the derived-statistics endpoints.
type AnalyticsHandler struct {
	logger    *xlogger.Logger
	analytics *usecase.AnalyticsUseCase
	days      int
}

func NewAnalyticsHandler(lgr *xlogger.Logger, analytics *usecase.AnalyticsUseCase, activityDays int) *AnalyticsHandler {
	if activityDays <= 0 {
		activityDays = 7
	}
	return &AnalyticsHandler{logger: lgr, analytics: analytics, days: activityDays}
}

func (h *AnalyticsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/analytics", h.Overview)
	g.GET("/activity", h.Activity)
}

func (h *AnalyticsHandler) Overview(c echo.Context) error {
	req := &models.AnalyticsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	overview, err := h.analytics.GetOverview(c.Request().Context(), usecase.GetOverviewParams{
		Limit: req.Limit,
		Days:  h.days,
	})
	if err != nil {
		h.logger.Error("analytics usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("ledger unavailable"))
	}
	return xhttp.SuccessResponse(c, overview)
}

func (h *AnalyticsHandler) Activity(c echo.Context) error {
	req := &models.ActivityRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	buckets, err := h.analytics.GetActivity(c.Request().Context(), usecase.GetOverviewParams{
		Limit: req.Limit,
		Days:  req.Days,
	})
	if err != nil {
		h.logger.Error("activity usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("ledger unavailable"))
	}
	return xhttp.ListResponse(c, buckets, int64(len(buckets)))
}
