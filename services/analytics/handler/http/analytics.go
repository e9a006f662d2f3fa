package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	nrpkg "github.com/nycrides/tripcast/internal/pkg/newrelic"
	"github.com/nycrides/tripcast/internal/utils"
	"github.com/nycrides/tripcast/services/analytics"
)

const (
	defaultWindowDays = 30
	maxWindowDays     = 365
)

// AnalyticsHandler handles admin analytics HTTP requests
type AnalyticsHandler struct {
	analyticsUC analytics.AnalyticsUC
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsUC analytics.AnalyticsUC) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: analyticsUC}
}

// Summary handles GET /api/admin/analytics
func (h *AnalyticsHandler) Summary(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "admin/analytics")

	days := defaultWindowDays
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxWindowDays {
			return utils.BadRequestResponse(c, "days must be between 1 and 365")
		}
		days = parsed
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	summary, err := h.analyticsUC.Summary(c.Request().Context(), since)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "analytics retrieved", summary)
}
