package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nycrides/tripcast/internal/pkg/models"
	nrpkg "github.com/nycrides/tripcast/internal/pkg/newrelic"
	"github.com/nycrides/tripcast/internal/utils"
	"github.com/nycrides/tripcast/services/routes"
)

// RoutesHandler handles route optimization HTTP requests
type RoutesHandler struct {
	routeUC routes.RouteUC
}

// NewRoutesHandler creates a new routes handler
func NewRoutesHandler(routeUC routes.RouteUC) *RoutesHandler {
	return &RoutesHandler{routeUC: routeUC}
}

// Optimize handles POST /api/routes/optimize
func (h *RoutesHandler) Optimize(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "routes/optimize")

	var req models.RouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}

	route, err := h.routeUC.Optimize(c.Request().Context(), userID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "route optimized", route)
}

// Geocode handles GET /api/routes/geocode
func (h *RoutesHandler) Geocode(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "routes/geocode")

	results, err := h.routeUC.Geocode(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "places retrieved", results)
}
