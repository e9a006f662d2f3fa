package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nycrides/tripcast/internal/pkg/middleware"
	"github.com/nycrides/tripcast/internal/pkg/models"
	"github.com/nycrides/tripcast/services/analytics"
	httphandler "github.com/nycrides/tripcast/services/analytics/handler/http"
)

// RegisterRoutes wires the admin analytics endpoint onto the API group
func RegisterRoutes(api *echo.Group, analyticsUC analytics.AnalyticsUC, authMW echo.MiddlewareFunc) {
	h := httphandler.NewAnalyticsHandler(analyticsUC)

	group := api.Group("/admin", authMW, middleware.RequireRole(models.RoleAdmin))
	group.GET("/analytics", h.Summary)
}
