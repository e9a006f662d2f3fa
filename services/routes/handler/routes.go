package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nycrides/tripcast/services/routes"
	httphandler "github.com/nycrides/tripcast/services/routes/handler/http"
)

// RegisterRoutes wires route endpoints onto the API group. Extra
// middlewares (rate limiting) apply to the optimize endpoint only.
func RegisterRoutes(api *echo.Group, routeUC routes.RouteUC, authMW echo.MiddlewareFunc, optimizeMWs ...echo.MiddlewareFunc) {
	h := httphandler.NewRoutesHandler(routeUC)

	group := api.Group("/routes", authMW)
	group.POST("/optimize", h.Optimize, optimizeMWs...)
	group.GET("/geocode", h.Geocode)
}
