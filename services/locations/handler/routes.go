package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nycrides/tripcast/services/locations"
	httphandler "github.com/nycrides/tripcast/services/locations/handler/http"
)

// RegisterRoutes wires saved location endpoints onto the API group
func RegisterRoutes(api *echo.Group, locationUC locations.LocationUC, authMW echo.MiddlewareFunc) {
	h := httphandler.NewLocationsHandler(locationUC)

	group := api.Group("/locations", authMW)
	group.POST("", h.Create)
	group.GET("", h.List)
	group.DELETE("/:id", h.Delete)
}
