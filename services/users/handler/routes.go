package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nycrides/tripcast/services/users"
	httphandler "github.com/nycrides/tripcast/services/users/handler/http"
)

// RegisterRoutes wires authentication and profile endpoints onto the API
// group. Auth endpoints are public, the profile endpoint requires a token.
func RegisterRoutes(api *echo.Group, userUC users.UserUC, authMW echo.MiddlewareFunc) {
	h := httphandler.NewUsersHandler(userUC)

	auth := api.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)

	api.GET("/users/me", h.Me, authMW)
}
