package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nycrides/tripcast/services/predictions"
	httphandler "github.com/nycrides/tripcast/services/predictions/handler/http"
)

// RegisterRoutes wires prediction endpoints onto the API group. The auth
// middleware is required; extra middlewares (rate limiting) apply to the
// prediction endpoint only.
func RegisterRoutes(api *echo.Group, predictionUC predictions.PredictionUC, authMW echo.MiddlewareFunc, predictMWs ...echo.MiddlewareFunc) {
	h := httphandler.NewPredictionsHandler(predictionUC)

	group := api.Group("/predictions", authMW)
	group.POST("/predict", h.Predict, predictMWs...)
	group.GET("/model-info", h.ModelInfo)

	api.GET("/trips", h.ListTrips, authMW)
}
