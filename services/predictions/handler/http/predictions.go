package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nycrides/tripcast/internal/pkg/models"
	nrpkg "github.com/nycrides/tripcast/internal/pkg/newrelic"
	"github.com/nycrides/tripcast/internal/utils"
	"github.com/nycrides/tripcast/services/predictions"
)

// PredictionsHandler handles prediction related HTTP requests
type PredictionsHandler struct {
	predictionUC predictions.PredictionUC
}

// NewPredictionsHandler creates a new prediction handler
func NewPredictionsHandler(predictionUC predictions.PredictionUC) *PredictionsHandler {
	return &PredictionsHandler{predictionUC: predictionUC}
}

// Predict handles POST /api/predictions/predict
func (h *PredictionsHandler) Predict(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "predictions/predict")

	var req models.TripFeatures
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}
	nrpkg.AddTransactionAttribute(txn, "user.id", userID.String())

	prediction, err := h.predictionUC.Predict(c.Request().Context(), userID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "prediction generated", prediction)
}

// ModelInfo handles GET /api/predictions/model-info
func (h *PredictionsHandler) ModelInfo(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "predictions/model-info")

	info, err := h.predictionUC.ModelInfo(c.Request().Context())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "model info retrieved", info)
}

// ListTrips handles GET /api/trips
func (h *PredictionsHandler) ListTrips(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "predictions/trips")

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "limit must be an integer")
		}
		limit = parsed
	}

	trips, err := h.predictionUC.ListTrips(c.Request().Context(), userID, limit)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "trips retrieved", trips)
}
