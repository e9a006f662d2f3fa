package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nycrides/tripcast/internal/pkg/models"
	nrpkg "github.com/nycrides/tripcast/internal/pkg/newrelic"
	"github.com/nycrides/tripcast/internal/utils"
	"github.com/nycrides/tripcast/services/locations"
)

// LocationsHandler handles saved location HTTP requests
type LocationsHandler struct {
	locationUC locations.LocationUC
}

// NewLocationsHandler creates a new locations handler
func NewLocationsHandler(locationUC locations.LocationUC) *LocationsHandler {
	return &LocationsHandler{locationUC: locationUC}
}

// Create handles POST /api/locations
func (h *LocationsHandler) Create(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "locations/create")

	var req models.SavedLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}

	location, err := h.locationUC.SaveLocation(c.Request().Context(), userID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "location saved", location)
}

// List handles GET /api/locations
func (h *LocationsHandler) List(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "locations/list")

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}

	result, err := h.locationUC.ListLocations(c.Request().Context(), userID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "locations retrieved", result)
}

// Delete handles DELETE /api/locations/:id
func (h *LocationsHandler) Delete(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "locations/delete")

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid location id")
	}

	if err := h.locationUC.DeleteLocation(c.Request().Context(), userID, locationID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "location deleted", nil)
}
