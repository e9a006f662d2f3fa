package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/nycrides/tripcast/internal/pkg/apperrors"
	"github.com/nycrides/tripcast/internal/pkg/models"
	nrpkg "github.com/nycrides/tripcast/internal/pkg/newrelic"
	"github.com/nycrides/tripcast/internal/utils"
	"github.com/nycrides/tripcast/services/locations"
)

// locationGeohashLength gives roughly street-level cells, enough to group
// nearby saved places.
const locationGeohashLength = 7

type locationUC struct {
	locationRepo locations.LocationRepo
}

// NewLocationUC creates the saved locations usecase
func NewLocationUC(locationRepo locations.LocationRepo) locations.LocationUC {
	return &locationUC{locationRepo: locationRepo}
}

func (uc *locationUC) SaveLocation(ctx context.Context, userID uuid.UUID, req models.SavedLocationRequest) (*models.SavedLocation, error) {
	if segment := nrpkg.StartSegment(nrpkg.FromContext(ctx), "LocationUC.SaveLocation"); segment != nil {
		defer segment.End()
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.New(apperrors.KindValidation, "name must not be empty")
	}
	if !utils.ValidCoordinates(req.Latitude, req.Longitude) {
		return nil, apperrors.New(apperrors.KindValidation, "coordinates out of range")
	}

	location := &models.SavedLocation{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Address:   strings.TrimSpace(req.Address),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Geohash:   utils.EncodeLocation(req.Latitude, req.Longitude, locationGeohashLength),
	}
	if err := uc.locationRepo.CreateLocation(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (uc *locationUC) ListLocations(ctx context.Context, userID uuid.UUID) ([]models.SavedLocation, error) {
	if segment := nrpkg.StartSegment(nrpkg.FromContext(ctx), "LocationUC.ListLocations"); segment != nil {
		defer segment.End()
	}
	return uc.locationRepo.ListLocationsByUser(ctx, userID)
}

func (uc *locationUC) DeleteLocation(ctx context.Context, userID, locationID uuid.UUID) error {
	if segment := nrpkg.StartSegment(nrpkg.FromContext(ctx), "LocationUC.DeleteLocation"); segment != nil {
		defer segment.End()
	}

	deleted, err := uc.locationRepo.DeleteLocation(ctx, userID, locationID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.New(apperrors.KindNotFound, "saved location not found")
	}
	return nil
}
