package locations

import (
	"context"

	"github.com/google/uuid"

	"github.com/nycrides/tripcast/internal/pkg/models"
)

// LocationUC defines the business logic for a user's saved places.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/nycrides/tripcast/services/locations LocationUC
type LocationUC interface {
	// SaveLocation stores a named place for the user.
	SaveLocation(ctx context.Context, userID uuid.UUID, req models.SavedLocationRequest) (*models.SavedLocation, error)

	// ListLocations returns all of the user's saved places.
	ListLocations(ctx context.Context, userID uuid.UUID) ([]models.SavedLocation, error)

	// DeleteLocation removes one of the user's saved places.
	DeleteLocation(ctx context.Context, userID, locationID uuid.UUID) error
}
