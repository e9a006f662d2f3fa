package locations

import (
	"context"

	"github.com/google/uuid"

	"github.com/nycrides/tripcast/internal/pkg/models"
)

// LocationRepo defines the data access layer for saved places.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/nycrides/tripcast/services/locations LocationRepo
type LocationRepo interface {
	// CreateLocation persists a saved place.
	CreateLocation(ctx context.Context, location *models.SavedLocation) error

	// ListLocationsByUser returns a user's saved places, newest first.
	ListLocationsByUser(ctx context.Context, userID uuid.UUID) ([]models.SavedLocation, error)

	// DeleteLocation removes a saved place owned by the user. It reports
	// whether a row was actually deleted.
	DeleteLocation(ctx context.Context, userID, locationID uuid.UUID) (bool, error)
}
