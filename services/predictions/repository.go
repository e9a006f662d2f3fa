package predictions

import (
	"context"

	"github.com/google/uuid"

	"github.com/nycrides/tripcast/internal/pkg/models"
)

// TripRepo defines the data access layer for predicted trips.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/nycrides/tripcast/services/predictions TripRepo
type TripRepo interface {
	// CreateTrip persists a predicted trip record.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// ListTripsByUser returns a user's predicted trips, newest first.
	ListTripsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Trip, error)
}
