package predictions

import (
	"context"

	"github.com/google/uuid"

	"github.com/nycrides/tripcast/internal/pkg/models"
)

// PredictionUC defines the business logic for trip duration predictions.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/nycrides/tripcast/services/predictions PredictionUC
type PredictionUC interface {
	// Predict estimates the duration of a trip described by the given
	// features and records the prediction for the requesting user.
	Predict(ctx context.Context, userID uuid.UUID, trip models.TripFeatures) (*models.TripPrediction, error)

	// ModelInfo returns metadata about the currently loaded model.
	ModelInfo(ctx context.Context) (*models.ModelInfo, error)

	// ListTrips returns the most recent predicted trips for a user.
	ListTrips(ctx context.Context, userID uuid.UUID, limit int) ([]models.Trip, error)
}
