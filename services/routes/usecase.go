package routes

import (
	"context"

	"github.com/google/uuid"

	"github.com/nycrides/tripcast/internal/pkg/models"
)

// RouteUC defines the business logic for route optimization and place
// search.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/nycrides/tripcast/services/routes RouteUC
type RouteUC interface {
	// Optimize requests directions between two points and returns the
	// best route found.
	Optimize(ctx context.Context, userID uuid.UUID, req models.RouteRequest) (*models.Route, error)

	// Geocode searches for places matching the query, biased towards the
	// configured focus point.
	Geocode(ctx context.Context, query string) ([]models.GeocodeResult, error)
}
