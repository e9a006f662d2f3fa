package routes

import (
	"context"

	"github.com/google/uuid"

	"github.com/nycrides/tripcast/internal/pkg/models"
)

// RouteRepo defines the data access layer for optimized routes.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/nycrides/tripcast/services/routes RouteRepo
type RouteRepo interface {
	// SaveRoute persists a route and its steps for the given trip.
	SaveRoute(ctx context.Context, tripID uuid.UUID, route *models.Route) error
}
