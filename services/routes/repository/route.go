package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nycrides/tripcast/internal/pkg/database"
	"github.com/nycrides/tripcast/internal/pkg/models"
	"github.com/nycrides/tripcast/services/routes"
)

type routeRepo struct {
	db *database.PostgresClient
}

// NewRouteRepo creates a postgres-backed route repository
func NewRouteRepo(db *database.PostgresClient) routes.RouteRepo {
	return &routeRepo{db: db}
}

// SaveRoute stores the route and its steps in one transaction so a route
// row never exists without its steps.
func (r *routeRepo) SaveRoute(ctx context.Context, tripID uuid.UUID, route *models.Route) error {
	tx, err := r.db.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin route transaction: %w", err)
	}
	defer tx.Rollback()

	routeID := uuid.New()
	routeQuery := `
		INSERT INTO routes (id, trip_id, distance, duration, geometry, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`
	if _, err := tx.ExecContext(ctx, routeQuery,
		routeID, tripID, route.Distance, route.Duration, []byte(route.Geometry)); err != nil {
		return fmt.Errorf("failed to insert route: %w", err)
	}

	stepQuery := `
		INSERT INTO route_steps (
			id, route_id, segment_index, step_index,
			distance, duration, instruction, name
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for segIdx, segment := range route.Segments {
		for stepIdx, step := range segment.Steps {
			if _, err := tx.ExecContext(ctx, stepQuery,
				uuid.New(), routeID, segIdx, stepIdx,
				step.Distance, step.Duration, step.Instruction, step.Name); err != nil {
				return fmt.Errorf("failed to insert route step: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit route transaction: %w", err)
	}
	return nil
}
