package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nycrides/tripcast/internal/pkg/database"
	"github.com/nycrides/tripcast/internal/pkg/models"
	"github.com/nycrides/tripcast/services/locations"
)

type locationRepo struct {
	db *database.PostgresClient
}

// NewLocationRepo creates a postgres-backed saved locations repository
func NewLocationRepo(db *database.PostgresClient) locations.LocationRepo {
	return &locationRepo{db: db}
}

func (r *locationRepo) CreateLocation(ctx context.Context, location *models.SavedLocation) error {
	query := `
		INSERT INTO saved_locations (
			id, user_id, name, address, latitude, longitude, geohash,
			created_at, updated_at
		) VALUES (
			:id, :user_id, :name, :address, :latitude, :longitude, :geohash,
			NOW(), NOW()
		)`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, location)
	if err != nil {
		return fmt.Errorf("failed to create saved location: %w", err)
	}
	return nil
}

func (r *locationRepo) ListLocationsByUser(ctx context.Context, userID uuid.UUID) ([]models.SavedLocation, error) {
	query := `
		SELECT id, user_id, name, address, latitude, longitude, geohash,
		       created_at, updated_at
		FROM saved_locations
		WHERE user_id = $1
		ORDER BY created_at DESC`

	result := []models.SavedLocation{}
	if err := r.db.GetDB().SelectContext(ctx, &result, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list saved locations: %w", err)
	}
	return result, nil
}

func (r *locationRepo) DeleteLocation(ctx context.Context, userID, locationID uuid.UUID) (bool, error) {
	query := `DELETE FROM saved_locations WHERE id = $1 AND user_id = $2`

	result, err := r.db.GetDB().ExecContext(ctx, query, locationID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete saved location: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}
