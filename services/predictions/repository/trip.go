package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nycrides/tripcast/internal/pkg/database"
	"github.com/nycrides/tripcast/internal/pkg/models"
	"github.com/nycrides/tripcast/services/predictions"
)

type tripRepo struct {
	db *database.PostgresClient
}

// NewTripRepo creates a postgres-backed trip repository
func NewTripRepo(db *database.PostgresClient) predictions.TripRepo {
	return &tripRepo{db: db}
}

func (r *tripRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	query := `
		INSERT INTO trips (
			id, user_id,
			pickup_latitude, pickup_longitude,
			dropoff_latitude, dropoff_longitude,
			predicted_duration_seconds, distance_km,
			passenger_count, vendor_id, store_and_fwd_flag,
			pickup_datetime, created_at
		) VALUES (
			:id, :user_id,
			:pickup_latitude, :pickup_longitude,
			:dropoff_latitude, :dropoff_longitude,
			:predicted_duration_seconds, :distance_km,
			:passenger_count, :vendor_id, :store_and_fwd_flag,
			:pickup_datetime, NOW()
		)`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, trip)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

func (r *tripRepo) ListTripsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Trip, error) {
	query := `
		SELECT id, user_id,
		       pickup_latitude, pickup_longitude,
		       dropoff_latitude, dropoff_longitude,
		       predicted_duration_seconds, distance_km,
		       passenger_count, vendor_id, store_and_fwd_flag,
		       pickup_datetime, created_at
		FROM trips
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	trips := []models.Trip{}
	if err := r.db.GetDB().SelectContext(ctx, &trips, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}
