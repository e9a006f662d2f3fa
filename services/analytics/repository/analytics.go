package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/nycrides/tripcast/internal/pkg/database"
	"github.com/nycrides/tripcast/internal/pkg/models"
	"github.com/nycrides/tripcast/services/analytics"
)

type analyticsRepo struct {
	db *database.PostgresClient
}

// NewAnalyticsRepo creates a postgres-backed analytics repository
func NewAnalyticsRepo(db *database.PostgresClient) analytics.AnalyticsRepo {
	return &analyticsRepo{db: db}
}

func (r *analyticsRepo) TripTotals(ctx context.Context, since time.Time) (*analytics.TripTotals, error) {
	query := `
		SELECT COUNT(*) AS total_trips,
		       COALESCE(AVG(predicted_duration_seconds) / 60, 0) AS avg_duration_minutes,
		       COALESCE(AVG(distance_km), 0) AS avg_distance_km
		FROM trips
		WHERE created_at >= $1`

	var totals analytics.TripTotals
	if err := r.db.GetDB().GetContext(ctx, &totals, query, since); err != nil {
		return nil, fmt.Errorf("failed to aggregate trips: %w", err)
	}
	return &totals, nil
}

func (r *analyticsRepo) HourlyPattern(ctx context.Context, since time.Time) ([]models.HourlyCount, error) {
	query := `
		SELECT EXTRACT(HOUR FROM pickup_datetime)::int AS hour,
		       COUNT(*)::int AS trips
		FROM trips
		WHERE created_at >= $1
		GROUP BY hour
		ORDER BY hour`

	pattern := []models.HourlyCount{}
	if err := r.db.GetDB().SelectContext(ctx, &pattern, query, since); err != nil {
		return nil, fmt.Errorf("failed to aggregate hourly pattern: %w", err)
	}
	return pattern, nil
}
