package analytics

import (
	"context"
	"time"

	"github.com/nycrides/tripcast/internal/pkg/models"
)

// TripTotals is the aggregate over all trips in a window
type TripTotals struct {
	TotalTrips         int     `db:"total_trips"`
	AvgDurationMinutes float64 `db:"avg_duration_minutes"`
	AvgDistanceKm      float64 `db:"avg_distance_km"`
}

// AnalyticsRepo defines the aggregate queries behind the analytics view.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/nycrides/tripcast/services/analytics AnalyticsRepo
type AnalyticsRepo interface {
	// TripTotals aggregates trips recorded since the given time.
	TripTotals(ctx context.Context, since time.Time) (*TripTotals, error)

	// HourlyPattern counts trips per pickup hour since the given time.
	HourlyPattern(ctx context.Context, since time.Time) ([]models.HourlyCount, error)
}
