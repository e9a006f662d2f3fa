package usecase

import (
	"context"
	"time"

	"github.com/nycrides/tripcast/internal/pkg/models"
	nrpkg "github.com/nycrides/tripcast/internal/pkg/newrelic"
	"github.com/nycrides/tripcast/services/analytics"
)

type analyticsUC struct {
	analyticsRepo analytics.AnalyticsRepo
}

// NewAnalyticsUC creates the analytics usecase
func NewAnalyticsUC(analyticsRepo analytics.AnalyticsRepo) analytics.AnalyticsUC {
	return &analyticsUC{analyticsRepo: analyticsRepo}
}

func (uc *analyticsUC) Summary(ctx context.Context, since time.Time) (*models.AnalyticsSummary, error) {
	if segment := nrpkg.StartSegment(nrpkg.FromContext(ctx), "AnalyticsUC.Summary"); segment != nil {
		defer segment.End()
	}

	totals, err := uc.analyticsRepo.TripTotals(ctx, since)
	if err != nil {
		return nil, err
	}
	hourly, err := uc.analyticsRepo.HourlyPattern(ctx, since)
	if err != nil {
		return nil, err
	}
	if hourly == nil {
		hourly = []models.HourlyCount{}
	}

	return &models.AnalyticsSummary{
		TotalTrips:         totals.TotalTrips,
		AvgDurationMinutes: totals.AvgDurationMinutes,
		AvgDistanceKm:      totals.AvgDistanceKm,
		HourlyPattern:      hourly,
		Since:              since,
	}, nil
}
