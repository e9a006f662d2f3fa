package analytics

import (
	"context"
	"time"

	"github.com/nycrides/tripcast/internal/pkg/models"
)

// AnalyticsUC defines the business logic for the admin analytics view.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/nycrides/tripcast/services/analytics AnalyticsUC
type AnalyticsUC interface {
	// Summary aggregates predicted trips recorded since the given time.
	Summary(ctx context.Context, since time.Time) (*models.AnalyticsSummary, error)
}
