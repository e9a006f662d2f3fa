package predictions

import (
	"context"

	"github.com/nycrides/tripcast/internal/pkg/models"
)

// PredictionGW defines the interface for publishing prediction events to
// downstream consumers.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/nycrides/tripcast/services/predictions PredictionGW
type PredictionGW interface {
	// PublishPredictionCompleted publishes an event after a prediction
	// has been served.
	PublishPredictionCompleted(ctx context.Context, event models.PredictionEvent) error
}
