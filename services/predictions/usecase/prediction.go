package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nycrides/tripcast/internal/pkg/apperrors"
	"github.com/nycrides/tripcast/internal/pkg/logger"
	"github.com/nycrides/tripcast/internal/pkg/models"
	nrpkg "github.com/nycrides/tripcast/internal/pkg/newrelic"
	"github.com/nycrides/tripcast/internal/utils"
	"github.com/nycrides/tripcast/services/predictions"
	"github.com/nycrides/tripcast/services/predictions/model"
)

const (
	defaultTripListLimit = 50
	maxTripListLimit     = 200
	pickupGeohashLength  = 7
)

type predictionUC struct {
	cfg          *models.Config
	model        *model.Handle
	tripRepo     predictions.TripRepo
	predictionGW predictions.PredictionGW
}

// NewPredictionUC creates the prediction usecase. The trip repository and
// prediction gateway may be nil, in which case predictions are served
// without being recorded or published.
func NewPredictionUC(cfg *models.Config, handle *model.Handle, tripRepo predictions.TripRepo, predictionGW predictions.PredictionGW) predictions.PredictionUC {
	return &predictionUC{
		cfg:          cfg,
		model:        handle,
		tripRepo:     tripRepo,
		predictionGW: predictionGW,
	}
}

func (uc *predictionUC) Predict(ctx context.Context, userID uuid.UUID, trip models.TripFeatures) (*models.TripPrediction, error) {
	if segment := nrpkg.StartSegment(nrpkg.FromContext(ctx), "PredictionUC.Predict"); segment != nil {
		defer segment.End()
	}

	artifact, err := uc.model.Get()
	if err != nil {
		logger.Error("failed to load prediction model", logger.Err(err))
		return nil, apperrors.Wrap(apperrors.KindModelUnavailable, "prediction model is not available", err)
	}

	vector, err := BuildFeatureVector(trip)
	if err != nil {
		return nil, err
	}

	seconds := artifact.Predict(vector)
	prediction := &models.TripPrediction{
		TripDurationSeconds: seconds,
		TripDurationMinutes: seconds / 60,
		Confidence:          model.DefaultConfidence,
	}

	uc.recordTrip(ctx, userID, trip, vector, seconds)
	uc.publishPrediction(ctx, userID, trip, vector, seconds)

	return prediction, nil
}

// recordTrip persists the prediction for the user's trip history. Failures
// are logged and never fail the prediction itself.
func (uc *predictionUC) recordTrip(ctx context.Context, userID uuid.UUID, trip models.TripFeatures, vector models.FeatureVector, seconds float64) {
	if uc.tripRepo == nil {
		return
	}

	pickupTime, _ := time.Parse(models.PickupDatetimeLayout, trip.PickupDatetime)
	record := &models.Trip{
		ID:                       uuid.New(),
		UserID:                   userID,
		PickupLatitude:           trip.PickupLatitude,
		PickupLongitude:          trip.PickupLongitude,
		DropoffLatitude:          trip.DropoffLatitude,
		DropoffLongitude:         trip.DropoffLongitude,
		PredictedDurationSeconds: seconds,
		DistanceKm:               vector["distance_km"],
		PassengerCount:           trip.PassengerCount,
		VendorID:                 trip.VendorID,
		StoreAndFwdFlag:          trip.StoreAndFwdFlag,
		PickupDatetime:           pickupTime,
	}
	if err := uc.tripRepo.CreateTrip(ctx, record); err != nil {
		logger.Warn("failed to record predicted trip",
			logger.String("user_id", userID.String()),
			logger.Err(err))
	}
}

// publishPrediction emits the prediction event for analytics consumers.
// Failures are logged and never fail the prediction itself.
func (uc *predictionUC) publishPrediction(ctx context.Context, userID uuid.UUID, trip models.TripFeatures, vector models.FeatureVector, seconds float64) {
	if uc.predictionGW == nil {
		return
	}

	event := models.PredictionEvent{
		UserID:          userID.String(),
		PickupLatitude:  trip.PickupLatitude,
		PickupLongitude: trip.PickupLongitude,
		DistanceKm:      vector["distance_km"],
		DurationSeconds: seconds,
		PickupGeohash:   utils.EncodeLocation(trip.PickupLatitude, trip.PickupLongitude, pickupGeohashLength),
		PredictedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := uc.predictionGW.PublishPredictionCompleted(ctx, event); err != nil {
		logger.Warn("failed to publish prediction event",
			logger.String("user_id", userID.String()),
			logger.Err(err))
	}
}

func (uc *predictionUC) ModelInfo(ctx context.Context) (*models.ModelInfo, error) {
	if segment := nrpkg.StartSegment(nrpkg.FromContext(ctx), "PredictionUC.ModelInfo"); segment != nil {
		defer segment.End()
	}

	artifact, err := uc.model.Get()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindModelUnavailable, "prediction model is not available", err)
	}

	return &models.ModelInfo{
		ModelType:          artifact.ModelType,
		ModelVersion:       artifact.ModelVersion,
		ModelCreated:       artifact.CreatedAt,
		FeaturesUsed:       artifact.Features,
		FeatureImportances: artifact.FeatureImportances,
	}, nil
}

func (uc *predictionUC) ListTrips(ctx context.Context, userID uuid.UUID, limit int) ([]models.Trip, error) {
	if segment := nrpkg.StartSegment(nrpkg.FromContext(ctx), "PredictionUC.ListTrips"); segment != nil {
		defer segment.End()
	}

	if uc.tripRepo == nil {
		return []models.Trip{}, nil
	}
	if limit <= 0 {
		limit = defaultTripListLimit
	}
	if limit > maxTripListLimit {
		limit = maxTripListLimit
	}
	return uc.tripRepo.ListTripsByUser(ctx, userID, limit)
}
