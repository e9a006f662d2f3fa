package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nycrides/tripcast/internal/pkg/apperrors"
	"github.com/nycrides/tripcast/internal/pkg/models"
	"github.com/nycrides/tripcast/services/predictions/mocks"
	"github.com/nycrides/tripcast/services/predictions/model"
)

const testArtifactJSON = `{
	"model_type": "linear_regression",
	"model_version": "2016.1",
	"created_at": "2016-06-01T00:00:00Z",
	"features": ["distance_km", "passenger_count"],
	"intercept": 300,
	"coefficients": {"distance_km": 120, "passenger_count": 5}
}`

func testModelHandle(t *testing.T) *model.Handle {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(testArtifactJSON), 0o600))
	return model.NewHandle(path)
}

func TestPredict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tripRepo := mocks.NewMockTripRepo(ctrl)
	predictionGW := mocks.NewMockPredictionGW(ctrl)
	uc := NewPredictionUC(&models.Config{}, testModelHandle(t), tripRepo, predictionGW)

	userID := uuid.New()
	tripRepo.EXPECT().
		CreateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trip *models.Trip) error {
			assert.Equal(t, userID, trip.UserID)
			assert.Equal(t, 2, trip.PassengerCount)
			assert.Greater(t, trip.PredictedDurationSeconds, 0.0)
			return nil
		})
	predictionGW.EXPECT().
		PublishPredictionCompleted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.PredictionEvent) error {
			assert.Equal(t, userID.String(), event.UserID)
			assert.Len(t, event.PickupGeohash, 7)
			return nil
		})

	prediction, err := uc.Predict(context.Background(), userID, validTrip())
	require.NoError(t, err)

	assert.Greater(t, prediction.TripDurationSeconds, 0.0)
	assert.InDelta(t, prediction.TripDurationSeconds/60, prediction.TripDurationMinutes, 1e-9)
	assert.Equal(t, model.DefaultConfidence, prediction.Confidence)
}

func TestPredictValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nothing is persisted or published on invalid input
	uc := NewPredictionUC(&models.Config{}, testModelHandle(t),
		mocks.NewMockTripRepo(ctrl), mocks.NewMockPredictionGW(ctrl))

	trip := validTrip()
	trip.PickupDatetime = "not a timestamp"

	_, err := uc.Predict(context.Background(), uuid.New(), trip)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestPredictModelUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handle := model.NewHandle(filepath.Join(t.TempDir(), "absent.json"))
	uc := NewPredictionUC(&models.Config{}, handle,
		mocks.NewMockTripRepo(ctrl), mocks.NewMockPredictionGW(ctrl))

	_, err := uc.Predict(context.Background(), uuid.New(), validTrip())
	require.Error(t, err)
	assert.Equal(t, apperrors.KindModelUnavailable, apperrors.KindOf(err))
}

func TestPredictSurvivesPersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tripRepo := mocks.NewMockTripRepo(ctrl)
	predictionGW := mocks.NewMockPredictionGW(ctrl)
	uc := NewPredictionUC(&models.Config{}, testModelHandle(t), tripRepo, predictionGW)

	tripRepo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).Return(assert.AnError)
	predictionGW.EXPECT().PublishPredictionCompleted(gomock.Any(), gomock.Any()).Return(assert.AnError)

	prediction, err := uc.Predict(context.Background(), uuid.New(), validTrip())
	require.NoError(t, err)
	assert.NotNil(t, prediction)
}

func TestModelInfo(t *testing.T) {
	uc := NewPredictionUC(&models.Config{}, testModelHandle(t), nil, nil)

	info, err := uc.ModelInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "linear_regression", info.ModelType)
	assert.Equal(t, "2016.1", info.ModelVersion)
	assert.Equal(t, []string{"distance_km", "passenger_count"}, info.FeaturesUsed)
}

func TestModelInfoUnavailable(t *testing.T) {
	handle := model.NewHandle(filepath.Join(t.TempDir(), "absent.json"))
	uc := NewPredictionUC(&models.Config{}, handle, nil, nil)

	_, err := uc.ModelInfo(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.KindModelUnavailable, apperrors.KindOf(err))
}

func TestListTripsLimits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tripRepo := mocks.NewMockTripRepo(ctrl)
	uc := NewPredictionUC(&models.Config{}, testModelHandle(t), tripRepo, nil)

	userID := uuid.New()
	tripRepo.EXPECT().ListTripsByUser(gomock.Any(), userID, defaultTripListLimit).Return([]models.Trip{}, nil)
	tripRepo.EXPECT().ListTripsByUser(gomock.Any(), userID, maxTripListLimit).Return([]models.Trip{}, nil)

	_, err := uc.ListTrips(context.Background(), userID, 0)
	require.NoError(t, err)
	_, err = uc.ListTrips(context.Background(), userID, maxTripListLimit+100)
	require.NoError(t, err)
}
