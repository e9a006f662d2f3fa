package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nycrides/tripcast/internal/pkg/apperrors"
	"github.com/nycrides/tripcast/internal/pkg/models"
)

func validTrip() models.TripFeatures {
	return models.TripFeatures{
		PickupLongitude:  -73.9855,
		PickupLatitude:   40.7580,
		DropoffLongitude: -73.9772,
		DropoffLatitude:  40.7527,
		PassengerCount:   2,
		PickupDatetime:   "2016-01-02 12:30:00", // Saturday
		VendorID:         1,
		StoreAndFwdFlag:  "N",
	}
}

func TestBuildFeatureVector(t *testing.T) {
	vector, err := BuildFeatureVector(validTrip())
	require.NoError(t, err)

	assert.Len(t, vector, len(models.FeatureNames))
	for _, name := range models.FeatureNames {
		assert.Contains(t, vector, name)
	}

	assert.Equal(t, 1.0, vector["vendor_id"])
	assert.Equal(t, 2.0, vector["passenger_count"])
	assert.Equal(t, 0.0, vector["store_and_fwd_flag"])
	assert.Equal(t, 12.0, vector["hour"])
	assert.Equal(t, 5.0, vector["day_of_week"]) // Saturday with Monday as 0
	assert.Equal(t, 1.0, vector["month"])
	assert.Equal(t, 1.0, vector["is_weekend"])
	assert.Equal(t, 0.0, vector["is_night"])
	assert.Equal(t, 0.0, vector["is_rush_hour"])
	assert.InDelta(t, 0.9, vector["distance_km"], 0.3)
}

func TestBuildFeatureVectorStoreAndForward(t *testing.T) {
	trip := validTrip()
	trip.StoreAndFwdFlag = "Y"

	vector, err := BuildFeatureVector(trip)
	require.NoError(t, err)
	assert.Equal(t, 1.0, vector["store_and_fwd_flag"])
}

func TestBuildFeatureVectorTemporalFlags(t *testing.T) {
	tests := []struct {
		name     string
		datetime string
		night    float64
		rush     float64
	}{
		{"early morning is night", "2016-01-04 05:59:00", 1, 0},
		{"six is not night", "2016-01-04 06:00:00", 0, 0},
		{"seven starts rush", "2016-01-04 07:00:00", 0, 1},
		{"ten still rush", "2016-01-04 10:59:00", 0, 1},
		{"eleven is calm", "2016-01-04 11:00:00", 0, 0},
		{"evening rush", "2016-01-04 16:00:00", 0, 1},
		{"nineteen still rush", "2016-01-04 19:30:00", 0, 1},
		{"twenty is night", "2016-01-04 20:00:00", 1, 0},
		{"midnight is night", "2016-01-04 00:15:00", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := validTrip()
			trip.PickupDatetime = tt.datetime

			vector, err := BuildFeatureVector(trip)
			require.NoError(t, err)
			assert.Equal(t, tt.night, vector["is_night"])
			assert.Equal(t, tt.rush, vector["is_rush_hour"])
		})
	}
}

func TestBuildFeatureVectorDayOfWeek(t *testing.T) {
	trip := validTrip()
	trip.PickupDatetime = "2016-01-04 12:00:00" // Monday

	vector, err := BuildFeatureVector(trip)
	require.NoError(t, err)
	assert.Equal(t, 0.0, vector["day_of_week"])
	assert.Equal(t, 0.0, vector["is_weekend"])

	trip.PickupDatetime = "2016-01-08 12:00:00" // Friday
	vector, err = BuildFeatureVector(trip)
	require.NoError(t, err)
	assert.Equal(t, 4.0, vector["day_of_week"])
	assert.Equal(t, 0.0, vector["is_weekend"])

	trip.PickupDatetime = "2016-01-10 12:00:00" // Sunday
	vector, err = BuildFeatureVector(trip)
	require.NoError(t, err)
	assert.Equal(t, 6.0, vector["day_of_week"])
	assert.Equal(t, 1.0, vector["is_weekend"])
}

func TestBuildFeatureVectorValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.TripFeatures)
	}{
		{"bad timestamp", func(f *models.TripFeatures) { f.PickupDatetime = "2016-01-02T12:30:00Z" }},
		{"pickup latitude out of range", func(f *models.TripFeatures) { f.PickupLatitude = 91 }},
		{"dropoff longitude out of range", func(f *models.TripFeatures) { f.DropoffLongitude = -181 }},
		{"zero passengers", func(f *models.TripFeatures) { f.PassengerCount = 0 }},
		{"too many passengers", func(f *models.TripFeatures) { f.PassengerCount = 9 }},
		{"unknown vendor", func(f *models.TripFeatures) { f.VendorID = 3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := validTrip()
			tt.mutate(&trip)

			_, err := BuildFeatureVector(trip)
			require.Error(t, err)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		})
	}
}
