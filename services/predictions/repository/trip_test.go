package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nycrides/tripcast/internal/pkg/database"
	"github.com/nycrides/tripcast/internal/pkg/models"
)

func newMockRepo(t *testing.T) (*tripRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	client := database.NewPostgresClientFromDB(sqlx.NewDb(db, "sqlmock"))
	return &tripRepo{db: client}, mock
}

func TestCreateTrip(t *testing.T) {
	repo, mock := newMockRepo(t)

	trip := &models.Trip{
		ID:                       uuid.New(),
		UserID:                   uuid.New(),
		PickupLatitude:           40.7580,
		PickupLongitude:          -73.9855,
		DropoffLatitude:          40.7527,
		DropoffLongitude:         -73.9772,
		PredictedDurationSeconds: 540,
		DistanceKm:               0.92,
		PassengerCount:           2,
		VendorID:                 1,
		StoreAndFwdFlag:          "N",
		PickupDatetime:           time.Date(2016, 1, 2, 12, 30, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO trips").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateTrip(context.Background(), trip)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTripError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO trips").
		WillReturnError(assert.AnError)

	err := repo.CreateTrip(context.Background(), &models.Trip{ID: uuid.New()})
	assert.Error(t, err)
}

func TestListTripsByUser(t *testing.T) {
	repo, mock := newMockRepo(t)
	userID := uuid.New()

	rows := sqlmock.NewRows([]string{
		"id", "user_id",
		"pickup_latitude", "pickup_longitude",
		"dropoff_latitude", "dropoff_longitude",
		"predicted_duration_seconds", "distance_km",
		"passenger_count", "vendor_id", "store_and_fwd_flag",
		"pickup_datetime", "created_at",
	}).AddRow(
		uuid.New(), userID,
		40.7580, -73.9855,
		40.7527, -73.9772,
		540.0, 0.92,
		2, 1, "N",
		time.Date(2016, 1, 2, 12, 30, 0, 0, time.UTC), time.Now(),
	)

	mock.ExpectQuery("SELECT (.+) FROM trips").
		WithArgs(userID, 50).
		WillReturnRows(rows)

	trips, err := repo.ListTripsByUser(context.Background(), userID, 50)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, userID, trips[0].UserID)
	assert.Equal(t, 540.0, trips[0].PredictedDurationSeconds)
	assert.NoError(t, mock.ExpectationsWereMet())
}
