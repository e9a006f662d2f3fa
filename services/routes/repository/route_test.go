package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nycrides/tripcast/internal/pkg/database"
	"github.com/nycrides/tripcast/internal/pkg/models"
)

func newMockRepo(t *testing.T) (*routeRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	client := database.NewPostgresClientFromDB(sqlx.NewDb(db, "sqlmock"))
	return &routeRepo{db: client}, mock
}

func testRoute() *models.Route {
	return &models.Route{
		Distance: 1100,
		Duration: 240,
		Geometry: json.RawMessage(`{"type":"LineString"}`),
		Segments: []models.RouteLeg{
			{
				Steps: []models.RouteLegStep{
					{Distance: 600, Duration: 130, Instruction: "Head southeast", Name: "7th Avenue"},
					{Distance: 500, Duration: 110},
				},
			},
		},
	}
}

func TestSaveRoute(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO routes").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO route_steps").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO route_steps").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.SaveRoute(context.Background(), uuid.New(), testRoute())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRouteRollsBackOnStepFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO routes").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO route_steps").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.SaveRoute(context.Background(), uuid.New(), testRoute())
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
