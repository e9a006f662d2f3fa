package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nycrides/tripcast/internal/pkg/apperrors"
	"github.com/nycrides/tripcast/internal/pkg/models"
	"github.com/nycrides/tripcast/services/routes"
	"github.com/nycrides/tripcast/services/routes/mocks"
)

func validRouteRequest() models.RouteRequest {
	return models.RouteRequest{
		Start: models.Coordinate{Lng: -73.9855, Lat: 40.7580},
		End:   models.Coordinate{Lng: -73.9772, Lat: 40.7527},
	}
}

func testDirections() *routes.DirectionsResponse {
	return &routes.DirectionsResponse{
		Features: []routes.DirectionsFeature{
			{
				Geometry: json.RawMessage(`{"type":"LineString","coordinates":[[-73.9855,40.7580],[-73.9772,40.7527]]}`),
				Properties: routes.DirectionsProperties{
					Summary: routes.DirectionsSummary{Distance: 1100, Duration: 240},
					Segments: []routes.DirectionsSegment{
						{
							Distance: 1100,
							Duration: 240,
							Steps: []routes.DirectionsStep{
								{Distance: 600, Duration: 130, Instruction: "Head southeast", Name: "7th Avenue", WayPoints: []int{0, 3}},
								{Distance: 500, Duration: 110},
							},
						},
					},
				},
			},
			{
				// Second candidate is never used
				Properties: routes.DirectionsProperties{
					Summary: routes.DirectionsSummary{Distance: 2500, Duration: 600},
				},
			},
		},
	}
}

func TestOptimize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	routeGW := mocks.NewMockRouteGW(ctrl)
	routeGW.EXPECT().
		Directions(gomock.Any(), gomock.Any()).
		Return(testDirections(), nil)

	uc := NewRouteUC(routeGW, nil)
	route, err := uc.Optimize(context.Background(), uuid.New(), validRouteRequest())
	require.NoError(t, err)

	// The first candidate wins
	assert.Equal(t, 1100.0, route.Distance)
	assert.Equal(t, 240.0, route.Duration)
	assert.NotEmpty(t, route.Geometry)

	require.Len(t, route.Segments, 1)
	leg := route.Segments[0]
	assert.Equal(t, 1100.0, leg.Summary["distance"])
	assert.Equal(t, 240.0, leg.Summary["duration"])

	require.Len(t, leg.Steps, 2)
	assert.Equal(t, "Head southeast", leg.Steps[0].Instruction)
	assert.Equal(t, []int{0, 3}, leg.Steps[0].WayPoints)

	// Missing provider fields come back as explicit defaults
	assert.Equal(t, "", leg.Steps[1].Instruction)
	assert.Equal(t, "", leg.Steps[1].Name)
	assert.Equal(t, []int{}, leg.Steps[1].WayPoints)
}

func TestOptimizeNoRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	routeGW := mocks.NewMockRouteGW(ctrl)
	routeGW.EXPECT().
		Directions(gomock.Any(), gomock.Any()).
		Return(&routes.DirectionsResponse{}, nil)

	uc := NewRouteUC(routeGW, nil)
	_, err := uc.Optimize(context.Background(), uuid.New(), validRouteRequest())
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestOptimizeInvalidCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The gateway is never called for invalid input
	uc := NewRouteUC(mocks.NewMockRouteGW(ctrl), nil)

	req := validRouteRequest()
	req.Start.Lat = 91

	_, err := uc.Optimize(context.Background(), uuid.New(), req)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestOptimizeProviderErrorPassthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	providerErr := apperrors.New(apperrors.KindProvider, "route provider returned status 500")
	routeGW := mocks.NewMockRouteGW(ctrl)
	routeGW.EXPECT().
		Directions(gomock.Any(), gomock.Any()).
		Return(nil, providerErr)

	uc := NewRouteUC(routeGW, nil)
	_, err := uc.Optimize(context.Background(), uuid.New(), validRouteRequest())
	assert.Equal(t, apperrors.KindProvider, apperrors.KindOf(err))
}

func TestOptimizePersistsForTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	routeGW := mocks.NewMockRouteGW(ctrl)
	routeGW.EXPECT().
		Directions(gomock.Any(), gomock.Any()).
		Return(testDirections(), nil)
	routeRepo := mocks.NewMockRouteRepo(ctrl)
	routeRepo.EXPECT().SaveRoute(gomock.Any(), tripID, gomock.Any()).Return(nil)

	req := validRouteRequest()
	req.TripID = tripID.String()

	uc := NewRouteUC(routeGW, routeRepo)
	_, err := uc.Optimize(context.Background(), uuid.New(), req)
	require.NoError(t, err)
}

func TestOptimizeSurvivesPersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	routeGW := mocks.NewMockRouteGW(ctrl)
	routeGW.EXPECT().
		Directions(gomock.Any(), gomock.Any()).
		Return(testDirections(), nil)
	routeRepo := mocks.NewMockRouteRepo(ctrl)
	routeRepo.EXPECT().SaveRoute(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

	req := validRouteRequest()
	req.TripID = uuid.New().String()

	uc := NewRouteUC(routeGW, routeRepo)
	route, err := uc.Optimize(context.Background(), uuid.New(), req)
	require.NoError(t, err)
	assert.NotNil(t, route)
}

func TestGeocode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	routeGW := mocks.NewMockRouteGW(ctrl)
	routeGW.EXPECT().
		SearchPlaces(gomock.Any(), "grand central").
		Return(&routes.GeocodeResponse{
			Features: []routes.GeocodeFeature{
				{
					Geometry:   routes.GeocodeGeometry{Coordinates: []float64{-73.9772, 40.7527}},
					Properties: routes.GeocodeProperties{Label: "Grand Central Terminal", Layer: "venue"},
				},
				{
					// Malformed geometry is skipped
					Geometry:   routes.GeocodeGeometry{Coordinates: []float64{-73.98}},
					Properties: routes.GeocodeProperties{Label: "Broken"},
				},
			},
		}, nil)

	uc := NewRouteUC(routeGW, nil)
	results, err := uc.Geocode(context.Background(), "grand central")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "Grand Central Terminal", results[0].Name)
	assert.Equal(t, "venue", results[0].Type)
	assert.Equal(t, -73.9772, results[0].Coordinates.Lng)
	assert.Equal(t, 40.7527, results[0].Coordinates.Lat)
}

func TestGeocodeEmptyQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewRouteUC(mocks.NewMockRouteGW(ctrl), nil)

	_, err := uc.Geocode(context.Background(), "   ")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}
