package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/nycrides/tripcast/internal/pkg/apperrors"
	"github.com/nycrides/tripcast/internal/pkg/logger"
	"github.com/nycrides/tripcast/internal/pkg/models"
	nrpkg "github.com/nycrides/tripcast/internal/pkg/newrelic"
	"github.com/nycrides/tripcast/internal/utils"
	"github.com/nycrides/tripcast/services/routes"
)

type routeUC struct {
	routeGW   routes.RouteGW
	routeRepo routes.RouteRepo
}

// NewRouteUC creates the route usecase. The repository may be nil, in which
// case optimized routes are never persisted.
func NewRouteUC(routeGW routes.RouteGW, routeRepo routes.RouteRepo) routes.RouteUC {
	return &routeUC{
		routeGW:   routeGW,
		routeRepo: routeRepo,
	}
}

func (uc *routeUC) Optimize(ctx context.Context, userID uuid.UUID, req models.RouteRequest) (*models.Route, error) {
	if segment := nrpkg.StartSegment(nrpkg.FromContext(ctx), "RouteUC.Optimize"); segment != nil {
		defer segment.End()
	}

	if !utils.ValidCoordinates(req.Start.Lat, req.Start.Lng) {
		return nil, apperrors.New(apperrors.KindValidation, "start coordinates out of range")
	}
	if !utils.ValidCoordinates(req.End.Lat, req.End.Lng) {
		return nil, apperrors.New(apperrors.KindValidation, "end coordinates out of range")
	}

	directions, err := uc.routeGW.Directions(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(directions.Features) == 0 {
		return nil, apperrors.New(apperrors.KindNotFound, "no route found between the given points")
	}

	route := reshapeRoute(directions.Features[0])
	uc.persistRoute(ctx, userID, req.TripID, route)

	return route, nil
}

// reshapeRoute flattens the provider's best route candidate into the API
// route shape. Missing step fields get explicit defaults so the response
// never carries nulls.
func reshapeRoute(feature routes.DirectionsFeature) *models.Route {
	segments := make([]models.RouteLeg, 0, len(feature.Properties.Segments))
	for _, seg := range feature.Properties.Segments {
		steps := make([]models.RouteLegStep, 0, len(seg.Steps))
		for _, step := range seg.Steps {
			wayPoints := step.WayPoints
			if wayPoints == nil {
				wayPoints = []int{}
			}
			steps = append(steps, models.RouteLegStep{
				Distance:    step.Distance,
				Duration:    step.Duration,
				Instruction: step.Instruction,
				Name:        step.Name,
				WayPoints:   wayPoints,
			})
		}

		legWayPoints := feature.Properties.WayPoints
		if legWayPoints == nil {
			legWayPoints = []int{}
		}
		segments = append(segments, models.RouteLeg{
			Steps: steps,
			Summary: map[string]float64{
				"distance": seg.Distance,
				"duration": seg.Duration,
			},
			WayPoints: legWayPoints,
		})
	}

	return &models.Route{
		Distance: feature.Properties.Summary.Distance,
		Duration: feature.Properties.Summary.Duration,
		Geometry: feature.Geometry,
		Segments: segments,
	}
}

// persistRoute stores the optimized route when the request names a trip.
// Failures are logged and never fail the optimization itself.
func (uc *routeUC) persistRoute(ctx context.Context, userID uuid.UUID, tripID string, route *models.Route) {
	if uc.routeRepo == nil || tripID == "" {
		return
	}

	id, err := uuid.Parse(tripID)
	if err != nil {
		logger.Warn("skipping route persistence for malformed trip id",
			logger.String("trip_id", tripID),
			logger.String("user_id", userID.String()))
		return
	}
	if err := uc.routeRepo.SaveRoute(ctx, id, route); err != nil {
		logger.Warn("failed to persist optimized route",
			logger.String("trip_id", tripID),
			logger.Err(err))
	}
}

func (uc *routeUC) Geocode(ctx context.Context, query string) ([]models.GeocodeResult, error) {
	if segment := nrpkg.StartSegment(nrpkg.FromContext(ctx), "RouteUC.Geocode"); segment != nil {
		defer segment.End()
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.New(apperrors.KindValidation, "query must not be empty")
	}

	resp, err := uc.routeGW.SearchPlaces(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]models.GeocodeResult, 0, len(resp.Features))
	for _, feature := range resp.Features {
		if len(feature.Geometry.Coordinates) < 2 {
			continue
		}
		results = append(results, models.GeocodeResult{
			Name: feature.Properties.Label,
			Coordinates: models.Coordinate{
				Lng: feature.Geometry.Coordinates[0],
				Lat: feature.Geometry.Coordinates[1],
			},
			Type: feature.Properties.Layer,
		})
	}
	return results, nil
}
