package routes

import (
	"context"
	"encoding/json"

	"github.com/nycrides/tripcast/internal/pkg/models"
)

// RouteGW defines the interface to the external routing provider.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/nycrides/tripcast/services/routes RouteGW
type RouteGW interface {
	// Directions fetches route candidates between the request's start and
	// end points.
	Directions(ctx context.Context, req models.RouteRequest) (*DirectionsResponse, error)

	// SearchPlaces runs a forward geocode for the query.
	SearchPlaces(ctx context.Context, query string) (*GeocodeResponse, error)
}

// DirectionsResponse is the GeoJSON feature collection returned by the
// directions provider. The first feature is the best route.
type DirectionsResponse struct {
	Features []DirectionsFeature `json:"features"`
}

// DirectionsFeature is one route candidate
type DirectionsFeature struct {
	Geometry   json.RawMessage      `json:"geometry"`
	Properties DirectionsProperties `json:"properties"`
}

// DirectionsProperties carries the route summary and its legs
type DirectionsProperties struct {
	Segments  []DirectionsSegment `json:"segments"`
	Summary   DirectionsSummary   `json:"summary"`
	WayPoints []int               `json:"way_points"`
}

// DirectionsSegment is one leg of a route candidate
type DirectionsSegment struct {
	Distance float64          `json:"distance"`
	Duration float64          `json:"duration"`
	Steps    []DirectionsStep `json:"steps"`
}

// DirectionsStep is a single maneuver within a leg. Instruction and Name
// may be absent in the provider payload.
type DirectionsStep struct {
	Distance    float64 `json:"distance"`
	Duration    float64 `json:"duration"`
	Instruction string  `json:"instruction"`
	Name        string  `json:"name"`
	WayPoints   []int   `json:"way_points"`
}

// DirectionsSummary is the total distance (meters) and duration (seconds)
type DirectionsSummary struct {
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
}

// GeocodeResponse is the feature collection returned by place search
type GeocodeResponse struct {
	Features []GeocodeFeature `json:"features"`
}

// GeocodeFeature is one place candidate
type GeocodeFeature struct {
	Geometry   GeocodeGeometry   `json:"geometry"`
	Properties GeocodeProperties `json:"properties"`
}

// GeocodeGeometry holds the [lng, lat] point of a place
type GeocodeGeometry struct {
	Coordinates []float64 `json:"coordinates"`
}

// GeocodeProperties labels a place candidate
type GeocodeProperties struct {
	Label string `json:"label"`
	Layer string `json:"layer"`
}
