package models

import "encoding/json"

// Coordinate is a lng/lat pair in decimal degrees
type Coordinate struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// RouteRequest is the route optimization request body
type RouteRequest struct {
	Start             Coordinate `json:"start"`
	End               Coordinate `json:"end"`
	Profile           string     `json:"profile"`
	Alternatives      bool       `json:"alternatives"`
	OptimizeWaypoints bool       `json:"optimize_waypoints"`
	TripID            string     `json:"trip_id,omitempty"`
}

// RouteLegStep is a single turn instruction within a leg
type RouteLegStep struct {
	Distance    float64 `json:"distance"`
	Duration    float64 `json:"duration"`
	Instruction string  `json:"instruction"`
	Name        string  `json:"name"`
	WayPoints   []int   `json:"way_points"`
}

// RouteLeg is one segment of a route
type RouteLeg struct {
	Steps     []RouteLegStep     `json:"steps"`
	Summary   map[string]float64 `json:"summary"`
	WayPoints []int              `json:"way_points"`
}

// Route mirrors the provider's best route: total distance in meters,
// total duration in seconds, opaque GeoJSON geometry and the legs.
type Route struct {
	Distance float64         `json:"distance"`
	Duration float64         `json:"duration"`
	Geometry json.RawMessage `json:"geometry"`
	Segments []RouteLeg      `json:"segments"`
}

// GeocodeResult is a single labeled coordinate from place search
type GeocodeResult struct {
	Name        string     `json:"name"`
	Coordinates Coordinate `json:"coordinates"`
	Type        string     `json:"type"`
}
