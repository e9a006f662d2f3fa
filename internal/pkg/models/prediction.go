package models

// TripFeatures is the raw prediction request body
type TripFeatures struct {
	PickupLongitude  float64 `json:"pickup_longitude"`
	PickupLatitude   float64 `json:"pickup_latitude"`
	DropoffLongitude float64 `json:"dropoff_longitude"`
	DropoffLatitude  float64 `json:"dropoff_latitude"`
	PassengerCount   int     `json:"passenger_count"`
	PickupDatetime   string  `json:"pickup_datetime"`
	VendorID         int     `json:"vendor_id"`
	StoreAndFwdFlag  string  `json:"store_and_fwd_flag"`
}

// PickupDatetimeLayout is the only accepted pickup timestamp format
const PickupDatetimeLayout = "2006-01-02 15:04:05"

// FeatureVector maps feature names to numeric values. It always carries
// exactly the fields listed in FeatureNames, is created per request and
// never persisted.
type FeatureVector map[string]float64

// FeatureNames is the fixed feature set consumed by the model artifact
var FeatureNames = []string{
	"vendor_id",
	"passenger_count",
	"pickup_longitude",
	"pickup_latitude",
	"dropoff_longitude",
	"dropoff_latitude",
	"store_and_fwd_flag",
	"distance_km",
	"hour",
	"day_of_week",
	"month",
	"is_weekend",
	"is_night",
	"is_rush_hour",
}

// TripPrediction is the prediction result. Minutes is always derived
// from Seconds, never set independently.
type TripPrediction struct {
	TripDurationSeconds float64 `json:"trip_duration_seconds"`
	TripDurationMinutes float64 `json:"trip_duration_minutes"`
	Confidence          float64 `json:"confidence"`
}

// ModelInfo is the static metadata of the loaded model artifact
type ModelInfo struct {
	ModelType          string             `json:"model_type"`
	ModelVersion       string             `json:"model_version"`
	ModelCreated       string             `json:"model_created"`
	FeaturesUsed       []string           `json:"features_used"`
	FeatureImportances map[string]float64 `json:"feature_importances,omitempty"`
}

// PredictionEvent is published to NSQ after each successful prediction
type PredictionEvent struct {
	UserID          string  `json:"user_id"`
	PickupLatitude  float64 `json:"pickup_latitude"`
	PickupLongitude float64 `json:"pickup_longitude"`
	DistanceKm      float64 `json:"distance_km"`
	DurationSeconds float64 `json:"duration_seconds"`
	PickupGeohash   string  `json:"pickup_geohash"`
	PredictedAt     string  `json:"predicted_at"`
}
