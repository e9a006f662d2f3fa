package models

import (
	"time"

	"github.com/google/uuid"
)

// Trip is a persisted prediction record for a user
type Trip struct {
	ID                       uuid.UUID `json:"id" db:"id"`
	UserID                   uuid.UUID `json:"user_id" db:"user_id"`
	PickupLatitude           float64   `json:"pickup_latitude" db:"pickup_latitude"`
	PickupLongitude          float64   `json:"pickup_longitude" db:"pickup_longitude"`
	DropoffLatitude          float64   `json:"dropoff_latitude" db:"dropoff_latitude"`
	DropoffLongitude         float64   `json:"dropoff_longitude" db:"dropoff_longitude"`
	PredictedDurationSeconds float64   `json:"predicted_duration_seconds" db:"predicted_duration_seconds"`
	DistanceKm               float64   `json:"distance_km" db:"distance_km"`
	PassengerCount           int       `json:"passenger_count" db:"passenger_count"`
	VendorID                 int       `json:"vendor_id" db:"vendor_id"`
	StoreAndFwdFlag          string    `json:"store_and_fwd_flag" db:"store_and_fwd_flag"`
	PickupDatetime           time.Time `json:"pickup_datetime" db:"pickup_datetime"`
	CreatedAt                time.Time `json:"created_at" db:"created_at"`
}

// SavedLocation is a user's named place
type SavedLocation struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Address   string    `json:"address" db:"address"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Geohash   string    `json:"geohash" db:"geohash"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SavedLocationRequest is the create request body
type SavedLocationRequest struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
