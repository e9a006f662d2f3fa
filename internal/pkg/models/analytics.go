package models

import "time"

// HourlyCount is one point in the hourly trip pattern
type HourlyCount struct {
	Hour  int `json:"hour" db:"hour"`
	Trips int `json:"trips" db:"trips"`
}

// AnalyticsSummary aggregates persisted trips for the admin dashboard
type AnalyticsSummary struct {
	TotalTrips         int           `json:"total_trips"`
	AvgDurationMinutes float64       `json:"avg_duration_minutes"`
	AvgDistanceKm      float64       `json:"avg_distance_km"`
	HourlyPattern      []HourlyCount `json:"hourly_pattern"`
	Since              time.Time     `json:"since"`
}
