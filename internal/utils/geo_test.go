package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance(t *testing.T) {
	timesSquare := GeoPoint{Latitude: 40.7580, Longitude: -73.9855}
	grandCentral := GeoPoint{Latitude: 40.7527, Longitude: -73.9772}
	downtown := GeoPoint{Latitude: 40.7128, Longitude: -74.0060}

	// Times Square to Grand Central is roughly 0.9 km
	assert.InDelta(t, 0.9, CalculateDistance(timesSquare, grandCentral), 0.3)

	// Same point is zero
	assert.Zero(t, CalculateDistance(timesSquare, timesSquare))

	// Symmetric in both directions
	assert.InDelta(t,
		CalculateDistance(downtown, timesSquare),
		CalculateDistance(timesSquare, downtown), 1e-9)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(40.7128, -74.0060))
	assert.True(t, ValidCoordinates(-90, 180))
	assert.False(t, ValidCoordinates(90.1, 0))
	assert.False(t, ValidCoordinates(0, -180.1))
}

func TestEncodeLocation(t *testing.T) {
	hash := EncodeLocation(40.7580, -73.9855, 7)
	assert.Len(t, hash, 7)

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, 40.7580, lat, 0.01)
	assert.InDelta(t, -73.9855, lng, 0.01)
}
