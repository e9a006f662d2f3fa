package ors

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nycrides/tripcast/internal/pkg/apperrors"
	"github.com/nycrides/tripcast/internal/pkg/models"
)

func testConfig(baseURL string) models.ORSConfig {
	return models.ORSConfig{
		APIKey:   "test-key",
		BaseURL:  baseURL,
		FocusLat: 40.7484,
		FocusLng: -73.9857,
		Timeout:  2,
	}
}

func testRequest() models.RouteRequest {
	return models.RouteRequest{
		Start: models.Coordinate{Lng: -73.9855, Lat: 40.7580},
		End:   models.Coordinate{Lng: -73.9772, Lat: 40.7527},
	}
}

func TestDirections(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/geo+json")
		w.Write([]byte(`{"features":[{"properties":{"summary":{"distance":1100,"duration":240},"segments":[]}}]}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	resp, err := client.Directions(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "/v2/directions/driving-car/geojson", gotPath)
	assert.Equal(t, "test-key", gotAuth)
	coords := gotBody["coordinates"].([]interface{})
	first := coords[0].([]interface{})
	assert.Equal(t, -73.9855, first[0])
	assert.Equal(t, 40.7580, first[1])

	require.Len(t, resp.Features, 1)
	assert.Equal(t, 1100.0, resp.Features[0].Properties.Summary.Distance)
}

func TestDirectionsCustomProfile(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"features":[]}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	req := testRequest()
	req.Profile = "cycling-regular"

	_, err := client.Directions(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "/v2/directions/cycling-regular/geojson", gotPath)
}

func TestDirectionsMissingAPIKey(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.APIKey = ""
	client := NewClient(cfg)

	_, err := client.Directions(context.Background(), testRequest())
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConfiguration, apperrors.KindOf(err))
	assert.False(t, called, "no request should be made without an API key")
}

func TestDirectionsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"quota exceeded"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.Directions(context.Background(), testRequest())
	require.Error(t, err)
	assert.Equal(t, apperrors.KindProvider, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestDirectionsUnreachableProvider(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	client := NewClient(cfg)

	_, err := client.Directions(context.Background(), testRequest())
	require.Error(t, err)
	assert.Equal(t, apperrors.KindProvider, apperrors.KindOf(err))
}

func TestSearchPlaces(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"text":            r.URL.Query().Get("text"),
			"focus.point.lon": r.URL.Query().Get("focus.point.lon"),
			"focus.point.lat": r.URL.Query().Get("focus.point.lat"),
		}
		w.Write([]byte(`{"features":[{"geometry":{"coordinates":[-73.9772,40.7527]},"properties":{"label":"Grand Central Terminal","layer":"venue"}}]}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	resp, err := client.SearchPlaces(context.Background(), "grand central")
	require.NoError(t, err)

	assert.Equal(t, "grand central", gotQuery["text"])
	assert.Equal(t, "-73.9857", gotQuery["focus.point.lon"])
	assert.Equal(t, "40.7484", gotQuery["focus.point.lat"])

	require.Len(t, resp.Features, 1)
	assert.Equal(t, "Grand Central Terminal", resp.Features[0].Properties.Label)
}

func TestSearchPlacesMissingAPIKey(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.APIKey = ""
	client := NewClient(cfg)

	_, err := client.SearchPlaces(context.Background(), "anywhere")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConfiguration, apperrors.KindOf(err))
}
