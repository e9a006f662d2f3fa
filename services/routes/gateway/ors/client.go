package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nycrides/tripcast/internal/pkg/apperrors"
	"github.com/nycrides/tripcast/internal/pkg/models"
	nrpkg "github.com/nycrides/tripcast/internal/pkg/newrelic"
	"github.com/nycrides/tripcast/services/routes"
)

const (
	defaultProfile = "driving-car"
	defaultTimeout = 10 * time.Second

	// alternativeTargetCount is how many route candidates the provider is
	// asked for when alternatives are requested.
	alternativeTargetCount = 3

	// errorBodyLimit caps how much of a provider error body is carried
	// into error messages.
	errorBodyLimit = 2048
)

// Client talks to an openrouteservice-compatible API for directions and
// forward geocoding. All provider failures surface as provider errors,
// a missing API key surfaces as a configuration error before any network
// call is made.
type Client struct {
	apiKey     string
	baseURL    string
	focusLat   float64
	focusLng   float64
	httpClient *http.Client
}

// NewClient creates a directions provider client from configuration
func NewClient(cfg models.ORSConfig) routes.RouteGW {
	timeout := defaultTimeout
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		focusLat:   cfg.FocusLat,
		focusLng:   cfg.FocusLng,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Directions(ctx context.Context, req models.RouteRequest) (*routes.DirectionsResponse, error) {
	if c.apiKey == "" {
		return nil, apperrors.New(apperrors.KindConfiguration, "route provider API key is not configured")
	}

	profile := req.Profile
	if profile == "" {
		profile = defaultProfile
	}

	body := map[string]interface{}{
		"coordinates": [][]float64{
			{req.Start.Lng, req.Start.Lat},
			{req.End.Lng, req.End.Lat},
		},
	}
	if req.Alternatives {
		body["alternative_routes"] = map[string]interface{}{
			"target_count": alternativeTargetCount,
		}
	}
	if req.OptimizeWaypoints {
		body["optimize_waypoints"] = true
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindProvider, "failed to encode directions request", err)
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", c.baseURL, profile)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindProvider, "failed to build directions request", err)
	}
	httpReq.Header.Set("Authorization", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/geo+json")

	var directions routes.DirectionsResponse
	if err := c.do(ctx, httpReq, &directions); err != nil {
		return nil, err
	}
	return &directions, nil
}

func (c *Client) SearchPlaces(ctx context.Context, query string) (*routes.GeocodeResponse, error) {
	if c.apiKey == "" {
		return nil, apperrors.New(apperrors.KindConfiguration, "route provider API key is not configured")
	}

	params := url.Values{}
	params.Set("text", query)
	params.Set("focus.point.lon", strconv.FormatFloat(c.focusLng, 'f', -1, 64))
	params.Set("focus.point.lat", strconv.FormatFloat(c.focusLat, 'f', -1, 64))

	endpoint := fmt.Sprintf("%s/geocode/search?%s", c.baseURL, params.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindProvider, "failed to build geocode request", err)
	}
	httpReq.Header.Set("Authorization", c.apiKey)
	httpReq.Header.Set("Accept", "application/json")

	var geocode routes.GeocodeResponse
	if err := c.do(ctx, httpReq, &geocode); err != nil {
		return nil, err
	}
	return &geocode, nil
}

// do executes the request inside a New Relic external segment and decodes
// the JSON response into out.
func (c *Client) do(ctx context.Context, req *http.Request, out interface{}) error {
	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return apperrors.Wrap(apperrors.KindProvider, "route provider request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return apperrors.Newf(apperrors.KindProvider,
			"route provider returned status %d: %s", resp.StatusCode, string(snippet))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(apperrors.KindProvider, "failed to decode route provider response", err)
	}
	return nil
}
