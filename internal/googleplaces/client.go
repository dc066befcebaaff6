package googleplaces

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cmac111/scraper/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	geocodePath      = "/maps/api/geocode/json"
	nearbySearchPath = "/maps/api/place/nearbysearch/json"
	placeDetailsPath = "/maps/api/place/details/json"

	// detailFields is the field mask requested from the details endpoint
	detailFields = "name,formatted_address,formatted_phone_number,website,rating,user_ratings_total,geometry"
)

// Client is a typed wrapper over the Google Maps web service endpoints.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
	retry      RetryConfig
}

func NewClient(baseURL, apiKey string, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
		retry:  DefaultRetryConfig(),
	}
}

// StatusError is returned when the API body carries a non-OK status field.
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("google api status %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("google api status %s", e.Status)
}

// HTTPError is returned for non-200 transport responses.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

// Geocode resolves a free-text location to coordinates. An empty result set
// maps to models.ErrLocationNotFound.
func (c *Client) Geocode(ctx context.Context, location string) (models.Coordinates, error) {
	params := url.Values{}
	params.Set("address", location)

	var response GeocodeResponse
	if err := c.doGet(ctx, geocodePath, params, &response); err != nil {
		return models.Coordinates{}, err
	}
	if err := checkStatus(response.Status, response.ErrorMessage); err != nil {
		return models.Coordinates{}, err
	}
	if len(response.Results) == 0 {
		return models.Coordinates{}, models.ErrLocationNotFound
	}

	loc := response.Results[0].Geometry.Location
	return models.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}

// NearbySearch lists establishments matching the keyword around a center.
func (c *Client) NearbySearch(ctx context.Context, center models.Coordinates, radiusMeters int, keyword string) ([]NearbyPlace, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%.6f,%.6f", center.Lat, center.Lng))
	params.Set("radius", fmt.Sprintf("%d", radiusMeters))
	params.Set("keyword", keyword)
	params.Set("type", "establishment")

	var response NearbySearchResponse
	if err := c.doGet(ctx, nearbySearchPath, params, &response); err != nil {
		return nil, err
	}
	if err := checkStatus(response.Status, response.ErrorMessage); err != nil {
		return nil, err
	}
	return response.Results, nil
}

// PlaceDetails fetches the contact and rating fields for a single place.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (*PlaceDetail, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailFields)

	var response PlaceDetailsResponse
	if err := c.doGet(ctx, placeDetailsPath, params, &response); err != nil {
		return nil, err
	}
	if err := checkStatus(response.Status, response.ErrorMessage); err != nil {
		return nil, err
	}
	return &response.Result, nil
}

// checkStatus maps the Google status field to an error. ZERO_RESULTS is not
// an error, it just yields an empty result set.
func checkStatus(status, errorMessage string) error {
	switch status {
	case "OK", "ZERO_RESULTS":
		return nil
	}
	return &StatusError{Status: status, Message: errorMessage}
}

func (c *Client) doGet(ctx context.Context, path string, params url.Values, result interface{}) error {
	params.Set("key", c.apiKey)
	fullURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// The full URL carries the API key, so log only the path
	c.logger.WithFields(logrus.Fields{
		"path": path,
	}).Debug("Making Google Maps API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"status_code":   resp.StatusCode,
		"path":          path,
		"response_size": len(responseBody),
	}).Debug("Google Maps API response received")

	if resp.StatusCode != http.StatusOK {
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(responseBody)}
	}

	if err := json.Unmarshal(responseBody, result); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}
