package googleplaces

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmac111/scraper/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func boolPtr(v bool) *bool   { return &v }

// fakeBackend serves the three Google endpoints from fixtures.
type fakeBackend struct {
	geocodeResults []GeocodeResult
	places         []NearbyPlace
	details        map[string]PlaceDetail
	failDetails    map[string]bool
	nearbyFail     bool
}

func (f *fakeBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case geocodePath:
			status := "OK"
			if len(f.geocodeResults) == 0 {
				status = "ZERO_RESULTS"
			}
			json.NewEncoder(w).Encode(GeocodeResponse{Status: status, Results: f.geocodeResults})
		case nearbySearchPath:
			if f.nearbyFail {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			json.NewEncoder(w).Encode(NearbySearchResponse{Status: "OK", Results: f.places})
		case placeDetailsPath:
			id := r.URL.Query().Get("place_id")
			if f.failDetails[id] {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			json.NewEncoder(w).Encode(PlaceDetailsResponse{Status: "OK", Result: f.details[id]})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func newTestService(t *testing.T, backend *fakeBackend) *Service {
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "test-key", logrus.New())
	// Keep retry backoff out of unit test runtime
	client.retry = RetryConfig{MaxRetries: 1, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}
	return NewService(client, logrus.New())
}

func testSearchRequest() models.SearchRequest {
	return models.SearchRequest{
		Query:    "plumbers",
		Location: "Toronto, ON",
		Radius:   models.DefaultSearchRadius,
	}
}

var testCenter = models.Coordinates{Lat: 43.6532, Lng: -79.3832}

func TestService_FetchLeads(t *testing.T) {
	rating := 4.5
	reviews := 120

	service := newTestService(t, &fakeBackend{
		places: []NearbyPlace{
			{PlaceID: "place-1", Name: "Acme Plumbing"},
			{PlaceID: "place-2", Name: "Drain Masters"},
		},
		details: map[string]PlaceDetail{
			"place-1": {
				Name:                 "Acme Plumbing",
				FormattedAddress:     "123 Main St, Toronto, ON",
				FormattedPhoneNumber: "(416) 555-0142",
				Website:              "https://www.acmeplumbing.com",
				Rating:               &rating,
				UserRatingsTotal:     &reviews,
				Geometry:             Geometry{Location: LatLng{Lat: 43.66, Lng: -79.38}},
			},
			"place-2": {
				Name:             "Drain Masters",
				FormattedAddress: "456 Queen St E, Toronto, ON",
				Geometry:         Geometry{Location: LatLng{Lat: 43.65, Lng: -79.37}},
			},
		},
	})

	leads, err := service.FetchLeads(context.Background(), testSearchRequest(), testCenter)
	require.NoError(t, err)
	require.Len(t, leads, 2)

	first := leads[0]
	assert.Equal(t, "Acme Plumbing", first.Name)
	assert.Equal(t, "123 Main St, Toronto, ON", first.Address)
	assert.Equal(t, "https://maps.google.com/maps?cid=place-1", first.GoogleMapsURL)
	require.NotNil(t, first.Phone)
	assert.Equal(t, "(416) 555-0142", *first.Phone)
	require.NotNil(t, first.Website)
	assert.True(t, first.HasWebsite)
	require.NotNil(t, first.Rating)
	assert.Equal(t, 4.5, *first.Rating)
	assert.Equal(t, 43.66, first.Latitude)

	second := leads[1]
	assert.False(t, second.HasWebsite)
	assert.Nil(t, second.Website)
	assert.Nil(t, second.Phone)
	assert.Nil(t, second.Rating)
	assert.Nil(t, second.ReviewCount)
}

func TestService_FetchLeadsMinRatingFilter(t *testing.T) {
	low, high := 3.5, 4.5

	backend := &fakeBackend{
		places: []NearbyPlace{
			{PlaceID: "low"},
			{PlaceID: "high"},
			{PlaceID: "unrated"},
		},
		details: map[string]PlaceDetail{
			"low":     {Name: "Low", Rating: &low},
			"high":    {Name: "High", Rating: &high},
			"unrated": {Name: "Unrated"},
		},
	}
	service := newTestService(t, backend)

	req := testSearchRequest()
	req.MinRating = f64(4.0)

	leads, err := service.FetchLeads(context.Background(), req, testCenter)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "High", leads[0].Name)

	// A zero minimum disables the filter entirely
	req.MinRating = f64(0)
	leads, err = service.FetchLeads(context.Background(), req, testCenter)
	require.NoError(t, err)
	assert.Len(t, leads, 3)
}

func TestService_FetchLeadsWebsiteFilter(t *testing.T) {
	backend := &fakeBackend{
		places: []NearbyPlace{
			{PlaceID: "with"},
			{PlaceID: "without"},
		},
		details: map[string]PlaceDetail{
			"with":    {Name: "With", Website: "https://example.com"},
			"without": {Name: "Without"},
		},
	}
	service := newTestService(t, backend)

	req := testSearchRequest()
	req.HasWebsite = boolPtr(true)

	leads, err := service.FetchLeads(context.Background(), req, testCenter)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "With", leads[0].Name)

	req.HasWebsite = boolPtr(false)
	leads, err = service.FetchLeads(context.Background(), req, testCenter)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Without", leads[0].Name)
}

func TestService_FetchLeadsSkipsFailedDetails(t *testing.T) {
	backend := &fakeBackend{
		places: []NearbyPlace{
			{PlaceID: "broken"},
			{PlaceID: "fine"},
		},
		details: map[string]PlaceDetail{
			"fine": {Name: "Fine Foods"},
		},
		failDetails: map[string]bool{"broken": true},
	}
	service := newTestService(t, backend)

	leads, err := service.FetchLeads(context.Background(), testSearchRequest(), testCenter)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Fine Foods", leads[0].Name)
}

func TestService_FetchLeadsNearbyFailureAborts(t *testing.T) {
	service := newTestService(t, &fakeBackend{nearbyFail: true})

	_, err := service.FetchLeads(context.Background(), testSearchRequest(), testCenter)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nearby search")
}

func TestService_FetchLeadsEmptyResult(t *testing.T) {
	service := newTestService(t, &fakeBackend{})

	leads, err := service.FetchLeads(context.Background(), testSearchRequest(), testCenter)
	require.NoError(t, err)
	require.NotNil(t, leads)
	assert.Empty(t, leads)
}

func TestService_FetchLeadsUnknownName(t *testing.T) {
	backend := &fakeBackend{
		places:  []NearbyPlace{{PlaceID: "anon"}},
		details: map[string]PlaceDetail{"anon": {FormattedAddress: "1 Somewhere Rd"}},
	}
	service := newTestService(t, backend)

	leads, err := service.FetchLeads(context.Background(), testSearchRequest(), testCenter)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Unknown", leads[0].Name)
}

func TestService_Geocode(t *testing.T) {
	service := newTestService(t, &fakeBackend{
		geocodeResults: []GeocodeResult{{
			Geometry: Geometry{Location: LatLng{Lat: 43.6532, Lng: -79.3832}},
		}},
	})

	coords, err := service.Geocode(context.Background(), "Toronto, ON")
	require.NoError(t, err)
	assert.Equal(t, 43.6532, coords.Lat)
}

func TestService_GeocodeNotFound(t *testing.T) {
	service := newTestService(t, &fakeBackend{})

	_, err := service.Geocode(context.Background(), "Nowhereville XYZ")
	assert.ErrorIs(t, err, models.ErrLocationNotFound)
}
