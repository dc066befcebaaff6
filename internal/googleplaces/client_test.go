package googleplaces

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmac111/scraper/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Geocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/maps/api/geocode/json", r.URL.Path)
		assert.Equal(t, "Toronto, ON", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(GeocodeResponse{
			Status: "OK",
			Results: []GeocodeResult{{
				FormattedAddress: "Toronto, ON, Canada",
				Geometry:         Geometry{Location: LatLng{Lat: 43.6532, Lng: -79.3832}},
			}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", logrus.New())

	coords, err := client.Geocode(context.Background(), "Toronto, ON")
	require.NoError(t, err)
	assert.Equal(t, 43.6532, coords.Lat)
	assert.Equal(t, -79.3832, coords.Lng)
}

func TestClient_GeocodeNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(GeocodeResponse{Status: "ZERO_RESULTS"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", logrus.New())

	_, err := client.Geocode(context.Background(), "Nowhereville XYZ")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrLocationNotFound)
}

func TestClient_GeocodeStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(GeocodeResponse{
			Status:       "REQUEST_DENIED",
			ErrorMessage: "The provided API key is invalid",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key", logrus.New())

	_, err := client.Geocode(context.Background(), "Toronto, ON")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
	assert.Contains(t, err.Error(), "The provided API key is invalid")
}

func TestClient_NearbySearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/place/nearbysearch/json", r.URL.Path)
		assert.Equal(t, "43.653200,-79.383200", r.URL.Query().Get("location"))
		assert.Equal(t, "20000", r.URL.Query().Get("radius"))
		assert.Equal(t, "plumbers", r.URL.Query().Get("keyword"))
		assert.Equal(t, "establishment", r.URL.Query().Get("type"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(NearbySearchResponse{
			Status: "OK",
			Results: []NearbyPlace{
				{PlaceID: "place-1", Name: "Acme Plumbing"},
				{PlaceID: "place-2", Name: "Drain Masters"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", logrus.New())

	center := models.Coordinates{Lat: 43.6532, Lng: -79.3832}
	places, err := client.NearbySearch(context.Background(), center, 20000, "plumbers")
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "place-1", places[0].PlaceID)
	assert.Equal(t, "Drain Masters", places[1].Name)
}

func TestClient_NearbySearchZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(NearbySearchResponse{Status: "ZERO_RESULTS"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", logrus.New())

	center := models.Coordinates{Lat: 43.6532, Lng: -79.3832}
	places, err := client.NearbySearch(context.Background(), center, 20000, "unobtainium dealers")
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestClient_PlaceDetails(t *testing.T) {
	rating := 4.5
	reviews := 120

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/place/details/json", r.URL.Path)
		assert.Equal(t, "place-1", r.URL.Query().Get("place_id"))
		assert.Equal(t, detailFields, r.URL.Query().Get("fields"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PlaceDetailsResponse{
			Status: "OK",
			Result: PlaceDetail{
				Name:                 "Acme Plumbing",
				FormattedAddress:     "123 Main St, Toronto, ON",
				FormattedPhoneNumber: "(416) 555-0142",
				Website:              "https://www.acmeplumbing.com",
				Rating:               &rating,
				UserRatingsTotal:     &reviews,
				Geometry:             Geometry{Location: LatLng{Lat: 43.66, Lng: -79.38}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", logrus.New())

	detail, err := client.PlaceDetails(context.Background(), "place-1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Plumbing", detail.Name)
	assert.Equal(t, "(416) 555-0142", detail.FormattedPhoneNumber)
	require.NotNil(t, detail.Rating)
	assert.Equal(t, 4.5, *detail.Rating)
	require.NotNil(t, detail.UserRatingsTotal)
	assert.Equal(t, 120, *detail.UserRatingsTotal)
}

func TestClient_PlaceDetailsAbsentRating(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PlaceDetailsResponse{
			Status: "OK",
			Result: PlaceDetail{Name: "New Spot"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", logrus.New())

	detail, err := client.PlaceDetails(context.Background(), "place-9")
	require.NoError(t, err)
	assert.Nil(t, detail.Rating)
	assert.Nil(t, detail.UserRatingsTotal)
	assert.Empty(t, detail.Website)
}

func TestClient_HTTPErrorHandling(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", logrus.New())

	_, err := client.Geocode(context.Background(), "Toronto, ON")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
