package googleplaces

import (
	"context"
	"fmt"

	"github.com/cmac111/scraper/internal/models"
	"github.com/sirupsen/logrus"
)

// Service adapts the raw client to the lead source contract shared with the
// mock generator.
type Service struct {
	client *Client
	logger *logrus.Logger
}

func NewService(client *Client, logger *logrus.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Geocode resolves a location string via the Geocoding API.
func (s *Service) Geocode(ctx context.Context, location string) (models.Coordinates, error) {
	return s.client.Geocode(ctx, location)
}

// FetchLeads runs a nearby search and enriches every hit with place details,
// applying the rating and website filters inline.
func (s *Service) FetchLeads(ctx context.Context, req models.SearchRequest, center models.Coordinates) ([]models.BusinessLead, error) {
	places, err := s.client.NearbySearchWithRetry(ctx, center, req.Radius, req.Query)
	if err != nil {
		return nil, fmt.Errorf("nearby search: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"query":      req.Query,
		"candidates": len(places),
	}).Debug("Nearby search returned candidates")

	leads := make([]models.BusinessLead, 0, len(places))
	for _, place := range places {
		detail, err := s.client.PlaceDetailsWithRetry(ctx, place.PlaceID)
		if err != nil {
			// A failed details call skips the candidate, not the search
			s.logger.WithError(err).WithField("place_id", place.PlaceID).Warn("Skipping place, details fetch failed")
			continue
		}

		// Places without a rating are excluded when a minimum is requested
		if req.MinRating != nil && *req.MinRating > 0 {
			if detail.Rating == nil || *detail.Rating < *req.MinRating {
				continue
			}
		}

		hasWebsite := detail.Website != ""
		if req.HasWebsite != nil && hasWebsite != *req.HasWebsite {
			continue
		}

		leads = append(leads, buildLead(place, detail))
	}

	return leads, nil
}

func buildLead(place NearbyPlace, detail *PlaceDetail) models.BusinessLead {
	name := detail.Name
	if name == "" {
		name = "Unknown"
	}

	lead := models.BusinessLead{
		Name:          name,
		Address:       detail.FormattedAddress,
		GoogleMapsURL: fmt.Sprintf("https://maps.google.com/maps?cid=%s", place.PlaceID),
		Rating:        detail.Rating,
		ReviewCount:   detail.UserRatingsTotal,
		HasWebsite:    detail.Website != "",
		Latitude:      detail.Geometry.Location.Lat,
		Longitude:     detail.Geometry.Location.Lng,
	}

	if detail.FormattedPhoneNumber != "" {
		phone := detail.FormattedPhoneNumber
		lead.Phone = &phone
	}
	if detail.Website != "" {
		website := detail.Website
		lead.Website = &website
	}

	return lead
}
