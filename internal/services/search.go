package services

import (
	"context"
	"fmt"

	"github.com/cmac111/scraper/internal/database"
	"github.com/cmac111/scraper/internal/models"
	"github.com/sirupsen/logrus"
)

// Geocoder resolves a free-text location into coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, location string) (models.Coordinates, error)
}

// LeadSource produces business leads for a search request around a resolved
// center. Implementations apply the request filters themselves.
type LeadSource interface {
	FetchLeads(ctx context.Context, req models.SearchRequest, center models.Coordinates) ([]models.BusinessLead, error)
}

// SearchService orchestrates geocoding, lead fetching and persistence.
type SearchService struct {
	geocoder Geocoder
	source   LeadSource
	leads    models.BusinessLeadRepository
	cache    *database.Cache
	logger   *logrus.Logger
}

// NewSearchService wires the search pipeline. cache may be nil, geocode
// results are then resolved fresh on every request.
func NewSearchService(geocoder Geocoder, source LeadSource, leads models.BusinessLeadRepository, cache *database.Cache, logger *logrus.Logger) *SearchService {
	return &SearchService{
		geocoder: geocoder,
		source:   source,
		leads:    leads,
		cache:    cache,
		logger:   logger,
	}
}

// Search resolves the request location, fetches matching leads, persists
// every lead and assembles the response envelope.
func (s *SearchService) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error) {
	if req.Radius <= 0 {
		req.Radius = models.DefaultSearchRadius
	}

	center, err := s.resolveLocation(ctx, req.Location)
	if err != nil {
		return nil, err
	}

	leads, err := s.source.FetchLeads(ctx, req, center)
	if err != nil {
		return nil, err
	}

	for i := range leads {
		if err := s.leads.Create(&leads[i]); err != nil {
			return nil, fmt.Errorf("failed to save lead %q: %w", leads[i].Name, err)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"query":    req.Query,
		"location": req.Location,
		"count":    len(leads),
	}).Info("Search completed")

	if leads == nil {
		leads = make([]models.BusinessLead, 0)
	}

	return &models.SearchResponse{
		Leads:      leads,
		TotalCount: len(leads),
		SearchCenter: models.SearchCenter{
			Lat:     center.Lat,
			Lng:     center.Lng,
			Address: req.Location,
		},
	}, nil
}

// resolveLocation consults the geocode cache before the geocoder. Cache
// failures fall through to a fresh lookup.
func (s *SearchService) resolveLocation(ctx context.Context, location string) (models.Coordinates, error) {
	if s.cache != nil {
		if coords, err := s.cache.GetCachedGeocode(ctx, location); err == nil {
			s.logger.WithField("location", location).Debug("Geocode cache hit")
			return *coords, nil
		}
	}

	coords, err := s.geocoder.Geocode(ctx, location)
	if err != nil {
		return models.Coordinates{}, err
	}

	if s.cache != nil {
		if err := s.cache.CacheGeocode(ctx, location, &coords, database.GeocodeTTL); err != nil {
			s.logger.WithError(err).Warn("Failed to cache geocode result")
		}
	}

	return coords, nil
}
