package mockdata

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cmac111/scraper/internal/models"
	"github.com/sirupsen/logrus"
)

// maxResults caps the number of leads one search can return
const maxResults = 25

// Generator synthesizes business leads without touching any remote service.
// It satisfies the same contract as the live places service, so the two are
// interchangeable behind the search service.
type Generator struct {
	mu     sync.Mutex
	rng    *rand.Rand
	logger *logrus.Logger
}

// NewGenerator returns a Generator seeded from the clock.
func NewGenerator(logger *logrus.Logger) *Generator {
	return NewGeneratorWithSeed(time.Now().UnixNano(), logger)
}

// NewGeneratorWithSeed returns a Generator with a fixed seed so output is
// reproducible.
func NewGeneratorWithSeed(seed int64, logger *logrus.Logger) *Generator {
	return &Generator{
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// Geocode resolves a location string against the city table. Unknown
// locations resolve to the default city, never to an error.
func (g *Generator) Geocode(ctx context.Context, location string) (models.Coordinates, error) {
	lower := strings.ToLower(location)
	for _, c := range cities {
		if strings.Contains(lower, c.name) {
			return models.Coordinates{Lat: c.lat, Lng: c.lng}, nil
		}
	}
	return models.Coordinates{Lat: defaultCity.lat, Lng: defaultCity.lng}, nil
}

// FetchLeads generates a randomized batch of leads scattered around the
// resolved center, honoring the request's rating and website filters.
func (g *Generator) FetchLeads(ctx context.Context, req models.SearchRequest, center models.Coordinates) ([]models.BusinessLead, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	cat := classify(req.Query)
	count := g.rng.Intn(21) + 5
	cityName := leadingComponent(req.Location)

	g.logger.WithFields(logrus.Fields{
		"query":    req.Query,
		"category": cat.name,
		"count":    count,
	}).Debug("Generating mock leads")

	leads := make([]models.BusinessLead, 0, count)
	for i := 0; i < count; i++ {
		lat := center.Lat + g.jitter(req.Radius)
		lng := center.Lng + g.jitter(req.Radius)

		name := g.businessName(cat, cityName)
		rating := math.Round((2.0+g.rng.Float64()*3.0)*10) / 10
		reviews := g.rng.Intn(496) + 5

		if req.MinRating != nil && *req.MinRating > 0 && rating < *req.MinRating {
			continue
		}

		hasWebsite := g.rng.Intn(4) < 3
		if req.HasWebsite != nil && hasWebsite != *req.HasWebsite {
			continue
		}

		phone := g.phoneNumber()
		lead := models.BusinessLead{
			Name:          name,
			Address:       g.streetAddress(cityName),
			Phone:         &phone,
			GoogleMapsURL: mapsSearchURL(name),
			Rating:        &rating,
			ReviewCount:   &reviews,
			HasWebsite:    hasWebsite,
			Latitude:      lat,
			Longitude:     lng,
		}
		if hasWebsite {
			website := websiteURL(name)
			lead.Website = &website
		}

		leads = append(leads, lead)
	}

	if len(leads) > maxResults {
		leads = leads[:maxResults]
	}
	return leads, nil
}

// classify maps a query to the first category with a keyword hit. Evaluation
// order is fixed so tie-breaks stay predictable.
func classify(query string) category {
	lower := strings.ToLower(query)
	for _, c := range categories {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c
			}
		}
	}
	return categories[len(categories)-1]
}

// leadingComponent extracts the city part of "City, Region" style input.
func leadingComponent(location string) string {
	parts := strings.SplitN(location, ",", 2)
	return strings.TrimSpace(parts[0])
}

// jitter returns a coordinate offset bounded by a degree approximation of
// the search radius.
func (g *Generator) jitter(radiusMeters int) float64 {
	maxDelta := float64(radiusMeters) / 1000.0 * 0.009
	return (g.rng.Float64()*2 - 1) * maxDelta
}

func (g *Generator) businessName(cat category, cityName string) string {
	tmpl := cat.templates[g.rng.Intn(len(cat.templates))]
	r := strings.NewReplacer(
		"{adjective}", adjectives[g.rng.Intn(len(adjectives))],
		"{surname}", surnames[g.rng.Intn(len(surnames))],
		"{food}", foods[g.rng.Intn(len(foods))],
		"{city}", cityName,
	)
	return r.Replace(tmpl)
}

func (g *Generator) streetAddress(cityName string) string {
	street := streets[g.rng.Intn(len(streets))]
	return fmt.Sprintf("%d %s, %s", 100+g.rng.Intn(9900), street, cityName)
}

func (g *Generator) phoneNumber() string {
	area := areaCodes[g.rng.Intn(len(areaCodes))]
	return fmt.Sprintf("(%s) %d-%04d", area, 200+g.rng.Intn(800), g.rng.Intn(10000))
}

// slugify lowers the name and collapses every non-alphanumeric run into a
// single hyphen. Apostrophes vanish instead of splitting words.
func slugify(name string) string {
	lower := strings.ToLower(name)
	lower = strings.ReplaceAll(lower, "'", "")

	var b strings.Builder
	prevHyphen := false
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen && b.Len() > 0 {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func websiteURL(name string) string {
	return "https://www." + slugify(name) + ".com"
}

func mapsSearchURL(name string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(name)
}
