package models

import "errors"

// DefaultSearchRadius is applied when a search request omits the radius (20km).
const DefaultSearchRadius = 20000

// ErrLocationNotFound is returned when a location string cannot be resolved
// to coordinates. The HTTP layer maps it to a 400 response.
var ErrLocationNotFound = errors.New("location not found")

type SearchRequest struct {
	Query      string   `json:"query" binding:"required"`
	Location   string   `json:"location" binding:"required"`
	Radius     int      `json:"radius"`
	MinRating  *float64 `json:"min_rating"`
	HasWebsite *bool    `json:"has_website"`
	// Categories is accepted for API compatibility but not used by the
	// current filtering logic.
	Categories []string `json:"categories"`
}

type SearchResponse struct {
	Leads        []BusinessLead `json:"leads"`
	TotalCount   int            `json:"total_count"`
	SearchCenter SearchCenter   `json:"search_center"`
}

// SearchCenter echoes the resolved coordinates and the original location text.
type SearchCenter struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Coordinates is a plain latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type StatusCheckCreate struct {
	ClientName string `json:"client_name" binding:"required"`
}

type DeleteLeadsResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}
