package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeocodeCacheKeyNormalizesLocation(t *testing.T) {
	key := geocodeCacheKey("Toronto, ON")

	assert.Equal(t, key, geocodeCacheKey("toronto, on"))
	assert.Equal(t, key, geocodeCacheKey("  Toronto, ON  "))
	assert.NotEqual(t, key, geocodeCacheKey("Vancouver, BC"))
}

func TestGeocodeCacheKeyPrefix(t *testing.T) {
	assert.Contains(t, geocodeCacheKey("Austin, TX"), "geocode:")
}
