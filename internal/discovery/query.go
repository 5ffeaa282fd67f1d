package discovery

import (
	"net/url"
	"strings"

	"eventfinder_backend/platform/apperr"

	geohash "github.com/TomiHiltunen/geohash-golang"
)

const (
	// SearchGeohashPrecision is the geohash length used for radius search.
	// Seven characters give roughly 153m cell resolution.
	SearchGeohashPrecision = 7

	defaultRadiusMiles = "10"
)

// BuildSearchQuery assembles the upstream query parameters for an event
// search. Keyword and both coordinates are required; distance defaults to
// "10" and is forwarded verbatim, mirroring upstream's tolerant parsing.
// Unknown categories simply omit the segment filter.
func BuildSearchQuery(apiKey, keyword, distance, category string, lat, lng *float64) (url.Values, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, apperr.Validation("keyword is required")
	}
	if lat == nil || lng == nil {
		return nil, apperr.Validation("lat and lng are required")
	}

	if distance == "" {
		distance = defaultRadiusMiles
	}

	params := url.Values{}
	params.Set("apikey", apiKey)
	params.Set("keyword", keyword)
	params.Set("radius", distance)
	params.Set("unit", "miles")
	params.Set("geoPoint", geohash.EncodeWithPrecision(*lat, *lng, SearchGeohashPrecision))

	if segment, ok := SegmentID(category); ok {
		params.Set("segmentId", segment)
	}

	return params, nil
}

// BuildDetailQuery assembles the parameters for a direct event lookup.
// The event identifier travels in the path, so only the key is needed here.
func BuildDetailQuery(apiKey string) url.Values {
	params := url.Values{}
	params.Set("apikey", apiKey)
	return params
}

// BuildVenueQuery assembles the parameters for a venue lookup by name.
// Exactly one venue is requested; paging is not supported.
func BuildVenueQuery(apiKey, name string) (url.Values, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("venue name is required")
	}

	params := url.Values{}
	params.Set("apikey", apiKey)
	params.Set("keyword", name)
	params.Set("size", "1")
	return params, nil
}

// BuildSuggestQuery assembles the parameters for an autosuggest lookup.
// Blank keywords never reach this builder; the service short-circuits them.
func BuildSuggestQuery(apiKey, keyword string) url.Values {
	params := url.Values{}
	params.Set("apikey", apiKey)
	params.Set("keyword", keyword)
	return params
}
