package discovery

import (
	"testing"

	"eventfinder_backend/platform/apperr"
)

func floatPtr(v float64) *float64 { return &v }

func TestBuildSearchQueryEncodesGeohashAtPrecisionSeven(t *testing.T) {
	params, err := BuildSearchQuery("key", "concert", "", "", floatPtr(34.0), floatPtr(-118.24))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	geoPoint := params.Get("geoPoint")
	if len(geoPoint) != 7 {
		t.Fatalf("expected 7-character geohash, got %q", geoPoint)
	}
	if geoPoint != "9q5cmms" {
		t.Fatalf("expected geohash 9q5cmms for 34.0,-118.24, got %q", geoPoint)
	}
}

func TestBuildSearchQueryAppliesDefaults(t *testing.T) {
	params, err := BuildSearchQuery("key", "concert", "", "", floatPtr(34.0), floatPtr(-118.24))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if params.Get("radius") != "10" {
		t.Fatalf("expected default radius 10, got %q", params.Get("radius"))
	}
	if params.Get("unit") != "miles" {
		t.Fatalf("expected unit miles, got %q", params.Get("unit"))
	}
	if params.Get("apikey") != "key" {
		t.Fatalf("expected apikey to be set")
	}
	if params.Has("segmentId") {
		t.Fatalf("expected no segment filter without a category, got %q", params.Get("segmentId"))
	}
}

func TestBuildSearchQueryForwardsDistanceVerbatim(t *testing.T) {
	params, err := BuildSearchQuery("key", "concert", "25.5miles", "", floatPtr(34.0), floatPtr(-118.24))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Upstream owns distance parsing; non-numeric input passes through.
	if params.Get("radius") != "25.5miles" {
		t.Fatalf("expected radius forwarded verbatim, got %q", params.Get("radius"))
	}
}

func TestBuildSearchQueryResolvesCategory(t *testing.T) {
	params, err := BuildSearchQuery("key", "concert", "10", "Music", floatPtr(34.0), floatPtr(-118.24))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if params.Get("segmentId") != "KZFzniwnSyZfZ7v7nJ" {
		t.Fatalf("expected Music segment id, got %q", params.Get("segmentId"))
	}
}

func TestBuildSearchQueryOmitsFilterForUnknownCategory(t *testing.T) {
	params, err := BuildSearchQuery("key", "concert", "10", "Default", floatPtr(34.0), floatPtr(-118.24))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if params.Has("segmentId") {
		t.Fatalf("expected Default to apply no segment filter")
	}
}

func TestBuildSearchQueryRejectsBlankKeyword(t *testing.T) {
	for _, keyword := range []string{"", "   "} {
		_, err := BuildSearchQuery("key", keyword, "10", "", floatPtr(34.0), floatPtr(-118.24))
		if !apperr.Is(err, apperr.KindValidation) {
			t.Fatalf("expected validation error for keyword %q, got %v", keyword, err)
		}
	}
}

func TestBuildSearchQueryRejectsMissingCoordinates(t *testing.T) {
	_, err := BuildSearchQuery("key", "concert", "10", "", nil, floatPtr(-118.24))
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for missing lat, got %v", err)
	}

	_, err = BuildSearchQuery("key", "concert", "10", "", floatPtr(34.0), nil)
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for missing lng, got %v", err)
	}
}

func TestBuildVenueQueryRequestsSingleResult(t *testing.T) {
	params, err := BuildVenueQuery("key", "The Forum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if params.Get("size") != "1" {
		t.Fatalf("expected size=1, got %q", params.Get("size"))
	}
	if params.Get("keyword") != "The Forum" {
		t.Fatalf("expected keyword set, got %q", params.Get("keyword"))
	}
}

func TestBuildVenueQueryRejectsBlankName(t *testing.T) {
	_, err := BuildVenueQuery("key", "  ")
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBuildDetailAndSuggestQueriesCarryAPIKey(t *testing.T) {
	if got := BuildDetailQuery("key").Get("apikey"); got != "key" {
		t.Fatalf("expected detail query apikey, got %q", got)
	}

	params := BuildSuggestQuery("key", "lady")
	if params.Get("apikey") != "key" || params.Get("keyword") != "lady" {
		t.Fatalf("unexpected suggest params: %v", params)
	}
}
