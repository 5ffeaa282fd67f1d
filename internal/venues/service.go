package venues

import (
	"context"
	"fmt"
	"strconv"

	"eventfinder_backend/internal/discovery"
	"eventfinder_backend/platform/apperr"
	"eventfinder_backend/platform/logger"
	"eventfinder_backend/platform/validator"
)

// VenueAPI is the slice of the discovery client this module depends on.
type VenueAPI interface {
	FindVenue(ctx context.Context, name string) (*discovery.Page, error)
}

type Service struct {
	api VenueAPI
	val *validator.Validator
	log *logger.Logger
}

func NewService(api VenueAPI, val *validator.Validator, log *logger.Logger) *Service {
	return &Service{api: api, val: val, log: log}
}

// Find looks up a venue by name. A nil result with a nil error means
// upstream matched nothing, which is a legitimate outcome, not a failure.
func (s *Service) Find(ctx context.Context, req LookupRequest) (*VenueInfo, error) {
	if err := s.val.Struct(req); err != nil {
		return nil, apperr.Validation("venue name is required")
	}

	page, err := s.api.FindVenue(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	return normalizeVenue(page), nil
}

// normalizeVenue reshapes the first embedded venue, or returns nil when the
// payload carries none.
func normalizeVenue(page *discovery.Page) *VenueInfo {
	if page == nil || page.Embedded == nil || len(page.Embedded.Venues) == 0 {
		return nil
	}

	venue := &page.Embedded.Venues[0]
	info := &VenueInfo{
		Name:     venue.Name,
		Address:  venue.FullAddress(),
		Location: venueCoordinates(venue),
	}

	if venue.URL != "" {
		info.TMURL = &venue.URL
	}

	if info.Location.Lat != nil && info.Location.Lng != nil {
		mapsURL := googleMapsURL(*info.Location.Lat, *info.Location.Lng)
		info.GoogleMapsURL = &mapsURL
	}

	return info
}

func venueCoordinates(venue *discovery.Venue) Coordinates {
	if venue.Location == nil {
		return Coordinates{}
	}

	lat, latErr := strconv.ParseFloat(venue.Location.Latitude, 64)
	lng, lngErr := strconv.ParseFloat(venue.Location.Longitude, 64)
	if latErr != nil || lngErr != nil {
		return Coordinates{}
	}

	return Coordinates{Lat: &lat, Lng: &lng}
}

func googleMapsURL(lat, lng float64) string {
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%s,%s",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lng, 'f', -1, 64))
}
