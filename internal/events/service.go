package events

import (
	"context"
	"strconv"
	"strings"

	"eventfinder_backend/internal/discovery"
	"eventfinder_backend/platform/apperr"
	"eventfinder_backend/platform/logger"
	"eventfinder_backend/platform/validator"
)

// DiscoveryAPI is the slice of the discovery client this module depends on.
// Injected as an interface so services are testable with fixture payloads.
type DiscoveryAPI interface {
	SearchEvents(ctx context.Context, keyword, distance, category string, lat, lng *float64) (*discovery.Page, error)
	GetEvent(ctx context.Context, id string) (*discovery.Event, error)
	Suggest(ctx context.Context, keyword string) (*discovery.Page, error)
}

type Service struct {
	api DiscoveryAPI
	val *validator.Validator
	log *logger.Logger
}

func NewService(api DiscoveryAPI, val *validator.Validator, log *logger.Logger) *Service {
	return &Service{api: api, val: val, log: log}
}

// Search validates the request, runs one upstream event search and returns
// the normalized result rows. Validation failures never reach upstream.
func (s *Service) Search(ctx context.Context, req SearchRequest) ([]SearchResultRow, error) {
	if err := s.val.Struct(req); err != nil {
		return nil, apperr.Validation("keyword, lat and lng are required")
	}

	lat, err := parseCoordinate(req.Lat, "lat")
	if err != nil {
		return nil, err
	}
	lng, err := parseCoordinate(req.Lng, "lng")
	if err != nil {
		return nil, err
	}

	page, err := s.api.SearchEvents(ctx, req.Keyword, req.Distance, req.Category, lat, lng)
	if err != nil {
		return nil, err
	}

	return normalizeSearchResults(page), nil
}

// GetDetail fetches one event by identifier and normalizes it.
func (s *Service) GetDetail(ctx context.Context, id string) (*EventDetail, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.Validation("event id is required")
	}

	event, err := s.api.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := normalizeEventDetail(event)
	return &detail, nil
}

// Suggest returns autosuggest candidates for a keyword. Blank input
// short-circuits to an empty list without an upstream call.
func (s *Service) Suggest(ctx context.Context, keyword string) ([]string, error) {
	if strings.TrimSpace(keyword) == "" {
		return []string{}, nil
	}

	page, err := s.api.Suggest(ctx, keyword)
	if err != nil {
		return nil, err
	}

	return normalizeSuggestions(page), nil
}

func parseCoordinate(raw, name string) (*float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperr.Validation(name + " must be a number")
	}
	return &value, nil
}
