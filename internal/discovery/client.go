// Package discovery provides the HTTP client for the Ticketmaster Discovery API
// along with the query builders and payload types the domain modules consume.
package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"eventfinder_backend/platform/apperr"
	"eventfinder_backend/platform/config"
	"eventfinder_backend/platform/logger"
)

// Client is the HTTP client for the Discovery API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *logger.Logger
}

// NewClient creates a new Discovery API client.
func NewClient(cfg config.DiscoveryConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.GetDiscoveryTimeout()},
		baseURL:    cfg.GetDiscoveryBaseURL(),
		apiKey:     cfg.GetDiscoveryAPIKey(),
		log:        log,
	}
}

// SearchEvents runs a keyword/radius event search around the given coordinates.
func (c *Client) SearchEvents(ctx context.Context, keyword, distance, category string, lat, lng *float64) (*Page, error) {
	params, err := BuildSearchQuery(c.apiKey, keyword, distance, category, lat, lng)
	if err != nil {
		return nil, err
	}

	var page Page
	if err := c.get(ctx, "events.json", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetEvent fetches a single event by its upstream identifier.
// An upstream 404 surfaces as a NotFound error.
func (c *Client) GetEvent(ctx context.Context, id string) (*Event, error) {
	endpoint := fmt.Sprintf("events/%s.json", url.PathEscape(id))

	var event Event
	if err := c.get(ctx, endpoint, BuildDetailQuery(c.apiKey), &event); err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, apperr.NotFound("event not found")
		}
		return nil, err
	}
	return &event, nil
}

// FindVenue looks up the single best-matching venue for a name. A page with
// no embedded venues is a legitimate empty result, not an error.
func (c *Client) FindVenue(ctx context.Context, name string) (*Page, error) {
	params, err := BuildVenueQuery(c.apiKey, name)
	if err != nil {
		return nil, err
	}

	var page Page
	if err := c.get(ctx, "venues.json", params, &page); err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return &Page{}, nil
		}
		return nil, err
	}
	return &page, nil
}

// Suggest fetches autosuggest candidates for a keyword.
func (c *Client) Suggest(ctx context.Context, keyword string) (*Page, error) {
	var page Page
	if err := c.get(ctx, "suggest", BuildSuggestQuery(c.apiKey, keyword), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "create request", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError(endpoint, 0, err)
		return apperr.Wrap(apperr.KindUpstream, "discovery api unreachable", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// continue to decode
	case http.StatusNotFound:
		c.log.Debug("discovery not found", "endpoint", endpoint)
		return apperr.NotFound("resource not found")
	default:
		c.log.UpstreamError(endpoint, resp.StatusCode, nil)
		return apperr.Upstream(fmt.Sprintf("discovery api error: status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.UpstreamError(endpoint, resp.StatusCode, err)
		return apperr.Wrap(apperr.KindUpstream, "decode discovery payload", err)
	}

	return nil
}
