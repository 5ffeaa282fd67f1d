package venues

// LookupRequest represents the query parameters from the frontend.
type LookupRequest struct {
	Name string `form:"name" validate:"required"`
}

// Coordinates are null when upstream omits either value.
type Coordinates struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// VenueInfo is the normalized venue record. GoogleMapsURL is null unless
// both coordinates are present; TMURL is null when upstream has no page for
// the venue.
type VenueInfo struct {
	Name          string      `json:"name"`
	Address       string      `json:"address"`
	Location      Coordinates `json:"location"`
	GoogleMapsURL *string     `json:"googleMapsUrl"`
	TMURL         *string     `json:"tmUrl"`
}
