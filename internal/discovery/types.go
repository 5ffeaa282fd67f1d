package discovery

import "strings"

// Page is the outer shape shared by the search, venue, and suggest payloads.
// The embedded object is absent when upstream has no results.
type Page struct {
	Embedded *Embedded `json:"_embedded"`
}

// Embedded mirrors the `_embedded` object of the Discovery API. Only the
// arrays the normalizers read are mapped.
type Embedded struct {
	Events      []Event      `json:"events"`
	Venues      []Venue      `json:"venues"`
	Attractions []Attraction `json:"attractions"`
}

// Event mirrors the relevant parts of an upstream event payload.
type Event struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	URL             string           `json:"url"`
	Dates           Dates            `json:"dates"`
	Images          []Image          `json:"images"`
	Classifications []Classification `json:"classifications"`
	PriceRanges     []PriceRange     `json:"priceRanges"`
	Seatmap         Seatmap          `json:"seatmap"`
	Embedded        *Embedded        `json:"_embedded"`
}

type Dates struct {
	Start  DateStart  `json:"start"`
	Status DateStatus `json:"status"`
}

type DateStart struct {
	LocalDate string `json:"localDate"`
	LocalTime string `json:"localTime"`
}

type DateStatus struct {
	Code string `json:"code"`
}

type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Classification carries upstream's category taxonomy. Each level is a
// pointer because upstream omits levels it has no value for.
type Classification struct {
	Segment  *Named `json:"segment"`
	Genre    *Named `json:"genre"`
	SubGenre *Named `json:"subGenre"`
}

type Named struct {
	Name string `json:"name"`
}

// PriceRange bounds are pointers so an absent bound is distinguishable
// from a zero price.
type PriceRange struct {
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
	Currency string   `json:"currency"`
}

type Seatmap struct {
	StaticURL string `json:"staticUrl"`
}

type Attraction struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Venue mirrors the relevant parts of an upstream venue payload.
type Venue struct {
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	PostalCode string    `json:"postalCode"`
	Address    Address   `json:"address"`
	City       Named     `json:"city"`
	State      State     `json:"state"`
	Location   *Location `json:"location"`
}

type Address struct {
	Line1 string `json:"line1"`
}

type State struct {
	StateCode string `json:"stateCode"`
}

// Location coordinates arrive as strings from upstream.
type Location struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// FullAddress joins the venue name, street, "city, stateCode" and postal code
// with ", ", skipping any segment upstream did not provide. A nil venue
// yields an empty string.
func (v *Venue) FullAddress() string {
	if v == nil {
		return ""
	}

	parts := make([]string, 0, 4)
	if v.Name != "" {
		parts = append(parts, v.Name)
	}
	if v.Address.Line1 != "" {
		parts = append(parts, v.Address.Line1)
	}

	cityParts := make([]string, 0, 2)
	if v.City.Name != "" {
		cityParts = append(cityParts, v.City.Name)
	}
	if v.State.StateCode != "" {
		cityParts = append(cityParts, v.State.StateCode)
	}
	if len(cityParts) > 0 {
		parts = append(parts, strings.Join(cityParts, ", "))
	}

	if v.PostalCode != "" {
		parts = append(parts, v.PostalCode)
	}

	return strings.Join(parts, ", ")
}
