package events

// SearchRequest represents the query parameters from the frontend.
// Coordinates arrive as strings and are parsed by the service; distance is
// forwarded upstream verbatim.
type SearchRequest struct {
	Keyword  string `form:"keyword" validate:"required"`
	Distance string `form:"distance"`
	Category string `form:"category"`
	Lat      string `form:"lat" validate:"required"`
	Lng      string `form:"lng" validate:"required"`
}

// SearchResultRow is one flat search result the frontend renders directly.
// Absent upstream data normalizes to empty strings, never null.
type SearchResultRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	DateLocal string `json:"dateLocal"`
	ImageURL  string `json:"imageUrl"`
	Genre     string `json:"genre"`
	Venue     string `json:"venue"`
}

// Artist is one performing attraction on an event detail page.
type Artist struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// EventDetail is the full normalized event record, a superset of
// SearchResultRow.
type EventDetail struct {
	SearchResultRow
	TimeLocal         string   `json:"timeLocal"`
	Artists           []Artist `json:"artists"`
	Address           string   `json:"address"`
	TicketStatus      string   `json:"ticketStatus"`
	TicketStatusColor string   `json:"ticketStatusColor"`
	BuyTicketAt       string   `json:"buyTicketAt"`
	Seatmap           string   `json:"seatmap"`
	PriceRange        string   `json:"priceRange"`
}
