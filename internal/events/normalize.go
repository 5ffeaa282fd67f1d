package events

import (
	"fmt"
	"strings"

	"eventfinder_backend/internal/discovery"
)

const (
	maxArtists     = 5
	maxSuggestions = 10
)

func normalizeSearchResults(page *discovery.Page) []SearchResultRow {
	rows := []SearchResultRow{}
	if page == nil || page.Embedded == nil {
		return rows
	}

	for i := range page.Embedded.Events {
		rows = append(rows, searchRow(&page.Embedded.Events[i]))
	}
	return rows
}

func searchRow(event *discovery.Event) SearchResultRow {
	row := SearchResultRow{
		ID:        event.ID,
		Name:      event.Name,
		DateLocal: event.Dates.Start.LocalDate,
		ImageURL:  pickImage(event.Images),
		Genre:     pickGenre(event.Classifications),
	}
	if venue := firstVenue(event); venue != nil {
		row.Venue = venue.Name
	}
	return row
}

func normalizeEventDetail(event *discovery.Event) EventDetail {
	return EventDetail{
		SearchResultRow:   searchRow(event),
		TimeLocal:         event.Dates.Start.LocalTime,
		Artists:           eventArtists(event),
		Address:           firstVenue(event).FullAddress(),
		TicketStatus:      event.Dates.Status.Code,
		TicketStatusColor: ticketStatusColor(event.Dates.Status.Code),
		BuyTicketAt:       event.URL,
		Seatmap:           event.Seatmap.StaticURL,
		PriceRange:        formatPriceRange(event.PriceRanges),
	}
}

// pickImage selects the most square image, the one whose width/height
// difference is smallest. Ties keep the earliest entry.
func pickImage(images []discovery.Image) string {
	best := ""
	bestDiff := 0
	for _, img := range images {
		diff := img.Width - img.Height
		if diff < 0 {
			diff = -diff
		}
		if best == "" || diff < bestDiff {
			best = img.URL
			bestDiff = diff
		}
	}
	return best
}

// pickGenre joins segment, genre and subGenre names of the first
// classification with " | ", skipping absent levels.
func pickGenre(classifications []discovery.Classification) string {
	if len(classifications) == 0 {
		return ""
	}

	first := classifications[0]
	parts := make([]string, 0, 3)
	for _, level := range []*discovery.Named{first.Segment, first.Genre, first.SubGenre} {
		if level != nil && level.Name != "" {
			parts = append(parts, level.Name)
		}
	}
	return strings.Join(parts, " | ")
}

func firstVenue(event *discovery.Event) *discovery.Venue {
	if event.Embedded == nil || len(event.Embedded.Venues) == 0 {
		return nil
	}
	return &event.Embedded.Venues[0]
}

func eventArtists(event *discovery.Event) []Artist {
	artists := []Artist{}
	if event.Embedded == nil {
		return artists
	}

	for _, attraction := range event.Embedded.Attractions {
		if len(artists) == maxArtists {
			break
		}
		artists = append(artists, Artist{Name: attraction.Name, URL: attraction.URL})
	}
	return artists
}

// ticketStatusColor classifies a raw upstream status code into a display
// color. Matching is case-insensitive substring, first rule wins.
func ticketStatusColor(code string) string {
	code = strings.ToLower(code)
	switch {
	case strings.Contains(code, "onsale"):
		return "green"
	case strings.Contains(code, "offsale"):
		return "red"
	case strings.Contains(code, "cancel"):
		return "black"
	case strings.Contains(code, "postpon"), strings.Contains(code, "resched"):
		return "orange"
	default:
		return "gray"
	}
}

// formatPriceRange renders the first price range entry. Both bounds present
// yields "$min ~ $max", a single bound yields "From $min" or "Up to $max",
// and no bounds yields an empty string.
func formatPriceRange(ranges []discovery.PriceRange) string {
	if len(ranges) == 0 {
		return ""
	}

	first := ranges[0]
	switch {
	case first.Min != nil && first.Max != nil:
		return fmt.Sprintf("$%.2f ~ $%.2f", *first.Min, *first.Max)
	case first.Min != nil:
		return fmt.Sprintf("From $%.2f", *first.Min)
	case first.Max != nil:
		return fmt.Sprintf("Up to $%.2f", *first.Max)
	default:
		return ""
	}
}

// normalizeSuggestions flattens attraction, venue and event names, in that
// order, dropping duplicates (first occurrence wins) and capping the list.
func normalizeSuggestions(page *discovery.Page) []string {
	suggestions := []string{}
	if page == nil || page.Embedded == nil {
		return suggestions
	}

	seen := make(map[string]bool)
	add := func(name string) {
		if name == "" || seen[name] || len(suggestions) == maxSuggestions {
			return
		}
		seen[name] = true
		suggestions = append(suggestions, name)
	}

	for _, attraction := range page.Embedded.Attractions {
		add(attraction.Name)
	}
	for _, venue := range page.Embedded.Venues {
		add(venue.Name)
	}
	for _, event := range page.Embedded.Events {
		add(event.Name)
	}

	return suggestions
}
