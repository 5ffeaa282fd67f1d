package discovery

// segmentIDs maps the five client-facing category labels to upstream
// classification segment identifiers. Read-only after initialization.
var segmentIDs = map[string]string{
	"Music":          "KZFzniwnSyZfZ7v7nJ",
	"Sports":         "KZFzniwnSyZfZ7v7nE",
	"Arts & Theatre": "KZFzniwnSyZfZ7v7na",
	"Film":           "KZFzniwnSyZfZ7v7nn",
	"Miscellaneous":  "KZFzniwnSyZfZ7v7n1",
}

// SegmentID resolves a category label to its upstream segment identifier.
// Unknown labels (including "Default") report false, which callers treat as
// "no segment filter", never as an error.
func SegmentID(category string) (string, bool) {
	id, ok := segmentIDs[category]
	return id, ok
}
