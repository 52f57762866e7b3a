package domain

// GeoPoint is a WGS-84 latitude/longitude coordinate pair in decimal degrees.
type GeoPoint struct {
	Lat float64
	Lon float64
}

// Polygon is an ordered ring of vertices, implicitly closed (the last vertex
// connects back to the first).
type Polygon []GeoPoint

// AlertRecord is one placeable alert extracted from the feed. All scalar
// fields hold the feed's text verbatim; missing elements are empty strings.
// Records are built once per feed entry and read-only afterward.
type AlertRecord struct {
	ID          string // Atom entry id, a URI
	Title       string
	Updated     string
	Summary     string

	// CAP 1.2 fields.
	Event       string
	Effective   string
	Expires     string
	Urgency     string
	Severity    string
	Certainty   string
	AreaDesc    string
	Headline    string
	Description string
	Instruction string

	// Point is the resolved representative coordinate. Extraction drops any
	// entry for which no point could be resolved, so a record always has one.
	Point GeoPoint
}

// CAP severity vocabulary. SeverityUnknown stands in for absent or
// out-of-vocabulary values.
const (
	SeverityExtreme  = "Extreme"
	SeveritySevere   = "Severe"
	SeverityModerate = "Moderate"
	SeverityMinor    = "Minor"
	SeverityUnknown  = "Unknown"
)
