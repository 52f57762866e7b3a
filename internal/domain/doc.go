// Package domain models National Weather Service (NWS) active alerts as
// published on the CAP Atom feed.
//
// # Data Source
//
// Alerts come from the NWS API active-alerts feed at
// https://api.weather.gov/alerts/active.atom. The feed is Atom 1.0 with two
// extension vocabularies on each entry:
//
//   - CAP 1.2 (urn:oasis:names:tc:emergency:cap:1.2) carries the alert
//     semantics: event, severity, urgency, certainty, effective/expires
//     timestamps, headline, description, instruction, areaDesc.
//   - GeoRSS-Simple (http://www.georss.org/georss) optionally carries a
//     point ("lat lon") or a polygon (flat "lat lon lat lon ..." ring).
//
// Timestamps are kept as the opaque strings the feed publishes; nothing in
// this service does date arithmetic on them.
//
// # Geometry Resolution
//
// Each alert needs exactly one representative coordinate for map display.
// [ResolvePoint] tries three strategies in order:
//
//  1. The georss point, parsed directly.
//  2. The centroid of the georss polygon, computed with the planar shoelace
//     formula. Near-zero signed area (|A| < 1e-9, e.g. a collapsed ring)
//     falls back to the arithmetic mean of the vertices.
//  3. A fixed table of US state and territory codes mapped to approximate
//     geographic centers, matched as substrings of the CAP areaDesc. The
//     table is ordered and the first match wins, so an areaDesc naming
//     several states resolves to whichever code appears first in table
//     order. This is a deliberate approximation for alerts that carry no
//     geometry at all (many marine and zone-based alerts).
//
// Strategy failures are never errors. A malformed point string falls through
// to the polygon, a malformed polygon falls through to the area table, and an
// alert that defeats all three is simply unplaceable and gets dropped by the
// caller.
//
// # Severity
//
// CAP severity is a closed vocabulary (Extreme, Severe, Moderate, Minor,
// Unknown). The feed occasionally omits it or ships values outside the
// vocabulary; consumers treat anything unrecognized as Unknown.
package domain
