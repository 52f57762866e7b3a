package domain

import (
	"math"
	"strconv"
	"strings"
)

// degenerateArea is the signed-area threshold below which a polygon is
// treated as collapsed and the centroid falls back to the vertex mean.
const degenerateArea = 1e-9

// ResolvePoint derives one representative coordinate for an alert from its
// raw location fields: an explicit georss point string, a flat georss polygon
// string, and the CAP areaDesc text. Strategies are tried in that order and
// the first success wins. Returns false when the alert cannot be placed.
func ResolvePoint(point, polygon, areaDesc string) (GeoPoint, bool) {
	if p, ok := ParsePoint(point); ok {
		return p, true
	}
	if poly, ok := ParsePolygon(polygon); ok {
		return poly.Centroid(), true
	}
	if p, ok := regionPoint(areaDesc); ok {
		return p, true
	}
	return GeoPoint{}, false
}

// ParsePoint parses a georss point string of exactly two whitespace-separated
// decimal values, "lat lon". Anything else returns false.
func ParsePoint(s string) (GeoPoint, bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return GeoPoint{}, false
	}
	lat, errLat := strconv.ParseFloat(fields[0], 64)
	lon, errLon := strconv.ParseFloat(fields[1], 64)
	if errLat != nil || errLon != nil {
		return GeoPoint{}, false
	}
	return GeoPoint{Lat: lat, Lon: lon}, true
}

// ParsePolygon parses a georss polygon string: a flat whitespace-separated
// run of decimal values alternating lat, lon. Returns false on an odd value
// count, any non-numeric token, or fewer than three vertices.
func ParsePolygon(s string) (Polygon, bool) {
	fields := strings.Fields(s)
	if len(fields) < 6 || len(fields)%2 != 0 {
		return nil, false
	}
	poly := make(Polygon, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		lat, errLat := strconv.ParseFloat(fields[i], 64)
		lon, errLon := strconv.ParseFloat(fields[i+1], 64)
		if errLat != nil || errLon != nil {
			return nil, false
		}
		poly = append(poly, GeoPoint{Lat: lat, Lon: lon})
	}
	return poly, true
}

// Centroid computes the polygon's center of mass with the planar shoelace
// formula, treating vertices as (x=lon, y=lat) and wrapping last to first.
// A near-zero signed area means the ring is degenerate (a line, or a single
// vertex repeated); the vertex mean is returned instead.
func (p Polygon) Centroid() GeoPoint {
	if len(p) == 0 {
		return GeoPoint{}
	}

	var a, cx, cy float64
	for i := range p {
		x1, y1 := p[i].Lon, p[i].Lat
		x2, y2 := p[(i+1)%len(p)].Lon, p[(i+1)%len(p)].Lat
		cross := x1*y2 - x2*y1
		a += cross
		cx += (x1 + x2) * cross
		cy += (y1 + y2) * cross
	}

	if math.Abs(a) < degenerateArea {
		return p.mean()
	}

	a *= 0.5
	return GeoPoint{Lat: cy / (6 * a), Lon: cx / (6 * a)}
}

func (p Polygon) mean() GeoPoint {
	var lat, lon float64
	for _, v := range p {
		lat += v.Lat
		lon += v.Lon
	}
	n := float64(len(p))
	return GeoPoint{Lat: lat / n, Lon: lon / n}
}
