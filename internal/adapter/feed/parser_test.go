package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capwatch/alertmap/internal/domain"
)

// testFeed mimics the NWS active-alerts Atom rendition: four entries, one
// placed by georss point, one by polygon centroid, one by areaDesc state
// code, and one with nothing placeable.
const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"
      xmlns:cap="urn:oasis:names:tc:emergency:cap:1.2"
      xmlns:georss="http://www.georss.org/georss">
 <id>https://api.weather.gov/alerts/active.atom</id>
 <title>Current watches, warnings, and advisories</title>
 <updated>2026-08-29T18:00:00+00:00</updated>
 <entry>
  <id>https://api.weather.gov/alerts/urn:oid:2.49.0.1.840.0.aaa</id>
  <title>Flood Warning issued for San Saba County</title>
  <updated>2026-08-29T17:40:00+00:00</updated>
  <summary>Flooding along the San Saba River.</summary>
  <georss:point> 31.02 -98.44 </georss:point>
  <cap:event>Flood Warning</cap:event>
  <cap:effective>2026-08-29T12:40:00-05:00</cap:effective>
  <cap:expires>2026-08-30T00:40:00-05:00</cap:expires>
  <cap:urgency>Expected</cap:urgency>
  <cap:severity>Severe</cap:severity>
  <cap:certainty>Likely</cap:certainty>
  <cap:areaDesc>San Saba, TX</cap:areaDesc>
  <cap:headline>Flood Warning until midnight</cap:headline>
  <cap:description>The river is above flood stage.</cap:description>
  <cap:instruction>Move to higher ground.</cap:instruction>
 </entry>
 <entry>
  <id>https://api.weather.gov/alerts/urn:oid:2.49.0.1.840.0.bbb</id>
  <title>Tornado Warning</title>
  <updated>2026-08-29T17:45:00+00:00</updated>
  <summary>Radar indicated rotation.</summary>
  <georss:polygon>0 0 0 2 2 2 2 0</georss:polygon>
  <cap:event>Tornado Warning</cap:event>
  <cap:urgency>Immediate</cap:urgency>
  <cap:severity>Extreme</cap:severity>
  <cap:certainty>Observed</cap:certainty>
  <cap:areaDesc>Pittsburg, OK</cap:areaDesc>
  <cap:headline>Tornado Warning for Pittsburg County</cap:headline>
 </entry>
 <entry>
  <id>https://api.weather.gov/alerts/urn:oid:2.49.0.1.840.0.ccc</id>
  <title>Heat Advisory</title>
  <updated>2026-08-29T17:50:00+00:00</updated>
  <summary>Hot conditions expected.</summary>
  <cap:event>Heat Advisory</cap:event>
  <cap:severity>Minor</cap:severity>
  <cap:areaDesc>Maricopa County, AZ</cap:areaDesc>
 </entry>
 <entry>
  <id>https://api.weather.gov/alerts/urn:oid:2.49.0.1.840.0.ddd</id>
  <title>Special Marine Warning</title>
  <updated>2026-08-29T17:55:00+00:00</updated>
  <summary>Gusty winds over open water.</summary>
  <cap:event>Special Marine Warning</cap:event>
  <cap:severity>Moderate</cap:severity>
  <cap:areaDesc>mid-lake open waters</cap:areaDesc>
 </entry>
</feed>`

func TestParser_Extract(t *testing.T) {
	p := NewParser(testLogger())

	records, dropped, err := p.Extract([]byte(testFeed))
	require.NoError(t, err)

	assert.Equal(t, 1, dropped)
	require.Len(t, records, 3)

	t.Run("point entry", func(t *testing.T) {
		rec := records[0]
		assert.Equal(t, "https://api.weather.gov/alerts/urn:oid:2.49.0.1.840.0.aaa", rec.ID)
		assert.Equal(t, "Flood Warning issued for San Saba County", rec.Title)
		assert.Equal(t, "2026-08-29T17:40:00+00:00", rec.Updated)
		assert.Equal(t, "Flooding along the San Saba River.", rec.Summary)
		assert.Equal(t, "Flood Warning", rec.Event)
		assert.Equal(t, "2026-08-29T12:40:00-05:00", rec.Effective)
		assert.Equal(t, "2026-08-30T00:40:00-05:00", rec.Expires)
		assert.Equal(t, "Expected", rec.Urgency)
		assert.Equal(t, "Severe", rec.Severity)
		assert.Equal(t, "Likely", rec.Certainty)
		assert.Equal(t, "San Saba, TX", rec.AreaDesc)
		assert.Equal(t, "Flood Warning until midnight", rec.Headline)
		assert.Equal(t, "The river is above flood stage.", rec.Description)
		assert.Equal(t, "Move to higher ground.", rec.Instruction)
		assert.Equal(t, domain.GeoPoint{Lat: 31.02, Lon: -98.44}, rec.Point)
	})

	t.Run("polygon entry resolves to centroid", func(t *testing.T) {
		rec := records[1]
		assert.Equal(t, "Tornado Warning", rec.Event)
		assert.InDelta(t, 1.0, rec.Point.Lat, 1e-9)
		assert.InDelta(t, 1.0, rec.Point.Lon, 1e-9)
	})

	t.Run("missing CAP fields become empty strings", func(t *testing.T) {
		rec := records[1]
		assert.Empty(t, rec.Effective)
		assert.Empty(t, rec.Expires)
		assert.Empty(t, rec.Description)
		assert.Empty(t, rec.Instruction)
	})

	t.Run("geometryless entry falls back to area table", func(t *testing.T) {
		rec := records[2]
		assert.Equal(t, "Heat Advisory", rec.Event)
		assert.Equal(t, domain.GeoPoint{Lat: 34.2744, Lon: -111.6602}, rec.Point)
	})

	t.Run("entry order is preserved", func(t *testing.T) {
		assert.Equal(t, "Flood Warning", records[0].Event)
		assert.Equal(t, "Tornado Warning", records[1].Event)
		assert.Equal(t, "Heat Advisory", records[2].Event)
	})
}

func TestParser_Extract_MalformedFeed(t *testing.T) {
	p := NewParser(testLogger())

	_, _, err := p.Extract([]byte("this is not xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse feed")
}

func TestParser_Extract_EmptyFeed(t *testing.T) {
	p := NewParser(testLogger())

	const empty = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
 <id>https://api.weather.gov/alerts/active.atom</id>
 <title>Current watches, warnings, and advisories</title>
 <updated>2026-08-29T18:00:00+00:00</updated>
</feed>`

	records, dropped, err := p.Extract([]byte(empty))
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Zero(t, dropped)
}

func TestParser_Extract_MalformedGeometryFallsThrough(t *testing.T) {
	p := NewParser(testLogger())

	const feed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"
      xmlns:cap="urn:oasis:names:tc:emergency:cap:1.2"
      xmlns:georss="http://www.georss.org/georss">
 <id>https://api.weather.gov/alerts/active.atom</id>
 <title>test</title>
 <entry>
  <id>urn:test:1</id>
  <title>Winter Storm Watch</title>
  <georss:point>not numeric</georss:point>
  <georss:polygon>1 2 3</georss:polygon>
  <cap:event>Winter Storm Watch</cap:event>
  <cap:areaDesc>Summit County, CO</cap:areaDesc>
 </entry>
</feed>`

	records, dropped, err := p.Extract([]byte(feed))
	require.NoError(t, err)
	assert.Zero(t, dropped)
	require.Len(t, records, 1)
	assert.Equal(t, domain.GeoPoint{Lat: 38.9972, Lon: -105.5478}, records[0].Point)
}
