// Command genfeed writes a synthetic CAP Atom feed fixture for offline
// development and testing. Generated entries cycle through the geometry
// shapes the extractor handles: georss points, polygons, areaDesc-only
// entries, and an optional run of unplaceable entries.
//
// Usage:
//
//	go run ./cmd/genfeed -out testdata/feed.atom -count 12 -unplaceable 2
package main

import (
	"bytes"
	"encoding/xml"
	"flag"
	"fmt"
	"log"
	"os"
	"time"
)

var severities = []string{"Extreme", "Severe", "Moderate", "Minor", ""}

var events = []string{
	"Tornado Warning",
	"Flood Warning",
	"Severe Thunderstorm Warning",
	"Heat Advisory",
	"Special Weather Statement",
}

var areas = []string{
	"San Saba, TX",
	"Pittsburg, OK",
	"Maricopa County, AZ",
	"Summit County, CO",
	"Dane County, WI",
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the Atom fixture")
	count := flag.Int("count", 12, "number of placeable entries")
	unplaceable := flag.Int("unplaceable", 0, "number of entries without resolvable geometry")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	data := buildFeed(*count, *unplaceable, time.Date(2026, time.August, 29, 18, 0, 0, 0, time.UTC))
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}

	log.Printf("wrote %s: %d placeable, %d unplaceable", *out, *count, *unplaceable)
	return nil
}

func buildFeed(count, unplaceable int, base time.Time) []byte {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(`<feed xmlns="http://www.w3.org/2005/Atom"` + "\n")
	buf.WriteString(`      xmlns:cap="urn:oasis:names:tc:emergency:cap:1.2"` + "\n")
	buf.WriteString(`      xmlns:georss="http://www.georss.org/georss">` + "\n")
	writeEl(&buf, 1, "id", "https://api.weather.gov/alerts/active.atom")
	writeEl(&buf, 1, "title", "Synthetic active alerts fixture")
	writeEl(&buf, 1, "updated", base.Format(time.RFC3339))

	for i := 0; i < count; i++ {
		writeEntry(&buf, i, base, true)
	}
	for i := 0; i < unplaceable; i++ {
		writeEntry(&buf, count+i, base, false)
	}

	buf.WriteString("</feed>\n")
	return buf.Bytes()
}

func writeEntry(buf *bytes.Buffer, i int, base time.Time, placeable bool) {
	sev := severities[i%len(severities)]
	event := events[i%len(events)]
	updated := base.Add(time.Duration(i) * time.Minute)

	buf.WriteString(" <entry>\n")
	writeEl(buf, 2, "id", fmt.Sprintf("urn:test:alert-%03d", i))
	writeEl(buf, 2, "title", fmt.Sprintf("%s #%d", event, i))
	writeEl(buf, 2, "updated", updated.Format(time.RFC3339))
	writeEl(buf, 2, "summary", fmt.Sprintf("Synthetic %s for testing.", event))

	if placeable {
		// Cycle geometry shape: point, polygon, areaDesc-only.
		lat := 30.0 + float64(i%10)
		lon := -100.0 + float64(i%10)
		switch i % 3 {
		case 0:
			writeEl(buf, 2, "georss:point", fmt.Sprintf("%.2f %.2f", lat, lon))
		case 1:
			writeEl(buf, 2, "georss:polygon", fmt.Sprintf(
				"%.2f %.2f %.2f %.2f %.2f %.2f %.2f %.2f",
				lat, lon, lat, lon+1, lat+1, lon+1, lat+1, lon))
		}
	}

	writeEl(buf, 2, "cap:event", event)
	if sev != "" {
		writeEl(buf, 2, "cap:severity", sev)
	}
	writeEl(buf, 2, "cap:urgency", "Expected")
	writeEl(buf, 2, "cap:certainty", "Likely")
	writeEl(buf, 2, "cap:effective", updated.Format(time.RFC3339))
	writeEl(buf, 2, "cap:expires", updated.Add(6*time.Hour).Format(time.RFC3339))
	if placeable {
		writeEl(buf, 2, "cap:areaDesc", areas[i%len(areas)])
	} else {
		writeEl(buf, 2, "cap:areaDesc", "open waters beyond codes")
	}
	writeEl(buf, 2, "cap:headline", fmt.Sprintf("%s in effect", event))
	buf.WriteString(" </entry>\n")
}

func writeEl(buf *bytes.Buffer, depth int, name, value string) {
	for i := 0; i < depth; i++ {
		buf.WriteByte(' ')
	}
	buf.WriteString("<" + name + ">")
	_ = xml.EscapeText(buf, []byte(value))
	buf.WriteString("</" + name + ">\n")
}
