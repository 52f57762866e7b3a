// Command validate performs integrity checks on a generated KML document
// against the Atom feed it was built from. It re-runs extraction on the feed
// fixture, rebuilds the expected document, and verifies style definitions,
// placemark counts, ordering, coordinates, and extended-data round-trips.
//
// Usage:
//
//	go run ./cmd/validate -feed testdata/feed.atom -kml site/alerts.kml
package main

import (
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/capwatch/alertmap/internal/adapter/feed"
	"github.com/capwatch/alertmap/internal/kml"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	feedPath := flag.String("feed", "", "path to the Atom feed the KML was built from")
	kmlPath := flag.String("kml", "", "path to the generated KML document")
	flag.Parse()

	if *feedPath == "" || *kmlPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*feedPath, *kmlPath); code != 0 {
		os.Exit(code)
	}
}

func run(feedPath, kmlPath string) int {
	fmt.Println("=== Alert KML Integrity Validation ===")
	fmt.Println()

	feedData, err := os.ReadFile(feedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: read feed: %v\n", err)
		return 1
	}
	kmlData, err := os.ReadFile(kmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: read kml: %v\n", err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	records, dropped, err := feed.NewParser(logger).Extract(feedData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: parse feed: %v\n", err)
		return 1
	}

	var actual kml.KML
	if err := xml.Unmarshal(kmlData, &actual); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: parse kml: %v\n", err)
		return 1
	}

	expected := kml.Builder{}.Build(records)

	phases := []*phase{
		checkStyles(&actual),
		checkPlacemarks(expected, &actual),
	}

	fmt.Printf("feed: %d placeable entries, %d dropped\n\n", len(records), dropped)

	failed := 0
	for _, p := range phases {
		if p.passed() {
			fmt.Printf("PASS %s\n", p.name)
			continue
		}
		failed++
		fmt.Printf("FAIL %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	if failed > 0 {
		fmt.Printf("\n%d phase(s) failed\n", failed)
		return 1
	}
	fmt.Println("\nall phases passed")
	return 0
}

// checkStyles verifies the fixed document-level style set.
func checkStyles(actual *kml.KML) *phase {
	p := &phase{name: "style definitions"}

	want := []string{"sev_extreme", "sev_severe", "sev_moderate", "sev_minor", "sev_unknown", "balloon"}
	got := make(map[string]kml.Style, len(actual.Document.Styles))
	for _, s := range actual.Document.Styles {
		got[s.ID] = s
	}

	for _, id := range want {
		if _, ok := got[id]; !ok {
			p.errorf("missing style %q", id)
		}
	}

	if se, ok := got["sev_severe"]; ok {
		if ex, ok2 := got["sev_extreme"]; ok2 && se.IconStyle != nil && ex.IconStyle != nil {
			if se.IconStyle.Icon.Href != ex.IconStyle.Icon.Href {
				p.errorf("severe and extreme icons differ: %q vs %q", se.IconStyle.Icon.Href, ex.IconStyle.Icon.Href)
			}
		}
	}

	if b, ok := got["balloon"]; ok {
		if b.BalloonStyle == nil || b.BalloonStyle.Text == nil || b.BalloonStyle.Text.Value == "" {
			p.errorf("balloon style has no template text")
		}
	}

	return p
}

// checkPlacemarks compares the document's placemarks against a rebuild from
// the same feed, field by field and in order.
func checkPlacemarks(expected, actual *kml.KML) *phase {
	p := &phase{name: "placemark equivalence"}

	exp := expected.Document.Placemarks
	act := actual.Document.Placemarks
	if len(exp) != len(act) {
		p.errorf("placemark count: expected %d, got %d", len(exp), len(act))
		return p
	}

	for i := range exp {
		if exp[i].Name != act[i].Name {
			p.errorf("placemark %d name: expected %q, got %q", i, exp[i].Name, act[i].Name)
		}
		if exp[i].StyleURL != act[i].StyleURL {
			p.errorf("placemark %d styleUrl: expected %q, got %q", i, exp[i].StyleURL, act[i].StyleURL)
		}
		if exp[i].Point.Coordinates != act[i].Point.Coordinates {
			p.errorf("placemark %d coordinates: expected %q, got %q", i, exp[i].Point.Coordinates, act[i].Point.Coordinates)
		}
		checkExtendedData(p, i, exp[i].ExtendedData, act[i].ExtendedData)
	}

	return p
}

func checkExtendedData(p *phase, idx int, exp, act kml.ExtendedData) {
	if len(exp.Data) != len(act.Data) {
		p.errorf("placemark %d extended data count: expected %d, got %d", idx, len(exp.Data), len(act.Data))
		return
	}
	for j := range exp.Data {
		if exp.Data[j] != act.Data[j] {
			p.errorf("placemark %d data %q: expected %q, got %q",
				idx, exp.Data[j].Name, exp.Data[j].Value, act.Data[j].Value)
		}
	}
}
