package kml

import (
	"fmt"
	"strings"

	"github.com/capwatch/alertmap/internal/domain"
)

// DocumentName is the fixed document-level title.
const DocumentName = "NOAA Active Alerts (Points)"

// Google-hosted paddle icons, one color per severity tier.
const (
	iconRed    = "http://maps.google.com/mapfiles/kml/paddle/red-circle.png"
	iconYellow = "http://maps.google.com/mapfiles/kml/paddle/ylw-circle.png"
	iconGreen  = "http://maps.google.com/mapfiles/kml/paddle/grn-circle.png"
	iconWhite  = "http://maps.google.com/mapfiles/kml/paddle/wht-circle.png"
)

// severityIcons assigns each CAP severity its marker icon, in document
// emission order. Extreme and Severe intentionally share the red icon: both
// warrant the highest-alert visual.
var severityIcons = []struct {
	severity string
	icon     string
}{
	{domain.SeverityExtreme, iconRed},
	{domain.SeveritySevere, iconRed},
	{domain.SeverityModerate, iconYellow},
	{domain.SeverityMinor, iconGreen},
	{domain.SeverityUnknown, iconWhite},
}

// balloonTemplate is the shared balloon body. The $[name] and $[ext_*]
// placeholders are substituted by the KML renderer from each placemark's
// name and extended data; the builder never fills them in.
const balloonTemplate = "<div style='font-family:Arial, sans-serif;'>" +
	"<h3>$[name]</h3>" +
	"<p><b>Event:</b> $[ext_event]</p>" +
	"<p><b>Severity:</b> $[ext_severity] &nbsp; <b>Urgency:</b> $[ext_urgency] &nbsp; <b>Certainty:</b> $[ext_certainty]</p>" +
	"<p><b>Effective:</b> $[ext_effective]<br/>" +
	"<b>Expires:</b> $[ext_expires]</p>" +
	"<p><b>Areas:</b> $[ext_areaDesc]</p>" +
	"<p><b>Description</b><br/>$[ext_description]</p>" +
	"<p><b>Instruction</b><br/>$[ext_instruction]</p>" +
	"<p><a href='$[ext_id]' target='_blank'>Alert Link</a></p>" +
	"</div>"

// Builder assembles the output document from alert records.
// It implements pipeline.DocumentBuilder.
type Builder struct{}

// Build produces the complete document: fixed title, the five shared
// severity styles, the shared balloon style, then one placemark per record
// in input order.
func (Builder) Build(records []domain.AlertRecord) *KML {
	doc := Document{Name: DocumentName}

	for _, si := range severityIcons {
		doc.Styles = append(doc.Styles, Style{
			ID:         StyleID(si.severity),
			IconStyle:  &IconStyle{Scale: "1.2", Icon: Icon{Href: si.icon}},
			LabelStyle: &LabelStyle{Scale: "0.9"},
		})
	}
	doc.Styles = append(doc.Styles, Style{
		ID:           "balloon",
		BalloonStyle: &BalloonStyle{Text: &BalloonText{Value: balloonTemplate}},
	})

	doc.Placemarks = make([]Placemark, 0, len(records))
	for _, rec := range records {
		doc.Placemarks = append(doc.Placemarks, placemark(rec))
	}

	return &KML{Document: doc}
}

func placemark(rec domain.AlertRecord) Placemark {
	name := rec.Title
	if name == "" {
		name = rec.Event
	}
	if name == "" {
		name = "Alert"
	}

	snippet := rec.Headline
	if snippet == "" {
		snippet = rec.Summary
	}

	return Placemark{
		Name:     name,
		StyleURL: "#" + StyleID(rec.Severity),
		// An inline style with a bare BalloonStyle makes the renderer apply
		// the shared balloon template to this placemark.
		Style:   &Style{BalloonStyle: &BalloonStyle{}},
		Snippet: snippet,
		ExtendedData: ExtendedData{Data: []Data{
			{Name: "ext_event", Value: rec.Event},
			{Name: "ext_severity", Value: rec.Severity},
			{Name: "ext_urgency", Value: rec.Urgency},
			{Name: "ext_certainty", Value: rec.Certainty},
			{Name: "ext_effective", Value: rec.Effective},
			{Name: "ext_expires", Value: rec.Expires},
			{Name: "ext_areaDesc", Value: rec.AreaDesc},
			{Name: "ext_description", Value: rec.Description},
			{Name: "ext_instruction", Value: rec.Instruction},
			{Name: "ext_id", Value: rec.ID},
		}},
		Point: Point{
			Coordinates: fmt.Sprintf("%g,%g,0", rec.Point.Lon, rec.Point.Lat),
		},
	}
}

// StyleID maps a CAP severity to its shared style id. Absent or
// out-of-vocabulary severities get the unknown style.
func StyleID(severity string) string {
	switch strings.ToLower(severity) {
	case "extreme", "severe", "moderate", "minor":
		return "sev_" + strings.ToLower(severity)
	default:
		return "sev_unknown"
	}
}
