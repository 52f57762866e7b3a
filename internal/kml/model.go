// Package kml builds and serializes the KML 2.2 document that maps one
// placemark per resolved alert. The document layout is fixed: shared severity
// styles and one balloon template first, then placemarks in feed order.
package kml

import "encoding/xml"

// KML is the document root, marshaled with the KML 2.2 default namespace.
type KML struct {
	XMLName  xml.Name `xml:"http://www.opengis.net/kml/2.2 kml"`
	Document Document `xml:"Document"`
}

// Document holds the shared styles followed by the placemarks. Field order
// here is serialization order.
type Document struct {
	Name       string      `xml:"name"`
	Styles     []Style     `xml:"Style"`
	Placemarks []Placemark `xml:"Placemark"`
}

// Style is used both for document-level shared styles (with an id) and for
// the inline per-placemark style whose empty BalloonStyle opts the placemark
// into the shared balloon template.
type Style struct {
	ID           string        `xml:"id,attr,omitempty"`
	IconStyle    *IconStyle    `xml:"IconStyle,omitempty"`
	LabelStyle   *LabelStyle   `xml:"LabelStyle,omitempty"`
	BalloonStyle *BalloonStyle `xml:"BalloonStyle,omitempty"`
}

type IconStyle struct {
	Scale string `xml:"scale"`
	Icon  Icon   `xml:"Icon"`
}

type Icon struct {
	Href string `xml:"href"`
}

type LabelStyle struct {
	Scale string `xml:"scale"`
}

// BalloonStyle carries the HTML balloon template. The template text is
// emitted as CDATA so its markup reaches the renderer unescaped; a nil Text
// yields the bare <BalloonStyle></BalloonStyle> presence marker.
type BalloonStyle struct {
	Text *BalloonText `xml:"text,omitempty"`
}

type BalloonText struct {
	Value string `xml:",cdata"`
}

// Placemark is one alert marker.
type Placemark struct {
	Name         string       `xml:"name"`
	StyleURL     string       `xml:"styleUrl"`
	Style        *Style       `xml:"Style,omitempty"`
	Snippet      string       `xml:"Snippet"`
	ExtendedData ExtendedData `xml:"ExtendedData"`
	Point        Point        `xml:"Point"`
}

type ExtendedData struct {
	Data []Data `xml:"Data"`
}

// Data is one named extended-data value. Values are always emitted, empty or
// not, so the balloon template's placeholders never dangle.
type Data struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value"`
}

// Point holds the coordinate string "lon,lat,0" — KML wants longitude first
// and a literal zero altitude.
type Point struct {
	Coordinates string `xml:"coordinates"`
}
