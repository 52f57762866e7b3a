package kml

import (
	"encoding/xml"
	"fmt"
	"os"
)

// Marshal serializes the document with an XML declaration and single-space
// indentation.
func Marshal(doc *KML) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", " ")
	if err != nil {
		return nil, fmt.Errorf("marshal kml: %w", err)
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

// FileWriter writes serialized documents to disk.
// It implements pipeline.DocumentWriter.
type FileWriter struct{}

// Write serializes the document and writes it to path in one shot. The
// parent directory must already exist.
func (FileWriter) Write(path string, doc *KML) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write kml: %w", err)
	}
	return nil
}
