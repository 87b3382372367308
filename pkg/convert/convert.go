// Copyright (c) 2025 Terrascript Authors
// Licensed under the MIT License

// Package convert provides functions for converting between different
// geospatial data formats. It is the front door used by the CLI: a reader
// for the formats that can carry a full feature collection and a writer
// dispatching on format name.
package convert

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/terrascript/terrascript/pkg/export"
	"github.com/terrascript/terrascript/pkg/feature"
	"github.com/terrascript/terrascript/pkg/geometry"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

// Read parses an input document in the given format into a collection.
// Only GeoJSON and CSV can be read; the XML encodings are write-only.
func Read(name string, data []byte, format string) (*feature.Collection, error) {
	switch strings.ToLower(format) {
	case FormatGeoJSON:
		return export.FromGeoJSON(name, data)
	case FormatCSV:
		return export.FromCSV(name, string(data))
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "cannot read %q", format)
	}
}

// Write renders a collection in the given format.
func Write(c *feature.Collection, format string) (string, error) {
	switch strings.ToLower(format) {
	case FormatGeoJSON:
		return export.ToGeoJSONIndent(c, "  ")
	case FormatKML:
		return export.ToKML(c, c.Name)
	case FormatGPX:
		return export.ToGPX(c, c.Name)
	case FormatGeoRSS:
		return export.ToGeoRSS(c, c.Name)
	case FormatGML:
		return export.ToGML(c, c.Name, export.GML3)
	case FormatGML2:
		return export.ToGML(c, c.Name, export.GML2)
	case FormatCSV:
		return export.ToCSV(c)
	case FormatText:
		return ToText(c)
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "cannot write %q", format)
	}
}

// Extension returns the conventional file extension for a format.
func Extension(format string) string {
	switch strings.ToLower(format) {
	case FormatGML2:
		return "gml"
	case FormatGeoRSS:
		return "xml"
	case FormatText:
		return "txt"
	default:
		return strings.ToLower(format)
	}
}

// ToText renders a collection as a formatted text report. The output
// includes:
//   - Layer name and feature count
//   - Feature attributes in sorted order
//   - WKT geometry representation
func ToText(c *feature.Collection) (string, error) {
	if c.Len() == 0 {
		return "", errors.New("no features to convert to text")
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("Layer: %s\n", c.Name))
	output.WriteString(fmt.Sprintf("Total Features: %d\n", c.Len()))
	output.WriteString("========================================\n\n")

	for i, f := range c.Features {
		output.WriteString(fmt.Sprintf("--- Feature %d ---\n", i+1))

		// Sort attribute keys for consistent order
		keys := f.Keys()
		sort.Strings(keys)

		output.WriteString("Attributes:\n")
		for _, k := range keys {
			output.WriteString(fmt.Sprintf("  %s: %v\n", k, f.Get(k)))
		}

		output.WriteString("Geometry (WKT):\n")
		wkt := geometry.ToWKT(f.Geometry())
		if wkt == "" {
			output.WriteString("  <No Geometry>\n")
		} else {
			output.WriteString(fmt.Sprintf("  %s\n", wkt))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}
