// Copyright (c) 2025 Terrascript Authors
// Licensed under the MIT License

// Package export provides functions for writing feature collections to the
// standard text encodings: GeoJSON, KML, GPX, GeoRSS, GML and CSV.
package export

import (
	"fmt"
	"strings"

	"github.com/terrascript/terrascript/pkg/feature"
)

// featureName extracts a suitable display name from a feature's attributes.
func featureName(f *feature.Feature) string {
	for _, key := range []string{"name", "Name", "NAME", "title", "Title", "TITLE", "id", "ID", "fid", "FID"} {
		if f.Has(key) {
			if val := f.Get(key); val != nil {
				return fmt.Sprintf("%v", val)
			}
		}
	}
	if f.ID() != "" {
		return f.ID()
	}
	return "Feature"
}

// formatProperties formats attributes into a display string.
func formatProperties(f *feature.Feature, separator ...string) string {
	sep := "<br>"
	if len(separator) > 0 {
		sep = separator[0]
	}
	var parts []string
	for _, k := range f.Keys() {
		v := f.Get(k)
		parts = append(parts, fmt.Sprintf("<strong>%s</strong>: %v", escapeXML(k), escapeXML(fmt.Sprintf("%v", v))))
	}
	return strings.Join(parts, sep)
}

// escapeXML escapes XML special characters in a string.
func escapeXML(s string) string {
	return strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	).Replace(s)
}
