// Copyright (c) 2025 Terrascript Authors
// Licensed under the MIT License

package export

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"

	"github.com/terrascript/terrascript/pkg/feature"
)

// ToGPX renders a collection as a GPX 1.1 document. The function handles:
//   - Point geometries as waypoints
//   - LineString geometries as tracks
//   - Polygon geometries as track boundaries
//
// Parameters:
//   - c: Collection of features to render
//   - layerName: Name of the layer to be used in the GPX metadata
//
// Returns:
//   - string: GPX document as a string
//   - error: Any error that occurred during conversion
func ToGPX(c *feature.Collection, layerName string) (string, error) {
	var waypoints strings.Builder
	var tracks strings.Builder

	for _, f := range c.Features {
		if f.Geometry() == nil {
			continue
		}

		name := featureName(f)
		desc := formatProperties(f, ", ")

		switch v := f.Geometry().(type) {
		case orb.Point:
			waypoints.WriteString(fmt.Sprintf(`
    <wpt lat="%.10f" lon="%.10f">
        <name>%s</name>
        <desc>%s</desc>
    </wpt>`, v[1], v[0], escapeXML(name), escapeXML(desc)))
		case orb.MultiPoint:
			for _, p := range v {
				waypoints.WriteString(fmt.Sprintf(`
    <wpt lat="%.10f" lon="%.10f">
        <name>%s</name>
        <desc>%s</desc>
    </wpt>`, p[1], p[0], escapeXML(name), escapeXML(desc)))
			}
		case orb.LineString:
			writeTrack(&tracks, name, desc, v)
		case orb.MultiLineString:
			for _, ls := range v {
				writeTrack(&tracks, name, desc, ls)
			}
		case orb.Polygon:
			if len(v) > 0 {
				writeTrack(&tracks, name+" (Boundary)", desc, orb.LineString(v[0]))
			}
		case orb.MultiPolygon:
			for _, p := range v {
				if len(p) > 0 {
					writeTrack(&tracks, name+" (Boundary)", desc, orb.LineString(p[0]))
				}
			}
		}
	}

	gpxContent := waypoints.String() + tracks.String()

	gpx := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="terrascript"
    xmlns="http://www.topografix.com/GPX/1/1"
    xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
    xsi:schemaLocation="http://www.topografix.com/GPX/1/1 http://www.topografix.com/GPX/1/1/gpx.xsd">
    <metadata>
        <name>%s</name>
    </metadata>%s
</gpx>`, escapeXML(layerName), gpxContent)

	return gpx, nil
}

func writeTrack(tracks *strings.Builder, name, desc string, ls orb.LineString) {
	tracks.WriteString(fmt.Sprintf(`
    <trk>
        <name>%s</name>
        <desc>%s</desc>
        <trkseg>`, escapeXML(name), escapeXML(desc)))
	for _, c := range ls {
		tracks.WriteString(fmt.Sprintf(`<trkpt lat="%.10f" lon="%.10f"></trkpt>`, c[1], c[0]))
	}
	tracks.WriteString(`
        </trkseg>
    </trk>`)
}
