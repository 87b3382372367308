package export

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"

	"github.com/terrascript/terrascript/pkg/feature"
)

// ToKML renders a collection as a KML document with one Placemark per
// feature. Features without a usable geometry are skipped.
func ToKML(c *feature.Collection, layerName string) (string, error) {
	var placemarks strings.Builder
	for _, f := range c.Features {
		if f.Geometry() == nil {
			continue
		}

		name := featureName(f)
		description := formatProperties(f)
		geometryString := kmlGeometry(f.Geometry())
		if geometryString == "" {
			continue
		}

		placemarks.WriteString(fmt.Sprintf(`
        <Placemark>
            <name>%s</name>
            <description><![CDATA[%s]]></description>
            %s
        </Placemark>`, escapeXML(name), description, geometryString))
	}

	kml := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
    <Document>
        <name>%s</name>%s
    </Document>
</kml>`, escapeXML(layerName), placemarks.String())

	return kml, nil
}

func kmlGeometry(g orb.Geometry) string {
	switch v := g.(type) {
	case orb.Point:
		return fmt.Sprintf("<Point><coordinates>%.10f,%.10f,0</coordinates></Point>", v[0], v[1])
	case orb.LineString:
		return fmt.Sprintf("<LineString><coordinates>%s</coordinates></LineString>", kmlCoords(v))
	case orb.Polygon:
		if len(v) == 0 {
			return ""
		}
		var outerBoundary, innerBoundaries strings.Builder
		outerBoundary.WriteString(fmt.Sprintf("<outerBoundaryIs><LinearRing><coordinates>%s</coordinates></LinearRing></outerBoundaryIs>", kmlCoords(orb.LineString(v[0]))))
		for _, inner := range v[1:] {
			innerBoundaries.WriteString(fmt.Sprintf("<innerBoundaryIs><LinearRing><coordinates>%s</coordinates></LinearRing></innerBoundaryIs>", kmlCoords(orb.LineString(inner))))
		}
		return fmt.Sprintf("<Polygon>%s%s</Polygon>", outerBoundary.String(), innerBoundaries.String())
	case orb.MultiPoint:
		parts := make([]orb.Geometry, len(v))
		for i, p := range v {
			parts[i] = p
		}
		return kmlMulti(parts)
	case orb.MultiLineString:
		parts := make([]orb.Geometry, len(v))
		for i, ls := range v {
			parts[i] = ls
		}
		return kmlMulti(parts)
	case orb.MultiPolygon:
		parts := make([]orb.Geometry, len(v))
		for i, p := range v {
			parts[i] = p
		}
		return kmlMulti(parts)
	default:
		return ""
	}
}

func kmlMulti(parts []orb.Geometry) string {
	var b strings.Builder
	b.WriteString("<MultiGeometry>")
	for _, g := range parts {
		b.WriteString(kmlGeometry(g))
	}
	b.WriteString("</MultiGeometry>")
	return b.String()
}

func kmlCoords(ls orb.LineString) string {
	coordStr := make([]string, len(ls))
	for i, c := range ls {
		coordStr[i] = fmt.Sprintf("%.10f,%.10f,0", c[0], c[1])
	}
	return strings.Join(coordStr, " ")
}
