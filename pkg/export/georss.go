package export

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"

	"github.com/terrascript/terrascript/pkg/feature"
)

// ToGeoRSS renders a collection as an Atom feed with GeoRSS-Simple
// geometry elements, one entry per feature. GeoRSS-Simple encodes
// coordinates lat-first.
func ToGeoRSS(c *feature.Collection, feedTitle string) (string, error) {
	var entries strings.Builder
	for _, f := range c.Features {
		if f.Geometry() == nil {
			continue
		}
		geo := georssGeometry(f.Geometry())
		if geo == "" {
			continue
		}

		entries.WriteString(fmt.Sprintf(`
    <entry>
        <title>%s</title>
        <summary>%s</summary>
        %s
    </entry>`, escapeXML(featureName(f)), escapeXML(formatProperties(f, ", ")), geo))
	}

	feed := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:georss="http://www.georss.org/georss">
    <title>%s</title>%s
</feed>`, escapeXML(feedTitle), entries.String())

	return feed, nil
}

func georssGeometry(g orb.Geometry) string {
	switch v := g.(type) {
	case orb.Point:
		return fmt.Sprintf("<georss:point>%.10f %.10f</georss:point>", v[1], v[0])
	case orb.LineString:
		return fmt.Sprintf("<georss:line>%s</georss:line>", latLonPairs(v))
	case orb.Polygon:
		if len(v) == 0 {
			return ""
		}
		// GeoRSS-Simple polygons carry the exterior ring only.
		return fmt.Sprintf("<georss:polygon>%s</georss:polygon>", latLonPairs(orb.LineString(v[0])))
	case orb.MultiPoint:
		if len(v) == 0 {
			return ""
		}
		return georssGeometry(v[0])
	case orb.MultiLineString:
		if len(v) == 0 {
			return ""
		}
		return georssGeometry(v[0])
	case orb.MultiPolygon:
		if len(v) == 0 {
			return ""
		}
		return georssGeometry(v[0])
	default:
		return ""
	}
}

func latLonPairs(ls orb.LineString) string {
	parts := make([]string, len(ls))
	for i, p := range ls {
		parts[i] = fmt.Sprintf("%.10f %.10f", p[1], p[0])
	}
	return strings.Join(parts, " ")
}
