package export

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"

	"github.com/terrascript/terrascript/pkg/feature"
)

// GML versions supported by ToGML. Version 2 uses gml:coordinates with
// comma-separated pairs; version 3 uses gml:posList.
const (
	GML2 = 2
	GML3 = 3
)

// ToGML renders a collection as a gml:FeatureCollection with one
// featureMember per feature. Attributes become child elements in the
// feature namespace.
func ToGML(c *feature.Collection, layerName string, version int) (string, error) {
	if version != GML2 && version != GML3 {
		version = GML3
	}

	var members strings.Builder
	for i, f := range c.Features {
		geo := gmlGeometry(f.Geometry(), version)
		if geo == "" {
			continue
		}

		fid := f.ID()
		if fid == "" {
			fid = fmt.Sprintf("%s.%d", layerName, i+1)
		}

		members.WriteString(fmt.Sprintf(`
    <gml:featureMember>
        <ts:%s fid="%s">`, escapeXML(layerName), escapeXML(fid)))
		for _, k := range f.Keys() {
			v := f.Get(k)
			members.WriteString(fmt.Sprintf("\n            <ts:%s>%v</ts:%s>",
				escapeXML(k), escapeXML(fmt.Sprintf("%v", v)), escapeXML(k)))
		}
		members.WriteString("\n            <ts:geom>" + geo + "</ts:geom>")
		members.WriteString(fmt.Sprintf(`
        </ts:%s>
    </gml:featureMember>`, escapeXML(layerName)))
	}

	doc := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<gml:FeatureCollection xmlns:gml="http://www.opengis.net/gml" xmlns:ts="http://terrascript.org/feature">
    <gml:name>%s</gml:name>%s
</gml:FeatureCollection>`, escapeXML(layerName), members.String())

	return doc, nil
}

func gmlGeometry(g orb.Geometry, version int) string {
	switch v := g.(type) {
	case nil:
		return ""
	case orb.Point:
		if version == GML2 {
			return fmt.Sprintf("<gml:Point><gml:coordinates>%.10f,%.10f</gml:coordinates></gml:Point>", v[0], v[1])
		}
		return fmt.Sprintf("<gml:Point><gml:pos>%.10f %.10f</gml:pos></gml:Point>", v[0], v[1])
	case orb.LineString:
		if version == GML2 {
			return fmt.Sprintf("<gml:LineString><gml:coordinates>%s</gml:coordinates></gml:LineString>", gmlCoordinates(v))
		}
		return fmt.Sprintf("<gml:LineString><gml:posList>%s</gml:posList></gml:LineString>", gmlPosList(v))
	case orb.Polygon:
		if len(v) == 0 {
			return ""
		}
		var b strings.Builder
		if version == GML2 {
			b.WriteString("<gml:Polygon><gml:outerBoundaryIs><gml:LinearRing><gml:coordinates>")
			b.WriteString(gmlCoordinates(orb.LineString(v[0])))
			b.WriteString("</gml:coordinates></gml:LinearRing></gml:outerBoundaryIs>")
			for _, inner := range v[1:] {
				b.WriteString("<gml:innerBoundaryIs><gml:LinearRing><gml:coordinates>")
				b.WriteString(gmlCoordinates(orb.LineString(inner)))
				b.WriteString("</gml:coordinates></gml:LinearRing></gml:innerBoundaryIs>")
			}
			b.WriteString("</gml:Polygon>")
			return b.String()
		}
		b.WriteString("<gml:Polygon><gml:exterior><gml:LinearRing><gml:posList>")
		b.WriteString(gmlPosList(orb.LineString(v[0])))
		b.WriteString("</gml:posList></gml:LinearRing></gml:exterior>")
		for _, inner := range v[1:] {
			b.WriteString("<gml:interior><gml:LinearRing><gml:posList>")
			b.WriteString(gmlPosList(orb.LineString(inner)))
			b.WriteString("</gml:posList></gml:LinearRing></gml:interior>")
		}
		b.WriteString("</gml:Polygon>")
		return b.String()
	case orb.MultiPoint:
		var b strings.Builder
		b.WriteString("<gml:MultiPoint>")
		for _, p := range v {
			b.WriteString("<gml:pointMember>" + gmlGeometry(p, version) + "</gml:pointMember>")
		}
		b.WriteString("</gml:MultiPoint>")
		return b.String()
	case orb.MultiLineString:
		var b strings.Builder
		b.WriteString("<gml:MultiLineString>")
		for _, ls := range v {
			b.WriteString("<gml:lineStringMember>" + gmlGeometry(ls, version) + "</gml:lineStringMember>")
		}
		b.WriteString("</gml:MultiLineString>")
		return b.String()
	case orb.MultiPolygon:
		var b strings.Builder
		b.WriteString("<gml:MultiPolygon>")
		for _, p := range v {
			b.WriteString("<gml:polygonMember>" + gmlGeometry(p, version) + "</gml:polygonMember>")
		}
		b.WriteString("</gml:MultiPolygon>")
		return b.String()
	default:
		return ""
	}
}

func gmlCoordinates(ls orb.LineString) string {
	parts := make([]string, len(ls))
	for i, p := range ls {
		parts[i] = fmt.Sprintf("%.10f,%.10f", p[0], p[1])
	}
	return strings.Join(parts, " ")
}

func gmlPosList(ls orb.LineString) string {
	parts := make([]string, len(ls))
	for i, p := range ls {
		parts[i] = fmt.Sprintf("%.10f %.10f", p[0], p[1])
	}
	return strings.Join(parts, " ")
}
