// Copyright (c) 2025 Terrascript Authors
// Licensed under the MIT License

package filter

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

var ErrUnsupportedXML = errors.New("unsupported ogc:Filter element")

const (
	ogcNamespace = "http://www.opengis.net/ogc"
	gmlNamespace = "http://www.opengis.net/gml"
)

// XML renders the filter as an OGC Filter 1.1 document.
func (f *Filter) XML() ([]byte, error) {
	if f == nil || f.root == nil {
		return nil, ErrEmptyFilter
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf(`<ogc:Filter xmlns:ogc=%q xmlns:gml=%q>`, ogcNamespace, gmlNamespace))
	if err := writeNode(&b, f.root); err != nil {
		return nil, err
	}
	b.WriteString(`</ogc:Filter>`)
	return []byte(b.String()), nil
}

func writeNode(b *strings.Builder, n node) error {
	switch v := n.(type) {
	case constantNode:
		// INCLUDE/EXCLUDE have no OGC encoding; render the equivalent
		// tautology on a property-free comparison.
		op := "PropertyIsEqualTo"
		if !v.include {
			op = "PropertyIsNotEqualTo"
		}
		b.WriteString(fmt.Sprintf("<ogc:%s><ogc:Literal>1</ogc:Literal><ogc:Literal>1</ogc:Literal></ogc:%s>", op, op))
	case logicNode:
		name := "And"
		if v.op == "OR" {
			name = "Or"
		}
		b.WriteString("<ogc:" + name + ">")
		for _, c := range v.children {
			if err := writeNode(b, c); err != nil {
				return err
			}
		}
		b.WriteString("</ogc:" + name + ">")
	case notNode:
		b.WriteString("<ogc:Not>")
		if err := writeNode(b, v.child); err != nil {
			return err
		}
		b.WriteString("</ogc:Not>")
	case compareNode:
		name := compareElement(v.op)
		b.WriteString("<ogc:" + name + ">")
		writeProperty(b, v.prop)
		writeLiteral(b, v.lit)
		b.WriteString("</ogc:" + name + ">")
	case likeNode:
		b.WriteString(`<ogc:PropertyIsLike wildCard="%" singleChar="_" escapeChar="\">`)
		writeProperty(b, v.prop)
		b.WriteString("<ogc:Literal>" + escapeXML(v.pattern) + "</ogc:Literal>")
		b.WriteString("</ogc:PropertyIsLike>")
	case nullNode:
		if v.negate {
			b.WriteString("<ogc:Not>")
		}
		b.WriteString("<ogc:PropertyIsNull>")
		writeProperty(b, v.prop)
		b.WriteString("</ogc:PropertyIsNull>")
		if v.negate {
			b.WriteString("</ogc:Not>")
		}
	case betweenNode:
		b.WriteString("<ogc:PropertyIsBetween>")
		writeProperty(b, v.prop)
		b.WriteString("<ogc:LowerBoundary>")
		writeLiteral(b, v.lo)
		b.WriteString("</ogc:LowerBoundary><ogc:UpperBoundary>")
		writeLiteral(b, v.hi)
		b.WriteString("</ogc:UpperBoundary></ogc:PropertyIsBetween>")
	case inNode:
		// OGC has no IN; expand to an Or of equalities.
		expanded := make([]node, len(v.values))
		for i, lit := range v.values {
			expanded[i] = compareNode{prop: v.prop, op: "=", lit: lit}
		}
		var inner node = logicNode{op: "OR", children: expanded}
		if len(expanded) == 1 {
			inner = expanded[0]
		}
		if v.negate {
			inner = notNode{child: inner}
		}
		return writeNode(b, inner)
	case spatialNode:
		writeSpatial(b, v)
	default:
		return errors.Wrapf(ErrUnsupportedXML, "cannot encode %T", n)
	}
	return nil
}

func compareElement(op string) string {
	switch op {
	case "=":
		return "PropertyIsEqualTo"
	case "<>":
		return "PropertyIsNotEqualTo"
	case "<":
		return "PropertyIsLessThan"
	case "<=":
		return "PropertyIsLessThanOrEqualTo"
	case ">":
		return "PropertyIsGreaterThan"
	case ">=":
		return "PropertyIsGreaterThanOrEqualTo"
	}
	return "PropertyIsEqualTo"
}

func writeProperty(b *strings.Builder, prop string) {
	b.WriteString("<ogc:PropertyName>" + escapeXML(prop) + "</ogc:PropertyName>")
}

func writeLiteral(b *strings.Builder, lit literal) {
	if lit.isNum {
		b.WriteString("<ogc:Literal>" + formatNum(lit.num) + "</ogc:Literal>")
		return
	}
	b.WriteString("<ogc:Literal>" + escapeXML(lit.text) + "</ogc:Literal>")
}

func writeSpatial(b *strings.Builder, n spatialNode) {
	switch n.kind {
	case "BBOX":
		bound := n.geom.Bound()
		b.WriteString("<ogc:BBOX>")
		writeProperty(b, n.prop)
		b.WriteString(fmt.Sprintf("<gml:Envelope><gml:lowerCorner>%s %s</gml:lowerCorner><gml:upperCorner>%s %s</gml:upperCorner></gml:Envelope>",
			formatNum(bound.Min[0]), formatNum(bound.Min[1]), formatNum(bound.Max[0]), formatNum(bound.Max[1])))
		b.WriteString("</ogc:BBOX>")
	default:
		name := "Intersects"
		if n.kind == "CONTAINS" {
			name = "Contains"
		}
		b.WriteString("<ogc:" + name + ">")
		writeProperty(b, n.prop)
		writeGML(b, n.geom)
		b.WriteString("</ogc:" + name + ">")
	}
}

// writeGML emits the minimal gml:3 geometry inside a spatial operator.
func writeGML(b *strings.Builder, g orb.Geometry) {
	switch v := g.(type) {
	case orb.Point:
		b.WriteString(fmt.Sprintf("<gml:Point><gml:pos>%s %s</gml:pos></gml:Point>",
			formatNum(v[0]), formatNum(v[1])))
	case orb.LineString:
		b.WriteString("<gml:LineString><gml:posList>" + posList(v) + "</gml:posList></gml:LineString>")
	case orb.Polygon:
		b.WriteString("<gml:Polygon><gml:exterior><gml:LinearRing><gml:posList>")
		if len(v) > 0 {
			b.WriteString(posList(orb.LineString(v[0])))
		}
		b.WriteString("</gml:posList></gml:LinearRing></gml:exterior>")
		for _, ring := range v[1:] {
			b.WriteString("<gml:interior><gml:LinearRing><gml:posList>" +
				posList(orb.LineString(ring)) + "</gml:posList></gml:LinearRing></gml:interior>")
		}
		b.WriteString("</gml:Polygon>")
	default:
		bound := g.Bound()
		b.WriteString(fmt.Sprintf("<gml:Envelope><gml:lowerCorner>%s %s</gml:lowerCorner><gml:upperCorner>%s %s</gml:upperCorner></gml:Envelope>",
			formatNum(bound.Min[0]), formatNum(bound.Min[1]), formatNum(bound.Max[0]), formatNum(bound.Max[1])))
	}
}

func posList(ls orb.LineString) string {
	parts := make([]string, len(ls))
	for i, p := range ls {
		parts[i] = formatNum(p[0]) + " " + formatNum(p[1])
	}
	return strings.Join(parts, " ")
}

func escapeXML(s string) string {
	return strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	).Replace(s)
}

// ParseXML decodes the attribute-predicate subset of an OGC Filter 1.1
// document. Spatial operators are not decoded.
func ParseXML(data []byte) (*Filter, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFilter
	}
	dec := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse filter XML")
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "Filter" {
			return nil, errors.Wrapf(ErrUnsupportedXML, "expected Filter root, got %s", start.Name.Local)
		}
		n, err := decodeOne(dec)
		if err != nil {
			return nil, err
		}
		return &Filter{root: n}, nil
	}
}

// decodeOne reads the next predicate element and its subtree.
func decodeOne(dec *xml.Decoder) (node, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse filter XML")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return decodeElement(dec, t)
		case xml.EndElement:
			return nil, errors.Wrap(ErrUnsupportedXML, "empty predicate body")
		}
	}
}

func decodeElement(dec *xml.Decoder, start xml.StartElement) (node, error) {
	switch start.Name.Local {
	case "And", "Or":
		op := "AND"
		if start.Name.Local == "Or" {
			op = "OR"
		}
		var children []node
		for {
			tok, err := dec.Token()
			if err != nil {
				return nil, errors.Wrap(err, "failed to parse filter XML")
			}
			if end, ok := tok.(xml.EndElement); ok && end.Name.Local == start.Name.Local {
				break
			}
			if s, ok := tok.(xml.StartElement); ok {
				child, err := decodeElement(dec, s)
				if err != nil {
					return nil, err
				}
				children = append(children, child)
			}
		}
		if len(children) < 2 {
			return nil, errors.Wrapf(ErrUnsupportedXML, "%s needs two or more children", start.Name.Local)
		}
		return logicNode{op: op, children: children}, nil

	case "Not":
		child, err := decodeOne(dec)
		if err != nil {
			return nil, err
		}
		if err := skipToEnd(dec, start.Name.Local); err != nil {
			return nil, err
		}
		return notNode{child: child}, nil

	case "PropertyIsEqualTo", "PropertyIsNotEqualTo", "PropertyIsLessThan",
		"PropertyIsLessThanOrEqualTo", "PropertyIsGreaterThan", "PropertyIsGreaterThanOrEqualTo":
		prop, lits, err := decodeParts(dec, start.Name.Local)
		if err != nil {
			return nil, err
		}
		if len(lits) != 1 {
			return nil, errors.Wrapf(ErrUnsupportedXML, "%s needs one literal", start.Name.Local)
		}
		return compareNode{prop: prop, op: xmlCompareOp(start.Name.Local), lit: lits[0]}, nil

	case "PropertyIsLike":
		prop, lits, err := decodeParts(dec, start.Name.Local)
		if err != nil {
			return nil, err
		}
		if len(lits) != 1 {
			return nil, errors.Wrap(ErrUnsupportedXML, "PropertyIsLike needs one literal")
		}
		return likeNode{prop: prop, pattern: lits[0].text}, nil

	case "PropertyIsNull":
		prop, _, err := decodeParts(dec, start.Name.Local)
		if err != nil {
			return nil, err
		}
		return nullNode{prop: prop}, nil

	case "PropertyIsBetween":
		prop, lits, err := decodeParts(dec, start.Name.Local)
		if err != nil {
			return nil, err
		}
		if len(lits) != 2 {
			return nil, errors.Wrap(ErrUnsupportedXML, "PropertyIsBetween needs boundaries")
		}
		return betweenNode{prop: prop, lo: lits[0], hi: lits[1]}, nil
	}

	return nil, errors.Wrapf(ErrUnsupportedXML, "element %s", start.Name.Local)
}

// decodeParts collects PropertyName and Literal children of a predicate
// element, tolerating the boundary wrappers of PropertyIsBetween.
func decodeParts(dec *xml.Decoder, outer string) (string, []literal, error) {
	prop := ""
	var lits []literal
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", nil, errors.Wrap(err, "failed to parse filter XML")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "PropertyName":
				text, err := textOf(dec, t.Name.Local)
				if err != nil {
					return "", nil, err
				}
				prop = text
			case "Literal":
				text, err := textOf(dec, t.Name.Local)
				if err != nil {
					return "", nil, err
				}
				lits = append(lits, textLiteral(text))
			case "LowerBoundary", "UpperBoundary":
				// boundary wrapper, keep walking; its Literal child is
				// picked up on the next pass
			default:
				return "", nil, errors.Wrapf(ErrUnsupportedXML, "element %s inside %s", t.Name.Local, outer)
			}
		case xml.EndElement:
			if t.Name.Local == outer {
				return prop, lits, nil
			}
		}
	}
}

func textOf(dec *xml.Decoder, name string) (string, error) {
	var b strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", errors.Wrap(err, "failed to parse filter XML")
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.EndElement:
			if t.Name.Local == name {
				return b.String(), nil
			}
		}
	}
}

func skipToEnd(dec *xml.Decoder, name string) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return errors.Wrap(err, "failed to parse filter XML")
		}
		if end, ok := tok.(xml.EndElement); ok && end.Name.Local == name {
			return nil
		}
	}
}

// textLiteral types an XML literal: numeric when it parses as a number.
func textLiteral(text string) literal {
	if n, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
		return numLiteral(n)
	}
	return strLiteral(text)
}

func xmlCompareOp(element string) string {
	switch element {
	case "PropertyIsEqualTo":
		return "="
	case "PropertyIsNotEqualTo":
		return "<>"
	case "PropertyIsLessThan":
		return "<"
	case "PropertyIsLessThanOrEqualTo":
		return "<="
	case "PropertyIsGreaterThan":
		return ">"
	case "PropertyIsGreaterThanOrEqualTo":
		return ">="
	}
	return "="
}
