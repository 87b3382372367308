package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	sldNamespace = "http://www.opengis.net/sld"
	ogcNamespace = "http://www.opengis.net/ogc"
)

// SLD renders the style as a StyledLayerDescriptor 1.0 document.
func (s *Style) SLD() ([]byte, error) {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(fmt.Sprintf(`<StyledLayerDescriptor version="1.0.0" xmlns=%q xmlns:ogc=%q>`, sldNamespace, ogcNamespace))
	b.WriteString("<NamedLayer><Name>" + escapeXML(s.Name) + "</Name>")
	b.WriteString("<UserStyle><Name>" + escapeXML(s.Name) + "</Name><FeatureTypeStyle>")

	for _, r := range s.Rules {
		if err := writeRule(&b, r); err != nil {
			return nil, err
		}
	}

	b.WriteString("</FeatureTypeStyle></UserStyle></NamedLayer></StyledLayerDescriptor>")
	return []byte(b.String()), nil
}

func writeRule(b *strings.Builder, r Rule) error {
	b.WriteString("<Rule>")
	if r.Name != "" {
		b.WriteString("<Name>" + escapeXML(r.Name) + "</Name>")
	}
	if r.Title != "" {
		b.WriteString("<Title>" + escapeXML(r.Title) + "</Title>")
	}
	if r.Where != nil {
		xml, err := r.Where.XML()
		if err != nil {
			return errors.Wrapf(err, "rule %q filter", r.Name)
		}
		b.Write(xml)
	}
	if r.MinScale > 0 {
		b.WriteString("<MinScaleDenominator>" + num(r.MinScale) + "</MinScaleDenominator>")
	}
	if r.MaxScale > 0 {
		b.WriteString("<MaxScaleDenominator>" + num(r.MaxScale) + "</MaxScaleDenominator>")
	}

	for _, sym := range r.Symbolizers {
		writeSymbolizer(b, sym)
	}
	b.WriteString("</Rule>")
	return nil
}

func writeSymbolizer(b *strings.Builder, sym Symbolizer) {
	switch v := sym.(type) {
	case Stroke:
		b.WriteString("<LineSymbolizer>")
		writeStroke(b, v)
		b.WriteString("</LineSymbolizer>")
	case Fill:
		b.WriteString("<PolygonSymbolizer>")
		writeFill(b, v)
		b.WriteString("</PolygonSymbolizer>")
	case Mark:
		b.WriteString("<PointSymbolizer><Graphic><Mark>")
		shape := v.Shape
		if shape == "" {
			shape = "circle"
		}
		b.WriteString("<WellKnownName>" + escapeXML(shape) + "</WellKnownName>")
		if v.Fill != nil {
			writeFill(b, *v.Fill)
		}
		if v.Stroke != nil {
			writeStroke(b, *v.Stroke)
		}
		b.WriteString("</Mark>")
		if v.Size > 0 {
			b.WriteString("<Size>" + num(v.Size) + "</Size>")
		}
		b.WriteString("</Graphic></PointSymbolizer>")
	case Label:
		b.WriteString("<TextSymbolizer>")
		b.WriteString("<Label><ogc:PropertyName>" + escapeXML(v.Property) + "</ogc:PropertyName></Label>")
		if v.Font != "" || v.Size > 0 {
			b.WriteString("<Font>")
			if v.Font != "" {
				b.WriteString(cssParam("font-family", v.Font))
			}
			if v.Size > 0 {
				b.WriteString(cssParam("font-size", num(v.Size)))
			}
			b.WriteString("</Font>")
		}
		b.WriteString("<Fill>" + cssParam("fill", v.Color.Hex()) + "</Fill>")
		b.WriteString("</TextSymbolizer>")
	}
}

func writeStroke(b *strings.Builder, s Stroke) {
	b.WriteString("<Stroke>")
	b.WriteString(cssParam("stroke", s.Color.Hex()))
	if s.Width > 0 {
		b.WriteString(cssParam("stroke-width", num(s.Width)))
	}
	if s.Opacity > 0 && s.Opacity < 1 {
		b.WriteString(cssParam("stroke-opacity", num(s.Opacity)))
	}
	b.WriteString("</Stroke>")
}

func writeFill(b *strings.Builder, f Fill) {
	b.WriteString("<Fill>")
	b.WriteString(cssParam("fill", f.Color.Hex()))
	if f.Opacity > 0 && f.Opacity < 1 {
		b.WriteString(cssParam("fill-opacity", num(f.Opacity)))
	}
	b.WriteString("</Fill>")
}

func cssParam(name, value string) string {
	return fmt.Sprintf("<CssParameter name=%q>%s</CssParameter>", name, escapeXML(value))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
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
