package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrascript/terrascript/pkg/color"
	"github.com/terrascript/terrascript/pkg/filter"
)

func TestSimpleStrokeSLD(t *testing.T) {
	s := Simple("roads", NewStroke(color.New(255, 0, 0), 2))

	data, err := s.SLD()
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `<StyledLayerDescriptor version="1.0.0"`)
	assert.Contains(t, out, "<NamedLayer><Name>roads</Name>")
	assert.Contains(t, out, "<LineSymbolizer>")
	assert.Contains(t, out, `<CssParameter name="stroke">#ff0000</CssParameter>`)
	assert.Contains(t, out, `<CssParameter name="stroke-width">2</CssParameter>`)
	assert.NotContains(t, out, "stroke-opacity", "full opacity is the default and stays implicit")
}

func TestFillSLD(t *testing.T) {
	s := Simple("parcels", Fill{Color: color.New(0, 128, 0), Opacity: 0.5})

	data, err := s.SLD()
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "<PolygonSymbolizer>")
	assert.Contains(t, out, `<CssParameter name="fill">#008000</CssParameter>`)
	assert.Contains(t, out, `<CssParameter name="fill-opacity">0.5</CssParameter>`)
}

func TestMarkSLD(t *testing.T) {
	fill := NewFill(color.New(0, 0, 255))
	s := Simple("wells", Mark{Shape: "triangle", Size: 8, Fill: &fill})

	data, err := s.SLD()
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "<PointSymbolizer><Graphic><Mark>")
	assert.Contains(t, out, "<WellKnownName>triangle</WellKnownName>")
	assert.Contains(t, out, "<Size>8</Size>")
}

func TestMarkDefaultsToCircle(t *testing.T) {
	data, err := Simple("pts", Mark{}).SLD()
	require.NoError(t, err)
	assert.Contains(t, string(data), "<WellKnownName>circle</WellKnownName>")
}

func TestLabelSLD(t *testing.T) {
	s := Simple("towns", Label{Property: "name", Font: "Arial", Size: 12, Color: color.New(0, 0, 0)})

	data, err := s.SLD()
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "<TextSymbolizer>")
	assert.Contains(t, out, "<Label><ogc:PropertyName>name</ogc:PropertyName></Label>")
	assert.Contains(t, out, `<CssParameter name="font-family">Arial</CssParameter>`)
	assert.Contains(t, out, `<CssParameter name="font-size">12</CssParameter>`)
}

func TestRuleFilterAndScales(t *testing.T) {
	s := NewStyle("roads",
		Rule{
			Name:        "major",
			Title:       "Major roads",
			MinScale:    1000,
			MaxScale:    500000,
			Where:       filter.MustParse("lanes > 2"),
			Symbolizers: []Symbolizer{NewStroke(color.New(0, 0, 0), 3)},
		},
		Rule{
			Name:        "minor",
			Symbolizers: []Symbolizer{NewStroke(color.New(128, 128, 128), 1)},
		},
	)

	data, err := s.SLD()
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "<Title>Major roads</Title>")
	assert.Contains(t, out, "<MinScaleDenominator>1000</MinScaleDenominator>")
	assert.Contains(t, out, "<MaxScaleDenominator>500000</MaxScaleDenominator>")
	assert.Contains(t, out, "<ogc:PropertyIsGreaterThan>")
	assert.Contains(t, out, "<ogc:PropertyName>lanes</ogc:PropertyName>")
	assert.Equal(t, 2, strings.Count(out, "<Rule>"))
}
