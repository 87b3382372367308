// Copyright (c) 2025 Terrascript Authors
// Licensed under the MIT License

// Package geometry provides convenience constructors and helpers over the
// orb geometry engine. All real geometric work is delegated to orb; this
// package only translates between text encodings and orb types.
package geometry

import (
	"encoding/hex"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"
	"github.com/pkg/errors"
)

var ErrEmptyInput = errors.New("empty geometry input")

// FromWKT parses a WKT string into an orb geometry.
func FromWKT(s string) (orb.Geometry, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyInput
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse WKT %q", truncate(s, 48))
	}
	return g, nil
}

// ToWKT renders a geometry as WKT. Nil geometries render as an empty string.
func ToWKT(g orb.Geometry) string {
	if g == nil {
		return ""
	}
	return wkt.MarshalString(g)
}

// FromWKBHex parses a hex-encoded WKB string into an orb geometry.
func FromWKBHex(s string) (orb.Geometry, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyInput
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode WKB hex")
	}
	g, err := wkb.Unmarshal(raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse WKB")
	}
	return g, nil
}

// ToWKBHex renders a geometry as hex-encoded WKB.
func ToWKBHex(g orb.Geometry) (string, error) {
	if g == nil {
		return "", ErrEmptyInput
	}
	raw, err := wkb.Marshal(g)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode WKB")
	}
	return hex.EncodeToString(raw), nil
}

// FromGeoJSON parses a GeoJSON geometry document.
func FromGeoJSON(data []byte) (orb.Geometry, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse GeoJSON geometry")
	}
	return g.Geometry(), nil
}

// ToGeoJSON renders a geometry as a GeoJSON geometry document.
func ToGeoJSON(g orb.Geometry) ([]byte, error) {
	if g == nil {
		return nil, ErrEmptyInput
	}
	return geojson.NewGeometry(g).MarshalJSON()
}

// Parse sniffs the encoding of a geometry string and decodes it. It accepts
// WKT, GeoJSON geometry documents and hex-encoded WKB.
func Parse(s string) (orb.Geometry, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}
	switch {
	case strings.HasPrefix(trimmed, "{"):
		return FromGeoJSON([]byte(trimmed))
	case strings.HasPrefix(trimmed, "00"), strings.HasPrefix(trimmed, "01"):
		return FromWKBHex(trimmed)
	default:
		return FromWKT(trimmed)
	}
}

// Bounds returns the bounding box of a geometry.
func Bounds(g orb.Geometry) orb.Bound {
	if g == nil {
		return orb.Bound{}
	}
	return g.Bound()
}

// Area returns the planar area of a geometry.
func Area(g orb.Geometry) float64 {
	if g == nil {
		return 0
	}
	return planar.Area(g)
}

// Length returns the planar length of a geometry.
func Length(g orb.Geometry) float64 {
	if g == nil {
		return 0
	}
	return planar.Length(g)
}

// Distance returns the planar distance between two points.
func Distance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// Centroid returns the planar centroid of a geometry.
func Centroid(g orb.Geometry) orb.Point {
	if g == nil {
		return orb.Point{}
	}
	c, _ := planar.CentroidArea(g)
	return c
}

// Simplify returns a Douglas-Peucker simplification of the geometry with the
// given threshold. The input geometry is not modified.
func Simplify(g orb.Geometry, threshold float64) orb.Geometry {
	if g == nil {
		return nil
	}
	return simplify.DouglasPeucker(threshold).Simplify(orb.Clone(g))
}

// Contains reports whether geometry g contains the given point. Polygon and
// multi-polygon containment is exact; everything else falls back to the
// bounding box.
func Contains(g orb.Geometry, p orb.Point) bool {
	switch v := g.(type) {
	case nil:
		return false
	case orb.Point:
		return v.Equal(p)
	case orb.Polygon:
		return planar.PolygonContains(v, p)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(v, p)
	case orb.Bound:
		return v.Contains(p)
	default:
		return g.Bound().Contains(p)
	}
}

// Intersects reports whether the bounding boxes of two geometries overlap.
// Exact intersection tests stay with the wrapped engine.
func Intersects(a, b orb.Geometry) bool {
	if a == nil || b == nil {
		return false
	}
	if pt, ok := b.(orb.Point); ok {
		return Contains(a, pt)
	}
	if pt, ok := a.(orb.Point); ok {
		return Contains(b, pt)
	}
	return a.Bound().Intersects(b.Bound())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
