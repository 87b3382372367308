// Copyright (c) 2025 Terrascript Authors
// Licensed under the MIT License

// Package feature provides the scripting-friendly Feature, Schema and Field
// surface over the orb simple-features model. Features carry a geometry and
// an ordered bag of named attributes; all geometry behavior is delegated to
// the wrapped engine.
package feature

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/terrascript/terrascript/pkg/geometry"
)

// Feature is a geospatial record: a geometry plus named attributes.
type Feature struct {
	id     string
	schema *Schema
	geom   orb.Geometry
	attrs  map[string]interface{}
	order  []string
}

// New creates a feature from an attribute map. Geometry-valued attributes
// are routed to the geometry slot; the remaining attributes keep a stable
// sorted order.
func New(id string, attrs map[string]interface{}) *Feature {
	f := &Feature{
		id:    id,
		attrs: make(map[string]interface{}, len(attrs)),
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		f.Set(k, attrs[k])
	}
	return f
}

// FromGeoJSON parses a single GeoJSON feature document.
func FromGeoJSON(data []byte) (*Feature, error) {
	gf, err := geojson.UnmarshalFeature(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse GeoJSON feature")
	}
	return fromOrb(gf), nil
}

func fromOrb(gf *geojson.Feature) *Feature {
	id := ""
	if gf.ID != nil {
		id = fmt.Sprintf("%v", gf.ID)
	}
	f := New(id, gf.Properties)
	f.geom = gf.Geometry
	return f
}

// ID returns the feature identifier.
func (f *Feature) ID() string {
	return f.id
}

// Geometry returns the feature geometry, which may be nil.
func (f *Feature) Geometry() orb.Geometry {
	return f.geom
}

// SetGeometry replaces the feature geometry.
func (f *Feature) SetGeometry(g orb.Geometry) {
	f.geom = g
}

// Bounds returns the bounding box of the feature geometry.
func (f *Feature) Bounds() orb.Bound {
	return geometry.Bounds(f.geom)
}

// Get returns the named attribute, or nil when it is absent. Asking for
// "geom" or "geometry" returns the geometry slot.
func (f *Feature) Get(name string) interface{} {
	if name == "geom" || name == "geometry" {
		if f.geom == nil {
			return nil
		}
		return f.geom
	}
	return f.attrs[name]
}

// Set assigns an attribute. Geometry values are routed to the geometry slot
// instead of the attribute map.
func (f *Feature) Set(name string, value interface{}) {
	if g, ok := value.(orb.Geometry); ok {
		f.geom = g
		return
	}
	if name == "geom" || name == "geometry" {
		if s, ok := value.(string); ok {
			if g, err := geometry.Parse(s); err == nil {
				f.geom = g
				return
			}
		}
	}
	if _, exists := f.attrs[name]; !exists {
		f.order = append(f.order, name)
	}
	f.attrs[name] = value
}

// Has reports whether the named attribute is set.
func (f *Feature) Has(name string) bool {
	_, ok := f.attrs[name]
	return ok
}

// Delete removes an attribute.
func (f *Feature) Delete(name string) {
	if _, ok := f.attrs[name]; !ok {
		return
	}
	delete(f.attrs, name)
	for i, k := range f.order {
		if k == name {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

// Keys returns attribute names in insertion order.
func (f *Feature) Keys() []string {
	keys := make([]string, len(f.order))
	copy(keys, f.order)
	return keys
}

// Attributes returns a copy of the attribute map.
func (f *Feature) Attributes() map[string]interface{} {
	out := make(map[string]interface{}, len(f.attrs))
	for k, v := range f.attrs {
		out[k] = v
	}
	return out
}

// GetString returns the named attribute rendered as a string, or "" when
// absent.
func (f *Feature) GetString(name string) string {
	v, ok := f.attrs[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// GetFloat returns the named attribute as a float64. Integer and string
// values are coerced; anything else yields 0 and false.
func (f *Feature) GetFloat(name string) (float64, bool) {
	return toFloat(f.attrs[name])
}

// GetInt returns the named attribute coerced to an int.
func (f *Feature) GetInt(name string) (int, bool) {
	v, ok := toFloat(f.attrs[name])
	if !ok {
		return 0, false
	}
	return int(v), true
}

// GetPath resolves a gjson path against the attribute map, for reaching
// into nested property documents (for example "address.city" or
// "tags.0.name").
func (f *Feature) GetPath(path string) interface{} {
	raw, err := json.Marshal(f.attrs)
	if err != nil {
		return nil
	}
	res := gjson.GetBytes(raw, path)
	if !res.Exists() {
		return nil
	}
	return res.Value()
}

// Schema returns the feature schema, inferring one from the attributes on
// first use.
func (f *Feature) Schema() *Schema {
	if f.schema == nil {
		sample := f.Attributes()
		if f.geom != nil {
			sample["geom"] = f.geom
		}
		f.schema = InferSchema("feature", sample)
	}
	return f.schema
}

// SetSchema pins an explicit schema on the feature.
func (f *Feature) SetSchema(s *Schema) {
	f.schema = s
}

// ToGeoJSON renders the feature as a GeoJSON document.
func (f *Feature) ToGeoJSON() ([]byte, error) {
	gf := geojson.NewFeature(f.geom)
	if f.id != "" {
		gf.ID = f.id
	}
	gf.Properties = f.attrs
	return gf.MarshalJSON()
}

// String renders the feature as "id {attrs} wkt" for quick inspection.
func (f *Feature) String() string {
	var b strings.Builder
	if f.id != "" {
		b.WriteString(f.id)
		b.WriteString(" ")
	}
	parts := make([]string, 0, len(f.order))
	for _, k := range f.order {
		parts = append(parts, fmt.Sprintf("%s: %v", k, f.attrs[k]))
	}
	b.WriteString("{" + strings.Join(parts, ", ") + "}")
	if f.geom != nil {
		b.WriteString(" " + geometry.ToWKT(f.geom))
	}
	return b.String()
}

func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
