package feature

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// Collection is an ordered set of features sharing a layer name.
type Collection struct {
	Name     string
	Features []*Feature
}

// NewCollection creates a named, empty collection.
func NewCollection(name string) *Collection {
	return &Collection{Name: name}
}

// CollectionFromGeoJSON parses a GeoJSON FeatureCollection document.
func CollectionFromGeoJSON(name string, data []byte) (*Collection, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse GeoJSON feature collection")
	}
	c := NewCollection(name)
	for _, gf := range fc.Features {
		c.Append(fromOrb(gf))
	}
	return c, nil
}

// Append adds a feature to the collection.
func (c *Collection) Append(f *Feature) {
	c.Features = append(c.Features, f)
}

// Len returns the number of features.
func (c *Collection) Len() int {
	return len(c.Features)
}

// Filter returns a new collection holding the features the predicate keeps.
func (c *Collection) Filter(keep func(*Feature) bool) *Collection {
	out := NewCollection(c.Name)
	for _, f := range c.Features {
		if keep(f) {
			out.Append(f)
		}
	}
	return out
}

// Bounds returns the union of all feature bounds. Features without a
// geometry are skipped.
func (c *Collection) Bounds() orb.Bound {
	var b orb.Bound
	first := true
	for _, f := range c.Features {
		if f.Geometry() == nil {
			continue
		}
		if first {
			b = f.Bounds()
			first = false
			continue
		}
		b = b.Union(f.Bounds())
	}
	return b
}

// Schema infers a collection schema from the first feature.
func (c *Collection) Schema() *Schema {
	if len(c.Features) == 0 {
		return NewSchema(c.Name)
	}
	s := c.Features[0].Schema()
	return &Schema{Name: c.Name, Fields: s.Fields}
}

// ToGeoJSON renders the collection as a GeoJSON FeatureCollection.
func (c *Collection) ToGeoJSON() ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, f := range c.Features {
		gf := geojson.NewFeature(f.Geometry())
		if f.ID() != "" {
			gf.ID = f.ID()
		}
		gf.Properties = f.attrs
		fc.Append(gf)
	}
	return fc.MarshalJSON()
}
