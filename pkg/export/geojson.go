package export

import (
	"github.com/goccy/go-json"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"

	"github.com/terrascript/terrascript/pkg/feature"
)

// ToGeoJSON renders a collection as a GeoJSON FeatureCollection document.
func ToGeoJSON(c *feature.Collection) (string, error) {
	return marshalGeoJSON(c, "")
}

// ToGeoJSONIndent renders a collection as indented GeoJSON.
func ToGeoJSONIndent(c *feature.Collection, indent string) (string, error) {
	return marshalGeoJSON(c, indent)
}

func marshalGeoJSON(c *feature.Collection, indent string) (string, error) {
	fc := geojson.NewFeatureCollection()
	for _, f := range c.Features {
		gf := geojson.NewFeature(f.Geometry())
		if f.ID() != "" {
			gf.ID = f.ID()
		}
		gf.Properties = f.Attributes()
		fc.Append(gf)
	}

	var (
		data []byte
		err  error
	)
	if indent != "" {
		data, err = json.MarshalIndent(fc, "", indent)
	} else {
		data, err = json.Marshal(fc)
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal GeoJSON")
	}
	return string(data), nil
}

// FromGeoJSON parses a GeoJSON FeatureCollection document into a
// collection.
func FromGeoJSON(name string, data []byte) (*feature.Collection, error) {
	return feature.CollectionFromGeoJSON(name, data)
}
