package feature

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaLookup(t *testing.T) {
	s := NewSchema("roads",
		NewField("name", TypeString),
		NewField("lanes", TypeInt),
		NewField("geom", TypeLineString),
	)

	f, err := s.Get("lanes")
	require.NoError(t, err)
	assert.Equal(t, TypeInt, f.Type)

	_, err = s.Get("surface")
	assert.ErrorIs(t, err, ErrNoSuchField)

	assert.True(t, s.Has("name"))
	assert.False(t, s.Has("surface"))
	assert.Equal(t, []string{"name", "lanes", "geom"}, s.FieldNames())
}

func TestSchemaGeom(t *testing.T) {
	s := NewSchema("roads",
		NewField("name", TypeString),
		NewField("geom", TypeLineString),
	)
	g, ok := s.Geom()
	require.True(t, ok)
	assert.Equal(t, "geom", g.Name)

	flat := NewSchema("table", NewField("name", TypeString))
	_, ok = flat.Geom()
	assert.False(t, ok)
}

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"str", TypeString},
		{"String", TypeString},
		{"double", TypeFloat},
		{"long", TypeInt},
		{"point", TypePoint},
		{"Polygon", TypePolygon},
		{"MultiLineString", TypeMultiLine},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeType(tt.in))
		})
	}
}

func TestInferSchema(t *testing.T) {
	s := InferSchema("parcels", map[string]interface{}{
		"owner": "Smith",
		"acres": 2.5,
		"units": 3,
		"geom":  orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}},
	})

	byName := map[string]string{}
	for _, f := range s.Fields {
		byName[f.Name] = f.Type
	}
	assert.Equal(t, TypeString, byName["owner"])
	assert.Equal(t, TypeFloat, byName["acres"])
	assert.Equal(t, TypeInt, byName["units"])
	assert.Equal(t, TypePolygon, byName["geom"])
}

func TestFeatureSchemaInferred(t *testing.T) {
	f := New("p.1", map[string]interface{}{
		"owner": "Jones",
		"geom":  orb.Point{1, 2},
	})
	s := f.Schema()
	g, ok := s.Geom()
	require.True(t, ok)
	assert.Equal(t, TypePoint, g.Type)
}

func TestCollection(t *testing.T) {
	c := NewCollection("parcels")
	c.Append(New("p.1", map[string]interface{}{"acres": 1.0, "geom": orb.Point{0, 0}}))
	c.Append(New("p.2", map[string]interface{}{"acres": 3.0, "geom": orb.Point{10, 10}}))
	c.Append(New("p.3", map[string]interface{}{"acres": 9.0, "geom": orb.Point{5, 5}}))

	assert.Equal(t, 3, c.Len())

	b := c.Bounds()
	assert.Equal(t, orb.Point{0, 0}, b.Min)
	assert.Equal(t, orb.Point{10, 10}, b.Max)

	big := c.Filter(func(f *Feature) bool {
		v, _ := f.GetFloat("acres")
		return v > 2
	})
	assert.Equal(t, 2, big.Len())
	assert.Equal(t, 3, c.Len(), "Filter must not modify the source collection")
}

func TestCollectionGeoJSONRoundTrip(t *testing.T) {
	c := NewCollection("towns")
	c.Append(New("t.1", map[string]interface{}{"name": "Ames", "geom": orb.Point{-93.6, 42.0}}))

	data, err := c.ToGeoJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"FeatureCollection"`)

	back, err := CollectionFromGeoJSON("towns", data)
	require.NoError(t, err)
	require.Equal(t, 1, back.Len())
	assert.Equal(t, "Ames", back.Features[0].GetString("name"))
}
