package feature

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFeature(t *testing.T) {
	f := New("house.1", map[string]interface{}{
		"name": "Colonial",
		"beds": 4,
		"geom": orb.Point{30, 10},
	})

	assert.Equal(t, "house.1", f.ID())
	assert.Equal(t, "Colonial", f.Get("name"))
	assert.Equal(t, 4, f.Get("beds"))
	require.NotNil(t, f.Geometry())
	assert.Equal(t, "Point", f.Geometry().GeoJSONType())
	assert.False(t, f.Has("geom"), "geometry lives in its own slot, not the attributes")
}

func TestSetRoutesGeometry(t *testing.T) {
	f := New("f.1", nil)

	f.Set("geom", "POINT(1 2)")
	require.NotNil(t, f.Geometry())
	assert.Equal(t, orb.Point{1, 2}, f.Geometry())

	f.Set("geometry", orb.LineString{{0, 0}, {1, 1}})
	assert.Equal(t, "LineString", f.Geometry().GeoJSONType())
}

func TestGetGeometryAliases(t *testing.T) {
	f := New("f.1", map[string]interface{}{"geom": orb.Point{5, 6}})

	assert.Equal(t, orb.Point{5, 6}, f.Get("geom"))
	assert.Equal(t, orb.Point{5, 6}, f.Get("geometry"))
}

func TestDeleteAndKeys(t *testing.T) {
	f := New("f.1", map[string]interface{}{"b": 2, "a": 1, "c": 3})

	assert.Equal(t, []string{"a", "b", "c"}, f.Keys(), "attribute order is sorted at construction")

	f.Delete("b")
	assert.False(t, f.Has("b"))
	assert.Equal(t, []string{"a", "c"}, f.Keys())

	f.Set("d", 4)
	assert.Equal(t, []string{"a", "c", "d"}, f.Keys(), "later sets append")
}

func TestTypedGetters(t *testing.T) {
	f := New("f.1", map[string]interface{}{
		"name":  "Main St",
		"lanes": 4,
		"width": 12.5,
		"speed": "55",
	})

	assert.Equal(t, "Main St", f.GetString("name"))
	assert.Equal(t, "", f.GetString("missing"))

	lanes, ok := f.GetInt("lanes")
	require.True(t, ok)
	assert.Equal(t, 4, lanes)

	width, ok := f.GetFloat("width")
	require.True(t, ok)
	assert.Equal(t, 12.5, width)

	speed, ok := f.GetFloat("speed")
	require.True(t, ok, "numeric strings coerce")
	assert.Equal(t, 55.0, speed)

	_, ok = f.GetFloat("missing")
	assert.False(t, ok)

	_, ok = f.GetFloat("name")
	assert.False(t, ok)
}

func TestGetPath(t *testing.T) {
	f := New("f.1", map[string]interface{}{
		"address": map[string]interface{}{
			"city": "Springfield",
			"zip":  "62701",
		},
		"tags": []interface{}{"old", "brick"},
	})

	assert.Equal(t, "Springfield", f.GetPath("address.city"))
	assert.Equal(t, "brick", f.GetPath("tags.1"))
	assert.Nil(t, f.GetPath("address.state"))
}

func TestFeatureGeoJSONRoundTrip(t *testing.T) {
	f := New("parcel.7", map[string]interface{}{
		"owner": "Smith",
		"acres": 2.5,
		"geom":  orb.Point{-93.6, 41.6},
	})

	data, err := f.ToGeoJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Feature"`)
	assert.Contains(t, string(data), `"owner"`)

	back, err := FromGeoJSON(data)
	require.NoError(t, err)
	assert.Equal(t, "Smith", back.GetString("owner"))
	acres, ok := back.GetFloat("acres")
	require.True(t, ok)
	assert.Equal(t, 2.5, acres)
	assert.Equal(t, orb.Point{-93.6, 41.6}, back.Geometry())
}
