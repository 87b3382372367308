package filter

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"github.com/terrascript/terrascript/pkg/feature"
)

func road(attrs map[string]interface{}) *feature.Feature {
	return feature.New("road.1", attrs)
}

func TestEvaluateCompare(t *testing.T) {
	ft := road(map[string]interface{}{
		"name":  "Main St",
		"lanes": 4,
		"depth": 7.5,
		"geom":  orb.Point{5, 5},
	})

	tests := []struct {
		cql  string
		want bool
	}{
		{"name = 'Main St'", true},
		{"name = 'Elm St'", false},
		{"name <> 'Elm St'", true},
		{"lanes = 4", true},
		{"lanes > 2", true},
		{"lanes > 4", false},
		{"lanes >= 4", true},
		{"depth < 10", true},
		{"depth BETWEEN 5 AND 10", true},
		{"depth BETWEEN 8 AND 10", false},
		{"name LIKE 'Main%'", true},
		{"name LIKE '%St'", true},
		{"name LIKE 'M__n St'", true},
		{"name LIKE 'Elm%'", false},
		{"surface IS NULL", true},
		{"name IS NULL", false},
		{"name IS NOT NULL", true},
		{"name IN ('Elm St', 'Main St')", true},
		{"name NOT IN ('Elm St', 'Oak St')", true},
		{"missing = 1", false},
		{"INCLUDE", true},
		{"EXCLUDE", false},
	}

	for _, tt := range tests {
		t.Run(tt.cql, func(t *testing.T) {
			f := MustParse(tt.cql)
			assert.Equal(t, tt.want, f.Evaluate(ft), "cql: %s", tt.cql)
		})
	}
}

func TestEvaluateLogic(t *testing.T) {
	ft := road(map[string]interface{}{"lanes": 4, "surface": "paved"})

	assert.True(t, MustParse("lanes = 4 AND surface = 'paved'").Evaluate(ft))
	assert.False(t, MustParse("lanes = 4 AND surface = 'gravel'").Evaluate(ft))
	assert.True(t, MustParse("lanes = 2 OR surface = 'paved'").Evaluate(ft))
	assert.True(t, MustParse("NOT (surface = 'gravel')").Evaluate(ft))
	assert.True(t, And(MustParse("lanes > 2"), MustParse("lanes < 6")).Evaluate(ft))
}

func TestEvaluateSpatial(t *testing.T) {
	inside := road(map[string]interface{}{"geom": orb.Point{5, 5}})
	outside := road(map[string]interface{}{"geom": orb.Point{50, 50}})

	bbox := MustParse("BBOX(geom, 0, 0, 10, 10)")
	assert.True(t, bbox.Evaluate(inside))
	assert.False(t, bbox.Evaluate(outside))

	contains := MustParse("CONTAINS(geom, POLYGON((0 0,10 0,10 10,0 10,0 0)))")
	assert.True(t, contains.Evaluate(inside))
	assert.False(t, contains.Evaluate(outside))

	intersects := MustParse("INTERSECTS(geom, POINT(5 5))")
	assert.True(t, intersects.Evaluate(inside))

	noGeom := road(map[string]interface{}{"name": "x"})
	assert.False(t, bbox.Evaluate(noGeom))
}

func TestEvaluateNilFilter(t *testing.T) {
	var f *Filter
	assert.True(t, f.Evaluate(road(nil)), "a nil filter matches everything")
}

func TestNumericStringCoercion(t *testing.T) {
	ft := road(map[string]interface{}{"pop": "10000"})
	assert.True(t, MustParse("pop > 500").Evaluate(ft),
		"numeric strings compare numerically, not lexically")
}
