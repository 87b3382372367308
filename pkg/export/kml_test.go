package export

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"

	"github.com/terrascript/terrascript/pkg/feature"
)

func TestToKML(t *testing.T) {
	kml, err := ToKML(testCollection(), "Places")
	if err != nil {
		t.Fatalf("ToKML returned error: %v", err)
	}

	wants := []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<kml xmlns="http://www.opengis.net/kml/2.2">`,
		"<name>Places</name>",
		"<name>Crater Lake</name>",
		"<Point><coordinates>-122.1000000000,42.9400000000,0</coordinates></Point>",
		"<LineString><coordinates>",
		"<Polygon><outerBoundaryIs><LinearRing>",
		"<![CDATA[",
	}
	for _, want := range wants {
		if !strings.Contains(kml, want) {
			t.Errorf("KML missing %q:\n%s", want, kml)
		}
	}

	if got := strings.Count(kml, "<Placemark>"); got != 3 {
		t.Errorf("KML has %d placemarks, want 3", got)
	}
}

func TestToKMLSkipsMissingGeometry(t *testing.T) {
	c := feature.NewCollection("sparse")
	c.Append(feature.New("sparse.1", map[string]interface{}{"name": "no geom"}))
	c.Append(feature.New("sparse.2", map[string]interface{}{"geom": orb.Point{1, 2}}))

	kml, err := ToKML(c, "Sparse")
	if err != nil {
		t.Fatalf("ToKML returned error: %v", err)
	}
	if got := strings.Count(kml, "<Placemark>"); got != 1 {
		t.Errorf("KML has %d placemarks, want 1", got)
	}
}

func TestKMLGeometry(t *testing.T) {
	tests := []struct {
		name     string
		geometry orb.Geometry
		want     []string
	}{
		{
			"Point",
			orb.Point{10, 20},
			[]string{"<Point><coordinates>10.0000000000,20.0000000000,0</coordinates></Point>"},
		},
		{
			"Polygon With Hole",
			orb.Polygon{
				{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
				{{2, 2}, {4, 2}, {4, 4}, {2, 4}, {2, 2}},
			},
			[]string{"<outerBoundaryIs>", "<innerBoundaryIs>"},
		},
		{
			"MultiPoint",
			orb.MultiPoint{{1, 1}, {2, 2}},
			[]string{"<MultiGeometry>", "<Point><coordinates>1.0000000000,1.0000000000,0</coordinates></Point>"},
		},
		{
			"MultiPolygon",
			orb.MultiPolygon{
				{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}},
				{{{5, 5}, {6, 5}, {6, 6}, {5, 5}}},
			},
			[]string{"<MultiGeometry>", "<Polygon>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kmlGeometry(tt.geometry)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("kmlGeometry missing %q: %s", want, got)
				}
			}
		})
	}
}

func TestKMLGeometryEmpty(t *testing.T) {
	if got := kmlGeometry(orb.Polygon{}); got != "" {
		t.Errorf("empty polygon should render nothing, got %q", got)
	}
}
