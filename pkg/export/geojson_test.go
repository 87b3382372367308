package export

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"
)

func TestToGeoJSON(t *testing.T) {
	out, err := ToGeoJSON(testCollection())
	if err != nil {
		t.Fatalf("ToGeoJSON returned error: %v", err)
	}

	wants := []string{
		`"type":"FeatureCollection"`,
		`"Crater Lake"`,
		`"LineString"`,
		`"Polygon"`,
		`"id":"places.1"`,
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("GeoJSON missing %q:\n%s", want, out)
		}
	}
}

func TestToGeoJSONIndent(t *testing.T) {
	out, err := ToGeoJSONIndent(testCollection(), "  ")
	if err != nil {
		t.Fatalf("ToGeoJSONIndent returned error: %v", err)
	}
	if !strings.Contains(out, "\n  \"") {
		t.Errorf("indented GeoJSON is not indented:\n%s", out)
	}
}

func TestGeoJSONRoundTrip(t *testing.T) {
	out, err := ToGeoJSON(testCollection())
	if err != nil {
		t.Fatalf("ToGeoJSON returned error: %v", err)
	}

	back, err := FromGeoJSON("places", []byte(out))
	if err != nil {
		t.Fatalf("FromGeoJSON returned error: %v", err)
	}
	if back.Len() != 3 {
		t.Fatalf("round trip has %d features, want 3", back.Len())
	}

	f := back.Features[0]
	if f.GetString("name") != "Crater Lake" {
		t.Errorf("name = %q", f.GetString("name"))
	}
	if _, ok := f.Geometry().(orb.Point); !ok {
		t.Errorf("geometry = %T, want Point", f.Geometry())
	}
}

func TestFromGeoJSONInvalid(t *testing.T) {
	if _, err := FromGeoJSON("bad", []byte("not json")); err == nil {
		t.Error("invalid GeoJSON should be an error")
	}
}
