package convert

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/terrascript/terrascript/pkg/feature"
)

func sampleCollection() *feature.Collection {
	c := feature.NewCollection("towns")
	c.Append(feature.New("towns.1", map[string]interface{}{
		"name": "Ames",
		"pop":  66000,
		"geom": orb.Point{-93.62, 42.03},
	}))
	return c
}

func TestWriteFormats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{FormatGeoJSON, `"FeatureCollection"`},
		{FormatKML, "<kml xmlns="},
		{FormatGPX, "<gpx version="},
		{FormatGeoRSS, "<georss:point>"},
		{FormatGML, "<gml:pos>"},
		{FormatGML2, "<gml:coordinates>"},
		{FormatCSV, "WKT_Geometry"},
		{FormatText, "Layer: towns"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := Write(sampleCollection(), tt.format)
			if err != nil {
				t.Fatalf("Write(%q) returned error: %v", tt.format, err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("Write(%q) missing %q:\n%s", tt.format, tt.want, out)
			}
		})
	}
}

func TestWriteUnsupported(t *testing.T) {
	_, err := Write(sampleCollection(), "shapefile")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestWriteCaseInsensitive(t *testing.T) {
	if _, err := Write(sampleCollection(), "GeoJSON"); err != nil {
		t.Errorf("format names are case-insensitive, got error: %v", err)
	}
}

func TestReadGeoJSON(t *testing.T) {
	out, err := Write(sampleCollection(), FormatGeoJSON)
	if err != nil {
		t.Fatal(err)
	}

	c, err := Read("towns", []byte(out), FormatGeoJSON)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("read %d features, want 1", c.Len())
	}
	if c.Features[0].GetString("name") != "Ames" {
		t.Errorf("name = %q", c.Features[0].GetString("name"))
	}
}

func TestReadCSV(t *testing.T) {
	c, err := Read("towns", []byte("name,geom\nAmes,POINT(-93.62 42.03)\n"), FormatCSV)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if c.Features[0].Geometry() == nil {
		t.Error("CSV geometry column was not decoded")
	}
}

func TestReadUnsupported(t *testing.T) {
	_, err := Read("x", nil, FormatKML)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{FormatGeoJSON, "geojson"},
		{FormatKML, "kml"},
		{FormatGML2, "gml"},
		{FormatGeoRSS, "xml"},
		{FormatText, "txt"},
	}
	for _, tt := range tests {
		if got := Extension(tt.format); got != tt.want {
			t.Errorf("Extension(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestToText(t *testing.T) {
	out, err := ToText(sampleCollection())
	if err != nil {
		t.Fatalf("ToText returned error: %v", err)
	}

	wants := []string{
		"Layer: towns",
		"Total Features: 1",
		"--- Feature 1 ---",
		"name: Ames",
		"Geometry (WKT):",
		"POINT",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestToTextEmpty(t *testing.T) {
	if _, err := ToText(feature.NewCollection("empty")); err == nil {
		t.Error("empty collection should be an error")
	}
}
