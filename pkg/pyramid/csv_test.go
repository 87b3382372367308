package pyramid

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `test,EPSG:3857,0,0,1024,1024,BOTTOM_LEFT,256,256
0,1,1,4,4
1,2,2,2,2
2,4,4,1,1`

func TestParseCSV(t *testing.T) {
	p, err := ParseCSV(sampleCSV)
	require.NoError(t, err)

	assert.Equal(t, "test", p.Name)
	assert.Equal(t, "EPSG:3857", p.SRS)
	assert.Equal(t, orb.Point{1024, 1024}, p.Bounds.Max)
	assert.Equal(t, OriginBottomLeft, p.Origin)
	assert.Equal(t, 256, p.TileWidth)
	require.Len(t, p.Grids, 3)
	assert.Equal(t, Grid{Z: 1, Width: 2, Height: 2, XRes: 2, YRes: 2}, p.Grids[1])
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"Empty", ""},
		{"Header Only", "test,EPSG:3857,0,0,1,1,BOTTOM_LEFT,256,256"},
		{"Short Header", "test,EPSG:3857,0,0,1,1"},
		{"Bad Origin", "test,EPSG:3857,0,0,1,1,CENTER,256,256\n0,1,1,4,4"},
		{"Bad Number", "test,EPSG:3857,0,zero,1,1,BOTTOM_LEFT,256,256\n0,1,1,4,4"},
		{"Short Grid", "test,EPSG:3857,0,0,1,1,BOTTOM_LEFT,256,256\n0,1,1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(tt.text)
			assert.Error(t, err)
		})
	}
}

func TestCSVRoundTrip(t *testing.T) {
	p, err := ParseCSV(sampleCSV)
	require.NoError(t, err)

	text, err := p.CSV()
	require.NoError(t, err)

	back, err := ParseCSV(text)
	require.NoError(t, err)
	assert.Equal(t, p, back)
}

func TestParseYAML(t *testing.T) {
	doc := []byte(`
name: test
srs: EPSG:3857
minx: 0
miny: 0
maxx: 1024
maxy: 1024
origin: TOP_LEFT
tileWidth: 512
tileHeight: 512
grids:
  - z: 0
    width: 1
    height: 1
    xres: 2
    yres: 2
`)
	p, err := ParseYAML(doc)
	require.NoError(t, err)

	assert.Equal(t, "test", p.Name)
	assert.Equal(t, OriginTopLeft, p.Origin)
	assert.Equal(t, 512, p.TileWidth)
	require.Len(t, p.Grids, 1)
	assert.Equal(t, 2.0, p.Grids[0].XRes)
}

func TestParseYAMLDefaults(t *testing.T) {
	doc := []byte(`
name: minimal
srs: EPSG:4326
maxx: 180
maxy: 90
grids:
  - z: 0
    width: 1
    height: 1
    xres: 1
    yres: 1
`)
	p, err := ParseYAML(doc)
	require.NoError(t, err)
	assert.Equal(t, OriginBottomLeft, p.Origin)
	assert.Equal(t, 256, p.TileWidth)
	assert.Equal(t, 256, p.TileHeight)
}

func TestParseYAMLBadOrigin(t *testing.T) {
	_, err := ParseYAML([]byte("name: x\norigin: CENTER\n"))
	assert.ErrorIs(t, err, ErrBadDefinition)
}

func TestYAMLRoundTrip(t *testing.T) {
	p := GlobalGeodetic()

	data, err := p.YAML()
	require.NoError(t, err)

	back, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, p, back)
}
