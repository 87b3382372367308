// Copyright (c) 2025 Terrascript Authors
// Licensed under the MIT License

// Package pyramid models multi-resolution tiling schemes: a pyramid is a
// tile grid per zoom level over a bounded plane, parsed from and rendered
// to CSV and YAML definitions.
package pyramid

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
)

var (
	ErrNoGrid      = errors.New("pyramid has no grid at that level")
	ErrTileOutside = errors.New("tile outside grid")
)

// Tile origins.
const (
	OriginBottomLeft = "BOTTOM_LEFT"
	OriginTopLeft    = "TOP_LEFT"
)

// Grid is one zoom level of a pyramid: the number of tiles across and down
// plus the map-unit resolution per pixel.
type Grid struct {
	Z      int     `yaml:"z"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	XRes   float64 `yaml:"xres"`
	YRes   float64 `yaml:"yres"`
}

// Pyramid is a multi-resolution tiling scheme over a bounded plane.
type Pyramid struct {
	Name       string
	SRS        string
	Bounds     orb.Bound
	Origin     string
	TileWidth  int
	TileHeight int
	Grids      []Grid
}

// Grid returns the grid at zoom level z.
func (p *Pyramid) Grid(z int) (Grid, error) {
	for _, g := range p.Grids {
		if g.Z == z {
			return g, nil
		}
	}
	return Grid{}, errors.Wrapf(ErrNoGrid, "level %d of pyramid %q", z, p.Name)
}

// MinZoom returns the lowest grid level.
func (p *Pyramid) MinZoom() int {
	if len(p.Grids) == 0 {
		return 0
	}
	min := p.Grids[0].Z
	for _, g := range p.Grids[1:] {
		if g.Z < min {
			min = g.Z
		}
	}
	return min
}

// MaxZoom returns the highest grid level.
func (p *Pyramid) MaxZoom() int {
	if len(p.Grids) == 0 {
		return 0
	}
	max := p.Grids[0].Z
	for _, g := range p.Grids[1:] {
		if g.Z > max {
			max = g.Z
		}
	}
	return max
}

// TileBounds returns the map-unit bounding box of tile (z, x, y), honoring
// the pyramid origin.
func (p *Pyramid) TileBounds(z, x, y int) (orb.Bound, error) {
	g, err := p.Grid(z)
	if err != nil {
		return orb.Bound{}, err
	}
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return orb.Bound{}, errors.Wrapf(ErrTileOutside, "tile %d/%d/%d", z, x, y)
	}

	tw := float64(p.TileWidth) * g.XRes
	th := float64(p.TileHeight) * g.YRes

	minx := p.Bounds.Min[0] + float64(x)*tw
	var miny float64
	if p.Origin == OriginTopLeft {
		miny = p.Bounds.Max[1] - float64(y+1)*th
	} else {
		miny = p.Bounds.Min[1] + float64(y)*th
	}
	return orb.Bound{
		Min: orb.Point{minx, miny},
		Max: orb.Point{minx + tw, miny + th},
	}, nil
}

// Tile returns the (x, y) of the tile containing the map-unit point at
// level z.
func (p *Pyramid) Tile(pt orb.Point, z int) (x, y int, err error) {
	g, err := p.Grid(z)
	if err != nil {
		return 0, 0, err
	}
	tw := float64(p.TileWidth) * g.XRes
	th := float64(p.TileHeight) * g.YRes

	x = int(math.Floor((pt[0] - p.Bounds.Min[0]) / tw))
	if p.Origin == OriginTopLeft {
		y = int(math.Floor((p.Bounds.Max[1] - pt[1]) / th))
	} else {
		y = int(math.Floor((pt[1] - p.Bounds.Min[1]) / th))
	}
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return 0, 0, errors.Wrapf(ErrTileOutside, "point %v at level %d", pt, z)
	}
	return x, y, nil
}

// Maptile converts a pyramid tile address to an orb maptile (XYZ scheme,
// top-left origin). Only meaningful for global pyramids whose grids are
// 2^z wide.
func (p *Pyramid) Maptile(z, x, y int) maptile.Tile {
	row := y
	if p.Origin == OriginBottomLeft {
		g, err := p.Grid(z)
		if err == nil {
			row = g.Height - 1 - y
		}
	}
	return maptile.New(uint32(x), uint32(row), maptile.Zoom(z))
}

// MaptileAt returns the XYZ maptile containing a lon/lat point at level z.
func MaptileAt(lon, lat float64, z int) maptile.Tile {
	return maptile.At(orb.Point{lon, lat}, maptile.Zoom(z))
}
