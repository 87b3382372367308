package pyramid

import "github.com/paulmach/orb"

const (
	mercatorExtent = 20037508.342789244
	mercatorLevels = 20
	geodeticLevels = 20
)

// GlobalMercator returns the spherical mercator (EPSG:3857) pyramid used by
// most slippy-map tile servers: square 2^z by 2^z grids over the projected
// world extent.
func GlobalMercator() *Pyramid {
	p := &Pyramid{
		Name:       "GlobalMercator",
		SRS:        "EPSG:3857",
		Bounds:     orb.Bound{Min: orb.Point{-mercatorExtent, -mercatorExtent}, Max: orb.Point{mercatorExtent, mercatorExtent}},
		Origin:     OriginBottomLeft,
		TileWidth:  256,
		TileHeight: 256,
	}
	res := 2 * mercatorExtent / 256
	for z := 0; z < mercatorLevels; z++ {
		n := 1 << z
		p.Grids = append(p.Grids, Grid{Z: z, Width: n, Height: n, XRes: res, YRes: res})
		res /= 2
	}
	return p
}

// GlobalGeodetic returns the plain lon/lat (EPSG:4326) pyramid: 2^(z+1) by
// 2^z grids over the whole globe.
func GlobalGeodetic() *Pyramid {
	p := &Pyramid{
		Name:       "GlobalGeodetic",
		SRS:        "EPSG:4326",
		Bounds:     orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}},
		Origin:     OriginBottomLeft,
		TileWidth:  256,
		TileHeight: 256,
	}
	res := 180.0 / 256
	for z := 0; z < geodeticLevels; z++ {
		p.Grids = append(p.Grids, Grid{Z: z, Width: 2 << z, Height: 1 << z, XRes: res, YRes: res})
		res /= 2
	}
	return p
}

// WellKnown returns a built-in pyramid by name, or nil when the name is not
// recognized.
func WellKnown(name string) *Pyramid {
	switch name {
	case "GlobalMercator", "global-mercator", "mercator":
		return GlobalMercator()
	case "GlobalGeodetic", "global-geodetic", "geodetic":
		return GlobalGeodetic()
	}
	return nil
}
