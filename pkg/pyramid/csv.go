package pyramid

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrBadDefinition = errors.New("bad pyramid definition")

// ParseCSV parses a pyramid definition. The first record carries the
// pyramid header:
//
//	name,srs,minx,miny,maxx,maxy,origin,tileWidth,tileHeight
//
// and every following record one grid:
//
//	z,width,height,xres,yres
func ParseCSV(text string) (*Pyramid, error) {
	r := csv.NewReader(strings.NewReader(strings.TrimSpace(text)))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read pyramid CSV")
	}
	if len(records) < 2 {
		return nil, errors.Wrap(ErrBadDefinition, "pyramid CSV needs a header record and at least one grid")
	}

	head := records[0]
	if len(head) != 9 {
		return nil, errors.Wrapf(ErrBadDefinition, "pyramid header has %d fields, want 9", len(head))
	}
	nums, err := floats(head[2:6])
	if err != nil {
		return nil, err
	}
	tw, err := strconv.Atoi(strings.TrimSpace(head[7]))
	if err != nil {
		return nil, errors.Wrapf(ErrBadDefinition, "bad tile width %q", head[7])
	}
	th, err := strconv.Atoi(strings.TrimSpace(head[8]))
	if err != nil {
		return nil, errors.Wrapf(ErrBadDefinition, "bad tile height %q", head[8])
	}

	origin := strings.TrimSpace(head[6])
	if origin != OriginBottomLeft && origin != OriginTopLeft {
		return nil, errors.Wrapf(ErrBadDefinition, "bad origin %q", origin)
	}

	p := &Pyramid{
		Name:       strings.TrimSpace(head[0]),
		SRS:        strings.TrimSpace(head[1]),
		Bounds:     orb.Bound{Min: orb.Point{nums[0], nums[1]}, Max: orb.Point{nums[2], nums[3]}},
		Origin:     origin,
		TileWidth:  tw,
		TileHeight: th,
	}

	for _, rec := range records[1:] {
		if len(rec) != 5 {
			return nil, errors.Wrapf(ErrBadDefinition, "grid record has %d fields, want 5", len(rec))
		}
		vals, err := floats(rec)
		if err != nil {
			return nil, err
		}
		p.Grids = append(p.Grids, Grid{
			Z:      int(vals[0]),
			Width:  int(vals[1]),
			Height: int(vals[2]),
			XRes:   vals[3],
			YRes:   vals[4],
		})
	}
	return p, nil
}

// CSV renders the pyramid in the format ParseCSV reads.
func (p *Pyramid) CSV() (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	head := []string{
		p.Name, p.SRS,
		num(p.Bounds.Min[0]), num(p.Bounds.Min[1]),
		num(p.Bounds.Max[0]), num(p.Bounds.Max[1]),
		p.Origin,
		strconv.Itoa(p.TileWidth), strconv.Itoa(p.TileHeight),
	}
	if err := w.Write(head); err != nil {
		return "", errors.Wrap(err, "failed to write pyramid CSV header")
	}
	for _, g := range p.Grids {
		rec := []string{
			strconv.Itoa(g.Z), strconv.Itoa(g.Width), strconv.Itoa(g.Height),
			num(g.XRes), num(g.YRes),
		}
		if err := w.Write(rec); err != nil {
			return "", errors.Wrap(err, "failed to write pyramid CSV grid")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.Wrap(err, "error during pyramid CSV writing")
	}
	return buf.String(), nil
}

// yamlPyramid is the YAML shape of a pyramid definition.
type yamlPyramid struct {
	Name       string  `yaml:"name"`
	SRS        string  `yaml:"srs"`
	MinX       float64 `yaml:"minx"`
	MinY       float64 `yaml:"miny"`
	MaxX       float64 `yaml:"maxx"`
	MaxY       float64 `yaml:"maxy"`
	Origin     string  `yaml:"origin"`
	TileWidth  int     `yaml:"tileWidth"`
	TileHeight int     `yaml:"tileHeight"`
	Grids      []Grid  `yaml:"grids"`
}

// ParseYAML parses a YAML pyramid definition.
func ParseYAML(data []byte) (*Pyramid, error) {
	var y yamlPyramid
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, errors.Wrap(err, "failed to parse pyramid YAML")
	}
	origin := y.Origin
	if origin == "" {
		origin = OriginBottomLeft
	}
	if origin != OriginBottomLeft && origin != OriginTopLeft {
		return nil, errors.Wrapf(ErrBadDefinition, "bad origin %q", origin)
	}
	tw, th := y.TileWidth, y.TileHeight
	if tw == 0 {
		tw = 256
	}
	if th == 0 {
		th = 256
	}
	return &Pyramid{
		Name:       y.Name,
		SRS:        y.SRS,
		Bounds:     orb.Bound{Min: orb.Point{y.MinX, y.MinY}, Max: orb.Point{y.MaxX, y.MaxY}},
		Origin:     origin,
		TileWidth:  tw,
		TileHeight: th,
		Grids:      y.Grids,
	}, nil
}

// YAML renders the pyramid as a YAML definition.
func (p *Pyramid) YAML() ([]byte, error) {
	y := yamlPyramid{
		Name: p.Name, SRS: p.SRS,
		MinX: p.Bounds.Min[0], MinY: p.Bounds.Min[1],
		MaxX: p.Bounds.Max[0], MaxY: p.Bounds.Max[1],
		Origin:     p.Origin,
		TileWidth:  p.TileWidth,
		TileHeight: p.TileHeight,
		Grids:      p.Grids,
	}
	out, err := yaml.Marshal(&y)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render pyramid YAML")
	}
	return out, nil
}

func floats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, errors.Wrapf(ErrBadDefinition, "bad number %q", f)
		}
		out[i] = v
	}
	return out, nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
