package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/terrascript/terrascript/pkg/feature"
	"github.com/terrascript/terrascript/pkg/geometry"
)

// geometryColumn is the CSV column carrying the WKT geometry.
const geometryColumn = "WKT_Geometry"

// ToCSV renders a collection as CSV. The output includes:
//   - All unique attribute fields as columns
//   - WKT geometry representation in the last column
//   - Sorted column headers for consistency
func ToCSV(c *feature.Collection) (string, error) {
	if c.Len() == 0 {
		return "", nil
	}

	// Determine all unique headers from all features' attributes
	headerMap := make(map[string]bool)
	for _, f := range c.Features {
		for _, k := range f.Keys() {
			headerMap[k] = true
		}
	}

	var headers []string
	for k := range headerMap {
		headers = append(headers, k)
	}
	sort.Strings(headers)
	headers = append(headers, geometryColumn)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers); err != nil {
		return "", errors.Wrap(err, "failed to write CSV header")
	}

	for _, f := range c.Features {
		row := make([]string, len(headers))
		for i, header := range headers {
			if header == geometryColumn {
				row[i] = geometry.ToWKT(f.Geometry())
			} else if val := f.Get(header); val != nil {
				row[i] = fmt.Sprintf("%v", val)
			}
		}
		if err := w.Write(row); err != nil {
			return "", errors.Wrap(err, "failed to write CSV row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.Wrap(err, "error during CSV writing")
	}

	return buf.String(), nil
}

// FromCSV parses a CSV document with a header row into a collection. A
// column named WKT_Geometry (or geom, or geometry) is decoded as WKT and
// becomes the feature geometry; every other column becomes a string
// attribute.
func FromCSV(name, text string) (*feature.Collection, error) {
	r := csv.NewReader(strings.NewReader(text))
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV")
	}
	if len(records) < 1 {
		return nil, errors.New("CSV has no header row")
	}

	headers := records[0]
	geomCol := -1
	for i, h := range headers {
		switch h {
		case geometryColumn, "geom", "geometry":
			geomCol = i
		}
	}

	c := feature.NewCollection(name)
	for rowNum, rec := range records[1:] {
		f := feature.New(fmt.Sprintf("%s.%d", name, rowNum+1), nil)
		for i, val := range rec {
			if i >= len(headers) {
				break
			}
			if i == geomCol {
				if strings.TrimSpace(val) == "" {
					continue
				}
				g, err := geometry.FromWKT(val)
				if err != nil {
					return nil, errors.Wrapf(err, "row %d", rowNum+2)
				}
				f.SetGeometry(g)
				continue
			}
			f.Set(headers[i], val)
		}
		c.Append(f)
	}
	return c, nil
}
