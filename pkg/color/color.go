// Copyright (c) 2025 Terrascript Authors
// Licensed under the MIT License

// Package color provides CSS color string parsing and formatting plus the
// ColorBrewer palettes, for styling features from scripts.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownColor = errors.New("unknown color")

// Color is an sRGB color with alpha.
type Color struct {
	R, G, B, A uint8
}

// New creates an opaque color from RGB components.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Parse interprets a CSS color string: a named CSS color, "#rgb",
// "#rrggbb", "rgb(r, g, b)" or "hsl(h, s%, l%)".
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Color{}, ErrUnknownColor
	}

	if c, ok := cssNames[s]; ok {
		return c, nil
	}

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGB(s[4 : len(s)-1])
	case strings.HasPrefix(s, "hsl(") && strings.HasSuffix(s, ")"):
		return parseHSL(s[4 : len(s)-1])
	}

	// bare hex without the leading #
	if len(s) == 6 {
		if c, err := parseHex("#" + s); err == nil {
			return c, nil
		}
	}
	return Color{}, errors.Wrapf(ErrUnknownColor, "%q", s)
}

func parseHex(s string) (Color, error) {
	hex := s[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return Color{}, errors.Wrapf(ErrUnknownColor, "bad hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, errors.Wrapf(ErrUnknownColor, "bad hex color %q", s)
	}
	return New(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func parseRGB(body string) (Color, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return Color{}, errors.Wrapf(ErrUnknownColor, "bad rgb() color %q", body)
	}
	vals := make([]uint8, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return Color{}, errors.Wrapf(ErrUnknownColor, "bad rgb() component %q", p)
		}
		vals[i] = uint8(n)
	}
	return New(vals[0], vals[1], vals[2]), nil
}

func parseHSL(body string) (Color, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return Color{}, errors.Wrapf(ErrUnknownColor, "bad hsl() color %q", body)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Color{}, errors.Wrapf(ErrUnknownColor, "bad hue %q", parts[0])
	}
	s, err := parsePercent(parts[1])
	if err != nil {
		return Color{}, err
	}
	l, err := parsePercent(parts[2])
	if err != nil {
		return Color{}, err
	}
	return FromHSL(h, s, l), nil
}

func parsePercent(p string) (float64, error) {
	p = strings.TrimSpace(p)
	p = strings.TrimSuffix(p, "%")
	v, err := strconv.ParseFloat(p, 64)
	if err != nil || v < 0 || v > 100 {
		return 0, errors.Wrapf(ErrUnknownColor, "bad percentage %q", p)
	}
	return v / 100, nil
}

// FromHSL creates a color from hue in degrees and saturation/lightness in
// [0, 1].
func FromHSL(h, s, l float64) Color {
	h = math.Mod(math.Mod(h, 360)+360, 360) / 360

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}
	return New(round255(r), round255(g), round255(b))
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func round255(v float64) uint8 {
	n := math.Round(v * 255)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// Hex renders the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGB renders the color as "rgb(r, g, b)".
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSL returns hue in degrees and saturation/lightness in [0, 1].
func (c Color) HSL() (h, s, l float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2

	if max == min {
		return 0, 0, l
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	return h * 60, s, l
}

// HSLString renders the color as "hsl(h, s%, l%)".
func (c Color) HSLString() string {
	h, s, l := c.HSL()
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s*100, l*100)
}

// String is the hex rendering.
func (c Color) String() string {
	return c.Hex()
}

// Interpolate returns n colors linearly interpolated in RGB space from a to
// b, inclusive of both endpoints. For n < 2 it returns just a.
func Interpolate(a, b Color, n int) []Color {
	if n < 2 {
		return []Color{a}
	}
	out := make([]Color, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		out[i] = Color{
			R: lerp255(a.R, b.R, t),
			G: lerp255(a.G, b.G, t),
			B: lerp255(a.B, b.B, t),
			A: lerp255(a.A, b.A, t),
		}
	}
	return out
}

func lerp255(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
