package color

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{"Named", "red", New(255, 0, 0)},
		{"Named Mixed Case", "SteelBlue", New(70, 130, 180)},
		{"Named With Space", "  navy ", New(0, 0, 128)},
		{"Hex Six", "#ff7f00", New(255, 127, 0)},
		{"Hex Three", "#f70", New(255, 119, 0)},
		{"Hex Uppercase", "#FF7F00", New(255, 127, 0)},
		{"Bare Hex", "ff7f00", New(255, 127, 0)},
		{"RGB", "rgb(255, 127, 0)", New(255, 127, 0)},
		{"RGB No Spaces", "rgb(1,2,3)", New(1, 2, 3)},
		{"HSL Red", "hsl(0, 100%, 50%)", New(255, 0, 0)},
		{"HSL Gray", "hsl(0, 0%, 50%)", New(128, 128, 128)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Unknown Name", "blurple"},
		{"Bad Hex Length", "#ff7f0"},
		{"Bad Hex Digits", "#zzzzzz"},
		{"RGB Out Of Range", "rgb(300, 0, 0)"},
		{"RGB Too Few", "rgb(1, 2)"},
		{"HSL Bad Percent", "hsl(0, 150%, 50%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", tt.input)
			}
			if !errors.Is(err, ErrUnknownColor) {
				t.Errorf("Parse(%q) error = %v, want ErrUnknownColor", tt.input, err)
			}
		})
	}
}

func TestFormats(t *testing.T) {
	c := New(255, 127, 0)

	if got := c.Hex(); got != "#ff7f00" {
		t.Errorf("Hex() = %q", got)
	}
	if got := c.RGB(); got != "rgb(255, 127, 0)" {
		t.Errorf("RGB() = %q", got)
	}
	if got := c.String(); got != "#ff7f00" {
		t.Errorf("String() = %q", got)
	}
}

func TestHSLRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    Color
	}{
		{"Red", New(255, 0, 0)},
		{"Green", New(0, 255, 0)},
		{"Steel Blue", New(70, 130, 180)},
		{"Gray", New(128, 128, 128)},
		{"Black", New(0, 0, 0)},
		{"White", New(255, 255, 255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := tt.c.HSL()
			back := FromHSL(h, s, l)
			if back != tt.c {
				t.Errorf("HSL round trip: %v -> (%v %v %v) -> %v", tt.c, h, s, l, back)
			}
		})
	}
}

func TestHSLString(t *testing.T) {
	if got := New(255, 0, 0).HSLString(); got != "hsl(0, 100%, 50%)" {
		t.Errorf("HSLString() = %q", got)
	}
}

func TestInterpolate(t *testing.T) {
	a := New(0, 0, 0)
	b := New(255, 255, 255)

	ramp := Interpolate(a, b, 3)
	if len(ramp) != 3 {
		t.Fatalf("len(ramp) = %d, want 3", len(ramp))
	}
	if ramp[0] != a || ramp[2] != b {
		t.Errorf("ramp endpoints = %v, %v", ramp[0], ramp[2])
	}
	if ramp[1] != New(128, 128, 128) {
		t.Errorf("ramp midpoint = %v", ramp[1])
	}

	single := Interpolate(a, b, 1)
	if len(single) != 1 || single[0] != a {
		t.Errorf("Interpolate with n < 2 = %v", single)
	}
}
