// Copyright (c) 2025 Terrascript Authors
// Licensed under the MIT License

// Package style provides a minimal symbolizer model for features and an SLD
// 1.0 encoder. It only shapes the document; rendering belongs to whatever
// consumes the SLD.
package style

import (
	"github.com/terrascript/terrascript/pkg/color"
	"github.com/terrascript/terrascript/pkg/filter"
)

// Symbolizer is one drawing instruction inside a rule.
type Symbolizer interface {
	symbolizer()
}

// Stroke draws line work.
type Stroke struct {
	Color   color.Color
	Width   float64
	Opacity float64
}

func (Stroke) symbolizer() {}

// NewStroke creates a stroke with full opacity.
func NewStroke(c color.Color, width float64) Stroke {
	return Stroke{Color: c, Width: width, Opacity: 1}
}

// Fill paints polygon interiors.
type Fill struct {
	Color   color.Color
	Opacity float64
}

func (Fill) symbolizer() {}

// NewFill creates a fill with full opacity.
func NewFill(c color.Color) Fill {
	return Fill{Color: c, Opacity: 1}
}

// Mark draws point symbols using a well-known shape name (circle, square,
// triangle, star, cross, x).
type Mark struct {
	Shape  string
	Size   float64
	Fill   *Fill
	Stroke *Stroke
}

func (Mark) symbolizer() {}

// Label draws text sourced from a feature property.
type Label struct {
	Property string
	Font     string
	Size     float64
	Color    color.Color
}

func (Label) symbolizer() {}

// Rule scopes symbolizers with an optional filter and scale range. A zero
// scale bound means unbounded.
type Rule struct {
	Name        string
	Title       string
	MinScale    float64
	MaxScale    float64
	Where       *filter.Filter
	Symbolizers []Symbolizer
}

// Style is a named, ordered list of rules.
type Style struct {
	Name  string
	Rules []Rule
}

// NewStyle creates a style from rules.
func NewStyle(name string, rules ...Rule) *Style {
	return &Style{Name: name, Rules: rules}
}

// Simple wraps a single symbolizer list in an unfiltered rule, the common
// scripting case.
func Simple(name string, symbolizers ...Symbolizer) *Style {
	return NewStyle(name, Rule{Name: name, Symbolizers: symbolizers})
}
