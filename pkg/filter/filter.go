// Copyright (c) 2025 Terrascript Authors
// Licensed under the MIT License

// Package filter provides a CQL and OGC Filter XML wrapper: a predicate
// over feature attributes and geometry that can be parsed from CQL text,
// evaluated against features and re-encoded as CQL or ogc:Filter XML.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/terrascript/terrascript/pkg/geometry"
)

var (
	ErrEmptyFilter = errors.New("empty filter")
	ErrSyntax      = errors.New("filter syntax error")
)

// Filter is a parsed predicate over feature attributes and geometry.
type Filter struct {
	root node
}

// Include returns the filter that matches every feature.
func Include() *Filter {
	return &Filter{root: constantNode{true}}
}

// Exclude returns the filter that matches no feature.
func Exclude() *Filter {
	return &Filter{root: constantNode{false}}
}

// And combines filters so all must match.
func And(filters ...*Filter) *Filter {
	return combine("AND", filters)
}

// Or combines filters so any may match.
func Or(filters ...*Filter) *Filter {
	return combine("OR", filters)
}

// Not inverts a filter.
func Not(f *Filter) *Filter {
	return &Filter{root: notNode{f.root}}
}

func combine(op string, filters []*Filter) *Filter {
	children := make([]node, len(filters))
	for i, f := range filters {
		children[i] = f.root
	}
	return &Filter{root: logicNode{op: op, children: children}}
}

// CQL renders the filter back as CQL text.
func (f *Filter) CQL() string {
	if f == nil || f.root == nil {
		return ""
	}
	return f.root.cql()
}

// String is the CQL rendering.
func (f *Filter) String() string {
	return f.CQL()
}

// node is one predicate in the filter tree.
type node interface {
	cql() string
}

// constantNode is INCLUDE or EXCLUDE.
type constantNode struct {
	include bool
}

func (n constantNode) cql() string {
	if n.include {
		return "INCLUDE"
	}
	return "EXCLUDE"
}

// logicNode is an AND or OR over two or more children.
type logicNode struct {
	op       string
	children []node
}

func (n logicNode) cql() string {
	parts := make([]string, len(n.children))
	for i, c := range n.children {
		s := c.cql()
		if child, ok := c.(logicNode); ok && child.op != n.op {
			s = "(" + s + ")"
		}
		parts[i] = s
	}
	return strings.Join(parts, " "+n.op+" ")
}

type notNode struct {
	child node
}

func (n notNode) cql() string {
	return "NOT (" + n.child.cql() + ")"
}

// compareNode is a binary comparison against a literal.
type compareNode struct {
	prop string
	op   string // = <> < <= > >=
	lit  literal
}

func (n compareNode) cql() string {
	return fmt.Sprintf("%s %s %s", n.prop, n.op, n.lit.cql())
}

type likeNode struct {
	prop    string
	pattern string
}

func (n likeNode) cql() string {
	return fmt.Sprintf("%s LIKE %s", n.prop, quote(n.pattern))
}

type betweenNode struct {
	prop   string
	lo, hi literal
}

func (n betweenNode) cql() string {
	return fmt.Sprintf("%s BETWEEN %s AND %s", n.prop, n.lo.cql(), n.hi.cql())
}

type nullNode struct {
	prop   string
	negate bool
}

func (n nullNode) cql() string {
	if n.negate {
		return n.prop + " IS NOT NULL"
	}
	return n.prop + " IS NULL"
}

type inNode struct {
	prop   string
	values []literal
	negate bool
}

func (n inNode) cql() string {
	parts := make([]string, len(n.values))
	for i, v := range n.values {
		parts[i] = v.cql()
	}
	op := "IN"
	if n.negate {
		op = "NOT IN"
	}
	return fmt.Sprintf("%s %s (%s)", n.prop, op, strings.Join(parts, ", "))
}

// spatialNode is INTERSECTS, CONTAINS or BBOX over the geometry slot.
type spatialNode struct {
	kind string // INTERSECTS CONTAINS BBOX
	prop string
	geom orb.Geometry
}

func (n spatialNode) cql() string {
	if n.kind == "BBOX" {
		b := n.geom.Bound()
		return fmt.Sprintf("BBOX(%s, %s, %s, %s, %s)", n.prop,
			formatNum(b.Min[0]), formatNum(b.Min[1]), formatNum(b.Max[0]), formatNum(b.Max[1]))
	}
	return fmt.Sprintf("%s(%s, %s)", n.kind, n.prop, wktOf(n.geom))
}

// literal is a string or numeric constant.
type literal struct {
	text  string
	num   float64
	isNum bool
}

func numLiteral(v float64) literal {
	return literal{num: v, isNum: true, text: formatNum(v)}
}

func strLiteral(s string) literal {
	return literal{text: s}
}

func (l literal) cql() string {
	if l.isNum {
		return formatNum(l.num)
	}
	return quote(l.text)
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func wktOf(g orb.Geometry) string {
	return geometry.ToWKT(g)
}
