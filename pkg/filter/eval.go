package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/terrascript/terrascript/pkg/feature"
	"github.com/terrascript/terrascript/pkg/geometry"
)

// Evaluate reports whether the feature matches the filter. A nil filter
// matches everything.
func (f *Filter) Evaluate(ft *feature.Feature) bool {
	if f == nil || f.root == nil {
		return true
	}
	return eval(f.root, ft)
}

func eval(n node, ft *feature.Feature) bool {
	switch v := n.(type) {
	case constantNode:
		return v.include
	case logicNode:
		if v.op == "AND" {
			for _, c := range v.children {
				if !eval(c, ft) {
					return false
				}
			}
			return true
		}
		for _, c := range v.children {
			if eval(c, ft) {
				return true
			}
		}
		return false
	case notNode:
		return !eval(v.child, ft)
	case compareNode:
		return evalCompare(v, ft)
	case likeNode:
		return evalLike(v, ft)
	case betweenNode:
		lo := compareNode{prop: v.prop, op: ">=", lit: v.lo}
		hi := compareNode{prop: v.prop, op: "<=", lit: v.hi}
		return evalCompare(lo, ft) && evalCompare(hi, ft)
	case nullNode:
		isNull := !ft.Has(v.prop) || ft.Get(v.prop) == nil
		return isNull != v.negate
	case inNode:
		matched := false
		for _, lit := range v.values {
			if evalCompare(compareNode{prop: v.prop, op: "=", lit: lit}, ft) {
				matched = true
				break
			}
		}
		return matched != v.negate
	case spatialNode:
		return evalSpatial(v, ft)
	}
	return false
}

func evalCompare(n compareNode, ft *feature.Feature) bool {
	val := ft.Get(n.prop)
	if val == nil {
		return false
	}

	// Numeric comparison when both sides coerce, string comparison
	// otherwise.
	if fv, ok := asFloat(val); ok && n.lit.isNum {
		return cmpOrdered(fv, n.lit.num, n.op)
	}
	sv := asString(val)
	lv := n.lit.text
	if n.lit.isNum {
		lv = formatNum(n.lit.num)
	}
	return cmpOrdered(sv, lv, n.op)
}

func cmpOrdered[T string | float64](a, b T, op string) bool {
	switch op {
	case "=":
		return a == b
	case "<>":
		return a != b
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	}
	return false
}

func evalLike(n likeNode, ft *feature.Feature) bool {
	val := ft.Get(n.prop)
	if val == nil {
		return false
	}
	re, err := likeRegexp(n.pattern)
	if err != nil {
		return false
	}
	return re.MatchString(asString(val))
}

// likeRegexp translates a CQL LIKE pattern into a regular expression:
// % matches any run, _ matches a single character.
func likeRegexp(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '%':
			b.WriteString(".*")
		case '_':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}

func evalSpatial(n spatialNode, ft *feature.Feature) bool {
	var g orb.Geometry
	if v := ft.Get(n.prop); v != nil {
		if og, ok := v.(orb.Geometry); ok {
			g = og
		}
	}
	if g == nil {
		g = ft.Geometry()
	}
	if g == nil {
		return false
	}

	switch n.kind {
	case "BBOX", "INTERSECTS":
		return geometry.Intersects(n.geom, g)
	case "CONTAINS":
		if pt, ok := g.(orb.Point); ok {
			return geometry.Contains(n.geom, pt)
		}
		return n.geom.Bound().Contains(g.Bound().Min) && n.geom.Bound().Contains(g.Bound().Max)
	}
	return false
}

func asFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func asString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
