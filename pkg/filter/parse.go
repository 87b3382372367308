package filter

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/terrascript/terrascript/pkg/geometry"
)

// Parse parses a CQL expression into a Filter. The supported subset covers
// comparisons (=, <>, <, <=, >, >=), LIKE, BETWEEN, IS [NOT] NULL,
// [NOT] IN, AND/OR/NOT grouping, INCLUDE/EXCLUDE and the spatial operators
// INTERSECTS, CONTAINS and BBOX.
func Parse(cql string) (*Filter, error) {
	if strings.TrimSpace(cql) == "" {
		return nil, ErrEmptyFilter
	}
	p := &parser{input: cql}
	p.next()
	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.errorf("unexpected %q", p.tok.text)
	}
	return &Filter{root: root}, nil
}

// MustParse parses a CQL expression and panics on error. Intended for
// filter constants in scripts and tests.
func MustParse(cql string) *Filter {
	f, err := Parse(cql)
	if err != nil {
		panic(err)
	}
	return f
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString
	tokOp     // = <> < <= > >=
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

type parser struct {
	input string
	pos   int
	tok   token
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrSyntax, "at offset %d: "+format,
		append([]interface{}{p.tok.pos}, args...)...)
}

// next advances the lexer by one token.
func (p *parser) next() {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
	start := p.pos
	if p.pos >= len(p.input) {
		p.tok = token{kind: tokEOF, pos: start}
		return
	}

	c := p.input[p.pos]
	switch {
	case c == '(':
		p.pos++
		p.tok = token{kind: tokLParen, text: "(", pos: start}
	case c == ')':
		p.pos++
		p.tok = token{kind: tokRParen, text: ")", pos: start}
	case c == ',':
		p.pos++
		p.tok = token{kind: tokComma, text: ",", pos: start}
	case c == '=':
		p.pos++
		p.tok = token{kind: tokOp, text: "=", pos: start}
	case c == '<':
		p.pos++
		if p.pos < len(p.input) && p.input[p.pos] == '>' {
			p.pos++
			p.tok = token{kind: tokOp, text: "<>", pos: start}
		} else if p.pos < len(p.input) && p.input[p.pos] == '=' {
			p.pos++
			p.tok = token{kind: tokOp, text: "<=", pos: start}
		} else {
			p.tok = token{kind: tokOp, text: "<", pos: start}
		}
	case c == '>':
		p.pos++
		if p.pos < len(p.input) && p.input[p.pos] == '=' {
			p.pos++
			p.tok = token{kind: tokOp, text: ">=", pos: start}
		} else {
			p.tok = token{kind: tokOp, text: ">", pos: start}
		}
	case c == '!':
		p.pos++
		if p.pos < len(p.input) && p.input[p.pos] == '=' {
			p.pos++
			p.tok = token{kind: tokOp, text: "<>", pos: start}
		} else {
			p.tok = token{kind: tokOp, text: "!", pos: start}
		}
	case c == '\'':
		p.pos++
		var b strings.Builder
		for p.pos < len(p.input) {
			if p.input[p.pos] == '\'' {
				// '' escapes a single quote inside the literal
				if p.pos+1 < len(p.input) && p.input[p.pos+1] == '\'' {
					b.WriteByte('\'')
					p.pos += 2
					continue
				}
				p.pos++
				p.tok = token{kind: tokString, text: b.String(), pos: start}
				return
			}
			b.WriteByte(p.input[p.pos])
			p.pos++
		}
		p.tok = token{kind: tokEOF, text: b.String(), pos: start}
	case c == '-' || c == '.' || (c >= '0' && c <= '9'):
		for p.pos < len(p.input) && (isDigit(p.input[p.pos]) || p.input[p.pos] == '.' ||
			p.input[p.pos] == '-' || p.input[p.pos] == '+' ||
			p.input[p.pos] == 'e' || p.input[p.pos] == 'E') {
			p.pos++
		}
		text := p.input[start:p.pos]
		n, err := strconv.ParseFloat(text, 64)
		if err != nil {
			p.tok = token{kind: tokIdent, text: text, pos: start}
			return
		}
		p.tok = token{kind: tokNumber, text: text, num: n, pos: start}
	default:
		for p.pos < len(p.input) && isIdentChar(p.input[p.pos]) {
			p.pos++
		}
		if p.pos == start {
			p.pos++
		}
		p.tok = token{kind: tokIdent, text: p.input[start:p.pos], pos: start}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentChar(c byte) bool {
	return c == '_' || c == '.' || c == ':' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || isDigit(c)
}

func (p *parser) keyword() string {
	if p.tok.kind != tokIdent {
		return ""
	}
	return strings.ToUpper(p.tok.text)
}

func (p *parser) parseOr() (node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	children := []node{left}
	for p.keyword() == "OR" {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		children = append(children, right)
	}
	if len(children) == 1 {
		return left, nil
	}
	return logicNode{op: "OR", children: children}, nil
}

func (p *parser) parseAnd() (node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	children := []node{left}
	for p.keyword() == "AND" {
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		children = append(children, right)
	}
	if len(children) == 1 {
		return left, nil
	}
	return logicNode{op: "AND", children: children}, nil
}

func (p *parser) parseFactor() (node, error) {
	switch p.keyword() {
	case "NOT":
		p.next()
		child, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return notNode{child: child}, nil
	case "INCLUDE":
		p.next()
		return constantNode{include: true}, nil
	case "EXCLUDE":
		p.next()
		return constantNode{include: false}, nil
	case "INTERSECTS", "CONTAINS":
		return p.parseSpatial(p.keyword())
	case "BBOX":
		return p.parseBBox()
	}

	if p.tok.kind == tokLParen {
		p.next()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, p.errorf("expected ')', got %q", p.tok.text)
		}
		p.next()
		return inner, nil
	}

	return p.parsePredicate()
}

// parsePredicate handles everything starting with a property name.
func (p *parser) parsePredicate() (node, error) {
	if p.tok.kind != tokIdent {
		return nil, p.errorf("expected property name, got %q", p.tok.text)
	}
	prop := p.tok.text
	p.next()

	negate := false
	if p.keyword() == "NOT" {
		negate = true
		p.next()
	}

	switch {
	case p.tok.kind == tokOp && !negate:
		op := p.tok.text
		p.next()
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		return compareNode{prop: prop, op: op, lit: lit}, nil

	case p.keyword() == "LIKE":
		p.next()
		if p.tok.kind != tokString {
			return nil, p.errorf("LIKE expects a string pattern, got %q", p.tok.text)
		}
		n := node(likeNode{prop: prop, pattern: p.tok.text})
		p.next()
		if negate {
			n = notNode{child: n}
		}
		return n, nil

	case p.keyword() == "BETWEEN":
		p.next()
		lo, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		if p.keyword() != "AND" {
			return nil, p.errorf("BETWEEN expects AND, got %q", p.tok.text)
		}
		p.next()
		hi, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		n := node(betweenNode{prop: prop, lo: lo, hi: hi})
		if negate {
			n = notNode{child: n}
		}
		return n, nil

	case p.keyword() == "IS" && !negate:
		p.next()
		neg := false
		if p.keyword() == "NOT" {
			neg = true
			p.next()
		}
		if p.keyword() != "NULL" {
			return nil, p.errorf("IS expects NULL, got %q", p.tok.text)
		}
		p.next()
		return nullNode{prop: prop, negate: neg}, nil

	case p.keyword() == "IN":
		p.next()
		if p.tok.kind != tokLParen {
			return nil, p.errorf("IN expects '(', got %q", p.tok.text)
		}
		p.next()
		var values []literal
		for {
			lit, err := p.parseLiteral()
			if err != nil {
				return nil, err
			}
			values = append(values, lit)
			if p.tok.kind == tokComma {
				p.next()
				continue
			}
			break
		}
		if p.tok.kind != tokRParen {
			return nil, p.errorf("IN expects ')', got %q", p.tok.text)
		}
		p.next()
		return inNode{prop: prop, values: values, negate: negate}, nil
	}

	return nil, p.errorf("unexpected %q after property %q", p.tok.text, prop)
}

func (p *parser) parseLiteral() (literal, error) {
	switch p.tok.kind {
	case tokNumber:
		lit := numLiteral(p.tok.num)
		p.next()
		return lit, nil
	case tokString:
		lit := strLiteral(p.tok.text)
		p.next()
		return lit, nil
	default:
		return literal{}, p.errorf("expected literal, got %q", p.tok.text)
	}
}

// parseSpatial handles INTERSECTS(prop, WKT) and CONTAINS(prop, WKT). The
// geometry literal is captured raw up to the closing parenthesis and handed
// to the WKT parser.
func (p *parser) parseSpatial(kind string) (node, error) {
	p.next()
	if p.tok.kind != tokLParen {
		return nil, p.errorf("%s expects '(', got %q", kind, p.tok.text)
	}
	p.next()
	if p.tok.kind != tokIdent {
		return nil, p.errorf("%s expects a property name, got %q", kind, p.tok.text)
	}
	prop := p.tok.text
	p.next()
	if p.tok.kind != tokComma {
		return nil, p.errorf("%s expects ',', got %q", kind, p.tok.text)
	}

	// Capture the WKT literal verbatim: everything up to the parenthesis
	// that closes the spatial function call.
	depth := 1
	start := p.pos
	end := -1
	for i := p.pos; i < len(p.input); i++ {
		switch p.input[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				end = i
			}
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return nil, p.errorf("%s is missing a closing ')'", kind)
	}
	raw := strings.TrimSpace(p.input[start:end])
	g, err := geometry.FromWKT(raw)
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "%s has an invalid geometry literal: %v", kind, err)
	}

	p.pos = end + 1
	p.next()
	return spatialNode{kind: kind, prop: prop, geom: g}, nil
}

// parseBBox handles BBOX(prop, minx, miny, maxx, maxy).
func (p *parser) parseBBox() (node, error) {
	p.next()
	if p.tok.kind != tokLParen {
		return nil, p.errorf("BBOX expects '(', got %q", p.tok.text)
	}
	p.next()
	if p.tok.kind != tokIdent {
		return nil, p.errorf("BBOX expects a property name, got %q", p.tok.text)
	}
	prop := p.tok.text
	p.next()

	coords := make([]float64, 0, 4)
	for len(coords) < 4 {
		if p.tok.kind != tokComma {
			return nil, p.errorf("BBOX expects ',', got %q", p.tok.text)
		}
		p.next()
		if p.tok.kind != tokNumber {
			return nil, p.errorf("BBOX expects a number, got %q", p.tok.text)
		}
		coords = append(coords, p.tok.num)
		p.next()
	}
	if p.tok.kind != tokRParen {
		return nil, p.errorf("BBOX expects ')', got %q", p.tok.text)
	}
	p.next()

	b := orbBound(coords[0], coords[1], coords[2], coords[3])
	return spatialNode{kind: "BBOX", prop: prop, geom: b}, nil
}

func orbBound(minx, miny, maxx, maxy float64) orb.Bound {
	return orb.Bound{Min: orb.Point{minx, miny}, Max: orb.Point{maxx, maxy}}
}
