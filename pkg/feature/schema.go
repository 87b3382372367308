// Copyright (c) 2025 Terrascript Authors
// Licensed under the MIT License

package feature

import (
	"fmt"
	"sort"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

var ErrNoSuchField = errors.New("no such field")

// Schema is an ordered set of typed field definitions describing the shape
// of a Feature.
type Schema struct {
	Name   string
	Fields []Field
}

// NewSchema creates a schema from ordered fields.
func NewSchema(name string, fields ...Field) *Schema {
	return &Schema{Name: name, Fields: fields}
}

// Get returns the field with the given name.
func (s *Schema) Get(name string) (Field, error) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, nil
		}
	}
	return Field{}, errors.Wrapf(ErrNoSuchField, "schema %q has no field %q", s.Name, name)
}

// Has reports whether the schema defines the named field.
func (s *Schema) Has(name string) bool {
	_, err := s.Get(name)
	return err == nil
}

// Geom returns the first geometry field of the schema, if any.
func (s *Schema) Geom() (Field, bool) {
	for _, f := range s.Fields {
		if f.IsGeometry() {
			return f, true
		}
	}
	return Field{}, false
}

// FieldNames returns the field names in schema order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// String renders the schema as "name fields:[n1: T1, n2: T2]".
func (s *Schema) String() string {
	parts := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		parts[i] = f.String()
	}
	return fmt.Sprintf("%s fields:[%s]", s.Name, strings.Join(parts, ", "))
}

// InferSchema builds a schema from a sample attribute map. Attribute keys
// are sorted so the inferred field order is stable; a geometry value becomes
// a field typed with its simple features name.
func InferSchema(name string, sample map[string]interface{}) *Schema {
	keys := make([]string, 0, len(sample))
	for k := range sample {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, Field{Name: k, Type: inferType(sample[k])})
	}
	return &Schema{Name: name, Fields: fields}
}

func inferType(v interface{}) string {
	switch t := v.(type) {
	case string:
		return TypeString
	case int, int32, int64:
		return TypeInt
	case float32, float64:
		return TypeFloat
	case bool:
		return TypeBool
	case orb.Geometry:
		return NormalizeType(t.GeoJSONType())
	default:
		return TypeString
	}
}
