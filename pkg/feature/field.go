package feature

import "fmt"

// Field types understood by a Schema. Geometry types mirror the simple
// features names used by the wrapped engine.
const (
	TypeString     = "String"
	TypeInt        = "Int"
	TypeFloat      = "Float"
	TypeBool       = "Bool"
	TypeGeometry   = "Geometry"
	TypePoint      = "Point"
	TypeMultiPoint = "MultiPoint"
	TypeLineString = "LineString"
	TypeMultiLine  = "MultiLineString"
	TypePolygon    = "Polygon"
	TypeMultiPoly  = "MultiPolygon"
)

// Field is a single named, typed slot in a Schema.
type Field struct {
	Name string
	Type string
}

// NewField creates a Field with a normalized type name.
func NewField(name, typ string) Field {
	return Field{Name: name, Type: NormalizeType(typ)}
}

// IsGeometry reports whether the field holds a geometry.
func (f Field) IsGeometry() bool {
	switch f.Type {
	case TypeGeometry, TypePoint, TypeMultiPoint, TypeLineString, TypeMultiLine, TypePolygon, TypeMultiPoly:
		return true
	}
	return false
}

// String renders the field as "name: Type".
func (f Field) String() string {
	return fmt.Sprintf("%s: %s", f.Name, f.Type)
}

// NormalizeType maps loose type spellings (go names, lowercase simple
// features names) onto the canonical field type names.
func NormalizeType(typ string) string {
	switch typ {
	case "str", "string", TypeString:
		return TypeString
	case "int", "int32", "int64", "long", "short", "Integer", "Long", "Short", TypeInt:
		return TypeInt
	case "float", "float32", "float64", "double", "Double", "Float64", TypeFloat:
		return TypeFloat
	case "bool", "boolean", "Boolean", TypeBool:
		return TypeBool
	case "geometry", "geom", TypeGeometry:
		return TypeGeometry
	case "point", TypePoint:
		return TypePoint
	case "multipoint", TypeMultiPoint:
		return TypeMultiPoint
	case "linestring", "line", TypeLineString:
		return TypeLineString
	case "multilinestring", "multiline", TypeMultiLine:
		return TypeMultiLine
	case "polygon", TypePolygon:
		return TypePolygon
	case "multipolygon", TypeMultiPoly:
		return TypeMultiPoly
	default:
		return typ
	}
}
