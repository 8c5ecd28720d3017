package geo

import (
	"fmt"
	"strings"

	"github.com/valyala/fastjson"
)

// Type is the value of the "type" discriminator member.
type Type string

// Known GeoJSON object types.
const (
	TypeFeature            Type = "Feature"
	TypeFeatureCollection  Type = "FeatureCollection"
	TypePoint              Type = "Point"
	TypeLineString         Type = "LineString"
	TypePolygon            Type = "Polygon"
	TypeMultiPoint         Type = "MultiPoint"
	TypeMultiLineString    Type = "MultiLineString"
	TypeMultiPolygon       Type = "MultiPolygon"
	TypeGeometryCollection Type = "GeometryCollection"
)

// Types lists every known type in a stable order.
var Types = []Type{
	TypeFeature,
	TypeFeatureCollection,
	TypePoint,
	TypeLineString,
	TypePolygon,
	TypeMultiPoint,
	TypeMultiLineString,
	TypeMultiPolygon,
	TypeGeometryCollection,
}

// ParseType trims s and returns the matching known type.
// Matching is case-sensitive.
func ParseType(s string) (Type, error) {
	t := Type(strings.TrimSpace(s))
	if !t.IsValid() {
		return "", invalid(ErrTypeUnknown, s)
	}
	return t, nil
}

func (t Type) String() string {
	return string(t)
}

// IsValid reports whether t is a known type.
func (t Type) IsValid() bool {
	for _, k := range Types {
		if k == t {
			return true
		}
	}
	return false
}

// IsGeometry reports whether t names a geometry rather than a Feature or
// FeatureCollection.
func (t Type) IsGeometry() bool {
	return t.IsValid() && t != TypeFeature && t != TypeFeatureCollection
}

// readType extracts the discriminator of an object without checking it
// against an expected value.
func readType(v *fastjson.Value) (Type, error) {
	if v == nil || v.Type() != fastjson.TypeObject {
		return "", invalid(ErrNotObject, nil)
	}
	raw := v.Get(fieldType)
	if raw == nil {
		return "", at(invalid(ErrTypeNotDefined, nil), fieldType)
	}
	if raw.Type() == fastjson.TypeNull {
		return "", at(invalid(ErrTypeEmpty, nil), fieldType)
	}
	if raw.Type() != fastjson.TypeString {
		return "", at(invalid(ErrTypeNotValid, raw.String()), fieldType)
	}
	s := string(raw.GetStringBytes())
	if strings.TrimSpace(s) == "" {
		return "", at(invalid(ErrTypeEmpty, nil), fieldType)
	}
	t, err := ParseType(s)
	if err != nil {
		return "", at(err, fieldType)
	}
	return t, nil
}

// expectType fails unless the discriminator of v is exactly want.
func expectType(v *fastjson.Value, want Type) error {
	t, err := readType(v)
	if err != nil {
		return err
	}
	if t != want {
		return at(invalid(ErrTypeNotValid, fmt.Sprintf("%s, expected %s", t, want)), fieldType)
	}
	return nil
}
