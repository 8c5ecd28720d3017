// Package geo is a validated, immutable GeoJSON value model with a JSON codec.
//
// Every constructor and decoder checks its invariants eagerly, so a value that
// exists is valid. Failures are *ValidationError values wrapping a package
// sentinel.
package geo

import (
	"github.com/valyala/fastjson"
)

// Geometry is one of Point, LineString, LinearRing, Polygon, MultiPoint,
// MultiLineString or MultiPolygon. The set is closed.
type Geometry interface {
	Encoder
	Type() Type
	Equal(Geometry) bool
	Hash() uint64
	MarshalJSON() ([]byte, error)

	geometry()
}

// Object is anything Parse can return: a Geometry, a Feature or a
// FeatureCollection.
type Object interface {
	Encoder
	Type() Type
	Hash() uint64
	MarshalJSON() ([]byte, error)
}

var (
	_ Geometry = Point{}
	_ Geometry = LineString{}
	_ Geometry = LinearRing{}
	_ Geometry = Polygon{}
	_ Geometry = MultiPoint{}
	_ Geometry = MultiLineString{}
	_ Geometry = MultiPolygon{}

	_ Object = Feature{}
	_ Object = FeatureCollection{}
)

// DecodeGeometry dispatches on the discriminator of v.
func DecodeGeometry(v *fastjson.Value) (Geometry, error) {
	t, err := readType(v)
	if err != nil {
		return nil, err
	}

	switch t {
	case TypePoint:
		return DecodePoint(v)
	case TypeLineString:
		return DecodeLineString(v)
	case TypePolygon:
		return DecodePolygon(v)
	case TypeMultiPoint:
		return DecodeMultiPoint(v)
	case TypeMultiLineString:
		return DecodeMultiLineString(v)
	case TypeMultiPolygon:
		return DecodeMultiPolygon(v)
	case TypeGeometryCollection:
		return nil, at(invalid(ErrTypeUnsupported, t), fieldType)
	default:
		return nil, at(invalid(ErrTypeNotValid, t.String()+", expected a geometry"), fieldType)
	}
}

// Decode dispatches on the discriminator of v and accepts any known object.
func Decode(v *fastjson.Value) (Object, error) {
	t, err := readType(v)
	if err != nil {
		return nil, err
	}

	switch t {
	case TypeFeature:
		return DecodeFeature(v)
	case TypeFeatureCollection:
		return DecodeFeatureCollection(v)
	default:
		return DecodeGeometry(v)
	}
}

// Parse decodes a GeoJSON document.
func Parse(data []byte) (Object, error) {
	v, err := parseDocument(data)
	if err != nil {
		return nil, err
	}
	return Decode(v)
}

// ParseGeometry decodes a GeoJSON geometry document.
func ParseGeometry(data []byte) (Geometry, error) {
	v, err := parseDocument(data)
	if err != nil {
		return nil, err
	}
	return DecodeGeometry(v)
}

// Equal compares two objects structurally.
func Equal(a, b Object) bool {
	switch x := a.(type) {
	case Geometry:
		y, ok := b.(Geometry)
		return ok && x.Equal(y)
	case Feature:
		y, ok := b.(Feature)
		return ok && x.Equal(y)
	case FeatureCollection:
		y, ok := b.(FeatureCollection)
		return ok && x.Equal(y)
	}
	return false
}

// Polygons returns every polygon contained in o, in document order.
func Polygons(o Object) []Polygon {
	var out []Polygon
	Walk(o, func(g Geometry) {
		switch x := g.(type) {
		case Polygon:
			out = append(out, x)
		case MultiPolygon:
			out = append(out, x.polygons...)
		}
	})
	return out
}

// Walk calls fn for every geometry in o, in document order.
func Walk(o Object, fn func(Geometry)) {
	switch x := o.(type) {
	case Geometry:
		fn(x)
	case Feature:
		fn(x.geometry)
	case FeatureCollection:
		for _, f := range x.features {
			fn(f.geometry)
		}
	}
}
