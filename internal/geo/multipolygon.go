package geo

import (
	"slices"

	"github.com/valyala/fastjson"
)

// MultiPolygon is a non-empty ordered collection of polygons.
type MultiPolygon struct {
	polygons []Polygon
}

func NewMultiPolygon(polygons []Polygon) (MultiPolygon, error) {
	if len(polygons) == 0 {
		return MultiPolygon{}, invalid(ErrMultiPolygonEmpty, 0)
	}
	for i, p := range polygons {
		if err := requireRing(p.exterior); err != nil {
			return MultiPolygon{}, atIndex(err, "", i)
		}
	}
	return MultiPolygon{polygons: slices.Clone(polygons)}, nil
}

func (MultiPolygon) Type() Type { return TypeMultiPolygon }
func (MultiPolygon) geometry()  {}

// Append returns a copy of m with p added.
func (m MultiPolygon) Append(p Polygon) (MultiPolygon, error) {
	if err := requireRing(p.exterior); err != nil {
		return MultiPolygon{}, err
	}
	return MultiPolygon{polygons: append(slices.Clone(m.polygons), p)}, nil
}

func (m MultiPolygon) Polygons() []Polygon {
	return slices.Clone(m.polygons)
}

func (m MultiPolygon) NumberOfPolygons() int {
	return len(m.polygons)
}

func (m MultiPolygon) Equal(g Geometry) bool {
	o, ok := g.(MultiPolygon)
	if !ok {
		return false
	}
	return slices.EqualFunc(m.polygons, o.polygons, Polygon.equal)
}

func (m MultiPolygon) Hash() uint64 {
	h := newHasher(TypeMultiPolygon)
	h.u64(uint64(len(m.polygons)))
	for _, p := range m.polygons {
		p.hashInto(h)
	}
	return h.sum()
}

// DecodeMultiPolygon reads a {"type":"MultiPolygon"} object.
func DecodeMultiPolygon(v *fastjson.Value) (MultiPolygon, error) {
	if _, err := typedCoordinates(v, TypeMultiPolygon); err != nil {
		return MultiPolygon{}, err
	}
	items, err := nestedArrays(v.Get(fieldCoordinates))
	if err != nil {
		return MultiPolygon{}, at(err, fieldCoordinates)
	}
	if len(items) == 0 {
		return MultiPolygon{}, at(invalid(ErrMultiPolygonEmpty, 0), fieldCoordinates)
	}
	polygons := make([]Polygon, len(items))
	for i, item := range items {
		p, err := DecodePolygonCoordinates(item)
		if err != nil {
			return MultiPolygon{}, atIndex(err, fieldCoordinates, i)
		}
		polygons[i] = p
	}
	return MultiPolygon{polygons: polygons}, nil
}

func (m MultiPolygon) Encode(a *fastjson.Arena) *fastjson.Value {
	arr := a.NewArray()
	for i, p := range m.polygons {
		arr.SetArrayItem(i, p.encodeCoordinates(a))
	}
	return encodeTyped(a, TypeMultiPolygon, arr)
}

func (m MultiPolygon) MarshalJSON() ([]byte, error) {
	return marshal(m), nil
}

func (m *MultiPolygon) UnmarshalJSON(data []byte) error {
	v, err := parseDocument(data)
	if err != nil {
		return err
	}
	decoded, err := DecodeMultiPolygon(v)
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}

func (m MultiPolygon) String() string {
	return string(marshal(m))
}
