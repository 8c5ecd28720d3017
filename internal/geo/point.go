package geo

import (
	"github.com/valyala/fastjson"
)

// Point is a geometry holding a single position.
type Point struct {
	position Position
}

func NewPoint(p Position) Point {
	return Point{position: p}
}

// NewPointLonLat validates the coordinates and returns a two-dimensional point.
func NewPointLonLat(lon, lat float64) (Point, error) {
	p, err := NewPosition(lon, lat)
	if err != nil {
		return Point{}, err
	}
	return Point{position: p}, nil
}

func (Point) Type() Type { return TypePoint }
func (Point) geometry()  {}

func (p Point) Position() Position {
	return p.position
}

func (p Point) Equal(g Geometry) bool {
	o, ok := g.(Point)
	return ok && p.position.Equal(o.position)
}

func (p Point) Hash() uint64 {
	h := newHasher(TypePoint)
	p.position.hashInto(h)
	return h.sum()
}

// DecodePoint reads a {"type":"Point"} object.
func DecodePoint(v *fastjson.Value) (Point, error) {
	if _, err := typedCoordinates(v, TypePoint); err != nil {
		return Point{}, err
	}
	pos, err := DecodePosition(v.Get(fieldCoordinates))
	if err != nil {
		return Point{}, at(err, fieldCoordinates)
	}
	return Point{position: pos}, nil
}

func (p Point) Encode(a *fastjson.Arena) *fastjson.Value {
	return encodeTyped(a, TypePoint, p.position.Encode(a))
}

func (p Point) MarshalJSON() ([]byte, error) {
	return marshal(p), nil
}

func (p *Point) UnmarshalJSON(data []byte) error {
	v, err := parseDocument(data)
	if err != nil {
		return err
	}
	decoded, err := DecodePoint(v)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

func (p Point) String() string {
	return string(marshal(p))
}
