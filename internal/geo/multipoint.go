package geo

import (
	"slices"

	"github.com/valyala/fastjson"
)

// MultiPoint is an ordered collection of positions. It may be empty when
// built in code; a decoded MultiPoint has at least one position.
type MultiPoint struct {
	positions []Position
}

func NewMultiPoint(positions []Position) MultiPoint {
	return MultiPoint{positions: slices.Clone(positions)}
}

func (MultiPoint) Type() Type { return TypeMultiPoint }
func (MultiPoint) geometry()  {}

// Append returns a copy of m with ps added.
func (m MultiPoint) Append(ps ...Position) MultiPoint {
	return MultiPoint{positions: append(slices.Clone(m.positions), ps...)}
}

func (m MultiPoint) Positions() []Position {
	return slices.Clone(m.positions)
}

// Points returns every position wrapped as a Point.
func (m MultiPoint) Points() []Point {
	points := make([]Point, len(m.positions))
	for i, p := range m.positions {
		points[i] = NewPoint(p)
	}
	return points
}

func (m MultiPoint) Len() int {
	return len(m.positions)
}

func (m MultiPoint) Equal(g Geometry) bool {
	o, ok := g.(MultiPoint)
	return ok && equalPositions(m.positions, o.positions)
}

func (m MultiPoint) Hash() uint64 {
	h := newHasher(TypeMultiPoint)
	hashPositions(h, m.positions)
	return h.sum()
}

// DecodeMultiPoint reads a {"type":"MultiPoint"} object.
func DecodeMultiPoint(v *fastjson.Value) (MultiPoint, error) {
	if _, err := typedCoordinates(v, TypeMultiPoint); err != nil {
		return MultiPoint{}, err
	}
	positions, err := decodePositionList(v.Get(fieldCoordinates), 1, ErrMultiPointEmpty)
	if err != nil {
		return MultiPoint{}, at(err, fieldCoordinates)
	}
	return MultiPoint{positions: positions}, nil
}

func (m MultiPoint) Encode(a *fastjson.Arena) *fastjson.Value {
	return encodeTyped(a, TypeMultiPoint, encodePositions(a, m.positions))
}

func (m MultiPoint) MarshalJSON() ([]byte, error) {
	return marshal(m), nil
}

func (m *MultiPoint) UnmarshalJSON(data []byte) error {
	v, err := parseDocument(data)
	if err != nil {
		return err
	}
	decoded, err := DecodeMultiPoint(v)
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}

func (m MultiPoint) String() string {
	return string(marshal(m))
}
