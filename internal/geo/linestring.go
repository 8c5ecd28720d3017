package geo

import (
	"slices"

	"github.com/valyala/fastjson"
)

// LineString is an ordered sequence of at least two positions.
type LineString struct {
	positions []Position
}

// NewLineString copies positions into a new LineString.
func NewLineString(positions []Position) (LineString, error) {
	if len(positions) < 2 {
		return LineString{}, invalid(ErrLineStringTooShort, len(positions))
	}
	return LineString{positions: slices.Clone(positions)}, nil
}

func (LineString) Type() Type { return TypeLineString }
func (LineString) geometry()  {}

// Position returns the position at index i. It panics if i is out of range.
func (l LineString) Position(i int) Position {
	return l.positions[i]
}

// Positions returns a copy of the positions.
func (l LineString) Positions() []Position {
	return slices.Clone(l.positions)
}

func (l LineString) Len() int {
	return len(l.positions)
}

// Append returns a new LineString with ps added at the end. The result must
// still hold at least two positions.
func (l LineString) Append(ps ...Position) (LineString, error) {
	return NewLineString(append(slices.Clone(l.positions), ps...))
}

// Equal reports whether g is a LineString or a LinearRing with the same
// positions.
func (l LineString) Equal(g Geometry) bool {
	switch o := g.(type) {
	case LineString:
		return equalPositions(l.positions, o.positions)
	case LinearRing:
		return equalPositions(l.positions, o.line.positions)
	}
	return false
}

func (l LineString) Hash() uint64 {
	h := newHasher(TypeLineString)
	hashPositions(h, l.positions)
	return h.sum()
}

func equalPositions(a, b []Position) bool {
	return slices.EqualFunc(a, b, Position.Equal)
}

func hashPositions(h *hasher, ps []Position) {
	h.u64(uint64(len(ps)))
	for _, p := range ps {
		p.hashInto(h)
	}
}

// decodePositionList decodes an array of position arrays holding at least minLen
// elements. tooShort is reported when the count is below minLen.
func decodePositionList(v *fastjson.Value, minLen int, tooShort error) ([]Position, error) {
	items, err := nestedArrays(v)
	if err != nil {
		return nil, err
	}
	if len(items) < minLen {
		return nil, invalid(tooShort, len(items))
	}
	positions := make([]Position, len(items))
	for i, item := range items {
		p, err := DecodePosition(item)
		if err != nil {
			return nil, atIndex(err, "", i)
		}
		positions[i] = p
	}
	return positions, nil
}

// DecodeLineStringCoordinates reads a LineString from a bare coordinates array.
func DecodeLineStringCoordinates(v *fastjson.Value) (LineString, error) {
	positions, err := decodePositionList(v, 2, ErrLineStringTooShort)
	if err != nil {
		return LineString{}, err
	}
	return LineString{positions: positions}, nil
}

// DecodeLineString reads a {"type":"LineString"} object.
func DecodeLineString(v *fastjson.Value) (LineString, error) {
	if _, err := typedCoordinates(v, TypeLineString); err != nil {
		return LineString{}, err
	}
	l, err := DecodeLineStringCoordinates(v.Get(fieldCoordinates))
	if err != nil {
		return LineString{}, at(err, fieldCoordinates)
	}
	return l, nil
}

func (l LineString) Encode(a *fastjson.Arena) *fastjson.Value {
	return encodeTyped(a, TypeLineString, encodePositions(a, l.positions))
}

func (l LineString) MarshalJSON() ([]byte, error) {
	return marshal(l), nil
}

func (l *LineString) UnmarshalJSON(data []byte) error {
	v, err := parseDocument(data)
	if err != nil {
		return err
	}
	decoded, err := DecodeLineString(v)
	if err != nil {
		return err
	}
	*l = decoded
	return nil
}

func (l LineString) String() string {
	return string(marshal(l))
}
