package geo

import (
	"slices"

	"github.com/valyala/fastjson"
)

// MultiLineString is an ordered collection of LineStrings. It may be empty
// when built in code; a decoded MultiLineString has at least one member.
type MultiLineString struct {
	lines []LineString
}

// NewMultiLineString rejects zero LineStrings, which have no positions.
func NewMultiLineString(lines []LineString) (MultiLineString, error) {
	for i, l := range lines {
		if l.Len() == 0 {
			return MultiLineString{}, atIndex(invalid(ErrLineStringTooShort, 0), "", i)
		}
	}
	return MultiLineString{lines: slices.Clone(lines)}, nil
}

func (MultiLineString) Type() Type { return TypeMultiLineString }
func (MultiLineString) geometry()  {}

// Append returns a copy of m with l added.
func (m MultiLineString) Append(l LineString) (MultiLineString, error) {
	if l.Len() == 0 {
		return MultiLineString{}, invalid(ErrLineStringTooShort, 0)
	}
	return MultiLineString{lines: append(slices.Clone(m.lines), l)}, nil
}

func (m MultiLineString) LineStrings() []LineString {
	return slices.Clone(m.lines)
}

func (m MultiLineString) Len() int {
	return len(m.lines)
}

func (m MultiLineString) Equal(g Geometry) bool {
	o, ok := g.(MultiLineString)
	if !ok {
		return false
	}
	return slices.EqualFunc(m.lines, o.lines, func(a, b LineString) bool {
		return equalPositions(a.positions, b.positions)
	})
}

func (m MultiLineString) Hash() uint64 {
	h := newHasher(TypeMultiLineString)
	h.u64(uint64(len(m.lines)))
	for _, l := range m.lines {
		hashPositions(h, l.positions)
	}
	return h.sum()
}

// DecodeMultiLineString reads a {"type":"MultiLineString"} object.
func DecodeMultiLineString(v *fastjson.Value) (MultiLineString, error) {
	if _, err := typedCoordinates(v, TypeMultiLineString); err != nil {
		return MultiLineString{}, err
	}
	items, err := nestedArrays(v.Get(fieldCoordinates))
	if err != nil {
		return MultiLineString{}, at(err, fieldCoordinates)
	}
	if len(items) == 0 {
		return MultiLineString{}, at(invalid(ErrMultiLineStringEmpty, 0), fieldCoordinates)
	}
	lines := make([]LineString, len(items))
	for i, item := range items {
		l, err := DecodeLineStringCoordinates(item)
		if err != nil {
			return MultiLineString{}, atIndex(err, fieldCoordinates, i)
		}
		lines[i] = l
	}
	return MultiLineString{lines: lines}, nil
}

func (m MultiLineString) Encode(a *fastjson.Arena) *fastjson.Value {
	arr := a.NewArray()
	for i, l := range m.lines {
		arr.SetArrayItem(i, encodePositions(a, l.positions))
	}
	return encodeTyped(a, TypeMultiLineString, arr)
}

func (m MultiLineString) MarshalJSON() ([]byte, error) {
	return marshal(m), nil
}

func (m *MultiLineString) UnmarshalJSON(data []byte) error {
	v, err := parseDocument(data)
	if err != nil {
		return err
	}
	decoded, err := DecodeMultiLineString(v)
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}

func (m MultiLineString) String() string {
	return string(marshal(m))
}
