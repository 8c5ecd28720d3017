package geo

import (
	"slices"

	"github.com/valyala/fastjson"
)

// MinRingPositions is the smallest number of positions of a closed ring.
const MinRingPositions = 4

// LinearRing is a closed LineString with at least four positions whose first
// and last positions are identical. It is encoded as a LineString.
type LinearRing struct {
	line LineString
}

// NewLinearRing copies positions into a new ring.
func NewLinearRing(positions []Position) (LinearRing, error) {
	line, err := NewLineString(positions)
	if err != nil {
		return LinearRing{}, err
	}
	if err := validateRing(line.positions); err != nil {
		return LinearRing{}, err
	}
	return LinearRing{line: line}, nil
}

func validateRing(ps []Position) error {
	if len(ps) < MinRingPositions {
		return invalid(ErrRingTooShort, len(ps))
	}
	if !ps[0].Equal(ps[len(ps)-1]) {
		return invalid(ErrRingNotClosed, ps[len(ps)-1].String())
	}
	return nil
}

func (LinearRing) Type() Type { return TypeLineString }
func (LinearRing) geometry()  {}

// LineString returns the ring as a plain LineString.
func (r LinearRing) LineString() LineString {
	return LineString{positions: slices.Clone(r.line.positions)}
}

func (r LinearRing) Position(i int) Position {
	return r.line.Position(i)
}

func (r LinearRing) Positions() []Position {
	return r.line.Positions()
}

func (r LinearRing) Len() int {
	return r.line.Len()
}

// SignedArea is the shoelace sum ½ Σ (lon[i+1] − lon[i]) · (lat[i+1] + lat[i])
// over consecutive vertices. Its sign gives the winding order.
func (r LinearRing) SignedArea() float64 {
	ps := r.line.positions
	area := 0.0
	for i := 0; i < len(ps)-1; i++ {
		p1, p2 := ps[i], ps[i+1]
		area += (p2.lon - p1.lon) * (p2.lat + p1.lat)
	}
	return area / 2
}

func (r LinearRing) IsCounterClockwise() bool {
	return r.SignedArea() > 0
}

func (r LinearRing) IsClockwise() bool {
	return r.SignedArea() < 0
}

// IsValidRing reports whether the ring has the winding expected for its role:
// counter-clockwise for an exterior ring, clockwise for a hole. A degenerate
// ring with zero area is valid for neither.
func (r LinearRing) IsValidRing(exterior bool) bool {
	if exterior {
		return r.IsCounterClockwise()
	}
	return r.IsClockwise()
}

// Reverse returns the ring with its vertex order, and so its winding, reversed.
func (r LinearRing) Reverse() LinearRing {
	ps := slices.Clone(r.line.positions)
	slices.Reverse(ps)
	return LinearRing{line: LineString{positions: ps}}
}

// Equal reports whether g is a LinearRing or a LineString with the same
// positions. A ring is encoded as a LineString, so both forms compare equal.
func (r LinearRing) Equal(g Geometry) bool {
	return r.line.Equal(g)
}

// Hash matches the hash of the LineString with the same positions.
func (r LinearRing) Hash() uint64 {
	return r.line.Hash()
}

// DecodeLinearRingCoordinates reads a ring from a bare array of positions.
func DecodeLinearRingCoordinates(v *fastjson.Value) (LinearRing, error) {
	positions, err := decodePositionList(v, MinRingPositions, ErrRingTooShort)
	if err != nil {
		return LinearRing{}, err
	}
	if err := validateRing(positions); err != nil {
		return LinearRing{}, err
	}
	return LinearRing{line: LineString{positions: positions}}, nil
}

// DecodeLinearRing reads a ring from a {"type":"LineString"} object.
func DecodeLinearRing(v *fastjson.Value) (LinearRing, error) {
	if _, err := typedCoordinates(v, TypeLineString); err != nil {
		return LinearRing{}, err
	}
	r, err := DecodeLinearRingCoordinates(v.Get(fieldCoordinates))
	if err != nil {
		return LinearRing{}, at(err, fieldCoordinates)
	}
	return r, nil
}

func (r LinearRing) Encode(a *fastjson.Arena) *fastjson.Value {
	return r.line.Encode(a)
}

func (r LinearRing) MarshalJSON() ([]byte, error) {
	return marshal(r), nil
}

func (r *LinearRing) UnmarshalJSON(data []byte) error {
	v, err := parseDocument(data)
	if err != nil {
		return err
	}
	decoded, err := DecodeLinearRing(v)
	if err != nil {
		return err
	}
	*r = decoded
	return nil
}

func (r LinearRing) String() string {
	return string(marshal(r))
}
