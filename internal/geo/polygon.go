package geo

import (
	"slices"

	"github.com/valyala/fastjson"
)

// Polygon is an exterior ring plus zero or more interior rings (holes).
//
// Ring orientation is not enforced; IsValidOrientation reports it. Whether
// holes lie inside the exterior ring or overlap each other is not checked.
type Polygon struct {
	exterior  LinearRing
	interiors []LinearRing
}

// NewPolygon builds a polygon from rings obtained through NewLinearRing or a
// decoder. A zero LinearRing is rejected.
func NewPolygon(exterior LinearRing, interiors ...LinearRing) (Polygon, error) {
	if err := requireRing(exterior); err != nil {
		return Polygon{}, err
	}
	for i, r := range interiors {
		if err := requireRing(r); err != nil {
			return Polygon{}, atIndex(err, "interiors", i)
		}
	}
	return Polygon{exterior: exterior, interiors: slices.Clone(interiors)}, nil
}

func requireRing(r LinearRing) error {
	if r.Len() == 0 {
		return invalid(ErrRingNotDefined, nil)
	}
	return nil
}

func (Polygon) Type() Type { return TypePolygon }
func (Polygon) geometry()  {}

// AddInteriorRing returns a copy of p with one more hole.
func (p Polygon) AddInteriorRing(r LinearRing) (Polygon, error) {
	if err := requireRing(r); err != nil {
		return Polygon{}, err
	}
	return Polygon{exterior: p.exterior, interiors: append(slices.Clone(p.interiors), r)}, nil
}

func (p Polygon) ExteriorRing() LinearRing {
	return p.exterior
}

// InteriorRings returns a copy of the holes.
func (p Polygon) InteriorRings() []LinearRing {
	return slices.Clone(p.interiors)
}

func (p Polygon) NumberOfInteriorRings() int {
	return len(p.interiors)
}

func (p Polygon) HasInteriorRings() bool {
	return len(p.interiors) > 0
}

// Rings returns the exterior ring followed by the holes.
func (p Polygon) Rings() []LinearRing {
	return append([]LinearRing{p.exterior}, p.interiors...)
}

// IsValidOrientation reports whether the exterior ring is counter-clockwise
// and every hole is clockwise.
func (p Polygon) IsValidOrientation() bool {
	if !p.exterior.IsValidRing(true) {
		return false
	}
	for _, r := range p.interiors {
		if !r.IsValidRing(false) {
			return false
		}
	}
	return true
}

func (p Polygon) Equal(g Geometry) bool {
	o, ok := g.(Polygon)
	return ok && p.equal(o)
}

func (p Polygon) equal(o Polygon) bool {
	if !p.exterior.Equal(o.exterior) {
		return false
	}
	return slices.EqualFunc(p.interiors, o.interiors, func(a, b LinearRing) bool {
		return a.Equal(b)
	})
}

func (p Polygon) Hash() uint64 {
	h := newHasher(TypePolygon)
	p.hashInto(h)
	return h.sum()
}

func (p Polygon) hashInto(h *hasher) {
	h.u64(uint64(len(p.interiors) + 1))
	for _, r := range p.Rings() {
		hashPositions(h, r.line.positions)
	}
}

// DecodePolygonCoordinates reads a polygon from an array of ring arrays. The
// first ring is the exterior, the rest are holes.
func DecodePolygonCoordinates(v *fastjson.Value) (Polygon, error) {
	items, err := nestedArrays(v)
	if err != nil {
		return Polygon{}, err
	}
	if len(items) == 0 {
		return Polygon{}, invalid(ErrPolygonNoRings, 0)
	}
	rings := make([]LinearRing, len(items))
	for i, item := range items {
		r, err := DecodeLinearRingCoordinates(item)
		if err != nil {
			return Polygon{}, atIndex(err, "", i)
		}
		rings[i] = r
	}
	return Polygon{exterior: rings[0], interiors: rings[1:]}, nil
}

// DecodePolygon reads a {"type":"Polygon"} object.
func DecodePolygon(v *fastjson.Value) (Polygon, error) {
	if _, err := typedCoordinates(v, TypePolygon); err != nil {
		return Polygon{}, err
	}
	p, err := DecodePolygonCoordinates(v.Get(fieldCoordinates))
	if err != nil {
		return Polygon{}, at(err, fieldCoordinates)
	}
	return p, nil
}

func (p Polygon) encodeCoordinates(a *fastjson.Arena) *fastjson.Value {
	arr := a.NewArray()
	for i, r := range p.Rings() {
		arr.SetArrayItem(i, encodePositions(a, r.line.positions))
	}
	return arr
}

func (p Polygon) Encode(a *fastjson.Arena) *fastjson.Value {
	return encodeTyped(a, TypePolygon, p.encodeCoordinates(a))
}

func (p Polygon) MarshalJSON() ([]byte, error) {
	return marshal(p), nil
}

func (p *Polygon) UnmarshalJSON(data []byte) error {
	v, err := parseDocument(data)
	if err != nil {
		return err
	}
	decoded, err := DecodePolygon(v)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

func (p Polygon) String() string {
	return string(marshal(p))
}
