package geo

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/valyala/fastjson"
)

// Member names of GeoJSON objects.
const (
	fieldType        = "type"
	fieldCoordinates = "coordinates"
	fieldGeometry    = "geometry"
	fieldProperties  = "properties"
	fieldFeatures    = "features"
	fieldID          = "id"
)

// Encoder is implemented by every value of the model. Encode builds the JSON
// representation on the given arena; the result is valid until the arena is reset.
type Encoder interface {
	Encode(a *fastjson.Arena) *fastjson.Value
}

func marshal(e Encoder) []byte {
	var a fastjson.Arena
	return e.Encode(&a).MarshalTo(nil)
}

func parseDocument(data []byte) (*fastjson.Value, error) {
	v, err := fastjson.ParseBytes(data)
	if err != nil {
		return nil, &ValidationError{Err: ErrMalformed, Value: err}
	}
	return v, nil
}

// typedCoordinates checks the discriminator of v and returns the elements of
// its coordinates array.
func typedCoordinates(v *fastjson.Value, want Type) ([]*fastjson.Value, error) {
	if err := expectType(v, want); err != nil {
		return nil, err
	}
	c := v.Get(fieldCoordinates)
	if c == nil {
		return nil, at(invalid(ErrCoordinatesMissing, nil), fieldCoordinates)
	}
	if c.Type() != fastjson.TypeArray {
		return nil, at(invalid(ErrCoordinatesNotArray, c.Type().String()), fieldCoordinates)
	}
	return c.GetArray(), nil
}

// nestedArrays returns the elements of v, failing unless v is an array whose
// elements are all arrays.
func nestedArrays(v *fastjson.Value) ([]*fastjson.Value, error) {
	if v == nil || v.Type() != fastjson.TypeArray {
		return nil, invalid(ErrCoordinatesNotArray, typeName(v))
	}
	items := v.GetArray()
	for i, item := range items {
		if item.Type() != fastjson.TypeArray {
			return nil, atIndex(invalid(ErrCoordinatesNotNested, item.Type().String()), "", i)
		}
	}
	return items, nil
}

func typeName(v *fastjson.Value) string {
	if v == nil {
		return "undefined"
	}
	return v.Type().String()
}

func encodePositions(a *fastjson.Arena, ps []Position) *fastjson.Value {
	arr := a.NewArray()
	for i, p := range ps {
		arr.SetArrayItem(i, p.Encode(a))
	}
	return arr
}

func encodeTyped(a *fastjson.Arena, t Type, coordinates *fastjson.Value) *fastjson.Value {
	o := a.NewObject()
	o.Set(fieldType, a.NewString(t.String()))
	o.Set(fieldCoordinates, coordinates)
	return o
}

// hasher accumulates the structural hash of a value.
type hasher struct {
	d   *xxhash.Digest
	buf []byte
}

func newHasher(t Type) *hasher {
	h := &hasher{d: xxhash.New(), buf: make([]byte, 0, 8)}
	h.str(t.String())
	return h
}

func (h *hasher) u64(u uint64) {
	h.buf = binary.LittleEndian.AppendUint64(h.buf[:0], u)
	_, _ = h.d.Write(h.buf)
}

func (h *hasher) f64(f float64) {
	// -0 == 0 under Equal, so both must hash alike
	if f == 0 {
		f = 0
	}
	h.u64(math.Float64bits(f))
}

func (h *hasher) str(s string) {
	h.u64(uint64(len(s)))
	_, _ = h.d.WriteString(s)
}

func (h *hasher) sum() uint64 {
	return h.d.Sum64()
}
