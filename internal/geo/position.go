package geo

import (
	"math"

	"github.com/valyala/fastjson"
)

// Coordinate bounds of a Position.
const (
	LongitudeMin = -180.0
	LongitudeMax = 180.0
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	AltitudeMin  = 0.0
)

// Position is a point on the Earth's surface: longitude, latitude and an
// optional altitude. The zero value is (0, 0) without altitude.
type Position struct {
	lon    float64
	lat    float64
	alt    float64
	hasAlt bool
}

// NewPosition validates and returns a two-dimensional position.
func NewPosition(lon, lat float64) (Position, error) {
	if err := validateLongitude(lon); err != nil {
		return Position{}, err
	}
	if err := validateLatitude(lat); err != nil {
		return Position{}, err
	}
	return Position{lon: lon, lat: lat}, nil
}

// NewPositionWithAltitude validates and returns a position with altitude.
func NewPositionWithAltitude(lon, lat, alt float64) (Position, error) {
	p, err := NewPosition(lon, lat)
	if err != nil {
		return Position{}, err
	}
	return p.WithAltitude(alt)
}

func validateLongitude(lon float64) error {
	switch {
	case math.IsNaN(lon):
		return invalid(ErrNotFinite, lon)
	case lon < LongitudeMin:
		return invalid(ErrLongitudeMin, lon)
	case lon > LongitudeMax:
		return invalid(ErrLongitudeMax, lon)
	}
	return nil
}

func validateLatitude(lat float64) error {
	switch {
	case math.IsNaN(lat):
		return invalid(ErrNotFinite, lat)
	case lat < LatitudeMin:
		return invalid(ErrLatitudeMin, lat)
	case lat > LatitudeMax:
		return invalid(ErrLatitudeMax, lat)
	}
	return nil
}

func validateAltitude(alt float64) error {
	switch {
	case math.IsNaN(alt) || math.IsInf(alt, 0):
		return invalid(ErrNotFinite, alt)
	case alt < AltitudeMin:
		return invalid(ErrAltitudeMin, alt)
	}
	return nil
}

func (p Position) Longitude() float64 {
	return p.lon
}

func (p Position) Latitude() float64 {
	return p.lat
}

// Altitude returns the altitude and whether it is set.
func (p Position) Altitude() (float64, bool) {
	return p.alt, p.hasAlt
}

func (p Position) HasAltitude() bool {
	return p.hasAlt
}

// WithLongitude returns a copy of p with a new longitude.
func (p Position) WithLongitude(lon float64) (Position, error) {
	if err := validateLongitude(lon); err != nil {
		return Position{}, err
	}
	p.lon = lon
	return p, nil
}

// WithLatitude returns a copy of p with a new latitude.
func (p Position) WithLatitude(lat float64) (Position, error) {
	if err := validateLatitude(lat); err != nil {
		return Position{}, err
	}
	p.lat = lat
	return p, nil
}

// WithAltitude returns a copy of p with the altitude set.
func (p Position) WithAltitude(alt float64) (Position, error) {
	if err := validateAltitude(alt); err != nil {
		return Position{}, err
	}
	p.alt = alt
	p.hasAlt = true
	return p, nil
}

// WithoutAltitude returns a two-dimensional copy of p.
func (p Position) WithoutAltitude() Position {
	p.alt = 0
	p.hasAlt = false
	return p
}

// Equal compares all coordinates exactly, including altitude presence.
func (p Position) Equal(o Position) bool {
	return p == o
}

func (p Position) Hash() uint64 {
	h := newHasher("Position")
	p.hashInto(h)
	return h.sum()
}

func (p Position) hashInto(h *hasher) {
	h.f64(p.lon)
	h.f64(p.lat)
	if p.hasAlt {
		h.u64(1)
		h.f64(p.alt)
	} else {
		h.u64(0)
	}
}

// DecodePosition reads a position from a JSON array of two or three numbers.
func DecodePosition(v *fastjson.Value) (Position, error) {
	if v == nil || v.Type() != fastjson.TypeArray {
		return Position{}, invalid(ErrPositionNotArray, typeName(v))
	}
	items := v.GetArray()
	if len(items) < 2 {
		return Position{}, invalid(ErrPositionTooShort, len(items))
	}
	if len(items) > 3 {
		return Position{}, invalid(ErrPositionTooLong, len(items))
	}

	coords := make([]float64, len(items))
	for i, item := range items {
		f, err := item.Float64()
		if err != nil {
			return Position{}, atIndex(invalid(ErrPositionNotNumeric, item.String()), "", i)
		}
		coords[i] = f
	}

	p, err := NewPosition(coords[0], coords[1])
	if err != nil {
		return Position{}, err
	}
	if len(coords) == 3 {
		return p.WithAltitude(coords[2])
	}
	return p, nil
}

// Encode writes [lon, lat] or [lon, lat, alt].
func (p Position) Encode(a *fastjson.Arena) *fastjson.Value {
	arr := a.NewArray()
	arr.SetArrayItem(0, a.NewNumberFloat64(p.lon))
	arr.SetArrayItem(1, a.NewNumberFloat64(p.lat))
	if p.hasAlt {
		arr.SetArrayItem(2, a.NewNumberFloat64(p.alt))
	}
	return arr
}

func (p Position) MarshalJSON() ([]byte, error) {
	return marshal(p), nil
}

func (p *Position) UnmarshalJSON(data []byte) error {
	v, err := parseDocument(data)
	if err != nil {
		return err
	}
	decoded, err := DecodePosition(v)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

func (p Position) String() string {
	return string(marshal(p))
}
