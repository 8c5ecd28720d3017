package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/matryer/is"
	"github.com/valyala/fastjson"
)

func TestPositionBounds(t *testing.T) {
	is := is.New(t)

	for _, tc := range []struct {
		lon, lat float64
		err      error
	}{
		{0, 0, nil},
		{-180, -90, nil},
		{180, 90, nil},
		{-180.0001, 0, ErrLongitudeMin},
		{180.0001, 0, ErrLongitudeMax},
		{0, -90.5, ErrLatitudeMin},
		{0, 91, ErrLatitudeMax},
		{math.NaN(), 0, ErrNotFinite},
		{0, math.Inf(1), ErrLatitudeMax},
	} {
		p, err := NewPosition(tc.lon, tc.lat)
		if tc.err == nil {
			is.NoErr(err)
			is.Equal(p.Longitude(), tc.lon)
			is.Equal(p.Latitude(), tc.lat)
			is.True(!p.HasAltitude())
			continue
		}
		is.True(errors.Is(err, tc.err))

		var ve *ValidationError
		is.True(errors.As(err, &ve))
	}
}

func TestPositionAltitude(t *testing.T) {
	is := is.New(t)

	p, err := NewPositionWithAltitude(10, 20, 0)
	is.NoErr(err)
	alt, ok := p.Altitude()
	is.True(ok)
	is.Equal(alt, 0.0)

	_, err = NewPositionWithAltitude(10, 20, -1)
	is.True(errors.Is(err, ErrAltitudeMin))

	_, err = NewPositionWithAltitude(10, 20, math.Inf(1))
	is.True(errors.Is(err, ErrNotFinite))
}

func TestPositionCopies(t *testing.T) {
	is := is.New(t)

	p, err := NewPositionWithAltitude(10, 20, 300)
	is.NoErr(err)

	moved, err := p.WithLongitude(-45)
	is.NoErr(err)
	is.Equal(moved.Longitude(), -45.0)
	is.Equal(p.Longitude(), 10.0)
	alt, ok := moved.Altitude()
	is.True(ok)
	is.Equal(alt, 300.0)

	moved, err = p.WithLatitude(-45)
	is.NoErr(err)
	is.Equal(moved.Latitude(), -45.0)

	_, err = p.WithLatitude(100)
	is.True(errors.Is(err, ErrLatitudeMax))

	flat := p.WithoutAltitude()
	is.True(!flat.HasAltitude())
	is.True(p.HasAltitude())
}

func TestPositionEquality(t *testing.T) {
	is := is.New(t)

	a, _ := NewPosition(1, 2)
	b, _ := NewPosition(1, 2)
	c, _ := NewPositionWithAltitude(1, 2, 0)

	is.True(a.Equal(b))
	is.Equal(a.Hash(), b.Hash())
	is.True(!a.Equal(c))

	zero, _ := NewPosition(0, 0)
	negZero, _ := NewPosition(math.Copysign(0, -1), 0)
	is.True(zero.Equal(negZero))
	is.Equal(zero.Hash(), negZero.Hash())
}

func TestDecodePosition(t *testing.T) {
	is := is.New(t)

	p, err := DecodePosition(fastjson.MustParse(`[1.5, -2]`))
	is.NoErr(err)
	is.Equal(p.Longitude(), 1.5)
	is.Equal(p.Latitude(), -2.0)
	is.True(!p.HasAltitude())

	p, err = DecodePosition(fastjson.MustParse(`[1.5, -2, 120]`))
	is.NoErr(err)
	alt, ok := p.Altitude()
	is.True(ok)
	is.Equal(alt, 120.0)

	for _, tc := range []struct {
		doc  string
		err  error
		path string
	}{
		{`[1]`, ErrPositionTooShort, ""},
		{`[1, 2, 3, 4]`, ErrPositionTooLong, ""},
		{`[1, "2"]`, ErrPositionNotNumeric, "[1]"},
		{`{"lon": 1}`, ErrPositionNotArray, ""},
		{`[200, 0]`, ErrLongitudeMax, ""},
		{`[0, 0, -5]`, ErrAltitudeMin, ""},
	} {
		_, err := DecodePosition(fastjson.MustParse(tc.doc))
		is.True(errors.Is(err, tc.err))

		var ve *ValidationError
		is.True(errors.As(err, &ve))
		is.Equal(ve.Path, tc.path)
	}
}

func TestPositionEncode(t *testing.T) {
	is := is.New(t)

	p, _ := NewPosition(1.5, 2)
	is.Equal(p.String(), `[1.5,2]`)

	p, _ = p.WithAltitude(3.25)
	is.Equal(p.String(), `[1.5,2,3.25]`)

	var decoded Position
	is.NoErr(decoded.UnmarshalJSON([]byte(p.String())))
	is.True(decoded.Equal(p))
}
