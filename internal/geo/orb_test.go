package geo

import (
	"math/rand/v2"
	"testing"

	"github.com/matryer/is"
	"github.com/paulmach/orb"
)

func TestBound(t *testing.T) {
	is := is.New(t)

	p, err := NewPolygon(square(t))
	is.NoErr(err)
	f, err := NewFeature(p)
	is.NoErr(err)
	pt, err := NewPointLonLat(-10, 5)
	is.NoErr(err)
	g, err := NewFeature(pt)
	is.NoErr(err)
	c, err := NewFeatureCollection(f, g)
	is.NoErr(err)

	b, ok := Bound(c)
	is.True(ok)
	is.Equal(b, orb.Bound{Min: orb.Point{-10, 0}, Max: orb.Point{1, 5}})

	_, ok = Bound(NewMultiPoint(nil))
	is.True(!ok)
}

func TestToOrb(t *testing.T) {
	is := is.New(t)

	r := square(t)
	ring, ok := ToOrb(r).(orb.Ring)
	is.True(ok)
	is.Equal(len(ring), 5)

	p, err := NewPolygon(r)
	is.NoErr(err)
	m, err := NewMultiPolygon([]Polygon{p})
	is.NoErr(err)
	mp, ok := ToOrb(m).(orb.MultiPolygon)
	is.True(ok)
	is.Equal(len(mp), 1)
	is.Equal(mp[0][0][2], orb.Point{1, 1})
}

func TestRandomGeometryIsValid(t *testing.T) {
	is := is.New(t)

	r := rand.New(rand.NewPCG(7, 7))
	for range 100 {
		ring := RandomLinearRing(r)
		_, err := NewLinearRing(ring.Positions())
		is.NoErr(err)

		for _, pos := range ring.Positions() {
			_, err := NewPosition(pos.Longitude(), pos.Latitude())
			is.NoErr(err)
			if alt, ok := pos.Altitude(); ok {
				is.True(alt >= AltitudeMin)
			}
		}

		m := RandomMultiPolygon(r)
		is.True(m.NumberOfPolygons() >= 1)
		is.True(m.NumberOfPolygons() <= 5)
		_, err = NewMultiPolygon(m.Polygons())
		is.NoErr(err)
	}
}
