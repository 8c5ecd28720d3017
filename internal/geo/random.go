package geo

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// Upper bound of generated altitudes, in metres.
const randomAltitudeMax = 10000.0

// RandomPosition returns a position uniformly spread over the valid range.
// Half of the positions carry an altitude.
func RandomPosition(r *rand.Rand) Position {
	p := Position{
		lon: LongitudeMin + r.Float64()*(LongitudeMax-LongitudeMin),
		lat: LatitudeMin + r.Float64()*(LatitudeMax-LatitudeMin),
	}
	if r.IntN(2) == 1 {
		p.alt = r.Float64() * randomAltitudeMax
		p.hasAlt = true
	}
	return p
}

// RandomLinearRing returns a closed ring of 4 to 11 positions. The winding is
// arbitrary.
func RandomLinearRing(r *rand.Rand) LinearRing {
	n := MinRingPositions - 1 + r.IntN(8)
	ps := make([]Position, 0, n+1)
	for range n {
		ps = append(ps, RandomPosition(r))
	}
	ps = append(ps, ps[0])
	return LinearRing{line: LineString{positions: ps}}
}

// RandomPolygon returns a polygon with up to 9 holes.
func RandomPolygon(r *rand.Rand) Polygon {
	p := Polygon{exterior: RandomLinearRing(r)}
	for range r.IntN(10) {
		p.interiors = append(p.interiors, RandomLinearRing(r))
	}
	return p
}

// RandomMultiPolygon returns a collection of 1 to 5 polygons.
func RandomMultiPolygon(r *rand.Rand) MultiPolygon {
	n := 1 + r.IntN(5)
	m := MultiPolygon{polygons: make([]Polygon, n)}
	for i := range m.polygons {
		m.polygons[i] = RandomPolygon(r)
	}
	return m
}

// RandomFeature returns a feature with a random geometry, a few scalar
// properties and a UUID identifier.
func RandomFeature(r *rand.Rand) Feature {
	var g Geometry
	switch r.IntN(3) {
	case 0:
		g = NewPoint(RandomPosition(r))
	case 1:
		g = RandomPolygon(r)
	default:
		g = RandomMultiPolygon(r)
	}

	f := Feature{geometry: g, properties: Properties{}, id: uuid.NewString()}
	for i := range r.IntN(4) {
		f.properties[fmt.Sprintf("p%d", i)] = r.Float64()
	}
	return f
}
