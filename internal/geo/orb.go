package geo

import (
	"github.com/paulmach/orb"
)

// ToOrb converts g into its two-dimensional orb counterpart. Altitudes are
// dropped.
func ToOrb(g Geometry) orb.Geometry {
	switch x := g.(type) {
	case Point:
		return orbPoint(x.position)
	case LineString:
		return orb.LineString(orbPoints(x.positions))
	case LinearRing:
		return orb.Ring(orbPoints(x.line.positions))
	case Polygon:
		return orbPolygon(x)
	case MultiPoint:
		return orb.MultiPoint(orbPoints(x.positions))
	case MultiLineString:
		ml := make(orb.MultiLineString, len(x.lines))
		for i, l := range x.lines {
			ml[i] = orbPoints(l.positions)
		}
		return ml
	case MultiPolygon:
		mp := make(orb.MultiPolygon, len(x.polygons))
		for i, p := range x.polygons {
			mp[i] = orbPolygon(p)
		}
		return mp
	}
	return nil
}

// Bound returns the bounding box of every geometry in o and false when o
// holds no position at all.
func Bound(o Object) (orb.Bound, bool) {
	var (
		b     orb.Bound
		found bool
	)
	Walk(o, func(g Geometry) {
		og := ToOrb(g)
		if og == nil || isEmpty(g) {
			return
		}
		if !found {
			b, found = og.Bound(), true
			return
		}
		b = b.Union(og.Bound())
	})
	return b, found
}

func isEmpty(g Geometry) bool {
	switch x := g.(type) {
	case MultiPoint:
		return x.Len() == 0
	case MultiLineString:
		return x.Len() == 0
	}
	return false
}

func orbPoint(p Position) orb.Point {
	return orb.Point{p.lon, p.lat}
}

func orbPoints(ps []Position) []orb.Point {
	out := make([]orb.Point, len(ps))
	for i, p := range ps {
		out[i] = orbPoint(p)
	}
	return out
}

func orbPolygon(p Polygon) orb.Polygon {
	rings := p.Rings()
	out := make(orb.Polygon, len(rings))
	for i, r := range rings {
		out[i] = orbPoints(r.line.positions)
	}
	return out
}
