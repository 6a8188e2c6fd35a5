package geo

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"
)

func SquaredDistance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// EarthDistanceMeters returns the great-circle distance between two planar
// mercator points.
func EarthDistanceMeters(x1, y1, x2, y2 float64) float64 {
	c1 := MercatorToLatLon(x1, y1)
	c2 := MercatorToLatLon(x2, y2)
	ll1 := s2.LatLngFromDegrees(c1.Lat, c1.Lon)
	ll2 := s2.LatLngFromDegrees(c2.Lat, c2.Lon)
	return ll1.Distance(ll2).Radians() * earthRadiusM
}

// ProjectOntoSegment returns the closest point to (px, py) on the segment
// (ax, ay)-(bx, by) together with the normalised offset t in [0, 1] of the
// projection along the segment.
func ProjectOntoSegment(ax, ay, bx, by, px, py float64) (float64, float64, float64) {
	a := r2.Point{X: ax, Y: ay}
	b := r2.Point{X: bx, Y: by}
	p := r2.Point{X: px, Y: py}

	ab := b.Sub(a)
	normSq := ab.Dot(ab)
	if Eq(normSq, 0) {
		return ax, ay, 0
	}

	t := p.Sub(a).Dot(ab) / normSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	proj := a.Add(ab.Mul(t))
	return proj.X, proj.Y, t
}
