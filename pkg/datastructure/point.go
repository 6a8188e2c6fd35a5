package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/geo"
)

// Point is a planar map point in the projected (mercator) coordinate
// system of a tile.
type Point struct {
	x, y float64
}

func NewPoint(x, y float64) Point {
	return Point{x: x, y: y}
}

func (p Point) GetX() float64 {
	return p.x
}

func (p Point) GetY() float64 {
	return p.y
}

// Equal compares under the absolute routing epsilon.
func (p Point) Equal(o Point) bool {
	return geo.Eq(p.x, o.x) && geo.Eq(p.y, o.y)
}

// Less is the exact lexicographic order. The fake-edge overlay keys its
// maps by exact Point, not by the epsilon-equivalence class; lookups with
// a different-but-near point miss on purpose.
func (p Point) Less(o Point) bool {
	if p.x != o.x {
		return p.x < o.x
	}
	return p.y < o.y
}

func (p Point) SquaredDistance(o Point) float64 {
	return geo.SquaredDistance(p.x, p.y, o.x, o.y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}

// Junction is a node on the road network graph. Identity is the point
// alone; the altitude rides along for downstream consumers.
type Junction struct {
	point    Point
	altitude int16
}

func NewJunction(point Point, altitude int16) Junction {
	return Junction{point: point, altitude: altitude}
}

// NewJunctionFromPoint builds a junction with the default altitude.
func NewJunctionFromPoint(point Point) Junction {
	return Junction{point: point, altitude: pkg.ALTITUDE_DEFAULT}
}

func (j Junction) GetPoint() Point {
	return j.point
}

func (j Junction) GetAltitude() int16 {
	return j.altitude
}

func (j Junction) Equal(o Junction) bool {
	return j.point.Equal(o.point)
}

func (j Junction) Less(o Junction) bool {
	return j.point.Less(o.point)
}

func (j Junction) String() string {
	return fmt.Sprintf("Junction{%v, alt=%d}", j.point, j.altitude)
}

func JunctionsToPoints(junctions []Junction) []Point {
	points := make([]Point, len(junctions))
	for i := range junctions {
		points[i] = junctions[i].GetPoint()
	}
	return points
}

func JunctionsToAltitudes(junctions []Junction) []int16 {
	altitudes := make([]int16, len(junctions))
	for i := range junctions {
		altitudes[i] = junctions[i].GetAltitude()
	}
	return altitudes
}
