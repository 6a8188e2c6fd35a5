package datastructure

import (
	"math"

	"github.com/lintang-b-s/tilenav/pkg"
)

// RoadPoint addresses one vertex of one feature's polyline.
type RoadPoint struct {
	featureId uint32
	pointIdx  uint32
}

func NewRoadPoint(featureId, pointIdx uint32) RoadPoint {
	return RoadPoint{featureId: featureId, pointIdx: pointIdx}
}

func (rp RoadPoint) GetFeatureId() uint32 {
	return rp.featureId
}

func (rp RoadPoint) GetPointIdx() uint32 {
	return rp.pointIdx
}

// Joint is the equivalence class of road points whose quantised locations
// coincide. Only joints with two or more members become routing nodes.
type Joint struct {
	points []RoadPoint
}

func NewJoint() Joint {
	return Joint{points: make([]RoadPoint, 0, 2)}
}

func (j *Joint) AddPoint(rp RoadPoint) {
	j.points = append(j.points, rp)
}

func (j *Joint) GetSize() int {
	return len(j.points)
}

func (j *Joint) GetEntry(i int) RoadPoint {
	return j.points[i]
}

func (j *Joint) GetPoints() []RoadPoint {
	return j.points
}

// mercator plane bounds for the location-key grid
const (
	mercatorMin = -180.0
	mercatorMax = 180.0
)

// LocationKey quantises a point to POINT_COORD_BITS resolution, bit-exact
// with the map format. Two vertices coalesce into one joint iff their keys
// match; no geometric epsilon is applied at build time.
func LocationKey(p Point) uint64 {
	ix := quantiseCoord(p.GetX())
	iy := quantiseCoord(p.GetY())
	return ix<<pkg.POINT_COORD_BITS | iy
}

// LocationKeysAround enumerates the keys of every grid cell intersecting
// the square of the given radius around the point. The grid is finer than
// the routing epsilon, so epsilon-equal points can land in neighbouring
// cells.
func LocationKeysAround(p Point, radius float64) []uint64 {
	ix0 := quantiseCoord(p.GetX() - radius)
	ix1 := quantiseCoord(p.GetX() + radius)
	iy0 := quantiseCoord(p.GetY() - radius)
	iy1 := quantiseCoord(p.GetY() + radius)

	keys := make([]uint64, 0, (ix1-ix0+1)*(iy1-iy0+1))
	for ix := ix0; ix <= ix1; ix++ {
		for iy := iy0; iy <= iy1; iy++ {
			keys = append(keys, ix<<pkg.POINT_COORD_BITS|iy)
		}
	}
	return keys
}

func quantiseCoord(c float64) uint64 {
	if c < mercatorMin {
		c = mercatorMin
	}
	if c > mercatorMax {
		c = mercatorMax
	}
	maxCell := float64(uint64(1)<<pkg.POINT_COORD_BITS - 1)
	return uint64(math.Round((c - mercatorMin) / (mercatorMax - mercatorMin) * maxCell))
}
