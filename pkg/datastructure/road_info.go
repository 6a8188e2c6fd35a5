package datastructure

// minimum capacity preallocated for a RoadInfo polyline
const roadInfoInlineCap = 32

// RoadInfo is the part of a feature's metadata that is relevant for
// routing.
type RoadInfo struct {
	junctions     []Junction
	speedKmPh     float64
	bidirectional bool
}

func NewRoadInfo(bidirectional bool, speedKmPh float64, junctions []Junction) RoadInfo {
	js := make([]Junction, 0, max(len(junctions), roadInfoInlineCap))
	js = append(js, junctions...)
	return RoadInfo{
		junctions:     js,
		speedKmPh:     speedKmPh,
		bidirectional: bidirectional,
	}
}

// MakeRoadInfoFromPoints builds a RoadInfo with default altitudes.
func MakeRoadInfoFromPoints(bidirectional bool, speedKmPh float64, points []Point) RoadInfo {
	junctions := make([]Junction, len(points))
	for i, p := range points {
		junctions[i] = NewJunctionFromPoint(p)
	}
	return NewRoadInfo(bidirectional, speedKmPh, junctions)
}

func (r RoadInfo) GetJunctions() []Junction {
	return r.junctions
}

func (r RoadInfo) GetJunction(i int) Junction {
	return r.junctions[i]
}

func (r RoadInfo) PointsCount() int {
	return len(r.junctions)
}

func (r RoadInfo) GetSpeedKmPh() float64 {
	return r.speedKmPh
}

func (r RoadInfo) IsBidirectional() bool {
	return r.bidirectional
}
