package indexgraph

import (
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
	"github.com/lintang-b-s/tilenav/pkg/geo"
)

// EdgeEstimator prices one segment traversal. Weights must be
// non-negative.
type EdgeEstimator interface {
	SegmentWeight(from, to datastructure.Point, speedKmPh float64) float64
	MaxSpeedKmPh() float64
}

// TimeEstimator weighs a segment by its travel time in minutes.
type TimeEstimator struct {
	maxSpeedKmPh float64
}

func NewTimeEstimator(maxSpeedKmPh float64) *TimeEstimator {
	return &TimeEstimator{maxSpeedKmPh: maxSpeedKmPh}
}

func (e *TimeEstimator) SegmentWeight(from, to datastructure.Point, speedKmPh float64) float64 {
	speed := speedKmPh
	if speed <= 0 || speed > e.maxSpeedKmPh {
		speed = e.maxSpeedKmPh
	}
	distM := geo.EarthDistanceMeters(from.GetX(), from.GetY(), to.GetX(), to.GetY())
	metersPerMinute := speed * 1000.0 / 60.0
	return distM / metersPerMinute
}

func (e *TimeEstimator) MaxSpeedKmPh() float64 {
	return e.maxSpeedKmPh
}
