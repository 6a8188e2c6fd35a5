package crossmwm

import (
	"fmt"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
)

// Transition is one directed border crossing of a feature: the segment
// segmentIdx flips between inside and outside of the tile borders.
type Transition struct {
	featureId  uint32
	segmentIdx uint32
	roadMask   pkg.VehicleMask
	oneWayMask pkg.VehicleMask

	// forwardIsEnter is set when the forward traversal of the segment
	// enters this tile.
	forwardIsEnter bool

	backPoint  datastructure.Point
	frontPoint datastructure.Point
}

func NewTransition(featureId, segmentIdx uint32, roadMask, oneWayMask pkg.VehicleMask,
	forwardIsEnter bool, backPoint, frontPoint datastructure.Point) Transition {
	return Transition{
		featureId:      featureId,
		segmentIdx:     segmentIdx,
		roadMask:       roadMask,
		oneWayMask:     oneWayMask,
		forwardIsEnter: forwardIsEnter,
		backPoint:      backPoint,
		frontPoint:     frontPoint,
	}
}

func (t Transition) GetFeatureId() uint32 {
	return t.featureId
}

func (t Transition) GetSegmentIdx() uint32 {
	return t.segmentIdx
}

func (t Transition) GetRoadMask() pkg.VehicleMask {
	return t.roadMask
}

func (t Transition) GetOneWayMask() pkg.VehicleMask {
	return t.oneWayMask
}

func (t Transition) ForwardIsEnter() bool {
	return t.forwardIsEnter
}

// GetBackPoint is the polyline vertex at segmentIdx, GetFrontPoint the
// one at segmentIdx+1.
func (t Transition) GetBackPoint() datastructure.Point {
	return t.backPoint
}

func (t Transition) GetFrontPoint() datastructure.Point {
	return t.frontPoint
}

// GetPointInside returns the crossing endpoint lying inside the tile.
func (t Transition) GetPointInside() datastructure.Point {
	if t.forwardIsEnter {
		return t.frontPoint
	}
	return t.backPoint
}

// GetPointOutside returns the crossing endpoint lying outside the tile.
func (t Transition) GetPointOutside() datastructure.Point {
	if t.forwardIsEnter {
		return t.backPoint
	}
	return t.frontPoint
}

func (t Transition) String() string {
	return fmt.Sprintf("Transition{fid=%d seg=%d enter=%v}", t.featureId, t.segmentIdx, t.forwardIsEnter)
}
