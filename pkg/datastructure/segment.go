package datastructure

import "fmt"

// Segment is a directed single-step traversal between two adjacent
// feature vertices. A forward segment with index i goes from polyline
// vertex i to vertex i+1.
type Segment struct {
	featureId  uint32
	segmentIdx uint32
	forward    bool
}

func NewSegment(featureId, segmentIdx uint32, forward bool) Segment {
	return Segment{featureId: featureId, segmentIdx: segmentIdx, forward: forward}
}

func (s Segment) GetFeatureId() uint32 {
	return s.featureId
}

func (s Segment) GetSegmentIdx() uint32 {
	return s.segmentIdx
}

func (s Segment) IsForward() bool {
	return s.forward
}

// Reverse flips the traversal direction of the same segment.
func (s Segment) Reverse() Segment {
	return Segment{featureId: s.featureId, segmentIdx: s.segmentIdx, forward: !s.forward}
}

// point indices of the segment's endpoints on the feature polyline

func (s Segment) GetPointIdxFrom() uint32 {
	if s.forward {
		return s.segmentIdx
	}
	return s.segmentIdx + 1
}

func (s Segment) GetPointIdxTo() uint32 {
	if s.forward {
		return s.segmentIdx + 1
	}
	return s.segmentIdx
}

func (s Segment) Less(o Segment) bool {
	if s.featureId != o.featureId {
		return s.featureId < o.featureId
	}
	if s.segmentIdx != o.segmentIdx {
		return s.segmentIdx < o.segmentIdx
	}
	if s.forward != o.forward {
		return o.forward
	}
	return false
}

func (s Segment) String() string {
	dir := "fwd"
	if !s.forward {
		dir = "bwd"
	}
	return fmt.Sprintf("Segment{fid=%d seg=%d %s}", s.featureId, s.segmentIdx, dir)
}
