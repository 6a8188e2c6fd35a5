package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/tilenav/pkg"
)

// Edge is a directed traversal of one segment of one road feature. An
// edge whose feature id is invalid is fake: it exists only in the
// per-request overlay, never in the persistent graph.
type Edge struct {
	featureId  uint32
	forward    bool
	partOfReal bool
	segmentIdx uint32
	start      Junction
	end        Junction
}

func NewEdge(featureId uint32, forward bool, segmentIdx uint32, start, end Junction) Edge {
	return Edge{
		featureId:  featureId,
		forward:    forward,
		segmentIdx: segmentIdx,
		start:      start,
		end:        end,
	}
}

// MakeFakeEdge builds an overlay edge. partOfReal marks fake edges that
// lie on a real segment (projection splits).
func MakeFakeEdge(start, end Junction, partOfReal bool) Edge {
	return Edge{
		featureId:  pkg.INVALID_FEATURE_ID,
		forward:    true,
		partOfReal: partOfReal,
		start:      start,
		end:        end,
	}
}

func (e Edge) GetFeatureId() uint32 {
	return e.featureId
}

func (e Edge) IsForward() bool {
	return e.forward
}

func (e Edge) GetSegmentIdx() uint32 {
	return e.segmentIdx
}

func (e Edge) GetStartJunction() Junction {
	return e.start
}

func (e Edge) GetEndJunction() Junction {
	return e.end
}

func (e Edge) IsFake() bool {
	return e.featureId == pkg.INVALID_FEATURE_ID
}

func (e Edge) IsPartOfReal() bool {
	return e.partOfReal
}

// Reverse swaps the endpoints and flips the traversal direction. Feature
// id and partOfReal are preserved.
func (e Edge) Reverse() Edge {
	return Edge{
		featureId:  e.featureId,
		forward:    !e.forward,
		partOfReal: e.partOfReal,
		segmentIdx: e.segmentIdx,
		start:      e.end,
		end:        e.start,
	}
}

func (e Edge) SameRoadSegmentAndDirection(o Edge) bool {
	return e.featureId == o.featureId && e.segmentIdx == o.segmentIdx &&
		e.forward == o.forward
}

func (e Edge) Equal(o Edge) bool {
	return e.featureId == o.featureId && e.forward == o.forward &&
		e.partOfReal == o.partOfReal && e.segmentIdx == o.segmentIdx &&
		e.start.GetPoint() == o.start.GetPoint() && e.end.GetPoint() == o.end.GetPoint()
}

func (e Edge) Less(o Edge) bool {
	if e.featureId != o.featureId {
		return e.featureId < o.featureId
	}
	if e.segmentIdx != o.segmentIdx {
		return e.segmentIdx < o.segmentIdx
	}
	if e.forward != o.forward {
		return o.forward
	}
	if e.start.GetPoint() != o.start.GetPoint() {
		return e.start.Less(o.start)
	}
	return e.end.Less(o.end)
}

func (e Edge) String() string {
	return fmt.Sprintf("Edge{fid=%d fwd=%v seg=%d %v -> %v}",
		e.featureId, e.forward, e.segmentIdx, e.start.GetPoint(), e.end.GetPoint())
}
