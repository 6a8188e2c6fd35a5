package indexgraph

import (
	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
)

// RoadJointIds maps each vertex of one feature's polyline to its joint,
// INVALID_JOINT_ID where the vertex is not a routing node.
type RoadJointIds struct {
	jointIds []uint32
}

func NewRoadJointIds() *RoadJointIds {
	return &RoadJointIds{jointIds: make([]uint32, 0)}
}

func (r *RoadJointIds) SetJointId(pointIdx, jointId uint32) {
	for uint32(len(r.jointIds)) <= pointIdx {
		r.jointIds = append(r.jointIds, pkg.INVALID_JOINT_ID)
	}
	r.jointIds[pointIdx] = jointId
}

func (r *RoadJointIds) GetJointId(pointIdx uint32) uint32 {
	if pointIdx >= uint32(len(r.jointIds)) {
		return pkg.INVALID_JOINT_ID
	}
	return r.jointIds[pointIdx]
}

func (r *RoadJointIds) PointsWithJoints() int {
	count := 0
	for _, id := range r.jointIds {
		if id != pkg.INVALID_JOINT_ID {
			count++
		}
	}
	return count
}

// SegmentEdge connects a segment to a neighbouring segment; the weight is
// the traversal cost of the target segment.
type SegmentEdge struct {
	target datastructure.Segment
	weight float64
}

func NewSegmentEdge(target datastructure.Segment, weight float64) SegmentEdge {
	return SegmentEdge{target: target, weight: weight}
}

func (e SegmentEdge) GetTarget() datastructure.Segment {
	return e.target
}

func (e SegmentEdge) GetWeight() float64 {
	return e.weight
}

// IndexGraph is the compact joint-indexed road graph of one tile.
// Vertices are directed segments; two segments are adjacent when they
// share a feature vertex or a joint.
type IndexGraph struct {
	roads        map[uint32]*RoadJointIds
	jointMembers [][]datastructure.RoadPoint
	numPoints    int

	geometry  GeometryLoader
	estimator EdgeEstimator
}

func NewIndexGraph(geometry GeometryLoader, estimator EdgeEstimator) *IndexGraph {
	return &IndexGraph{
		roads:        make(map[uint32]*RoadJointIds),
		jointMembers: make([][]datastructure.RoadPoint, 0),
		geometry:     geometry,
		estimator:    estimator,
	}
}

// Import installs the joint table built by the processor. Joint ids are
// assigned in table order.
func (g *IndexGraph) Import(joints []datastructure.Joint) {
	for i := range joints {
		jointId := uint32(len(g.jointMembers))
		members := make([]datastructure.RoadPoint, 0, joints[i].GetSize())
		for _, rp := range joints[i].GetPoints() {
			members = append(members, rp)
			road, ok := g.roads[rp.GetFeatureId()]
			if !ok {
				road = NewRoadJointIds()
				g.roads[rp.GetFeatureId()] = road
			}
			road.SetJointId(rp.GetPointIdx(), jointId)
			g.numPoints++
		}
		g.jointMembers = append(g.jointMembers, members)
	}
}

func (g *IndexGraph) GetNumRoads() int {
	return len(g.roads)
}

func (g *IndexGraph) GetNumJoints() int {
	return len(g.jointMembers)
}

func (g *IndexGraph) GetNumPoints() int {
	return g.numPoints
}

func (g *IndexGraph) GetJointId(rp datastructure.RoadPoint) uint32 {
	road, ok := g.roads[rp.GetFeatureId()]
	if !ok {
		return pkg.INVALID_JOINT_ID
	}
	return road.GetJointId(rp.GetPointIdx())
}

func (g *IndexGraph) GetJointMembers(jointId uint32) []datastructure.RoadPoint {
	return g.jointMembers[jointId]
}

func (g *IndexGraph) ForEachRoad(fn func(featureId uint32, road *RoadJointIds)) {
	for featureId, road := range g.roads {
		fn(featureId, road)
	}
}

// SegmentWeight prices a single segment with the graph's estimator.
func (g *IndexGraph) SegmentWeight(seg datastructure.Segment) float64 {
	geom := g.geometry.GetRoadGeometry(seg.GetFeatureId())
	if !geom.IsValid() {
		return pkg.INF_WEIGHT
	}
	from := geom.GetPoint(int(seg.GetSegmentIdx()))
	to := geom.GetPoint(int(seg.GetSegmentIdx()) + 1)
	return g.estimator.SegmentWeight(from, to, geom.GetSpeedKmPh())
}

// GetEdgeList enumerates the segments reachable from (outgoing) or
// leading into (ingoing) the given segment. The edge weight is the cost
// of the neighbouring segment.
func (g *IndexGraph) GetEdgeList(from datastructure.Segment, outgoing bool) []SegmentEdge {
	var pointIdx uint32
	if outgoing {
		pointIdx = from.GetPointIdxTo()
	} else {
		pointIdx = from.GetPointIdxFrom()
	}

	edges := make([]SegmentEdge, 0, 4)
	rp := datastructure.NewRoadPoint(from.GetFeatureId(), pointIdx)
	jointId := g.GetJointId(rp)
	if jointId != pkg.INVALID_JOINT_ID {
		for _, member := range g.jointMembers[jointId] {
			edges = g.appendSegmentsAtPoint(edges, member, outgoing)
		}
	} else {
		edges = g.appendSegmentsAtPoint(edges, rp, outgoing)
	}
	return edges
}

// appendSegmentsAtPoint emits the segments incident to one road point:
// outgoing segments leave it, ingoing segments end on it. Backward
// traversals of one-way roads are not emitted.
func (g *IndexGraph) appendSegmentsAtPoint(edges []SegmentEdge, rp datastructure.RoadPoint,
	outgoing bool) []SegmentEdge {
	geom := g.geometry.GetRoadGeometry(rp.GetFeatureId())
	if !geom.IsValid() {
		return edges
	}
	n := uint32(geom.PointsCount())
	idx := rp.GetPointIdx()
	if idx >= n {
		return edges
	}

	if outgoing {
		if idx+1 < n {
			seg := datastructure.NewSegment(rp.GetFeatureId(), idx, true)
			edges = append(edges, NewSegmentEdge(seg, g.SegmentWeight(seg)))
		}
		if idx > 0 && !geom.IsOneWay() {
			seg := datastructure.NewSegment(rp.GetFeatureId(), idx-1, false)
			edges = append(edges, NewSegmentEdge(seg, g.SegmentWeight(seg)))
		}
	} else {
		if idx > 0 {
			seg := datastructure.NewSegment(rp.GetFeatureId(), idx-1, true)
			edges = append(edges, NewSegmentEdge(seg, g.SegmentWeight(seg)))
		}
		if idx+1 < n && !geom.IsOneWay() {
			seg := datastructure.NewSegment(rp.GetFeatureId(), idx, false)
			edges = append(edges, NewSegmentEdge(seg, g.SegmentWeight(seg)))
		}
	}
	return edges
}
