package roadgraph

import (
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
)

// Mode controls whether one-way features emit edges in both directions.
type Mode uint8

const (
	ObeyOnewayTag Mode = iota
	IgnoreOnewayTag
)

func (m Mode) String() string {
	if m == IgnoreOnewayTag {
		return "IgnoreOnewayTag"
	}
	return "ObeyOnewayTag"
}

// EdgeProjection pairs an edge with the projection of a query point onto
// it.
type EdgeProjection struct {
	edge       datastructure.Edge
	projection datastructure.Junction
}

func NewEdgeProjection(edge datastructure.Edge, projection datastructure.Junction) EdgeProjection {
	return EdgeProjection{edge: edge, projection: projection}
}

func (ep EdgeProjection) GetEdge() datastructure.Edge {
	return ep.edge
}

func (ep EdgeProjection) GetProjection() datastructure.Junction {
	return ep.projection
}

// RoadGraph is the abstract view of a tile's road network as junctions
// and directed edges, with a transient fake-edge overlay for routing
// endpoints.
//
// The mutating operations (AddFakeEdges, ResetFakes) must not run
// concurrently with readers of the same graph instance; routing requests
// sharing one tile are expected to hold their own graph value.
type RoadGraph interface {
	// OutgoingEdges returns the union of real edges incident to the
	// junction and fake overlay edges, outgoing direction.
	OutgoingEdges(junction datastructure.Junction) []datastructure.Edge
	IngoingEdges(junction datastructure.Junction) []datastructure.Edge

	RegularOutgoingEdges(junction datastructure.Junction) []datastructure.Edge
	RegularIngoingEdges(junction datastructure.Junction) []datastructure.Edge
	FakeOutgoingEdges(junction datastructure.Junction) []datastructure.Edge
	FakeIngoingEdges(junction datastructure.Junction) []datastructure.Edge

	MaxSpeedKmPh() float64
	SpeedKmPh(featureId uint32) float64
	SpeedOfEdgeKmPh(edge datastructure.Edge) float64

	RoadInfo(featureId uint32) datastructure.RoadInfo

	// FindClosestEdges returns up to count edges closest to the point,
	// ascending by squared distance from the projection to the point,
	// ties broken by (featureId, segmentIdx).
	FindClosestEdges(point datastructure.Point, count int) []EdgeProjection

	// ForEachFeatureClosestToCross invokes the loader on every feature
	// whose polyline contains a vertex equal to the cross point.
	ForEachFeatureClosestToCross(cross datastructure.Point, loader *CrossEdgesLoader)

	EdgeTypes(edge datastructure.Edge) datastructure.TypesHolder
	JunctionTypes(junction datastructure.Junction) datastructure.TypesHolder
	FeatureTypes(featureId uint32) datastructure.TypesHolder

	GetMode() Mode

	// AddFakeEdges splits the closest real edges at their projections and
	// joins the junction to the projections with paired fake edges. The
	// overlay is additive.
	AddFakeEdges(junction datastructure.Junction, vicinities []EdgeProjection)

	// ResetFakes empties both fake overlays in one operation.
	ResetFakes()

	// ClearState drops transient caches.
	ClearState()
}
