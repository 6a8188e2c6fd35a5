package roadgraph

import (
	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
)

// FakeOverlay holds the transient fake edges of one routing request,
// separately for ingoing and outgoing directions. Maps are keyed by the
// exact point of the junction: vicinity lookups belong to
// FindClosestEdges, not here.
type FakeOverlay struct {
	fakeIngoingEdges  map[datastructure.Point][]datastructure.Edge
	fakeOutgoingEdges map[datastructure.Point][]datastructure.Edge

	// real feature backing each part-of-real fake edge, for speed lookup
	realFeatureOf map[datastructure.Edge]uint32
}

func NewFakeOverlay() *FakeOverlay {
	return &FakeOverlay{
		fakeIngoingEdges:  make(map[datastructure.Point][]datastructure.Edge),
		fakeOutgoingEdges: make(map[datastructure.Point][]datastructure.Edge),
		realFeatureOf:     make(map[datastructure.Edge]uint32),
	}
}

func (o *FakeOverlay) FakeOutgoingEdges(junction datastructure.Junction) []datastructure.Edge {
	return o.fakeOutgoingEdges[junction.GetPoint()]
}

func (o *FakeOverlay) FakeIngoingEdges(junction datastructure.Junction) []datastructure.Edge {
	return o.fakeIngoingEdges[junction.GetPoint()]
}

// Reset empties both overlays in one operation.
func (o *FakeOverlay) Reset() {
	o.fakeIngoingEdges = make(map[datastructure.Point][]datastructure.Edge)
	o.fakeOutgoingEdges = make(map[datastructure.Point][]datastructure.Edge)
	o.realFeatureOf = make(map[datastructure.Edge]uint32)
}

// RealFeatureOf resolves the real feature backing a part-of-real fake
// edge.
func (o *FakeOverlay) RealFeatureOf(edge datastructure.Edge) (uint32, bool) {
	fid, ok := o.realFeatureOf[edge]
	return fid, ok
}

// AddFakeEdges splits each vicinity edge at its projection and joins the
// junction to the projection. Every inserted edge lies on or connects to
// a real segment, so all carry partOfReal.
func (o *FakeOverlay) AddFakeEdges(junction datastructure.Junction, vicinities []EdgeProjection) {
	for _, v := range vicinities {
		closestEdge := v.GetEdge()
		p := v.GetProjection()

		o.addPaired(junction, p, closestEdge.GetFeatureId())

		onStart := p.GetPoint().Equal(closestEdge.GetStartJunction().GetPoint())
		onEnd := p.GetPoint().Equal(closestEdge.GetEndJunction().GetPoint())
		if onStart || onEnd {
			// projection coincides with an endpoint, nothing to split:
			//        o junction                            o junction
			//        |                                     |
			//  (p) A o--------------->o B            A o--------------->o B (p)
			continue
		}

		// junction
		//        o
		//        |
		//      A o<-------x------->o B , x = p
		o.addPaired(closestEdge.GetStartJunction(), p, closestEdge.GetFeatureId())
		o.addPaired(p, closestEdge.GetEndJunction(), closestEdge.GetFeatureId())
	}
}

// addPaired inserts the fake edge from -> to and its reverse into both
// overlays.
func (o *FakeOverlay) addPaired(from, to datastructure.Junction, realFeatureId uint32) {
	edge := datastructure.MakeFakeEdge(from, to, true)
	reverse := edge.Reverse()

	o.fakeOutgoingEdges[from.GetPoint()] = append(o.fakeOutgoingEdges[from.GetPoint()], edge)
	o.fakeIngoingEdges[to.GetPoint()] = append(o.fakeIngoingEdges[to.GetPoint()], edge)

	o.fakeOutgoingEdges[to.GetPoint()] = append(o.fakeOutgoingEdges[to.GetPoint()], reverse)
	o.fakeIngoingEdges[from.GetPoint()] = append(o.fakeIngoingEdges[from.GetPoint()], reverse)

	if realFeatureId != pkg.INVALID_FEATURE_ID {
		o.realFeatureOf[edge] = realFeatureId
		o.realFeatureOf[reverse] = realFeatureId
	}
}
