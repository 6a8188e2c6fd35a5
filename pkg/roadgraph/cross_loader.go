package roadgraph

import (
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
)

type loaderKind uint8

const (
	loadOutgoing loaderKind = iota
	loadIngoing
)

// CrossEdgesLoader materialises the real edges incident to a cross point,
// one feature at a time. The outgoing and ingoing behaviours are the two
// strategies of the same scan.
type CrossEdgesLoader struct {
	cross datastructure.Junction
	mode  Mode
	kind  loaderKind
	edges []datastructure.Edge
}

func NewCrossOutgoingLoader(cross datastructure.Junction, mode Mode) *CrossEdgesLoader {
	return &CrossEdgesLoader{cross: cross, mode: mode, kind: loadOutgoing}
}

func NewCrossIngoingLoader(cross datastructure.Junction, mode Mode) *CrossEdgesLoader {
	return &CrossEdgesLoader{cross: cross, mode: mode, kind: loadIngoing}
}

func (l *CrossEdgesLoader) Edges() []datastructure.Edge {
	return l.edges
}

// LoadEdges scans the feature polyline for vertices equal to the cross
// and emits the incident edges per the loader's strategy.
func (l *CrossEdgesLoader) LoadEdges(featureId uint32, roadInfo datastructure.RoadInfo) {
	forEachEdge(l.cross, roadInfo, func(segmentIdx uint32, endJunction datastructure.Junction, forward bool) {
		switch l.kind {
		case loadOutgoing:
			if forward || roadInfo.IsBidirectional() || l.mode == IgnoreOnewayTag {
				l.edges = append(l.edges,
					datastructure.NewEdge(featureId, forward, segmentIdx, l.cross, endJunction))
			}
		case loadIngoing:
			if !forward || roadInfo.IsBidirectional() || l.mode == IgnoreOnewayTag {
				l.edges = append(l.edges,
					datastructure.NewEdge(featureId, !forward, segmentIdx, endJunction, l.cross))
			}
		}
	})
}

// forEachEdge finds every polyline vertex equal to the cross point and
// invokes fn for the successor vertex (head case, forward) and the
// predecessor vertex (tail case, backward).
func forEachEdge(cross datastructure.Junction, roadInfo datastructure.RoadInfo,
	fn func(segmentIdx uint32, junction datastructure.Junction, forward bool)) {
	junctions := roadInfo.GetJunctions()
	for i := 0; i < len(junctions); i++ {
		if !cross.GetPoint().Equal(junctions[i].GetPoint()) {
			continue
		}

		if i+1 < len(junctions) {
			// head of the edge:
			// cross
			//     o------------>o
			fn(uint32(i), junctions[i+1], true)
		}
		if i > 0 {
			// tail of the edge:
			//                cross
			//     o------------>o
			fn(uint32(i-1), junctions[i-1], false)
		}
	}
}
