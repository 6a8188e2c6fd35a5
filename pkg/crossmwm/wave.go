package crossmwm

import (
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
	"github.com/lintang-b-s/tilenav/pkg/geo"
	"github.com/lintang-b-s/tilenav/pkg/indexgraph"
)

// WaveGraph is the view of the in-tile index graph the wave traverses.
type WaveGraph interface {
	GetEdgeList(seg datastructure.Segment, outgoing bool) []indexgraph.SegmentEdge
	SegmentWeight(seg datastructure.Segment) float64
}

// PropagateWave runs a best-first Dijkstra wave from the start segment
// over outgoing edges until the queue drains, recording the finalised
// distance of every settled segment in distanceMap. The start is seeded
// with its own segment weight so a settled distance is the full cost of
// the traversal chain including both endpoints.
//
// shouldStop is evaluated on each dequeue and cuts the wave short for
// bounded searches; ties between equal tentative distances resolve in
// segment order.
func PropagateWave(graph WaveGraph, start datastructure.Segment,
	shouldStop func(seg datastructure.Segment) bool,
	distanceMap map[datastructure.Segment]float64) {

	pq := datastructure.NewFourAryHeapWithTieBreak[datastructure.Segment](
		func(a, b datastructure.Segment) bool { return a.Less(b) })

	tentative := make(map[datastructure.Segment]float64)
	settled := make(map[datastructure.Segment]struct{})

	startWeight := graph.SegmentWeight(start)
	tentative[start] = startWeight
	pq.Insert(datastructure.NewPriorityQueueNode(startWeight, start))

	for !pq.IsEmpty() {
		node, err := pq.ExtractMin()
		if err != nil {
			return
		}
		u := node.GetItem()
		if _, done := settled[u]; done {
			// stale queue entry
			continue
		}
		if shouldStop(u) {
			return
		}

		settled[u] = struct{}{}
		distU := tentative[u]
		distanceMap[u] = distU

		for _, edge := range graph.GetEdgeList(u, true) {
			v := edge.GetTarget()
			if _, done := settled[v]; done {
				continue
			}

			newDist := distU + edge.GetWeight()
			old, seen := tentative[v]
			if seen && geo.Le(old, newDist) {
				continue
			}

			tentative[v] = newDist
			pq.Insert(datastructure.NewPriorityQueueNode(newDist, v))
		}
	}
}
