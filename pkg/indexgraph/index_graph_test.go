package indexgraph

import (
	"testing"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
	"github.com/lintang-b-s/tilenav/pkg/osmfeature"
	"github.com/lintang-b-s/tilenav/pkg/vehicle"
)

func buildIndexGraph(t *testing.T, features ...*osmfeature.Feature) *IndexGraph {
	t.Helper()

	source := osmfeature.NewSourceFromFeatures(features)
	model := vehicle.CarModelFactory().GetVehicleModelForCountry("default")

	geometry, err := NewGeometryLoaderFromSource(source, model)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	graph := NewIndexGraph(geometry, NewTimeEstimator(model.MaxSpeedKmPh()))

	processor, err := NewProcessor("default")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if err := processor.ProcessAllFeatures(source); err != nil {
		t.Fatalf("err: %v", err)
	}
	processor.BuildGraph(graph)
	return graph
}

func segmentTargets(edges []SegmentEdge) map[datastructure.Segment]bool {
	targets := make(map[datastructure.Segment]bool, len(edges))
	for _, e := range edges {
		targets[e.GetTarget()] = true
	}
	return targets
}

func TestGetEdgeListThroughJoint(t *testing.T) {
	graph := buildIndexGraph(t,
		road(datastructure.NewPoint(0, 0), datastructure.NewPoint(1, 0)),
		road(datastructure.NewPoint(1, 0), datastructure.NewPoint(1, 1)))

	edges := graph.GetEdgeList(datastructure.NewSegment(0, 0, true), true)
	targets := segmentTargets(edges)

	if !targets[datastructure.NewSegment(1, 0, true)] {
		t.Errorf("missing continuation onto feature B, got %v", edges)
	}
	if !targets[datastructure.NewSegment(0, 0, false)] {
		t.Errorf("missing backward turn on feature A, got %v", edges)
	}
}

func TestGetEdgeListAlongRoad(t *testing.T) {
	// interior vertices without joints still chain along the feature
	graph := buildIndexGraph(t,
		road(datastructure.NewPoint(0, 0), datastructure.NewPoint(1, 0), datastructure.NewPoint(2, 0)))

	edges := graph.GetEdgeList(datastructure.NewSegment(0, 0, true), true)
	targets := segmentTargets(edges)

	if !targets[datastructure.NewSegment(0, 1, true)] {
		t.Errorf("missing along-road continuation, got %v", edges)
	}
}

func TestGetEdgeListOneway(t *testing.T) {
	oneway := osmfeature.NewFeature([]datastructure.Point{
		datastructure.NewPoint(0, 0), datastructure.NewPoint(1, 0), datastructure.NewPoint(2, 0),
	}, nil, pkg.RESIDENTIAL, true, nil)

	graph := buildIndexGraph(t, oneway)

	edges := graph.GetEdgeList(datastructure.NewSegment(0, 0, true), true)
	targets := segmentTargets(edges)

	if targets[datastructure.NewSegment(0, 0, false)] {
		t.Errorf("backward traversal emitted on a oneway road: %v", edges)
	}
	if !targets[datastructure.NewSegment(0, 1, true)] {
		t.Errorf("missing forward continuation, got %v", edges)
	}
}

func TestSegmentWeightPositive(t *testing.T) {
	graph := buildIndexGraph(t,
		road(datastructure.NewPoint(0, 0), datastructure.NewPoint(0.001, 0)))

	w := graph.SegmentWeight(datastructure.NewSegment(0, 0, true))
	if w <= 0 {
		t.Errorf("segment weight = %v, want > 0", w)
	}
}
