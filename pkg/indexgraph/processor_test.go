package indexgraph

import (
	"testing"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
	"github.com/lintang-b-s/tilenav/pkg/osmfeature"
)

func road(points ...datastructure.Point) *osmfeature.Feature {
	return osmfeature.NewFeature(points, nil, pkg.RESIDENTIAL, false, nil)
}

func TestJointCoalescence(t *testing.T) {
	// A and B share the vertex (1, 0); the other three vertices stay
	// singletons and are dropped
	source := osmfeature.NewSourceFromFeatures([]*osmfeature.Feature{
		road(datastructure.NewPoint(0, 0), datastructure.NewPoint(1, 0)),
		road(datastructure.NewPoint(1, 0), datastructure.NewPoint(1, 1)),
	})

	processor, err := NewProcessor("default")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if err := processor.ProcessAllFeatures(source); err != nil {
		t.Fatalf("err: %v", err)
	}

	graph := NewIndexGraph(nil, nil)
	processor.BuildGraph(graph)

	if graph.GetNumJoints() != 1 {
		t.Fatalf("joints = %d, want 1", graph.GetNumJoints())
	}

	members := graph.GetJointMembers(0)
	if len(members) != 2 {
		t.Fatalf("joint members = %d, want 2", len(members))
	}
	wantMembers := map[datastructure.RoadPoint]bool{
		datastructure.NewRoadPoint(0, 1): true,
		datastructure.NewRoadPoint(1, 0): true,
	}
	for _, rp := range members {
		if !wantMembers[rp] {
			t.Errorf("unexpected joint member %v", rp)
		}
	}

	if got := graph.GetJointId(datastructure.NewRoadPoint(0, 0)); got != pkg.INVALID_JOINT_ID {
		t.Errorf("singleton vertex has joint id %d", got)
	}
}

func TestNoSingletonJoints(t *testing.T) {
	source := osmfeature.NewSourceFromFeatures([]*osmfeature.Feature{
		road(datastructure.NewPoint(0, 0), datastructure.NewPoint(1, 0)),
		road(datastructure.NewPoint(5, 5), datastructure.NewPoint(6, 5)),
	})

	processor, err := NewProcessor("default")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if err := processor.ProcessAllFeatures(source); err != nil {
		t.Fatalf("err: %v", err)
	}

	graph := NewIndexGraph(nil, nil)
	processor.BuildGraph(graph)

	if graph.GetNumJoints() != 0 {
		t.Errorf("joints = %d, want 0 (no shared vertices)", graph.GetNumJoints())
	}

	// masks survive for road features without joints: such features stay
	// routable through their interior vertices
	masks := processor.GetMasks()
	if len(masks) != 2 {
		t.Fatalf("masks = %d, want 2", len(masks))
	}
	for featureId, mask := range masks {
		if mask == 0 {
			t.Errorf("feature %d has empty mask", featureId)
		}
	}
}

func TestNonRoadFeatureSkipped(t *testing.T) {
	building := osmfeature.NewFeature([]datastructure.Point{
		datastructure.NewPoint(0, 0), datastructure.NewPoint(1, 0),
	}, nil, pkg.UNKNOWN, false, nil)

	source := osmfeature.NewSourceFromFeatures([]*osmfeature.Feature{building})

	processor, err := NewProcessor("default")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if err := processor.ProcessAllFeatures(source); err != nil {
		t.Fatalf("err: %v", err)
	}

	if len(processor.GetMasks()) != 0 {
		t.Error("non-road feature must not get a mask")
	}
}
