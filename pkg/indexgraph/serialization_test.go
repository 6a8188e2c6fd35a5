package indexgraph

import (
	"bytes"
	"testing"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
	"github.com/stretchr/testify/require"
)

func TestSerializationRoundtrip(t *testing.T) {
	jointA := datastructure.NewJoint()
	jointA.AddPoint(datastructure.NewRoadPoint(0, 1))
	jointA.AddPoint(datastructure.NewRoadPoint(1, 0))

	jointB := datastructure.NewJoint()
	jointB.AddPoint(datastructure.NewRoadPoint(1, 3))
	jointB.AddPoint(datastructure.NewRoadPoint(2, 0))
	jointB.AddPoint(datastructure.NewRoadPoint(3, 5))

	graph := NewIndexGraph(nil, nil)
	graph.Import([]datastructure.Joint{jointA, jointB})

	masks := map[uint32]pkg.VehicleMask{
		0: pkg.ALL_VEHICLES_MASK,
		1: pkg.CAR_MASK,
		2: pkg.PEDESTRIAN_MASK | pkg.BICYCLE_MASK,
		9: pkg.BICYCLE_MASK,
	}

	var buf bytes.Buffer
	require.NoError(t, Serialize(graph, masks, &buf))

	restored := NewIndexGraph(nil, nil)
	restoredMasks, err := Deserialize(&buf, restored)
	require.NoError(t, err)

	require.Equal(t, masks, restoredMasks)
	require.Equal(t, graph.GetNumJoints(), restored.GetNumJoints())
	require.Equal(t, graph.GetNumPoints(), restored.GetNumPoints())

	for jointId := 0; jointId < graph.GetNumJoints(); jointId++ {
		require.Equal(t, graph.GetJointMembers(uint32(jointId)),
			restored.GetJointMembers(uint32(jointId)), "joint %d", jointId)
	}

	require.Equal(t, uint32(0), restored.GetJointId(datastructure.NewRoadPoint(0, 1)))
	require.Equal(t, uint32(1), restored.GetJointId(datastructure.NewRoadPoint(3, 5)))
	require.Equal(t, pkg.INVALID_JOINT_ID, restored.GetJointId(datastructure.NewRoadPoint(0, 0)))
}

func TestDeserializeRejectsGarbage(t *testing.T) {
	restored := NewIndexGraph(nil, nil)
	_, err := Deserialize(bytes.NewBufferString("not a routing section\n"), restored)
	require.Error(t, err)
}
