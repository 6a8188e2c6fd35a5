package indexgraph

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
	"github.com/lintang-b-s/tilenav/pkg/util"
)

// Serialize writes the joint table and the vehicle-mask table of one tile
// into the routing section. Deserialize is the exact inverse.
func Serialize(graph *IndexGraph, masks map[uint32]pkg.VehicleMask, w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d %d\n", graph.GetNumJoints(), len(masks))

	for jointId := 0; jointId < graph.GetNumJoints(); jointId++ {
		members := graph.GetJointMembers(uint32(jointId))
		fmt.Fprintf(bw, "%d", len(members))
		for _, rp := range members {
			fmt.Fprintf(bw, " %d %d", rp.GetFeatureId(), rp.GetPointIdx())
		}
		fmt.Fprintf(bw, "\n")
	}

	featureIds := make([]uint32, 0, len(masks))
	for featureId := range masks {
		featureIds = append(featureIds, featureId)
	}
	sort.Slice(featureIds, func(i, j int) bool { return featureIds[i] < featureIds[j] })

	for _, featureId := range featureIds {
		fmt.Fprintf(bw, "%d %d\n", featureId, masks[featureId])
	}

	return bw.Flush()
}

// Deserialize reads the routing section back into a fresh graph.
func Deserialize(r io.Reader, graph *IndexGraph) (map[uint32]pkg.VehicleMask, error) {
	br := bufio.NewReader(r)

	line, err := util.ReadLine(br)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadFormat, "routing section header")
	}
	header := strings.Fields(line)
	if len(header) != 2 {
		return nil, util.WrapErrorf(nil, util.ErrBadFormat, "routing section header: %q", line)
	}

	numJoints, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadFormat, "joint count")
	}
	numMasks, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadFormat, "mask count")
	}

	joints := make([]datastructure.Joint, 0, numJoints)
	for i := 0; i < numJoints; i++ {
		line, err := util.ReadLine(br)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadFormat, "joint %d", i)
		}
		fields := strings.Fields(line)
		if len(fields) < 1 {
			return nil, util.WrapErrorf(nil, util.ErrBadFormat, "joint %d: %q", i, line)
		}
		size, err := strconv.Atoi(fields[0])
		if err != nil || len(fields) != 1+2*size {
			return nil, util.WrapErrorf(err, util.ErrBadFormat, "joint %d: %q", i, line)
		}

		joint := datastructure.NewJoint()
		for m := 0; m < size; m++ {
			featureId, err := strconv.ParseUint(fields[1+2*m], 10, 32)
			if err != nil {
				return nil, util.WrapErrorf(err, util.ErrBadFormat, "joint %d member %d", i, m)
			}
			pointIdx, err := strconv.ParseUint(fields[2+2*m], 10, 32)
			if err != nil {
				return nil, util.WrapErrorf(err, util.ErrBadFormat, "joint %d member %d", i, m)
			}
			joint.AddPoint(datastructure.NewRoadPoint(uint32(featureId), uint32(pointIdx)))
		}
		joints = append(joints, joint)
	}

	graph.Import(joints)

	masks := make(map[uint32]pkg.VehicleMask, numMasks)
	for i := 0; i < numMasks; i++ {
		line, err := util.ReadLine(br)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadFormat, "mask %d", i)
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, util.WrapErrorf(nil, util.ErrBadFormat, "mask %d: %q", i, line)
		}
		featureId, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadFormat, "mask %d", i)
		}
		mask, err := strconv.ParseUint(fields[1], 10, 8)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadFormat, "mask %d", i)
		}
		masks[uint32(featureId)] = pkg.VehicleMask(mask)
	}

	return masks, nil
}
