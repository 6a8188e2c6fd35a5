package crossmwm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
	"github.com/lintang-b-s/tilenav/pkg/mwmfile"
	"github.com/lintang-b-s/tilenav/pkg/util"
)

// Serialize writes the transition list and the per-vehicle connector
// blocks into the cross_mwm section. Deserialize is the exact inverse.
func Serialize(transitions []Transition, connectors ConnectorsPerVehicleType,
	params mwmfile.CodingParams, w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d %d %d\n", params.GetCoordBits(), len(transitions), len(connectors))

	for _, t := range transitions {
		fmt.Fprintf(bw, "%d %d %d %d %t %s %s %s %s\n",
			t.GetFeatureId(), t.GetSegmentIdx(), t.GetRoadMask(), t.GetOneWayMask(),
			t.ForwardIsEnter(),
			formatCoord(t.GetBackPoint().GetX()), formatCoord(t.GetBackPoint().GetY()),
			formatCoord(t.GetFrontPoint().GetX()), formatCoord(t.GetFrontPoint().GetY()))
	}

	for _, c := range connectors {
		fmt.Fprintf(bw, "%d %d %d %t\n",
			c.GetVehicleType(), len(c.GetEnters()), len(c.GetExits()), c.HasWeights())

		for _, enter := range c.GetEnters() {
			writeSegment(bw, enter)
		}
		for _, exit := range c.GetExits() {
			writeSegment(bw, exit)
		}

		if !c.HasWeights() {
			continue
		}
		for i := range c.GetEnters() {
			for j := range c.GetExits() {
				if j > 0 {
					fmt.Fprintf(bw, " ")
				}
				fmt.Fprintf(bw, "%s", formatCoord(c.weights[i*len(c.exits)+j]))
			}
			fmt.Fprintf(bw, "\n")
		}
	}

	return bw.Flush()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeSegment(bw *bufio.Writer, seg datastructure.Segment) {
	fmt.Fprintf(bw, "%d %d %t\n", seg.GetFeatureId(), seg.GetSegmentIdx(), seg.IsForward())
}

// Deserialize reads the cross_mwm section back into transitions and
// connectors.
func Deserialize(r io.Reader) ([]Transition, ConnectorsPerVehicleType, mwmfile.CodingParams, error) {
	var params mwmfile.CodingParams
	connectors := NewConnectorsPerVehicleType()

	br := bufio.NewReader(r)
	line, err := util.ReadLine(br)
	if err != nil {
		return nil, connectors, params, util.WrapErrorf(err, util.ErrBadFormat, "cross mwm header")
	}
	header := strings.Fields(line)
	if len(header) != 3 {
		return nil, connectors, params, util.WrapErrorf(nil, util.ErrBadFormat, "cross mwm header %q", line)
	}

	coordBits, err := strconv.ParseUint(header[0], 10, 8)
	if err != nil {
		return nil, connectors, params, util.WrapErrorf(err, util.ErrBadFormat, "coord bits")
	}
	params = mwmfile.NewCodingParams(uint8(coordBits))

	numTransitions, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, connectors, params, util.WrapErrorf(err, util.ErrBadFormat, "transition count")
	}
	numConnectors, err := strconv.Atoi(header[2])
	if err != nil || numConnectors != int(pkg.NUM_VEHICLE_TYPES) {
		return nil, connectors, params, util.WrapErrorf(err, util.ErrBadFormat, "connector count %q", header[2])
	}

	transitions := make([]Transition, 0, numTransitions)
	for i := 0; i < numTransitions; i++ {
		line, err := util.ReadLine(br)
		if err != nil {
			return nil, connectors, params, util.WrapErrorf(err, util.ErrBadFormat, "transition %d", i)
		}
		t, err := parseTransition(line)
		if err != nil {
			return nil, connectors, params, err
		}
		transitions = append(transitions, t)
	}

	for v := 0; v < numConnectors; v++ {
		if err := readConnector(br, connectors); err != nil {
			return nil, connectors, params, err
		}
	}

	return transitions, connectors, params, nil
}

func parseTransition(line string) (Transition, error) {
	fields := strings.Fields(line)
	if len(fields) != 9 {
		return Transition{}, util.WrapErrorf(nil, util.ErrBadFormat, "transition %q", line)
	}

	featureId, err1 := strconv.ParseUint(fields[0], 10, 32)
	segmentIdx, err2 := strconv.ParseUint(fields[1], 10, 32)
	roadMask, err3 := strconv.ParseUint(fields[2], 10, 8)
	oneWayMask, err4 := strconv.ParseUint(fields[3], 10, 8)
	forwardIsEnter, err5 := strconv.ParseBool(fields[4])
	bx, err6 := strconv.ParseFloat(fields[5], 64)
	by, err7 := strconv.ParseFloat(fields[6], 64)
	fx, err8 := strconv.ParseFloat(fields[7], 64)
	fy, err9 := strconv.ParseFloat(fields[8], 64)
	for _, err := range []error{err1, err2, err3, err4, err5, err6, err7, err8, err9} {
		if err != nil {
			return Transition{}, util.WrapErrorf(err, util.ErrBadFormat, "transition %q", line)
		}
	}

	return NewTransition(uint32(featureId), uint32(segmentIdx),
		pkg.VehicleMask(roadMask), pkg.VehicleMask(oneWayMask), forwardIsEnter,
		datastructure.NewPoint(bx, by), datastructure.NewPoint(fx, fy)), nil
}

func readConnector(br *bufio.Reader, connectors ConnectorsPerVehicleType) error {
	line, err := util.ReadLine(br)
	if err != nil {
		return util.WrapErrorf(err, util.ErrBadFormat, "connector header")
	}
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return util.WrapErrorf(nil, util.ErrBadFormat, "connector header %q", line)
	}

	vehicleType, err := strconv.ParseUint(fields[0], 10, 8)
	if err != nil || vehicleType >= uint64(pkg.NUM_VEHICLE_TYPES) {
		return util.WrapErrorf(err, util.ErrBadFormat, "connector vehicle type %q", fields[0])
	}
	numEnters, err1 := strconv.Atoi(fields[1])
	numExits, err2 := strconv.Atoi(fields[2])
	hasWeights, err3 := strconv.ParseBool(fields[3])
	for _, err := range []error{err1, err2, err3} {
		if err != nil {
			return util.WrapErrorf(err, util.ErrBadFormat, "connector header %q", line)
		}
	}

	c := connectors[vehicleType]
	for i := 0; i < numEnters; i++ {
		seg, err := readSegment(br)
		if err != nil {
			return err
		}
		c.addEnter(seg)
	}
	for i := 0; i < numExits; i++ {
		seg, err := readSegment(br)
		if err != nil {
			return err
		}
		c.addExit(seg)
	}

	if !hasWeights {
		return nil
	}

	c.weights = make([]float64, numEnters*numExits)
	for i := 0; i < numEnters; i++ {
		line, err := util.ReadLine(br)
		if err != nil {
			return util.WrapErrorf(err, util.ErrBadFormat, "weight row %d", i)
		}
		row := strings.Fields(line)
		if len(row) != numExits {
			return util.WrapErrorf(nil, util.ErrBadFormat, "weight row %d: %q", i, line)
		}
		for j := 0; j < numExits; j++ {
			w, err := strconv.ParseFloat(row[j], 64)
			if err != nil {
				return util.WrapErrorf(err, util.ErrBadFormat, "weight %d,%d", i, j)
			}
			c.weights[i*numExits+j] = w
		}
	}
	return nil
}

func readSegment(br *bufio.Reader) (datastructure.Segment, error) {
	line, err := util.ReadLine(br)
	if err != nil {
		return datastructure.Segment{}, util.WrapErrorf(err, util.ErrBadFormat, "segment")
	}
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return datastructure.Segment{}, util.WrapErrorf(nil, util.ErrBadFormat, "segment %q", line)
	}
	featureId, err1 := strconv.ParseUint(fields[0], 10, 32)
	segmentIdx, err2 := strconv.ParseUint(fields[1], 10, 32)
	forward, err3 := strconv.ParseBool(fields[2])
	for _, err := range []error{err1, err2, err3} {
		if err != nil {
			return datastructure.Segment{}, util.WrapErrorf(err, util.ErrBadFormat, "segment %q", line)
		}
	}
	return datastructure.NewSegment(uint32(featureId), uint32(segmentIdx), forward), nil
}
