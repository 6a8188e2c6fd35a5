package crossmwm

import (
	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
)

// Connector holds one vehicle type's border crossings of one tile: the
// ordered enter and exit segments and the precomputed leap-weight table
// from every enter to every exit.
type Connector struct {
	vehicleType pkg.VehicleType

	enters []datastructure.Segment
	exits  []datastructure.Segment

	enterIdx map[datastructure.Segment]int
	exitIdx  map[datastructure.Segment]int

	// weights[enterIdx*len(exits)+exitIdx], NO_ROUTE where unreachable;
	// empty until FillWeights runs
	weights []float64
}

func NewConnector(vehicleType pkg.VehicleType) *Connector {
	return &Connector{
		vehicleType: vehicleType,
		enters:      make([]datastructure.Segment, 0),
		exits:       make([]datastructure.Segment, 0),
		enterIdx:    make(map[datastructure.Segment]int),
		exitIdx:     make(map[datastructure.Segment]int),
	}
}

func (c *Connector) GetVehicleType() pkg.VehicleType {
	return c.vehicleType
}

// AddTransition registers the crossing segments of one transition. The
// forward segment enters or exits per forwardIsEnter; bidirectional
// features contribute the backward segment on the opposite list.
func (c *Connector) AddTransition(featureId, segmentIdx uint32, oneWay, forwardIsEnter bool) {
	forward := datastructure.NewSegment(featureId, segmentIdx, true)
	if forwardIsEnter {
		c.addEnter(forward)
	} else {
		c.addExit(forward)
	}

	if !oneWay {
		backward := datastructure.NewSegment(featureId, segmentIdx, false)
		if forwardIsEnter {
			c.addExit(backward)
		} else {
			c.addEnter(backward)
		}
	}
}

func (c *Connector) addEnter(seg datastructure.Segment) {
	c.enterIdx[seg] = len(c.enters)
	c.enters = append(c.enters, seg)
}

func (c *Connector) addExit(seg datastructure.Segment) {
	c.exitIdx[seg] = len(c.exits)
	c.exits = append(c.exits, seg)
}

func (c *Connector) GetEnters() []datastructure.Segment {
	return c.enters
}

func (c *Connector) GetExits() []datastructure.Segment {
	return c.exits
}

func (c *Connector) GetEnter(i int) datastructure.Segment {
	return c.enters[i]
}

func (c *Connector) GetExit(i int) datastructure.Segment {
	return c.exits[i]
}

func (c *Connector) IsEnter(seg datastructure.Segment) bool {
	_, ok := c.enterIdx[seg]
	return ok
}

func (c *Connector) IsExit(seg datastructure.Segment) bool {
	_, ok := c.exitIdx[seg]
	return ok
}

func (c *Connector) HasWeights() bool {
	return len(c.weights) != 0
}

// FillWeights materialises the leap-weight table. The callback returns
// the cost from enter to exit or NO_ROUTE.
func (c *Connector) FillWeights(fn func(enter, exit datastructure.Segment) float64) {
	c.weights = make([]float64, len(c.enters)*len(c.exits))
	for i, enter := range c.enters {
		for j, exit := range c.exits {
			c.weights[i*len(c.exits)+j] = fn(enter, exit)
		}
	}
}

// GetLeapWeight looks up the precomputed cost between two crossing
// segments; ok is false when the pair is unknown, the table is missing,
// or the pair is unreachable.
func (c *Connector) GetLeapWeight(enter, exit datastructure.Segment) (float64, bool) {
	if !c.HasWeights() {
		return pkg.NO_ROUTE, false
	}
	i, okEnter := c.enterIdx[enter]
	j, okExit := c.exitIdx[exit]
	if !okEnter || !okExit {
		return pkg.NO_ROUTE, false
	}
	w := c.weights[i*len(c.exits)+j]
	if w == pkg.NO_ROUTE {
		return pkg.NO_ROUTE, false
	}
	return w, true
}

// ConnectorsPerVehicleType indexes a tile's connectors by vehicle type.
type ConnectorsPerVehicleType [pkg.NUM_VEHICLE_TYPES]*Connector

func NewConnectorsPerVehicleType() ConnectorsPerVehicleType {
	var connectors ConnectorsPerVehicleType
	for i := range connectors {
		connectors[i] = NewConnector(pkg.VehicleType(i))
	}
	return connectors
}

// AddTransitionForMask routes one transition into the connector of every
// vehicle type whose bit is set in the transition's road mask.
func (cs ConnectorsPerVehicleType) AddTransitionForMask(t Transition) {
	for i := range cs {
		mask := pkg.GetVehicleMask(pkg.VehicleType(i))
		if t.GetRoadMask()&mask == 0 {
			continue
		}
		oneWay := t.GetOneWayMask()&mask != 0
		cs[i].AddTransition(t.GetFeatureId(), t.GetSegmentIdx(), oneWay, t.ForwardIsEnter())
	}
}
