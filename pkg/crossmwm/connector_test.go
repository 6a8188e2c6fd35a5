package crossmwm

import (
	"testing"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
)

func TestAddTransitionClassification(t *testing.T) {
	testCases := []struct {
		name           string
		oneWay         bool
		forwardIsEnter bool
		wantEnters     []datastructure.Segment
		wantExits      []datastructure.Segment
	}{
		{
			name:           "bidirectional entering segment",
			oneWay:         false,
			forwardIsEnter: true,
			wantEnters:     []datastructure.Segment{datastructure.NewSegment(4, 2, true)},
			wantExits:      []datastructure.Segment{datastructure.NewSegment(4, 2, false)},
		},
		{
			name:           "bidirectional exiting segment",
			oneWay:         false,
			forwardIsEnter: false,
			wantEnters:     []datastructure.Segment{datastructure.NewSegment(4, 2, false)},
			wantExits:      []datastructure.Segment{datastructure.NewSegment(4, 2, true)},
		},
		{
			name:           "oneway entering segment",
			oneWay:         true,
			forwardIsEnter: true,
			wantEnters:     []datastructure.Segment{datastructure.NewSegment(4, 2, true)},
			wantExits:      nil,
		},
		{
			name:           "oneway exiting segment",
			oneWay:         true,
			forwardIsEnter: false,
			wantEnters:     nil,
			wantExits:      []datastructure.Segment{datastructure.NewSegment(4, 2, true)},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConnector(pkg.CAR)
			c.AddTransition(4, 2, tt.oneWay, tt.forwardIsEnter)

			if len(c.GetEnters()) != len(tt.wantEnters) {
				t.Fatalf("enters = %v, want %v", c.GetEnters(), tt.wantEnters)
			}
			for i, seg := range tt.wantEnters {
				if c.GetEnter(i) != seg {
					t.Errorf("enter %d = %v, want %v", i, c.GetEnter(i), seg)
				}
			}
			if len(c.GetExits()) != len(tt.wantExits) {
				t.Fatalf("exits = %v, want %v", c.GetExits(), tt.wantExits)
			}
			for i, seg := range tt.wantExits {
				if c.GetExit(i) != seg {
					t.Errorf("exit %d = %v, want %v", i, c.GetExit(i), seg)
				}
			}
		})
	}
}

func TestConnectorsPerVehicleTypeMaskRouting(t *testing.T) {
	connectors := NewConnectorsPerVehicleType()

	// car-only road, one-way for cars
	t1 := NewTransition(1, 0, pkg.CAR_MASK, pkg.CAR_MASK, true,
		datastructure.NewPoint(0, 0), datastructure.NewPoint(1, 0))
	connectors.AddTransitionForMask(t1)

	if got := len(connectors[pkg.CAR].GetEnters()); got != 1 {
		t.Errorf("car enters = %d, want 1", got)
	}
	if got := len(connectors[pkg.CAR].GetExits()); got != 0 {
		t.Errorf("car exits = %d, want 0", got)
	}
	if got := len(connectors[pkg.PEDESTRIAN].GetEnters()); got != 0 {
		t.Errorf("pedestrian enters = %d, want 0", got)
	}
	if got := len(connectors[pkg.BICYCLE].GetEnters()); got != 0 {
		t.Errorf("bicycle enters = %d, want 0", got)
	}

	// all-vehicle road, one-way only for cars
	t2 := NewTransition(2, 1, pkg.ALL_VEHICLES_MASK, pkg.CAR_MASK, false,
		datastructure.NewPoint(0, 0), datastructure.NewPoint(1, 0))
	connectors.AddTransitionForMask(t2)

	if got := len(connectors[pkg.PEDESTRIAN].GetEnters()); got != 1 {
		t.Errorf("pedestrian enters = %d, want 1 (bidirectional crossing)", got)
	}
	if got := len(connectors[pkg.CAR].GetEnters()); got != 1 {
		t.Errorf("car enters = %d, want 1 (oneway exit only)", got)
	}
	if got := len(connectors[pkg.CAR].GetExits()); got != 1 {
		t.Errorf("car exits = %d, want 1", got)
	}
}

func TestFillWeightsLookup(t *testing.T) {
	c := NewConnector(pkg.CAR)
	c.AddTransition(1, 0, true, true)  // enter
	c.AddTransition(2, 0, true, false) // exit
	c.AddTransition(3, 0, true, false) // exit

	enter := c.GetEnter(0)
	exitA := c.GetExit(0)
	exitB := c.GetExit(1)

	if c.HasWeights() {
		t.Fatal("connector must not have weights before FillWeights")
	}

	c.FillWeights(func(e, x datastructure.Segment) float64 {
		if x == exitA {
			return 42.5
		}
		return pkg.NO_ROUTE
	})

	if !c.HasWeights() {
		t.Fatal("connector must have weights after FillWeights")
	}

	w, ok := c.GetLeapWeight(enter, exitA)
	if !ok || w != 42.5 {
		t.Errorf("leap weight = %v (%v), want 42.5", w, ok)
	}
	if _, ok := c.GetLeapWeight(enter, exitB); ok {
		t.Error("unreachable pair must resolve to no route")
	}
	if _, ok := c.GetLeapWeight(exitA, enter); ok {
		t.Error("unknown pair must resolve to no route")
	}
}

func TestTransitionInsideOutsidePoints(t *testing.T) {
	back := datastructure.NewPoint(0.5, 0.9)
	front := datastructure.NewPoint(0.5, 1.1)

	exiting := NewTransition(0, 0, pkg.CAR_MASK, 0, false, back, front)
	if exiting.GetPointInside() != back || exiting.GetPointOutside() != front {
		t.Error("exiting transition: back point is inside, front outside")
	}

	entering := NewTransition(0, 0, pkg.CAR_MASK, 0, true, back, front)
	if entering.GetPointInside() != front || entering.GetPointOutside() != back {
		t.Error("entering transition: front point is inside, back outside")
	}
}
