package vehicle

import (
	"testing"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
	"github.com/lintang-b-s/tilenav/pkg/osmfeature"
)

func way(hwType pkg.OsmHighwayType, oneway bool) datastructure.Feature {
	return osmfeature.NewFeature([]datastructure.Point{
		datastructure.NewPoint(0, 0), datastructure.NewPoint(1, 0),
	}, nil, hwType, oneway, nil)
}

func TestRoadMask(t *testing.T) {
	maskBuilder, err := NewMaskBuilder("default")
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	testCases := []struct {
		name    string
		feature datastructure.Feature
		want    pkg.VehicleMask
	}{
		{
			name:    "residential road serves everyone",
			feature: way(pkg.RESIDENTIAL, false),
			want:    pkg.ALL_VEHICLES_MASK,
		},
		{
			name:    "motorway is car only",
			feature: way(pkg.MOTORWAY, false),
			want:    pkg.CAR_MASK,
		},
		{
			name:    "footway serves pedestrians and bicycles",
			feature: way(pkg.FOOTWAY, false),
			want:    pkg.PEDESTRIAN_MASK | pkg.BICYCLE_MASK,
		},
		{
			name:    "steps are pedestrian only",
			feature: way(pkg.STEPS, false),
			want:    pkg.PEDESTRIAN_MASK,
		},
		{
			name:    "non-road feature gets the empty mask",
			feature: way(pkg.UNKNOWN, false),
			want:    0,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := maskBuilder.RoadMask(tt.feature); got != tt.want {
				t.Errorf("road mask = %b, want %b", got, tt.want)
			}
		})
	}
}

func TestOnewayMask(t *testing.T) {
	maskBuilder, err := NewMaskBuilder("default")
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	// pedestrians ignore oneway tags, vehicles obey them
	got := maskBuilder.OnewayMask(way(pkg.RESIDENTIAL, true))
	want := pkg.CAR_MASK | pkg.BICYCLE_MASK
	if got != want {
		t.Errorf("oneway mask = %b, want %b", got, want)
	}

	if got := maskBuilder.OnewayMask(way(pkg.RESIDENTIAL, false)); got != 0 {
		t.Errorf("oneway mask of a bidirectional road = %b, want 0", got)
	}
}

func TestMaxSpeeds(t *testing.T) {
	maskBuilder, err := NewMaskBuilder("default")
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	carMax := maskBuilder.MaxSpeedKmPh(pkg.CAR)
	bicycleMax := maskBuilder.MaxSpeedKmPh(pkg.BICYCLE)
	pedestrianMax := maskBuilder.MaxSpeedKmPh(pkg.PEDESTRIAN)

	if !(carMax > bicycleMax && bicycleMax > pedestrianMax) {
		t.Errorf("speed ordering broken: car=%v bicycle=%v pedestrian=%v",
			carMax, bicycleMax, pedestrianMax)
	}
}
