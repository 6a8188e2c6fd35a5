package builder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/borders"
	"github.com/lintang-b-s/tilenav/pkg/crossmwm"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
	"github.com/lintang-b-s/tilenav/pkg/indexgraph"
	"github.com/lintang-b-s/tilenav/pkg/mwmfile"
	"github.com/lintang-b-s/tilenav/pkg/osmfeature"
	"github.com/lintang-b-s/tilenav/pkg/vehicle"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// unit-ish square in the mercator plane (1 degree of latitude lands just
// above y=1)
const testPoly = `testland
1
   0.0 0.0
   1.0 0.0
   1.0 1.0
   0.0 1.0
   0.0 0.0
END
END
`

func writeBorders(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, borders.BORDERS_DIR), 0755))
	require.NoError(t, os.WriteFile(borders.BorderPath(dir, "testland"), []byte(testPoly), 0644))
}

func onewayRoad(points ...datastructure.Point) *osmfeature.Feature {
	return osmfeature.NewFeature(points, nil, pkg.RESIDENTIAL, true, nil)
}

func TestCalcCrossMwmTransitionsSingleExit(t *testing.T) {
	dir := t.TempDir()
	writeBorders(t, dir)

	source := osmfeature.NewSourceFromFeatures([]*osmfeature.Feature{
		onewayRoad(datastructure.NewPoint(0.5, 0.9), datastructure.NewPoint(0.5, 1.1)),
	})

	transitions, connectors, err := CalcCrossMwmTransitions(dir, "testland", source)
	require.NoError(t, err)
	require.Len(t, transitions, 1)

	tr := transitions[0]
	require.Equal(t, uint32(0), tr.GetFeatureId())
	require.Equal(t, uint32(0), tr.GetSegmentIdx())
	require.False(t, tr.ForwardIsEnter())
	require.Equal(t, datastructure.NewPoint(0.5, 0.9), tr.GetBackPoint())
	require.Equal(t, datastructure.NewPoint(0.5, 1.1), tr.GetFrontPoint())

	// every transition straddles the border
	regions, err := borders.LoadBorders(borders.BorderPath(dir, "testland"))
	require.NoError(t, err)
	require.True(t, borders.RegionsContain(regions, tr.GetPointInside()))
	require.False(t, borders.RegionsContain(regions, tr.GetPointOutside()))

	car := connectors[pkg.CAR]
	require.Len(t, car.GetEnters(), 0)
	require.Len(t, car.GetExits(), 1)
	require.Equal(t, datastructure.NewSegment(0, 0, true), car.GetExit(0))

	// pedestrians ignore the oneway tag, so the crossing also enters
	pedestrian := connectors[pkg.PEDESTRIAN]
	require.Len(t, pedestrian.GetEnters(), 1)
	require.Len(t, pedestrian.GetExits(), 1)
}

func TestBuildCrossMwmSectionLeapWeights(t *testing.T) {
	dir := t.TempDir()
	writeBorders(t, dir)

	// A crosses in at seg 0 and back out at seg 2; B only exits and is
	// unreachable from A
	featureA := onewayRoad(
		datastructure.NewPoint(0.5, -0.5),
		datastructure.NewPoint(0.5, 0.2),
		datastructure.NewPoint(0.5, 0.8),
		datastructure.NewPoint(0.5, 1.5))
	featureB := onewayRoad(
		datastructure.NewPoint(0.7, 0.8),
		datastructure.NewPoint(0.7, 1.5))
	source := osmfeature.NewSourceFromFeatures([]*osmfeature.Feature{featureA, featureB})

	logger := zap.NewNop()
	mwmFile := filepath.Join(dir, "testland.mwm")

	require.True(t, BuildRoutingIndex(mwmFile, "testland", source, logger))
	require.NoError(t, BuildCrossMwmSection(dir, mwmFile, "testland", source,
		[]pkg.VehicleType{pkg.CAR}, logger))

	reader, err := mwmfile.OpenReader(mwmFile)
	require.NoError(t, err)
	section, err := reader.GetReader(mwmfile.CROSS_MWM_FILE_TAG)
	require.NoError(t, err)

	transitions, connectors, _, err := crossmwm.Deserialize(section)
	require.NoError(t, err)
	require.Len(t, transitions, 3)

	car := connectors[pkg.CAR]
	require.Len(t, car.GetEnters(), 1)
	require.Len(t, car.GetExits(), 2)
	require.True(t, car.HasWeights())

	enter := datastructure.NewSegment(0, 0, true)
	exitA := datastructure.NewSegment(0, 2, true)
	exitB := datastructure.NewSegment(1, 0, true)

	model := vehicle.CarModelFactory().GetVehicleModelForCountry("testland")
	estimator := indexgraph.NewTimeEstimator(model.MaxSpeedKmPh())
	speed := model.SpeedKmPh(featureA)

	want := 0.0
	for i := 0; i < featureA.PointsCount()-1; i++ {
		want += estimator.SegmentWeight(featureA.Point(i), featureA.Point(i+1), speed)
	}

	got, ok := car.GetLeapWeight(enter, exitA)
	require.True(t, ok)
	require.InDelta(t, want, got, 1e-9)

	_, ok = car.GetLeapWeight(enter, exitB)
	require.False(t, ok, "disconnected exit must have no route")
}

func TestBuildRoutingIndexMissingBordersStillBuilds(t *testing.T) {
	// the routing section does not touch borders at all
	dir := t.TempDir()
	source := osmfeature.NewSourceFromFeatures([]*osmfeature.Feature{
		onewayRoad(datastructure.NewPoint(0.1, 0.1), datastructure.NewPoint(0.2, 0.1)),
	})

	mwmFile := filepath.Join(dir, "testland.mwm")
	require.True(t, BuildRoutingIndex(mwmFile, "testland", source, zap.NewNop()))

	reader, err := mwmfile.OpenReader(mwmFile)
	require.NoError(t, err)
	require.True(t, reader.HasSection(mwmfile.ROUTING_FILE_TAG))
}

func TestBuildCrossMwmSectionMissingBordersFails(t *testing.T) {
	dir := t.TempDir()
	source := osmfeature.NewSourceFromFeatures(nil)
	mwmFile := filepath.Join(dir, "testland.mwm")

	require.True(t, BuildRoutingIndex(mwmFile, "testland", source, zap.NewNop()))
	err := BuildCrossMwmSection(dir, mwmFile, "testland", source, nil, zap.NewNop())
	require.Error(t, err)
}
