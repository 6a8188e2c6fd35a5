package builder

import (
	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/borders"
	"github.com/lintang-b-s/tilenav/pkg/crossmwm"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
	"github.com/lintang-b-s/tilenav/pkg/indexgraph"
	"github.com/lintang-b-s/tilenav/pkg/mwmfile"
	"github.com/lintang-b-s/tilenav/pkg/vehicle"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// CalcCrossMwmTransitions scans every road feature against the tile
// borders and collects one transition per inside/outside flip, routed
// into the connector of each vehicle type on the road mask.
func CalcCrossMwmTransitions(path, country string, source datastructure.FeatureSource) (
	[]crossmwm.Transition, crossmwm.ConnectorsPerVehicleType, error) {
	connectors := crossmwm.NewConnectorsPerVehicleType()

	maskBuilder, err := vehicle.NewMaskBuilder(country)
	if err != nil {
		return nil, connectors, err
	}

	polyFile := borders.BorderPath(path, country)
	regions, err := borders.LoadBorders(polyFile)
	if err != nil {
		return nil, connectors, err
	}

	transitions := make([]crossmwm.Transition, 0)
	err = source.ForEachFeature(func(f datastructure.Feature, featureId uint32) {
		roadMask := maskBuilder.RoadMask(f)
		if roadMask == 0 {
			return
		}

		pointsCount := f.PointsCount()
		if pointsCount == 0 {
			return
		}

		prevPointIn := borders.RegionsContain(regions, f.Point(0))
		for i := 1; i < pointsCount; i++ {
			currPointIn := borders.RegionsContain(regions, f.Point(i))
			if currPointIn == prevPointIn {
				continue
			}

			oneWayMask := maskBuilder.OnewayMask(f)
			t := crossmwm.NewTransition(featureId, uint32(i-1), roadMask, oneWayMask,
				currPointIn, f.Point(i-1), f.Point(i))

			transitions = append(transitions, t)
			connectors.AddTransitionForMask(t)

			prevPointIn = currPointIn
		}
	})
	if err != nil {
		return nil, connectors, err
	}

	return transitions, connectors, nil
}

// FillWeights precomputes the leap-weight table of one connector by
// running a Dijkstra wave over the in-tile index graph from every enter.
func FillWeights(mwmFile string, source datastructure.FeatureSource, model vehicle.VehicleModel,
	connector *crossmwm.Connector, logger *zap.Logger) error {
	geometry, err := indexgraph.NewGeometryLoaderFromSource(source, model)
	if err != nil {
		return err
	}

	graph := indexgraph.NewIndexGraph(geometry, indexgraph.NewTimeEstimator(model.MaxSpeedKmPh()))

	reader, err := mwmfile.OpenReader(mwmFile)
	if err != nil {
		return err
	}
	section, err := reader.GetReader(mwmfile.ROUTING_FILE_TAG)
	if err != nil {
		return err
	}
	if _, err := indexgraph.Deserialize(section, graph); err != nil {
		return err
	}

	weights := make(map[datastructure.Segment]map[datastructure.Segment]float64)
	numEnters := len(connector.GetEnters())
	progress := rate.Sometimes{Every: 10}

	for i := 0; i < numEnters; i++ {
		if i != 0 {
			wave := i
			progress.Do(func() {
				logger.Info("building leaps",
					zap.Int("waves_passed", wave), zap.Int("enters", numEnters))
			})
		}

		enter := connector.GetEnter(i)

		distanceMap := make(map[datastructure.Segment]float64)
		crossmwm.PropagateWave(graph, enter,
			func(datastructure.Segment) bool { return false }, distanceMap)

		for _, exit := range connector.GetExits() {
			if dist, ok := distanceMap[exit]; ok {
				if weights[enter] == nil {
					weights[enter] = make(map[datastructure.Segment]float64)
				}
				weights[enter][exit] = dist
			}
		}
	}

	connector.FillWeights(func(enter, exit datastructure.Segment) float64 {
		byExit, ok := weights[enter]
		if !ok {
			return pkg.NO_ROUTE
		}
		w, ok := byExit[exit]
		if !ok {
			return pkg.NO_ROUTE
		}
		return w
	})
	return nil
}

// BuildCrossMwmSection builds the cross_mwm section of one tile:
// transitions, per-vehicle connectors and leap weights for the requested
// profiles.
func BuildCrossMwmSection(path, mwmFile, country string, source datastructure.FeatureSource,
	leapProfiles []pkg.VehicleType, logger *zap.Logger) error {
	logger.Info("building cross mwm section", zap.String("country", country))

	transitions, connectors, err := CalcCrossMwmTransitions(path, country, source)
	if err != nil {
		return err
	}
	logger.Info("transitions finished", zap.Int("transitions", len(transitions)))

	for i, connector := range connectors {
		logger.Info("connector bootstrapped",
			zap.String("vehicle", pkg.VehicleType(i).String()),
			zap.Int("enters", len(connector.GetEnters())),
			zap.Int("exits", len(connector.GetExits())))
	}

	maskBuilder, err := vehicle.NewMaskBuilder(country)
	if err != nil {
		return err
	}
	for _, vehicleType := range leapProfiles {
		err := FillWeights(mwmFile, source, maskBuilder.ModelFor(vehicleType),
			connectors[vehicleType], logger)
		if err != nil {
			return err
		}
		logger.Info("leaps finished", zap.String("vehicle", vehicleType.String()))
	}

	params, err := mwmfile.LoadCodingParams(mwmFile)
	if err != nil {
		return err
	}

	cont := mwmfile.NewWriter(mwmFile)
	w, err := cont.GetWriter(mwmfile.CROSS_MWM_FILE_TAG)
	if err != nil {
		return err
	}

	startPos := w.Pos()
	if err := crossmwm.Serialize(transitions, connectors, params, w); err != nil {
		return err
	}
	sectionSize := w.Pos() - startPos

	if err := cont.Commit(); err != nil {
		return err
	}

	logger.Info("cross mwm section generated", zap.Int64("bytes", sectionSize))
	return nil
}
