package osmfeature

import (
	"context"
	"os"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
	"github.com/lintang-b-s/tilenav/pkg/geo"
	"github.com/lintang-b-s/tilenav/pkg/util"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

// AltitudeProvider resolves the altitude of a geographic coordinate,
// usually from a DEM. A nil provider yields the default altitude.
type AltitudeProvider interface {
	Altitude(lat, lon float64) int16
}

// Source is a tile feature source backed by an .osm.pbf extract.
// Features keep the way scan order, so iteration is deterministic.
type Source struct {
	features []*Feature
}

func (s *Source) FeaturesCount() int {
	return len(s.features)
}

func (s *Source) ForEachFeature(fn func(f datastructure.Feature, featureId uint32)) error {
	for i, f := range s.features {
		fn(f, uint32(i))
	}
	return nil
}

// NewSourceFromFeatures wraps prebuilt features, mostly for tests and
// tools that synthesise tiles.
func NewSourceFromFeatures(features []*Feature) *Source {
	return &Source{features: features}
}

// NewSourceFromPbf scans the extract twice: ways first to learn which
// nodes matter, then nodes for their coordinates.
func NewSourceFromPbf(mapFile string, altitudes AltitudeProvider, logger *zap.Logger) (*Source, error) {
	ways, neededNodes, err := scanWays(mapFile)
	if err != nil {
		return nil, err
	}
	logger.Info("scanned osm ways", zap.Int("ways", len(ways)))

	coords, err := scanNodes(mapFile, neededNodes)
	if err != nil {
		return nil, err
	}
	logger.Info("scanned osm nodes", zap.Int("nodes", len(coords)))

	features := make([]*Feature, 0, len(ways))
	for _, way := range ways {
		points := make([]datastructure.Point, 0, len(way.nodeIds))
		alts := make([]int16, 0, len(way.nodeIds))
		for _, nodeId := range way.nodeIds {
			c, ok := coords[nodeId]
			if !ok {
				continue
			}
			x, y := geo.MercatorFromLatLon(c)
			points = append(points, datastructure.NewPoint(x, y))
			if altitudes != nil {
				alts = append(alts, altitudes.Altitude(c.Lat, c.Lon))
			} else {
				alts = append(alts, pkg.ALTITUDE_DEFAULT)
			}
		}
		if len(points) < 2 {
			continue
		}
		features = append(features, NewFeature(points, alts, way.hwType, way.oneWay, way.tags))
	}

	logger.Info("osm feature source ready", zap.Int("features", len(features)))
	return &Source{features: features}, nil
}

type scannedWay struct {
	nodeIds []int64
	hwType  pkg.OsmHighwayType
	oneWay  bool
	tags    map[string]string
}

func scanWays(mapFile string) ([]scannedWay, map[int64]struct{}, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, nil, util.WrapErrorf(err, util.ErrIOFailure, "open %q", mapFile)
	}
	defer f.Close()

	ways := make([]scannedWay, 0)
	needed := make(map[int64]struct{})

	scanner := osmpbf.New(context.Background(), f, 0)
	defer scanner.Close()

	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeWay {
			continue
		}
		way := o.(*osm.Way)
		if len(way.Nodes) < 2 {
			continue
		}

		highway := way.Tags.Find("highway")
		if highway == "" {
			continue
		}
		hwType := pkg.GetHighwayType(highway)
		if hwType == pkg.UNKNOWN {
			continue
		}

		nodeIds := make([]int64, 0, len(way.Nodes))
		for _, wn := range way.Nodes {
			nodeIds = append(nodeIds, int64(wn.ID))
			needed[int64(wn.ID)] = struct{}{}
		}

		tags := make(map[string]string, len(way.Tags))
		for _, tag := range way.Tags {
			tags[tag.Key] = tag.Value
		}

		ways = append(ways, scannedWay{
			nodeIds: nodeIds,
			hwType:  hwType,
			oneWay:  isOneWay(way),
			tags:    tags,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, util.WrapErrorf(err, util.ErrIOFailure, "scan ways of %q", mapFile)
	}
	return ways, needed, nil
}

func isOneWay(way *osm.Way) bool {
	switch way.Tags.Find("oneway") {
	case "yes", "true", "1", "-1":
		return true
	}
	if way.Tags.Find("junction") == "roundabout" {
		return true
	}
	return false
}

func scanNodes(mapFile string, needed map[int64]struct{}) (map[int64]geo.Coordinate, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrIOFailure, "open %q", mapFile)
	}
	defer f.Close()

	coords := make(map[int64]geo.Coordinate, len(needed))

	scanner := osmpbf.New(context.Background(), f, 0)
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true

	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeNode {
			continue
		}
		node := o.(*osm.Node)
		if _, ok := needed[int64(node.ID)]; !ok {
			continue
		}
		coords[int64(node.ID)] = geo.NewCoordinate(node.Lat, node.Lon)
	}
	if err := scanner.Err(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrIOFailure, "scan nodes of %q", mapFile)
	}
	return coords, nil
}
