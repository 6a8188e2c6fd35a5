package osmfeature

import (
	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
)

// Feature is one road polyline read from an osm extract, projected onto
// the tile's planar plane.
type Feature struct {
	points    []datastructure.Point
	altitudes []int16
	hwType    pkg.OsmHighwayType
	oneWay    bool
	tags      map[string]string
}

func NewFeature(points []datastructure.Point, altitudes []int16, hwType pkg.OsmHighwayType,
	oneWay bool, tags map[string]string) *Feature {
	return &Feature{
		points:    points,
		altitudes: altitudes,
		hwType:    hwType,
		oneWay:    oneWay,
		tags:      tags,
	}
}

func (f *Feature) PointsCount() int {
	return len(f.points)
}

func (f *Feature) Point(i int) datastructure.Point {
	return f.points[i]
}

func (f *Feature) Altitude(i int) int16 {
	if i >= len(f.altitudes) {
		return pkg.ALTITUDE_UNKNOWN
	}
	return f.altitudes[i]
}

func (f *Feature) HighwayType() pkg.OsmHighwayType {
	return f.hwType
}

func (f *Feature) IsOneWayTagged() bool {
	return f.oneWay
}

func (f *Feature) Tag(key string) (string, bool) {
	v, ok := f.tags[key]
	return v, ok
}
