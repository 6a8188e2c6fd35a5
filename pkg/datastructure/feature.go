package datastructure

import "github.com/lintang-b-s/tilenav/pkg"

// Feature is one map object inside a tile, as exposed by the map-data
// reader. Point and Altitude address the vertices of its polyline.
type Feature interface {
	PointsCount() int
	Point(i int) Point
	Altitude(i int) int16
	HighwayType() pkg.OsmHighwayType
	IsOneWayTagged() bool
	Tag(key string) (string, bool)
}

// FeatureSource iterates the features of one tile. Iteration order is
// deterministic for a given tile.
type FeatureSource interface {
	ForEachFeature(fn func(f Feature, featureId uint32)) error
	FeaturesCount() int
}

// TypesHolder carries the classification tags of a feature for
// weighting and rendering consumers.
type TypesHolder struct {
	types []pkg.OsmHighwayType
}

func NewTypesHolder() TypesHolder {
	return TypesHolder{types: make([]pkg.OsmHighwayType, 0, 1)}
}

func (t *TypesHolder) Add(ht pkg.OsmHighwayType) {
	for _, existing := range t.types {
		if existing == ht {
			return
		}
	}
	t.types = append(t.types, ht)
}

func (t TypesHolder) Has(ht pkg.OsmHighwayType) bool {
	for _, existing := range t.types {
		if existing == ht {
			return true
		}
	}
	return false
}

func (t TypesHolder) GetTypes() []pkg.OsmHighwayType {
	return t.types
}

func (t TypesHolder) Size() int {
	return len(t.types)
}
