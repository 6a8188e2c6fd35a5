package vehicle

import (
	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
)

// VehicleModel classifies a feature for one vehicle type and supplies its
// speed.
type VehicleModel interface {
	IsRoad(f datastructure.Feature) bool
	IsOneWay(f datastructure.Feature) bool
	SpeedKmPh(f datastructure.Feature) float64
	MaxSpeedKmPh() float64
}

// ModelFactory returns the country-specialised model for its vehicle
// type, or nil when no model serves the country.
type ModelFactory interface {
	GetVehicleModelForCountry(country string) VehicleModel
}

// speedModel is a highway-type keyed speed table. A feature is a road for
// the vehicle type iff its highway type is present in the table.
type speedModel struct {
	speeds        map[pkg.OsmHighwayType]float64
	maxSpeed      float64
	obeyOnewayTag bool
}

func newSpeedModel(speeds map[pkg.OsmHighwayType]float64, obeyOnewayTag bool) *speedModel {
	maxSpeed := 0.0
	for _, s := range speeds {
		if s > maxSpeed {
			maxSpeed = s
		}
	}
	return &speedModel{speeds: speeds, maxSpeed: maxSpeed, obeyOnewayTag: obeyOnewayTag}
}

func (m *speedModel) IsRoad(f datastructure.Feature) bool {
	_, ok := m.speeds[f.HighwayType()]
	return ok
}

func (m *speedModel) IsOneWay(f datastructure.Feature) bool {
	if !m.obeyOnewayTag {
		return false
	}
	return f.IsOneWayTagged()
}

func (m *speedModel) SpeedKmPh(f datastructure.Feature) float64 {
	speed, ok := m.speeds[f.HighwayType()]
	if !ok {
		return 0
	}
	return speed
}

func (m *speedModel) MaxSpeedKmPh() float64 {
	return m.maxSpeed
}

type speedModelFactory struct {
	defaultModel *speedModel
	byCountry    map[string]*speedModel
}

func (fac *speedModelFactory) GetVehicleModelForCountry(country string) VehicleModel {
	if m, ok := fac.byCountry[country]; ok {
		return m
	}
	if fac.defaultModel == nil {
		return nil
	}
	return fac.defaultModel
}

// CarModelFactory builds car models. Countries without an override get
// the default speed table.
func CarModelFactory() ModelFactory {
	return &speedModelFactory{
		defaultModel: newSpeedModel(map[pkg.OsmHighwayType]float64{
			pkg.MOTORWAY:       90,
			pkg.TRUNK:          85,
			pkg.PRIMARY:        65,
			pkg.SECONDARY:      60,
			pkg.TERTIARY:       50,
			pkg.RESIDENTIAL:    25,
			pkg.SERVICE:        15,
			pkg.UNCLASSIFIED:   25,
			pkg.MOTORWAY_LINK:  70,
			pkg.TRUNK_LINK:     65,
			pkg.PRIMARY_LINK:   60,
			pkg.SECONDARY_LINK: 50,
			pkg.TERTIARY_LINK:  40,
			pkg.LIVING_STREET:  10,
			pkg.ROAD:           20,
			pkg.TRACK:          5,
			pkg.MOTORROAD:      90,
		}, true),
		byCountry: map[string]*speedModel{},
	}
}

// BicycleModelFactory builds bicycle models.
func BicycleModelFactory() ModelFactory {
	return &speedModelFactory{
		defaultModel: newSpeedModel(map[pkg.OsmHighwayType]float64{
			pkg.TRUNK:          18,
			pkg.PRIMARY:        18,
			pkg.SECONDARY:      20,
			pkg.TERTIARY:       20,
			pkg.RESIDENTIAL:    20,
			pkg.SERVICE:        15,
			pkg.UNCLASSIFIED:   18,
			pkg.PRIMARY_LINK:   18,
			pkg.SECONDARY_LINK: 20,
			pkg.TERTIARY_LINK:  20,
			pkg.LIVING_STREET:  15,
			pkg.ROAD:           10,
			pkg.TRACK:          8,
			pkg.CYCLEWAY:       20,
			pkg.PATH:           10,
			pkg.FOOTWAY:        7,
			pkg.PEDESTRIAN_WAY: 5,
		}, true),
		byCountry: map[string]*speedModel{},
	}
}

// PedestrianModelFactory builds pedestrian models. Pedestrians ignore
// one-way tags.
func PedestrianModelFactory() ModelFactory {
	return &speedModelFactory{
		defaultModel: newSpeedModel(map[pkg.OsmHighwayType]float64{
			pkg.PRIMARY:        5,
			pkg.SECONDARY:      5,
			pkg.TERTIARY:       5,
			pkg.RESIDENTIAL:    5,
			pkg.SERVICE:        5,
			pkg.UNCLASSIFIED:   5,
			pkg.PRIMARY_LINK:   5,
			pkg.SECONDARY_LINK: 5,
			pkg.TERTIARY_LINK:  5,
			pkg.LIVING_STREET:  5,
			pkg.ROAD:           5,
			pkg.TRACK:          5,
			pkg.PATH:           5,
			pkg.FOOTWAY:        5,
			pkg.PEDESTRIAN_WAY: 5,
			pkg.STEPS:          3,
			pkg.CYCLEWAY:       4,
		}, false),
		byCountry: map[string]*speedModel{},
	}
}
