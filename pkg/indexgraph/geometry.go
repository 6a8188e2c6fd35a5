package indexgraph

import (
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
	"github.com/lintang-b-s/tilenav/pkg/vehicle"
)

// RoadGeometry is the routable geometry of one feature for one vehicle
// model.
type RoadGeometry struct {
	points    []datastructure.Point
	speedKmPh float64
	oneWay    bool
	valid     bool
}

func NewRoadGeometry(points []datastructure.Point, speedKmPh float64, oneWay bool) RoadGeometry {
	return RoadGeometry{points: points, speedKmPh: speedKmPh, oneWay: oneWay, valid: true}
}

func (r RoadGeometry) IsValid() bool {
	return r.valid
}

func (r RoadGeometry) PointsCount() int {
	return len(r.points)
}

func (r RoadGeometry) GetPoint(i int) datastructure.Point {
	return r.points[i]
}

func (r RoadGeometry) GetSpeedKmPh() float64 {
	return r.speedKmPh
}

func (r RoadGeometry) IsOneWay() bool {
	return r.oneWay
}

// GeometryLoader supplies per-feature road geometry to the index graph.
type GeometryLoader interface {
	GetRoadGeometry(featureId uint32) RoadGeometry
}

type sourceGeometryLoader struct {
	geometries map[uint32]RoadGeometry
}

// NewGeometryLoaderFromSource reads every road feature of the source once
// and keeps its geometry for the given vehicle model.
func NewGeometryLoaderFromSource(source datastructure.FeatureSource,
	model vehicle.VehicleModel) (GeometryLoader, error) {
	loader := &sourceGeometryLoader{geometries: make(map[uint32]RoadGeometry)}

	err := source.ForEachFeature(func(f datastructure.Feature, featureId uint32) {
		if !model.IsRoad(f) || f.PointsCount() == 0 {
			return
		}
		points := make([]datastructure.Point, f.PointsCount())
		for i := 0; i < f.PointsCount(); i++ {
			points[i] = f.Point(i)
		}
		loader.geometries[featureId] = NewRoadGeometry(points, model.SpeedKmPh(f), model.IsOneWay(f))
	})
	if err != nil {
		return nil, err
	}
	return loader, nil
}

func (l *sourceGeometryLoader) GetRoadGeometry(featureId uint32) RoadGeometry {
	return l.geometries[featureId]
}
