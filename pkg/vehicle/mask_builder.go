package vehicle

import (
	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
	"github.com/lintang-b-s/tilenav/pkg/util"
)

// MaskBuilder bridges features and the three per-country vehicle models.
// It is stateless after construction and safe for concurrent use.
type MaskBuilder struct {
	pedestrianModel VehicleModel
	bicycleModel    VehicleModel
	carModel        VehicleModel
}

// NewMaskBuilder obtains all three models for the country. Construction
// fails before any IO when a model is missing.
func NewMaskBuilder(country string) (*MaskBuilder, error) {
	pedestrianModel := PedestrianModelFactory().GetVehicleModelForCountry(country)
	bicycleModel := BicycleModelFactory().GetVehicleModelForCountry(country)
	carModel := CarModelFactory().GetVehicleModelForCountry(country)

	if pedestrianModel == nil || bicycleModel == nil || carModel == nil {
		return nil, util.WrapErrorf(nil, util.ErrMissingModel,
			"vehicle model missing for country %q", country)
	}

	return &MaskBuilder{
		pedestrianModel: pedestrianModel,
		bicycleModel:    bicycleModel,
		carModel:        carModel,
	}, nil
}

// RoadMask sets each vehicle bit iff that model considers the feature a
// road.
func (b *MaskBuilder) RoadMask(f datastructure.Feature) pkg.VehicleMask {
	return b.calcMask(f, VehicleModel.IsRoad)
}

// OnewayMask sets each vehicle bit iff that model considers the feature
// one-way.
func (b *MaskBuilder) OnewayMask(f datastructure.Feature) pkg.VehicleMask {
	return b.calcMask(f, VehicleModel.IsOneWay)
}

func (b *MaskBuilder) calcMask(f datastructure.Feature, fn func(VehicleModel, datastructure.Feature) bool) pkg.VehicleMask {
	mask := pkg.VehicleMask(0)
	if fn(b.pedestrianModel, f) {
		mask |= pkg.PEDESTRIAN_MASK
	}
	if fn(b.bicycleModel, f) {
		mask |= pkg.BICYCLE_MASK
	}
	if fn(b.carModel, f) {
		mask |= pkg.CAR_MASK
	}
	return mask
}

func (b *MaskBuilder) ModelFor(vehicleType pkg.VehicleType) VehicleModel {
	switch vehicleType {
	case pkg.PEDESTRIAN:
		return b.pedestrianModel
	case pkg.BICYCLE:
		return b.bicycleModel
	default:
		return b.carModel
	}
}

func (b *MaskBuilder) MaxSpeedKmPh(vehicleType pkg.VehicleType) float64 {
	return b.ModelFor(vehicleType).MaxSpeedKmPh()
}
