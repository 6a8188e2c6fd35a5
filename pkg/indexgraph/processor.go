package indexgraph

import (
	"sort"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
	"github.com/lintang-b-s/tilenav/pkg/vehicle"
)

// Processor reduces one tile's features to the joint table and the
// per-feature vehicle-mask table. Single-threaded per tile.
type Processor struct {
	maskBuilder *vehicle.MaskBuilder

	posToJoint map[uint64]*datastructure.Joint
	keyOrder   []uint64
	masks      map[uint32]pkg.VehicleMask
}

func NewProcessor(country string) (*Processor, error) {
	maskBuilder, err := vehicle.NewMaskBuilder(country)
	if err != nil {
		return nil, err
	}
	return &Processor{
		maskBuilder: maskBuilder,
		posToJoint:  make(map[uint64]*datastructure.Joint),
		keyOrder:    make([]uint64, 0),
		masks:       make(map[uint32]pkg.VehicleMask),
	}, nil
}

func (p *Processor) ProcessAllFeatures(source datastructure.FeatureSource) error {
	return source.ForEachFeature(p.processFeature)
}

func (p *Processor) processFeature(f datastructure.Feature, featureId uint32) {
	mask := p.maskBuilder.RoadMask(f)
	if mask == 0 {
		return
	}

	p.masks[featureId] = mask

	for i := 0; i < f.PointsCount(); i++ {
		locationKey := datastructure.LocationKey(f.Point(i))
		joint, ok := p.posToJoint[locationKey]
		if !ok {
			j := datastructure.NewJoint()
			joint = &j
			p.posToJoint[locationKey] = joint
			p.keyOrder = append(p.keyOrder, locationKey)
		}
		joint.AddPoint(datastructure.NewRoadPoint(featureId, uint32(i)))
	}
}

// BuildGraph imports only the connected joints (two or more road points)
// into the graph.
func (p *Processor) BuildGraph(graph *IndexGraph) {
	joints := make([]datastructure.Joint, 0)
	for _, key := range p.keyOrder {
		joint := p.posToJoint[key]
		if joint.GetSize() >= 2 {
			joints = append(joints, *joint)
		}
	}

	graph.Import(joints)
}

func (p *Processor) GetMasks() map[uint32]pkg.VehicleMask {
	return p.masks
}

// SortedMaskFeatureIds returns the masked feature ids in ascending order,
// for deterministic serialisation.
func (p *Processor) SortedMaskFeatureIds() []uint32 {
	ids := make([]uint32, 0, len(p.masks))
	for id := range p.masks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
