package roadgraph

import (
	"math"
	"sort"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
	"github.com/lintang-b-s/tilenav/pkg/geo"
	"github.com/lintang-b-s/tilenav/pkg/vehicle"
	"github.com/tidwall/rtree"
)

type segmentItem struct {
	featureId  uint32
	segmentIdx uint32
}

// FeaturesRoadGraph is the road graph of one tile as seen by one vehicle
// model. Road infos and the cross index are built once from the feature
// source; the segment r-tree is built lazily on the first closest-edge
// query. The fake overlay belongs to a single routing request.
type FeaturesRoadGraph struct {
	source datastructure.FeatureSource
	model  vehicle.VehicleModel
	mode   Mode

	overlay *FakeOverlay

	roadInfos    map[uint32]datastructure.RoadInfo
	featureTypes map[uint32]datastructure.TypesHolder
	crossIndex   map[uint64][]uint32

	segIndex *rtree.RTreeG[segmentItem]
}

func NewFeaturesRoadGraph(source datastructure.FeatureSource, model vehicle.VehicleModel,
	mode Mode) (*FeaturesRoadGraph, error) {
	g := &FeaturesRoadGraph{
		source:       source,
		model:        model,
		mode:         mode,
		overlay:      NewFakeOverlay(),
		roadInfos:    make(map[uint32]datastructure.RoadInfo),
		featureTypes: make(map[uint32]datastructure.TypesHolder),
		crossIndex:   make(map[uint64][]uint32),
	}

	err := source.ForEachFeature(func(f datastructure.Feature, featureId uint32) {
		if !model.IsRoad(f) {
			return
		}
		if f.PointsCount() == 0 {
			return
		}

		junctions := make([]datastructure.Junction, f.PointsCount())
		for i := 0; i < f.PointsCount(); i++ {
			junctions[i] = datastructure.NewJunction(f.Point(i), f.Altitude(i))
		}

		g.roadInfos[featureId] = datastructure.NewRoadInfo(
			!model.IsOneWay(f), model.SpeedKmPh(f), junctions)

		types := datastructure.NewTypesHolder()
		types.Add(f.HighwayType())
		g.featureTypes[featureId] = types

		for i := 0; i < f.PointsCount(); i++ {
			key := datastructure.LocationKey(f.Point(i))
			g.crossIndex[key] = appendUniqueId(g.crossIndex[key], featureId)
		}
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func appendUniqueId(ids []uint32, id uint32) []uint32 {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func (g *FeaturesRoadGraph) GetMode() Mode {
	return g.mode
}

func (g *FeaturesRoadGraph) MaxSpeedKmPh() float64 {
	return g.model.MaxSpeedKmPh()
}

func (g *FeaturesRoadGraph) SpeedKmPh(featureId uint32) float64 {
	if info, ok := g.roadInfos[featureId]; ok {
		return info.GetSpeedKmPh()
	}
	return g.MaxSpeedKmPh()
}

// SpeedOfEdgeKmPh dispatches on the edge's feature: real edges use their
// feature's speed, part-of-real fakes inherit from the split edge, bare
// fakes fall back to the graph maximum.
func (g *FeaturesRoadGraph) SpeedOfEdgeKmPh(edge datastructure.Edge) float64 {
	if !edge.IsFake() {
		return g.SpeedKmPh(edge.GetFeatureId())
	}
	if edge.IsPartOfReal() {
		if fid, ok := g.overlay.RealFeatureOf(edge); ok {
			return g.SpeedKmPh(fid)
		}
	}
	return g.MaxSpeedKmPh()
}

func (g *FeaturesRoadGraph) RoadInfo(featureId uint32) datastructure.RoadInfo {
	return g.roadInfos[featureId]
}

func (g *FeaturesRoadGraph) FeatureTypes(featureId uint32) datastructure.TypesHolder {
	return g.featureTypes[featureId]
}

func (g *FeaturesRoadGraph) EdgeTypes(edge datastructure.Edge) datastructure.TypesHolder {
	if edge.IsFake() {
		return datastructure.NewTypesHolder()
	}
	return g.FeatureTypes(edge.GetFeatureId())
}

func (g *FeaturesRoadGraph) JunctionTypes(junction datastructure.Junction) datastructure.TypesHolder {
	types := datastructure.NewTypesHolder()
	g.forEachFeatureIdClosestToCross(junction.GetPoint(), func(featureId uint32) {
		if g.polylineContains(featureId, junction.GetPoint()) {
			for _, ht := range g.featureTypes[featureId].GetTypes() {
				types.Add(ht)
			}
		}
	})
	return types
}

func (g *FeaturesRoadGraph) polylineContains(featureId uint32, point datastructure.Point) bool {
	info := g.roadInfos[featureId]
	for _, j := range info.GetJunctions() {
		if j.GetPoint().Equal(point) {
			return true
		}
	}
	return false
}

// forEachFeatureIdClosestToCross visits the candidate features around the
// cross point in ascending feature id order. The quantisation grid is
// finer than the routing epsilon, so every key cell within the epsilon
// box around the point is scanned.
func (g *FeaturesRoadGraph) forEachFeatureIdClosestToCross(cross datastructure.Point, fn func(featureId uint32)) {
	seen := make(map[uint32]struct{})
	candidates := make([]uint32, 0, 4)
	for _, key := range datastructure.LocationKeysAround(cross, pkg.POINTS_EQUAL_EPSILON) {
		for _, featureId := range g.crossIndex[key] {
			if _, ok := seen[featureId]; ok {
				continue
			}
			seen[featureId] = struct{}{}
			candidates = append(candidates, featureId)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
	for _, featureId := range candidates {
		fn(featureId)
	}
}

func (g *FeaturesRoadGraph) ForEachFeatureClosestToCross(cross datastructure.Point, loader *CrossEdgesLoader) {
	g.forEachFeatureIdClosestToCross(cross, func(featureId uint32) {
		loader.LoadEdges(featureId, g.roadInfos[featureId])
	})
}

func (g *FeaturesRoadGraph) RegularOutgoingEdges(junction datastructure.Junction) []datastructure.Edge {
	loader := NewCrossOutgoingLoader(junction, g.mode)
	g.ForEachFeatureClosestToCross(junction.GetPoint(), loader)
	return loader.Edges()
}

func (g *FeaturesRoadGraph) RegularIngoingEdges(junction datastructure.Junction) []datastructure.Edge {
	loader := NewCrossIngoingLoader(junction, g.mode)
	g.ForEachFeatureClosestToCross(junction.GetPoint(), loader)
	return loader.Edges()
}

func (g *FeaturesRoadGraph) FakeOutgoingEdges(junction datastructure.Junction) []datastructure.Edge {
	return g.overlay.FakeOutgoingEdges(junction)
}

func (g *FeaturesRoadGraph) FakeIngoingEdges(junction datastructure.Junction) []datastructure.Edge {
	return g.overlay.FakeIngoingEdges(junction)
}

func (g *FeaturesRoadGraph) OutgoingEdges(junction datastructure.Junction) []datastructure.Edge {
	edges := g.RegularOutgoingEdges(junction)
	return append(edges, g.FakeOutgoingEdges(junction)...)
}

func (g *FeaturesRoadGraph) IngoingEdges(junction datastructure.Junction) []datastructure.Edge {
	edges := g.RegularIngoingEdges(junction)
	return append(edges, g.FakeIngoingEdges(junction)...)
}

func (g *FeaturesRoadGraph) AddFakeEdges(junction datastructure.Junction, vicinities []EdgeProjection) {
	g.overlay.AddFakeEdges(junction, vicinities)
}

func (g *FeaturesRoadGraph) ResetFakes() {
	g.overlay.Reset()
}

// ClearState drops the lazily built segment index; it is rebuilt on the
// next closest-edge query.
func (g *FeaturesRoadGraph) ClearState() {
	g.segIndex = nil
}

func (g *FeaturesRoadGraph) buildSegIndex() {
	var tr rtree.RTreeG[segmentItem]

	featureIds := make([]uint32, 0, len(g.roadInfos))
	for featureId := range g.roadInfos {
		featureIds = append(featureIds, featureId)
	}
	sort.Slice(featureIds, func(i, j int) bool { return featureIds[i] < featureIds[j] })

	for _, featureId := range featureIds {
		info := g.roadInfos[featureId]
		junctions := info.GetJunctions()
		for i := 0; i+1 < len(junctions); i++ {
			a := junctions[i].GetPoint()
			b := junctions[i+1].GetPoint()
			minX, maxX := math.Min(a.GetX(), b.GetX()), math.Max(a.GetX(), b.GetX())
			minY, maxY := math.Min(a.GetY(), b.GetY()), math.Max(a.GetY(), b.GetY())
			tr.Insert([2]float64{minX, minY}, [2]float64{maxX, maxY},
				segmentItem{featureId: featureId, segmentIdx: uint32(i)})
		}
	}

	g.segIndex = &tr
}

type closestCandidate struct {
	edge       datastructure.Edge
	projection datastructure.Junction
	sqDist     float64
}

func (g *FeaturesRoadGraph) FindClosestEdges(point datastructure.Point, count int) []EdgeProjection {
	if count <= 0 || len(g.roadInfos) == 0 {
		return nil
	}
	if g.segIndex == nil {
		g.buildSegIndex()
	}

	// the r-tree walk is ordered by box distance, which lower-bounds the
	// exact segment distance, so a bounded candidate pool around count is
	// enough before the exact sort
	maxCandidates := count*4 + 16
	items := make([]segmentItem, 0, maxCandidates)
	q := [2]float64{point.GetX(), point.GetY()}
	g.segIndex.Nearby(
		rtree.BoxDist[float64, segmentItem](q, q, nil),
		func(min, max [2]float64, data segmentItem, dist float64) bool {
			items = append(items, data)
			return len(items) < maxCandidates
		})

	candidates := make([]closestCandidate, 0, len(items))
	for _, item := range items {
		info := g.roadInfos[item.featureId]
		start := info.GetJunction(int(item.segmentIdx))
		end := info.GetJunction(int(item.segmentIdx) + 1)

		px, py, t := geo.ProjectOntoSegment(
			start.GetPoint().GetX(), start.GetPoint().GetY(),
			end.GetPoint().GetX(), end.GetPoint().GetY(),
			point.GetX(), point.GetY())

		projPoint := datastructure.NewPoint(px, py)
		projection := datastructure.NewJunction(projPoint, interpolateAltitude(start, end, t))

		candidates = append(candidates, closestCandidate{
			edge:       datastructure.NewEdge(item.featureId, true, item.segmentIdx, start, end),
			projection: projection,
			sqDist:     point.SquaredDistance(projPoint),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if !geo.Eq(candidates[i].sqDist, candidates[j].sqDist) {
			return candidates[i].sqDist < candidates[j].sqDist
		}
		if candidates[i].edge.GetFeatureId() != candidates[j].edge.GetFeatureId() {
			return candidates[i].edge.GetFeatureId() < candidates[j].edge.GetFeatureId()
		}
		return candidates[i].edge.GetSegmentIdx() < candidates[j].edge.GetSegmentIdx()
	})

	if len(candidates) > count {
		candidates = candidates[:count]
	}
	result := make([]EdgeProjection, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, NewEdgeProjection(c.edge, c.projection))
	}
	return result
}

// interpolateAltitude blends the endpoint altitudes at offset t; unknown
// endpoints make the projection altitude unknown too.
func interpolateAltitude(start, end datastructure.Junction, t float64) int16 {
	a1 := start.GetAltitude()
	a2 := end.GetAltitude()
	if a1 == pkg.ALTITUDE_UNKNOWN || a2 == pkg.ALTITUDE_UNKNOWN {
		return pkg.ALTITUDE_UNKNOWN
	}
	return int16(math.Round(float64(a1) + (float64(a2)-float64(a1))*t))
}
