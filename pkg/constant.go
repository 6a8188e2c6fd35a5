package pkg

// enum of vehicle_type
type VehicleType uint8

const (
	PEDESTRIAN VehicleType = iota
	BICYCLE
	CAR

	NUM_VEHICLE_TYPES = 3
)

func (v VehicleType) String() string {
	switch v {
	case PEDESTRIAN:
		return "pedestrian"
	case BICYCLE:
		return "bicycle"
	case CAR:
		return "car"
	default:
		return "unknown"
	}
}

// VehicleMask is a bitset over the vehicle types.
type VehicleMask uint8

const (
	PEDESTRIAN_MASK VehicleMask = 1 << PEDESTRIAN
	BICYCLE_MASK    VehicleMask = 1 << BICYCLE
	CAR_MASK        VehicleMask = 1 << CAR

	ALL_VEHICLES_MASK = PEDESTRIAN_MASK | BICYCLE_MASK | CAR_MASK
)

func GetVehicleMask(vehicleType VehicleType) VehicleMask {
	return VehicleMask(1) << vehicleType
}

func (m VehicleMask) Has(vehicleType VehicleType) bool {
	return m&GetVehicleMask(vehicleType) != 0
}

const (
	INF_WEIGHT float64 = 1e15

	// weight sentinel for unreachable (enter, exit) pairs in the cross tile
	// weight table
	NO_ROUTE float64 = -1.0

	// absolute epsilon for point equality on the road graph
	POINTS_EQUAL_EPSILON = 1e-6

	// resolution of the location-key quantisation grid used to coalesce
	// feature vertices into joints
	POINT_COORD_BITS = 30

	ALTITUDE_UNKNOWN int16 = -32768
	ALTITUDE_DEFAULT int16 = 0

	INVALID_FEATURE_ID uint32 = 0xFFFFFFFF
	INVALID_JOINT_ID   uint32 = 0xFFFFFFFF
)

const (
	DEBUG = false
)

type OsmHighwayType uint8

// enum buat osm highway buat routing: https://wiki.openstreetmap.org/wiki/OSM_tags_for_routing/Telenav
const (
	MOTORWAY       OsmHighwayType = 0
	TRUNK          OsmHighwayType = 1
	PRIMARY        OsmHighwayType = 2
	SECONDARY      OsmHighwayType = 3
	TERTIARY       OsmHighwayType = 4
	RESIDENTIAL    OsmHighwayType = 5
	SERVICE        OsmHighwayType = 6
	UNCLASSIFIED   OsmHighwayType = 7
	MOTORWAY_LINK  OsmHighwayType = 8
	TRUNK_LINK     OsmHighwayType = 9
	PRIMARY_LINK   OsmHighwayType = 10
	SECONDARY_LINK OsmHighwayType = 11
	TERTIARY_LINK  OsmHighwayType = 12
	LIVING_STREET  OsmHighwayType = 13
	ROAD           OsmHighwayType = 14
	TRACK          OsmHighwayType = 15
	MOTORROAD      OsmHighwayType = 16
	FOOTWAY        OsmHighwayType = 17
	PATH           OsmHighwayType = 18
	CYCLEWAY       OsmHighwayType = 19
	PEDESTRIAN_WAY OsmHighwayType = 20
	STEPS          OsmHighwayType = 21
	UNKNOWN        OsmHighwayType = 22
)

func GetHighwayType(roadType string) OsmHighwayType {
	switch roadType {
	case "motorway":
		return MOTORWAY
	case "trunk":
		return TRUNK
	case "primary":
		return PRIMARY
	case "secondary":
		return SECONDARY
	case "tertiary":
		return TERTIARY
	case "unclassified":
		return UNCLASSIFIED
	case "residential":
		return RESIDENTIAL
	case "service":
		return SERVICE
	case "motorway_link":
		return MOTORWAY_LINK
	case "trunk_link":
		return TRUNK_LINK
	case "primary_link":
		return PRIMARY_LINK
	case "secondary_link":
		return SECONDARY_LINK
	case "tertiary_link":
		return TERTIARY_LINK
	case "living_street":
		return LIVING_STREET
	case "road":
		return ROAD
	case "track":
		return TRACK
	case "motorroad":
		return MOTORROAD
	case "footway":
		return FOOTWAY
	case "path":
		return PATH
	case "cycleway":
		return CYCLEWAY
	case "pedestrian":
		return PEDESTRIAN_WAY
	case "steps":
		return STEPS
	default:
		return UNKNOWN
	}
}
