package scenario

// InvalidSentinel is the position value carried by trajectory entries
// whose Valid flag is false. It matches the source dataset's padding
// convention and must never be read as a real coordinate; the Valid mask
// is authoritative.
const InvalidSentinel = -1.0

// ObjectType is the categorical class of a tracked object. Codes are
// stable across serialisation.
type ObjectType int64

const (
	ObjectTypeUnset      ObjectType = 0
	ObjectTypeVehicle    ObjectType = 1
	ObjectTypePedestrian ObjectType = 2
	ObjectTypeCyclist    ObjectType = 3
	ObjectTypeOther      ObjectType = 4
)

// String returns the lowercase name used in reports and chart legends.
func (t ObjectType) String() string {
	switch t {
	case ObjectTypeVehicle:
		return "vehicle"
	case ObjectTypePedestrian:
		return "pedestrian"
	case ObjectTypeCyclist:
		return "cyclist"
	case ObjectTypeOther:
		return "other"
	case ObjectTypeUnset:
		return "unset"
	default:
		return "unknown"
	}
}

// LightState is the categorical signal state of a traffic light at one
// timestep.
type LightState int64

const (
	LightStateUnknown      LightState = 0
	LightStateArrowStop    LightState = 1
	LightStateArrowCaution LightState = 2
	LightStateArrowGo      LightState = 3
	LightStateStop         LightState = 4
	LightStateCaution      LightState = 5
	LightStateGo           LightState = 6
	LightStateFlashingStop LightState = 7
	LightStateFlashingCaut LightState = 8
)

// String returns a short human-readable state name.
func (s LightState) String() string {
	switch s {
	case LightStateArrowStop:
		return "arrow_stop"
	case LightStateArrowCaution:
		return "arrow_caution"
	case LightStateArrowGo:
		return "arrow_go"
	case LightStateStop:
		return "stop"
	case LightStateCaution:
		return "caution"
	case LightStateGo:
		return "go"
	case LightStateFlashingStop:
		return "flashing_stop"
	case LightStateFlashingCaut:
		return "flashing_caution"
	default:
		return "unknown"
	}
}

// RoadgraphPointType is the categorical class of a sampled road-geometry
// point.
type RoadgraphPointType int64

const (
	RoadTypeUnset                       RoadgraphPointType = 0
	RoadTypeLaneCenterFreeway           RoadgraphPointType = 1
	RoadTypeLaneCenterSurface           RoadgraphPointType = 2
	RoadTypeLaneCenterBike              RoadgraphPointType = 3
	RoadTypeRoadLineBrokenSingleWhite   RoadgraphPointType = 6
	RoadTypeRoadLineSolidSingleWhite    RoadgraphPointType = 7
	RoadTypeRoadLineSolidDoubleWhite    RoadgraphPointType = 8
	RoadTypeRoadLineBrokenSingleYellow  RoadgraphPointType = 9
	RoadTypeRoadLineBrokenDoubleYellow  RoadgraphPointType = 10
	RoadTypeRoadLineSolidSingleYellow   RoadgraphPointType = 11
	RoadTypeRoadLineSolidDoubleYellow   RoadgraphPointType = 12
	RoadTypeRoadLinePassingDoubleYellow RoadgraphPointType = 13
	RoadTypeRoadEdgeBoundary            RoadgraphPointType = 15
	RoadTypeRoadEdgeMedian              RoadgraphPointType = 16
	RoadTypeStopSign                    RoadgraphPointType = 17
	RoadTypeCrosswalk                   RoadgraphPointType = 18
	RoadTypeSpeedBump                   RoadgraphPointType = 19
)

// IsLaneCenter reports whether the point belongs to a drivable lane
// centerline.
func (t RoadgraphPointType) IsLaneCenter() bool {
	return t == RoadTypeLaneCenterFreeway || t == RoadTypeLaneCenterSurface || t == RoadTypeLaneCenterBike
}

// IsRoadEdge reports whether the point marks a road boundary or median.
func (t RoadgraphPointType) IsRoadEdge() bool {
	return t == RoadTypeRoadEdgeBoundary || t == RoadTypeRoadEdgeMedian
}
