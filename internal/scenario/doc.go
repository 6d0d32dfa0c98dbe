// Package scenario owns the immutable record model for motion-dataset
// scenarios.
//
// Responsibilities: the four leaf records (Trajectory, RoadgraphPoints,
// TrafficLights, ObjectMetadata), the Scenario aggregate, the structural
// operations over them (field map, dynamic axis slice, copy-with-overrides
// replacement) and scenario validation.
// Key types: Trajectory, RoadgraphPoints, TrafficLights, ObjectMetadata,
// Scenario, Axis.
//
// Records are immutable values: every operation returns a new record and
// never writes through the receiver. Array fields are exported for read
// access; callers MUST treat them as read-only and produce new records via
// With/MapArrays/SliceAxis.
//
// Dependency rule: scenario may depend on internal/tensor only.
package scenario
