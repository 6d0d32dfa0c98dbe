// Package tensor provides the fixed-shape array containers backing the
// scenario record model.
//
// Responsibilities: dense multi-dimensional storage for float64, bool and
// int64 elements, bounds-checked axis slicing, stacking, and structural
// equality. All operations are copying; a container's backing buffer is
// never shared with its inputs or outputs, so containers can be treated
// as immutable values.
//
// Dependency rule: tensor sits below the record model and must not import
// anything from internal/scenario or above.
package tensor
