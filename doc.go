// Package floodgrid measures the largest 4-connected region of equal-valued
// cells in a 2D grid of integer labels, via a destructive flood-fill sweep.
//
// What:
//
//   - Grid: a bounds-checked, row-major 2D field of integer labels backed by
//     one contiguous slice.
//   - LargestComponent: sweeps the grid in row-major order, flood-fills each
//     unvisited region of identical labels (4-directional adjacency), marks
//     every reached cell with the Visited sentinel, tracks the best region
//     size per label, and returns the overall maximum.
//
// Why:
//
//   - Image analysis: largest uniform blob in a label/segmentation map.
//   - Game maps: biggest contiguous territory of one terrain type.
//   - Quality checks: dominant cluster size in categorical rasters.
//
// The scan is deliberately destructive: visited cells are overwritten with
// Visited (-1) instead of keeping a separate seen-set, so a grid is fully
// consumed by one call. Callers that need the original data afterwards scan a
// Clone().
//
// Complexity:
//
//   - LargestComponent: O(R×C) time, O(R×C) worst-case memory for the fill
//     worklist (explicit stack, no call-stack recursion).
//   - Grid accessors:   O(1).
//
// Options:
//
//   - WithMaxLabel(n): widen or narrow the tracked label domain
//     (default [0,255]).
//   - WithOnRegion(fn): observe each region's label and size as it is filled.
//
// Errors:
//
//   - ErrInvalidDimensions: negative row or column count at construction.
//   - ErrDimensionMismatch: initial data length differs from rows*cols.
//   - ErrOutOfRange: cell access outside the declared bounds.
//   - ErrNilGrid: nil grid passed to LargestComponent.
//   - ErrBadMaxLabel: negative MaxLabel option.
//   - ErrLabelOutOfRange: a cell holds a value outside [0, MaxLabel] that is
//     not the Visited sentinel; detected before any cell is consumed.
package floodgrid
