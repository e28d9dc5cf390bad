package floodgrid

import "fmt"

// neighborOffsets is the fixed 4-neighbor probe order: up, down, left, right.
// The order is stable for reproducibility; region sizes do not depend on it.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// LargestComponent returns the size of the largest 4-connected region of
// identical labels in g, destructively marking every reached cell Visited.
//
// Behavior:
//  1. Validate the label domain up front: every cell must hold Visited or a
//     value in [0, MaxLabel]. A failing grid is returned untouched.
//  2. Sweep cells in row-major order; each unvisited cell seeds a flood fill
//     that consumes its whole region and yields the region's cell count.
//  3. Track the best count per label; after the sweep, return the maximum
//     across all labels (0 for an empty grid).
//
// After a successful call every originally-unvisited cell is Visited, so a
// second call on the same grid returns 0. Scan a Clone() to keep the data.
//
// Complexity: O(R×C) time; O(R×C) worst-case memory for the fill worklist
// and O(MaxLabel) for the per-label best table.
func LargestComponent(g *Grid, opts ...Option) (int, error) {
	// 1. Validate input grid
	if g == nil {
		return 0, ErrNilGrid
	}

	// 2. Apply options
	sopts := DefaultScanOptions()
	var fn Option
	for _, fn = range opts {
		fn(&sopts)
	}
	if sopts.MaxLabel < 0 {
		return 0, ErrBadMaxLabel
	}

	// 3. Reject out-of-domain labels before consuming any cell
	var row, col, v int
	for row = 0; row < g.rows; row++ {
		for col = 0; col < g.cols; col++ {
			v = g.cells[g.index(row, col)]
			if v != Visited && (v < 0 || v > sopts.MaxLabel) {
				return 0, fmt.Errorf("floodgrid: cell (%d,%d) holds %d: %w",
					row, col, v, ErrLabelOutOfRange)
			}
		}
	}

	// 4. Sweep: one flood fill per unvisited seed, best count per label.
	// Only the maximum region per label is kept; smaller regions of the same
	// label are counted and discarded.
	best := make([]int, sopts.MaxLabel+1)
	var label, size int
	for row = 0; row < g.rows; row++ {
		for col = 0; col < g.cols; col++ {
			label = g.cells[g.index(row, col)]
			if label == Visited {
				continue
			}
			g.cells[g.index(row, col)] = Visited
			size = fillRegion(g, row, col, label)
			if size > best[label] {
				best[label] = size
			}
			if sopts.OnRegion != nil {
				if err := sopts.OnRegion(label, size); err != nil {
					return 0, fmt.Errorf("floodgrid: OnRegion hook for label %d: %w", label, err)
				}
			}
		}
	}

	// 5. Reduce the per-label table to a single maximum
	maxCount := 0
	for _, c := range best {
		if c > maxCount {
			maxCount = c
		}
	}

	return maxCount, nil
}

// fillRegion consumes the region of label seeded at (row, col) and returns
// its cell count. The seed must already be marked Visited and counts as 1.
// An explicit LIFO worklist replaces call-stack recursion, so the fill depth
// is bounded by heap, not goroutine stack, on large regions.
func fillRegion(g *Grid, row, col, label int) int {
	count := 1
	stack := [][2]int{{row, col}}
	var cur [2]int
	var nr, nc int
	for len(stack) > 0 {
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range neighborOffsets {
			nr, nc = cur[0]+d[0], cur[1]+d[1]
			if !g.InBounds(nr, nc) {
				continue
			}
			// Visited never equals a real label, so consumed cells are
			// skipped by the same comparison.
			if g.cells[g.index(nr, nc)] != label {
				continue
			}
			g.cells[g.index(nr, nc)] = Visited
			count++
			stack = append(stack, [2]int{nr, nc})
		}
	}

	return count
}
