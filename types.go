package floodgrid

import "errors"

// Visited marks a cell already consumed by a scan. Labels are non-negative,
// so Visited never collides with a real label.
const Visited = -1

// DefaultMaxLabel is the highest label value tracked by a scan unless
// overridden with WithMaxLabel.
const DefaultMaxLabel = 255

// Sentinel errors for floodgrid operations.
var (
	// ErrInvalidDimensions indicates a negative row or column count.
	ErrInvalidDimensions = errors.New("floodgrid: dimensions must be >= 0")
	// ErrDimensionMismatch indicates initial data whose length differs from rows*cols.
	ErrDimensionMismatch = errors.New("floodgrid: initial values length does not match rows*cols")
	// ErrOutOfRange indicates a cell access outside the grid's declared bounds.
	ErrOutOfRange = errors.New("floodgrid: cell index out of range")
	// ErrNilGrid indicates a nil *Grid was passed to LargestComponent.
	ErrNilGrid = errors.New("floodgrid: grid is nil")
	// ErrBadMaxLabel indicates a negative MaxLabel option.
	ErrBadMaxLabel = errors.New("floodgrid: max label must be >= 0")
	// ErrLabelOutOfRange indicates a cell value outside [0, MaxLabel] that is
	// not the Visited sentinel.
	ErrLabelOutOfRange = errors.New("floodgrid: cell label outside tracked domain")
)

// Option configures optional behavior of LargestComponent.
// Use with LargestComponent(g, opts...).
type Option func(*ScanOptions)

// ScanOptions holds configurable parameters for one component scan.
// Complexity remains O(R×C) when the hook is O(1).
type ScanOptions struct {
	// MaxLabel is the highest label value the scan tracks; every cell must
	// hold Visited or a value in [0, MaxLabel]. Default is DefaultMaxLabel.
	MaxLabel int

	// OnRegion, if non-nil, is invoked after each region fill completes, with
	// the region's label and its cell count. Returning an error aborts the
	// scan with that error; cells consumed so far stay marked Visited.
	OnRegion func(label, size int) error
}

// DefaultScanOptions returns a ScanOptions struct with:
//   - MaxLabel = DefaultMaxLabel (labels 0–255)
//   - No region hook
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		MaxLabel: DefaultMaxLabel,
		OnRegion: nil,
	}
}

// WithMaxLabel returns an Option that sets the highest tracked label value.
// A negative n makes LargestComponent fail with ErrBadMaxLabel.
func WithMaxLabel(n int) Option {
	return func(o *ScanOptions) {
		o.MaxLabel = n
	}
}

// WithOnRegion returns an Option that installs fn as a per-region hook.
// The hook is called once per filled region, in row-major discovery order.
func WithOnRegion(fn func(label, size int) error) Option {
	return func(o *ScanOptions) {
		o.OnRegion = fn
	}
}
