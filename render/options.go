package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

const (
	// DefaultCellSize is the edge length of one cell in pixels.
	DefaultCellSize = 20
	// DefaultWallSize is the thickness of a wall band in pixels.
	DefaultWallSize = 5
)

var (
	// ErrViewNil is returned when a nil view is passed to a renderer.
	ErrViewNil = errors.New("render: view is nil")

	// ErrOptionViolation indicates an invalid renderer option.
	ErrOptionViolation = errors.New("render: invalid option")
)

// Option configures a renderer.
type Option func(*Options)

// Options holds renderer settings. Text renderers ignore the pixel sizes.
type Options struct {
	// Path is highlighted cell by cell (e.g. a solution from maze.Solve).
	Path []grid.Coord

	// Cursor marks the generator's current cell when HasCursor is set.
	Cursor    grid.Coord
	HasCursor bool

	// CellSize and WallSize drive the image renderer.
	CellSize int
	WallSize int

	err error
}

// DefaultOptions returns the canvas geometry with no overlays.
func DefaultOptions() Options {
	return Options{CellSize: DefaultCellSize, WallSize: DefaultWallSize}
}

// WithPath overlays the given cells.
func WithPath(path []grid.Coord) Option {
	return func(o *Options) {
		o.Path = path
	}
}

// WithCursor marks pos as the current cell.
func WithCursor(pos grid.Coord) Option {
	return func(o *Options) {
		o.Cursor = pos
		o.HasCursor = true
	}
}

// WithCellSize sets the pixel size of one cell; it must be positive.
func WithCellSize(px int) Option {
	return func(o *Options) {
		if px < 1 {
			o.err = fmt.Errorf("%w: cell size %d", ErrOptionViolation, px)
			return
		}
		o.CellSize = px
	}
}

// WithWallSize sets the wall band thickness; zero hides walls.
func WithWallSize(px int) Option {
	return func(o *Options) {
		if px < 0 {
			o.err = fmt.Errorf("%w: wall size %d", ErrOptionViolation, px)
			return
		}
		o.WallSize = px
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if 2*o.WallSize > o.CellSize {
		return o, fmt.Errorf("%w: walls of %dpx do not fit a %dpx cell", ErrOptionViolation, o.WallSize, o.CellSize)
	}
	return o, nil
}

// pathSet indexes a path for O(1) membership tests.
func pathSet(path []grid.Coord) map[grid.Coord]struct{} {
	set := make(map[grid.Coord]struct{}, len(path))
	for _, p := range path {
		set[p] = struct{}{}
	}
	return set
}
