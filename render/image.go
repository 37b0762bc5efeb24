package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/katalvlaran/labyrinth/grid"
)

// Canvas colours.
var (
	VisitedColor   = color.RGBA{R: 0xF9, G: 0xF9, B: 0xF9, A: 0xFF}
	WallColor      = color.RGBA{A: 0xFF}
	PathColor      = color.RGBA{R: 0xE6, G: 0x14, B: 0x14, A: 0xFF}
	CursorColor    = color.RGBA{R: 0x1E, G: 0x90, B: 0xFF, A: 0xFF}
	UnvisitedColor = color.Transparent
)

// Image is an image.Image of a maze. Each cell covers CellSize×CellSize
// pixels; a wall is a WallSize band along the matching cell edge, so a
// cleared wall-pair leaves an open doorway between two cells.
//
// The cells are copied at construction: an Image is a still frame and does
// not follow later changes to the view.
type Image struct {
	rows, cols int
	cells      []grid.Cell
	path       map[grid.Coord]struct{}
	opts       Options
}

// NewImage captures v into an Image.
func NewImage(v grid.View, opts ...Option) (*Image, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	img := &Image{
		rows:  v.Rows(),
		cols:  v.Cols(),
		cells: make([]grid.Cell, 0, v.Rows()*v.Cols()),
		path:  pathSet(o.Path),
		opts:  o,
	}
	for r := 0; r < img.rows; r++ {
		for c := 0; c < img.cols; c++ {
			cell, err := v.CellAt(r, c)
			if err != nil {
				return nil, err
			}
			img.cells = append(img.cells, cell)
		}
	}
	return img, nil
}

// ColorModel implements image.Image.
func (img *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.cols*img.opts.CellSize, img.rows*img.opts.CellSize)
}

// At implements image.Image.
func (img *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return color.Transparent
	}
	size, wall := img.opts.CellSize, img.opts.WallSize
	cell := img.cells[(y/size)*img.cols+x/size]
	lx, ly := x%size, y%size

	if (cell.Wall(grid.Top) && ly < wall) ||
		(cell.Wall(grid.Right) && lx >= size-wall) ||
		(cell.Wall(grid.Bottom) && ly >= size-wall) ||
		(cell.Wall(grid.Left) && lx < wall) {
		return WallColor
	}
	if img.opts.HasCursor && cell.Pos() == img.opts.Cursor {
		return CursorColor
	}
	if _, ok := img.path[cell.Pos()]; ok {
		return PathColor
	}
	if cell.Visited() {
		return VisitedColor
	}
	return UnvisitedColor
}

// WritePNG encodes v as a PNG image to w.
func WritePNG(w io.Writer, v grid.View, opts ...Option) error {
	img, err := NewImage(v, opts...)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if err = png.Encode(bw, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return bw.Flush()
}
