package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/katalvlaran/labyrinth/grid"
)

// CellDoc is the JSON form of one cell. Walls are listed in
// top, right, bottom, left order.
type CellDoc struct {
	Row     int     `json:"row"`
	Col     int     `json:"col"`
	Visited bool    `json:"visited"`
	Walls   [4]bool `json:"walls"`
}

// Document is the JSON form of a maze.
type Document struct {
	ID       uuid.UUID    `json:"id"`
	Rows     int          `json:"rows"`
	Cols     int          `json:"cols"`
	Seed     int64        `json:"seed"`
	Solution []grid.Coord `json:"solution,omitempty"`
	Cells    []CellDoc    `json:"cells"`
}

// NewDocument describes v under a fresh random ID. Seed is informational and
// lets clients regenerate the same maze; opts may attach a path as Solution.
func NewDocument(v grid.View, seed int64, opts ...Option) (*Document, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	doc := &Document{
		ID:       uuid.New(),
		Rows:     v.Rows(),
		Cols:     v.Cols(),
		Seed:     seed,
		Solution: o.Path,
		Cells:    make([]CellDoc, 0, v.Rows()*v.Cols()),
	}
	for r := 0; r < v.Rows(); r++ {
		for c := 0; c < v.Cols(); c++ {
			cell, err := v.CellAt(r, c)
			if err != nil {
				return nil, err
			}
			doc.Cells = append(doc.Cells, CellDoc{
				Row:     r,
				Col:     c,
				Visited: cell.Visited(),
				Walls:   cell.Walls(),
			})
		}
	}
	return doc, nil
}

// WriteJSON encodes the document of v to w.
func WriteJSON(w io.Writer, v grid.View, seed int64, opts ...Option) error {
	doc, err := NewDocument(v, seed, opts...)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("render: encode json: %w", err)
	}
	return nil
}
