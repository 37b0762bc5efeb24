package grid

// Passages returns the neighbours of pos reachable through cleared walls,
// in Top, Right, Bottom, Left order.
func Passages(v View, pos Coord) ([]Coord, error) {
	cell, err := v.CellAt(pos.Row, pos.Col)
	if err != nil {
		return nil, err
	}
	out := make([]Coord, 0, 4)
	for _, s := range cell.OpenSides() {
		n := pos.Step(s)
		if n.Row < 0 || n.Row >= v.Rows() || n.Col < 0 || n.Col >= v.Cols() {
			continue // an open border wall leads nowhere
		}
		out = append(out, n)
	}
	return out, nil
}
