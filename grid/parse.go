package grid

// Parse builds a grid from text rows: '.' is passable, 'O' is an obstacle and
// any other rune is an impassable wall. Handy for fixtures and round-tripping
// the pass/wall rows of an exported level.
// Returns ErrEmptyGrid for no rows or empty rows, ErrNonRectangular for ragged input.
// Complexity: O(W×H).
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len([]rune(rows[0]))
	for _, r := range rows {
		if len([]rune(r)) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, r := range rows {
		for x, ch := range []rune(r) {
			c := g.At(x, y)
			switch ch {
			case '.':
				c.Passable = true
			case 'O':
				c.Obstacle = true
			}
		}
	}
	return g, nil
}

// SetElevations copies a row-major elevation matrix onto g. Rows or columns
// beyond the grid are ignored.
func (g *Grid) SetElevations(elev [][]int) {
	for y := 0; y < len(elev) && y < g.Height; y++ {
		for x := 0; x < len(elev[y]) && x < g.Width; x++ {
			g.At(x, y).Elevation = elev[y][x]
		}
	}
}
