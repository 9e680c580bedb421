package grid

// Regions finds all 4-connected regions of passable cells.
// Returns a slice of regions; each region is a slice of row-major cell indices
// in BFS discovery order. Regions are ordered by their first cell in row-major
// scan, so the output is deterministic.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() [][]int {
	seen := make([]bool, len(g.cells))
	var regions [][]int

	for i0 := range g.cells {
		if !g.cells[i0].Passable || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			for _, d := range Directions {
				dx, dy := d.Offset()
				vx, vy := ux+dx, uy+dy
				if !g.Passable(vx, vy) {
					continue
				}
				vi := g.Index(vx, vy)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, queue)
	}
	return regions
}

// RegionLabels returns, for every cell, the index of its region in Regions()
// or -1 for impassable cells.
func (g *Grid) RegionLabels() []int {
	labels := make([]int, len(g.cells))
	for i := range labels {
		labels[i] = -1
	}
	for r, region := range g.Regions() {
		for _, i := range region {
			labels[i] = r
		}
	}
	return labels
}
