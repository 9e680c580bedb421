package grid_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgen/grid"
)

// ExampleGrid_Regions labels the 4-connected passable regions of a small map.
func ExampleGrid_Regions() {
	g, _ := grid.Parse([]string{
		"..#..",
		"#.#.#",
		"###..",
	})
	for i, region := range g.Regions() {
		fmt.Printf("region %d:", i)
		for _, idx := range region {
			x, y := g.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}
	// Output:
	// region 0: (0,0) (1,0) (1,1)
	// region 1: (3,0) (4,0) (3,1) (3,2) (4,2)
}

// ExampleGrid_Mask prints the connectivity bitmask of a corridor bend.
func ExampleGrid_Mask() {
	g, _ := grid.Parse([]string{
		"#.#",
		"#..",
		"###",
	})
	fmt.Println(g.Mask(1, 1))
	// Output:
	// NE
}
