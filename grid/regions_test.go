package grid

import (
	"reflect"
	"sort"
	"testing"
)

// TestRegions_Simple tests Regions on a 4×3 grid.
//
//	# . . #
//	. . # #
//	# # . .
//
// Expected: 2 regions of sizes 4 and 2.
func TestRegions_Simple(t *testing.T) {
	g, err := Parse([]string{
		"#..#",
		"..##",
		"##..",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	regions := g.Regions()
	if len(regions) != 2 {
		t.Fatalf("got %d regions; want 2", len(regions))
	}
	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	if want := []int{2, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("region sizes = %v; want %v", sizes, want)
	}

	labels := g.RegionLabels()
	if labels[g.Index(0, 0)] != -1 {
		t.Errorf("wall label = %d; want -1", labels[g.Index(0, 0)])
	}
	if labels[g.Index(1, 0)] != labels[g.Index(0, 1)] {
		t.Error("cells of the first region must share a label")
	}
}

// TestRegions_DiagonalsSplit ensures corner-touching cells stay separate.
func TestRegions_DiagonalsSplit(t *testing.T) {
	g, _ := Parse([]string{
		".#",
		"#.",
	})
	if n := len(g.Regions()); n != 2 {
		t.Errorf("got %d regions; want 2", n)
	}
}

func TestRegions_AllWallsAndObstacles(t *testing.T) {
	g, _ := Parse([]string{"#O", "O#"})
	if n := len(g.Regions()); n != 0 {
		t.Errorf("got %d regions; want 0", n)
	}
	if !g.At(1, 0).Obstacle || g.At(1, 0).Passable {
		t.Error("'O' must parse as an impassable obstacle")
	}
}
