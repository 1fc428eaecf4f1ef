// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid ('.' = walkable, '#' = blocked):
//
//	#..#
//	..##
//	##..
//
// Expected: 2 regions of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	opts := DefaultGridOptions()
	opts.Conn = Conn4
	gg, err := FromASCII([]string{
		"#..#",
		"..##",
		"##..",
	}, opts)
	if err != nil {
		t.Fatalf("FromASCII failed: %v", err)
	}

	comps := gg.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	// Collect sizes and sort for comparison.
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_Diagonal8 tests ConnectedComponents on a 5×5 grid
// using diagonal connectivity (Conn8) to catch “touching corners” regions.
//
// With Conn8, all 9 open cells connect through diagonal hops into a single region.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	gg, err := FromASCII([]string{
		".###.",
		"#.#.#",
		"##.##",
		"#.#.#",
		".###.",
	}, DefaultGridOptions())
	if err != nil {
		t.Fatalf("FromASCII failed: %v", err)
	}

	comps := gg.ConnectedComponents()
	if len(comps) != 1 {
		t.Fatalf("got %d components; want 1", len(comps))
	}
	if size := len(comps[0]); size != 9 {
		t.Errorf("component size = %d; want 9", size)
	}
}

// TestComponentLabels_Walled checks that a full wall splits the grid.
func TestComponentLabels_Walled(t *testing.T) {
	gg, err := FromASCII([]string{
		"..#..",
		"..#..",
		"..#..",
	}, DefaultGridOptions())
	if err != nil {
		t.Fatalf("FromASCII failed: %v", err)
	}

	labels := gg.ComponentLabels()
	left := labels[gg.index(0, 0)]
	right := labels[gg.index(4, 2)]
	if left != 0 || right != 1 {
		t.Errorf("labels left=%d right=%d; want 0 and 1", left, right)
	}
	if wall := labels[gg.index(2, 1)]; wall != -1 {
		t.Errorf("wall label = %d; want -1", wall)
	}
}
