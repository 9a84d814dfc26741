package gridgraph_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/carve/core"
	"github.com/katalvlaran/carve/gridgraph"
	"github.com/katalvlaran/carve/growth"
	"github.com/katalvlaran/carve/walls"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
		{"Connectivity", [][]int{{1}}, gridgraph.GridOptions{Conn: gridgraph.Connectivity(6)}, gridgraph.ErrConnectivity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds and IsOpen on a 3×2 grid.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
	if gg.IsOpen(0, 0) || !gg.IsOpen(1, 0) || gg.IsOpen(5, 5) {
		t.Errorf("IsOpen disagrees with the value grid")
	}
	if gg.OpenCount() != 3 {
		t.Errorf("OpenCount = %d; want 3", gg.OpenCount())
	}
}

//----------------------------------------------------------------------------//
// Numbering and ToCoreGraph Tests
//----------------------------------------------------------------------------//

// TestNumbering checks that handles follow row-major order over open cells.
func TestNumbering(t *testing.T) {
	gg, err := gridgraph.ParseMask([]string{
		"#..",
		".#.",
	}, '.', gridgraph.Conn4)
	if err != nil {
		t.Fatalf("ParseMask error: %v", err)
	}
	want := map[[2]int]core.NodeID{{1, 0}: 0, {2, 0}: 1, {0, 1}: 2, {2, 1}: 3}
	for xy, id := range want {
		got, ok := gg.NodeAt(xy[0], xy[1])
		if !ok || got != id {
			t.Errorf("NodeAt(%d,%d) = %d,%v; want %d", xy[0], xy[1], got, ok, id)
		}
		c, ok := gg.CellOf(id)
		if !ok || c.X != xy[0] || c.Y != xy[1] {
			t.Errorf("CellOf(%d) = %+v; want (%d,%d)", id, c, xy[0], xy[1])
		}
	}
	if _, ok := gg.NodeAt(0, 0); ok {
		t.Errorf("blocked cell (0,0) has a handle")
	}
	if _, ok := gg.CellOf(4); ok {
		t.Errorf("CellOf(4) found a cell beyond the open count")
	}
	if x, y := gg.Coordinate(4); x != 1 || y != 1 {
		t.Errorf("Coordinate(4) = (%d,%d); want (1,1)", x, y)
	}
}

// TestToCoreGraph_Conn4 verifies that only orthogonal edges between open cells exist.
func TestToCoreGraph_Conn4(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 0}, {1, 1}}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	cg, err := gg.ToCoreGraph()
	if err != nil {
		t.Fatalf("ToCoreGraph error: %v", err)
	}
	if cg.NodeCount() != 3 {
		t.Errorf("NodeCount = %d; want 3", cg.NodeCount())
	}
	if cg.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d; want 2", cg.EdgeCount())
	}
	top, _ := gg.NodeAt(0, 0)
	right, _ := gg.NodeAt(1, 1)
	if cg.IsConnected(top, right) {
		t.Errorf("diagonal edge present under Conn4")
	}
	if cg.Label(right) != "1,1" {
		t.Errorf("Label = %q; want \"1,1\"", cg.Label(right))
	}
	n, err := cg.Node(right)
	if err != nil || n.Metadata["value"] != 1 {
		t.Errorf("metadata of (1,1) = %v, %v", n, err)
	}
}

// TestToCoreGraph_Conn8 verifies that diagonals are linked once under Conn8.
func TestToCoreGraph_Conn8(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph([][]int{{1, 1}, {1, 1}}, opts)
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	cg, err := gg.ToCoreGraph()
	if err != nil {
		t.Fatalf("ToCoreGraph error: %v", err)
	}
	// K4: 2 horizontal, 2 vertical, 2 diagonal
	if cg.EdgeCount() != 6 {
		t.Errorf("EdgeCount = %d; want 6", cg.EdgeCount())
	}
}

// TestMaskedMaze carves and walls a masked grid down to spanning trees.
func TestMaskedMaze(t *testing.T) {
	gg, err := gridgraph.ParseMask([]string{
		"....#",
		".##.#",
		"....#",
		"##...",
	}, '.', gridgraph.Conn4)
	if err != nil {
		t.Fatalf("ParseMask error: %v", err)
	}
	g, err := gg.ToCoreGraph()
	if err != nil {
		t.Fatalf("ToCoreGraph error: %v", err)
	}
	if core.ComponentCount(g) != 1 {
		t.Fatalf("mask is not connected")
	}

	maze := g.CloneEmpty()
	e, err := growth.NewBreadthFirst(g, growth.WithCarveInto(maze))
	if err != nil {
		t.Fatalf("NewBreadthFirst error: %v", err)
	}
	if err = e.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if maze.EdgeCount() != gg.OpenCount()-1 {
		t.Errorf("carved %d passages; want %d", maze.EdgeCount(), gg.OpenCount()-1)
	}

	b, err := walls.New(g, walls.WithEulerCheck())
	if err != nil {
		t.Fatalf("walls.New error: %v", err)
	}
	if err = b.Run(context.Background()); err != nil {
		t.Fatalf("walls Run error: %v", err)
	}
	if core.EulerCharacteristic(g) != 0 || g.EdgeCount() != gg.OpenCount()-1 {
		t.Errorf("walled graph: χ=%d edges=%d", core.EulerCharacteristic(g), g.EdgeCount())
	}
}
