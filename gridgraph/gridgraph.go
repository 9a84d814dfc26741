package gridgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/carve/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrConnectivity for an unknown Conn.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	var forward [][2]int
	switch opts.Conn {
	case Conn4:
		forward = [][2]int{{1, 0}, {0, 1}}
	case Conn8:
		forward = [][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}}
	default:
		return nil, fmt.Errorf("%w: %d", ErrConnectivity, opts.Conn)
	}

	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	gg := &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		OpenThreshold: opts.OpenThreshold,
		ids:           make([]core.NodeID, w*h),
		forward:       forward,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !gg.IsOpen(x, y) {
				gg.ids[gg.index(x, y)] = -1
				continue
			}
			gg.ids[gg.index(x, y)] = core.NodeID(len(gg.cells))
			gg.cells = append(gg.cells, Cell{X: x, Y: y, Value: cells[y][x]})
		}
	}

	return gg, nil
}

// ParseMask builds a GridGraph from text rows: the rune open marks an open
// cell (value 1), anything else a blocked one (value 0).
func ParseMask(rows []string, open rune, conn Connectivity) (*GridGraph, error) {
	values := make([][]int, len(rows))
	for y, row := range rows {
		runes := []rune(strings.TrimRight(row, "\r"))
		values[y] = make([]int, len(runes))
		for x, r := range runes {
			if r == open {
				values[y][x] = 1
			}
		}
	}

	return NewGridGraph(values, GridOptions{OpenThreshold: 1, Conn: conn})
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsOpen reports whether (x,y) is in bounds and open.
func (gg *GridGraph) IsOpen(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.OpenThreshold
}

// OpenCount returns the number of open cells, i.e. the node count of ToCoreGraph.
func (gg *GridGraph) OpenCount() int { return len(gg.cells) }

// NodeAt returns the node handle of the open cell (x,y).
func (gg *GridGraph) NodeAt(x, y int) (core.NodeID, bool) {
	if !gg.InBounds(x, y) {
		return 0, false
	}
	id := gg.ids[gg.index(x, y)]

	return id, id >= 0
}

// CellOf returns the cell behind node handle id.
func (gg *GridGraph) CellOf(id core.NodeID) (Cell, bool) {
	if id < 0 || int(id) >= len(gg.cells) {
		return Cell{}, false
	}

	return gg.cells[id], true
}

// ToCoreGraph converts the open cells into an undirected *core.Graph.
// Each open cell (x,y) becomes a node labelled "x,y" with metadata {x,y,value};
// unit-weight edges link open neighbors according to gg.Conn.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph()
	for _, c := range gg.cells {
		id := g.AddNode(fmt.Sprintf("%d,%d", c.X, c.Y))
		n, err := g.Node(id)
		if err != nil {
			return nil, err
		}
		n.Metadata = map[string]interface{}{"x": c.X, "y": c.Y, "value": c.Value}
	}
	for id, c := range gg.cells {
		for _, d := range gg.forward {
			nb, ok := gg.NodeAt(c.X+d[0], c.Y+d[1])
			if !ok {
				continue
			}
			if _, err := g.Connect(core.NodeID(id), nb, core.WithWeight(1)); err != nil {
				return nil, fmt.Errorf("gridgraph: link %d,%d: %w", c.X, c.Y, err)
			}
		}
	}

	return g, nil
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
