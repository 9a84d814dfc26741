// Package gridgraph treats a 2D grid of integer cell values as a maze topology.
//
// Cells with value ≥ OpenThreshold are open and become graph nodes; the others
// are blocked and stay out of the graph. Open cells are linked to their open
// neighbors with four- or eight-connectivity (Conn4, Conn8).
//
// Node handles are assigned in row-major order over open cells only, so a
// GridGraph can map handles back to coordinates (CellOf) and coordinates to
// handles (NodeAt) for any graph produced by ToCoreGraph.
//
// ParseMask builds the value grid from text rows, which is the usual way to
// describe masked mazes:
//
//	#....
//	..#..
//	....#
package gridgraph
