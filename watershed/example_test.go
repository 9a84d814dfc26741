package watershed_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/carve/builder"
	"github.com/katalvlaran/carve/core"
	"github.com/katalvlaran/carve/watershed"
)

// ExampleNew splits the path A-B-C-D between seeds A and D.
func ExampleNew() {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, err := watershed.New(g, []core.NodeID{0, 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = p.Run(context.Background()); err != nil {
		fmt.Println("error:", err)
		return
	}

	for i, nodes := range p.Territories() {
		fmt.Print("territory ", i, ":")
		for _, id := range nodes {
			fmt.Print(" ", g.Label(id))
		}
		fmt.Println()
	}
	for _, fg := range p.Floodgates(0, 1) {
		fmt.Println("floodgate:", g.Label(fg.From), "-", g.Label(fg.To))
	}
	// Output:
	// territory 0: A B
	// territory 1: D C
	// floodgate: B - C
}
