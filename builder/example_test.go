package builder_test

import (
	"fmt"

	"github.com/katalvlaran/graphstat/builder"
	"github.com/katalvlaran/graphstat/core"
)

// ExampleBuildGraph builds an undirected wheel and inspects the hub.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph([]core.Option{core.WithUndirected()}, nil, builder.Wheel(6))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Nodes:", g.NodeCount(), "Entries:", g.EdgeCount())
	fmt.Println("Hub neighbors:", g.NeighborIDs(0))
	// Output:
	// Nodes: 6 Entries: 20
	// Hub neighbors: [1 2 3 4 5]
}
