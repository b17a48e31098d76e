package dijkstra_test

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathgrid/dijkstra"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// ExampleDijkstra prints the distance field of a small walled grid.
func ExampleDijkstra() {
	g, _ := gridgraph.NewGrid(3, 3, gridgraph.GridOptions{Conn: gridgraph.Conn4})
	_ = g.SetBarrier(gridgraph.Pos(1, 0))
	_ = g.SetBarrier(gridgraph.Pos(1, 1))
	g.RefreshNeighbors()

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(gridgraph.Pos(0, 0)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for r := 0; r < 3; r++ {
		row := make([]string, 0, 3)
		for c := 0; c < 3; c++ {
			p := gridgraph.Pos(r, c)
			if g.IsBarrier(p) {
				row = append(row, "#")
				continue
			}
			row = append(row, strconv.Itoa(dist[p]))
		}
		fmt.Println(strings.Join(row, " "))
	}
	// Output:
	// 0 1 2
	// # # 3
	// 6 5 4
}
