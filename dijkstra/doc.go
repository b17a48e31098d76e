// Package dijkstra computes exact step distances on a gridgraph.Grid with
// uniform-cost search, the heuristic-free counterpart of package astar.
//
// Overview:
//
//   - Dijkstra expands cells in order of increasing distance from a single
//     source and returns the distance to every cell of the grid.
//   - Every step costs 1, orthogonal or diagonal, matching astar.Run, so
//     dist[goal] is the cost any optimal A* run must report.
//   - Unreachable cells and barriers keep math.MaxInt.
//
// When to use:
//
//   - Checking A* results: a found run's Cost equals dist[goal], and a
//     NoPath run means dist[goal] == math.MaxInt.
//   - Distance fields for a whole board (reachability, heat maps) where a
//     single goal does not exist.
//
// Options:
//
//   - Source(p):          required starting cell.
//   - WithReturnPath():   also return the predecessor map.
//   - WithMaxDistance(d): cells farther than d are not expanded (d ≥ 0).
//
// Complexity:
//
//   - Time:  O(N log N) for N = rows × cols, each cell finalized once.
//   - Space: O(N) for the distance and predecessor maps and the heap.
//
// The grid's neighbor lists must be current (see Grid.RefreshNeighbors).
package dijkstra
