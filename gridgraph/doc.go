// Package gridgraph models a fixed-size 2D grid of cells as the search
// space for pathfinding.
//
// What:
//
//   - Grid holds rows × cols cells addressed by Position{Row, Col}.
//   - Each cell carries a barrier flag and a cached neighbor list.
//   - Neighbor lists are recomputed on demand by RefreshNeighbors; they are
//     not maintained incrementally and go stale after barrier edits.
//   - ConnectedComponents groups open cells into regions reachable from each
//     other through the cached neighbor lists.
//
// Why:
//
//   - Interactive editors flip many barriers between searches; one batch
//     refresh before a run is cheaper than keeping every list current.
//   - The search engine only ever reads neighbor lists, so it never needs to
//     know about barriers or grid bounds.
//
// Connectivity:
//
//   - Conn4: down, up, right, left.
//   - Conn8: the four above plus up-left, down-right, down-left, up-right.
//     Diagonal steps are allowed even when both flanking orthogonal cells
//     are barriers (no corner-cutting prevention).
//
// Complexity:
//
//   - NewGrid:             O(R×C) time and memory.
//   - SetBarrier etc.:     O(1).
//   - RefreshNeighbors:    O(R×C×d), d = 4 or 8.
//   - ConnectedComponents: O(R×C×d), Memory: O(R×C).
//
// Errors:
//
//   - ErrInvalidDimension: rows or cols not positive.
//   - ErrOutOfBounds: position outside the grid.
package gridgraph
