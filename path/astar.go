// Package path searches for routes between hexes. The caller supplies
// neighbors and step costs, so the package never knows what a hex contains.
package path

import (
	"container/heap"

	"github.com/gravitas-015/hexcore/hex"
)

// NeighborFunc returns the hexes reachable in one step from h.
type NeighborFunc func(h hex.Hex) []hex.Hex

// AStar computes a shortest path using the A* algorithm.
//   - start, goal: cube coordinates
//   - h: admissible heuristic (e.g., HeuristicTo(goal))
//   - neighbors: adjacent hexes to explore
//   - cost: edge cost between two adjacent hexes; values below 1 count as 1
//
// Returns the path including start and goal, or nil if no path exists.
func AStar(start, goal hex.Hex,
	h func(a hex.Hex) int,
	neighbors NeighborFunc,
	cost func(a, b hex.Hex) int,
) []hex.Hex {
	if start == goal {
		return []hex.Hex{start}
	}
	open := &nodePQ{}
	heap.Init(open)
	var seq int
	push := func(a hex.Hex, g, f int) {
		heap.Push(open, &pqNode{h: a, g: g, f: f, seq: seq})
		seq++
	}

	g := map[hex.Hex]int{start: 0}
	came := map[hex.Hex]hex.Hex{}
	closed := map[hex.Hex]bool{}
	push(start, 0, h(start))

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pqNode).h
		if closed[cur] {
			continue
		}
		closed[cur] = true
		if cur == goal {
			return reconstruct(came, start, goal)
		}
		for _, nb := range neighbors(cur) {
			if closed[nb] {
				continue
			}
			step := 1
			if cost != nil {
				step = max(cost(cur, nb), 1)
			}
			tentative := g[cur] + step
			if old, ok := g[nb]; !ok || tentative < old {
				g[nb] = tentative
				came[nb] = cur
				push(nb, tentative, tentative+h(nb))
			}
		}
	}
	return nil
}

func reconstruct(came map[hex.Hex]hex.Hex, start, goal hex.Hex) []hex.Hex {
	path := []hex.Hex{goal}
	for k := goal; k != start; {
		k = came[k]
		path = append(path, k)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type pqNode struct {
	h   hex.Hex
	g   int
	f   int
	seq int
}

// nodePQ orders by f, then prefers deeper nodes, then insertion order, so
// equal-cost searches are deterministic.
type nodePQ []*pqNode

func (p nodePQ) Len() int { return len(p) }
func (p nodePQ) Less(i, j int) bool {
	if p[i].f != p[j].f {
		return p[i].f < p[j].f
	}
	if p[i].g != p[j].g {
		return p[i].g > p[j].g
	}
	return p[i].seq < p[j].seq
}
func (p nodePQ) Swap(i, j int) { p[i], p[j] = p[j], p[i] }
func (p *nodePQ) Push(x any)   { *p = append(*p, x.(*pqNode)) }
func (p *nodePQ) Pop() any {
	old := *p
	n := len(old)
	x := old[n-1]
	*p = old[:n-1]
	return x
}

// HeuristicTo returns the hex distance to goal.
func HeuristicTo(goal hex.Hex) func(a hex.Hex) int {
	return func(a hex.Hex) int { return a.Distance(goal) }
}

// NeighborsWithinDisk limits neighbors to the disk of radius R around center.
func NeighborsWithinDisk(center hex.Hex, R int) NeighborFunc {
	return NeighborsWhere(func(b hex.Hex) bool { return center.Distance(b) <= R })
}

// NeighborsWhere returns the six neighbors for which passable is true.
func NeighborsWhere(passable func(h hex.Hex) bool) NeighborFunc {
	return func(a hex.Hex) []hex.Hex {
		out := make([]hex.Hex, 0, 6)
		for _, b := range a.Neighbors() {
			if passable(b) {
				out = append(out, b)
			}
		}
		return out
	}
}
