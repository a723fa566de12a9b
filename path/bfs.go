package path

import (
	"math/rand"

	"github.com/gravitas-015/hexcore/hex"
)

// BFS finds a shortest path by step count from start to goal.
// If rng is non-nil the neighbor visiting order is shuffled once, which
// varies the route chosen among equally short ones.
func BFS(start, goal hex.Hex, neighbors NeighborFunc, rng *rand.Rand) []hex.Hex {
	if start == goal {
		return []hex.Hex{start}
	}
	order := []int{0, 1, 2, 3, 4, 5}
	if rng != nil {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	prev := make(map[hex.Hex]hex.Hex)
	visited := map[hex.Hex]bool{start: true}
	queue := []hex.Hex{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nxt := range permute(neighbors(cur), order) {
			if visited[nxt] {
				continue
			}
			visited[nxt] = true
			prev[nxt] = cur
			if nxt == goal {
				return reconstruct(prev, start, goal)
			}
			queue = append(queue, nxt)
		}
	}
	return nil
}

// permute reorders the first six entries of nbs by order; any further
// entries keep their position after them.
func permute(nbs []hex.Hex, order []int) []hex.Hex {
	out := make([]hex.Hex, 0, len(nbs))
	for _, idx := range order {
		if idx < len(nbs) {
			out = append(out, nbs[idx])
		}
	}
	if len(nbs) > len(order) {
		out = append(out, nbs[len(order):]...)
	}
	return out
}

// Reachable returns every hex within steps moves of start, mapped to its
// step count.
func Reachable(start hex.Hex, steps int, neighbors NeighborFunc) map[hex.Hex]int {
	dist := map[hex.Hex]int{start: 0}
	fringe := []hex.Hex{start}
	for k := 1; k <= steps && len(fringe) > 0; k++ {
		var next []hex.Hex
		for _, cur := range fringe {
			for _, nb := range neighbors(cur) {
				if _, ok := dist[nb]; ok {
					continue
				}
				dist[nb] = k
				next = append(next, nb)
			}
		}
		fringe = next
	}
	return dist
}
