package pairmap

import "gonum.org/v1/gonum/graph/simple"

// simpleCyclesBounded enumerates every simple cycle of g with at most
// bound nodes. Each cycle is reported once, rooted at its smallest node
// with the smaller of its two neighbors second, so the output is
// deterministic and free of rotations and reflections.
func simpleCyclesBounded(g *simple.WeightedUndirectedGraph, bound int) [][]int64 {
	if bound < 3 {
		return nil
	}

	var cycles [][]int64
	for _, s := range sortedNodeIDs(g) {
		path := []int64{s}
		onPath := map[int64]bool{s: true}

		var visit func(u int64)
		visit = func(u int64) {
			for _, v := range sortedNeighbors(g, u) {
				if v == s {
					if len(path) >= 3 && path[1] < path[len(path)-1] {
						cycles = append(cycles, append([]int64(nil), path...))
					}
					continue
				}
				// Cycles through smaller nodes were emitted on their
				// own root's turn.
				if v < s || onPath[v] || len(path) >= bound {
					continue
				}
				onPath[v] = true
				path = append(path, v)
				visit(v)
				path = path[:len(path)-1]
				delete(onPath, v)
			}
		}
		visit(s)
	}
	return cycles
}

// bridges returns the bridge edges of g: edges whose removal disconnects
// their component. Standard low-link DFS.
func bridges(g *simple.WeightedUndirectedGraph) linkSet {
	disc := make(map[int64]int)
	low := make(map[int64]int)
	timer := 0
	out := linkSet{}

	var visit func(u, parent int64)
	visit = func(u, parent int64) {
		timer++
		disc[u] = timer
		low[u] = timer
		for _, v := range sortedNeighbors(g, u) {
			if v == parent {
				continue
			}
			if d, seen := disc[v]; seen {
				if d < low[u] {
					low[u] = d
				}
				continue
			}
			visit(v, u)
			if low[v] < low[u] {
				low[u] = low[v]
			}
			if low[v] > disc[u] {
				out.add(normLink(u, v))
			}
		}
	}

	for _, s := range sortedNodeIDs(g) {
		if _, seen := disc[s]; !seen {
			visit(s, -1)
		}
	}
	return out
}
