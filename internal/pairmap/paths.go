package pairmap

import "gonum.org/v1/gonum/graph/simple"

// allSimplePaths enumerates every simple path from source to target with at
// most cutoff edges. Neighbors are explored in ascending ID order, so the
// enumeration order is deterministic for a given graph.
func allSimplePaths(g *simple.WeightedUndirectedGraph, source, target int64, cutoff int) [][]int64 {
	if cutoff < 1 || g.Node(source) == nil || g.Node(target) == nil {
		return nil
	}

	var paths [][]int64
	path := []int64{source}
	onPath := map[int64]bool{source: true}

	var visit func(u int64)
	visit = func(u int64) {
		for _, v := range sortedNeighbors(g, u) {
			if v == target {
				found := make([]int64, len(path)+1)
				copy(found, path)
				found[len(path)] = target
				paths = append(paths, found)
				continue
			}
			// A non-target hop still needs at least one more edge to
			// reach the target within the cutoff.
			if onPath[v] || len(path) >= cutoff {
				continue
			}
			onPath[v] = true
			path = append(path, v)
			visit(v)
			path = path[:len(path)-1]
			delete(onPath, v)
		}
	}
	visit(source)
	return paths
}
