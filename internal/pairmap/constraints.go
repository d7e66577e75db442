package pairmap

import "gonum.org/v1/gonum/graph/simple"

// cycledNodes returns the found-path nodes that lie on some bounded simple
// cycle touching an interior found-path node. Source and target do not
// count as interior: a cycle through the endpoints alone does not anchor
// the path.
func (gen *Generator) cycledNodes(g *simple.WeightedUndirectedGraph) map[int64]struct{} {
	interior := make(map[int64]bool)
	for _, id := range gen.foundPath[1 : len(gen.foundPath)-1] {
		interior[id] = true
	}
	onPath := make(map[int64]bool, len(gen.foundPath))
	for _, id := range gen.foundPath {
		onPath[id] = true
	}

	cycled := make(map[int64]struct{})
	for _, cycle := range simpleCyclesBounded(g, gen.opts.CycleLength) {
		touches := false
		for _, id := range cycle {
			if interior[id] {
				touches = true
				break
			}
		}
		if !touches {
			continue
		}
		for _, id := range cycle {
			if onPath[id] {
				cycled[id] = struct{}{}
			}
		}
	}
	return cycled
}

// cycledEdges returns the found-path links that are not bridges of g.
func (gen *Generator) cycledEdges(g *simple.WeightedUndirectedGraph) linkSet {
	bridgeSet := bridges(g)
	cycled := linkSet{}
	for _, l := range gen.foundLinks {
		if !bridgeSet.has(l) {
			cycled.add(l)
		}
	}
	return cycled
}
