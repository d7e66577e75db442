package pairmap

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// reachableSubgraph induces g on the union of the found-path nodes and
// every node lying on some simple source-target path of bounded length.
func (gen *Generator) reachableSubgraph(g *simple.WeightedUndirectedGraph) (*simple.WeightedUndirectedGraph, error) {
	keep := make(map[int64]struct{})
	for _, id := range gen.foundPath {
		keep[id] = struct{}{}
	}
	for _, path := range allSimplePaths(g, gen.source(), gen.target(), gen.opts.MaxPathLength) {
		for _, id := range path {
			keep[id] = struct{}{}
		}
	}
	sub := inducedSubgraph(g, keep)
	if !containsAll(sub, gen.foundPath) {
		return nil, &InvalidGraphError{Stage: StageReachable}
	}
	return sub, nil
}

// cycleSubgraph induces g on the union of the found-path nodes and every
// node of a bounded simple cycle that touches the found path.
func (gen *Generator) cycleSubgraph(g *simple.WeightedUndirectedGraph) (*simple.WeightedUndirectedGraph, error) {
	keep := make(map[int64]struct{})
	onPath := make(map[int64]bool, len(gen.foundPath))
	for _, id := range gen.foundPath {
		keep[id] = struct{}{}
		onPath[id] = true
	}
	for _, cycle := range simpleCyclesBounded(g, gen.opts.CycleLength) {
		touches := false
		for _, id := range cycle {
			if onPath[id] {
				touches = true
				break
			}
		}
		if !touches {
			continue
		}
		for _, id := range cycle {
			keep[id] = struct{}{}
		}
	}
	sub := inducedSubgraph(g, keep)
	if !containsAll(sub, gen.foundPath) {
		return nil, &InvalidGraphError{Stage: StageCycle}
	}
	return sub, nil
}

// mainSubgraph returns the connected component holding the whole found
// path. Found-path edges are never pruned, so in a well-formed graph the
// path's nodes always share one component.
func (gen *Generator) mainSubgraph(g *simple.WeightedUndirectedGraph) (*simple.WeightedUndirectedGraph, error) {
	for _, component := range topo.ConnectedComponents(g) {
		members := make(map[int64]struct{}, len(component))
		for _, n := range component {
			members[n.ID()] = struct{}{}
		}
		all := true
		for _, id := range gen.foundPath {
			if _, ok := members[id]; !ok {
				all = false
				break
			}
		}
		if all {
			return inducedSubgraph(g, members), nil
		}
	}
	return nil, &InvalidGraphError{Stage: StageMain}
}

// reduce applies the three extraction stages in order. Every candidate
// graph produced during pruning goes through this pipeline.
func (gen *Generator) reduce(g *simple.WeightedUndirectedGraph) (*simple.WeightedUndirectedGraph, error) {
	ex, err := gen.reachableSubgraph(g)
	if err != nil {
		return nil, err
	}
	ex, err = gen.cycleSubgraph(ex)
	if err != nil {
		return nil, err
	}
	return gen.mainSubgraph(ex)
}
