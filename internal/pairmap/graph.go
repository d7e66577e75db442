package pairmap

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// link is an unordered edge key with endpoints stored ascending.
type link struct {
	U, V int64
}

func normLink(u, v int64) link {
	if u > v {
		u, v = v, u
	}
	return link{U: u, V: v}
}

type linkSet map[link]struct{}

func (s linkSet) add(l link)      { s[l] = struct{}{} }
func (s linkSet) has(l link) bool { _, ok := s[l]; return ok }

// edgeBundle is the attribute bundle carried alongside an edge through the
// pruning passes so that rejected removals can be rolled back.
type edgeBundle struct {
	u, v  int64
	score float64
}

func cloneGraph(src *simple.WeightedUndirectedGraph) *simple.WeightedUndirectedGraph {
	dst := simple.NewWeightedUndirectedGraph(0, 0)
	nodes := src.Nodes()
	for nodes.Next() {
		dst.AddNode(nodes.Node())
	}
	edges := src.WeightedEdges()
	for edges.Next() {
		dst.SetWeightedEdge(edges.WeightedEdge())
	}
	return dst
}

// inducedSubgraph copies the nodes in keep and every edge of src whose
// endpoints are both kept. src is not mutated.
func inducedSubgraph(src *simple.WeightedUndirectedGraph, keep map[int64]struct{}) *simple.WeightedUndirectedGraph {
	dst := simple.NewWeightedUndirectedGraph(0, 0)
	for id := range keep {
		if src.Node(id) != nil {
			dst.AddNode(simple.Node(id))
		}
	}
	edges := src.WeightedEdges()
	for edges.Next() {
		e := edges.WeightedEdge()
		if _, ok := keep[e.From().ID()]; !ok {
			continue
		}
		if _, ok := keep[e.To().ID()]; !ok {
			continue
		}
		dst.SetWeightedEdge(e)
	}
	return dst
}

func sortedNodeIDs(g *simple.WeightedUndirectedGraph) []int64 {
	nodes := graph.NodesOf(g.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortedNeighbors(g *simple.WeightedUndirectedGraph, id int64) []int64 {
	nodes := graph.NodesOf(g.From(id))
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// sortedEdges lists the edges of g in ascending score order, ties broken
// by endpoint IDs so that processing order is deterministic.
func sortedEdges(g *simple.WeightedUndirectedGraph) []edgeBundle {
	it := g.WeightedEdges()
	bundles := make([]edgeBundle, 0, it.Len())
	for it.Next() {
		e := it.WeightedEdge()
		l := normLink(e.From().ID(), e.To().ID())
		bundles = append(bundles, edgeBundle{u: l.U, v: l.V, score: e.Weight()})
	}
	sort.Slice(bundles, func(i, j int) bool {
		a, b := bundles[i], bundles[j]
		if a.score != b.score {
			return a.score < b.score
		}
		if a.u != b.u {
			return a.u < b.u
		}
		return a.v < b.v
	})
	return bundles
}

func containsAll(g *simple.WeightedUndirectedGraph, nodes []int64) bool {
	for _, id := range nodes {
		if g.Node(id) == nil {
			return false
		}
	}
	return true
}

func setEdge(g *simple.WeightedUndirectedGraph, b edgeBundle) {
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(b.u), T: simple.Node(b.v), W: b.score})
}
