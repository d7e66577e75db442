package pairmap

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/traverse"
)

// findOptimalPath selects the source-target path anchoring the map.
//
// A preliminary rough search warns when a short path already exists above
// RoughScoreThreshold; in that regime a pair map adds little. The warning
// is advisory and never changes the output.
//
// Candidates are the simple paths with at most MaxOptimalPathLength edges
// in the MinScoreThreshold graph, ranked by the sum of reciprocals of
// their edge scores. The reciprocal sum punishes weakest-link paths hard
// while still admitting longer paths whose edges are all strong. Ties keep
// the first candidate in enumeration order.
func (gen *Generator) findOptimalPath() error {
	src, tgt := gen.source(), gen.target()

	rough := gen.buildGraph(gen.opts.RoughScoreThreshold)
	bfs := traverse.BreadthFirst{}
	var depth int
	reached := bfs.Walk(rough, rough.Node(src), func(n graph.Node, d int) bool {
		if n.ID() == tgt {
			depth = d
			return true
		}
		return false
	})
	if reached != nil && depth <= gen.opts.RoughMaxPathLength {
		gen.log.Warn("short high-score path already connects source and target; a pair map may be unnecessary",
			zap.Int("path_length", depth),
			zap.Float64("rough_score_threshold", gen.opts.RoughScoreThreshold))
	}

	g := gen.buildGraph(gen.opts.MinScoreThreshold)
	candidates := allSimplePaths(g, src, tgt, gen.opts.MaxOptimalPathLength)
	if len(candidates) == 0 {
		return fmt.Errorf("%w: no path of at most %d edges between %d and %d at threshold %.2f",
			ErrNoPathFound, gen.opts.MaxOptimalPathLength, src, tgt, gen.opts.MinScoreThreshold)
	}

	bestSum := math.Inf(1)
	var best []int64
	for _, path := range candidates {
		sum := 0.0
		for i := 0; i+1 < len(path); i++ {
			w, _ := g.Weight(path[i], path[i+1])
			sum += 1 / w
		}
		if sum < bestSum {
			bestSum = sum
			best = path
		}
	}

	gen.setFoundPath(best)
	gen.log.Debug("optimal path selected",
		zap.Int64s("path", gen.foundPath),
		zap.Float64("reciprocal_score_sum", bestSum),
		zap.Int("candidates", len(candidates)))
	return nil
}

func (gen *Generator) setFoundPath(path []int64) {
	gen.foundPath = path
	gen.foundLinks = gen.foundLinks[:0]
	gen.links = linkSet{}
	for i := 0; i+1 < len(path); i++ {
		l := normLink(path[i], path[i+1])
		gen.foundLinks = append(gen.foundLinks, l)
		gen.links.add(l)
	}
}
