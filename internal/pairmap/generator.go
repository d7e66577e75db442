// Package pairmap implements the pair-map generation engine: optimal-path
// selection over a similarity score matrix followed by constraint-
// preserving edge pruning. The result is a small connected graph anchored
// on the chosen source-target path in which every retained edge either
// supports the path, a bounded cycle around it, or overall connectivity.
package pairmap

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/YumizSui/pairmap/internal/intermediates"
	"github.com/YumizSui/pairmap/internal/matrix"
	"github.com/YumizSui/pairmap/internal/scores"
)

// Generator drives a single map generation run. It is not safe for
// concurrent use; the pruner owns its working graph exclusively.
type Generator struct {
	list   intermediates.List
	opts   Options
	log    *zap.Logger
	scorer scores.Scorer

	m          *matrix.Matrix
	foundPath  []int64
	foundLinks []link
	links      linkSet
}

// New validates the options and, when a custom score matrix is supplied,
// its shape against the intermediate list. Matrix shape problems surface
// here, before any graph work begins.
func New(list intermediates.List, opts Options, logger *zap.Logger) (*Generator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := opts.Validate(len(list)); err != nil {
		return nil, err
	}
	if opts.ScoreMatrix != nil {
		if err := opts.ScoreMatrix.CheckSize(len(list)); err != nil {
			return nil, err
		}
	}

	gen := &Generator{
		list: list,
		opts: opts,
		log:  logger,
	}
	// Until selection runs, the found path is the bare source-target pair.
	gen.setFoundPath([]int64{int64(opts.SourceIndex), int64(opts.TargetIndex)})
	return gen, nil
}

// SetScorer installs the external score collaborator used when no custom
// matrix was supplied.
func (gen *Generator) SetScorer(s scores.Scorer) { gen.scorer = s }

func (gen *Generator) source() int64 { return int64(gen.opts.SourceIndex) }
func (gen *Generator) target() int64 { return int64(gen.opts.TargetIndex) }

// scoreMatrix resolves the score matrix: the custom one verbatim if
// supplied, otherwise the collaborator's with Jobs forwarded unchanged.
func (gen *Generator) scoreMatrix(ctx context.Context) (*matrix.Matrix, error) {
	if gen.opts.ScoreMatrix != nil {
		return gen.opts.ScoreMatrix, nil
	}
	if gen.scorer == nil {
		return nil, fmt.Errorf("no score matrix supplied and no scorer installed")
	}
	m, err := gen.scorer.ScoreMatrix(ctx, gen.list, gen.opts.Jobs)
	if err != nil {
		return nil, fmt.Errorf("compute score matrix: %w", err)
	}
	if err := m.CheckSize(len(gen.list)); err != nil {
		return nil, err
	}
	return m, nil
}

// buildGraph materializes the threshold graph: all intermediate indices as
// nodes, and an edge for every pair whose rounded score reaches tau.
func (gen *Generator) buildGraph(tau float64) *simple.WeightedUndirectedGraph {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	n := gen.m.N()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			score := gen.m.Round2(u, v)
			if score >= tau {
				g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(int64(u)), T: simple.Node(int64(v)), W: score})
			}
		}
	}
	return g
}

// BuildMap runs the full pipeline: resolve scores, select the optimal
// path, and unless OptimalPathMode is set, prune the threshold graph down
// to the final map. All errors are fatal; there is no retry.
func (gen *Generator) BuildMap(ctx context.Context) (*Map, error) {
	m, err := gen.scoreMatrix(ctx)
	if err != nil {
		return nil, err
	}
	gen.m = m

	if err := gen.findOptimalPath(); err != nil {
		return nil, err
	}

	if gen.opts.OptimalPathMode {
		return gen.optimalPathMap(), nil
	}

	p := newPruner(gen)
	final, err := p.run(ctx)
	if err != nil {
		return nil, err
	}
	return gen.mapFromGraph(final), nil
}

// Map is the generation result: labelled nodes and scored edges, with the
// found path recorded. Nodes and edges are sorted for deterministic
// serialization.
type Map struct {
	Nodes []MapNode `json:"nodes" yaml:"nodes"`
	Edges []MapEdge `json:"edges" yaml:"edges"`
	Path  []int64   `json:"path" yaml:"path"`
}

// MapNode is a node of the generated map.
type MapNode struct {
	Index int64  `json:"index" yaml:"index"`
	Label string `json:"label" yaml:"label"`
}

// MapEdge is an undirected edge of the generated map with its similarity
// score and found-path membership.
type MapEdge struct {
	U         int64   `json:"u" yaml:"u"`
	V         int64   `json:"v" yaml:"v"`
	Score     float64 `json:"score" yaml:"score"`
	FoundPath bool    `json:"foundPath" yaml:"foundPath"`
}

// optimalPathMap builds the path-only output: the found-path nodes and
// their consecutive edges carrying raw (unrounded) scores.
func (gen *Generator) optimalPathMap() *Map {
	out := &Map{Path: append([]int64(nil), gen.foundPath...)}
	nodes := append([]int64(nil), gen.foundPath...)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	for _, id := range nodes {
		out.Nodes = append(out.Nodes, MapNode{Index: id, Label: gen.list.NameAt(int(id))})
	}
	for i := 0; i+1 < len(gen.foundPath); i++ {
		l := normLink(gen.foundPath[i], gen.foundPath[i+1])
		out.Edges = append(out.Edges, MapEdge{
			U:         l.U,
			V:         l.V,
			Score:     gen.m.At(int(l.U), int(l.V)),
			FoundPath: true,
		})
	}
	sort.Slice(out.Edges, func(i, j int) bool {
		if out.Edges[i].U != out.Edges[j].U {
			return out.Edges[i].U < out.Edges[j].U
		}
		return out.Edges[i].V < out.Edges[j].V
	})
	return out
}

// mapFromGraph converts the pruned working graph into the exported form.
func (gen *Generator) mapFromGraph(g *simple.WeightedUndirectedGraph) *Map {
	out := &Map{Path: append([]int64(nil), gen.foundPath...)}
	for _, id := range sortedNodeIDs(g) {
		out.Nodes = append(out.Nodes, MapNode{Index: id, Label: gen.list.NameAt(int(id))})
	}
	it := g.WeightedEdges()
	for it.Next() {
		e := it.WeightedEdge()
		l := normLink(e.From().ID(), e.To().ID())
		out.Edges = append(out.Edges, MapEdge{
			U:         l.U,
			V:         l.V,
			Score:     e.Weight(),
			FoundPath: gen.links.has(l),
		})
	}
	sort.Slice(out.Edges, func(i, j int) bool {
		if out.Edges[i].U != out.Edges[j].U {
			return out.Edges[i].U < out.Edges[j].U
		}
		return out.Edges[i].V < out.Edges[j].V
	})
	return out
}

// FoundPath returns the selected path after BuildMap.
func (gen *Generator) FoundPath() []int64 {
	return append([]int64(nil), gen.foundPath...)
}
