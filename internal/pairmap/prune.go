package pairmap

import (
	"context"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/graph/simple"
)

// pruner removes edges from the threshold graph in ascending score order
// while preserving the structural invariants snapshotted from the initial
// graph. It owns cur exclusively for the duration of run; checkChunk
// mutates it in place and rolls back rejected batches.
type pruner struct {
	gen *Generator
	log *zap.Logger

	cur *simple.WeightedUndirectedGraph

	initialCycledNodes map[int64]struct{}
	initialCycledEdges linkSet
}

func newPruner(gen *Generator) *pruner {
	return &pruner{gen: gen, log: gen.log}
}

// initialChunkSize is the largest power of scale not exceeding edges.
func initialChunkSize(edges, scale int) int {
	size := 1
	for size*scale <= edges {
		size *= scale
	}
	return size
}

// run executes the pruning pipeline: snapshot invariants, reduce the
// initial graph, walk the score-sorted edge list in geometrically sized
// chunks, then polish with a single-edge sweep.
func (p *pruner) run(ctx context.Context) (*simple.WeightedUndirectedGraph, error) {
	initial := p.gen.buildGraph(p.gen.opts.MinScoreThreshold)
	bundles := sortedEdges(initial)

	// Snapshots are taken on the full threshold graph, before reduction,
	// and are immutable from here on.
	p.initialCycledNodes = p.gen.cycledNodes(initial)
	p.initialCycledEdges = p.gen.cycledEdges(initial)

	ex, err := p.gen.reduce(initial)
	if err != nil {
		return nil, err
	}
	if !containsAll(ex, p.gen.foundPath) {
		return nil, &InvalidGraphError{Stage: StageInitial}
	}
	p.cur = ex

	p.log.Debug("pruning initial graph",
		zap.Int("edges", len(bundles)),
		zap.Int("cycled_nodes", len(p.initialCycledNodes)),
		zap.Int("cycled_edges", len(p.initialCycledEdges)))

	if len(bundles) > 0 {
		chunkSize := initialChunkSize(len(bundles), p.gen.opts.ChunkScale)
		crt := 0
		for crt < len(bundles) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			var chunk []edgeBundle
			for len(chunk) < chunkSize && crt < len(bundles) {
				b := bundles[crt]
				if p.cur.HasEdgeBetween(b.u, b.v) {
					chunk = append(chunk, b)
				}
				crt++
			}
			if _, err := p.chunkProcess(ctx, chunk, chunkSize, crt); err != nil {
				return nil, err
			}
		}
	}

	return p.finalSweep()
}

// chunkProcess attempts to remove chunk as one batch, recursively
// splitting into geometrically smaller sub-chunks when the batch is
// rejected. A single-edge rejection marks that edge unremovable. After a
// failed sub-chunk the remaining live edges are attempted once as a bulk;
// if that succeeds the sweep stops early. The split itself always reports
// success: rejected edges simply stay in the graph.
func (p *pruner) chunkProcess(ctx context.Context, chunk []edgeBundle, size, idx int) (bool, error) {
	ok, err := p.checkChunk(chunk)
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}
	if size == 1 {
		return false, nil
	}

	p.log.Debug("splitting chunk",
		zap.Int("edges", p.cur.Edges().Len()),
		zap.Int("from", idx-len(chunk)),
		zap.Int("to", idx))

	size = max(size/p.gen.opts.ChunkScale, 1)
	crt := 0
	for crt < len(chunk) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		var sub []edgeBundle
		for len(sub) < size && crt < len(chunk) {
			b := chunk[crt]
			if p.cur.HasEdgeBetween(b.u, b.v) {
				sub = append(sub, b)
			}
			crt++
		}
		ok, err := p.chunkProcess(ctx, sub, size, idx+crt)
		if err != nil {
			return false, err
		}
		if !ok {
			var rest []edgeBundle
			for _, b := range chunk[crt:] {
				if p.cur.HasEdgeBetween(b.u, b.v) {
					rest = append(rest, b)
				}
			}
			ok, err := p.checkChunk(rest)
			if err != nil {
				return false, err
			}
			if ok {
				break
			}
		}
	}
	return true, nil
}

// checkChunk is the atomic removal test. A chunk of exclusively
// unremovable edges (score 1.0 or on the found path) is accepted without
// mutation; a mixed chunk is rejected so splitting can isolate the
// removable part. Otherwise the edges are removed, the reduced candidate
// is validated against the path and cycle invariants, and on acceptance
// it replaces the working graph. Rejected removals are rolled back.
func (p *pruner) checkChunk(chunk []edgeBundle) (bool, error) {
	removable := 0
	for _, b := range chunk {
		if b.score < 1.0 && !p.gen.links.has(normLink(b.u, b.v)) {
			removable++
		}
	}
	if removable != len(chunk) {
		if removable == 0 {
			p.log.Debug("keeping unremovable chunk", zap.Int("chunk_edges", len(chunk)))
			return true, nil
		}
		return false, nil
	}

	for _, b := range chunk {
		p.cur.RemoveEdge(b.u, b.v)
	}
	candidate, err := p.gen.reduce(p.cur)
	if err != nil {
		return false, err
	}
	if !containsAll(candidate, p.gen.foundPath) {
		p.restore(chunk)
		return false, nil
	}
	if !p.checkConstraints(candidate) {
		p.restore(chunk)
		return false, nil
	}

	p.cur = candidate
	p.log.Debug("removed chunk",
		zap.Int("chunk_edges", len(chunk)),
		zap.Int("edges", p.cur.Edges().Len()),
		zap.Int("nodes", p.cur.Nodes().Len()))
	return true, nil
}

func (p *pruner) restore(chunk []edgeBundle) {
	for _, b := range chunk {
		setEdge(p.cur, b)
	}
}

// checkConstraints verifies the snapshot coverings on g: every initially
// cycled node must still sit on a bounded cycle touching the path
// interior, and every initially cycled found-path edge must remain
// non-bridge. Node covering is checked first and short-circuits.
func (p *pruner) checkConstraints(g *simple.WeightedUndirectedGraph) bool {
	cycledNodes := p.gen.cycledNodes(g)
	for id := range p.initialCycledNodes {
		if _, ok := cycledNodes[id]; !ok {
			return false
		}
	}
	cycledEdges := p.gen.cycledEdges(g)
	for l := range p.initialCycledEdges {
		if !cycledEdges.has(l) {
			return false
		}
	}
	return true
}

// finalSweep retries the surviving edges one at a time in ascending score
// order, testing only the coverings; chunk interactions in the batched
// phase can leave individually removable edges behind. Unremovable edges
// and the found path are skipped. The main component is extracted once
// more at the end.
func (p *pruner) finalSweep() (*simple.WeightedUndirectedGraph, error) {
	tmp := cloneGraph(p.cur)
	for _, b := range sortedEdges(tmp) {
		if !tmp.HasEdgeBetween(b.u, b.v) {
			continue
		}
		if b.score >= 1.0 || p.gen.links.has(normLink(b.u, b.v)) {
			continue
		}
		tmp.RemoveEdge(b.u, b.v)
		if !p.checkConstraints(tmp) {
			setEdge(tmp, b)
		}
	}
	return p.gen.mainSubgraph(tmp)
}
