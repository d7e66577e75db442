package pairmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/YumizSui/pairmap/internal/intermediates"
)

func TestInitialChunkSize(t *testing.T) {
	cases := []struct {
		edges, scale, want int
	}{
		{1, 10, 1},
		{9, 10, 1},
		{10, 10, 10},
		{99, 10, 10},
		{100, 10, 100},
		{101, 10, 100},
		{7, 2, 4},
		{8, 2, 8},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, initialChunkSize(tc.edges, tc.scale), "edges=%d scale=%d", tc.edges, tc.scale)
	}
}

// denseRows yields a graph wide enough to start with multi-edge chunks so
// the recursive split path actually runs.
func denseRows() [][]float64 {
	rows := symmetric(8, 0.5, map[[2]int]float64{
		{0, 1}: 0.9, {0, 2}: 0.9, {1, 2}: 0.9,
	})
	return rows
}

func mapAsGraph(m *Map) *simple.WeightedUndirectedGraph {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for _, n := range m.Nodes {
		g.AddNode(simple.Node(n.Index))
	}
	for _, e := range m.Edges {
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.U), T: simple.Node(e.V), W: e.Score})
	}
	return g
}

func TestChunkedPruneDense(t *testing.T) {
	result, err := buildMap(t, 8, denseRows(), nil)
	require.NoError(t, err)

	// The found path must survive with its edges marked.
	require.Equal(t, []int64{0, 1}, result.Path)
	edge, ok := edgeOf(result, 0, 1)
	require.True(t, ok)
	assert.True(t, edge.FoundPath)

	for _, e := range result.Edges {
		assert.GreaterOrEqual(t, e.Score, 0.2)
	}

	// Pruning must have removed something from the 28-edge start.
	assert.Less(t, len(result.Edges), 28)

	// The output is a single connected component.
	g := mapAsGraph(result)
	assert.Len(t, topo.ConnectedComponents(g), 1)
}

func TestChunkedPruneDenseDeterministic(t *testing.T) {
	first, err := buildMap(t, 8, denseRows(), nil)
	require.NoError(t, err)
	second, err := buildMap(t, 8, denseRows(), nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestChunkScaleVariants(t *testing.T) {
	// Different chunk scales change batch geometry, never validity.
	for _, scale := range []int{2, 3, 10} {
		result, err := buildMap(t, 8, denseRows(), func(o *Options) {
			o.ChunkScale = scale
		})
		require.NoError(t, err, "scale %d", scale)

		_, ok := edgeOf(result, 0, 1)
		assert.True(t, ok, "scale %d dropped the found path", scale)
		g := mapAsGraph(result)
		assert.Len(t, topo.ConnectedComponents(g), 1, "scale %d disconnected the map", scale)
	}
}

func TestSubgraphPrimitivesArePure(t *testing.T) {
	opts := DefaultOptions()
	opts.ScoreMatrix = matrixOf(t, cyclePreservationRows())
	gen := mustGenerator(t, 5, opts)

	g := gen.buildGraph(opts.MinScoreThreshold)
	edgesBefore := g.Edges().Len()
	nodesBefore := g.Nodes().Len()

	_, err := gen.reduce(g)
	require.NoError(t, err)

	assert.Equal(t, edgesBefore, g.Edges().Len())
	assert.Equal(t, nodesBefore, g.Nodes().Len())
}

func TestMainSubgraphFailsWhenPathSplit(t *testing.T) {
	opts := DefaultOptions()
	opts.ScoreMatrix = matrixOf(t, cyclePreservationRows())
	gen := mustGenerator(t, 5, opts)

	// Source and target in different components.
	g := graphOf(t, 2)
	_, err := gen.mainSubgraph(g)
	var invalid *InvalidGraphError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, StageMain, invalid.Stage)
}

func mustGenerator(t *testing.T, n int, opts Options) *Generator {
	t.Helper()
	gen, err := New(make(intermediates.List, n), opts, nil)
	require.NoError(t, err)
	gen.m = opts.ScoreMatrix
	return gen
}
