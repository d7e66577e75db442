package pairmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleCyclesTriangle(t *testing.T) {
	g := graphOf(t, 3,
		edgeBundle{u: 0, v: 1, score: 0.5},
		edgeBundle{u: 1, v: 2, score: 0.5},
		edgeBundle{u: 0, v: 2, score: 0.5},
	)

	cycles := simpleCyclesBounded(g, 3)
	assert.Equal(t, [][]int64{{0, 1, 2}}, cycles)
}

func TestSimpleCyclesBound(t *testing.T) {
	// A 4-cycle is invisible at bound 3 but found at bound 4.
	g := graphOf(t, 4,
		edgeBundle{u: 0, v: 1, score: 0.5},
		edgeBundle{u: 1, v: 2, score: 0.5},
		edgeBundle{u: 2, v: 3, score: 0.5},
		edgeBundle{u: 3, v: 0, score: 0.5},
	)

	assert.Empty(t, simpleCyclesBounded(g, 3))
	assert.Equal(t, [][]int64{{0, 1, 2, 3}}, simpleCyclesBounded(g, 4))
}

func TestSimpleCyclesNoReflections(t *testing.T) {
	// K4 has four triangles and three 4-cycles, each reported once.
	var edges []edgeBundle
	for u := int64(0); u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			edges = append(edges, edgeBundle{u: u, v: v, score: 0.5})
		}
	}
	g := graphOf(t, 4, edges...)

	assert.Len(t, simpleCyclesBounded(g, 3), 4)
	assert.Len(t, simpleCyclesBounded(g, 4), 7)
}

func TestBridges(t *testing.T) {
	// Triangle 0-1-2 with a pendant chain 2-3-4.
	g := graphOf(t, 5,
		edgeBundle{u: 0, v: 1, score: 0.5},
		edgeBundle{u: 1, v: 2, score: 0.5},
		edgeBundle{u: 0, v: 2, score: 0.5},
		edgeBundle{u: 2, v: 3, score: 0.5},
		edgeBundle{u: 3, v: 4, score: 0.5},
	)

	got := bridges(g)
	assert.Len(t, got, 2)
	assert.True(t, got.has(normLink(2, 3)))
	assert.True(t, got.has(normLink(3, 4)))
	assert.False(t, got.has(normLink(0, 1)))
}

func TestBridgesDisconnected(t *testing.T) {
	g := graphOf(t, 4,
		edgeBundle{u: 0, v: 1, score: 0.5},
		edgeBundle{u: 2, v: 3, score: 0.5},
	)

	got := bridges(g)
	assert.Len(t, got, 2)
}
