package scores

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YumizSui/pairmap/internal/intermediates"
	"github.com/YumizSui/pairmap/internal/matrix"
)

func TestFileScorer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.csv")
	require.NoError(t, os.WriteFile(path, []byte("1.0,0.7\n0.7,1.0\n"), 0o600))

	scorer := &FileScorer{Path: path}
	list := intermediates.FromNames([]string{"a", "b"})

	m, err := scorer.ScoreMatrix(context.Background(), list, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, m.At(0, 1), 1e-12)
}

func TestFileScorerSizeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.csv")
	require.NoError(t, os.WriteFile(path, []byte("1.0,0.7\n0.7,1.0\n"), 0o600))

	scorer := &FileScorer{Path: path}
	list := intermediates.FromNames([]string{"a", "b", "c"})

	_, err := scorer.ScoreMatrix(context.Background(), list, 0)
	assert.Error(t, err)
}

func TestStaticScorer(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 0.5}, {0.5, 1}})
	require.NoError(t, err)

	scorer := &StaticScorer{Matrix: m}
	got, err := scorer.ScoreMatrix(context.Background(), intermediates.FromNames([]string{"a", "b"}), 4)
	require.NoError(t, err)
	assert.Same(t, m, got)
}

func TestScorerHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scorer := &StaticScorer{}
	_, err := scorer.ScoreMatrix(ctx, nil, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
