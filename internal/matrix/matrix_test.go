package matrix

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]float64{
		{1.0, 0.9},
		{0.9, 1.0},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, m.N())
	assert.InDelta(t, 0.9, m.At(0, 1), 1e-12)
}

func TestFromRowsRagged(t *testing.T) {
	_, err := FromRows([][]float64{
		{1.0, 0.5, 0.2},
		{0.5, 1.0, 0.3},
	})
	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, 2, shapeErr.Want)
	assert.Equal(t, 3, shapeErr.Cols)
}

func TestFromRowsNonSquare(t *testing.T) {
	_, err := FromRows([][]float64{
		{1.0, 0.5},
		{0.5, 1.0},
		{0.2, 0.3},
	})
	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr))
}

func TestRound2(t *testing.T) {
	m, err := FromRows([][]float64{
		{1.0, 0.198},
		{0.198, 1.0},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.2, m.Round2(0, 1), 1e-12)
}

func TestCheckSize(t *testing.T) {
	m, err := FromRows([][]float64{
		{1.0, 0.5},
		{0.5, 1.0},
	})
	require.NoError(t, err)
	assert.NoError(t, m.CheckSize(2))
	assert.Error(t, m.CheckSize(3))
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.csv")
	require.NoError(t, os.WriteFile(path, []byte("1.0,0.8\n0.8,1.0\n"), 0o600))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, m.N())
	assert.InDelta(t, 0.8, m.At(1, 0), 1e-12)
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte(`[[1.0,0.3],[0.3,1.0]]`), 0o600))

	m, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, m.At(0, 1), 1e-12)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- [1.0, 0.4]\n- [0.4, 1.0]\n"), 0o600))

	m, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, m.At(0, 1), 1e-12)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load("scores.txt")
	assert.Error(t, err)
}
