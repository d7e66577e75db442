package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YumizSui/pairmap/internal/config"
	"github.com/YumizSui/pairmap/internal/pairmap"
)

func writeFixtures(t *testing.T) (matrixPath, namesPath string) {
	t.Helper()
	dir := t.TempDir()
	matrixPath = filepath.Join(dir, "scores.csv")
	require.NoError(t, os.WriteFile(matrixPath, []byte(
		"1.0,0.9,0.9\n"+
			"0.9,1.0,0.9\n"+
			"0.9,0.9,1.0\n"), 0o600))
	namesPath = filepath.Join(dir, "names.txt")
	require.NoError(t, os.WriteFile(namesPath, []byte("src\ntgt\nmid\n"), 0o600))
	return matrixPath, namesPath
}

func TestRunGenerateToFile(t *testing.T) {
	matrixPath, namesPath := writeFixtures(t)
	outPath := filepath.Join(t.TempDir(), "map.json")

	cfg := config.New()
	cfg.MatrixPath = matrixPath
	cfg.NamesPath = namesPath
	cfg.Output = config.OutputJSON

	err := RunGenerate(context.Background(), RunOptions{
		Config:     cfg,
		OutputFile: outPath,
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var m pairmap.Map
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, []int64{0, 1}, m.Path)
	assert.Equal(t, "src", m.Nodes[0].Label)
	assert.NotEmpty(t, m.Edges)
}

func TestRunGenerateOptimalPathMode(t *testing.T) {
	matrixPath, _ := writeFixtures(t)
	outPath := filepath.Join(t.TempDir(), "path.json")

	cfg := config.New()
	cfg.MatrixPath = matrixPath
	cfg.Output = config.OutputJSON

	err := RunGenerate(context.Background(), RunOptions{
		Config:          cfg,
		OptimalPathMode: true,
		OutputFile:      outPath,
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var m pairmap.Map
	require.NoError(t, json.Unmarshal(raw, &m))
	require.Len(t, m.Edges, 1)
	assert.Equal(t, "intermediate-0000", m.Nodes[0].Label)
}

func TestRunGenerateMissingMatrix(t *testing.T) {
	cfg := config.New()
	err := RunGenerate(context.Background(), RunOptions{Config: cfg})
	assert.Error(t, err)
}

func TestRunGenerateNameCountMismatch(t *testing.T) {
	matrixPath, _ := writeFixtures(t)
	dir := t.TempDir()
	namesPath := filepath.Join(dir, "names.txt")
	require.NoError(t, os.WriteFile(namesPath, []byte("only-one\n"), 0o600))

	cfg := config.New()
	cfg.MatrixPath = matrixPath
	cfg.NamesPath = namesPath

	err := RunGenerate(context.Background(), RunOptions{Config: cfg})
	assert.Error(t, err)
}
