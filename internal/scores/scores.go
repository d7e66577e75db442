// Package scores defines the boundary to the external similarity-score
// collaborator. The engine never computes scores itself; it either receives
// a custom matrix or asks a Scorer for one.
package scores

import (
	"context"
	"fmt"

	"github.com/YumizSui/pairmap/internal/intermediates"
	"github.com/YumizSui/pairmap/internal/matrix"
)

// Scorer computes a pairwise similarity matrix over the given
// intermediates. jobs is a parallelism hint forwarded verbatim; 0 means
// "collaborator default".
type Scorer interface {
	ScoreMatrix(ctx context.Context, list intermediates.List, jobs int) (*matrix.Matrix, error)
}

// FileScorer serves a precomputed score matrix from disk. It stands in for
// the chemistry-side scorer, which runs out of process and writes its
// result to a file.
type FileScorer struct {
	Path string
}

// ScoreMatrix loads the matrix and checks it covers the intermediate list.
// jobs is ignored; the file is already computed.
func (s *FileScorer) ScoreMatrix(ctx context.Context, list intermediates.List, jobs int) (*matrix.Matrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, err := matrix.Load(s.Path)
	if err != nil {
		return nil, fmt.Errorf("load score matrix %s: %w", s.Path, err)
	}
	if err := m.CheckSize(len(list)); err != nil {
		return nil, err
	}
	return m, nil
}

// StaticScorer serves an in-memory matrix. Used in tests and by callers
// that computed scores through some other channel.
type StaticScorer struct {
	Matrix *matrix.Matrix
}

// ScoreMatrix returns the wrapped matrix after a size check.
func (s *StaticScorer) ScoreMatrix(ctx context.Context, list intermediates.List, jobs int) (*matrix.Matrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.Matrix.CheckSize(len(list)); err != nil {
		return nil, err
	}
	return s.Matrix, nil
}
