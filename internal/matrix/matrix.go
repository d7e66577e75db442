// Package matrix provides the pairwise similarity score matrix consumed by
// the map generator, together with validation and file loaders.
package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ShapeError reports a score matrix whose dimensions do not match the
// intermediate list.
type ShapeError struct {
	Rows, Cols int
	Want       int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("score matrix must be %dx%d, got %dx%d", e.Want, e.Want, e.Rows, e.Cols)
}

// Matrix is an NxN similarity score matrix. Scores are expected to be
// symmetric and in [0,1]; the diagonal is never consulted.
type Matrix struct {
	m *mat.Dense
	n int
}

// FromRows builds a Matrix from row slices, validating squareness. Ragged
// input is rejected with a ShapeError quoting the first offending row.
func FromRows(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, &ShapeError{Rows: 0, Cols: 0, Want: 0}
	}
	data := make([]float64, 0, n*n)
	for _, row := range rows {
		if len(row) != n {
			return nil, &ShapeError{Rows: n, Cols: len(row), Want: n}
		}
		data = append(data, row...)
	}
	return &Matrix{m: mat.NewDense(n, n, data), n: n}, nil
}

// N returns the matrix dimension.
func (s *Matrix) N() int { return s.n }

// At returns the raw score between intermediates i and j.
func (s *Matrix) At(i, j int) float64 { return s.m.At(i, j) }

// Round2 returns the score between i and j rounded to two decimal places,
// the precision at which scores are materialized onto edges.
func (s *Matrix) Round2(i, j int) float64 {
	return math.Round(s.m.At(i, j)*100) / 100
}

// CheckSize verifies the matrix covers n intermediates.
func (s *Matrix) CheckSize(n int) error {
	if s.n != n {
		return &ShapeError{Rows: s.n, Cols: s.n, Want: n}
	}
	return nil
}
