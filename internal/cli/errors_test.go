package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YumizSui/pairmap/internal/matrix"
	"github.com/YumizSui/pairmap/internal/pairmap"
)

func TestFormatNoPathFound(t *testing.T) {
	f := NewErrorFormatter(false)
	msg := f.Format(fmt.Errorf("build: %w", pairmap.ErrNoPathFound))
	assert.Contains(t, msg, "min-score-threshold")
}

func TestFormatShapeError(t *testing.T) {
	f := NewErrorFormatter(false)
	msg := f.Format(&matrix.ShapeError{Rows: 3, Cols: 2, Want: 3})
	assert.Contains(t, msg, "3x3")
	assert.Contains(t, msg, "square")
}

func TestFormatInvalidGraph(t *testing.T) {
	f := NewErrorFormatter(false)
	msg := f.Format(&pairmap.InvalidGraphError{Stage: pairmap.StageMain})
	assert.Contains(t, msg, "main")
	assert.Contains(t, msg, "bug")
}

func TestFormatTimeout(t *testing.T) {
	f := NewErrorFormatter(false)
	msg := f.Format(fmt.Errorf("generate: %w", context.DeadlineExceeded))
	assert.Contains(t, msg, "--timeout")
}

func TestFormatVerbosePassthrough(t *testing.T) {
	f := NewErrorFormatter(true)
	msg := f.Format(errors.New("open file: permission denied"))
	assert.Contains(t, msg, "open file")
}

func TestFormatCompactTail(t *testing.T) {
	f := NewErrorFormatter(false)
	msg := f.Format(errors.New("open file: permission denied"))
	assert.Equal(t, "permission denied", msg)
}

func TestFormatNil(t *testing.T) {
	assert.Empty(t, NewErrorFormatter(false).Format(nil))
}
