package pairmap

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/YumizSui/pairmap/internal/matrix"
)

// Options configures a map generation run. Zero values are not usable;
// start from DefaultOptions and override.
type Options struct {
	// OptimalPathMode returns a graph containing only the found path and
	// skips pruning entirely.
	OptimalPathMode bool

	// MaxPathLength caps simple-path enumeration when extracting the
	// reachable subgraph.
	MaxPathLength int `validate:"gte=1"`

	// CycleLength caps cycle enumeration.
	CycleLength int `validate:"gte=3"`

	// MaxOptimalPathLength caps candidate path edges during optimal-path
	// selection.
	MaxOptimalPathLength int `validate:"gte=1"`

	// RoughMaxPathLength and RoughScoreThreshold drive the advisory
	// prefilter only; they never change the output.
	RoughMaxPathLength  int     `validate:"gte=1"`
	RoughScoreThreshold float64 `validate:"gte=0,lte=1"`

	// MinScoreThreshold is the minimum rounded score for any edge to
	// exist in the map.
	MinScoreThreshold float64 `validate:"gte=0,lte=1"`

	// ChunkScale is the geometric base for chunk sizing in the pruner.
	ChunkScale int `validate:"gte=2"`

	SourceIndex int `validate:"gte=0"`
	TargetIndex int `validate:"gte=0"`

	// Jobs is forwarded verbatim to the score collaborator.
	Jobs int `validate:"gte=0"`

	// ScoreMatrix, when set, is used verbatim instead of asking the
	// collaborator. It must match the intermediate list size.
	ScoreMatrix *matrix.Matrix `validate:"-"`
}

// DefaultOptions returns the standard generation parameters.
func DefaultOptions() Options {
	return Options{
		MaxPathLength:        4,
		CycleLength:          3,
		MaxOptimalPathLength: 3,
		RoughMaxPathLength:   2,
		RoughScoreThreshold:  0.5,
		MinScoreThreshold:    0.2,
		ChunkScale:           10,
		SourceIndex:          0,
		TargetIndex:          1,
	}
}

var validate = validator.New()

// Validate checks option ranges and endpoint indices against the number of
// intermediates.
func (o Options) Validate(n int) error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	if o.SourceIndex >= n || o.TargetIndex >= n {
		return fmt.Errorf("source/target index out of range: %d, %d with %d intermediates", o.SourceIndex, o.TargetIndex, n)
	}
	if o.SourceIndex == o.TargetIndex {
		return fmt.Errorf("source and target must differ, both are %d", o.SourceIndex)
	}
	return nil
}
