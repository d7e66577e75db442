// Package cli holds shared command support: wiring a generation run from
// resolved configuration and presenting errors to users.
package cli

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/YumizSui/pairmap/internal/config"
	"github.com/YumizSui/pairmap/internal/intermediates"
	"github.com/YumizSui/pairmap/internal/matrix"
	"github.com/YumizSui/pairmap/internal/output"
	"github.com/YumizSui/pairmap/internal/pairmap"
	"github.com/YumizSui/pairmap/internal/scores"
)

// RunOptions carries everything a generation command needs beyond the
// merged configuration.
type RunOptions struct {
	Config          *config.Config
	Logger          *zap.Logger
	OptimalPathMode bool
	// OutputFile receives the formatted map; empty means stdout.
	OutputFile string
}

// RunGenerate loads the inputs, runs map generation, and writes the
// formatted result.
func RunGenerate(ctx context.Context, opts RunOptions) error {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.MatrixPath == "" {
		return fmt.Errorf("a score matrix is required; pass --matrix or set matrixPath")
	}

	m, err := matrix.Load(cfg.MatrixPath)
	if err != nil {
		return fmt.Errorf("load score matrix %s: %w", cfg.MatrixPath, err)
	}

	var list intermediates.List
	if cfg.NamesPath != "" {
		list, err = intermediates.LoadNames(cfg.NamesPath)
		if err != nil {
			return err
		}
	} else {
		// Without names the matrix defines the population and labels
		// fall back to positional names.
		list = make(intermediates.List, m.N())
	}

	genOpts := pairmap.DefaultOptions()
	genOpts.OptimalPathMode = opts.OptimalPathMode
	genOpts.MaxPathLength = cfg.MaxPathLength
	genOpts.CycleLength = cfg.CycleLength
	genOpts.MaxOptimalPathLength = cfg.MaxOptimalPathLength
	genOpts.RoughMaxPathLength = cfg.RoughMaxPathLength
	genOpts.RoughScoreThreshold = cfg.RoughScoreThreshold
	genOpts.MinScoreThreshold = cfg.MinScoreThreshold
	genOpts.ChunkScale = cfg.ChunkScale
	genOpts.SourceIndex = cfg.SourceIndex
	genOpts.TargetIndex = cfg.TargetIndex
	genOpts.Jobs = cfg.Jobs

	gen, err := pairmap.New(list, genOpts, logger)
	if err != nil {
		return err
	}
	gen.SetScorer(&scores.StaticScorer{Matrix: m})

	runCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	result, err := gen.BuildMap(runCtx)
	if err != nil {
		return err
	}
	logger.Info("map generated",
		zap.Int("nodes", len(result.Nodes)),
		zap.Int("edges", len(result.Edges)),
		zap.Int64s("path", result.Path))

	writer := os.Stdout
	if opts.OutputFile != "" {
		f, err := os.Create(opts.OutputFile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		writer = f
	}
	return output.NewFormatter(cfg.Output, writer).Format(result)
}
