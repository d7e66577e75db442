// Package generate implements the `pairmap generate` command.
package generate

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/YumizSui/pairmap/internal/cli"
	"github.com/YumizSui/pairmap/internal/config"
)

var logger *zap.Logger

// SetLogger installs the logger built by the root command.
func SetLogger(l *zap.Logger) { logger = l }

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a pair map from a score matrix",
		Long: "Generate builds the full pair map: it selects the optimal source-target path, " +
			"then prunes low-score edges while preserving path, cycle, and connectivity structure.",
		Example: `  # Generate a map from a CSV score matrix
  pairmap generate --matrix scores.csv --names names.txt -f map.yaml --output yaml

  # Endpoints other than the first two intermediates
  pairmap generate --matrix scores.csv --source 3 --target 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cmd, configPath)
			if err != nil {
				return err
			}
			return cli.RunGenerate(cmd.Context(), cli.RunOptions{
				Config:     cfg,
				Logger:     logger,
				OutputFile: outputFile,
			})
		},
	}

	addGenerationFlags(cmd)
	cmd.Flags().StringVarP(&outputFile, "out-file", "f", "", "Write the formatted map to a file instead of stdout")
	return cmd
}

// addGenerationFlags registers the flags shared by generate and path.
// Defaults here mirror config.New(); the loader gives flags top
// precedence.
func addGenerationFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("matrix", "", "Path to the score matrix file (csv, json, or yaml)")
	flags.String("names", "", "Path to an intermediate names file (one per line)")
	flags.Int("source", 0, "Source node index in the intermediate list")
	flags.Int("target", 1, "Target node index in the intermediate list")
	flags.Int("max-path-length", 4, "Maximum path length for reachable-subgraph extraction")
	flags.Int("cycle-length", 3, "Maximum cycle length considered by the pruner")
	flags.Int("max-optimal-path-length", 3, "Maximum edge count of the optimal path")
	flags.Int("rough-max-path-length", 2, "Path length bound of the advisory rough search")
	flags.Float64("rough-score-threshold", 0.5, "Score threshold of the advisory rough search")
	flags.Float64("min-score-threshold", 0.2, "Minimum rounded score for an edge to exist")
	flags.Int("chunk-scale", 10, "Geometric base for pruning chunk sizes")
	flags.Int("jobs", 0, "Parallelism hint forwarded to the score collaborator")
	flags.String("output", "", "Output format: table, text, json, yaml, dot")
	flags.Duration("timeout", config.DefaultTimeout, "Overall generation timeout")
}
