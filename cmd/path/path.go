// Package path implements the `pairmap path` command: optimal-path
// selection without map pruning.
package path

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/YumizSui/pairmap/internal/cli"
	"github.com/YumizSui/pairmap/internal/config"
)

var logger *zap.Logger

// SetLogger installs the logger built by the root command.
func SetLogger(l *zap.Logger) { logger = l }

// NewPathCmd creates the path command.
func NewPathCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Select the optimal source-target path only",
		Long: "Path runs optimal-path selection over the score matrix and returns a graph " +
			"containing just that path, skipping map pruning entirely.",
		Example: `  pairmap path --matrix scores.csv --names names.txt --output dot`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cmd, configPath)
			if err != nil {
				return err
			}
			return cli.RunGenerate(cmd.Context(), cli.RunOptions{
				Config:          cfg,
				Logger:          logger,
				OptimalPathMode: true,
				OutputFile:      outputFile,
			})
		},
	}

	addSelectionFlags(cmd)
	cmd.Flags().StringVarP(&outputFile, "out-file", "f", "", "Write the formatted path to a file instead of stdout")
	return cmd
}

func addSelectionFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("matrix", "", "Path to the score matrix file (csv, json, or yaml)")
	flags.String("names", "", "Path to an intermediate names file (one per line)")
	flags.Int("source", 0, "Source node index in the intermediate list")
	flags.Int("target", 1, "Target node index in the intermediate list")
	flags.Int("max-optimal-path-length", 3, "Maximum edge count of the optimal path")
	flags.Int("rough-max-path-length", 2, "Path length bound of the advisory rough search")
	flags.Float64("rough-score-threshold", 0.5, "Score threshold of the advisory rough search")
	flags.Float64("min-score-threshold", 0.2, "Minimum rounded score for an edge to exist")
	flags.Int("jobs", 0, "Parallelism hint forwarded to the score collaborator")
	flags.String("output", "", "Output format: table, text, json, yaml, dot")
	flags.Duration("timeout", config.DefaultTimeout, "Overall generation timeout")
}
