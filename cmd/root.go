package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/YumizSui/pairmap/cmd/generate"
	pathcmd "github.com/YumizSui/pairmap/cmd/path"
	"github.com/YumizSui/pairmap/internal/cli"
	"github.com/YumizSui/pairmap/internal/logging"
)

var (
	verbose    bool
	quiet      bool
	configPath string
	logFormat  string

	// Build information
	appVersion string
	appCommit  string
	appDate    string

	logger         *zap.Logger
	errorFormatter *cli.ErrorFormatter

	rootCmd = &cobra.Command{
		Use:          "pairmap",
		Short:        "Generate pair maps over chemical intermediates",
		Long:         "pairmap builds a small connected comparison graph over a set of intermediates from a pairwise similarity score matrix, anchored on an optimal source-target path.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = logging.New(logging.Config{
				Format:  logFormat,
				Verbose: verbose,
				Quiet:   quiet,
			})
			if err != nil {
				return err
			}
			errorFormatter = cli.NewErrorFormatter(verbose)

			generate.SetLogger(logger)
			pathcmd.SetLogger(logger)

			logger.Debug("root command initialized",
				zap.Bool("verbose", verbose),
				zap.Bool("quiet", quiet),
				zap.String("log_format", logFormat),
				zap.String("config_path", configPath))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
)

// Execute runs the pairmap root command.
func Execute(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date

	if err := rootCmd.Execute(); err != nil {
		if errorFormatter != nil {
			fmt.Fprintln(os.Stderr, errorFormatter.Format(err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generate.NewGenerateCmd())
	rootCmd.AddCommand(pathcmd.NewPathCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging with detailed output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log output format: console, json")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (default $HOME/.pairmap/config.yaml)")
}
