package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Load constructs a new *Config by merging (in increasing precedence
// order):
//  1. built-in defaults (see New())
//  2. YAML config file (default $HOME/.pairmap/config.yaml, override via
//     --config / PAIRMAP_CONFIG_FILE)
//  3. environment variables prefixed with PAIRMAP_ (a .env file in the
//     working directory is loaded first when present)
//  4. command-line flags bound on the provided *cobra.Command
//
// The resulting configuration is validated before being returned.
//
// Pass nil for cmd if you do not wish to bind flags (e.g., in tests).
func Load(cmd *cobra.Command, explicitPath string) (*Config, error) {
	cfg := New()

	v := viper.New()

	// ---------- 1. Defaults ----------
	v.SetDefault("sourceNodeIndex", cfg.SourceIndex)
	v.SetDefault("targetNodeIndex", cfg.TargetIndex)
	v.SetDefault("maxPathLength", cfg.MaxPathLength)
	v.SetDefault("cycleLength", cfg.CycleLength)
	v.SetDefault("maxOptimalPathLength", cfg.MaxOptimalPathLength)
	v.SetDefault("roughMaxPathLength", cfg.RoughMaxPathLength)
	v.SetDefault("roughScoreThreshold", cfg.RoughScoreThreshold)
	v.SetDefault("minScoreThreshold", cfg.MinScoreThreshold)
	v.SetDefault("chunkScale", cfg.ChunkScale)
	v.SetDefault("jobs", cfg.Jobs)
	v.SetDefault("output", cfg.Output)
	v.SetDefault("timeout", cfg.Timeout)

	// ---------- 2. Config file ----------
	if explicitPath == "" {
		if envPath := os.Getenv("PAIRMAP_CONFIG_FILE"); envPath != "" {
			explicitPath = envPath
		}
	}

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(homeDir, DefaultConfigDir))
	}

	if err := v.ReadInConfig(); err != nil {
		// A file missing from the default search location is skipped and
		// env + defaults apply. An explicitly named file that cannot be
		// read, and any other error, is fatal.
		if _, isNotFound := err.(viper.ConfigFileNotFoundError); !isNotFound {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// ---------- 3. Environment variables ----------
	_ = gotenv.Load()

	v.SetEnvPrefix("PAIRMAP")
	// AutomaticEnv upper-cases the key after the prefix without splitting
	// camelCase words (maxPathLength reads PAIRMAP_MAXPATHLENGTH); the
	// replacer only turns dots into underscores.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind environment variables that don't follow the
	// automatic pattern
	_ = v.BindEnv("matrixPath", "PAIRMAP_MATRIX_PATH")
	_ = v.BindEnv("namesPath", "PAIRMAP_NAMES_PATH")
	_ = v.BindEnv("sourceNodeIndex", "PAIRMAP_SOURCE_NODE_INDEX")
	_ = v.BindEnv("targetNodeIndex", "PAIRMAP_TARGET_NODE_INDEX")
	_ = v.BindEnv("minScoreThreshold", "PAIRMAP_MIN_SCORE_THRESHOLD")
	_ = v.BindEnv("chunkScale", "PAIRMAP_CHUNK_SCALE")

	// ---------- 4. Flags ----------
	if cmd != nil {
		// Bind both immediate flags and parent persistent flags.
		_ = v.BindPFlags(cmd.Flags())
		_ = v.BindPFlags(cmd.PersistentFlags())

		// Map dashed flag names to camelCase keys expected in struct tags.
		bind := func(key string, name string) {
			if f := cmd.Flags().Lookup(name); f != nil {
				_ = v.BindPFlag(key, f)
			}
		}
		bind("matrixPath", "matrix")
		bind("namesPath", "names")
		bind("sourceNodeIndex", "source")
		bind("targetNodeIndex", "target")
		bind("maxPathLength", "max-path-length")
		bind("cycleLength", "cycle-length")
		bind("maxOptimalPathLength", "max-optimal-path-length")
		bind("roughMaxPathLength", "rough-max-path-length")
		bind("roughScoreThreshold", "rough-score-threshold")
		bind("minScoreThreshold", "min-score-threshold")
		bind("chunkScale", "chunk-scale")
		bind("jobs", "jobs")
		bind("output", "output")
		bind("timeout", "timeout")
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
