// Package config defines the runtime configuration model and helpers.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// OutputFormat represents the supported output serialization formats.
// Table: human-friendly edge listing; JSON/YAML: machine-readable; DOT:
// Graphviz rendering of the map.
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputText  OutputFormat = "text"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
	OutputDOT   OutputFormat = "dot"
)

// DefaultTimeout is the fallback duration applied when the user does not
// specify `--timeout`, `PAIRMAP_TIMEOUT`, or the `timeout` YAML key.
const DefaultTimeout = 10 * time.Minute

// DefaultConfigDir is the default directory under the user's home for
// pairmap config files.
const DefaultConfigDir = ".pairmap"

// Config is the fully-resolved runtime configuration for a single command
// invocation.
//
// New fills in the builtin defaults and Load lets Viper layer the YAML
// file, environment and flags over them, so a zero value (SourceIndex 0,
// Jobs 0) is an ordinary setting rather than a marker for "not set".
//
// Use `mapstructure` tags so Viper can unmarshal seamlessly regardless of
// source. CamelCase YAML keys are the canonical spelling in config files;
// env variables use the PAIRMAP_ prefix (see Load for how keys map to
// variable names).
type Config struct {
	// Inputs
	MatrixPath string `mapstructure:"matrixPath" yaml:"matrixPath"`
	NamesPath  string `mapstructure:"namesPath" yaml:"namesPath"`

	// Map generation parameters
	SourceIndex          int     `mapstructure:"sourceNodeIndex" yaml:"sourceNodeIndex" validate:"gte=0"`
	TargetIndex          int     `mapstructure:"targetNodeIndex" yaml:"targetNodeIndex" validate:"gte=0"`
	MaxPathLength        int     `mapstructure:"maxPathLength" yaml:"maxPathLength" validate:"gte=1"`
	CycleLength          int     `mapstructure:"cycleLength" yaml:"cycleLength" validate:"gte=3"`
	MaxOptimalPathLength int     `mapstructure:"maxOptimalPathLength" yaml:"maxOptimalPathLength" validate:"gte=1"`
	RoughMaxPathLength   int     `mapstructure:"roughMaxPathLength" yaml:"roughMaxPathLength" validate:"gte=1"`
	RoughScoreThreshold  float64 `mapstructure:"roughScoreThreshold" yaml:"roughScoreThreshold" validate:"gte=0,lte=1"`
	MinScoreThreshold    float64 `mapstructure:"minScoreThreshold" yaml:"minScoreThreshold" validate:"gte=0,lte=1"`
	ChunkScale           int     `mapstructure:"chunkScale" yaml:"chunkScale" validate:"gte=2"`
	Jobs                 int     `mapstructure:"jobs" yaml:"jobs" validate:"gte=0"`

	// Generic CLI behaviour
	Output  OutputFormat  `mapstructure:"output" yaml:"output"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// New returns a Config populated with builtin defaults. Callers should
// subsequently merge flag/env/YAML values on top.
func New() *Config {
	return &Config{
		TargetIndex:          1,
		MaxPathLength:        4,
		CycleLength:          3,
		MaxOptimalPathLength: 3,
		RoughMaxPathLength:   2,
		RoughScoreThreshold:  0.5,
		MinScoreThreshold:    0.2,
		ChunkScale:           10,
		Output:               OutputTable,
		Timeout:              DefaultTimeout,
	}
}

var structValidator = validator.New()

// Validate performs sanity checks after the full precedence merge. Only
// inexpensive validation belongs here; the generator re-validates its own
// options against the loaded inputs.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputTable, OutputText, OutputJSON, OutputYAML, OutputDOT, "":
		// empty means caller forgot to merge; treat as default
	default:
		return fmt.Errorf("unsupported output format: %s", c.Output)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	if err := structValidator.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.SourceIndex == c.TargetIndex {
		return fmt.Errorf("sourceNodeIndex and targetNodeIndex must differ")
	}

	return nil
}
