package detail

import (
	"github.com/rs/zerolog"

	"github.com/tim5451003/placement/cost"
)

// Config configures a detail placement run.
type Config struct {
	// WindowSize is the side length of the square sweep windows. Zero or
	// negative selects the default of 5.
	WindowSize int
	// MaxIterations bounds the number of full sweeps. Zero or negative
	// selects the default of 10.
	MaxIterations int
	Weights       cost.Weights
	Logger        zerolog.Logger
}

// DefaultConfig returns a window size of 5 and a cap of 10 sweeps.
func DefaultConfig() Config {
	return Config{
		WindowSize:    5,
		MaxIterations: 10,
		Weights:       cost.DefaultWeights(),
	}
}

func (cfg Config) resolvedWindowSize() int {
	if cfg.WindowSize <= 0 {
		return 5
	}
	return cfg.WindowSize
}

func (cfg Config) resolvedMaxIterations() int {
	if cfg.MaxIterations <= 0 {
		return 10
	}
	return cfg.MaxIterations
}

// Result reports how a detail placement run concluded.
type Result struct {
	Sweeps    int
	FinalCost float64
	// Converged is true if the run stopped early because a sweep failed
	// to improve cost by at least 0.1% over the previous sweep, rather
	// than exhausting MaxIterations.
	Converged bool
}
