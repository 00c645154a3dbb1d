package anneal

import (
	"github.com/rs/zerolog"

	"github.com/tim5451003/placement/cost"
)

// shiftProbability is the fixed probability of proposing a SHIFT rather
// than a SWAP move.
const shiftProbability = 0.7

// Config configures a single annealing run. Only MovesPerEpoch and Window
// fall back to a default when left at zero; T0, Alpha, Weights and
// MaxEpochs are used exactly as given, so callers build on top of
// DefaultConfig() rather than a bare Config{}.
type Config struct {
	// T0 is the initial temperature. Default 1000.
	T0 float64
	// Alpha is the per-epoch cooling factor, in (0, 1). Default 0.90.
	Alpha float64
	// Weights scales overlap/density relative to HPWL in the cost function.
	Weights cost.Weights
	// MaxEpochs bounds the run when no stall is detected first. The spec
	// leaves this unspecified; 100 is this implementation's default, chosen
	// so that with the default MovesPerEpoch and Window a run converges in
	// a practical amount of wall-clock time on placements of a few hundred
	// cells.
	MaxEpochs int
	// MovesPerEpoch is the number of move proposals attempted per epoch.
	// 0 means "use 10·|cells|".
	MovesPerEpoch int
	// Window is the number of trailing epoch-cost samples averaged on
	// each side of the stall comparison. Default 10.
	Window int
	// Logger receives stage-boundary and stall-detection events. The zero
	// value is zerolog's no-op logger.
	Logger zerolog.Logger
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{
		T0:            1000,
		Alpha:         0.90,
		Weights:       cost.DefaultWeights(),
		MaxEpochs:     100,
		MovesPerEpoch: 0,
		Window:        10,
	}
}

// resolvedWindow returns cfg.Window, or the spec default of 10 if unset.
func (cfg Config) resolvedWindow() int {
	if cfg.Window <= 0 {
		return 10
	}
	return cfg.Window
}

// resolvedMovesPerEpoch returns cfg.MovesPerEpoch, or 10·cellCount if unset.
func (cfg Config) resolvedMovesPerEpoch(cellCount int) int {
	if cfg.MovesPerEpoch > 0 {
		return cfg.MovesPerEpoch
	}
	return 10 * cellCount
}

// Result reports the outcome of a Run.
type Result struct {
	Epochs    int
	FinalCost float64
	Stalled   bool
}
