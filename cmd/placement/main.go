// Command placement runs the cell placement pipeline end to end: parse the
// input text format, anneal, legalize, detail-place, emit JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/tim5451003/placement/anneal"
	"github.com/tim5451003/placement/config"
	"github.com/tim5451003/placement/cost"
	"github.com/tim5451003/placement/detail"
	"github.com/tim5451003/placement/ioformat"
	"github.com/tim5451003/placement/legalize"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("placement", flag.ContinueOnError)
	configPath := fs.String("config", "", "pipeline config YAML file (empty = built-in defaults)")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	inputPath := "input.txt"
	outputPath := "placement.json"
	if rest := fs.Args(); len(rest) > 0 {
		inputPath = rest[0]
		if len(rest) > 1 {
			outputPath = rest[1]
		}
	}

	logger := newLogger(*logLevel)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load configuration")
		return 1
	}

	in, err := os.Open(inputPath)
	if err != nil {
		logger.Error().Err(err).Str("path", inputPath).Msg("failed to open input file")
		return 1
	}
	defer in.Close()

	p, err := ioformat.Parse(in)
	if err != nil {
		logger.Error().Err(err).Msg("failed to parse input")
		return 1
	}
	if len(p.Cells()) == 0 {
		logger.Error().Err(ioformat.ErrEmptyPlacement).Msg("refusing to run pipeline")
		return 1
	}

	ctx := context.Background()
	seed := time.Now().UnixNano()

	weights := cost.Weights{Overlap: cfg.Anneal.OverlapWeight, Density: cfg.Anneal.DensityWeight}

	annealCfg := anneal.Config{
		T0:            cfg.Anneal.T0,
		Alpha:         cfg.Anneal.Alpha,
		Weights:       weights,
		MaxEpochs:     cfg.Anneal.MaxEpochs,
		MovesPerEpoch: cfg.Anneal.MovesPerEpoch,
		Window:        cfg.Anneal.StallWindow,
		Logger:        logger.With().Str("stage", "anneal").Logger(),
	}
	annealer := anneal.New(annealCfg, seed)
	annealer.RandomInit(p)
	annealResult := annealer.Run(ctx, p)
	logger.Info().Int("epochs", annealResult.Epochs).Float64("cost", annealResult.FinalCost).
		Bool("stalled", annealResult.Stalled).Msg("stage=anneal complete")

	legalizeResult := legalize.Run(ctx, p, legalize.Config{
		Logger: logger.With().Str("stage", "legalize").Logger(),
	})
	logger.Info().Int("unresolved", legalizeResult.Unresolved).Msg("stage=legalize complete")

	detailCfg := detail.Config{
		WindowSize:    cfg.Detail.WindowSize,
		MaxIterations: cfg.Detail.MaxIterations,
		Weights: cost.Weights{
			Overlap: cfg.Detail.OverlapWeight,
			Density: cfg.Detail.DensityWeight,
		},
		Logger: logger.With().Str("stage", "detail").Logger(),
	}
	detailResult := detail.New(detailCfg, seed).Run(ctx, p)
	logger.Info().Int("sweeps", detailResult.Sweeps).Float64("cost", detailResult.FinalCost).
		Msg("stage=detail complete")

	out, err := os.Create(outputPath)
	if err != nil {
		logger.Error().Err(err).Str("path", outputPath).Msg("failed to create output file")
		return 1
	}
	defer out.Close()

	if err := ioformat.Write(out, p); err != nil {
		logger.Error().Err(err).Msg("failed to write output")
		return 1
	}

	fmt.Fprintf(os.Stderr, "wrote %s\n", outputPath)
	return 0
}

// newLogger constructs a zerolog.Logger writing to stderr: pretty console
// output when stderr is a TTY, line-delimited JSON otherwise.
func newLogger(level string) zerolog.Logger {
	var w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	var logger zerolog.Logger
	if isatty.IsTerminal(os.Stderr.Fd()) {
		logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return logger.Level(lvl)
}
