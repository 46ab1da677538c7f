package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/cribbage/cribbage"
	"github.com/lox/cribbage/internal/analyzer"
	"github.com/lox/cribbage/internal/config"
	"github.com/lox/cribbage/internal/logging"
	"github.com/lox/cribbage/internal/report"
)

// app holds everything a command needs once flags and config are merged.
type app struct {
	cfg      *config.Config
	logger   *log.Logger
	analyzer *analyzer.Analyzer
	printer  *report.Printer
}

// loadConfig reads the config file and applies flag overrides.
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.NoColor {
		cfg.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", g.Config, err)
	}
	return cfg, nil
}

// newApp builds the analyzer stack. Results go to out, logs to logOut.
func (g *Globals) newApp(out, logOut io.Writer) (*app, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logOut, cfg.LogLevel, "cribbage")
	if err != nil {
		return nil, err
	}

	scorer := cribbage.NewScorer(cribbage.WithScoreLogger(logger.WithPrefix("scorer")))
	optimizer := cribbage.NewOptimizer(
		cribbage.WithScorer(scorer),
		cribbage.WithLogger(logger.WithPrefix("optimizer")),
		cribbage.WithClock(quartz.NewReal()),
		cribbage.WithParallelism(cfg.Parallelism),
	)

	return &app{
		cfg:      cfg,
		logger:   logger,
		analyzer: analyzer.New(scorer, optimizer, logger),
		printer:  report.New(out, cfg.Histogram.Width, !cfg.NoColor),
	}, nil
}

func (g *Globals) stderrApp(out io.Writer) (*app, error) {
	return g.newApp(out, os.Stderr)
}
