package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/cribbage/cribbage"
	"github.com/lox/cribbage/internal/server"
	"github.com/lox/cribbage/internal/tui"
)

// EvalCmd scores or splits whatever it is given
type EvalCmd struct {
	Cards []string `arg:"" help:"Cards such as 5H 2C 3C 10S JS. Four or five are scored, six are split"`
}

func (c *EvalCmd) Run(g *Globals, out io.Writer) error {
	a, err := g.stderrApp(out)
	if err != nil {
		return err
	}

	result, err := a.analyzer.Analyze(strings.Join(c.Cards, " "), false)
	if err != nil {
		return err
	}
	a.printer.Result(result)
	return nil
}

// ScoreCmd scores one hand
type ScoreCmd struct {
	Cards     []string `arg:"" help:"Four hand cards, then an optional starter"`
	Crib      bool     `help:"Score the hand as a crib"`
	Breakdown bool     `short:"b" help:"Show points per category"`
}

func (c *ScoreCmd) Run(g *Globals, out io.Writer) error {
	input := strings.Join(c.Cards, " ")
	hand, _, err := cribbage.ParseHand(input)
	if err != nil {
		return err
	}
	if hand.Len() != cribbage.KeepSize {
		return fmt.Errorf("%w: score takes 4 or 5 cards, use crib for a %d card deal", cribbage.ErrInvalidInput, hand.Len())
	}

	a, err := g.stderrApp(out)
	if err != nil {
		return err
	}

	result, err := a.analyzer.Analyze(input, c.Crib)
	if err != nil {
		return err
	}
	if c.Breakdown {
		a.printer.Breakdown(result)
	}
	a.printer.Result(result)
	return nil
}

// CribCmd splits a six card deal
type CribCmd struct {
	Cards      []string `arg:"" help:"Six cards"`
	Candidates bool     `help:"Also list every keep that was tried"`
}

func (c *CribCmd) Run(g *Globals, out io.Writer) error {
	input := strings.Join(c.Cards, " ")
	hand, _, err := cribbage.ParseHand(input)
	if err != nil {
		return err
	}
	if hand.Len() != cribbage.DealSize {
		return fmt.Errorf("%w: crib takes %d cards, got %d", cribbage.ErrInvalidHandSize, cribbage.DealSize, hand.Len())
	}

	a, err := g.stderrApp(out)
	if err != nil {
		return err
	}

	result, err := a.analyzer.Analyze(input, false)
	if err != nil {
		return err
	}
	a.printer.Result(result)
	if c.Candidates {
		_, _ = fmt.Fprintln(out)
		a.printer.Candidates(*result.Best)
	}
	a.logger.Debug("Search finished", "elapsed", result.Best.Elapsed)
	return nil
}

// ReplCmd runs the interactive loop
type ReplCmd struct {
	LogFile string `help:"Append logs to this file while the REPL runs" type:"path"`
}

func (c *ReplCmd) Run(g *Globals, out io.Writer) error {
	// The terminal belongs to the REPL, so logs go to a file or nowhere
	logOut := io.Discard
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		logOut = f
	}

	a, err := g.newApp(out, logOut)
	if err != nil {
		return err
	}

	m := tui.New(a.analyzer, a.logger, a.cfg.Histogram.Width, !a.cfg.NoColor)
	return tui.Run(m, tea.WithAltScreen(), tea.WithOutput(out))
}

// ServeCmd runs the WebSocket service
type ServeCmd struct {
	Address string `help:"Listen address, overrides the config file"`
	Port    int    `help:"Listen port, overrides the config file"`
}

func (c *ServeCmd) Run(g *Globals, out io.Writer) error {
	a, err := g.stderrApp(out)
	if err != nil {
		return err
	}

	if c.Address != "" {
		a.cfg.Server.Address = c.Address
	}
	if c.Port != 0 {
		a.cfg.Server.Port = c.Port
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := server.NewServer(a.cfg.ServerAddress(), a.analyzer, a.logger)
	return s.Start(ctx)
}
