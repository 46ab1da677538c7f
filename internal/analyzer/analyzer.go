// Package analyzer turns a line of card text into a score or a crib choice.
// It is the layer shared by the command line, the REPL and the websocket
// service.
package analyzer

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/cribbage/cribbage"
)

// Kind says which computation a line asked for.
type Kind string

const (
	// KindScore is a four card hand, with or without a starter.
	KindScore Kind = "score"
	// KindCrib is a six card deal to split into keep and crib.
	KindCrib Kind = "crib"
)

// Result is the outcome of analyzing one line.
type Result struct {
	Kind      Kind
	Hand      cribbage.Hand
	Starter   cribbage.Card
	IsCrib    bool
	Score     int
	Breakdown cribbage.Breakdown
	Best      *cribbage.CribResult
}

// Summary returns the one line answer, e.g. "Score: 8" or
// "Keep in hand: [5H, 10S, JS, QS], throw to crib: [2C, 3C]".
func (r Result) Summary() string {
	switch r.Kind {
	case KindCrib:
		return fmt.Sprintf("Keep in hand: %s, throw to crib: %s", r.Best.Keep, r.Best.Crib)
	default:
		return fmt.Sprintf("Score: %d", r.Score)
	}
}

// Analyzer scores four or five card lines and searches six card lines.
type Analyzer struct {
	scorer    *cribbage.Scorer
	optimizer *cribbage.Optimizer
	logger    *log.Logger
}

// New creates an analyzer. A nil scorer or optimizer gets the package default.
func New(scorer *cribbage.Scorer, optimizer *cribbage.Optimizer, logger *log.Logger) *Analyzer {
	if scorer == nil {
		scorer = cribbage.NewScorer()
	}
	if optimizer == nil {
		optimizer = cribbage.NewOptimizer(cribbage.WithScorer(scorer))
	}
	return &Analyzer{
		scorer:    scorer,
		optimizer: optimizer,
		logger:    logger.WithPrefix("analyzer"),
	}
}

// Analyze parses input with cribbage.ParseHand. Four or five cards are
// scored (as a crib when isCrib is set); six cards are split.
func (a *Analyzer) Analyze(input string, isCrib bool) (Result, error) {
	hand, starter, err := cribbage.ParseHand(input)
	if err != nil {
		a.logger.Debug("Rejected input", "input", input, "error", err)
		return Result{}, err
	}

	if hand.Len() == cribbage.DealSize {
		return a.split(hand)
	}
	return a.score(hand, starter, isCrib)
}

// score scores an already parsed four card hand.
func (a *Analyzer) score(hand cribbage.Hand, starter cribbage.Card, isCrib bool) (Result, error) {
	b, err := a.scorer.Breakdown(hand, starter, isCrib)
	if err != nil {
		return Result{}, err
	}
	a.logger.Debug("Scored", "hand", hand, "starter", starter, "crib", isCrib, "score", b.Total())

	return Result{
		Kind:      KindScore,
		Hand:      hand,
		Starter:   starter,
		IsCrib:    isCrib,
		Score:     b.Total(),
		Breakdown: b,
	}, nil
}

func (a *Analyzer) split(hand cribbage.Hand) (Result, error) {
	best, err := a.optimizer.DetermineBestCrib(hand)
	if err != nil {
		return Result{}, err
	}
	a.logger.Debug("Split deal", "hand", hand, "keep", best.Keep, "crib", best.Crib, "elapsed", best.Elapsed)

	return Result{
		Kind:  KindCrib,
		Hand:  hand,
		Score: best.High,
		Best:  &best,
	}, nil
}
