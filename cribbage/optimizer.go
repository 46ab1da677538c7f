package cribbage

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"
)

// Candidate is one way of splitting a six card deal, scored against every
// starter the deck could still produce.
type Candidate struct {
	Keep         Hand
	Crib         Hand
	High         int
	Low          int
	BestStarter  Card // first starter, in deck order, that reaches High
	Distribution Distribution
}

// Mean returns the average score of the kept cards over all starters.
func (c Candidate) Mean() float64 {
	return c.Distribution.Mean()
}

// CribResult is the outcome of a crib search.
type CribResult struct {
	Candidate

	// Candidates holds every split in the order they were tried.
	Candidates []Candidate
	Elapsed    time.Duration
}

// Optimizer searches the 15 ways to keep four of six cards.
type Optimizer struct {
	scorer      *Scorer
	logger      *log.Logger
	clock       quartz.Clock
	parallelism int
}

// OptimizerOption configures an Optimizer.
type OptimizerOption func(*Optimizer)

// WithScorer sets the scorer used for each kept hand and starter.
func WithScorer(s *Scorer) OptimizerOption {
	return func(o *Optimizer) { o.scorer = s }
}

// WithLogger sets the optimizer's logger.
func WithLogger(logger *log.Logger) OptimizerOption {
	return func(o *Optimizer) { o.logger = logger }
}

// WithClock sets the clock used to time the search.
func WithClock(clock quartz.Clock) OptimizerOption {
	return func(o *Optimizer) { o.clock = clock }
}

// WithParallelism bounds how many splits are scored at once. Values below
// one mean GOMAXPROCS.
func WithParallelism(n int) OptimizerOption {
	return func(o *Optimizer) { o.parallelism = n }
}

// NewOptimizer creates an optimizer with the given options.
func NewOptimizer(opts ...OptimizerOption) *Optimizer {
	o := &Optimizer{
		scorer: defaultScorer,
		logger: log.New(io.Discard),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.parallelism < 1 {
		o.parallelism = runtime.GOMAXPROCS(0)
	}
	return o
}

// DetermineBestCrib picks the four cards to keep from a six card deal using
// a default optimizer.
func DetermineBestCrib(hand Hand) (CribResult, error) {
	return NewOptimizer().DetermineBestCrib(hand)
}

// DetermineBestCrib scores every four card keep against every starter not in
// the keep, and returns the keep with the highest best-case score. The first
// keep in canonical order wins ties. The two discarded cards are possible
// starters.
func (o *Optimizer) DetermineBestCrib(hand Hand) (CribResult, error) {
	if hand.Len() != DealSize {
		return CribResult{}, fmt.Errorf("%w: expected a hand with %d cards, got %d", ErrInvalidHandSize, DealSize, hand.Len())
	}

	start := o.clock.Now()

	var keeps [][]int
	combinations(DealSize, KeepSize, func(idx []int) bool {
		keeps = append(keeps, append([]int(nil), idx...))
		return true
	})

	candidates := make([]Candidate, len(keeps))
	var g errgroup.Group
	g.SetLimit(o.parallelism)
	for i, idx := range keeps {
		g.Go(func() error {
			c, err := o.evaluate(hand, idx)
			if err != nil {
				return err
			}
			candidates[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return CribResult{}, err
	}

	best := 0
	for i := 1; i < len(candidates); i++ {
		if candidates[i].High > candidates[best].High {
			best = i
		}
	}

	result := CribResult{
		Candidate:  candidates[best],
		Candidates: candidates,
		Elapsed:    o.clock.Since(start),
	}

	o.logger.Debug("Crib search complete",
		"hand", hand,
		"keep", result.Keep,
		"crib", result.Crib,
		"high", result.High,
		"low", result.Low,
		"mean", fmt.Sprintf("%.1f", result.Mean()),
		"elapsed", result.Elapsed)

	return result, nil
}

// evaluate scores the keep picked by idx against every remaining starter.
func (o *Optimizer) evaluate(hand Hand, idx []int) (Candidate, error) {
	keepCards := make([]Card, 0, KeepSize)
	for _, i := range idx {
		keepCards = append(keepCards, hand.cards[i])
	}
	keep, err := NewHand(keepCards...)
	if err != nil {
		return Candidate{}, err
	}
	crib, err := NewHand(hand.Without(keep)...)
	if err != nil {
		return Candidate{}, err
	}

	c := Candidate{
		Keep:         keep,
		Crib:         crib,
		High:         -1,
		Low:          MaxScore + 1,
		Distribution: make(Distribution),
	}
	for _, starter := range Remaining(keep) {
		score, err := o.scorer.Score(keep, starter, false)
		if err != nil {
			return Candidate{}, err
		}
		c.Distribution.Add(score)
		if score > c.High {
			c.High = score
			c.BestStarter = starter
		}
		if score < c.Low {
			c.Low = score
		}
	}
	return c, nil
}
