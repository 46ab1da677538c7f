package cribbage

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
)

// Breakdown is the score of a hand split by category.
type Breakdown struct {
	Flush    int `json:"flush"`
	Pairs    int `json:"pairs"`
	Fifteens int `json:"fifteens"`
	Runs     int `json:"runs"`
	Nobs     int `json:"nobs"`
}

// Total returns the sum of all categories.
func (b Breakdown) Total() int {
	return b.Flush + b.Pairs + b.Fifteens + b.Runs + b.Nobs
}

// String returns a compact description, e.g. "fifteens 6 + runs 3 = 9".
func (b Breakdown) String() string {
	parts := []struct {
		name   string
		points int
	}{
		{"flush", b.Flush},
		{"pairs", b.Pairs},
		{"fifteens", b.Fifteens},
		{"runs", b.Runs},
		{"nobs", b.Nobs},
	}

	out := ""
	for _, p := range parts {
		if p.points == 0 {
			continue
		}
		if out != "" {
			out += " + "
		}
		out += fmt.Sprintf("%s %d", p.name, p.points)
	}
	if out == "" {
		return "nothing = 0"
	}
	return fmt.Sprintf("%s = %d", out, b.Total())
}

// pairPoints maps how many cards share a rank to the points they score.
var pairPoints = [...]int{0, 0, 2, 6, 12}

// Scorer evaluates four card hands. The zero value is not usable; use NewScorer.
type Scorer struct {
	logger *log.Logger
}

// ScorerOption configures a Scorer.
type ScorerOption func(*Scorer)

// WithScoreLogger sets the logger that receives a debug trace of each
// category as it is scored.
func WithScoreLogger(logger *log.Logger) ScorerOption {
	return func(s *Scorer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewScorer creates a scorer. Without options it logs nothing.
func NewScorer(opts ...ScorerOption) *Scorer {
	s := &Scorer{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultScorer = NewScorer()

// Score returns the points for a four card hand with an optional starter
// (NoCard for none). When crib is true a four card flush does not count.
func Score(hand Hand, starter Card, crib bool) (int, error) {
	return defaultScorer.Score(hand, starter, crib)
}

// Score returns the total points for hand and starter.
func (s *Scorer) Score(hand Hand, starter Card, crib bool) (int, error) {
	b, err := s.Breakdown(hand, starter, crib)
	if err != nil {
		return 0, err
	}
	return b.Total(), nil
}

// Breakdown scores hand and starter category by category.
func (s *Scorer) Breakdown(hand Hand, starter Card, crib bool) (Breakdown, error) {
	if hand.Len() != KeepSize {
		return Breakdown{}, fmt.Errorf("%w: can only score hands of %d cards, given %v", ErrInvalidScoringInput, KeepSize, hand)
	}
	if starter != NoCard {
		if !starter.Valid() {
			return Breakdown{}, fmt.Errorf("%w: starter %d is not a card", ErrInvalidScoringInput, uint8(starter))
		}
		if hand.Contains(starter) {
			return Breakdown{}, fmt.Errorf("%w: starter %s is already in the hand %v", ErrInvalidScoringInput, starter, hand)
		}
	}

	cards := hand.cards
	all := cards
	if starter != NoCard {
		all = append(slices.Clone(cards), starter)
		slices.Sort(all)
	}

	b := Breakdown{
		Flush:    scoreFlush(cards, starter, crib),
		Pairs:    scorePairs(all),
		Fifteens: scoreFifteens(all),
		Runs:     scoreRuns(all),
		Nobs:     scoreNobs(cards, starter),
	}

	if s.logger.GetLevel() <= log.DebugLevel {
		s.logger.Debug("Scored hand",
			"hand", hand,
			"starter", starter,
			"crib", crib,
			"flush", b.Flush,
			"pairs", b.Pairs,
			"fifteens", b.Fifteens,
			"runs", b.Runs,
			"nobs", b.Nobs,
			"total", b.Total())
	}

	return b, nil
}

// scoreFlush scores four hand cards of one suit, plus one for a matching
// starter. A crib only scores a five card flush.
func scoreFlush(hand []Card, starter Card, crib bool) int {
	suit := hand[0].Suit()
	for _, c := range hand[1:] {
		if c.Suit() != suit {
			return 0
		}
	}

	points := 4
	if starter != NoCard && starter.Suit() == suit {
		points++
	}
	if crib && points == 4 {
		return 0
	}
	return points
}

func scorePairs(cards []Card) int {
	var counts [King + 1]int
	for _, c := range cards {
		counts[c.Rank()]++
	}

	points := 0
	for _, n := range counts {
		points += pairPoints[n]
	}
	return points
}

// scoreFifteens counts every combination of two or more cards whose
// counting values total fifteen.
func scoreFifteens(cards []Card) int {
	values := make([]int, len(cards))
	for i, c := range cards {
		values[i] = c.Rank().Value()
	}

	points := 0
	for size := 2; size <= len(values); size++ {
		combinations(len(values), size, func(idx []int) bool {
			sum := 0
			for _, i := range idx {
				sum += values[i]
			}
			if sum == 15 {
				points += 2
			}
			return true
		})
	}
	return points
}

// scoreRuns looks for runs from the longest possible length down to three.
// Every combination of the longest length that forms a run scores, so
// duplicated ranks produce double and triple runs; shorter runs are not
// counted once a longer one is found.
func scoreRuns(cards []Card) int {
	ranks := make([]int, len(cards))
	for i, c := range cards {
		ranks[i] = int(c.Rank())
	}

	for size := len(ranks); size >= 3; size-- {
		points := 0
		combinations(len(ranks), size, func(idx []int) bool {
			if consecutive(ranks, idx) {
				points += size
			}
			return true
		})
		if points > 0 {
			return points
		}
	}
	return 0
}

// consecutive reports whether the ranks picked by idx (ascending) step by one.
func consecutive(ranks []int, idx []int) bool {
	for i := 1; i < len(idx); i++ {
		if ranks[idx[i]] != ranks[idx[i-1]]+1 {
			return false
		}
	}
	return true
}

// scoreNobs awards one point for the jack of the starter's suit.
func scoreNobs(hand []Card, starter Card) int {
	if starter == NoCard {
		return 0
	}
	for _, c := range hand {
		if c.Rank() == Jack && c.Suit() == starter.Suit() {
			return 1
		}
	}
	return 0
}
