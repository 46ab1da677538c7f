package cribbage

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scoreCase struct {
	name    string
	hand    string
	starter string
	crib    bool
	want    int
}

func runScoreCases(t *testing.T, tests []scoreCase) {
	t.Helper()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			starter := NoCard
			if tc.starter != "" {
				starter = MustParseCard(tc.starter)
			}
			got, err := Score(MustParseHand(tc.hand), starter, tc.crib)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScoreNothing(t *testing.T) {
	t.Parallel()
	runScoreCases(t, []scoreCase{
		{name: "nothing", hand: "4H S10 QD 2D", want: 0},
	})
}

func TestScoreFlush(t *testing.T) {
	t.Parallel()
	runScoreCases(t, []scoreCase{
		{name: "three spades", hand: "AH QS 3S 6S", want: 0},
		{name: "three spades with spade starter", hand: "AH QS 3S 6S", starter: "7S", want: 0},
		{name: "four card flush", hand: "AS QS 3S 6S", want: 4},
		{name: "five card flush", hand: "AS QS 3S 6S", starter: "7S", want: 5},
		{name: "four card flush off-suit starter", hand: "AS QS 3S 6S", starter: "7D", want: 4},
		{name: "crib four card flush", hand: "AS QS 3S 6S", crib: true, want: 0},
		{name: "crib five card flush", hand: "AS QS 3S 6S", starter: "7S", crib: true, want: 5},
		{name: "crib off-suit starter", hand: "AS QS 3S 6S", starter: "7D", crib: true, want: 0},
	})
}

func TestScorePairs(t *testing.T) {
	t.Parallel()
	runScoreCases(t, []scoreCase{
		{name: "one pair", hand: "AS 2C 2D 5H", want: 2},
		{name: "still one pair", hand: "AS 2C 2D 5H", starter: "4C", want: 2},
		{name: "two pairs from starter", hand: "AS 2C 2D 5H", starter: "AC", want: 4},
		{name: "two pairs", hand: "5S 2C 2D 5H", want: 4},
		{name: "triplet from starter", hand: "AS 2C 2D 5H", starter: "2S", want: 6},
		{name: "bare triplet", hand: "3S 3C 3D 5H", want: 6},
		{name: "triplet and pair", hand: "5S 2C 2D 5H", starter: "2S", want: 8},
		{name: "triplet unchanged", hand: "3S 3C 3D 5H", starter: "2S", want: 6},
		{name: "triplet plus pair from starter", hand: "3S 3C 3D 5H", starter: "5S", want: 8},
		{name: "quad from starter", hand: "3S 3C 3D 5H", starter: "3H", want: 12},
		{name: "quad", hand: "3S 3C 3D 3H", want: 12},
		{name: "quad with starter", hand: "3S 3C 3D 3H", starter: "8S", want: 12},
	})
}

func TestScoreFifteens(t *testing.T) {
	t.Parallel()
	runScoreCases(t, []scoreCase{
		{name: "one fifteen", hand: "8S 7D 3D AH", want: 2},
		{name: "king adds nothing", hand: "8S 7D 3D AH", starter: "KS", want: 2},
		{name: "two fifteens", hand: "7S 8D 5D KS", want: 4},
		{name: "two fifteens with four", hand: "7S 8D 5D KS", starter: "4S", want: 4},
		{name: "three fifteens", hand: "8S 7D 3D AH", starter: "4S", want: 6},
	})
}

func TestScoreRuns(t *testing.T) {
	t.Parallel()
	runScoreCases(t, []scoreCase{
		{name: "run of three", hand: "3S 4D 5D AH", want: 3},
		{name: "run of four", hand: "2S 3D 4D 5H", want: 4},
		{name: "face card run of four", hand: "9S 10D JD QH", want: 4},
		{name: "run of five high", hand: "9S 10D JD QH", starter: "KH", want: 5},
		{name: "run of five low", hand: "9S 10D JD QH", starter: "8H", want: 5},
	})
}

func TestScoreNobs(t *testing.T) {
	t.Parallel()
	runScoreCases(t, []scoreCase{
		{name: "no starter", hand: "8S 10D JD 3S", want: 0},
		{name: "jack matches starter", hand: "8S 10D JD 3S", starter: "AD", want: 1},
		{name: "starter jack is not nobs", hand: "8S 10D AD 3S", starter: "JD", want: 0},
		{name: "no starter no nobs", hand: "8S 10D AD 3S", want: 0},
	})
}

func TestScoreCombinedHands(t *testing.T) {
	t.Parallel()
	runScoreCases(t, []scoreCase{
		{name: "double run", hand: "9S 10D JD 10S", want: 8},
		{name: "triple run", hand: "9S 10D JD 10S", starter: "10C", want: 15},
		{name: "double run of four with nobs", hand: "9S 10D JD 10S", starter: "8D", want: 11},
		{name: "double run with fifteens", hand: "9S 10D JD 10S", starter: "5C", want: 14},
		{name: "fifteens and a pair", hand: "7S 8S 7D 3D", want: 6},
		{name: "fifteens and trips", hand: "7S 8S 7D 3D", starter: "7C", want: 12},
		{name: "double run fifteens", hand: "4C 5C 6S 6H", want: 12},
		{name: "double run of four high", hand: "4C 5C 6S 6H", starter: "7D", want: 14},
		{name: "double run of four low", hand: "4C 5C 6S 6H", starter: "3D", want: 16},
		{name: "double double run", hand: "4C 5C 6S 6H", starter: "4S", want: 24},
		{name: "flush run fifteen", hand: "3S 4S 5S KS", want: 9},
		{name: "five flush run of four", hand: "3S 4S 5S KS", starter: "6S", want: 13},
		{name: "five flush extra fifteen", hand: "3S 4S 5S KS", starter: "10S", want: 12},
		{name: "four flush extra fifteen", hand: "3S 4S 5S KS", starter: "10D", want: 11},
		{name: "crib drops four flush", hand: "3S 4S 5S KS", crib: true, want: 5},
		{name: "crib keeps five flush", hand: "3S 4S 5S KS", starter: "6S", crib: true, want: 13},
		{name: "twenty nine", hand: "5C 5D 5H JS", starter: "5S", want: 29},
		{name: "five jack no nobs", hand: "5H 2C 3C 10S", starter: "JS", want: 8},
	})
}

func TestBreakdown(t *testing.T) {
	t.Parallel()
	s := NewScorer()
	b, err := s.Breakdown(MustParseHand("5C 5D 5H JS"), MustParseCard("5S"), false)
	require.NoError(t, err)
	assert.Equal(t, Breakdown{Flush: 0, Pairs: 12, Fifteens: 16, Runs: 0, Nobs: 1}, b)
	assert.Equal(t, 29, b.Total())
	assert.Equal(t, "pairs 12 + fifteens 16 + nobs 1 = 29", b.String())

	empty, err := s.Breakdown(MustParseHand("4H 10S QD 2D"), NoCard, false)
	require.NoError(t, err)
	assert.Equal(t, "nothing = 0", empty.String())
}

func TestScoreRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := Score(MustParseHand("10S QD 2D AC 5H"), NoCard, false)
	assert.ErrorIs(t, err, ErrInvalidScoringInput, "five card hand")

	_, err = Score(MustParseHand("10S QD 2D"), NoCard, false)
	assert.ErrorIs(t, err, ErrInvalidScoringInput, "three card hand")

	_, err = Score(MustParseHand("10S QD 2D AC"), MustParseCard("QD"), false)
	assert.ErrorIs(t, err, ErrInvalidScoringInput, "starter already in hand")
	assert.Contains(t, err.Error(), "QD")

	_, err = Score(MustParseHand("10S QD 2D AC"), Card(0xFF), false)
	assert.ErrorIs(t, err, ErrInvalidScoringInput, "starter not a card")
}

func TestScoreBounds(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(42))
	d := Deck()
	for i := 0; i < 2000; i++ {
		rng.Shuffle(len(d), func(a, b int) { d[a], d[b] = d[b], d[a] })
		hand, err := NewHand(d[:4]...)
		require.NoError(t, err)

		for _, starter := range []Card{NoCard, d[4]} {
			for _, crib := range []bool{false, true} {
				got, err := Score(hand, starter, crib)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, got, 0)
				assert.LessOrEqual(t, got, MaxScore)
			}
		}
	}
}

func TestScorerLogsBreakdown(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := NewScorer(WithScoreLogger(logger))

	got, err := s.Score(MustParseHand("3S 4S 5S KS"), NoCard, false)
	require.NoError(t, err)
	assert.Equal(t, 9, got)
	assert.Contains(t, buf.String(), "Scored hand")
	assert.Contains(t, buf.String(), "fifteens=2")
	assert.Contains(t, buf.String(), "total=9")
}

func TestScorerQuietAtInfo(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	s := NewScorer(WithScoreLogger(logger))

	_, err := s.Score(MustParseHand("3S 4S 5S KS"), NoCard, false)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
