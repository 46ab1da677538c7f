package cribbage

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCards(t *testing.T, tokens ...string) []Card {
	t.Helper()
	cards := make([]Card, len(tokens))
	for i, tok := range tokens {
		c, err := ParseCard(tok)
		require.NoError(t, err)
		cards[i] = c
	}
	return cards
}

func TestNewHandSizes(t *testing.T) {
	t.Parallel()
	cards := parseCards(t, "2D", "KS", "JH", "4C", "5C", "2S", "9H")

	_, err := NewHand(cards...)
	assert.ErrorIs(t, err, ErrInvalidHand, "seven cards")
	_, err = NewHand(cards[:1]...)
	assert.ErrorIs(t, err, ErrInvalidHand, "one card")
	_, err = NewHand()
	assert.ErrorIs(t, err, ErrInvalidHand, "no cards")

	for _, bounds := range [][2]int{{0, 2}, {0, 4}, {1, 5}, {1, 6}, {1, 7}} {
		h, err := NewHand(cards[bounds[0]:bounds[1]]...)
		require.NoError(t, err)
		assert.Equal(t, bounds[1]-bounds[0], h.Len())
	}
}

func TestNewHandRejectsDuplicates(t *testing.T) {
	t.Parallel()
	cards := parseCards(t, "2D", "KS", "JH", "4C")
	_, err := NewHand(append(cards, cards[3])...)
	assert.ErrorIs(t, err, ErrInvalidHand)
}

func TestNewHandRejectsNoCard(t *testing.T) {
	t.Parallel()
	_, err := NewHand(MustParseCard("2D"), NoCard, MustParseCard("3D"))
	assert.ErrorIs(t, err, ErrInvalidHand)
}

func TestHandIsSorted(t *testing.T) {
	t.Parallel()
	four := parseCards(t, "4H", "QD", "S10", "7H")
	h, err := NewHand(four...)
	require.NoError(t, err)

	sorted := slices.Clone(four)
	slices.Sort(sorted)
	assert.Equal(t, Cards(sorted), h.Cards())

	another, err := HandFromStrings([]string{"7h", "4H", "S10", "QD"})
	require.NoError(t, err)
	assert.True(t, h.Equal(another))
	assert.Equal(t, "[4H, 7H, 10S, QD]", h.String())
}

func TestHandIsImmutable(t *testing.T) {
	t.Parallel()
	input := parseCards(t, "5H", "2C", "3C")
	h, err := NewHand(input...)
	require.NoError(t, err)

	input[0] = MustParseCard("KS")
	cards := h.Cards()
	cards[0] = MustParseCard("KD")

	assert.Equal(t, "[2C, 3C, 5H]", h.String())
}

func TestHandOperations(t *testing.T) {
	t.Parallel()
	deal := MustParseHand("5H 2C 3C 10S JS QS")
	keep := MustParseHand("5H 10S JS QS")

	assert.True(t, deal.Contains(MustParseCard("JS")))
	assert.False(t, deal.Contains(MustParseCard("JD")))
	assert.Equal(t, "[2C, 3C]", deal.Without(keep).String())
	assert.Equal(t, "2♣ 3♣", deal.Without(keep).Pretty())
}
