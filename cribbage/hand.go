package cribbage

import (
	"fmt"
	"slices"
	"strings"
)

// Hand is a sorted set of 2 to 6 distinct cards. The zero Hand is empty and
// is only produced alongside an error.
type Hand struct {
	cards []Card
}

// NewHand validates and sorts the cards into a Hand.
func NewHand(cards ...Card) (Hand, error) {
	if len(cards) < MinHandSize || len(cards) > MaxHandSize {
		return Hand{}, fmt.Errorf("%w: hand %v is not %d-%d cards", ErrInvalidHand, Cards(cards), MinHandSize, MaxHandSize)
	}
	for _, c := range cards {
		if !c.Valid() {
			return Hand{}, fmt.Errorf("%w: expected a card, was given %d", ErrInvalidHand, uint8(c))
		}
	}

	sorted := slices.Clone(cards)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return Hand{}, fmt.Errorf("%w: the hand has duplicate cards: %v", ErrInvalidHand, Cards(sorted))
		}
	}

	return Hand{cards: sorted}, nil
}

// HandFromStrings parses each token with ParseCard and builds a Hand.
func HandFromStrings(tokens []string) (Hand, error) {
	cards := make([]Card, 0, len(tokens))
	for _, tok := range tokens {
		c, err := ParseCard(tok)
		if err != nil {
			return Hand{}, err
		}
		cards = append(cards, c)
	}
	return NewHand(cards...)
}

// MustParseHand parses space separated cards and panics on error (for tests)
func MustParseHand(s string) Hand {
	h, err := HandFromStrings(strings.Fields(s))
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}

// Cards returns a copy of the cards in canonical order.
func (h Hand) Cards() Cards {
	return slices.Clone(h.cards)
}

// Len returns the number of cards in the hand
func (h Hand) Len() int {
	return len(h.cards)
}

// Contains reports whether the hand holds c.
func (h Hand) Contains(c Card) bool {
	_, found := slices.BinarySearch(h.cards, c)
	return found
}

// Equal reports whether both hands hold the same cards.
func (h Hand) Equal(other Hand) bool {
	return slices.Equal(h.cards, other.cards)
}

// Without returns the cards of h that are not in other, in order.
func (h Hand) Without(other Hand) Cards {
	var rest Cards
	for _, c := range h.cards {
		if !other.Contains(c) {
			rest = append(rest, c)
		}
	}
	return rest
}

// String renders the hand as "[3S, 4S, 5S, 6S]".
func (h Hand) String() string {
	return Cards(h.cards).String()
}

// Cards is a plain list of cards with the same textual form as a Hand.
type Cards []Card

// String renders the cards as "[3S, 4S]".
func (cs Cards) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Pretty renders the cards space separated with suit symbols.
func (cs Cards) Pretty() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.Pretty()
	}
	return strings.Join(parts, " ")
}
