package cribbage

import (
	"fmt"
)

// Card represents a single playing card packed into a byte.
// Layout: rank in the upper six bits, suit in the lower two, so integer
// order is card order (rank first, then suit).
type Card uint8

// NoCard is the zero Card. It is never a valid card and marks an absent starter.
const NoCard Card = 0

// Rank is a card rank, 1 (Ace) through 13 (King).
type Rank uint8

// Rank constants
const (
	Ace   Rank = 1
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Suit is a card suit. The numeric order is the tie-break order for cards of
// equal rank.
type Suit uint8

// Suit constants
const (
	Clubs    Suit = 0
	Diamonds Suit = 1
	Hearts   Suit = 2
	Spades   Suit = 3
)

// Suits lists every suit in order.
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Valid reports whether r is a real rank.
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Value returns the counting value used for fifteens: face cards count ten.
func (r Rank) Value() int {
	if r > Ten {
		return 10
	}
	return int(r)
}

// String returns the rank symbol ("A", "2".."10", "J", "Q", "K").
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r.Valid() {
		return fmt.Sprintf("%d", r)
	}
	return "?"
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s <= Spades
}

// String returns the suit letter.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Symbol returns the unicode suit symbol, used by the terminal views.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// NewCard creates a card, rejecting out of range ranks and suits.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return NoCard, fmt.Errorf("%w: unknown rank %d", ErrInvalidCard, rank)
	}
	if !suit.Valid() {
		return NoCard, fmt.Errorf("%w: unknown suit %d", ErrInvalidCard, suit)
	}
	return makeCard(rank, suit), nil
}

// MustCard is NewCard for known-good literals; it panics on error.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

func makeCard(rank Rank, suit Suit) Card {
	return Card(uint8(rank)<<2 | uint8(suit))
}

// Rank returns the rank of the card
func (c Card) Rank() Rank {
	return Rank(c >> 2)
}

// Suit returns the suit of the card
func (c Card) Suit() Suit {
	return Suit(c & 0x3)
}

// Valid reports whether c holds a real card.
func (c Card) Valid() bool {
	return c.Rank().Valid()
}

// Less orders cards by rank, then suit.
func (c Card) Less(other Card) bool {
	return c < other
}

// String returns the rank symbol followed by the suit letter, e.g. "10S".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return c.Rank().String() + c.Suit().String()
}

// Pretty renders the card with a suit symbol, e.g. "10♠".
func (c Card) Pretty() string {
	if !c.Valid() {
		return "??"
	}
	return c.Rank().String() + c.Suit().Symbol()
}
