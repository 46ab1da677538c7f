package cribbage

import (
	"slices"
	"sync"
)

// deck holds the 52 cards in canonical order. It is built on first use and
// never modified afterwards, so it is safe to read from any goroutine.
var deck = sync.OnceValue(func() []Card {
	cards := make([]Card, 0, 52)
	for rank := Ace; rank <= King; rank++ {
		for _, suit := range Suits {
			cards = append(cards, makeCard(rank, suit))
		}
	}
	return cards
})

// Deck returns the 52 card deck in canonical order. Callers get their own copy.
func Deck() Cards {
	return slices.Clone(deck())
}

// Remaining returns the deck cards not present in any of the given hands.
func Remaining(exclude ...Hand) Cards {
	full := deck()
	out := make(Cards, 0, len(full))
	for _, c := range full {
		used := false
		for _, h := range exclude {
			if h.Contains(c) {
				used = true
				break
			}
		}
		if !used {
			out = append(out, c)
		}
	}
	return out
}
