package cribbage

import "errors"

var (
	// ErrInvalidCard reports a bad rank, suit or card token.
	ErrInvalidCard = errors.New("invalid card")

	// ErrInvalidHand reports a hand with the wrong number of cards or duplicates.
	ErrInvalidHand = errors.New("invalid hand")

	// ErrInvalidScoringInput reports a hand that is not four cards, or a
	// starter that is already in the hand.
	ErrInvalidScoringInput = errors.New("invalid scoring input")

	// ErrInvalidHandSize reports a crib search over a hand that is not six cards.
	ErrInvalidHandSize = errors.New("invalid hand size")

	// ErrInvalidInput reports an input line with the wrong number of cards.
	ErrInvalidInput = errors.New("invalid input")
)
