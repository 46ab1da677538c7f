package cribbage

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseCard parses a card token such as "AS", "s4", "10d" or "D10".
// The rank symbol and suit letter may come in either order and case is
// ignored. Accepted ranks: A (or 1), 2-9, 10, J, Q, K. "T" is not accepted.
func ParseCard(token string) (Card, error) {
	var sc cardScanner
	if err := sc.scan(strings.ToUpper(token)); err != nil {
		return NoCard, fmt.Errorf("%w: %q: %v", ErrInvalidCard, token, err)
	}
	return makeCard(sc.rank, sc.suit), nil
}

// MustParseCard parses a card and panics on error (for tests)
func MustParseCard(token string) Card {
	c, err := ParseCard(token)
	if err != nil {
		panic(fmt.Sprintf("failed to parse card '%s': %v", token, err))
	}
	return c
}

// cardScanner walks a token one character at a time. A suit letter may
// appear only at the start or at the end; everything else must form exactly
// one rank symbol.
type cardScanner struct {
	rank    Rank
	suit    Suit
	hasRank bool
	hasSuit bool
}

func (sc *cardScanner) scan(s string) error {
	if len(s) < 2 || len(s) > 3 {
		return fmt.Errorf("expected 2 or 3 characters, got %d", len(s))
	}

	i := 0
	if suit, ok := suitFromLetter(s[0]); ok {
		sc.suit, sc.hasSuit = suit, true
		i++
	}

	for i < len(s) {
		c := s[i]
		if suit, ok := suitFromLetter(c); ok {
			if sc.hasSuit {
				return fmt.Errorf("more than one suit letter")
			}
			if i != len(s)-1 {
				return fmt.Errorf("suit letter %q in the middle of the card", c)
			}
			sc.suit, sc.hasSuit = suit, true
			i++
			continue
		}

		if sc.hasRank {
			return fmt.Errorf("unexpected character %q after rank", c)
		}
		rank, width, err := rankAt(s, i)
		if err != nil {
			return err
		}
		sc.rank, sc.hasRank = rank, true
		i += width
	}

	if !sc.hasRank {
		return fmt.Errorf("missing rank")
	}
	if !sc.hasSuit {
		return fmt.Errorf("missing suit")
	}
	return nil
}

// rankAt reads the rank symbol starting at s[i] and returns how many bytes it used.
func rankAt(s string, i int) (Rank, int, error) {
	c := s[i]
	switch c {
	case 'A':
		return Ace, 1, nil
	case 'J':
		return Jack, 1, nil
	case 'Q':
		return Queen, 1, nil
	case 'K':
		return King, 1, nil
	case 'T':
		return 0, 0, fmt.Errorf("use 10 rather than T")
	case '1':
		if i+1 < len(s) && s[i+1] == '0' {
			return Ten, 2, nil
		}
		if i+1 < len(s) && unicode.IsDigit(rune(s[i+1])) {
			return 0, 0, fmt.Errorf("unknown rank %q", s[i:i+2])
		}
		return Ace, 1, nil
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(c - '0'), 1, nil
	default:
		return 0, 0, fmt.Errorf("unknown rank %q", c)
	}
}

func suitFromLetter(c byte) (Suit, bool) {
	switch c {
	case 'C':
		return Clubs, true
	case 'D':
		return Diamonds, true
	case 'H':
		return Hearts, true
	case 'S':
		return Spades, true
	default:
		return 0, false
	}
}

// ParseHand splits a line on commas and whitespace and parses it the way
// the command line and REPL accept hands:
//
//	4 cards: a hand with no starter
//	5 cards: a hand, the fifth card being the starter
//	6 cards: a six card deal with no starter
//
// Any other count fails with ErrInvalidInput.
func ParseHand(input string) (Hand, Card, error) {
	tokens := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	switch len(tokens) {
	case KeepSize, KeepSize + 1, DealSize:
	default:
		return Hand{}, NoCard, fmt.Errorf("%w: expected 4, 5, or 6 cards, found %d", ErrInvalidInput, len(tokens))
	}

	if len(tokens) == DealSize {
		hand, err := HandFromStrings(tokens)
		return hand, NoCard, err
	}

	hand, err := HandFromStrings(tokens[:KeepSize])
	if err != nil {
		return Hand{}, NoCard, err
	}

	starter := NoCard
	if len(tokens) == KeepSize+1 {
		starter, err = ParseCard(tokens[KeepSize])
		if err != nil {
			return Hand{}, NoCard, err
		}
	}
	return hand, starter, nil
}
