package cribbage

// Two-player cribbage dealing rules.
const (
	// MinHandSize and MaxHandSize bound any Hand.
	MinHandSize = 2
	MaxHandSize = 6

	// DealSize is the number of cards dealt to each player.
	DealSize = 6

	// KeepSize is the number of cards kept and scored with the starter.
	KeepSize = 4

	// DiscardCount is the number of cards thrown to the crib.
	DiscardCount = DealSize - KeepSize

	// MaxScore is the best possible hand: three fives and the jack of
	// the fourth five's suit, cut with that five.
	MaxScore = 29
)
