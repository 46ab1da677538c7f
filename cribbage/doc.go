// Package cribbage scores cribbage hands and picks the best cards to keep
// from a six card deal.
//
// # Basic Usage
//
// Score a hand with a starter:
//
//	hand := cribbage.MustParseHand("5C 5D 5H JS")
//	points, err := cribbage.Score(hand, cribbage.MustParseCard("5S"), false)
//	// points == 29
//
// Parse a line the way the command line accepts it and split a deal:
//
//	hand, starter, err := cribbage.ParseHand("5H 2C 3C 10S JS QS")
//	// starter == cribbage.NoCard for six cards
//	result, err := cribbage.DetermineBestCrib(hand)
//	// result.Keep == [5H, 10S, JS, QS], result.Crib == [2C, 3C]
//
// # Scoring
//
// A hand scores five independent categories: flush, pairs, fifteens, runs and
// nobs. Scorer.Breakdown reports each one; a Scorer built with
// WithScoreLogger traces every category at debug level.
//
// # Crib search
//
// Optimizer tries all 15 four card keeps against the 48 starters left after
// removing the keep. The discarded pair can still be cut. The keep with the
// highest best-case score wins, and the first keep in card order wins ties.
// Keeps are scored in parallel up to WithParallelism; results do not depend
// on the level of parallelism.
package cribbage
