package cribbage

import (
	"maps"
	"slices"
)

// Distribution counts how many starters produce each score.
type Distribution map[int]int

// Add records one more starter producing score.
func (d Distribution) Add(score int) {
	d[score]++
}

// Total returns the number of starters recorded.
func (d Distribution) Total() int {
	total := 0
	for _, n := range d {
		total += n
	}
	return total
}

// Mean returns the average score, or 0 for an empty distribution.
func (d Distribution) Mean() float64 {
	total := d.Total()
	if total == 0 {
		return 0
	}
	sum := 0
	for score, n := range d {
		sum += score * n
	}
	return float64(sum) / float64(total)
}

// Scores returns the recorded scores in ascending order.
func (d Distribution) Scores() []int {
	return slices.Sorted(maps.Keys(d))
}

// MostCommon returns the score seen most often and its count. Ties go to
// the lower score.
func (d Distribution) MostCommon() (score, count int) {
	for _, s := range d.Scores() {
		if d[s] > count {
			score, count = s, d[s]
		}
	}
	return score, count
}
