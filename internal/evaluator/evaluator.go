// Package evaluator classifies five-card poker hands into their
// categories. Classification is a pure function of the card set; ties
// inside a category are not broken.
package evaluator

import (
	"sort"

	"github.com/lox/psychic-poker/internal/deck"
)

// Evaluate returns the category of a hand.
func Evaluate(h Hand) HandRank {
	figures := figuresDescending(h)

	if oneSuited(h) {
		if isRun(figures) {
			return StraightFlush
		}
		return Flush
	}

	switch {
	case figures[0] == figures[3] || figures[1] == figures[4]:
		return FourOfAKind
	case (figures[0] == figures[2] && figures[3] == figures[4]) ||
		(figures[0] == figures[1] && figures[2] == figures[4]):
		return FullHouse
	case isRun(figures):
		return Straight
	case figures[0] == figures[2] || figures[1] == figures[3] || figures[2] == figures[4]:
		return ThreeOfAKind
	}

	switch countDistinct(figures) {
	case 3:
		return TwoPairs
	case 4:
		return OnePair
	default:
		return HighestCard
	}
}

// oneSuited reports whether all five cards share a suit
func oneSuited(h Hand) bool {
	for _, card := range h[1:] {
		if card.Suit != h[0].Suit {
			return false
		}
	}
	return true
}

// figuresDescending returns the hand's figures sorted high to low
func figuresDescending(h Hand) [5]deck.Figure {
	var figures [5]deck.Figure
	for i, card := range h {
		figures[i] = card.Figure
	}
	sort.Slice(figures[:], func(i, j int) bool { return figures[i] > figures[j] })
	return figures
}

// isRun reports whether descending figures form five consecutive
// values. A single break at the very end with a king on top and an ace
// at the bottom is the ten-to-ace run: the ace sits at the bottom of
// the figure scale but plays high there.
func isRun(figures [5]deck.Figure) bool {
	breaks := 0
	lastBreak := 0
	for i := 1; i < len(figures); i++ {
		if figures[i-1]-figures[i] != 1 {
			breaks++
			lastBreak = i
		}
	}
	if breaks == 0 {
		return true
	}
	return breaks == 1 && lastBreak == len(figures)-1 &&
		figures[0] == deck.King && figures[len(figures)-1] == deck.Ace
}

// countDistinct returns the number of distinct figures. Requires the
// figures to be sorted so equal values are adjacent.
func countDistinct(figures [5]deck.Figure) int {
	distinct := 1
	for i := 1; i < len(figures); i++ {
		if figures[i] != figures[i-1] {
			distinct++
		}
	}
	return distinct
}
