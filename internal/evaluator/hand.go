package evaluator

import (
	"fmt"
	"strings"

	"github.com/lox/psychic-poker/internal/deck"
)

// Hand is a holding of exactly five cards. Hands are immutable value
// types: replacing a card yields a new hand.
type Hand [5]deck.Card

// NewHand builds a hand from exactly five cards
func NewHand(cards []deck.Card) (Hand, error) {
	var h Hand
	if len(cards) != len(h) {
		return Hand{}, fmt.Errorf("a hand holds exactly %d cards, got %d", len(h), len(cards))
	}
	copy(h[:], cards)
	return h, nil
}

// ParseHand parses five whitespace-separated card tokens
func ParseHand(s string) (Hand, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return Hand{}, err
	}
	return NewHand(cards)
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand %q: %v", s, err))
	}
	return h
}

// String returns the hand as space-separated card tokens
func (h Hand) String() string {
	tokens := make([]string, len(h))
	for i, card := range h {
		tokens[i] = card.String()
	}
	return strings.Join(tokens, " ")
}

// Replace returns a copy of the hand with the card at position i
// substituted. The receiver is untouched.
func (h Hand) Replace(i int, card deck.Card) Hand {
	h[i] = card
	return h
}
