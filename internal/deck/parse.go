package deck

import (
	"fmt"
	"strings"
)

// ParseError reports a token that does not describe a card.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid card %q", e.Token)
}

// ParseCard parses a two-character card token such as "TH" or "9c".
// Both characters are case-insensitive.
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, &ParseError{Token: token}
	}
	figure, ok := parseFigure(token[0])
	if !ok {
		return Card{}, &ParseError{Token: token}
	}
	suit, ok := parseSuit(token[1])
	if !ok {
		return Card{}, &ParseError{Token: token}
	}
	return Card{Figure: figure, Suit: suit}, nil
}

// ParseCards parses whitespace-separated card tokens
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, token := range fields {
		card, err := ParseCard(token)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCard parses a card token and panics on error (for tests)
func MustParseCard(token string) Card {
	card, err := ParseCard(token)
	if err != nil {
		panic(fmt.Sprintf("failed to parse card %q: %v", token, err))
	}
	return card
}

// MustParseCards parses card tokens and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

func parseFigure(c byte) (Figure, bool) {
	switch c {
	case 'A', 'a':
		return Ace, true
	case '2':
		return Two, true
	case '3':
		return Three, true
	case '4':
		return Four, true
	case '5':
		return Five, true
	case '6':
		return Six, true
	case '7':
		return Seven, true
	case '8':
		return Eight, true
	case '9':
		return Nine, true
	case 'T', 't':
		return Ten, true
	case 'J', 'j':
		return Jack, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	default:
		return 0, false
	}
}

func parseSuit(c byte) (Suit, bool) {
	switch c {
	case 'C', 'c':
		return Clubs, true
	case 'D', 'd':
		return Diamonds, true
	case 'H', 'h':
		return Hearts, true
	case 'S', 's':
		return Spades, true
	default:
		return 0, false
	}
}
