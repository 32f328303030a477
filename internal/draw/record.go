// Package draw finds the best discard for five-card draw records: a
// dealt hand plus the next five cards of the deck, in order.
package draw

import (
	"fmt"
	"strings"

	"github.com/lox/psychic-poker/internal/deck"
)

// recordCards is the number of cards in a record: five held and the
// next five off the top of the deck.
const recordCards = 10

// Record is one input line.
type Record struct {
	Hand [5]deck.Card
	Deck [5]deck.Card
}

// ValidationError reports tokens that parse as cards but do not form a
// playable record.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ParseRecord parses ten card tokens into a record. Every token must
// be a distinct card.
func ParseRecord(tokens []string) (Record, error) {
	if len(tokens) != recordCards {
		return Record{}, &ValidationError{
			Reason: fmt.Sprintf("expected %d cards, got %d", recordCards, len(tokens)),
		}
	}

	var rec Record
	seen := make(map[deck.Card]bool, recordCards)
	for i, token := range tokens {
		card, err := deck.ParseCard(token)
		if err != nil {
			return Record{}, err
		}
		if seen[card] {
			return Record{}, &ValidationError{
				Reason: fmt.Sprintf("duplicate card %s", card),
			}
		}
		seen[card] = true

		if i < len(rec.Hand) {
			rec.Hand[i] = card
		} else {
			rec.Deck[i-len(rec.Hand)] = card
		}
	}
	return rec, nil
}

// joinCards renders five cards as space-separated tokens
func joinCards(cards [5]deck.Card) string {
	tokens := make([]string, len(cards))
	for i, card := range cards {
		tokens[i] = card.String()
	}
	return strings.Join(tokens, " ")
}
