package deck

import (
	rand "math/rand/v2"
)

// Deck represents a pile of playing cards dealt from the front.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a new standard 52-card deck in canonical order. The
// caller supplies the RNG so shuffles can be made deterministic.
func NewDeck(rng *rand.Rand) *Deck {
	deck := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}

	// Create all 52 cards
	for suit := Clubs; suit <= Spades; suit++ {
		for figure := Ace; figure <= King; figure++ {
			deck.cards = append(deck.cards, NewCard(figure, suit))
		}
	}

	return deck
}

// Shuffle randomizes the order of cards in the deck
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DealN deals n cards from the top of the deck
func (d *Deck) DealN(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}

	cards := make([]Card, n)
	for i := 0; i < n; i++ {
		if card, ok := d.Deal(); ok {
			cards[i] = card
		}
	}

	return cards
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// Peek returns the top card without removing it from the deck
func (d *Deck) Peek() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[0], true
}
