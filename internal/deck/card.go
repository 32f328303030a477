// Package deck provides playing cards, token parsing and deck handling
// for five-card draw analysis.
package deck

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the single-letter code used in card tokens
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Symbol returns the unicode symbol for the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Figure is a card figure on the ace-low scale: Ace is the lowest
// ordinal and King the highest. Run detection depends on this exact
// ordering.
type Figure int

const (
	Ace Figure = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the single-character code used in card tokens
func (f Figure) String() string {
	switch f {
	case Ace:
		return "A"
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return "?"
	}
}

// Card represents a single playing card. Cards are value types and
// compare with ==.
type Card struct {
	Figure Figure
	Suit   Suit
}

// NewCard creates a new card
func NewCard(figure Figure, suit Suit) Card {
	return Card{Figure: figure, Suit: suit}
}

// String returns the canonical two-character token (e.g. "TH")
func (c Card) String() string {
	return c.Figure.String() + c.Suit.String()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}
