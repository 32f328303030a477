package evaluator

// HandRank represents a poker hand category. Higher values beat lower
// ones; comparisons use the enum ordering, never the display name.
type HandRank int

const (
	HighestCard HandRank = iota
	OnePair
	TwoPairs
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the reported name of the category
func (hr HandRank) String() string {
	switch hr {
	case HighestCard:
		return "highest-card"
	case OnePair:
		return "one-pair"
	case TwoPairs:
		return "two-pairs"
	case ThreeOfAKind:
		return "three-of-a-kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full-house"
	case FourOfAKind:
		return "four-of-a-kind"
	case StraightFlush:
		return "straight-flush"
	default:
		return "unknown"
	}
}

// HandRanks lists every category from weakest to strongest.
func HandRanks() []HandRank {
	return []HandRank{
		HighestCard,
		OnePair,
		TwoPairs,
		ThreeOfAKind,
		Straight,
		Flush,
		FullHouse,
		FourOfAKind,
		StraightFlush,
	}
}
