package evaluator

import "testing"

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		hand     string
		expected HandRank
	}{
		{
			name:     "royal in one suit",
			hand:     "TS JS QS KS AS",
			expected: StraightFlush,
		},
		{
			name:     "five high in one suit",
			hand:     "AS 2S 3S 4S 5S",
			expected: StraightFlush,
		},
		{
			name:     "king high straight flush",
			hand:     "9C TC JC QC KC",
			expected: StraightFlush,
		},
		{
			name:     "four deuces",
			hand:     "2H 2S 2C 2D 9H",
			expected: FourOfAKind,
		},
		{
			name:     "four aces",
			hand:     "AH AS AC AD 2H",
			expected: FourOfAKind,
		},
		{
			name:     "kings full of deuces",
			hand:     "KH KS KC 2H 2S",
			expected: FullHouse,
		},
		{
			name:     "deuces full of kings",
			hand:     "2H 2S 2C KH KS",
			expected: FullHouse,
		},
		{
			name:     "flush with a gap",
			hand:     "2H 5H 7H 9H KH",
			expected: Flush,
		},
		{
			name:     "ace high flush",
			hand:     "AH KH QH JH 9H",
			expected: Flush,
		},
		{
			name:     "five high straight",
			hand:     "AC 2D 3H 4S 5C",
			expected: Straight,
		},
		{
			name:     "ace high straight",
			hand:     "TC JD QH KS AC",
			expected: Straight,
		},
		{
			name:     "ten high straight",
			hand:     "6C 7D 8H 9S TC",
			expected: Straight,
		},
		{
			name:     "three kings",
			hand:     "KH KS KC 2H 9D",
			expected: ThreeOfAKind,
		},
		{
			name:     "three nines",
			hand:     "9H 9S 9C KH 2D",
			expected: ThreeOfAKind,
		},
		{
			name:     "three deuces",
			hand:     "2H 2S 2C KH 9D",
			expected: ThreeOfAKind,
		},
		{
			name:     "aces and kings",
			hand:     "AH AS KH KS 9D",
			expected: TwoPairs,
		},
		{
			name:     "deuces and treys",
			hand:     "2H 3S 2C 3D 9H",
			expected: TwoPairs,
		},
		{
			name:     "pair of aces",
			hand:     "AH AS KH QS 9D",
			expected: OnePair,
		},
		{
			name:     "pair of fours",
			hand:     "4H 9C 4S 2D KH",
			expected: OnePair,
		},
		{
			name:     "nothing with an ace",
			hand:     "3D 5S 2H QD AD",
			expected: HighestCard,
		},
		{
			name:     "nothing at all",
			hand:     "3D 5S 2H QD TD",
			expected: HighestCard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(MustParseHand(tt.hand)); got != tt.expected {
				t.Errorf("Evaluate(%s) = %s, want %s", tt.hand, got, tt.expected)
			}
		})
	}
}

func TestEvaluateNoWrapAroundRun(t *testing.T) {
	// King-ace-two is not a run: the ace only plays high above a king
	// when the other four cards are ten through king.
	tests := []string{
		"KS AH 2H 3C 4H",
		"QH KS AC 2D 3H",
		"JD QH KS AC 2D",
	}

	for _, hand := range tests {
		if got := Evaluate(MustParseHand(hand)); got != HighestCard {
			t.Errorf("Evaluate(%s) = %s, want %s", hand, got, HighestCard)
		}
	}
}

func TestEvaluateWrapAroundFlushStaysFlush(t *testing.T) {
	// One-suited wrap-around cards still only make a flush.
	if got := Evaluate(MustParseHand("KH AH 2H 3H 4H")); got != Flush {
		t.Errorf("Evaluate(KH AH 2H 3H 4H) = %s, want %s", got, Flush)
	}
}

func TestEvaluateIgnoresOrder(t *testing.T) {
	orderings := []string{
		"TS JS QS KS AS",
		"AS KS QS JS TS",
		"QS AS TS KS JS",
	}

	for _, hand := range orderings {
		if got := Evaluate(MustParseHand(hand)); got != StraightFlush {
			t.Errorf("Evaluate(%s) = %s, want %s", hand, got, StraightFlush)
		}
	}
}

func TestHandReplace(t *testing.T) {
	original := MustParseHand("TH JH QC QD QS")
	card := MustParseHand("QH KH AH 2S 6S")[0]

	replaced := original.Replace(2, card)

	if replaced.String() != "TH JH QH QD QS" {
		t.Errorf("Replace() = %s, want TH JH QH QD QS", replaced)
	}
	if original.String() != "TH JH QC QD QS" {
		t.Errorf("Replace() mutated the receiver: %s", original)
	}
}

func TestNewHandWrongSize(t *testing.T) {
	_, err := NewHand(nil)
	if err == nil {
		t.Error("NewHand(nil) should fail")
	}

	_, err = ParseHand("AS KS QS JS")
	if err == nil {
		t.Error("ParseHand() should fail on four cards")
	}

	_, err = ParseHand("AS KS QS JS TS 9S")
	if err == nil {
		t.Error("ParseHand() should fail on six cards")
	}
}
