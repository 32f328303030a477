package draw

import (
	"fmt"

	"github.com/lox/psychic-poker/internal/deck"
	"github.com/lox/psychic-poker/internal/evaluator"
)

// InvalidLine is reported in place of a result for records that fail
// to parse or validate.
const InvalidLine = "Invalid line"

// Result is the best outcome over every discard option of a record.
type Result struct {
	Record Record
	Best   evaluator.HandRank
	Mask   int            // bit i set means hand position i was replaced
	Final  evaluator.Hand // the five cards after the winning draw
}

// String renders the reported line for the record
func (r Result) String() string {
	return fmt.Sprintf("Hand: %s Deck: %s Best hand: %s",
		joinCards(r.Record.Hand), joinCards(r.Record.Deck), r.Best)
}

// Discards returns the hand cards replaced in the winning draw, in
// position order.
func (r Result) Discards() []deck.Card {
	var cards []deck.Card
	for i := 0; i < len(r.Record.Hand); i++ {
		if r.Mask&(1<<i) != 0 {
			cards = append(cards, r.Record.Hand[i])
		}
	}
	return cards
}

// StandsPat reports whether keeping the dealt hand was the best play
func (r Result) StandsPat() bool {
	return r.Mask == 0
}

// Search evaluates all 32 discard subsets of a record and keeps the
// strongest category. Replacement cards come off the top of the deck
// in order and fill the discarded positions lowest first. Only a
// strictly stronger category displaces the current best, so standing
// pat wins ties.
func Search(rec Record) Result {
	held := evaluator.Hand(rec.Hand)
	best := Result{
		Record: rec,
		Best:   evaluator.Evaluate(held),
		Final:  held,
	}

	for mask := 1; mask < 1<<len(rec.Hand); mask++ {
		hand := held
		drawn := 0
		for i := 0; i < len(rec.Hand); i++ {
			if mask&(1<<i) != 0 {
				hand = hand.Replace(i, rec.Deck[drawn])
				drawn++
			}
		}
		if rank := evaluator.Evaluate(hand); rank > best.Best {
			best.Best = rank
			best.Mask = mask
			best.Final = hand
		}
	}
	return best
}

// EvaluateTokens parses, validates and searches one record's tokens.
func EvaluateTokens(tokens []string) (Result, error) {
	rec, err := ParseRecord(tokens)
	if err != nil {
		return Result{}, err
	}
	return Search(rec), nil
}
